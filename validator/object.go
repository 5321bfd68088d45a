package validator

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Schema maps field names to the chains validating them. Built once by the
// caller and reused across runs; never mutated by validation. Reusing one
// Chain for several fields is legal since chains hold no per-field state.
type Schema map[string]*Chain

// ObjectValidator drives every field chain of a schema to completion and
// aggregates their outcomes. Safe for concurrent use by multiple goroutines.
type ObjectValidator struct {
	schema      Schema
	trimUnknown bool
}

// Option configures an ObjectValidator.
type Option func(*ObjectValidator)

// WithTrimUnknown makes validation delete every object key not declared in
// the schema. This is a structural side effect on the caller's object and is
// applied regardless of validation outcome.
func WithTrimUnknown() Option {
	return func(v *ObjectValidator) { v.trimUnknown = true }
}

// New builds an ObjectValidator for schema. A nil or empty schema is a
// configuration error.
func New(schema Schema, opts ...Option) (*ObjectValidator, error) {
	if len(schema) == 0 {
		return nil, ErrNilSchema
	}

	v := &ObjectValidator{schema: schema}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Validate runs every field chain concurrently against obj and returns the
// aggregate result once all of them have settled.
//
// Failed business rules land in the result's error map; the returned error is
// reserved for run-level faults (a panicking check, a contract violation, a
// chain timeout) so callers can tell invalid data apart from a broken
// validator. One chain failing validation never aborts its siblings.
//
// Checks may mutate obj (trimming, case folding), and WithTrimUnknown deletes
// undeclared keys, so the caller's map reflects the normalized object after
// Validate returns.
func (v *ObjectValidator) Validate(ctx context.Context, obj map[string]any) (ValidationResult, error) {
	if obj == nil {
		return ValidationResult{}, ErrNilObject
	}

	run := newContext(ctx, obj)

	var (
		mu    sync.Mutex
		fails ValidationErrors
	)

	var g errgroup.Group
	for field, chain := range v.schema {
		field, chain := field, chain
		fieldCtx := run.forField(field)
		g.Go(func() error {
			outcome, err := chain.validate(fieldCtx, field)
			if err != nil {
				return err
			}
			if !outcome.OK {
				mu.Lock()
				fails.Add(ValidationError{Field: outcome.Field, Message: outcome.Message})
				mu.Unlock()
			}
			return nil
		})
	}

	// Key enumeration only needs the schema, so trimming does not wait for
	// the chains.
	if v.trimUnknown {
		run.trimUnknown(v.schema)
	}

	if err := g.Wait(); err != nil {
		return ValidationResult{}, err
	}

	// Chains settle in arbitrary order; sort so equal inputs produce equal
	// results.
	sort.Slice(fails, func(i, j int) bool { return fails[i].Field < fails[j].Field })

	if fails.IsEmpty() {
		return ValidationResult{Success: true}, nil
	}
	return ValidationResult{Success: false, Errors: fails}, nil
}
