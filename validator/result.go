package validator

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrymomot/fieldchain/pkg/async"
)

type resultKind uint8

const (
	kindPass resultKind = iota
	kindFail
	kindPending
)

// Result is the canonical form every check decision resolves to: a terminal
// pass, a terminal failure with a message, or a pending asynchronous value
// that eventually settles into one of the former.
type Result struct {
	kind    resultKind
	message string
	future  *async.Future[any]
}

// Pass returns a terminal passing Result. A check returning Pass without
// calling its continuation ends the chain successfully and skips any
// remaining checks.
func Pass() Result {
	return Result{kind: kindPass}
}

// Fail returns a terminal failing Result carrying a per-field message.
func Fail(message string) Result {
	return Result{kind: kindFail, message: message}
}

// Defer runs fn on its own goroutine and returns a pending Result. The chain
// suspends at a pending Result and resumes once fn settles; whatever fn
// resolves to is normalized like any other check return, so it may call the
// chain's continuation, return another pending value, or yield a plain
// pass/fail. A non-nil error from fn is a run-level fault, not a field error.
func Defer(ctx *Context, fn func(context.Context) (any, error)) Result {
	return Result{kind: kindPending, future: async.Async(ctx, fn)}
}

// ValidationError represents a single per-field validation failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the aggregate error map of a run, keyed by field name.
// It implements the error interface.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ByField groups messages by field name, the shape typically serialized into
// error responses.
func (ve ValidationErrors) ByField() map[string][]string {
	if len(ve) == 0 {
		return nil
	}
	m := make(map[string][]string, len(ve))
	for _, err := range ve {
		m[err.Field] = append(m[err.Field], err.Message)
	}
	return m
}

// ValidationResult is the single aggregate outcome of one run. It is emitted
// exactly once, after every field chain has settled: either a complete
// success or the complete error map, never a partial view.
type ValidationResult struct {
	Success bool             `json:"success"`
	Errors  ValidationErrors `json:"errors,omitempty"`
}
