package validator

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrymomot/fieldchain/pkg/async"
)

// Chain is an ordered sequence of checks validating one field. Chains are
// built fluently, are append-only during construction, and must not be
// modified once handed to a Schema. A single Chain may be shared by several
// schema fields and by any number of concurrent runs: execution state lives
// on the stack of each validate call, never on the Chain itself.
type Chain struct {
	checks   []check
	registry *Registry
	timeout  time.Duration
}

// ChainOption configures a Chain at construction time.
type ChainOption func(*Chain)

// WithRegistry attaches the registry consulted by Custom checks.
func WithRegistry(r *Registry) ChainOption {
	return func(c *Chain) { c.registry = r }
}

// WithTimeout bounds how long the chain waits for any single pending check to
// settle. Zero (the default) waits indefinitely. Expiry is a run-level fault
// reported as ErrChainTimeout, not a field error.
func WithTimeout(d time.Duration) ChainOption {
	return func(c *Chain) { c.timeout = d }
}

// NewChain returns an empty chain. A chain with no checks passes trivially.
func NewChain(opts ...ChainOption) *Chain {
	c := &Chain{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Chain) add(name string, fn CheckFunc) *Chain {
	c.checks = append(c.checks, check{name: name, fn: fn})
	return c
}

// Func appends an arbitrary caller-supplied check. Its return value is
// normalized like any built-in check's, so it may be synchronous or
// asynchronous. Panics when fn is nil.
func (c *Chain) Func(fn RawCheckFunc) *Chain {
	if fn == nil {
		panic("validator: Func requires a non-nil check function")
	}
	return c.add("func", wrapRaw(fn))
}

// validate runs the chain against one field. A failed business rule comes
// back in the Outcome; a non-nil error is an internal fault (panicking check,
// contract violation, timeout) that must not be folded into field errors.
// validate never panics.
func (c *Chain) validate(ctx *Context, field string) (o Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.Is(e, ErrUnsupportedCheckResult) {
				err = fmt.Errorf("field %q: %w", field, e)
				return
			}
			err = fmt.Errorf("%w: field %q: %v", ErrCheckPanic, field, r)
		}
	}()

	// The step index is local to this invocation so concurrent runs of the
	// same Chain never share state.
	var step func(i int) Result
	step = func(i int) Result {
		if i >= len(c.checks) {
			return Pass()
		}
		cur := c.checks[i]
		return cur.fn(ctx, ctx.Get(field), field, func() Result {
			return step(i + 1)
		})
	}

	return c.settle(field, step(0))
}

// settle drives a Result to a terminal state, awaiting pending futures and
// re-normalizing whatever they resolve to. A future resolving to another
// future is handled by the loop, so transitively pending checks settle at any
// depth.
func (c *Chain) settle(field string, res Result) (Outcome, error) {
	for res.kind == kindPending {
		var (
			raw  any
			aerr error
		)
		if c.timeout > 0 {
			raw, aerr = res.future.AwaitWithTimeout(c.timeout)
		} else {
			raw, aerr = res.future.Await()
		}
		if aerr != nil {
			if errors.Is(aerr, async.ErrTimeout) {
				return Outcome{}, fmt.Errorf("%w: field %q", ErrChainTimeout, field)
			}
			return Outcome{}, fmt.Errorf("validator: pending check failed for field %q: %w", field, aerr)
		}

		var nerr error
		if res, nerr = normalizeResult(raw); nerr != nil {
			return Outcome{}, fmt.Errorf("field %q: %w", field, nerr)
		}
	}

	if res.kind == kindPass {
		return Outcome{OK: true, Field: field}, nil
	}
	return Outcome{Field: field, Message: res.message}, nil
}

// Outcome is the settled pass/fail result of one field chain.
type Outcome struct {
	OK      bool
	Field   string
	Message string
}
