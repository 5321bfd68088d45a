package validator

import (
	"fmt"

	"github.com/dmitrymomot/fieldchain/pkg/async"
)

// Next is the continuation a check invokes to hand control to the rest of its
// chain. It returns the settled Result of the remaining checks.
type Next func() Result

// CheckFunc is a single decision step in a field chain.
//
// The value argument is read from the object at invocation time, so mutations
// made by earlier checks in the same chain are visible. A check must invoke
// next at most once: calling it continues the chain, while returning a Result
// without calling it terminates the chain with that Result.
type CheckFunc func(ctx *Context, value any, field string, next Next) Result

// RawCheckFunc is the loosely-typed contract accepted by Func and by registry
// factories' wrapped callbacks. Its return value is normalized by the engine:
//
//	true            terminal pass
//	false           terminal failure with an empty message
//	string          terminal failure with that message
//	error           terminal failure with the error's message
//	Result          used as-is (including pending results from Defer)
//	*async.Future[any]  pending; its resolution is normalized recursively
//
// Any other type is a contract violation and fails the whole run, never a
// single field.
type RawCheckFunc func(ctx *Context, value any, field string, next Next) any

// check pairs a CheckFunc with the builder method that produced it, for
// diagnostics on faults.
type check struct {
	name string
	fn   CheckFunc
}

// normalizeResult maps a raw check return onto the canonical Result form.
func normalizeResult(v any) (Result, error) {
	switch t := v.(type) {
	case Result:
		return t, nil
	case bool:
		if t {
			return Pass(), nil
		}
		return Fail(""), nil
	case string:
		return Fail(t), nil
	case error:
		return Fail(t.Error()), nil
	case *async.Future[any]:
		return Result{kind: kindPending, future: t}, nil
	default:
		return Result{}, fmt.Errorf("%w: %T", ErrUnsupportedCheckResult, v)
	}
}

// wrapRaw adapts a RawCheckFunc into a CheckFunc. Normalization faults are
// raised as panics and recovered by the chain into a run-level error.
func wrapRaw(fn RawCheckFunc) CheckFunc {
	return func(ctx *Context, value any, field string, next Next) Result {
		res, err := normalizeResult(fn(ctx, value, field, next))
		if err != nil {
			panic(err)
		}
		return res
	}
}
