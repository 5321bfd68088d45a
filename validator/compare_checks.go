package validator

import (
	"fmt"
	"reflect"
)

// SameAsOpts configures SameAs.
type SameAsOpts struct {
	// Path locates the value to compare against, slash-delimited. A "$/"
	// prefix anchors the path at the run's root object; otherwise it is
	// resolved from the current subtree.
	Path string
}

// SameAs appends an equality check against another field. It proceeds when
// both values are absent or strictly equal, and fails otherwise. Panics at
// construction on an empty path.
func (c *Chain) SameAs(opts SameAsOpts) *Chain {
	if opts.Path == "" {
		panic("validator: SameAs requires a path")
	}

	return c.add("sameAs", func(ctx *Context, value any, _ string, next Next) Result {
		other := ctx.Lookup(opts.Path)
		if value == nil && other == nil {
			return next()
		}
		if strictEqual(value, other) {
			return next()
		}
		return Fail(fmt.Sprintf("is not the same as %s", opts.Path))
	})
}

// strictEqual compares two values without panicking on incomparable types:
// differing dynamic types are unequal, incomparable types (maps, slices) are
// never equal.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
