package validator

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseMode selects the case folding applied by IsString.
type CaseMode string

const (
	CaseUpper CaseMode = "upper"
	CaseLower CaseMode = "lower"
)

// Required appends a presence check: it fails on nil values and empty
// strings, and proceeds for anything else, including 0 and false.
func (c *Chain) Required() *Chain {
	return c.add("required", func(_ *Context, value any, _ string, next Next) Result {
		switch v := value.(type) {
		case nil:
			return Fail("field is required")
		case string:
			if v == "" {
				return Fail("field is required")
			}
		}
		return next()
	})
}

// StringOpts configures IsString.
type StringOpts struct {
	// Trim removes leading and trailing whitespace before further checks see
	// the value.
	Trim bool
	// Case folds the value to upper or lower case when set.
	Case CaseMode
}

// IsString appends a type check with optional normalization. Nil values pass
// through untouched, deferring presence to Required; non-string values fail.
// The trimmed and case-folded value is written back into the object, so later
// checks in the chain and the caller observe the normalized form.
func (c *Chain) IsString(opts StringOpts) *Chain {
	switch opts.Case {
	case "", CaseUpper, CaseLower:
	default:
		panic(fmt.Sprintf("validator: IsString case must be %q or %q, got %q", CaseUpper, CaseLower, opts.Case))
	}

	return c.add("isString", func(ctx *Context, value any, field string, next Next) Result {
		if value == nil {
			return next()
		}

		s, ok := value.(string)
		if !ok {
			return Fail("must be a string")
		}

		if opts.Trim {
			s = strings.TrimSpace(s)
		}
		// A cases.Caser is stateful, so one is created per invocation rather
		// than shared across concurrent chains.
		switch opts.Case {
		case CaseUpper:
			s = cases.Upper(language.Und).String(s)
		case CaseLower:
			s = cases.Lower(language.Und).String(s)
		}

		ctx.Set(field, s)
		return next()
	})
}
