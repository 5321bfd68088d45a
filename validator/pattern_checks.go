package validator

import (
	"fmt"
	"regexp"
)

// emailRegex is deliberately loose: one @, no whitespace, a dotted domain.
// Deliverability can only be proven by sending mail, so stricter patterns
// just reject valid addresses.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegexOpts configures Regex.
type RegexOpts struct {
	Pattern *regexp.Regexp
}

// Regex appends a pattern match. Non-string values are coerced to their
// string form before matching. Panics at construction on a nil pattern.
func (c *Chain) Regex(opts RegexOpts) *Chain {
	if opts.Pattern == nil {
		panic("validator: Regex requires a pattern")
	}

	return c.add("regex", func(_ *Context, value any, _ string, next Next) Result {
		s, ok := value.(string)
		if !ok {
			s = fmt.Sprint(value)
		}
		if !opts.Pattern.MatchString(s) {
			return Fail("invalid format")
		}
		return next()
	})
}

// Email appends a loose email format check.
func (c *Chain) Email() *Chain {
	return c.add("email", func(_ *Context, value any, _ string, next Next) Result {
		s, ok := value.(string)
		if !ok {
			s = fmt.Sprint(value)
		}
		if !emailRegex.MatchString(s) {
			return Fail("must be a valid email address")
		}
		return next()
	})
}
