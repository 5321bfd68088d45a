package validator

import (
	"fmt"
	"regexp"
)

// Password requirement keywords accepted in PasswordOpts.Req. Any other entry
// is compiled as a literal regular expression the password must match.
const (
	ReqUpper   = "upper"
	ReqLower   = "lower"
	ReqNumber  = "number"
	ReqSpecial = "special"
)

var passwordClassRegex = map[string]*regexp.Regexp{
	ReqUpper:   regexp.MustCompile(`[A-Z]`),
	ReqLower:   regexp.MustCompile(`[a-z]`),
	ReqNumber:  regexp.MustCompile(`[0-9]`),
	ReqSpecial: regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?~` + "`" + `]`),
}

// PasswordOpts configures Password. Zero values fall back to the defaults:
// length 8 to 32 and all four character classes required.
type PasswordOpts struct {
	Req       []string
	MinLength int
	MaxLength int
}

// Password appends a password strength check: the value must be a string
// whose length is within bounds and which matches every requirement pattern,
// in the declared order. Panics at construction when a non-keyword entry in
// Req is not a valid regular expression.
func (c *Chain) Password(opts PasswordOpts) *Chain {
	if opts.MinLength <= 0 {
		opts.MinLength = 8
	}
	if opts.MaxLength <= 0 {
		opts.MaxLength = 32
	}
	if len(opts.Req) == 0 {
		opts.Req = []string{ReqUpper, ReqLower, ReqNumber, ReqSpecial}
	}

	required := make([]*regexp.Regexp, 0, len(opts.Req))
	for _, req := range opts.Req {
		if re, ok := passwordClassRegex[req]; ok {
			required = append(required, re)
			continue
		}
		required = append(required, regexp.MustCompile(req))
	}

	message := fmt.Sprintf("password must be %d-%d characters with required character types", opts.MinLength, opts.MaxLength)

	return c.add("password", func(_ *Context, value any, _ string, next Next) Result {
		s, ok := value.(string)
		if !ok {
			return Fail(message)
		}
		if len(s) < opts.MinLength || len(s) > opts.MaxLength {
			return Fail(message)
		}
		for _, re := range required {
			if !re.MatchString(s) {
				return Fail(message)
			}
		}
		return next()
	})
}
