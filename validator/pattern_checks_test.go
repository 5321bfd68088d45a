package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldchain/validator"
)

func TestRegex(t *testing.T) {
	t.Parallel()

	digits := regexp.MustCompile(`^[0-9]+$`)

	t.Run("passes on match", func(t *testing.T) {
		t.Parallel()

		result, err := validateField(t, validator.NewChain().Regex(validator.RegexOpts{Pattern: digits}), "12345")
		require.NoError(t, err)
		assert.True(t, result.Success)
	})

	t.Run("fails on mismatch", func(t *testing.T) {
		t.Parallel()

		result, err := validateField(t, validator.NewChain().Regex(validator.RegexOpts{Pattern: digits}), "12a45")
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, []string{"invalid format"}, result.Errors.Get("field"))
	})

	t.Run("coerces non-string values before matching", func(t *testing.T) {
		t.Parallel()

		result, err := validateField(t, validator.NewChain().Regex(validator.RegexOpts{Pattern: digits}), 12345)
		require.NoError(t, err)
		assert.True(t, result.Success)
	})
}

func TestEmail(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value any
		valid bool
	}{
		{"plain address passes", "user@example.com", true},
		{"subdomain passes", "user@mail.example.co.uk", true},
		{"plus tag passes", "user+tag@example.com", true},
		{"missing at sign fails", "user.example.com", false},
		{"missing domain dot fails", "user@example", false},
		{"embedded space fails", "us er@example.com", false},
		{"number fails", 42, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result, err := validateField(t, validator.NewChain().Email(), tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.valid, result.Success)
		})
	}
}
