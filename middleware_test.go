package fieldchain_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldchain"
	"github.com/dmitrymomot/fieldchain/validator"
)

func signupSchema() validator.Schema {
	return validator.Schema{
		"email": validator.NewChain().Required().
			IsString(validator.StringOpts{Trim: true, Case: validator.CaseLower}).Email(),
		"password": validator.NewChain().Required().Password(validator.PasswordOpts{}),
	}
}

func postJSON(body string) *http.Request {
	r := httptest.NewRequest("POST", "/signup", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestRequestBodyValidator(t *testing.T) {
	t.Parallel()

	t.Run("valid body reaches the handler with the normalized object", func(t *testing.T) {
		t.Parallel()

		var got map[string]any
		handler := fieldchain.RequestBodyValidator(signupSchema())(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = fieldchain.ValidatedBody(r.Context())
				w.WriteHeader(http.StatusCreated)
			}),
		)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, postJSON(`{"email":"  User@Example.COM ","password":"Aa1#abcd"}`))

		assert.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, got)
		assert.Equal(t, "user@example.com", got["email"])
	})

	t.Run("invalid body answers 422 with a field error map", func(t *testing.T) {
		t.Parallel()

		handler := fieldchain.RequestBodyValidator(signupSchema())(
			http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				t.Error("handler must not run for invalid data")
			}),
		)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, postJSON(`{"email":"nope","password":"weak"}`))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var resp struct {
			Error   string              `json:"error"`
			Details map[string][]string `json:"details"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "validation failed", resp.Error)
		assert.Contains(t, resp.Details, "email")
		assert.Contains(t, resp.Details, "password")
	})

	t.Run("absent body validates as an empty object", func(t *testing.T) {
		t.Parallel()

		handler := fieldchain.RequestBodyValidator(signupSchema())(
			http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}),
		)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, postJSON(``))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("malformed JSON answers 400", func(t *testing.T) {
		t.Parallel()

		handler := fieldchain.RequestBodyValidator(signupSchema())(
			http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				t.Error("handler must not run for malformed body")
			}),
		)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, postJSON(`{"email"`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validator fault answers 500 through the error handler", func(t *testing.T) {
		t.Parallel()

		schema := validator.Schema{
			"field": validator.NewChain().Func(func(*validator.Context, any, string, validator.Next) any {
				panic("broken check")
			}),
		}
		handler := fieldchain.RequestBodyValidator(schema)(
			http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				t.Error("handler must not run on a fault")
			}),
		)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, postJSON(`{"field":"x"}`))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("trim option drops undeclared keys before the handler", func(t *testing.T) {
		t.Parallel()

		var got map[string]any
		handler := fieldchain.RequestBodyValidator(signupSchema(),
			fieldchain.WithValidatorOptions(validator.WithTrimUnknown()),
		)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = fieldchain.ValidatedBody(r.Context())
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, postJSON(`{"email":"a@b.co","password":"Aa1#abcd","extra":"drop"}`))

		require.NotNil(t, got)
		assert.NotContains(t, got, "extra")
	})

	t.Run("custom hooks replace the defaults", func(t *testing.T) {
		t.Parallel()

		invalidCalled := false
		handler := fieldchain.RequestBodyValidator(signupSchema(),
			fieldchain.WithOnInvalid(func(w http.ResponseWriter, _ *http.Request, result validator.ValidationResult) {
				invalidCalled = true
				assert.False(t, result.Success)
				w.WriteHeader(http.StatusBadRequest)
			}),
		)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, postJSON(`{}`))

		assert.True(t, invalidCalled)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("panics on an invalid schema", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { fieldchain.RequestBodyValidator(nil) })
	})
}

func TestValidatedBody(t *testing.T) {
	t.Parallel()

	t.Run("returns nil outside the middleware", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		assert.Nil(t, fieldchain.ValidatedBody(r.Context()))
	})
}

// Guard against handlers accidentally consuming the request body twice: the
// middleware owns body reading, downstream sees the decoded map only.
func TestRequestBodyValidator_BodyConsumed(t *testing.T) {
	t.Parallel()

	handler := fieldchain.RequestBodyValidator(signupSchema())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rest, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			assert.Empty(t, rest)
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, postJSON(`{"email":"a@b.co","password":"Aa1#abcd"}`))
	assert.Equal(t, http.StatusOK, rec.Code)
}
