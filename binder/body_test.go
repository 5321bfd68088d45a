package binder_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldchain/binder"
)

func TestBody(t *testing.T) {
	t.Parallel()

	t.Run("decodes a JSON object", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"ada","age":36}`))
		r.Header.Set("Content-Type", "application/json")

		obj, err := binder.Body(r)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "ada", "age": float64(36)}, obj)
	})

	t.Run("empty body yields an empty object", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/", strings.NewReader(""))
		r.Header.Set("Content-Type", "application/json")

		obj, err := binder.Body(r)
		require.NoError(t, err)
		assert.Empty(t, obj)
	})

	t.Run("missing content type is tolerated", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"ok":true}`))

		obj, err := binder.Body(r)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"ok": true}, obj)
	})

	t.Run("content type with charset parameter is accepted", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/", strings.NewReader(`{}`))
		r.Header.Set("Content-Type", "application/json; charset=utf-8")

		_, err := binder.Body(r)
		assert.NoError(t, err)
	})

	t.Run("rejects non-JSON content type", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/", strings.NewReader("a=1"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		_, err := binder.Body(r)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":`))
		r.Header.Set("Content-Type", "application/json")

		_, err := binder.Body(r)
		assert.ErrorIs(t, err, binder.ErrInvalidJSON)
	})

	t.Run("rejects non-object JSON", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/", strings.NewReader(`[1,2,3]`))
		r.Header.Set("Content-Type", "application/json")

		_, err := binder.Body(r)
		assert.ErrorIs(t, err, binder.ErrInvalidJSON)
	})

	t.Run("rejects trailing data after the object", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/", strings.NewReader(`{} {}`))
		r.Header.Set("Content-Type", "application/json")

		_, err := binder.Body(r)
		assert.ErrorIs(t, err, binder.ErrInvalidJSON)
	})
}
