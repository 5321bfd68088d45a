// Package binder decodes HTTP request bodies into the plain objects the
// validation engine runs against.
package binder

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/goccy/go-json"
)

// Body decodes a JSON request body into a map. An absent or empty body
// yields an empty map rather than an error, so schemas with required fields
// report the missing data as field errors instead of a transport failure.
//
// A Content-Type other than application/json is rejected when present; a
// missing header is tolerated since the body is inspected anyway. The body
// must hold a single JSON object: arrays, scalars, and trailing garbage are
// invalid.
func Body(r *http.Request) (map[string]any, error) {
	if contentType := r.Header.Get("Content-Type"); contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			return nil, ErrUnsupportedMediaType
		}
	}

	if r.Body == nil {
		return map[string]any{}, nil
	}

	decoder := json.NewDecoder(r.Body)

	obj := map[string]any{}
	if err := decoder.Decode(&obj); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, errors.Join(ErrInvalidJSON, err)
	}

	// Ensure the entire body was consumed
	var extra json.RawMessage
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, ErrInvalidJSON
	}

	return obj, nil
}
