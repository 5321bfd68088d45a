package fieldchain

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/dmitrymomot/fieldchain/binder"
	"github.com/dmitrymomot/fieldchain/validator"
)

type contextKey struct{ name string }

var bodyKey = &contextKey{"validated-body"}

// ValidatedBody returns the validated (and possibly trimmed or normalized)
// request body stored by RequestBodyValidator's default success handler, or
// nil when the request did not pass through the middleware.
func ValidatedBody(ctx context.Context) map[string]any {
	body, _ := ctx.Value(bodyKey).(map[string]any)
	return body
}

// SuccessHandler runs when the body validates. It decides how the validated
// object reaches downstream handlers.
type SuccessHandler func(w http.ResponseWriter, r *http.Request, next http.Handler, body map[string]any)

// InvalidHandler runs when validation produced field errors.
type InvalidHandler func(w http.ResponseWriter, r *http.Request, result validator.ValidationResult)

// ErrorHandler runs when the validator itself faulted, a distinct class from
// invalid data.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

type middlewareConfig struct {
	log           *slog.Logger
	validatorOpts []validator.Option
	onSuccess     SuccessHandler
	onInvalid     InvalidHandler
	onError       ErrorHandler
}

// MiddlewareOption configures RequestBodyValidator.
type MiddlewareOption func(*middlewareConfig)

// WithLogger sets the logger for bind failures and validator faults.
func WithLogger(log *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if log != nil {
			c.log = log
		}
	}
}

// WithValidatorOptions forwards options to the underlying ObjectValidator,
// e.g. validator.WithTrimUnknown().
func WithValidatorOptions(opts ...validator.Option) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.validatorOpts = append(c.validatorOpts, opts...)
	}
}

// WithOnSuccess replaces the default success handler.
func WithOnSuccess(h SuccessHandler) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.onSuccess = h
		}
	}
}

// WithOnInvalid replaces the default invalid-data handler.
func WithOnInvalid(h InvalidHandler) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.onInvalid = h
		}
	}
}

// WithOnError replaces the default fault handler.
func WithOnError(h ErrorHandler) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.onError = h
		}
	}
}

// RequestBodyValidator returns middleware that binds the request body,
// validates it against schema, and invokes exactly one of the success,
// invalid, or error handlers. The core engine never sees the request beyond
// its body.
//
// Defaults: a validated body is stored in the request context (readable via
// ValidatedBody) and the chain continues; field errors answer 422 with a
// JSON error map; a validator fault answers 500 and is logged with the
// request's run ID. A malformed body or wrong media type answers 400.
//
// Schema problems are configuration errors and panic immediately, the same
// way an invalid schema fails validator.New.
func RequestBodyValidator(schema validator.Schema, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		log:       slog.Default(),
		onSuccess: defaultOnSuccess,
		onInvalid: defaultOnInvalid,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.onError == nil {
		cfg.onError = defaultOnError
	}

	v, err := validator.New(schema, cfg.validatorOpts...)
	if err != nil {
		panic(err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			runID := uuid.NewString()

			body, err := binder.Body(r)
			if err != nil {
				cfg.log.DebugContext(r.Context(), "request body rejected",
					slog.String("run_id", runID),
					slog.String("error", err.Error()),
				)
				respondJSON(w, http.StatusBadRequest, map[string]any{
					"error": "invalid request body",
				})
				return
			}

			result, err := v.Validate(r.Context(), body)
			if err != nil {
				cfg.log.ErrorContext(r.Context(), "validation run failed",
					slog.String("run_id", runID),
					slog.String("error", err.Error()),
				)
				cfg.onError(w, r, err)
				return
			}

			if !result.Success {
				cfg.onInvalid(w, r, result)
				return
			}

			cfg.onSuccess(w, r, next, body)
		})
	}
}

func defaultOnSuccess(w http.ResponseWriter, r *http.Request, next http.Handler, body map[string]any) {
	next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), bodyKey, body)))
}

func defaultOnInvalid(w http.ResponseWriter, _ *http.Request, result validator.ValidationResult) {
	respondJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"error":   "validation failed",
		"details": result.Errors.ByField(),
	})
}

func defaultOnError(w http.ResponseWriter, _ *http.Request, _ error) {
	respondJSON(w, http.StatusInternalServerError, map[string]any{
		"error": "internal server error",
	})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
