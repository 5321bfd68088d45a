// Package fieldchain validates plain data objects against per-field chains
// of checks and adapts the engine to HTTP request handling.
//
// The engine itself lives in the validator package: a Schema maps field names
// to Chains, each Chain is a continuation-passing pipeline of synchronous and
// asynchronous checks, and an ObjectValidator runs all field chains
// concurrently and aggregates their outcomes into one result. This root
// package contributes the boundary glue: RequestBodyValidator wraps an
// http.Handler, binds the JSON request body, validates it, and dispatches to
// exactly one of the configurable success, invalid, or fault handlers.
//
//	schema := validator.Schema{
//	    "email":    validator.NewChain().Required().IsString(validator.StringOpts{Trim: true, Case: validator.CaseLower}).Email(),
//	    "password": validator.NewChain().Required().Password(validator.PasswordOpts{}),
//	}
//
//	mux.Handle("POST /signup", fieldchain.RequestBodyValidator(schema,
//	    fieldchain.WithValidatorOptions(validator.WithTrimUnknown()),
//	)(signupHandler))
//
// Downstream handlers read the validated, normalized body with
// fieldchain.ValidatedBody(r.Context()).
package fieldchain
