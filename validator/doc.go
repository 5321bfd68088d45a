// Package validator implements a schema-driven object validator built around
// per-field chains of checks.
//
// A Schema maps field names to Chains; a Chain is an ordered,
// continuation-passing pipeline of checks where each step decides to hand
// control onward, short-circuit with a failure, or suspend on an asynchronous
// operation. The ObjectValidator runs every field's chain concurrently,
// applies the mutations checks request on the object (trimming, case
// folding), optionally strips undeclared keys, and aggregates all field
// outcomes into a single ValidationResult once every chain has settled.
//
// # Architecture
//
// Core building blocks:
//   - Chain           – ordered checks for one field, built fluently
//   - CheckFunc       – one decision step: (ctx, value, field, next) -> Result
//   - Result          – tagged pass / fail / pending variant
//   - Context         – per-run state: root object, current subtree, path
//   - ObjectValidator – concurrent per-field orchestration and aggregation
//   - Registry        – named check factories for Custom steps
//
// Chains and schemas are immutable after construction and safe for unlimited
// concurrent reuse; all per-invocation state lives on the stack of each run.
// Checks read and write field values through the Context's locked accessors,
// so independent field chains may mutate the shared object safely as long as
// no two chains write the same field.
//
// # Usage
//
//	schema := validator.Schema{
//	    "email":    validator.NewChain().Required().IsString(validator.StringOpts{Trim: true, Case: validator.CaseLower}).Email(),
//	    "password": validator.NewChain().Required().Password(validator.PasswordOpts{}),
//	    "repeatPassword": validator.NewChain().SameAs(validator.SameAsOpts{Path: "$/password"}),
//	}
//
//	v, err := validator.New(schema, validator.WithTrimUnknown())
//	if err != nil {
//	    // invalid configuration
//	}
//
//	result, err := v.Validate(ctx, body)
//	switch {
//	case err != nil:
//	    // the validator itself broke: panicking check, timeout, contract violation
//	case !result.Success:
//	    // invalid data: result.Errors maps fields to messages
//	}
//
// # Asynchronous checks
//
// A check may return a pending Result produced by Defer (or a raw
// *async.Future[any] from a Func callback). The chain suspends until the
// future settles and normalizes whatever it resolves to, so asynchronous
// checks compose with synchronous ones in a single ordered chain. An optional
// WithTimeout bounds the wait per pending check.
//
// # Error Handling
//
// Three classes are kept apart: configuration errors panic at construction
// (nil regex pattern, empty SameAs path, invalid case mode); business-rule
// failures are collected into ValidationResult.Errors and never abort sibling
// chains; run-level faults (recovered panics, unsupported check returns,
// timeouts) surface as the error return of Validate.
package validator
