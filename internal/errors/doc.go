// Package errors provides the structured error type used across talent-api.
//
// Every error carries a Code, a user-facing message, optional metadata and an
// optional cause:
//
//	err := errors.NotFound("talent not found").WithMeta("talent_id", id)
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load talent")
//	}
//
// # Validation Issues
//
// Schema validation never stops at the first problem. Issues are collected
// against a Path that addresses the offending value inside the raw record,
// field names and list indexes alike:
//
//	ve := errors.NewValidationError()
//	ve.Add(errors.Path{"effects", 0, "amount"}, errors.ReasonFormat, "must be a dice expression like 1d8+2")
//	return ve.ToError()
//
// The returned *Error has CodeInvalidArgument and unwraps to the
// *ValidationError, so callers can recover every issue:
//
//	for _, issue := range errors.GetIssues(err) {
//	    fmt.Println(issue.Path, issue.Message)
//	}
//
// Dependency checks in constructors use the fluent builder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Repository == nil {
//	    vb.RequiredField("Repository")
//	}
//	return vb.Build()
//
// # gRPC Integration
//
// ToGRPCError maps codes to gRPC status codes. Validation failures are sent as
// a google.rpc.BadRequest detail with one field violation per issue, and
// FromGRPCError rebuilds the issue list on the client side.
package errors
