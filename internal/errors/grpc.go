package errors

import (
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// errorDomain identifies talent-api in google.rpc.ErrorInfo details
const errorDomain = "talent-api"

// ToGRPCError converts an error to a gRPC status error
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	// Check if it's already a gRPC status error
	if _, ok := status.FromError(err); ok {
		return err
	}

	return GRPCStatus(err).Err()
}

// GRPCStatus returns the gRPC status for any error. Validation issues are
// attached as a BadRequest detail plus an ErrorInfo carrying the reason of
// each violated path.
func GRPCStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}

	// Check if it's already a gRPC status
	if st, ok := status.FromError(err); ok {
		return st
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.New(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)

	issues := GetIssues(err)
	if len(issues) == 0 {
		return st
	}

	badRequest := &errdetails.BadRequest{}
	info := &errdetails.ErrorInfo{
		Reason:   "VALIDATION_FAILED",
		Domain:   errorDomain,
		Metadata: make(map[string]string, len(issues)),
	}
	for _, issue := range issues {
		field := issue.Path.String()
		badRequest.FieldViolations = append(badRequest.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       field,
			Description: issue.Message,
		})
		info.Metadata[field] = string(issue.Reason)
	}

	detailed, detailErr := st.WithDetails(badRequest, info)
	if detailErr != nil {
		return st
	}
	return detailed
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	code := grpcCodeToCode(st.Code())

	var badRequest *errdetails.BadRequest
	reasons := map[string]string{}
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.BadRequest:
			badRequest = d
		case *errdetails.ErrorInfo:
			if d.GetDomain() == errorDomain {
				reasons = d.GetMetadata()
			}
		}
	}

	if badRequest != nil && len(badRequest.GetFieldViolations()) > 0 {
		ve := NewValidationError()
		for _, fv := range badRequest.GetFieldViolations() {
			reason := Reason(reasons[fv.GetField()])
			if reason == "" {
				reason = ReasonFormat
			}
			ve.Add(ParsePath(fv.GetField()), reason, fv.GetDescription())
		}
		out := ve.ToError()
		out.Code = code
		return out
	}

	return &Error{
		Code:    code,
		Message: st.Message(),
	}
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeOK:
		return codes.OK
	case CodeCanceled:
		return codes.Canceled
	case CodeInvalidArgument:
		return codes.InvalidArgument
	case CodeDeadlineExceeded:
		return codes.DeadlineExceeded
	case CodeNotFound:
		return codes.NotFound
	case CodeAlreadyExists:
		return codes.AlreadyExists
	case CodePermissionDenied:
		return codes.PermissionDenied
	case CodeResourceExhausted:
		return codes.ResourceExhausted
	case CodeFailedPrecondition:
		return codes.FailedPrecondition
	case CodeAborted:
		return codes.Aborted
	case CodeOutOfRange:
		return codes.OutOfRange
	case CodeUnimplemented:
		return codes.Unimplemented
	case CodeInternal:
		return codes.Internal
	case CodeUnavailable:
		return codes.Unavailable
	case CodeDataLoss:
		return codes.DataLoss
	case CodeUnauthenticated:
		return codes.Unauthenticated
	default:
		return codes.Unknown
	}
}

// grpcCodeToCode converts a gRPC code to our error code
func grpcCodeToCode(grpcCode codes.Code) Code {
	switch grpcCode {
	case codes.OK:
		return CodeOK
	case codes.Canceled:
		return CodeCanceled
	case codes.InvalidArgument:
		return CodeInvalidArgument
	case codes.DeadlineExceeded:
		return CodeDeadlineExceeded
	case codes.NotFound:
		return CodeNotFound
	case codes.AlreadyExists:
		return CodeAlreadyExists
	case codes.PermissionDenied:
		return CodePermissionDenied
	case codes.ResourceExhausted:
		return CodeResourceExhausted
	case codes.FailedPrecondition:
		return CodeFailedPrecondition
	case codes.Aborted:
		return CodeAborted
	case codes.OutOfRange:
		return CodeOutOfRange
	case codes.Unimplemented:
		return CodeUnimplemented
	case codes.Internal:
		return CodeInternal
	case codes.Unavailable:
		return CodeUnavailable
	case codes.DataLoss:
		return CodeDataLoss
	case codes.Unauthenticated:
		return CodeUnauthenticated
	default:
		return CodeInternal
	}
}
