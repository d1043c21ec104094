package errors

import (
	"fmt"
	"strconv"
	"strings"
)

const metaValidationIssues = "validation_errors"

// Path addresses a value inside a raw record. Elements are field names
// (string) or list indexes (int).
type Path []any

// Field returns a copy of p extended with a field name.
func (p Path) Field(name string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, name)
}

// Index returns a copy of p extended with a list index.
func (p Path) Index(i int) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, i)
}

// String renders the path as effects[0].amount
func (p Path) String() string {
	var b strings.Builder
	for _, el := range p {
		switch v := el.(type) {
		case int:
			b.WriteString("[")
			b.WriteString(strconv.Itoa(v))
			b.WriteString("]")
		default:
			if b.Len() > 0 {
				b.WriteString(".")
			}
			fmt.Fprint(&b, v)
		}
	}
	return b.String()
}

// ParsePath is the inverse of Path.String.
func ParsePath(s string) Path {
	var p Path
	for _, part := range strings.Split(s, ".") {
		if part == "" {
			continue
		}
		name := part
		var idx []int
		if open := strings.IndexByte(part, '['); open >= 0 {
			name = part[:open]
			for _, raw := range strings.Split(part[open+1:], "[") {
				n, err := strconv.Atoi(strings.TrimSuffix(raw, "]"))
				if err == nil {
					idx = append(idx, n)
				}
			}
		}
		if name != "" {
			p = append(p, name)
		}
		for _, n := range idx {
			p = append(p, n)
		}
	}
	return p
}

// Reason is a machine-checkable classification of a validation issue.
type Reason string

// Validation reasons
const (
	// ReasonRequired means a field the selected shape needs is missing.
	ReasonRequired Reason = "required"
	// ReasonInvalidType means a value has the wrong JSON kind.
	ReasonInvalidType Reason = "invalid_type"
	// ReasonUnknownField means a key does not belong to the selected shape.
	ReasonUnknownField Reason = "unknown_field"
	// ReasonFormat means a primitive failed a pattern, length or range check.
	ReasonFormat Reason = "format"
	// ReasonUnknownVariant means a discriminator is absent or unrecognized.
	ReasonUnknownVariant Reason = "unknown_variant"
	// ReasonRefinement means an otherwise valid record broke a cross-field rule.
	ReasonRefinement Reason = "refinement"
)

// IsStructural reports whether the reason belongs to the structural class.
func (r Reason) IsStructural() bool {
	return r == ReasonRequired || r == ReasonInvalidType || r == ReasonUnknownField
}

// Issue is a single path-addressed validation failure.
type Issue struct {
	Path    Path   `json:"path"`
	Message string `json:"message"`
	Reason  Reason `json:"reason"`
}

// String implements fmt.Stringer
func (i Issue) String() string {
	if len(i.Path) == 0 {
		return i.Message
	}
	return fmt.Sprintf("%s: %s", i.Path, i.Message)
}

// ValidationError collects every issue found while validating a record.
// Issues keep the order they were discovered in.
type ValidationError struct {
	Issues []Issue `json:"issues"`
}

// Error implements the error interface
func (v *ValidationError) Error() string {
	if len(v.Issues) == 0 {
		return "validation failed"
	}

	parts := make([]string, len(v.Issues))
	for i, issue := range v.Issues {
		parts[i] = issue.String()
	}
	return strings.Join(parts, "; ")
}

// NewValidationError creates a new validation error
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

// Add records an issue at path
func (v *ValidationError) Add(path Path, reason Reason, message string) {
	v.Issues = append(v.Issues, Issue{Path: path, Message: message, Reason: reason})
}

// Addf records a formatted issue at path
func (v *ValidationError) Addf(path Path, reason Reason, format string, args ...any) {
	v.Add(path, reason, fmt.Sprintf(format, args...))
}

// HasErrors returns true if there are any validation errors
func (v *ValidationError) HasErrors() bool {
	return len(v.Issues) > 0
}

// Len returns the number of issues collected so far
func (v *ValidationError) Len() int {
	return len(v.Issues)
}

// ToError converts the validation error to our standard error type
func (v *ValidationError) ToError() *Error {
	if !v.HasErrors() {
		return nil
	}

	return &Error{
		Code:    CodeInvalidArgument,
		Message: "validation failed",
		Cause:   v,
		Meta:    map[string]any{metaValidationIssues: v.Issues},
	}
}

// ValidationBuilder provides a fluent interface for building validation errors.
// It accumulates field-level validation errors and returns nil if no errors
// are present, or an InvalidArgument error with detailed field information.
type ValidationBuilder struct {
	err *ValidationError
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{
		err: NewValidationError(),
	}
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.err.Add(Path{field}, ReasonFormat, message)
	return vb
}

// Fieldf adds a formatted validation error for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	vb.err.Add(Path{field}, ReasonRequired, "is required")
	return vb
}

// InvalidField adds an invalid field error
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Fieldf(field, "is invalid: %s", reason)
}

// Build returns the error if there are validation errors, nil otherwise
func (vb *ValidationBuilder) Build() error {
	if vb.err.HasErrors() {
		return vb.err.ToError()
	}
	return nil
}

// Validation helper functions

// ValidateRequired checks if a string field is required
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateRange checks if a value is within a range
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}

// ValidateEnum checks if a value is in a list of allowed values
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
}
