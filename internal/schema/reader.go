package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/KirkDiggler/talent-api/internal/errors"
)

// Sign constrains a numeric field
type Sign int

// Numeric constraints
const (
	AnySign Sign = iota
	NonNegative
	Positive
)

func (s Sign) check(v float64) string {
	switch s {
	case NonNegative:
		if v < 0 {
			return "must be greater than or equal to 0"
		}
	case Positive:
		if v <= 0 {
			return "must be greater than 0"
		}
	}
	return ""
}

// object reads fields out of one raw record. Every key looked up is recorded
// as part of the selected shape; the rest are stripped or, in strict mode,
// reported by done.
type object struct {
	fields map[string]any
	path   errors.Path
	ve     *errors.ValidationError
	strict bool
	known  map[string]bool
}

func (s *Schema) object(raw any, path errors.Path, ve *errors.ValidationError) (*object, bool) {
	m, ok := raw.(map[string]any)
	if !ok {
		ve.Addf(path, errors.ReasonInvalidType, "expected object, received %s", describe(raw))
		return nil, false
	}
	return &object{
		fields: m,
		path:   path,
		ve:     ve,
		strict: s.opts.Strict,
		known:  make(map[string]bool, len(m)),
	}, true
}

func (o *object) at(key string) errors.Path {
	return o.path.Field(key)
}

func (o *object) fail(key string, reason errors.Reason, format string, args ...any) {
	o.ve.Addf(o.at(key), reason, format, args...)
}

// lookup returns the value under key. JSON null counts as absent.
func (o *object) lookup(key string) (any, bool) {
	o.known[key] = true
	v, ok := o.fields[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (o *object) has(key string) bool {
	_, ok := o.lookup(key)
	return ok
}

// done reports keys outside the selected shape when running strict
func (o *object) done() {
	if !o.strict {
		return
	}
	var unknown []string
	for key := range o.fields {
		if !o.known[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		o.fail(key, errors.ReasonUnknownField, "is not a recognized field")
	}
}

// kind reads a discriminator. It only checks that one is present; the caller's
// switch decides whether the value is recognized.
func (o *object) kind(key string, accepted []string) (string, bool) {
	v, ok := o.lookup(key)
	if !ok {
		o.fail(key, errors.ReasonUnknownVariant, "is required, expected one of: %s", strings.Join(accepted, ", "))
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		o.fail(key, errors.ReasonUnknownVariant, "expected one of: %s, received %s", strings.Join(accepted, ", "), describe(v))
		return "", false
	}
	return s, true
}

func (o *object) unknownVariant(key, value string, accepted []string) {
	o.fail(key, errors.ReasonUnknownVariant, "unknown %s %q, expected one of: %s", key, value, strings.Join(accepted, ", "))
}

func (o *object) stringValue(key string, v any, minLen, maxLen int) (string, bool) {
	s, ok := v.(string)
	if !ok {
		o.fail(key, errors.ReasonInvalidType, "expected string, received %s", describe(v))
		return "", false
	}
	n := len([]rune(s))
	if n < minLen {
		if minLen == 1 {
			o.fail(key, errors.ReasonFormat, "must not be empty")
		} else {
			o.fail(key, errors.ReasonFormat, "must be at least %d characters", minLen)
		}
		return "", false
	}
	if maxLen > 0 && n > maxLen {
		o.fail(key, errors.ReasonFormat, "must be at most %d characters", maxLen)
		return "", false
	}
	return s, true
}

// requiredString reads a string with a length range; maxLen 0 means unbounded
func (o *object) requiredString(key string, minLen, maxLen int) (string, bool) {
	v, ok := o.lookup(key)
	if !ok {
		o.fail(key, errors.ReasonRequired, "is required")
		return "", false
	}
	return o.stringValue(key, v, minLen, maxLen)
}

// optionalString returns "" when the key is absent
func (o *object) optionalString(key string, minLen, maxLen int) (string, bool) {
	v, ok := o.lookup(key)
	if !ok {
		return "", true
	}
	return o.stringValue(key, v, minLen, maxLen)
}

func (o *object) optionalBool(key string) (bool, bool) {
	v, ok := o.lookup(key)
	if !ok {
		return false, true
	}
	b, ok := v.(bool)
	if !ok {
		o.fail(key, errors.ReasonInvalidType, "expected boolean, received %s", describe(v))
		return false, false
	}
	return b, true
}

func (o *object) numberValue(key string, v any, sign Sign) (float64, bool) {
	n, ok := toNumber(v)
	if !ok {
		o.fail(key, errors.ReasonInvalidType, "expected number, received %s", describe(v))
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		o.fail(key, errors.ReasonFormat, "must be a finite number")
		return 0, false
	}
	if msg := sign.check(n); msg != "" {
		o.fail(key, errors.ReasonFormat, "%s", msg)
		return 0, false
	}
	return n, true
}

func (o *object) requiredNumber(key string, sign Sign) (float64, bool) {
	v, ok := o.lookup(key)
	if !ok {
		o.fail(key, errors.ReasonRequired, "is required")
		return 0, false
	}
	return o.numberValue(key, v, sign)
}

// optionalNumber returns nil when the key is absent
func (o *object) optionalNumber(key string, sign Sign) (*float64, bool) {
	v, ok := o.lookup(key)
	if !ok {
		return nil, true
	}
	n, ok := o.numberValue(key, v, sign)
	if !ok {
		return nil, false
	}
	return &n, true
}

func (o *object) intValue(key string, v any, sign Sign) (int, bool) {
	n, ok := o.numberValue(key, v, AnySign)
	if !ok {
		return 0, false
	}
	if n != math.Trunc(n) || n > math.MaxInt32 || n < math.MinInt32 {
		o.fail(key, errors.ReasonFormat, "must be an integer")
		return 0, false
	}
	if msg := sign.check(n); msg != "" {
		o.fail(key, errors.ReasonFormat, "%s", msg)
		return 0, false
	}
	return int(n), true
}

func (o *object) requiredInt(key string, sign Sign) (int, bool) {
	v, ok := o.lookup(key)
	if !ok {
		o.fail(key, errors.ReasonRequired, "is required")
		return 0, false
	}
	return o.intValue(key, v, sign)
}

// optionalInt returns nil when the key is absent
func (o *object) optionalInt(key string, sign Sign) (*int, bool) {
	v, ok := o.lookup(key)
	if !ok {
		return nil, true
	}
	n, ok := o.intValue(key, v, sign)
	if !ok {
		return nil, false
	}
	return &n, true
}

// optionalList returns nil when the key is absent
func (o *object) optionalList(key string) ([]any, bool) {
	v, ok := o.lookup(key)
	if !ok {
		return nil, true
	}
	list, ok := v.([]any)
	if !ok {
		o.fail(key, errors.ReasonInvalidType, "expected array, received %s", describe(v))
		return nil, false
	}
	return list, true
}

// optionalID reads the optional string id carried by sub-entities
func (o *object) optionalID() string {
	id, _ := o.optionalString("id", 1, 0)
	return id
}

// enum reads an enumerated string. An absent value yields def; when def is
// empty the field is required.
func enum[T ~string](o *object, key string, allowed []T, def T) (T, bool) {
	v, ok := o.lookup(key)
	if !ok {
		if def == "" {
			o.fail(key, errors.ReasonRequired, "is required")
			return "", false
		}
		return def, true
	}
	s, ok := v.(string)
	if !ok {
		o.fail(key, errors.ReasonInvalidType, "expected string, received %s", describe(v))
		return "", false
	}
	if !slices.Contains(allowed, T(s)) {
		o.fail(key, errors.ReasonFormat, "must be one of: %s", joinValues(allowed))
		return "", false
	}
	return T(s), true
}

// optionalEnum reads an enumerated string with no default
func optionalEnum[T ~string](o *object, key string, allowed []T) (T, bool) {
	if !o.has(key) {
		return "", true
	}
	return enum(o, key, allowed, "")
}

func names[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func joinValues[T ~string](values []T) string {
	return strings.Join(names(values), ", ")
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// describe names the JSON kind of a raw value for messages
func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int32, int64, json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
