package v1alpha1

import (
	"encoding/json"
	"math"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/errors"
	"github.com/KirkDiggler/talent-api/internal/orchestrators/talent"
)

// Issue is the wire form of a validation issue
type Issue struct {
	Path    string `json:"path"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// TalentValidation is the ValidateTalent response
type TalentValidation struct {
	Valid  bool            `json:"valid"`
	Talent *talents.Talent `json:"talent,omitempty"`
	Issues []Issue         `json:"issues,omitempty"`
}

// ReportValidation is the ValidateReport response
type ReportValidation struct {
	Valid  bool            `json:"valid"`
	Report *talents.Report `json:"report,omitempty"`
	Issues []Issue         `json:"issues,omitempty"`
}

// EffectPreview is the wire form of a rolled effect amount
type EffectPreview struct {
	EffectID string           `json:"effectId"`
	Kind     string           `json:"kind"`
	Target   string           `json:"target"`
	Field    string           `json:"field"`
	Notation string           `json:"notation"`
	IsDice   bool             `json:"isDice"`
	Min      float64          `json:"min"`
	Max      float64          `json:"max"`
	Rolled   float64          `json:"rolled"`
	Dice     []int            `json:"dice,omitempty"`
	Duration talents.Duration `json:"duration"`
}

// EffectPreviews is the PreviewEffects response
type EffectPreviews struct {
	TalentID string          `json:"talentId"`
	Previews []EffectPreview `json:"previews"`
}

// RejectedTalent is a stored talent the current schema no longer accepts
type RejectedTalent struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Issues []Issue `json:"issues"`
}

// Revalidation is the RevalidateTalents response
type Revalidation struct {
	Checked  int              `json:"checked"`
	Rejected []RejectedTalent `json:"rejected"`
}

func toIssues(in []errors.Issue) []Issue {
	out := make([]Issue, len(in))
	for i, issue := range in {
		out[i] = Issue{Path: issue.Path.String(), Reason: string(issue.Reason), Message: issue.Message}
	}
	return out
}

// FromIssues converts wire issues back into path-addressed issues
func FromIssues(in []Issue) []errors.Issue {
	out := make([]errors.Issue, len(in))
	for i, issue := range in {
		out[i] = errors.Issue{
			Path:    errors.ParsePath(issue.Path),
			Reason:  errors.Reason(issue.Reason),
			Message: issue.Message,
		}
	}
	return out
}

func toPreviews(out *talent.PreviewEffectsOutput) *EffectPreviews {
	previews := make([]EffectPreview, len(out.Previews))
	for i, p := range out.Previews {
		previews[i] = EffectPreview{
			EffectID: p.EffectID,
			Kind:     string(p.Kind),
			Target:   string(p.Target),
			Field:    p.Field,
			Notation: p.Notation,
			IsDice:   p.IsDice,
			Min:      p.Min,
			Max:      p.Max,
			Rolled:   p.Rolled,
			Dice:     p.Dice,
			Duration: p.Duration,
		}
	}
	return &EffectPreviews{TalentID: out.TalentID, Previews: previews}
}

func toRevalidation(out *talent.RevalidateTalentsOutput) *Revalidation {
	rejected := make([]RejectedTalent, len(out.Rejected))
	for i, r := range out.Rejected {
		rejected[i] = RejectedTalent{ID: r.ID, Name: r.Name, Issues: toIssues(r.Issues)}
	}
	return &Revalidation{Checked: out.Checked, Rejected: rejected}
}

// encode renders v as a Struct through its JSON form
func encode(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}

	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return s, nil
}

// decode fills v from a Struct through its JSON form
func decode(s *structpb.Struct, v any) error {
	data, err := json.Marshal(s.AsMap())
	if err != nil {
		return errors.Wrap(err, "failed to decode payload")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode payload")
	}
	return nil
}

// envelope wraps a value under a single key
func envelope(key string, v any) (*structpb.Struct, error) {
	return encode(map[string]any{key: v})
}

// request reads request fields
type request struct {
	fields map[string]any
}

func newRequest(s *structpb.Struct) request {
	if s == nil {
		return request{fields: map[string]any{}}
	}
	return request{fields: s.AsMap()}
}

func (r request) stringField(key string) string {
	v, _ := r.fields[key].(string)
	return v
}

func (r request) requiredString(key string) (string, error) {
	v := r.stringField(key)
	if v == "" {
		return "", errors.InvalidArgumentf("%s is required", key)
	}
	return v, nil
}

func (r request) boolField(key string) bool {
	v, _ := r.fields[key].(bool)
	return v
}

// intField reads a whole number; missing is zero
func (r request) intField(key string) (int, error) {
	raw, ok := r.fields[key]
	if !ok || raw == nil {
		return 0, nil
	}
	n, ok := raw.(float64)
	if !ok || n != math.Trunc(n) || math.IsInf(n, 0) {
		return 0, errors.InvalidArgumentf("%s must be a whole number", key)
	}
	return int(n), nil
}

// objectField reads a nested object. A missing object reads as empty so the
// schema reports each required field.
func (r request) objectField(key string) (map[string]any, error) {
	raw, ok := r.fields[key]
	if !ok || raw == nil {
		return map[string]any{}, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, errors.InvalidArgumentf("%s must be an object", key)
	}
	return m, nil
}
