package talent

import (
	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/errors"
)

// ValidateTalentInput defines the request for a dry-run validation
type ValidateTalentInput struct {
	Raw map[string]any
}

// ValidateTalentOutput reports the normalized talent or the issues found
type ValidateTalentOutput struct {
	Valid  bool
	Talent *talents.Talent
	Issues []errors.Issue
}

// CreateTalentInput defines the request for creating a talent
type CreateTalentInput struct {
	Raw map[string]any
}

// CreateTalentOutput defines the response for creating a talent
type CreateTalentOutput struct {
	Talent *talents.Talent
}

// UpdateTalentInput defines an edit. Changes are applied on top of the stored
// talent's fields and the result is validated as a whole; a nil value clears
// the field.
type UpdateTalentInput struct {
	ID      string
	Changes map[string]any
}

// UpdateTalentOutput defines the response for updating a talent
type UpdateTalentOutput struct {
	Talent *talents.Talent
}

// GetTalentInput defines the request for getting a talent
type GetTalentInput struct {
	ID string
}

// GetTalentOutput defines the response for getting a talent
type GetTalentOutput struct {
	Talent *talents.Talent
}

// ListTalentsInput defines the request for listing talents
type ListTalentsInput struct {
	Tag string
}

// ListTalentsOutput defines the response for listing talents
type ListTalentsOutput struct {
	Talents []*talents.Talent
}

// DeleteTalentInput defines the request for deleting a talent
type DeleteTalentInput struct {
	ID string
}

// DeleteTalentOutput defines the response for deleting a talent
type DeleteTalentOutput struct{}

// PreviewEffectsInput selects the talent whose effects are rolled
type PreviewEffectsInput struct {
	ID string
}

// PreviewEffectsOutput contains one preview per effect carrying an amount
type PreviewEffectsOutput struct {
	TalentID string
	Previews []*EffectPreview
}

// EffectPreview is the rolled outcome of a single effect amount
type EffectPreview struct {
	EffectID string
	Kind     talents.EffectKind
	Target   talents.Target
	// Field is the amount field rolled: "value" for stat-mod, "amount" otherwise
	Field    string
	Notation string
	IsDice   bool
	Min      float64
	Max      float64
	Rolled   float64
	Dice     []int
	Duration talents.Duration
}

// RevalidateTalentsInput defines the request for re-checking stored talents
type RevalidateTalentsInput struct{}

// RevalidateTalentsOutput lists stored talents the current schema rejects
type RevalidateTalentsOutput struct {
	Checked  int
	Rejected []*RejectedTalent
}

// RejectedTalent is a stored talent that no longer validates
type RejectedTalent struct {
	ID     string
	Name   string
	Issues []errors.Issue
}
