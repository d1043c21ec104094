// Package builders provides test data builders for raw form submissions
package builders

import (
	"maps"
)

// TalentBuilder provides a fluent interface for building raw talent form
// values, the loosely typed maps a client submits before validation
type TalentBuilder struct {
	raw map[string]any
}

// NewTalentBuilder creates a builder for a minimal valid talent: one damage
// effect gated by a one-turn cooldown
func NewTalentBuilder() *TalentBuilder {
	return &TalentBuilder{
		raw: map[string]any{
			"name":        "Test Talent",
			"description": "A talent built for tests",
			"cooldown":    1.0,
			"effects": []any{
				map[string]any{"kind": "damage", "damageType": "fire", "amount": "1d6"},
			},
		},
	}
}

// WithID sets the talent ID
func (b *TalentBuilder) WithID(id any) *TalentBuilder {
	b.raw["id"] = id
	return b
}

// WithName sets the talent name
func (b *TalentBuilder) WithName(name string) *TalentBuilder {
	b.raw["name"] = name
	return b
}

// WithDescription sets the talent description
func (b *TalentBuilder) WithDescription(description string) *TalentBuilder {
	b.raw["description"] = description
	return b
}

// WithTags replaces the tags
func (b *TalentBuilder) WithTags(tags ...string) *TalentBuilder {
	list := make([]any, len(tags))
	for i, t := range tags {
		list[i] = t
	}
	b.raw["tags"] = list
	return b
}

// WithRank sets rank and maxRank
func (b *TalentBuilder) WithRank(rank, maxRank int) *TalentBuilder {
	b.raw["rank"] = float64(rank)
	b.raw["maxRank"] = float64(maxRank)
	return b
}

// WithCooldown sets the talent-level cooldown; zero removes it
func (b *TalentBuilder) WithCooldown(turns int) *TalentBuilder {
	if turns == 0 {
		delete(b.raw, "cooldown")
		return b
	}
	b.raw["cooldown"] = float64(turns)
	return b
}

// WithCost appends a cost component
func (b *TalentBuilder) WithCost(cost map[string]any) *TalentBuilder {
	return b.appendTo("costs", cost)
}

// WithEffect appends an effect
func (b *TalentBuilder) WithEffect(effect map[string]any) *TalentBuilder {
	return b.appendTo("effects", effect)
}

// WithoutEffects removes every effect
func (b *TalentBuilder) WithoutEffects() *TalentBuilder {
	b.raw["effects"] = []any{}
	return b
}

// WithRequirement appends a requirement
func (b *TalentBuilder) WithRequirement(req map[string]any) *TalentBuilder {
	return b.appendTo("requirements", req)
}

// WithRarity sets the rarity block
func (b *TalentBuilder) WithRarity(tier string, weight float64) *TalentBuilder {
	b.raw["rarity"] = map[string]any{"tier": tier, "weight": weight}
	return b
}

// WithField sets an arbitrary field, including ones the schema does not know
func (b *TalentBuilder) WithField(key string, value any) *TalentBuilder {
	b.raw[key] = value
	return b
}

// Build returns a copy of the raw form
func (b *TalentBuilder) Build() map[string]any {
	return maps.Clone(b.raw)
}

func (b *TalentBuilder) appendTo(key string, value map[string]any) *TalentBuilder {
	list, _ := b.raw[key].([]any)
	b.raw[key] = append(append([]any{}, list...), value)
	return b
}
