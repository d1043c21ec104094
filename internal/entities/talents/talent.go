package talents

import (
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Entity types reported to rpg-toolkit
const (
	EntityTypeTalent = "talent"
	EntityTypeRarity = "rarity"
)

// Talent defaults
const (
	DefaultTier     = "common"
	DefaultWeight   = 1.0
	DefaultCooldown = 0
	DefaultRank     = 1
	DefaultMaxRank  = 1
)

// Rarity is the classification tier embedded in a talent
type Rarity struct {
	ID     string  `json:"id,omitempty"`
	Tier   string  `json:"tier"`
	Weight float64 `json:"weight"`
	Color  string  `json:"color,omitempty"`
}

// Talent is a validated, fully defaulted talent record
type Talent struct {
	ID           string        `json:"id,omitempty"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Icon         string        `json:"icon,omitempty"`
	IsKeyTalent  bool          `json:"isKeyTalent"`
	Tags         []string      `json:"tags"`
	Category     string        `json:"category,omitempty"`
	Requirements []Requirement `json:"requirements"`
	Costs        []Cost        `json:"costs"`
	Rarity       Rarity        `json:"rarity"`
	Effects      []Effect      `json:"effects"`
	Cooldown     int           `json:"cooldown"`
	Rank         int           `json:"rank"`
	MaxRank      int           `json:"maxRank"`
}

var _ core.Entity = (*Talent)(nil)

// GetID returns the talent's ID
func (t *Talent) GetID() string {
	return t.ID
}

// GetType returns the entity type for rpg-toolkit
func (t *Talent) GetType() string {
	return EntityTypeTalent
}

// Clone returns a copy that shares no slices with t. Variants are values, so
// copying the slice headers' contents is enough.
func (t *Talent) Clone() *Talent {
	if t == nil {
		return nil
	}
	out := *t
	out.Tags = append([]string{}, t.Tags...)
	out.Requirements = append([]Requirement{}, t.Requirements...)
	out.Costs = append([]Cost{}, t.Costs...)
	out.Effects = append([]Effect{}, t.Effects...)
	return &out
}

// UnmarshalJSON decodes the variant lists by their kind tags
func (t *Talent) UnmarshalJSON(data []byte) error {
	type alias Talent
	aux := struct {
		*alias
		Requirements []json.RawMessage `json:"requirements"`
		Costs        []json.RawMessage `json:"costs"`
		Effects      []json.RawMessage `json:"effects"`
	}{alias: (*alias)(t)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	t.Requirements = make([]Requirement, 0, len(aux.Requirements))
	for i, raw := range aux.Requirements {
		r, err := UnmarshalRequirement(raw)
		if err != nil {
			return fmt.Errorf("requirements[%d]: %w", i, err)
		}
		t.Requirements = append(t.Requirements, r)
	}

	t.Costs = make([]Cost, 0, len(aux.Costs))
	for i, raw := range aux.Costs {
		c, err := UnmarshalCost(raw)
		if err != nil {
			return fmt.Errorf("costs[%d]: %w", i, err)
		}
		t.Costs = append(t.Costs, c)
	}

	t.Effects = make([]Effect, 0, len(aux.Effects))
	for i, raw := range aux.Effects {
		e, err := UnmarshalEffect(raw)
		if err != nil {
			return fmt.Errorf("effects[%d]: %w", i, err)
		}
		t.Effects = append(t.Effects, e)
	}

	if t.Tags == nil {
		t.Tags = []string{}
	}
	return nil
}

// RarityItem is a record managed by the rarity manager
type RarityItem struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	Weight float64 `json:"weight"`
}

var _ core.Entity = (*RarityItem)(nil)

// GetID returns the rarity's ID
func (r *RarityItem) GetID() string {
	return r.ID
}

// GetType returns the entity type for rpg-toolkit
func (r *RarityItem) GetType() string {
	return EntityTypeRarity
}
