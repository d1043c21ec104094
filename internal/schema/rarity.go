package schema

import (
	"slices"
	"strings"

	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/errors"
)

// DefaultRarityItemColor is the rarity manager form's color default
const DefaultRarityItemColor = "#000000"

// ParseRarity validates the rarity embedded in a talent. A nil input is the
// default common rarity.
func (s *Schema) ParseRarity(raw any) (talents.Rarity, error) {
	if raw == nil {
		return NormalizeRarity(talents.Rarity{Weight: talents.DefaultWeight}), nil
	}
	ve := errors.NewValidationError()
	r, ok := s.rarity(raw, nil, ve)
	if !ok {
		return talents.Rarity{}, result(ve)
	}
	return NormalizeRarity(r), nil
}

// rarity decodes a talent rarity. Weight is defaulted here because zero is a
// valid explicit weight; the tier default is left to normalization.
func (s *Schema) rarity(raw any, path errors.Path, ve *errors.ValidationError) (talents.Rarity, bool) {
	o, ok := s.object(raw, path, ve)
	if !ok {
		return talents.Rarity{}, false
	}

	mark := ve.Len()
	r := talents.Rarity{ID: o.optionalID(), Weight: talents.DefaultWeight}

	if v, ok := o.lookup("tier"); ok {
		tier, ok := v.(string)
		switch {
		case !ok:
			o.fail("tier", errors.ReasonInvalidType, "expected string, received %s", describe(v))
		case !slices.Contains(s.tiers, strings.ToLower(strings.TrimSpace(tier))):
			o.fail("tier", errors.ReasonFormat, "must be one of: %s", strings.Join(s.tiers, ", "))
		default:
			r.Tier = strings.ToLower(strings.TrimSpace(tier))
		}
	}

	if weight, ok := o.optionalNumber("weight", NonNegative); ok && weight != nil {
		r.Weight = *weight
	}

	if v, ok := o.lookup("color"); ok {
		r.Color, _ = hexColor(v, o.at("color"), ve)
	}

	o.done()
	return r, ve.Len() == mark
}

// ParseRarityItem validates a rarity manager form submission
func (s *Schema) ParseRarityItem(raw any) (*talents.RarityItem, error) {
	ve := errors.NewValidationError()
	o, ok := s.object(raw, nil, ve)
	if !ok {
		return nil, result(ve)
	}

	item := &talents.RarityItem{
		ID:     o.optionalID(),
		Color:  DefaultRarityItemColor,
		Weight: talents.DefaultWeight,
	}

	if name, ok := o.requiredString("name", 1, 0); ok {
		item.Name = strings.TrimSpace(name)
		if item.Name == "" {
			o.fail("name", errors.ReasonRequired, "is required")
		}
	}

	if v, ok := o.lookup("color"); ok {
		item.Color, _ = hexColor(v, o.at("color"), ve)
	}

	if weight, ok := o.optionalNumber("weight", NonNegative); ok && weight != nil {
		item.Weight = *weight
	}

	o.done()
	if err := result(ve); err != nil {
		return nil, err
	}
	return item, nil
}
