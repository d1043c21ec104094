package schema

import (
	"math"
	"strconv"

	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/errors"
)

// Messages of the aggregate refinements
const (
	MessageRankExceedsMax = "rank cannot exceed maxRank"
	MessageUngatedEffects = "a talent with effects needs at least one cost component or a cooldown"
)

// ParseTalent validates a raw talent and returns it normalized. Refinements
// run only when every field, list element and the rarity passed.
func (s *Schema) ParseTalent(raw map[string]any) (*talents.Talent, error) {
	ve := errors.NewValidationError()

	t, ok := s.talent(raw, ve)
	if !ok {
		return nil, result(ve)
	}

	normalized := NormalizeTalent(t)
	refineTalent(normalized, ve)
	if err := result(ve); err != nil {
		return nil, err
	}
	return normalized, nil
}

func (s *Schema) talent(raw map[string]any, ve *errors.ValidationError) (*talents.Talent, bool) {
	o, ok := s.object(raw, nil, ve)
	if !ok {
		return nil, false
	}

	t := &talents.Talent{}

	// identity and scalar fields
	t.ID = talentID(o)
	t.Name, _ = o.requiredString("name", 2, 100)
	t.Description, _ = o.requiredString("description", 2, 500)
	t.Icon, _ = o.optionalString("icon", 2, 100)
	t.IsKeyTalent, _ = o.optionalBool("isKeyTalent")
	t.Category, _ = o.optionalString("category", 0, 0)
	t.Tags = tags(o)
	if n, ok := o.optionalInt("cooldown", NonNegative); ok && n != nil {
		t.Cooldown = *n
	}
	if n, ok := o.optionalInt("rank", Positive); ok && n != nil {
		t.Rank = *n
	}
	if n, ok := o.optionalInt("maxRank", Positive); ok && n != nil {
		t.MaxRank = *n
	}

	// list elements, every one checked
	if list, ok := o.optionalList("requirements"); ok {
		for i, el := range list {
			if r, ok := s.requirement(el, o.at("requirements").Index(i), ve); ok {
				t.Requirements = append(t.Requirements, r)
			}
		}
	}
	if list, ok := o.optionalList("costs"); ok {
		for i, el := range list {
			if c, ok := s.cost(el, o.at("costs").Index(i), ve); ok {
				t.Costs = append(t.Costs, c)
			}
		}
	}
	effects, effectsOK := o.optionalList("effects")
	if effectsOK {
		for i, el := range effects {
			if e, ok := s.effect(el, o.at("effects").Index(i), ve); ok {
				t.Effects = append(t.Effects, e)
			}
		}
	}

	if v, ok := o.lookup("rarity"); ok {
		t.Rarity, _ = s.rarity(v, o.at("rarity"), ve)
	} else {
		t.Rarity = talents.Rarity{Weight: talents.DefaultWeight}
	}

	// at least one effect, independent of the refinements
	switch {
	case !o.has("effects"):
		o.fail("effects", errors.ReasonRequired, "is required")
	case effectsOK && len(effects) == 0:
		o.fail("effects", errors.ReasonFormat, "must contain at least 1 effect")
	}

	o.done()
	return t, !ve.HasErrors()
}

// maxNumericID is the largest integer a float64 holds exactly
const maxNumericID = 1 << 53

// talentID accepts a non-empty string or a positive integer, stored as a string
func talentID(o *object) string {
	v, ok := o.lookup("id")
	if !ok {
		return ""
	}
	if n, isNumber := toNumber(v); isNumber {
		if n <= 0 || n != math.Trunc(n) || math.IsInf(n, 0) {
			o.fail("id", errors.ReasonFormat, "must be a positive integer or a non-empty string")
			return ""
		}
		if n > maxNumericID {
			o.fail("id", errors.ReasonFormat, "numeric id must be at most %d; use a string id instead", int64(maxNumericID))
			return ""
		}
		return strconv.FormatInt(int64(n), 10)
	}
	id, _ := o.stringValue("id", v, 1, 0)
	return id
}

func tags(o *object) []string {
	list, ok := o.optionalList("tags")
	if !ok || list == nil {
		return nil
	}
	out := make([]string, 0, len(list))
	for i, el := range list {
		tag, isString := el.(string)
		if !isString {
			o.ve.Addf(o.at("tags").Index(i), errors.ReasonInvalidType, "expected string, received %s", describe(el))
			continue
		}
		out = append(out, tag)
	}
	return out
}

// refineTalent applies the aggregate cross-field rules to a normalized talent
func refineTalent(t *talents.Talent, ve *errors.ValidationError) {
	if t.Rank > t.MaxRank {
		ve.Add(errors.Path{"rank"}, errors.ReasonRefinement, MessageRankExceedsMax)
	}
	if len(t.Costs) == 0 && t.Cooldown == 0 && len(t.Effects) > 0 {
		ve.Add(errors.Path{"costs"}, errors.ReasonRefinement, MessageUngatedEffects)
	}
}
