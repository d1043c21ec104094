package schema

import (
	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/errors"
)

// ParseEffect validates a single raw effect and returns it normalized
func (s *Schema) ParseEffect(raw any) (talents.Effect, error) {
	ve := errors.NewValidationError()
	e, ok := s.effect(raw, nil, ve)
	if !ok {
		return nil, result(ve)
	}
	return NormalizeEffect(e), nil
}

func (s *Schema) effect(raw any, path errors.Path, ve *errors.ValidationError) (talents.Effect, bool) {
	o, ok := s.object(raw, path, ve)
	if !ok {
		return nil, false
	}

	accepted := names(talents.EffectKinds)
	kind, ok := o.kind("kind", accepted)
	if !ok {
		return nil, false
	}

	mark := ve.Len()
	id := o.optionalID()

	var out talents.Effect
	switch talents.EffectKind(kind) {
	case talents.EffectStatMod:
		e := talents.StatModEffect{ID: id}
		e.Target, _ = optionalEnum(o, "target", talents.StatModTargets)
		e.Stat, _ = o.requiredString("stat", 1, 0)
		e.Op, _ = optionalEnum(o, "op", talents.StatOps)
		e.Value, _ = s.amount(o, "value", AnySign)
		e.Duration, _ = s.effectDuration(o)
		e.Stacking, _ = optionalEnum(o, "stacking", talents.Stackings)
		out = e
	case talents.EffectDamage:
		e := talents.DamageEffect{ID: id}
		e.Target, _ = optionalEnum(o, "target", talents.DamageTargets)
		e.DamageType, _ = o.requiredString("damageType", 1, 0)
		e.Amount, _ = s.amount(o, "amount", Positive)
		e.Duration, _ = s.effectDuration(o)
		out = e
	case talents.EffectHeal:
		e := talents.HealEffect{ID: id}
		e.Target, _ = optionalEnum(o, "target", talents.HealTargets)
		e.Amount, _ = s.amount(o, "amount", Positive)
		e.Duration, _ = s.effectDuration(o)
		out = e
	case talents.EffectTag:
		e := talents.TagEffect{ID: id}
		e.Target, _ = optionalEnum(o, "target", talents.TagTargets)
		e.Action, _ = enum(o, "action", talents.TagActions, "")
		e.Tag, _ = o.requiredString("tag", 1, 0)
		e.Duration, _ = s.effectDuration(o)
		out = e
	default:
		o.unknownVariant("kind", kind, accepted)
		return nil, false
	}

	o.done()
	return out, ve.Len() == mark
}

// amount reads a required number-or-dice field
func (s *Schema) amount(o *object, key string, sign Sign) (talents.Amount, bool) {
	v, ok := o.lookup(key)
	if !ok {
		o.fail(key, errors.ReasonRequired, "is required")
		return talents.Amount{}, false
	}
	return numberOrDice(v, sign, o.at(key), o.ve)
}

// effectDuration reads the optional duration; absent is left for
// normalization to default
func (s *Schema) effectDuration(o *object) (talents.Duration, bool) {
	v, ok := o.lookup("duration")
	if !ok {
		return talents.Duration{}, true
	}
	return s.duration(v, o.at("duration"), o.ve)
}
