package schema

import (
	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/errors"
)

// ParseCost validates a single raw cost component and returns it normalized
func (s *Schema) ParseCost(raw any) (talents.Cost, error) {
	ve := errors.NewValidationError()
	c, ok := s.cost(raw, nil, ve)
	if !ok {
		return nil, result(ve)
	}
	return NormalizeCost(c), nil
}

func (s *Schema) cost(raw any, path errors.Path, ve *errors.ValidationError) (talents.Cost, bool) {
	o, ok := s.object(raw, path, ve)
	if !ok {
		return nil, false
	}

	accepted := names(talents.CostKinds)
	kind, ok := o.kind("kind", accepted)
	if !ok {
		return nil, false
	}

	mark := ve.Len()
	id := o.optionalID()

	var out talents.Cost
	switch talents.CostKind(kind) {
	case talents.CostResource:
		c := talents.ResourceCost{ID: id}
		c.Resource, _ = enum(o, "resource", s.resources, "")
		if c.Resource == talents.ResourceNone {
			if amount, ok := o.optionalNumber("amount", NonNegative); ok && amount != nil {
				c.Amount = *amount
			}
		} else {
			c.Amount, _ = o.requiredNumber("amount", NonNegative)
		}
		c.Per, _ = optionalEnum(o, "per", talents.CostPers)
		c.ItemID, _ = o.optionalString("itemId", 0, 0)
		c.MaxUses, _ = o.optionalInt("maxUses", Positive)
		out = c
	case talents.CostCooldown:
		turns, _ := o.requiredInt("turns", NonNegative)
		out = talents.CooldownCost{ID: id, Turns: turns}
	case talents.CostCharges:
		c := talents.ChargesCost{ID: id}
		c.Max, _ = o.requiredInt("max", Positive)
		c.Recharge, _ = optionalEnum(o, "recharge", talents.Recharges)
		out = c
	default:
		o.unknownVariant("kind", kind, accepted)
		return nil, false
	}

	o.done()
	if ve.Len() != mark {
		return nil, false
	}

	refineCost(o, out)
	return out, ve.Len() == mark
}

// refineCost applies the variant-local cross-field rules of a cost whose
// fields all passed
func refineCost(o *object, c talents.Cost) {
	rc, ok := c.(talents.ResourceCost)
	if !ok {
		return
	}
	if rc.Resource == talents.ResourceStamina && rc.MaxUses != nil {
		o.fail("maxUses", errors.ReasonRefinement, "stamina costs cannot limit uses")
	}
	if rc.Resource == talents.ResourceNone && rc.Amount != 0 {
		o.fail("amount", errors.ReasonRefinement, "a cost without a resource cannot have an amount")
	}
}
