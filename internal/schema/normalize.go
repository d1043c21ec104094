package schema

import (
	"github.com/KirkDiggler/talent-api/internal/entities/talents"
)

// NormalizeTalent returns a fully defaulted copy of t. Zero values stand for
// absent fields, except the rarity weight which is defaulted while decoding.
// Normalizing a normalized talent returns an identical value.
func NormalizeTalent(t *talents.Talent) *talents.Talent {
	if t == nil {
		return nil
	}

	out := t.Clone()
	if out.Tags == nil {
		out.Tags = []string{}
	}
	if out.Rank == 0 {
		out.Rank = talents.DefaultRank
	}
	if out.MaxRank == 0 {
		out.MaxRank = talents.DefaultMaxRank
	}
	out.Rarity = NormalizeRarity(out.Rarity)

	for i, c := range out.Costs {
		out.Costs[i] = NormalizeCost(c)
	}
	for i, e := range out.Effects {
		out.Effects[i] = NormalizeEffect(e)
	}
	return out
}

// NormalizeRarity applies the tier default
func NormalizeRarity(r talents.Rarity) talents.Rarity {
	if r.Tier == "" {
		r.Tier = talents.DefaultTier
	}
	return r
}

// NormalizeCost applies the payment cadence default
func NormalizeCost(c talents.Cost) talents.Cost {
	switch v := c.(type) {
	case talents.ResourceCost:
		if v.Per == "" {
			v.Per = talents.PerCast
		}
		return v
	default:
		return c
	}
}

// NormalizeEffect applies the per-kind target default, the instant duration
// and the stat modifier defaults
func NormalizeEffect(e talents.Effect) talents.Effect {
	switch v := e.(type) {
	case talents.StatModEffect:
		if v.Target == "" {
			v.Target = talents.DefaultStatModTarget
		}
		if v.Op == "" {
			v.Op = talents.OpAdd
		}
		if v.Stacking == "" {
			v.Stacking = talents.StackingNone
		}
		v.Duration = normalizeDuration(v.Duration)
		return v
	case talents.DamageEffect:
		if v.Target == "" {
			v.Target = talents.DefaultDamageTarget
		}
		v.Duration = normalizeDuration(v.Duration)
		return v
	case talents.HealEffect:
		if v.Target == "" {
			v.Target = talents.DefaultHealTarget
		}
		v.Duration = normalizeDuration(v.Duration)
		return v
	case talents.TagEffect:
		if v.Target == "" {
			v.Target = talents.DefaultTagTarget
		}
		v.Duration = normalizeDuration(v.Duration)
		return v
	default:
		return e
	}
}

func normalizeDuration(d talents.Duration) talents.Duration {
	if d.Type == "" {
		return talents.Instant()
	}
	return d
}
