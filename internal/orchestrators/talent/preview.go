package talent

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/errors"
	talentrepo "github.com/KirkDiggler/talent-api/internal/repositories/talent"
)

// Preview roll limits. Larger expressions are valid talent data but are not
// rolled.
const (
	MaxPreviewDice  = 1000
	MaxPreviewSides = 1_000_000
)

// PreviewEffects rolls each dice amount once. Numeric amounts pass through
// with Min, Max and Rolled all equal to the number. Tag effects carry no
// amount and are skipped.
func (o *orchestrator) PreviewEffects(ctx context.Context, input *PreviewEffectsInput) (*PreviewEffectsOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("talent ID is required")
	}

	out, err := o.talentRepo.Get(ctx, talentrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	previews := make([]*EffectPreview, 0, len(out.Talent.Effects))
	for _, e := range out.Talent.Effects {
		field, amount, ok := effectAmount(e)
		if !ok {
			continue
		}

		p := &EffectPreview{
			EffectID: e.GetID(),
			Kind:     e.Kind(),
			Target:   e.GetTarget(),
			Field:    field,
			Notation: amount.String(),
			IsDice:   amount.IsDice(),
			Duration: e.GetDuration(),
		}

		if err := o.roll(p, amount); err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s for effect %s", p.Notation, p.EffectID)
		}
		previews = append(previews, p)
	}

	slog.DebugContext(ctx, "previewed talent effects",
		"talent_id", input.ID,
		"previews", len(previews))

	return &PreviewEffectsOutput{TalentID: input.ID, Previews: previews}, nil
}

func (o *orchestrator) roll(p *EffectPreview, amount talents.Amount) error {
	if !amount.IsDice() {
		p.Min, p.Max, p.Rolled = amount.Number, amount.Number, amount.Number
		return nil
	}

	d := amount.Dice
	mod := float64(d.Modifier)

	// 0dN and Nd0 roll nothing; only the modifier remains
	if d.Count == 0 || d.Sides == 0 {
		p.Min, p.Max, p.Rolled = mod, mod, mod
		p.Dice = []int{}
		return nil
	}

	if d.Count > MaxPreviewDice || d.Sides > MaxPreviewSides {
		return errors.InvalidArgumentf("%s is too large to roll; previews allow up to %d dice of at most %d sides",
			d, MaxPreviewDice, MaxPreviewSides)
	}

	rolls, err := o.roller.RollN(d.Count, d.Sides)
	if err != nil {
		return err
	}

	total := 0
	for _, r := range rolls {
		total += r
	}

	p.Min = d.Min()
	p.Max = d.Max()
	p.Rolled = float64(total) + mod
	p.Dice = rolls
	return nil
}
