// Package talent implements the talent orchestrator: validation, storage and
// effect previews
package talent

//go:generate mockgen -destination=mock/mock_service.go -package=talentmock github.com/KirkDiggler/talent-api/internal/orchestrators/talent Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/errors"
	"github.com/KirkDiggler/talent-api/internal/pkg/idgen"
	talentrepo "github.com/KirkDiggler/talent-api/internal/repositories/talent"
	"github.com/KirkDiggler/talent-api/internal/schema"
)

// Service defines the interface for talent operations
type Service interface {
	ValidateTalent(ctx context.Context, input *ValidateTalentInput) (*ValidateTalentOutput, error)
	CreateTalent(ctx context.Context, input *CreateTalentInput) (*CreateTalentOutput, error)
	UpdateTalent(ctx context.Context, input *UpdateTalentInput) (*UpdateTalentOutput, error)
	GetTalent(ctx context.Context, input *GetTalentInput) (*GetTalentOutput, error)
	ListTalents(ctx context.Context, input *ListTalentsInput) (*ListTalentsOutput, error)
	DeleteTalent(ctx context.Context, input *DeleteTalentInput) (*DeleteTalentOutput, error)

	// PreviewEffects rolls every dice amount of a stored talent
	PreviewEffects(ctx context.Context, input *PreviewEffectsInput) (*PreviewEffectsOutput, error)

	// RevalidateTalents runs every stored talent through the current schema
	RevalidateTalents(ctx context.Context, input *RevalidateTalentsInput) (*RevalidateTalentsOutput, error)
}

// Config holds the dependencies for the talent orchestrator
type Config struct {
	TalentRepo  talentrepo.Repository
	IDGenerator idgen.Generator

	// Schema defaults to schema.Default()
	Schema *schema.Schema
	// DiceRoller defaults to dice.DefaultRoller
	DiceRoller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.TalentRepo == nil {
		vb.RequiredField("TalentRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

type orchestrator struct {
	talentRepo talentrepo.Repository
	idGen      idgen.Generator
	schema     *schema.Schema
	roller     dice.Roller
}

// NewOrchestrator creates a new talent orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	sch := cfg.Schema
	if sch == nil {
		sch = schema.Default()
	}
	roller := cfg.DiceRoller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &orchestrator{
		talentRepo: cfg.TalentRepo,
		idGen:      cfg.IDGenerator,
		schema:     sch,
		roller:     roller,
	}, nil
}

// ValidateTalent runs the schema without storing anything. Validation
// failures are reported in the output, not as an error.
func (o *orchestrator) ValidateTalent(ctx context.Context, input *ValidateTalentInput) (*ValidateTalentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	t, err := o.schema.ParseTalent(input.Raw)
	if err != nil {
		issues := errors.GetIssues(err)
		if issues == nil {
			return nil, err
		}
		slog.DebugContext(ctx, "talent failed validation", "issues", len(issues))
		return &ValidateTalentOutput{Valid: false, Issues: issues}, nil
	}

	return &ValidateTalentOutput{Valid: true, Talent: t}, nil
}

// CreateTalent validates a raw talent and stores it. A talent without an ID
// is assigned one.
func (o *orchestrator) CreateTalent(ctx context.Context, input *CreateTalentInput) (*CreateTalentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	t, err := o.schema.ParseTalent(input.Raw)
	if err != nil {
		return nil, err
	}
	if t.ID == "" {
		t.ID = o.idGen.Generate()
	}

	out, err := o.talentRepo.Create(ctx, talentrepo.CreateInput{Talent: t})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store talent")
	}

	slog.InfoContext(ctx, "talent created",
		"talent_id", out.Talent.ID,
		"name", out.Talent.Name,
		"effects", len(out.Talent.Effects))

	return &CreateTalentOutput{Talent: out.Talent}, nil
}

// UpdateTalent applies changes to a copy of the stored talent, validates the
// copy as a whole and replaces the stored talent with it
func (o *orchestrator) UpdateTalent(ctx context.Context, input *UpdateTalentInput) (*UpdateTalentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument("talent ID is required")
	}

	existing, err := o.talentRepo.Get(ctx, talentrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	base, err := schema.ToRaw(existing.Talent)
	if err != nil {
		return nil, err
	}

	t, err := o.schema.ParseTalent(schema.Merge(base, input.Changes))
	if err != nil {
		return nil, err
	}
	if t.ID != input.ID {
		return nil, errors.InvalidArgumentf("talent ID cannot change from %s to %s", input.ID, t.ID)
	}

	out, err := o.talentRepo.Update(ctx, talentrepo.UpdateInput{Talent: t})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update talent")
	}

	slog.InfoContext(ctx, "talent updated", "talent_id", t.ID, "fields", len(input.Changes))
	return &UpdateTalentOutput{Talent: out.Talent}, nil
}

func (o *orchestrator) GetTalent(ctx context.Context, input *GetTalentInput) (*GetTalentOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("talent ID is required")
	}

	out, err := o.talentRepo.Get(ctx, talentrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}
	return &GetTalentOutput{Talent: out.Talent}, nil
}

func (o *orchestrator) ListTalents(ctx context.Context, input *ListTalentsInput) (*ListTalentsOutput, error) {
	if input == nil {
		input = &ListTalentsInput{}
	}

	out, err := o.talentRepo.List(ctx, talentrepo.ListInput{Tag: input.Tag})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list talents")
	}
	return &ListTalentsOutput{Talents: out.Talents}, nil
}

func (o *orchestrator) DeleteTalent(ctx context.Context, input *DeleteTalentInput) (*DeleteTalentOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("talent ID is required")
	}

	if _, err := o.talentRepo.Delete(ctx, talentrepo.DeleteInput{ID: input.ID}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "talent deleted", "talent_id", input.ID)
	return &DeleteTalentOutput{}, nil
}

func (o *orchestrator) RevalidateTalents(ctx context.Context, _ *RevalidateTalentsInput) (*RevalidateTalentsOutput, error) {
	out, err := o.talentRepo.List(ctx, talentrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list talents")
	}

	result := &RevalidateTalentsOutput{Checked: len(out.Talents)}
	for _, t := range out.Talents {
		raw, err := schema.ToRaw(t)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to render talent %s", t.ID)
		}

		if _, err := o.schema.ParseTalent(raw); err != nil {
			issues := errors.GetIssues(err)
			if issues == nil {
				return nil, err
			}
			result.Rejected = append(result.Rejected, &RejectedTalent{ID: t.ID, Name: t.Name, Issues: issues})
		}
	}

	if len(result.Rejected) > 0 {
		slog.WarnContext(ctx, "stored talents rejected by current schema",
			"checked", result.Checked,
			"rejected", len(result.Rejected))
	}
	return result, nil
}

// effectAmount returns the field holding an effect's rollable amount
func effectAmount(e talents.Effect) (string, talents.Amount, bool) {
	switch v := e.(type) {
	case talents.StatModEffect:
		return "value", v.Value, true
	case talents.DamageEffect:
		return "amount", v.Amount, true
	case talents.HealEffect:
		return "amount", v.Amount, true
	default:
		return "", talents.Amount{}, false
	}
}
