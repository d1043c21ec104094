package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/talent-api/internal/errors"
	"github.com/KirkDiggler/talent-api/internal/orchestrators/talent"
)

// TalentHandlerConfig holds dependencies for the talent handler
type TalentHandlerConfig struct {
	TalentService talent.Service
}

// Validate ensures all required dependencies are present
func (c *TalentHandlerConfig) Validate() error {
	if c == nil || c.TalentService == nil {
		return errors.InvalidArgument("talent service is required")
	}
	return nil
}

// TalentHandler implements TalentServiceServer
type TalentHandler struct {
	talentService talent.Service
}

var _ TalentServiceServer = (*TalentHandler)(nil)

// NewTalentHandler creates a new talent handler with the given configuration
func NewTalentHandler(cfg *TalentHandlerConfig) (*TalentHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &TalentHandler{
		talentService: cfg.TalentService,
	}, nil
}

// ValidateTalent checks a talent form without storing it. Validation issues
// are part of the response, not an error.
func (h *TalentHandler) ValidateTalent(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	raw, err := newRequest(req).objectField("talent")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.talentService.ValidateTalent(ctx, &talent.ValidateTalentInput{Raw: raw})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := encode(&TalentValidation{
		Valid:  out.Valid,
		Talent: out.Talent,
		Issues: toIssues(out.Issues),
	})
	return resp, errors.ToGRPCError(err)
}

// CreateTalent validates and stores a talent form
func (h *TalentHandler) CreateTalent(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	raw, err := newRequest(req).objectField("talent")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.talentService.CreateTalent(ctx, &talent.CreateTalentInput{Raw: raw})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := envelope("talent", out.Talent)
	return resp, errors.ToGRPCError(err)
}

// UpdateTalent applies changes to a stored talent; a null value clears a field
func (h *TalentHandler) UpdateTalent(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	id, err := r.requiredString("id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	changes, err := r.objectField("changes")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.talentService.UpdateTalent(ctx, &talent.UpdateTalentInput{ID: id, Changes: changes})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := envelope("talent", out.Talent)
	return resp, errors.ToGRPCError(err)
}

// GetTalent returns a stored talent
func (h *TalentHandler) GetTalent(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := newRequest(req).requiredString("id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.talentService.GetTalent(ctx, &talent.GetTalentInput{ID: id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := envelope("talent", out.Talent)
	return resp, errors.ToGRPCError(err)
}

// ListTalents returns stored talents, optionally filtered by tag
func (h *TalentHandler) ListTalents(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.talentService.ListTalents(ctx, &talent.ListTalentsInput{Tag: newRequest(req).stringField("tag")})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := envelope("talents", out.Talents)
	return resp, errors.ToGRPCError(err)
}

// DeleteTalent removes a stored talent
func (h *TalentHandler) DeleteTalent(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := newRequest(req).requiredString("id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if _, err := h.talentService.DeleteTalent(ctx, &talent.DeleteTalentInput{ID: id}); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{}}, nil
}

// PreviewEffects rolls the amounts of a stored talent's effects
func (h *TalentHandler) PreviewEffects(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := newRequest(req).requiredString("id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.talentService.PreviewEffects(ctx, &talent.PreviewEffectsInput{ID: id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := encode(toPreviews(out))
	return resp, errors.ToGRPCError(err)
}

// RevalidateTalents reports the stored talents the current schema rejects
func (h *TalentHandler) RevalidateTalents(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.talentService.RevalidateTalents(ctx, &talent.RevalidateTalentsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := encode(toRevalidation(out))
	return resp, errors.ToGRPCError(err)
}
