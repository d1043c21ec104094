package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/talent-api/internal/errors"
	"github.com/KirkDiggler/talent-api/internal/orchestrators/rarity"
)

// RarityHandlerConfig holds dependencies for the rarity handler
type RarityHandlerConfig struct {
	RarityService rarity.Service
}

// Validate ensures all required dependencies are present
func (c *RarityHandlerConfig) Validate() error {
	if c == nil || c.RarityService == nil {
		return errors.InvalidArgument("rarity service is required")
	}
	return nil
}

// RarityHandler implements RarityServiceServer
type RarityHandler struct {
	rarityService rarity.Service
}

var _ RarityServiceServer = (*RarityHandler)(nil)

// NewRarityHandler creates a new rarity handler with the given configuration
func NewRarityHandler(cfg *RarityHandlerConfig) (*RarityHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &RarityHandler{rarityService: cfg.RarityService}, nil
}

func (h *RarityHandler) ListRarities(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.rarityService.ListRarities(ctx, &rarity.ListRaritiesInput{Refresh: newRequest(req).boolField("refresh")})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := envelope("rarities", out.Rarities)
	return resp, errors.ToGRPCError(err)
}

func (h *RarityHandler) CreateRarity(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	raw, err := newRequest(req).objectField("rarity")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.rarityService.CreateRarity(ctx, &rarity.CreateRarityInput{Raw: raw})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := envelope("rarity", out.Rarity)
	return resp, errors.ToGRPCError(err)
}

func (h *RarityHandler) UpdateRarity(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	id, err := r.requiredString("id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	changes, err := r.objectField("changes")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.rarityService.UpdateRarity(ctx, &rarity.UpdateRarityInput{ID: id, Changes: changes})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := envelope("rarity", out.Rarity)
	return resp, errors.ToGRPCError(err)
}

func (h *RarityHandler) DeleteRarity(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := newRequest(req).requiredString("id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if _, err := h.rarityService.DeleteRarity(ctx, &rarity.DeleteRarityInput{ID: id}); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{}}, nil
}

func (h *RarityHandler) MoveRarity(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	from, err := r.intField("from")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	to, err := r.intField("to")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.rarityService.MoveRarity(ctx, &rarity.MoveRarityInput{From: from, To: to})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := envelope("rarities", out.Rarities)
	return resp, errors.ToGRPCError(err)
}

func (h *RarityHandler) ResetRarities(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.rarityService.ResetRarities(ctx, &rarity.ResetRaritiesInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := envelope("rarities", out.Rarities)
	return resp, errors.ToGRPCError(err)
}
