// Package rarity implements the rarity manager. Records are kept in a local
// weighted collection; when a remote rarity service is configured, writes go
// to it and the canonical records it returns replace the local ones.
package rarity

//go:generate mockgen -destination=mock/mock_service.go -package=raritymock github.com/KirkDiggler/talent-api/internal/orchestrators/rarity Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/talent-api/internal/clients/rarityapi"
	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/errors"
	"github.com/KirkDiggler/talent-api/internal/pkg/idgen"
	"github.com/KirkDiggler/talent-api/internal/samples"
	"github.com/KirkDiggler/talent-api/internal/schema"
	raritysvc "github.com/KirkDiggler/talent-api/internal/services/rarity"
)

// Service defines the interface for rarity manager operations
type Service interface {
	ListRarities(ctx context.Context, input *ListRaritiesInput) (*ListRaritiesOutput, error)
	CreateRarity(ctx context.Context, input *CreateRarityInput) (*CreateRarityOutput, error)
	UpdateRarity(ctx context.Context, input *UpdateRarityInput) (*UpdateRarityOutput, error)
	DeleteRarity(ctx context.Context, input *DeleteRarityInput) (*DeleteRarityOutput, error)
	MoveRarity(ctx context.Context, input *MoveRarityInput) (*MoveRarityOutput, error)
	ResetRarities(ctx context.Context, input *ResetRaritiesInput) (*ResetRaritiesOutput, error)
}

// Config holds the dependencies for the rarity orchestrator
type Config struct {
	IDGenerator idgen.Generator

	// Remote is the rarity service; nil keeps every change local
	Remote rarityapi.Client
	// Schema defaults to schema.Default()
	Schema *schema.Schema
	// Collection defaults to the sample rarities
	Collection *raritysvc.Collection
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

type orchestrator struct {
	idGen      idgen.Generator
	remote     rarityapi.Client
	schema     *schema.Schema
	collection *raritysvc.Collection
}

// NewOrchestrator creates a new rarity orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	sch := cfg.Schema
	if sch == nil {
		sch = schema.Default()
	}

	collection := cfg.Collection
	if collection == nil {
		var err error
		collection, err = raritysvc.NewCollection(DefaultRarities()...)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load default rarities")
		}
	}

	return &orchestrator{
		idGen:      cfg.IDGenerator,
		remote:     cfg.Remote,
		schema:     sch,
		collection: collection,
	}, nil
}

// DefaultRarities returns the sample tiers as rarity records, named after
// their capitalized tier
func DefaultRarities() []talents.RarityItem {
	defaults := samples.Rarities()
	items := make([]talents.RarityItem, 0, len(defaults))
	for _, r := range defaults {
		color := r.Color
		if color == "" {
			color = rarityapi.DefaultColor
		}
		items = append(items, talents.RarityItem{
			ID:     r.ID,
			Name:   rarityapi.DisplayName(r.Tier),
			Color:  color,
			Weight: r.Weight,
		})
	}
	return items
}

func (o *orchestrator) ListRarities(ctx context.Context, input *ListRaritiesInput) (*ListRaritiesOutput, error) {
	if input != nil && input.Refresh && o.remote != nil {
		items, err := o.remote.List(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch rarities")
		}
		if err := o.collection.Replace(items); err != nil {
			return nil, errors.Wrap(err, "remote rarities conflict")
		}
		slog.InfoContext(ctx, "rarities refreshed from remote", "count", len(items))
	}

	return &ListRaritiesOutput{Rarities: o.collection.Items()}, nil
}

// CreateRarity inserts an optimistic record, creates it remotely and swaps
// in the canonical record. A remote failure rolls the optimistic insert back.
func (o *orchestrator) CreateRarity(ctx context.Context, input *CreateRarityInput) (*CreateRarityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	item, err := o.schema.ParseRarityItem(input.Raw)
	if err != nil {
		return nil, err
	}
	if err := o.collection.CheckName(item.Name, ""); err != nil {
		return nil, err
	}
	if item.ID == "" {
		item.ID = o.idGen.Generate()
	}

	if err := o.collection.Insert(*item); err != nil {
		return nil, err
	}

	if o.remote == nil {
		slog.InfoContext(ctx, "rarity created locally", "rarity_id", item.ID, "name", item.Name)
		return &CreateRarityOutput{Rarity: item}, nil
	}

	canonical, err := o.remote.Create(ctx, toRemote(item))
	if err != nil {
		o.rollback(ctx, item.ID)
		return nil, errors.Wrap(err, "failed to create rarity")
	}

	if err := o.collection.Update(item.ID, *canonical); err != nil {
		o.rollback(ctx, item.ID)
		o.discardRemote(ctx, canonical.ID)
		return nil, errors.Wrap(err, "failed to apply canonical rarity")
	}

	slog.InfoContext(ctx, "rarity created",
		"optimistic_id", item.ID,
		"rarity_id", canonical.ID,
		"name", canonical.Name)

	return &CreateRarityOutput{Rarity: canonical}, nil
}

// discardRemote deletes a remote record that could not be applied locally.
// A failed delete leaves it on the remote, so its ID is logged.
func (o *orchestrator) discardRemote(ctx context.Context, id string) {
	if err := o.remote.Delete(ctx, id); err != nil {
		slog.WarnContext(ctx, "remote rarity left orphaned",
			"rarity_id", id,
			"error", err.Error())
		return
	}
	slog.InfoContext(ctx, "discarded remote rarity that conflicted locally", "rarity_id", id)
}

func (o *orchestrator) rollback(ctx context.Context, id string) {
	if err := o.collection.Remove(id); err != nil {
		slog.WarnContext(ctx, "failed to roll back optimistic rarity", "rarity_id", id, "error", err.Error())
	}
}

// UpdateRarity validates the changed record, checks its name locally, updates
// the remote and stores the canonical record it returns
func (o *orchestrator) UpdateRarity(ctx context.Context, input *UpdateRarityInput) (*UpdateRarityOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("rarity ID is required")
	}

	existing, err := o.collection.Get(input.ID)
	if err != nil {
		return nil, err
	}

	base := map[string]any{
		"name":   existing.Name,
		"color":  existing.Color,
		"weight": existing.Weight,
	}
	item, err := o.schema.ParseRarityItem(schema.Merge(base, input.Changes))
	if err != nil {
		return nil, err
	}
	item.ID = input.ID

	if err := o.collection.CheckName(item.Name, input.ID); err != nil {
		return nil, err
	}

	if o.remote != nil {
		canonical, err := o.remote.Update(ctx, input.ID, toRemote(item))
		if err != nil {
			return nil, errors.Wrap(err, "failed to update rarity")
		}
		item = canonical
	}

	if err := o.collection.Update(input.ID, *item); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "rarity updated", "rarity_id", item.ID, "name", item.Name)
	return &UpdateRarityOutput{Rarity: item}, nil
}

func (o *orchestrator) DeleteRarity(ctx context.Context, input *DeleteRarityInput) (*DeleteRarityOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("rarity ID is required")
	}

	if _, err := o.collection.Get(input.ID); err != nil {
		return nil, err
	}

	if o.remote != nil {
		if err := o.remote.Delete(ctx, input.ID); err != nil {
			return nil, errors.Wrap(err, "failed to delete rarity")
		}
	}

	if err := o.collection.Remove(input.ID); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "rarity deleted", "rarity_id", input.ID)
	return &DeleteRarityOutput{}, nil
}

// MoveRarity reorders locally; the order is not sent to the remote
func (o *orchestrator) MoveRarity(_ context.Context, input *MoveRarityInput) (*MoveRarityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if err := o.collection.Move(input.From, input.To); err != nil {
		return nil, err
	}
	return &MoveRarityOutput{Rarities: o.collection.Items()}, nil
}

// ResetRarities restores the default rarities locally
func (o *orchestrator) ResetRarities(ctx context.Context, _ *ResetRaritiesInput) (*ResetRaritiesOutput, error) {
	if err := o.collection.Replace(DefaultRarities()); err != nil {
		return nil, errors.Wrap(err, "failed to reset rarities")
	}

	slog.InfoContext(ctx, "rarities reset to defaults")
	return &ResetRaritiesOutput{Rarities: o.collection.Items()}, nil
}

func toRemote(item *talents.RarityItem) *rarityapi.RarityInput {
	weight := item.Weight
	return &rarityapi.RarityInput{
		Tier:   rarityapi.TierName(item.Name),
		Color:  item.Color,
		Weight: &weight,
	}
}
