package rarity

import (
	"github.com/KirkDiggler/talent-api/internal/entities/talents"
)

// ListRaritiesInput defines the request for listing rarities
type ListRaritiesInput struct {
	// Refresh replaces the local collection with the remote listing first
	Refresh bool
}

// ListRaritiesOutput contains the rarities in display order
type ListRaritiesOutput struct {
	Rarities []talents.RarityItem
}

// CreateRarityInput carries the raw rarity form
type CreateRarityInput struct {
	Raw map[string]any
}

// CreateRarityOutput contains the canonical record
type CreateRarityOutput struct {
	Rarity *talents.RarityItem
}

// UpdateRarityInput applies changes to a rarity; a nil value clears the field
type UpdateRarityInput struct {
	ID      string
	Changes map[string]any
}

// UpdateRarityOutput contains the canonical record
type UpdateRarityOutput struct {
	Rarity *talents.RarityItem
}

// DeleteRarityInput defines the request for deleting a rarity
type DeleteRarityInput struct {
	ID string
}

// DeleteRarityOutput defines the response for deleting a rarity
type DeleteRarityOutput struct{}

// MoveRarityInput moves the rarity at From to To
type MoveRarityInput struct {
	From int
	To   int
}

// MoveRarityOutput contains the rarities after the move
type MoveRarityOutput struct {
	Rarities []talents.RarityItem
}

// ResetRaritiesInput defines the request for restoring the default rarities
type ResetRaritiesInput struct{}

// ResetRaritiesOutput contains the default rarities
type ResetRaritiesOutput struct {
	Rarities []talents.RarityItem
}
