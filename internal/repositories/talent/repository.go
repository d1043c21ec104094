// Package talent stores validated talents in insertion order
package talent

//go:generate mockgen -destination=mock/mock_repository.go -package=talentmock github.com/KirkDiggler/talent-api/internal/repositories/talent Repository

import (
	"context"
	"slices"

	"github.com/KirkDiggler/talent-api/internal/entities/talents"
)

const (
	errTalentNil     = "talent cannot be nil"
	errTalentIDEmpty = "talent ID cannot be empty"
)

// Repository defines the storage interface for talents
type Repository interface {
	// Create stores a new talent; the ID must not be in use
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a talent by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns talents in the order they were created
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Update replaces an existing talent in place
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a talent
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput contains the talent to store
type CreateInput struct {
	Talent *talents.Talent
}

// CreateOutput contains the stored talent
type CreateOutput struct {
	Talent *talents.Talent
}

// GetInput identifies a talent
type GetInput struct {
	ID string
}

// GetOutput contains the talent found
type GetOutput struct {
	Talent *talents.Talent
}

// ListInput filters the listing. An empty Tag lists every talent.
type ListInput struct {
	Tag string
}

// ListOutput contains talents in creation order
type ListOutput struct {
	Talents []*talents.Talent
}

// UpdateInput contains the replacement talent; its ID selects the record
type UpdateInput struct {
	Talent *talents.Talent
}

// UpdateOutput contains the stored talent
type UpdateOutput struct {
	Talent *talents.Talent
}

// DeleteInput identifies a talent
type DeleteInput struct {
	ID string
}

// DeleteOutput is empty on success
type DeleteOutput struct{}

func matchesTag(t *talents.Talent, tag string) bool {
	return tag == "" || slices.Contains(t.Tags, tag)
}
