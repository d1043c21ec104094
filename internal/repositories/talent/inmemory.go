package talent

import (
	"context"
	"sync"

	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	order []string
	store map[string]*talents.Talent
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*talents.Talent),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Create stores a copy of the talent
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Talent == nil {
		return nil, errors.InvalidArgument(errTalentNil)
	}
	if input.Talent.ID == "" {
		return nil, errors.InvalidArgument(errTalentIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Talent.ID]; exists {
		return nil, errors.AlreadyExistsf("talent with ID %s already exists", input.Talent.ID)
	}

	r.store[input.Talent.ID] = input.Talent.Clone()
	r.order = append(r.order, input.Talent.ID)

	return &CreateOutput{Talent: input.Talent.Clone()}, nil
}

// Get retrieves a copy of a talent by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errTalentIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	t, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("talent with ID %s not found", input.ID)
	}

	// Return a copy to prevent external modification
	return &GetOutput{Talent: t.Clone()}, nil
}

// List returns copies of the stored talents in creation order
func (r *InMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*talents.Talent, 0, len(r.order))
	for _, id := range r.order {
		t := r.store[id]
		if matchesTag(t, input.Tag) {
			out = append(out, t.Clone())
		}
	}

	return &ListOutput{Talents: out}, nil
}

// Update replaces a talent without moving it in the listing order
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Talent == nil {
		return nil, errors.InvalidArgument(errTalentNil)
	}
	if input.Talent.ID == "" {
		return nil, errors.InvalidArgument(errTalentIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Talent.ID]; !exists {
		return nil, errors.NotFoundf("talent with ID %s not found", input.Talent.ID)
	}
	r.store[input.Talent.ID] = input.Talent.Clone()

	return &UpdateOutput{Talent: input.Talent.Clone()}, nil
}

// Delete removes a talent
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errTalentIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("talent with ID %s not found", input.ID)
	}

	delete(r.store, input.ID)
	for i, id := range r.order {
		if id == input.ID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return &DeleteOutput{}, nil
}
