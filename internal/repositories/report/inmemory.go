package report

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu      sync.RWMutex
	reports []talents.Report
	ids     map[string]bool
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{ids: make(map[string]bool)}
}

var _ Repository = (*InMemoryRepository)(nil)

// Create stores a copy of the report
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Report == nil {
		return nil, errors.InvalidArgument("report cannot be nil")
	}
	if input.Report.ID == "" {
		return nil, errors.InvalidArgument("report ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ids[input.Report.ID] {
		return nil, errors.AlreadyExistsf("report with ID %s already exists", input.Report.ID)
	}
	r.ids[input.Report.ID] = true
	r.reports = append(r.reports, *input.Report)

	stored := *input.Report
	return &CreateOutput{Report: &stored}, nil
}

// List returns copies of the stored reports, newest first. Reports created
// at the same instant are ordered by most recent insertion.
func (r *InMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	if input.Limit < 0 {
		return nil, errors.InvalidArgument("limit cannot be negative")
	}

	r.mu.RLock()
	out := make([]*talents.Report, 0, len(r.reports))
	for i := len(r.reports) - 1; i >= 0; i-- {
		rep := r.reports[i]
		out = append(out, &rep)
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if input.Limit > 0 && len(out) > input.Limit {
		out = out[:input.Limit]
	}
	return &ListOutput{Reports: out}, nil
}
