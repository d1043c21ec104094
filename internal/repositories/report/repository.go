// Package report stores report entries
package report

//go:generate mockgen -destination=mock/mock_repository.go -package=reportmock github.com/KirkDiggler/talent-api/internal/repositories/report Repository

import (
	"context"

	"github.com/KirkDiggler/talent-api/internal/entities/talents"
)

// Repository defines the storage interface for reports
type Repository interface {
	// Create stores a report
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// List returns reports newest first
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput contains the report to store
type CreateInput struct {
	Report *talents.Report
}

// CreateOutput contains the stored report
type CreateOutput struct {
	Report *talents.Report
}

// ListInput limits the listing; zero returns every report
type ListInput struct {
	Limit int
}

// ListOutput contains reports newest first
type ListOutput struct {
	Reports []*talents.Report
}
