// Package report handles report submissions
package report

//go:generate mockgen -destination=mock/mock_service.go -package=reportmock github.com/KirkDiggler/talent-api/internal/orchestrators/report Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/talent-api/internal/errors"
	"github.com/KirkDiggler/talent-api/internal/pkg/clock"
	"github.com/KirkDiggler/talent-api/internal/pkg/idgen"
	reportrepo "github.com/KirkDiggler/talent-api/internal/repositories/report"
	"github.com/KirkDiggler/talent-api/internal/schema"
)

// Service defines the interface for report operations
type Service interface {
	ValidateReport(ctx context.Context, input *ValidateReportInput) (*ValidateReportOutput, error)
	CreateReport(ctx context.Context, input *CreateReportInput) (*CreateReportOutput, error)
	ListReports(ctx context.Context, input *ListReportsInput) (*ListReportsOutput, error)
}

// Config holds the dependencies for the report orchestrator
type Config struct {
	Repository  reportrepo.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock

	// Schema defaults to schema.Default()
	Schema *schema.Schema
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type orchestrator struct {
	repo   reportrepo.Repository
	idGen  idgen.Generator
	clock  clock.Clock
	schema *schema.Schema
}

// NewOrchestrator creates a new report orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	sch := cfg.Schema
	if sch == nil {
		sch = schema.Default()
	}

	return &orchestrator{
		repo:   cfg.Repository,
		idGen:  cfg.IDGenerator,
		clock:  cfg.Clock,
		schema: sch,
	}, nil
}

func (o *orchestrator) ValidateReport(_ context.Context, input *ValidateReportInput) (*ValidateReportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r, err := o.schema.ParseReport(input.Raw)
	if err != nil {
		issues := errors.GetIssues(err)
		if len(issues) == 0 {
			return nil, err
		}
		return &ValidateReportOutput{Issues: issues}, nil
	}
	return &ValidateReportOutput{Valid: true, Report: r}, nil
}

func (o *orchestrator) CreateReport(ctx context.Context, input *CreateReportInput) (*CreateReportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r, err := o.schema.ParseReport(input.Raw)
	if err != nil {
		return nil, err
	}
	r.ID = o.idGen.Generate()
	r.CreatedAt = o.clock.Now()

	out, err := o.repo.Create(ctx, reportrepo.CreateInput{Report: r})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store report")
	}

	slog.InfoContext(ctx, "report created", "report_id", out.Report.ID, "title", out.Report.Title)
	return &CreateReportOutput{Report: out.Report}, nil
}

func (o *orchestrator) ListReports(ctx context.Context, input *ListReportsInput) (*ListReportsOutput, error) {
	limit := 0
	if input != nil {
		limit = input.Limit
	}

	out, err := o.repo.List(ctx, reportrepo.ListInput{Limit: limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reports")
	}
	return &ListReportsOutput{Reports: out.Reports}, nil
}
