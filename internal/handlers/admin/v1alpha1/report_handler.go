package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/talent-api/internal/errors"
	"github.com/KirkDiggler/talent-api/internal/orchestrators/report"
)

// ReportHandlerConfig holds dependencies for the report handler
type ReportHandlerConfig struct {
	ReportService report.Service
}

// Validate ensures all required dependencies are present
func (c *ReportHandlerConfig) Validate() error {
	if c == nil || c.ReportService == nil {
		return errors.InvalidArgument("report service is required")
	}
	return nil
}

// ReportHandler implements ReportServiceServer
type ReportHandler struct {
	reportService report.Service
}

var _ ReportServiceServer = (*ReportHandler)(nil)

// NewReportHandler creates a new report handler with the given configuration
func NewReportHandler(cfg *ReportHandlerConfig) (*ReportHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &ReportHandler{reportService: cfg.ReportService}, nil
}

func (h *ReportHandler) ValidateReport(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	raw, err := newRequest(req).objectField("report")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.reportService.ValidateReport(ctx, &report.ValidateReportInput{Raw: raw})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := encode(&ReportValidation{
		Valid:  out.Valid,
		Report: out.Report,
		Issues: toIssues(out.Issues),
	})
	return resp, errors.ToGRPCError(err)
}

func (h *ReportHandler) CreateReport(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	raw, err := newRequest(req).objectField("report")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.reportService.CreateReport(ctx, &report.CreateReportInput{Raw: raw})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := envelope("report", out.Report)
	return resp, errors.ToGRPCError(err)
}

func (h *ReportHandler) ListReports(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	limit, err := newRequest(req).intField("limit")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.reportService.ListReports(ctx, &report.ListReportsInput{Limit: limit})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := envelope("reports", out.Reports)
	return resp, errors.ToGRPCError(err)
}
