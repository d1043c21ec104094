package report

import (
	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/errors"
)

// ValidateReportInput carries a raw report form
type ValidateReportInput struct {
	Raw map[string]any
}

// ValidateReportOutput reports whether the form is valid; Issues is empty
// when it is
type ValidateReportOutput struct {
	Valid  bool
	Report *talents.Report
	Issues []errors.Issue
}

// CreateReportInput carries a raw report form
type CreateReportInput struct {
	Raw map[string]any
}

// CreateReportOutput contains the stored report
type CreateReportOutput struct {
	Report *talents.Report
}

// ListReportsInput limits the listing; zero returns every report
type ListReportsInput struct {
	Limit int
}

// ListReportsOutput contains reports newest first
type ListReportsOutput struct {
	Reports []*talents.Report
}
