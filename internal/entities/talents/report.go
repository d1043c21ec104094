package talents

import "time"

// ReportMode selects how strictly reports are validated
type ReportMode string

// Report modes
const (
	// ReportModeCard requires a short description and treats the image as an opaque string
	ReportModeCard ReportMode = "card"
	// ReportModeRelatory makes the short description optional and requires the image to be a URL
	ReportModeRelatory ReportMode = "relatory"
)

// ReportModes lists the accepted modes
var ReportModes = []ReportMode{ReportModeCard, ReportModeRelatory}

// Report is a free-form dated entry
type Report struct {
	ID               string    `json:"id,omitempty"`
	Title            string    `json:"title"`
	Date             string    `json:"date"`
	ShortDescription string    `json:"shortDescription,omitempty"`
	LongDescription  string    `json:"longDescription,omitempty"`
	Image            string    `json:"image,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}
