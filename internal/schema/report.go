package schema

import (
	"strings"
	"time"

	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/errors"
)

// dateLayouts are the calendar date forms a report date may use
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	time.RFC1123,
	time.RFC1123Z,
}

// ParseDate parses a calendar date in any of the accepted layouts
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseReport validates a raw report under the schema's report mode
func (s *Schema) ParseReport(raw map[string]any) (*talents.Report, error) {
	ve := errors.NewValidationError()
	o, ok := s.object(raw, nil, ve)
	if !ok {
		return nil, result(ve)
	}

	r := &talents.Report{}
	r.Title = s.nonBlank(o, "title")
	if date := s.nonBlank(o, "date"); date != "" {
		if _, ok := ParseDate(date); !ok {
			o.fail("date", errors.ReasonFormat, "invalid date format")
		} else {
			r.Date = date
		}
	}

	switch s.opts.ReportMode {
	case talents.ReportModeRelatory:
		r.ShortDescription, _ = o.optionalString("shortDescription", 0, 0)
		if image, ok := o.optionalString("image", 0, 0); ok && image != "" {
			if err := s.validate.Var(image, "url"); err != nil {
				o.fail("image", errors.ReasonFormat, "must be a valid URL")
			} else {
				r.Image = image
			}
		}
	default:
		r.ShortDescription = s.nonBlank(o, "shortDescription")
		r.Image, _ = o.optionalString("image", 0, 0)
	}
	r.LongDescription, _ = o.optionalString("longDescription", 0, 0)

	o.done()
	if err := result(ve); err != nil {
		return nil, err
	}
	return r, nil
}

// nonBlank reads a required string that must contain more than whitespace
func (s *Schema) nonBlank(o *object, key string) string {
	v, ok := o.requiredString(key, 0, 0)
	if !ok {
		return ""
	}
	if strings.TrimSpace(v) == "" {
		o.fail(key, errors.ReasonRequired, "is required")
		return ""
	}
	return v
}
