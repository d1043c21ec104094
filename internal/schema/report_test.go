package schema_test

import (
	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/errors"
	"github.com/KirkDiggler/talent-api/internal/schema"
)

func (s *SchemaTestSuite) relatory() *schema.Schema {
	opts := schema.DefaultOptions()
	opts.ReportMode = talents.ReportModeRelatory
	sch, err := schema.New(opts)
	s.Require().NoError(err)
	return sch
}

func (s *SchemaTestSuite) TestParseReportCard() {
	testCases := []struct {
		name   string
		input  map[string]any
		paths  []string
		reason errors.Reason
	}{
		{
			name: "valid",
			input: map[string]any{
				"title": "Patch notes", "date": "2024-05-01", "shortDescription": "Balance pass",
				"longDescription": "Firebolt costs less", "image": "firebolt.png",
			},
		},
		{
			name:  "long date layout",
			input: map[string]any{"title": "Patch notes", "date": "May 1, 2024", "shortDescription": "Balance pass"},
		},
		{
			name:   "short description required",
			input:  map[string]any{"title": "Patch notes", "date": "2024-05-01"},
			paths:  []string{"shortDescription"},
			reason: errors.ReasonRequired,
		},
		{
			name:   "blank title",
			input:  map[string]any{"title": "  ", "date": "2024-05-01", "shortDescription": "x"},
			paths:  []string{"title"},
			reason: errors.ReasonRequired,
		},
		{
			name:   "unparseable date",
			input:  map[string]any{"title": "Patch notes", "date": "someday", "shortDescription": "x"},
			paths:  []string{"date"},
			reason: errors.ReasonFormat,
		},
		{
			name:   "impossible date",
			input:  map[string]any{"title": "Patch notes", "date": "2024-02-30", "shortDescription": "x"},
			paths:  []string{"date"},
			reason: errors.ReasonFormat,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			r, err := s.schema.ParseReport(tc.input)
			if tc.paths == nil {
				s.Require().NoError(err)
				s.Assert().Equal(tc.input["title"], r.Title)
				s.Assert().Equal(tc.input["date"], r.Date)
				return
			}
			s.Require().Error(err)
			s.Assert().Equal(tc.paths, paths(err))
			issue, _ := issueAt(err, tc.paths[0])
			s.Assert().Equal(tc.reason, issue.Reason)
		})
	}
}

func (s *SchemaTestSuite) TestParseReportRelatory() {
	sch := s.relatory()

	r, err := sch.ParseReport(map[string]any{
		"title": "Session recap", "date": "2024-05-01T18:30:00Z", "image": "https://cdn.example.com/recap.png",
	})
	s.Require().NoError(err)
	s.Assert().Empty(r.ShortDescription)
	s.Assert().Equal("https://cdn.example.com/recap.png", r.Image)

	_, err = sch.ParseReport(map[string]any{"title": "Session recap", "date": "2024-05-01", "image": "recap.png"})
	s.Require().Error(err)
	s.Assert().Equal([]string{"image"}, paths(err))

	_, err = s.schema.ParseReport(map[string]any{
		"title": "Session recap", "date": "2024-05-01", "shortDescription": "x", "image": "recap.png",
	})
	s.Require().NoError(err)
}

func (s *SchemaTestSuite) TestParseDate() {
	for _, in := range []string{"2024-05-01", "2024-05-01T18:30:00Z", "05/01/2024", "1 May 2024", "Wed, 01 May 2024 18:30:00 GMT"} {
		_, ok := schema.ParseDate(in)
		s.Assert().True(ok, in)
	}
	for _, in := range []string{"", "yesterday", "2024-13-01", "31/12/2024"} {
		_, ok := schema.ParseDate(in)
		s.Assert().False(ok, in)
	}
}
