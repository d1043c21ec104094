package schema_test

import (
	"github.com/google/go-cmp/cmp"

	"github.com/KirkDiggler/talent-api/internal/samples"
	"github.com/KirkDiggler/talent-api/internal/schema"
)

func (s *SchemaTestSuite) TestToRawRoundTrip() {
	for _, want := range samples.Talents() {
		raw, err := schema.ToRaw(want)
		s.Require().NoError(err)

		got, err := s.schema.ParseTalent(raw)
		s.Require().NoError(err, want.Name)
		s.Assert().Empty(cmp.Diff(want, got), want.Name)
	}

	_, err := schema.ToRaw(make(chan int))
	s.Assert().Error(err)
}

func (s *SchemaTestSuite) TestMerge() {
	base := map[string]any{"name": "Firebolt", "icon": "fire.png", "rank": 1.0}
	merged := schema.Merge(base, map[string]any{"rank": 2.0, "icon": nil, "category": "Offense"})

	s.Assert().Equal(map[string]any{"name": "Firebolt", "rank": 2.0, "category": "Offense"}, merged)
	s.Assert().Equal("fire.png", base["icon"])
}
