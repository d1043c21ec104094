package samples_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/talent-api/internal/samples"
	"github.com/KirkDiggler/talent-api/internal/schema"
)

type SamplesTestSuite struct {
	suite.Suite
	schema *schema.Schema
}

func TestSamplesSuite(t *testing.T) {
	suite.Run(t, new(SamplesTestSuite))
}

func (s *SamplesTestSuite) SetupTest() {
	s.schema = schema.Default()
}

func (s *SamplesTestSuite) TestRawRequirementsMatchTyped() {
	raw := samples.RawRequirements()
	typed := samples.Requirements()
	s.Require().Len(raw, len(typed))

	for i := range raw {
		got, err := s.schema.ParseRequirement(raw[i])
		s.Require().NoError(err, raw[i]["id"])
		s.Assert().Empty(cmp.Diff(typed[i], got), raw[i]["id"])
	}
}

func (s *SamplesTestSuite) TestRawCostsMatchTyped() {
	raw := samples.RawCosts()
	typed := samples.Costs()
	s.Require().Len(raw, len(typed))

	for i := range raw {
		got, err := s.schema.ParseCost(raw[i])
		s.Require().NoError(err, raw[i]["id"])
		s.Assert().Empty(cmp.Diff(typed[i], got), raw[i]["id"])
	}
}

func (s *SamplesTestSuite) TestRawEffectsMatchTyped() {
	raw := samples.RawEffects()
	typed := samples.Effects()
	s.Require().Len(raw, len(typed))

	for i := range raw {
		got, err := s.schema.ParseEffect(raw[i])
		s.Require().NoError(err, raw[i]["id"])
		s.Assert().Empty(cmp.Diff(typed[i], got), raw[i]["id"])
	}
}

func (s *SamplesTestSuite) TestRawRaritiesMatchTyped() {
	raw := samples.RawRarities()
	typed := samples.Rarities()
	s.Require().Len(raw, len(typed))

	for i := range raw {
		got, err := s.schema.ParseRarity(raw[i])
		s.Require().NoError(err, raw[i]["id"])
		s.Assert().Equal(typed[i], got)
	}
}

func (s *SamplesTestSuite) TestRawTalentsMatchTyped() {
	raw := samples.RawTalents()
	typed := samples.Talents()
	s.Require().Len(raw, len(typed))

	for i := range raw {
		got, err := s.schema.ParseTalent(raw[i])
		s.Require().NoError(err, raw[i]["name"])
		s.Assert().Empty(cmp.Diff(typed[i], got), raw[i]["name"])
	}
}

func (s *SamplesTestSuite) TestTypedTalentsAreNormalized() {
	for _, t := range samples.Talents() {
		s.Assert().Empty(cmp.Diff(t, schema.NormalizeTalent(t)), t.Name)
	}
}

func (s *SamplesTestSuite) TestLookupByName() {
	s.Require().NotNil(samples.Talent("Battle Cry"))
	s.Assert().Equal(3, samples.Talent("Battle Cry").MaxRank)
	s.Assert().Nil(samples.Talent("Missing"))

	s.Require().NotNil(samples.RawTalent("Shadow Brand"))
	s.Assert().Nil(samples.RawTalent("Missing"))
}

func (s *SamplesTestSuite) TestCallsReturnFreshValues() {
	first := samples.Talents()
	first[0].Tags[0] = "changed"

	s.Assert().Equal("pyromancy", samples.Talents()[0].Tags[0])
}
