package schema_test

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/errors"
	"github.com/KirkDiggler/talent-api/internal/samples"
	"github.com/KirkDiggler/talent-api/internal/schema"
)

// firebolt is the minimal ungated talent used by the gating scenarios
func firebolt() map[string]any {
	return map[string]any{
		"name":        "Firebolt",
		"description": "Hurl fire",
		"effects": []any{
			map[string]any{"kind": "damage", "damageType": "fire", "amount": 30.0},
		},
		"costs":    []any{},
		"cooldown": 0.0,
		"rank":     1.0,
		"maxRank":  1.0,
	}
}

// gated returns firebolt with a cooldown so the refinements pass
func gated() map[string]any {
	raw := firebolt()
	raw["cooldown"] = 2.0
	return raw
}

// toRaw turns a typed value back into the raw shape a client would submit
func (s *SchemaTestSuite) toRaw(v any) map[string]any {
	data, err := json.Marshal(v)
	s.Require().NoError(err)
	var raw map[string]any
	s.Require().NoError(json.Unmarshal(data, &raw))
	return raw
}

func (s *SchemaTestSuite) TestUngatedTalentIsRejected() {
	t, err := s.schema.ParseTalent(firebolt())
	s.Require().Error(err)
	s.Assert().Nil(t)
	s.Assert().True(errors.IsInvalidArgument(err))

	issues := errors.GetIssues(err)
	s.Require().Len(issues, 1)
	s.Assert().Equal(errors.Path{"costs"}, issues[0].Path)
	s.Assert().Equal(errors.ReasonRefinement, issues[0].Reason)
	s.Assert().Equal(schema.MessageUngatedEffects, issues[0].Message)
}

func (s *SchemaTestSuite) TestGatedTalentIsNormalized() {
	t, err := s.schema.ParseTalent(gated())
	s.Require().NoError(err)

	s.Assert().Equal("common", t.Rarity.Tier)
	s.Assert().Equal(1.0, t.Rarity.Weight)
	s.Require().Len(t.Effects, 1)
	s.Assert().Equal(talents.Instant(), t.Effects[0].GetDuration())
	s.Assert().Equal(talents.TargetEnemy, t.Effects[0].GetTarget())
	s.Assert().Equal(2, t.Cooldown)
	s.Assert().Equal(1, t.Rank)
	s.Assert().Equal(1, t.MaxRank)
	s.Assert().False(t.IsKeyTalent)
	s.Assert().NotNil(t.Tags)
	s.Assert().Empty(t.Tags)
	s.Assert().NotNil(t.Requirements)
	s.Assert().NotNil(t.Costs)
}

func (s *SchemaTestSuite) TestCostGatesTalent() {
	raw := firebolt()
	raw["costs"] = []any{map[string]any{"kind": "resource", "resource": "mana", "amount": 20.0}}

	t, err := s.schema.ParseTalent(raw)
	s.Require().NoError(err)
	s.Require().Len(t.Costs, 1)
	s.Assert().Equal(talents.PerCast, t.Costs[0].(talents.ResourceCost).Per)
}

func (s *SchemaTestSuite) TestRankCannotExceedMaxRank() {
	testCases := []struct {
		name    string
		rank    any
		maxRank any
	}{
		{name: "explicit max", rank: 3.0, maxRank: 2.0},
		{name: "default max", rank: 2.0, maxRank: nil},
		{name: "large gap", rank: 20.0, maxRank: 1.0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			raw := gated()
			raw["rank"] = tc.rank
			if tc.maxRank == nil {
				delete(raw, "maxRank")
			} else {
				raw["maxRank"] = tc.maxRank
			}

			_, err := s.schema.ParseTalent(raw)
			s.Require().Error(err)
			s.Assert().Equal([]string{"rank"}, paths(err))
			issue, _ := issueAt(err, "rank")
			s.Assert().Equal(errors.ReasonRefinement, issue.Reason)
			s.Assert().Equal(schema.MessageRankExceedsMax, issue.Message)
		})
	}
}

func (s *SchemaTestSuite) TestBothRefinementsReported() {
	raw := firebolt()
	raw["rank"] = 4.0
	raw["maxRank"] = 3.0

	_, err := s.schema.ParseTalent(raw)
	s.Require().Error(err)
	s.Assert().Equal([]string{"rank", "costs"}, paths(err))
}

func (s *SchemaTestSuite) TestEffectsAreRequired() {
	testCases := []struct {
		name   string
		mutate func(map[string]any)
		reason errors.Reason
	}{
		{name: "empty list", mutate: func(raw map[string]any) { raw["effects"] = []any{} }, reason: errors.ReasonFormat},
		{name: "absent", mutate: func(raw map[string]any) { delete(raw, "effects") }, reason: errors.ReasonRequired},
		{name: "null", mutate: func(raw map[string]any) { raw["effects"] = nil }, reason: errors.ReasonRequired},
		{
			name: "empty with rank violation",
			mutate: func(raw map[string]any) {
				raw["effects"] = []any{}
				raw["rank"] = 5.0
			},
			reason: errors.ReasonFormat,
		},
		{
			name: "empty with cost gate",
			mutate: func(raw map[string]any) {
				raw["effects"] = []any{}
				raw["costs"] = []any{map[string]any{"kind": "cooldown", "turns": 1.0}}
			},
			reason: errors.ReasonFormat,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			raw := gated()
			tc.mutate(raw)

			_, err := s.schema.ParseTalent(raw)
			s.Require().Error(err)
			s.Assert().Equal([]string{"effects"}, paths(err))
			issue, _ := issueAt(err, "effects")
			s.Assert().Equal(tc.reason, issue.Reason)
		})
	}
}

func (s *SchemaTestSuite) TestPrimitiveFailureSuppressesRefinements() {
	raw := firebolt()
	raw["rank"] = "high"
	raw["maxRank"] = 0.0

	_, err := s.schema.ParseTalent(raw)
	s.Require().Error(err)
	s.Assert().Equal([]string{"rank", "maxRank"}, paths(err))
	for _, issue := range errors.GetIssues(err) {
		s.Assert().NotEqual(errors.ReasonRefinement, issue.Reason)
	}
}

func (s *SchemaTestSuite) TestAllElementErrorsAreCollected() {
	raw := gated()
	raw["name"] = "F"
	raw["description"] = strings.Repeat("x", 501)
	raw["requirements"] = []any{
		map[string]any{"kind": "level", "min": 3.0},
		map[string]any{"kind": "level", "min": 0.0},
	}
	raw["costs"] = []any{
		map[string]any{"kind": "cooldown", "turns": -1.0},
		map[string]any{"kind": "charges"},
		"mana",
	}
	raw["effects"] = []any{
		map[string]any{"kind": "damage"},
		map[string]any{"kind": "bogus"},
	}
	raw["rarity"] = map[string]any{"color": "red"}
	raw["tags"] = []any{"fire", 3.0}

	_, err := s.schema.ParseTalent(raw)
	s.Require().Error(err)
	s.Assert().Equal([]string{
		"name",
		"description",
		"tags[1]",
		"requirements[1].min",
		"costs[0].turns",
		"costs[1].max",
		"costs[2]",
		"effects[0].damageType",
		"effects[0].amount",
		"effects[1].kind",
		"rarity.color",
	}, paths(err))
}

func (s *SchemaTestSuite) TestTalentIDForms() {
	testCases := []struct {
		name     string
		id       any
		expected string
		wantErr  bool
	}{
		{name: "absent", id: nil, expected: ""},
		{name: "number", id: 7.0, expected: "7"},
		{name: "string", id: "tal_abc", expected: "tal_abc"},
		{name: "zero", id: 0.0, wantErr: true},
		{name: "fraction", id: 1.5, wantErr: true},
		{name: "empty string", id: "", wantErr: true},
		{name: "largest exact integer", id: float64(1 << 53), expected: "9007199254740992"},
		{name: "beyond exact integers", id: float64(1<<53) * 2, wantErr: true},
		{name: "beyond int64", id: 1e20, wantErr: true},
		{name: "infinite", id: math.Inf(1), wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			raw := gated()
			if tc.id != nil {
				raw["id"] = tc.id
			}
			t, err := s.schema.ParseTalent(raw)
			if tc.wantErr {
				s.Require().Error(err)
				s.Assert().Equal([]string{"id"}, paths(err))
				return
			}
			s.Require().NoError(err)
			s.Assert().Equal(tc.expected, t.ID)
		})
	}
}

func (s *SchemaTestSuite) TestUnknownTopLevelFields() {
	raw := gated()
	raw["level"] = 3.0
	raw["notes"] = "draft"

	t, err := s.schema.ParseTalent(raw)
	s.Require().NoError(err)
	s.Assert().Equal("Firebolt", t.Name)

	opts := schema.DefaultOptions()
	opts.Strict = true
	strict, err := schema.New(opts)
	s.Require().NoError(err)

	_, err = strict.ParseTalent(raw)
	s.Require().Error(err)
	s.Assert().Equal([]string{"level", "notes"}, paths(err))
}

func (s *SchemaTestSuite) TestValidationIsIdempotent() {
	inputs := samples.RawTalents()
	inputs = append(inputs, gated())

	dice := gated()
	dice["effects"] = []any{
		map[string]any{"kind": "heal", "amount": "d4", "duration": map[string]any{"type": "seconds", "amount": 1.5}},
		map[string]any{"kind": "stat-mod", "stat": "armor", "value": "2d6-1", "stacking": "stack"},
	}
	dice["rarity"] = map[string]any{"tier": "Legendary", "weight": 0.0}
	inputs = append(inputs, dice)

	for _, raw := range inputs {
		s.Run(raw["name"].(string), func() {
			first, err := s.schema.ParseTalent(raw)
			s.Require().NoError(err)

			second, err := s.schema.ParseTalent(s.toRaw(first))
			s.Require().NoError(err)
			s.Assert().Empty(cmp.Diff(first, second))

			s.Assert().Empty(cmp.Diff(first, schema.NormalizeTalent(first)))
		})
	}
}

func (s *SchemaTestSuite) TestNormalizeTalentDefaults() {
	t := schema.NormalizeTalent(&talents.Talent{
		Name:    "Mend",
		Costs:   []talents.Cost{talents.ResourceCost{Resource: talents.ResourceMana, Amount: 4}},
		Effects: []talents.Effect{talents.HealEffect{Amount: talents.NumberAmount(3)}},
		Rarity:  talents.Rarity{Weight: 1},
	})

	s.Assert().Equal(talents.DefaultTier, t.Rarity.Tier)
	s.Assert().Equal(talents.DefaultRank, t.Rank)
	s.Assert().Equal(talents.DefaultMaxRank, t.MaxRank)
	s.Assert().Equal(talents.PerCast, t.Costs[0].(talents.ResourceCost).Per)
	s.Assert().Equal(talents.HealEffect{
		Target:   talents.DefaultHealTarget,
		Amount:   talents.NumberAmount(3),
		Duration: talents.Instant(),
	}, t.Effects[0])
	s.Assert().Equal([]string{}, t.Tags)
	s.Assert().Equal([]talents.Requirement{}, t.Requirements)

	s.Assert().Nil(schema.NormalizeTalent(nil))
}

func (s *SchemaTestSuite) TestNormalizeDoesNotMutateInput() {
	in := &talents.Talent{
		Effects: []talents.Effect{talents.TagEffect{Action: talents.TagAdd, Tag: "burning"}},
	}
	_ = schema.NormalizeTalent(in)

	s.Assert().Equal(talents.Target(""), in.Effects[0].GetTarget())
	s.Assert().Equal(0, in.Rank)
}
