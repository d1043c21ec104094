package schema_test

import (
	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/errors"
	"github.com/KirkDiggler/talent-api/internal/schema"
)

func (s *SchemaTestSuite) TestParseRequirement() {
	two := 2
	testCases := []struct {
		name     string
		input    map[string]any
		expected talents.Requirement
		paths    []string
		reason   errors.Reason
	}{
		{
			name:     "level",
			input:    map[string]any{"kind": "level", "min": 3.0},
			expected: talents.LevelRequirement{Min: 3},
		},
		{
			name:   "level min zero",
			input:  map[string]any{"kind": "level", "min": 0.0},
			paths:  []string{"min"},
			reason: errors.ReasonFormat,
		},
		{
			name:   "level min fractional",
			input:  map[string]any{"kind": "level", "min": 2.5},
			paths:  []string{"min"},
			reason: errors.ReasonFormat,
		},
		{
			name:     "stat allows any number",
			input:    map[string]any{"id": "req-str", "kind": "stat", "stat": "strength", "min": -1.5},
			expected: talents.StatRequirement{ID: "req-str", Stat: "strength", Min: -1.5},
		},
		{
			name:   "stat missing fields reports all",
			input:  map[string]any{"kind": "stat"},
			paths:  []string{"stat", "min"},
			reason: errors.ReasonRequired,
		},
		{
			name:     "talent",
			input:    map[string]any{"kind": "talent", "talentId": "basic-casting"},
			expected: talents.TalentRequirement{TalentID: "basic-casting"},
		},
		{
			name:     "tag with count",
			input:    map[string]any{"kind": "tag", "tag": "pyromancy", "count": 2.0},
			expected: talents.TagRequirement{Tag: "pyromancy", Count: &two},
		},
		{
			name:   "tag zero count",
			input:  map[string]any{"kind": "tag", "tag": "pyromancy", "count": 0.0},
			paths:  []string{"count"},
			reason: errors.ReasonFormat,
		},
		{
			name:     "class",
			input:    map[string]any{"kind": "class", "classId": "mage"},
			expected: talents.ClassRequirement{ClassID: "mage"},
		},
		{
			name:   "wrong type",
			input:  map[string]any{"kind": "class", "classId": 7.0},
			paths:  []string{"classId"},
			reason: errors.ReasonInvalidType,
		},
		{
			name:     "fields of another variant are stripped",
			input:    map[string]any{"kind": "level", "min": 4.0, "stat": "strength", "classId": "mage"},
			expected: talents.LevelRequirement{Min: 4},
		},
		{
			name:   "unknown kind",
			input:  map[string]any{"kind": "quest", "questId": "q1"},
			paths:  []string{"kind"},
			reason: errors.ReasonUnknownVariant,
		},
		{
			name:   "missing kind",
			input:  map[string]any{"min": 3.0},
			paths:  []string{"kind"},
			reason: errors.ReasonUnknownVariant,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			r, err := s.schema.ParseRequirement(tc.input)
			if tc.paths == nil {
				s.Require().NoError(err)
				s.Assert().Equal(tc.expected, r)
				return
			}
			s.Require().Error(err)
			s.Assert().Nil(r)
			s.Assert().Equal(tc.paths, paths(err))
			for _, issue := range errors.GetIssues(err) {
				s.Assert().Equal(tc.reason, issue.Reason)
			}
		})
	}
}

func (s *SchemaTestSuite) TestUnknownVariantNamesAcceptedValues() {
	_, err := s.schema.ParseRequirement(map[string]any{"kind": "quest"})
	s.Require().Error(err)
	issue, ok := issueAt(err, "kind")
	s.Require().True(ok)
	s.Assert().Contains(issue.Message, `"quest"`)
	s.Assert().Contains(issue.Message, "level, stat, talent, tag, class")

	_, err = s.schema.ParseEffect(map[string]any{"kind": 4.0})
	s.Require().Error(err)
	issue, ok = issueAt(err, "kind")
	s.Require().True(ok)
	s.Assert().Equal(errors.ReasonUnknownVariant, issue.Reason)
	s.Assert().Contains(issue.Message, "stat-mod, damage, heal, tag")
}

func (s *SchemaTestSuite) TestStrictModeRejectsForeignFields() {
	opts := schema.DefaultOptions()
	opts.Strict = true
	strict, err := schema.New(opts)
	s.Require().NoError(err)

	_, err = strict.ParseRequirement(map[string]any{"kind": "level", "min": 4.0, "stat": "strength", "classId": "mage"})
	s.Require().Error(err)
	s.Assert().Equal([]string{"classId", "stat"}, paths(err))
	for _, issue := range errors.GetIssues(err) {
		s.Assert().Equal(errors.ReasonUnknownField, issue.Reason)
		s.Assert().True(issue.Reason.IsStructural())
	}

	_, err = strict.ParseEffect(map[string]any{
		"kind": "damage", "damageType": "fire", "amount": 5.0, "value": 3.0,
		"duration": map[string]any{"type": "instant", "amount": 2.0},
	})
	s.Require().Error(err)
	s.Assert().Equal([]string{"duration.amount", "value"}, paths(err))
}

func (s *SchemaTestSuite) TestParseCost() {
	three := 3
	testCases := []struct {
		name     string
		input    map[string]any
		expected talents.Cost
		paths    []string
		reason   errors.Reason
	}{
		{
			name:     "resource",
			input:    map[string]any{"kind": "resource", "resource": "mana", "amount": 20.0, "per": "turn"},
			expected: talents.ResourceCost{Resource: talents.ResourceMana, Amount: 20, Per: talents.PerTurn},
		},
		{
			name:     "item with id",
			input:    map[string]any{"kind": "resource", "resource": "item", "amount": 1.0, "itemId": "health-potion"},
			expected: talents.ResourceCost{Resource: talents.ResourceItem, Amount: 1, Per: talents.PerCast, ItemID: "health-potion"},
		},
		{
			name:     "resource with max uses",
			input:    map[string]any{"kind": "resource", "resource": "mana", "amount": 0.0, "maxUses": 3.0},
			expected: talents.ResourceCost{Resource: talents.ResourceMana, Per: talents.PerCast, MaxUses: &three},
		},
		{
			name:   "negative amount",
			input:  map[string]any{"kind": "resource", "resource": "mana", "amount": -1.0},
			paths:  []string{"amount"},
			reason: errors.ReasonFormat,
		},
		{
			name:   "unknown resource",
			input:  map[string]any{"kind": "resource", "resource": "ether", "amount": 1.0},
			paths:  []string{"resource"},
			reason: errors.ReasonFormat,
		},
		{
			name:   "unknown cadence",
			input:  map[string]any{"kind": "resource", "resource": "mana", "amount": 1.0, "per": "day"},
			paths:  []string{"per"},
			reason: errors.ReasonFormat,
		},
		{
			name:   "stamina with max uses",
			input:  map[string]any{"kind": "resource", "resource": "stamina", "amount": 5.0, "maxUses": 2.0},
			paths:  []string{"maxUses"},
			reason: errors.ReasonRefinement,
		},
		{
			name:   "none with amount",
			input:  map[string]any{"kind": "resource", "resource": "none", "amount": 5.0},
			paths:  []string{"amount"},
			reason: errors.ReasonRefinement,
		},
		{
			name:     "none with zero amount",
			input:    map[string]any{"kind": "resource", "resource": "none", "amount": 0.0},
			expected: talents.ResourceCost{Resource: talents.ResourceNone, Per: talents.PerCast},
		},
		{
			name:     "none without amount",
			input:    map[string]any{"kind": "resource", "resource": "none"},
			expected: talents.ResourceCost{Resource: talents.ResourceNone, Per: talents.PerCast},
		},
		{
			name:   "stamina refinement waits for fields",
			input:  map[string]any{"kind": "resource", "resource": "stamina", "amount": -5.0, "maxUses": 2.0},
			paths:  []string{"amount"},
			reason: errors.ReasonFormat,
		},
		{
			name:     "cooldown",
			input:    map[string]any{"kind": "cooldown", "turns": 0.0},
			expected: talents.CooldownCost{},
		},
		{
			name:   "negative cooldown",
			input:  map[string]any{"kind": "cooldown", "turns": -1.0},
			paths:  []string{"turns"},
			reason: errors.ReasonFormat,
		},
		{
			name:     "charges",
			input:    map[string]any{"kind": "charges", "max": 2.0, "recharge": "long-rest"},
			expected: talents.ChargesCost{Max: 2, Recharge: talents.RechargeLongRest},
		},
		{
			name:   "zero charges",
			input:  map[string]any{"kind": "charges", "max": 0.0},
			paths:  []string{"max"},
			reason: errors.ReasonFormat,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, err := s.schema.ParseCost(tc.input)
			if tc.paths == nil {
				s.Require().NoError(err)
				s.Assert().Equal(tc.expected, c)
				return
			}
			s.Require().Error(err)
			s.Assert().Equal(tc.paths, paths(err))
			for _, issue := range errors.GetIssues(err) {
				s.Assert().Equal(tc.reason, issue.Reason)
			}
		})
	}
}

func (s *SchemaTestSuite) TestConfiguredResources() {
	opts := schema.DefaultOptions()
	opts.Resources = []talents.ResourceType{talents.ResourceEther, talents.ResourceStamina, talents.ResourceNone}
	narrow, err := schema.New(opts)
	s.Require().NoError(err)

	c, err := narrow.ParseCost(map[string]any{"kind": "resource", "resource": "ether", "amount": 2.0})
	s.Require().NoError(err)
	s.Assert().Equal(talents.ResourceEther, c.(talents.ResourceCost).Resource)

	_, err = narrow.ParseCost(map[string]any{"kind": "resource", "resource": "mana", "amount": 2.0})
	s.Require().Error(err)
	issue, ok := issueAt(err, "resource")
	s.Require().True(ok)
	s.Assert().Contains(issue.Message, "ether, stamina, none")
}

func (s *SchemaTestSuite) TestParseEffectDiceAmounts() {
	dice := talents.DiceAmount(talents.DiceExpression{Count: 1, Sides: 8, Modifier: 2})

	testCases := []struct {
		name  string
		input map[string]any
		field string
	}{
		{name: "stat-mod value", input: map[string]any{"kind": "stat-mod", "stat": "strength"}, field: "value"},
		{name: "damage amount", input: map[string]any{"kind": "damage", "damageType": "fire"}, field: "amount"},
		{name: "heal amount", input: map[string]any{"kind": "heal"}, field: "amount"},
	}

	for _, tc := range testCases {
		s.Run(tc.name+" accepts dice", func() {
			tc.input[tc.field] = "1d8+2"
			e, err := s.schema.ParseEffect(tc.input)
			s.Require().NoError(err)
			switch v := e.(type) {
			case talents.StatModEffect:
				s.Assert().Equal(dice, v.Value)
			case talents.DamageEffect:
				s.Assert().Equal(dice, v.Amount)
			case talents.HealEffect:
				s.Assert().Equal(dice, v.Amount)
			default:
				s.Failf("unexpected effect", "%T", e)
			}
		})

		for _, bad := range []string{"1dx+2", "8+2"} {
			s.Run(tc.name+" rejects "+bad, func() {
				tc.input[tc.field] = bad
				_, err := s.schema.ParseEffect(tc.input)
				s.Require().Error(err)
				s.Assert().Equal([]string{tc.field}, paths(err))
				issue, _ := issueAt(err, tc.field)
				s.Assert().Equal(errors.ReasonFormat, issue.Reason)
			})
		}
	}
}

func (s *SchemaTestSuite) TestParseEffect() {
	testCases := []struct {
		name     string
		input    map[string]any
		expected talents.Effect
		paths    []string
	}{
		{
			name:  "stat-mod negative value",
			input: map[string]any{"kind": "stat-mod", "target": "self", "stat": "speed", "op": "mul", "value": -0.5},
			expected: talents.StatModEffect{
				Target: talents.TargetSelf, Stat: "speed", Op: talents.OpMul, Value: talents.NumberAmount(-0.5),
				Duration: talents.Instant(), Stacking: talents.StackingNone,
			},
		},
		{
			name:  "heal with duration",
			input: map[string]any{"kind": "heal", "target": "area", "amount": 5.0, "duration": map[string]any{"type": "turns", "amount": 3.0}},
			expected: talents.HealEffect{
				Target: talents.TargetArea, Amount: talents.NumberAmount(5),
				Duration: talents.Duration{Type: talents.DurationTurns, Amount: 3},
			},
		},
		{
			name:     "tag",
			input:    map[string]any{"kind": "tag", "action": "remove", "tag": "burning"},
			expected: talents.TagEffect{Target: talents.TargetEnemy, Action: talents.TagRemove, Tag: "burning", Duration: talents.Instant()},
		},
		{
			name:  "damage cannot target self",
			input: map[string]any{"kind": "damage", "target": "self", "damageType": "fire", "amount": 3.0},
			paths: []string{"target"},
		},
		{
			name:  "heal cannot target enemy",
			input: map[string]any{"kind": "heal", "target": "enemy", "amount": 3.0},
			paths: []string{"target"},
		},
		{
			name:  "damage must be positive",
			input: map[string]any{"kind": "damage", "damageType": "fire", "amount": 0.0},
			paths: []string{"amount"},
		},
		{
			name: "every field failure is reported",
			input: map[string]any{
				"kind": "stat-mod", "target": "area", "op": "pow", "value": "lots",
				"duration": map[string]any{"type": "turns", "amount": 0.0}, "stacking": "merge",
			},
			paths: []string{"target", "stat", "op", "value", "duration.amount", "stacking"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			e, err := s.schema.ParseEffect(tc.input)
			if tc.paths == nil {
				s.Require().NoError(err)
				s.Assert().Equal(tc.expected, e)
				return
			}
			s.Require().Error(err)
			s.Assert().Equal(tc.paths, paths(err))
		})
	}
}

func (s *SchemaTestSuite) TestParseRarity() {
	r, err := s.schema.ParseRarity(nil)
	s.Require().NoError(err)
	s.Assert().Equal(talents.Rarity{Tier: "common", Weight: 1}, r)

	r, err = s.schema.ParseRarity(map[string]any{"tier": "epic", "weight": 0.0, "color": "#9C27B0"})
	s.Require().NoError(err)
	s.Assert().Equal(talents.Rarity{Tier: "epic", Weight: 0, Color: "#9C27B0"}, r)

	_, err = s.schema.ParseRarity(map[string]any{"tier": "epic", "weight": -1.0, "color": "purple"})
	s.Require().Error(err)
	s.Assert().Equal([]string{"weight", "color"}, paths(err))
}

func (s *SchemaTestSuite) TestParseRarityItem() {
	testCases := []struct {
		name     string
		input    map[string]any
		expected *talents.RarityItem
		paths    []string
	}{
		{
			name:     "defaults",
			input:    map[string]any{"name": "  Rare "},
			expected: &talents.RarityItem{Name: "Rare", Color: "#000000", Weight: 1},
		},
		{
			name:     "explicit zero weight",
			input:    map[string]any{"id": "r1", "name": "Mythic", "color": "#FFC107", "weight": 0.0},
			expected: &talents.RarityItem{ID: "r1", Name: "Mythic", Color: "#FFC107", Weight: 0},
		},
		{name: "blank name", input: map[string]any{"name": "   "}, paths: []string{"name"}},
		{name: "missing name", input: map[string]any{}, paths: []string{"name"}},
		{name: "bad color and weight", input: map[string]any{"name": "Rare", "color": "#12", "weight": "heavy"}, paths: []string{"color", "weight"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			item, err := s.schema.ParseRarityItem(tc.input)
			if tc.paths == nil {
				s.Require().NoError(err)
				s.Assert().Equal(tc.expected, item)
				return
			}
			s.Require().Error(err)
			s.Assert().Nil(item)
			s.Assert().Equal(tc.paths, paths(err))
		})
	}
}
