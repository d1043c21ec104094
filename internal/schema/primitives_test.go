package schema_test

import (
	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/errors"
	"github.com/KirkDiggler/talent-api/internal/schema"
)

func (s *SchemaTestSuite) TestHexColor() {
	testCases := []struct {
		name    string
		input   any
		wantErr bool
		reason  errors.Reason
	}{
		{name: "upper case", input: "#A0A0A0"},
		{name: "mixed case", input: "#4caF50"},
		{name: "missing hash", input: "A0A0A0", wantErr: true, reason: errors.ReasonFormat},
		{name: "short form", input: "#FFF", wantErr: true, reason: errors.ReasonFormat},
		{name: "not hex", input: "#GGGGGG", wantErr: true, reason: errors.ReasonFormat},
		{name: "alpha channel", input: "#A0A0A0FF", wantErr: true, reason: errors.ReasonFormat},
		{name: "number", input: 123.0, wantErr: true, reason: errors.ReasonInvalidType},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			color, err := schema.HexColor(tc.input)
			if !tc.wantErr {
				s.Require().NoError(err)
				s.Assert().Equal(tc.input, color)
				return
			}
			s.Require().Error(err)
			issues := errors.GetIssues(err)
			s.Require().Len(issues, 1)
			s.Assert().Equal(tc.reason, issues[0].Reason)
		})
	}
}

func (s *SchemaTestSuite) TestDiceExpression() {
	testCases := []struct {
		name     string
		input    any
		expected talents.DiceExpression
		wantErr  bool
	}{
		{name: "count omitted", input: "d6", expected: talents.DiceExpression{Count: 1, Sides: 6}},
		{name: "plain", input: "2d8", expected: talents.DiceExpression{Count: 2, Sides: 8}},
		{name: "bonus", input: "1d8+2", expected: talents.DiceExpression{Count: 1, Sides: 8, Modifier: 2}},
		{name: "penalty", input: "3d6-1", expected: talents.DiceExpression{Count: 3, Sides: 6, Modifier: -1}},
		{name: "letter size", input: "1dx+2", wantErr: true},
		{name: "missing d", input: "8+2", wantErr: true},
		{name: "spaces", input: "1d8 + 2", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "number", input: 6.0, wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			d, err := schema.DiceExpression(tc.input)
			if tc.wantErr {
				s.Require().Error(err)
				return
			}
			s.Require().NoError(err)
			s.Assert().Equal(tc.expected, d)
		})
	}
}

func (s *SchemaTestSuite) TestNumberOrDice() {
	testCases := []struct {
		name     string
		input    any
		sign     schema.Sign
		expected talents.Amount
		wantErr  bool
	}{
		{name: "number", input: 30.0, sign: schema.Positive, expected: talents.NumberAmount(30)},
		{name: "int", input: 4, sign: schema.Positive, expected: talents.NumberAmount(4)},
		{name: "negative any sign", input: -2.0, sign: schema.AnySign, expected: talents.NumberAmount(-2)},
		{name: "zero not positive", input: 0.0, sign: schema.Positive, wantErr: true},
		{name: "integer string", input: "12", sign: schema.Positive, expected: talents.NumberAmount(12)},
		{name: "zero string not positive", input: "0", sign: schema.Positive, wantErr: true},
		{name: "zero string nonnegative", input: "0", sign: schema.NonNegative, expected: talents.NumberAmount(0)},
		{
			name: "dice", input: "1d8+2", sign: schema.Positive,
			expected: talents.DiceAmount(talents.DiceExpression{Count: 1, Sides: 8, Modifier: 2}),
		},
		{name: "decimal string", input: "1.5", sign: schema.Positive, wantErr: true},
		{name: "malformed dice", input: "1dx+2", sign: schema.Positive, wantErr: true},
		{name: "boolean", input: true, sign: schema.Positive, wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			a, err := schema.NumberOrDice(tc.input, tc.sign)
			if tc.wantErr {
				s.Require().Error(err)
				return
			}
			s.Require().NoError(err)
			s.Assert().Equal(tc.expected, a)
		})
	}
}

func (s *SchemaTestSuite) TestParseDuration() {
	testCases := []struct {
		name     string
		input    any
		expected talents.Duration
		path     string
		reason   errors.Reason
	}{
		{name: "absent", input: nil, expected: talents.Instant()},
		{name: "instant", input: map[string]any{"type": "instant"}, expected: talents.Instant()},
		{
			name:     "turns",
			input:    map[string]any{"type": "turns", "amount": 3.0},
			expected: talents.Duration{Type: talents.DurationTurns, Amount: 3},
		},
		{
			name:     "seconds",
			input:    map[string]any{"type": "seconds", "amount": 0.5},
			expected: talents.Duration{Type: talents.DurationSeconds, Amount: 0.5},
		},
		{name: "fractional turns", input: map[string]any{"type": "turns", "amount": 1.5}, path: "amount", reason: errors.ReasonFormat},
		{name: "zero seconds", input: map[string]any{"type": "seconds", "amount": 0.0}, path: "amount", reason: errors.ReasonFormat},
		{name: "turns without amount", input: map[string]any{"type": "turns"}, path: "amount", reason: errors.ReasonRequired},
		{name: "unknown type", input: map[string]any{"type": "forever"}, path: "type", reason: errors.ReasonUnknownVariant},
		{name: "missing type", input: map[string]any{"amount": 2.0}, path: "type", reason: errors.ReasonUnknownVariant},
		{name: "not an object", input: "instant", path: "", reason: errors.ReasonInvalidType},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			d, err := s.schema.ParseDuration(tc.input)
			if tc.reason == "" {
				s.Require().NoError(err)
				s.Assert().Equal(tc.expected, d)
				return
			}
			s.Require().Error(err)
			issues := errors.GetIssues(err)
			s.Require().Len(issues, 1)
			s.Assert().Equal(tc.path, issues[0].Path.String())
			s.Assert().Equal(tc.reason, issues[0].Reason)
		})
	}
}
