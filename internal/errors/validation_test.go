package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/talent-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestPathString() {
	testCases := []struct {
		name     string
		path     errors.Path
		expected string
	}{
		{"single field", errors.Path{"rank"}, "rank"},
		{"list element field", errors.Path{"effects", 0, "amount"}, "effects[0].amount"},
		{"nested object", errors.Path{"effects", 2, "duration", "amount"}, "effects[2].duration.amount"},
		{"list element", errors.Path{"tags", 3}, "tags[3]"},
		{"empty", errors.Path{}, ""},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, tc.path.String())
			if len(tc.path) > 0 {
				s.Assert().Equal(tc.path, errors.ParsePath(tc.expected))
			}
		})
	}
}

func (s *ValidationTestSuite) TestPathBuildersDoNotAlias() {
	base := make(errors.Path, 0, 8)
	base = append(base, "costs")

	first := base.Index(0).Field("amount")
	second := base.Index(1).Field("turns")

	s.Assert().Equal(errors.Path{"costs", 0, "amount"}, first)
	s.Assert().Equal(errors.Path{"costs", 1, "turns"}, second)
	s.Assert().Equal(errors.Path{"costs"}, base)
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.Add(errors.Path{"name"}, errors.ReasonRequired, "is required")
	ve.Add(errors.Path{"rarity", "color"}, errors.ReasonFormat, "is invalid")
	ve.Addf(errors.Path{"maxRank"}, errors.ReasonFormat, "must be at least %d", 1)

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal(3, ve.Len())
	s.Assert().Contains(ve.Error(), "name: is required")
	s.Assert().Contains(ve.Error(), "rarity.color: is invalid")
	s.Assert().Contains(ve.Error(), "maxRank: must be at least 1")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
	s.Assert().Len(errors.GetIssues(err), 3)

	wrapped := errors.Wrap(err, "failed to create talent")
	s.Assert().True(errors.IsInvalidArgument(wrapped))
	s.Assert().Len(errors.GetIssues(wrapped), 3)
}

func (s *ValidationTestSuite) TestEmptyValidationError() {
	ve := errors.NewValidationError()
	s.Assert().False(ve.HasErrors())
	s.Assert().Nil(ve.ToError())
	s.Assert().Nil(errors.GetIssues(nil))
	s.Assert().Nil(errors.GetIssues(errors.NotFound("nope")))
}

func (s *ValidationTestSuite) TestReasonIsStructural() {
	s.Assert().True(errors.ReasonRequired.IsStructural())
	s.Assert().True(errors.ReasonInvalidType.IsStructural())
	s.Assert().True(errors.ReasonUnknownField.IsStructural())
	s.Assert().False(errors.ReasonFormat.IsStructural())
	s.Assert().False(errors.ReasonUnknownVariant.IsStructural())
	s.Assert().False(errors.ReasonRefinement.IsStructural())
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("rank", "must be between %d and %d", 1, 20).
		RequiredField("Repository").
		InvalidField("tier", "not a configured tier")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	issues := errors.GetIssues(err)
	s.Require().Len(issues, 4)
	s.Assert().Equal(errors.Path{"Repository"}, issues[2].Path)
	s.Assert().Equal(errors.ReasonRequired, issues[2].Reason)
	s.Assert().Equal("is invalid: not a configured tier", issues[3].Message)
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			s.Assert().Equal(tc.shouldErr, vb.Build() != nil)
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	testCases := []struct {
		name      string
		value     int
		shouldErr bool
	}{
		{"in range", 50051, false},
		{"lower bound", 1, false},
		{"upper bound", 65535, false},
		{"below", 0, true},
		{"above", 70000, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRange("port", tc.value, 1, 65535, vb)
			s.Assert().Equal(tc.shouldErr, vb.Build() != nil)
		})
	}
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowed := []string{"card", "relatory"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("report_mode", "card", allowed, vb)
	s.Assert().Nil(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateEnum("report_mode", "memo", allowed, vb)
	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().Contains(err.Error(), "must be one of: card, relatory")
}
