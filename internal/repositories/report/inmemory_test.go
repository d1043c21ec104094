package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/errors"
	"github.com/KirkDiggler/talent-api/internal/repositories/report"
)

type InMemoryTestSuite struct {
	suite.Suite
	repo *report.InMemoryRepository
	ctx  context.Context
	base time.Time
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryTestSuite))
}

func (s *InMemoryTestSuite) SetupTest() {
	s.repo = report.NewInMemory()
	s.ctx = context.Background()
	s.base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func (s *InMemoryTestSuite) create(id string, offset time.Duration) {
	_, err := s.repo.Create(s.ctx, report.CreateInput{Report: &talents.Report{
		ID: id, Title: "Report " + id, Date: "2024-05-01", CreatedAt: s.base.Add(offset),
	}})
	s.Require().NoError(err)
}

func (s *InMemoryTestSuite) ids(out *report.ListOutput) []string {
	ids := make([]string, 0, len(out.Reports))
	for _, r := range out.Reports {
		ids = append(ids, r.ID)
	}
	return ids
}

func (s *InMemoryTestSuite) TestListNewestFirst() {
	s.create("a", 0)
	s.create("b", time.Hour)
	s.create("c", time.Minute)
	s.create("d", time.Hour)

	out, err := s.repo.List(s.ctx, report.ListInput{})
	s.Require().NoError(err)
	s.Assert().Equal([]string{"d", "b", "c", "a"}, s.ids(out))

	out, err = s.repo.List(s.ctx, report.ListInput{Limit: 2})
	s.Require().NoError(err)
	s.Assert().Equal([]string{"d", "b"}, s.ids(out))
}

func (s *InMemoryTestSuite) TestCreateRejects() {
	s.create("a", 0)

	testCases := []struct {
		name   string
		report *talents.Report
		code   errors.Code
	}{
		{name: "nil", report: nil, code: errors.CodeInvalidArgument},
		{name: "missing id", report: &talents.Report{Title: "x"}, code: errors.CodeInvalidArgument},
		{name: "duplicate", report: &talents.Report{ID: "a"}, code: errors.CodeAlreadyExists},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Create(s.ctx, report.CreateInput{Report: tc.report})
			s.Require().Error(err)
			s.Assert().Equal(tc.code, errors.GetCode(err))
		})
	}
}

func (s *InMemoryTestSuite) TestListReturnsCopies() {
	s.create("a", 0)

	out, err := s.repo.List(s.ctx, report.ListInput{})
	s.Require().NoError(err)
	out.Reports[0].Title = "changed"

	out, err = s.repo.List(s.ctx, report.ListInput{})
	s.Require().NoError(err)
	s.Assert().Equal("Report a", out.Reports[0].Title)

	_, err = s.repo.List(s.ctx, report.ListInput{Limit: -1})
	s.Assert().True(errors.IsInvalidArgument(err))
}
