package talent_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/talent-api/internal/errors"
	"github.com/KirkDiggler/talent-api/internal/repositories/talent"
	"github.com/KirkDiggler/talent-api/internal/samples"
	"github.com/KirkDiggler/talent-api/internal/testutils"
)

type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() talent.Repository
	ctx     context.Context
	repo    talent.Repository
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() talent.Repository { return talent.NewInMemory() },
	})
}

func TestRedisRepository(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.newRepo = func() talent.Repository {
		client, _ := testutils.CreateTestRedisClient(s.T())
		repo, err := talent.NewRedis(&talent.RedisConfig{Client: client})
		s.Require().NoError(err)
		return repo
	}
	suite.Run(t, s)
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.newRepo()
}

func (s *RepositoryTestSuite) seed() {
	for _, t := range samples.Talents() {
		_, err := s.repo.Create(s.ctx, talent.CreateInput{Talent: t})
		s.Require().NoError(err)
	}
}

func (s *RepositoryTestSuite) names(out *talent.ListOutput) []string {
	names := make([]string, 0, len(out.Talents))
	for _, t := range out.Talents {
		names = append(names, t.Name)
	}
	return names
}

func (s *RepositoryTestSuite) TestCreateAndGet() {
	s.seed()

	for _, want := range samples.Talents() {
		got, err := s.repo.Get(s.ctx, talent.GetInput{ID: want.ID})
		s.Require().NoError(err)
		s.Assert().Empty(cmp.Diff(want, got.Talent), want.Name)
	}
}

func (s *RepositoryTestSuite) TestCreateRejects() {
	s.seed()

	testCases := []struct {
		name  string
		input talent.CreateInput
		code  errors.Code
	}{
		{name: "nil talent", input: talent.CreateInput{}, code: errors.CodeInvalidArgument},
		{name: "missing id", input: talent.CreateInput{Talent: samples.Talents()[0].Clone()}, code: errors.CodeInvalidArgument},
		{name: "duplicate id", input: talent.CreateInput{Talent: samples.Talent("Firebolt")}, code: errors.CodeAlreadyExists},
	}
	testCases[1].input.Talent.ID = ""

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Create(s.ctx, tc.input)
			s.Require().Error(err)
			s.Assert().Equal(tc.code, errors.GetCode(err))
		})
	}
}

func (s *RepositoryTestSuite) TestConcurrentCreatesWithSameID() {
	const attempts = 10

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		codes   []errors.Code
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.repo.Create(s.ctx, talent.CreateInput{Talent: samples.Talent("Firebolt")})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				created++
				return
			}
			codes = append(codes, errors.GetCode(err))
		}()
	}
	wg.Wait()

	s.Assert().Equal(1, created)
	s.Require().Len(codes, attempts-1)
	for _, code := range codes {
		s.Assert().Equal(errors.CodeAlreadyExists, code)
	}

	out, err := s.repo.List(s.ctx, talent.ListInput{})
	s.Require().NoError(err)
	s.Assert().Equal([]string{"Firebolt"}, s.names(out))
}

func (s *RepositoryTestSuite) TestListKeepsCreationOrder() {
	out, err := s.repo.List(s.ctx, talent.ListInput{})
	s.Require().NoError(err)
	s.Assert().Empty(out.Talents)

	s.seed()

	out, err = s.repo.List(s.ctx, talent.ListInput{})
	s.Require().NoError(err)
	s.Assert().Equal([]string{"Firebolt", "Battle Cry", "Shadow Brand"}, s.names(out))

	out, err = s.repo.List(s.ctx, talent.ListInput{Tag: "shadow"})
	s.Require().NoError(err)
	s.Assert().Equal([]string{"Shadow Brand"}, s.names(out))
}

func (s *RepositoryTestSuite) TestUpdateReplacesInPlace() {
	s.seed()

	edited := samples.Talent("Firebolt")
	edited.Name = "Greater Firebolt"
	edited.Rank = 2

	_, err := s.repo.Update(s.ctx, talent.UpdateInput{Talent: edited})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, talent.GetInput{ID: edited.ID})
	s.Require().NoError(err)
	s.Assert().Equal("Greater Firebolt", got.Talent.Name)
	s.Assert().Equal(2, got.Talent.Rank)

	out, err := s.repo.List(s.ctx, talent.ListInput{})
	s.Require().NoError(err)
	s.Assert().Equal([]string{"Greater Firebolt", "Battle Cry", "Shadow Brand"}, s.names(out))

	missing := samples.Talent("Firebolt")
	missing.ID = "404"
	_, err = s.repo.Update(s.ctx, talent.UpdateInput{Talent: missing})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestDelete() {
	s.seed()

	_, err := s.repo.Delete(s.ctx, talent.DeleteInput{ID: "2"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, talent.GetInput{ID: "2"})
	s.Assert().True(errors.IsNotFound(err))

	out, err := s.repo.List(s.ctx, talent.ListInput{})
	s.Require().NoError(err)
	s.Assert().Equal([]string{"Firebolt", "Shadow Brand"}, s.names(out))

	_, err = s.repo.Delete(s.ctx, talent.DeleteInput{ID: "2"})
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, talent.DeleteInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestReturnedTalentsAreCopies() {
	s.seed()

	got, err := s.repo.Get(s.ctx, talent.GetInput{ID: "1"})
	s.Require().NoError(err)
	got.Talent.Tags[0] = "frost"

	again, err := s.repo.Get(s.ctx, talent.GetInput{ID: "1"})
	s.Require().NoError(err)
	s.Assert().Equal("pyromancy", again.Talent.Tags[0])
}

func TestRedisKeys(t *testing.T) {
	client, mr := testutils.CreateTestRedisClient(t)
	repo, err := talent.NewRedis(&talent.RedisConfig{Client: client})
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	for _, tal := range samples.Talents() {
		if _, err := repo.Create(ctx, talent.CreateInput{Talent: tal}); err != nil {
			t.Fatal(err)
		}
	}

	index, err := mr.List("talent:index")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"1", "2", "3"}, index); diff != "" {
		t.Errorf("index mismatch (-want +got):\n%s", diff)
	}
	if !mr.Exists("talent:1") {
		t.Error("expected talent:1 to exist")
	}

	// a dangling index entry is skipped when listing
	mr.Del("talent:2")
	out, err := repo.List(ctx, talent.ListInput{})
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Talents) != 2 {
		t.Errorf("expected 2 talents, got %d", len(out.Talents))
	}
}

