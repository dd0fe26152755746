package matchingrepo_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"jobmarket/internal/adapters/out/postgres/matchingrepo"
	"jobmarket/internal/adapters/out/postgres/pgtest"
	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/domain/model/matching"
	"jobmarket/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type MatchingRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *matchingrepo.GormMatchingRepository
}

func (suite *MatchingRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *MatchingRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Reset())
	suite.repository = matchingrepo.NewGormMatchingRepository(suite.database.DB)
}

func (suite *MatchingRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *MatchingRepositoryIntegrationTestSuite) addMatching() *matching.Matching {
	m, err := matching.NewMatching(kernel.ID(7), kernel.ID(42))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), m))
	return m
}

func (suite *MatchingRepositoryIntegrationTestSuite) TestAdd_StartsPending() {
	m := suite.addMatching()

	found, err := suite.repository.Get(context.Background(), m.ID())
	suite.Require().NoError(err)

	suite.Equal(matching.Pending, found.Status())
	suite.Equal(kernel.ID(7), found.CustomerID())
	suite.Equal(kernel.ID(42), found.JobID())
}

func (suite *MatchingRepositoryIntegrationTestSuite) TestUpdate_PersistsDecision() {
	ctx := context.Background()
	m := suite.addMatching()

	suite.Require().NoError(m.Reject())
	suite.Require().NoError(suite.repository.Update(ctx, m))

	found, err := suite.repository.Get(ctx, m.ID())
	suite.Require().NoError(err)
	suite.True(found.IsRejected())
	suite.False(found.IsMatched())
}

func (suite *MatchingRepositoryIntegrationTestSuite) TestUpdate_SecondDecisionOnStaleCopyIsRefused() {
	ctx := context.Background()
	m := suite.addMatching()

	accepting, err := suite.repository.Get(ctx, m.ID())
	suite.Require().NoError(err)
	rejecting, err := suite.repository.Get(ctx, m.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(accepting.Accept())
	suite.Require().NoError(suite.repository.Update(ctx, accepting))

	suite.Require().NoError(rejecting.Reject())
	err = suite.repository.Update(ctx, rejecting)
	suite.ErrorIs(err, matching.ErrAlreadyDecided)

	found, err := suite.repository.Get(ctx, m.ID())
	suite.Require().NoError(err)
	suite.True(found.IsMatched())
	suite.False(found.IsRejected())
}

func (suite *MatchingRepositoryIntegrationTestSuite) TestUpdate_ConcurrentDecisionsHaveOneWinner() {
	ctx := context.Background()
	m := suite.addMatching()

	decide := func(accept bool) error {
		return suite.database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			repo := matchingrepo.NewGormMatchingRepository(tx)
			loaded, err := repo.Get(ctx, m.ID())
			if err != nil {
				return err
			}
			if accept {
				err = loaded.Accept()
			} else {
				err = loaded.Reject()
			}
			if err != nil {
				return err
			}
			return repo.Update(ctx, loaded)
		})
	}

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for _, accept := range []bool{true, false} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- decide(accept)
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, refused int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, matching.ErrAlreadyDecided):
			refused++
		default:
			suite.Failf("unexpected error", "%v", err)
		}
	}
	suite.Equal(1, succeeded)
	suite.Equal(1, refused)

	found, err := suite.repository.Get(ctx, m.ID())
	suite.Require().NoError(err)
	suite.NotEqual(found.IsMatched(), found.IsRejected())
}

func (suite *MatchingRepositoryIntegrationTestSuite) TestRemove_HidesWithdrawnApplication() {
	ctx := context.Background()
	m := suite.addMatching()

	suite.Require().NoError(suite.repository.Remove(ctx, m.ID()))

	_, err := suite.repository.Get(ctx, m.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.ErrorIs(suite.repository.Update(ctx, m), errs.ErrObjectNotFound)
}

func TestMatchingRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(MatchingRepositoryIntegrationTestSuite))
}
