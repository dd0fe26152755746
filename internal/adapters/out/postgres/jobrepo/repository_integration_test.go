package jobrepo_test

import (
	"context"
	"testing"
	"time"

	"jobmarket/internal/adapters/out/postgres/jobrepo"
	"jobmarket/internal/adapters/out/postgres/pgtest"
	"jobmarket/internal/core/domain/model/job"
	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/domain/model/location"
	"jobmarket/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type JobRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *jobrepo.GormJobRepository
	ownerID    kernel.ID
}

func (suite *JobRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *JobRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Reset())
	suite.repository = jobrepo.NewGormJobRepository(suite.database.DB)

	id, err := suite.database.SeedUser("owner")
	suite.Require().NoError(err)
	suite.ownerID = kernel.ID(id)
}

func (suite *JobRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *JobRepositoryIntegrationTestSuite) addJob(title string, code location.Code) *job.Job {
	photo := "https://img.example/" + title
	j, err := job.NewJob(suite.ownerID, job.Details{
		Title:    title,
		Content:  "details",
		PhotoURL: &photo,
		Price:    10000,
		Category: "chores",
	}, code)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), j))
	return j
}

func (suite *JobRepositoryIntegrationTestSuite) TestAdd_AssignsIdentity() {
	j := suite.addJob("Walk a dog", 1101)

	suite.Positive(j.ID().Int64())
	suite.False(j.CreatedAt().IsZero())
	suite.False(j.IsExpired())
	suite.False(j.IsMatched())
}

func (suite *JobRepositoryIntegrationTestSuite) TestGet_RoundTripsAllFields() {
	j := suite.addJob("Walk a dog", 1101)

	found, err := suite.repository.Get(context.Background(), j.ID())
	suite.Require().NoError(err)

	suite.Equal(j.ID(), found.ID())
	suite.Equal(suite.ownerID, found.OwnerID())
	suite.Equal(j.Details().Title, found.Details().Title)
	suite.Equal(*j.Details().PhotoURL, *found.Details().PhotoURL)
	suite.Equal(location.Code(1101), found.Location())
	suite.WithinDuration(j.CreatedAt(), found.CreatedAt(), time.Millisecond)
}

func (suite *JobRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.ID(999))
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *JobRepositoryIntegrationTestSuite) TestUpdate_WritesFlagsAndClearedPhoto() {
	ctx := context.Background()
	j := suite.addJob("Walk a dog", 1101)

	empty := ""
	suite.Require().NoError(j.Apply(job.Patch{PhotoURL: &empty}))
	j.MarkMatched()
	suite.Require().NoError(suite.repository.Update(ctx, j))

	found, err := suite.repository.Get(ctx, j.ID())
	suite.Require().NoError(err)
	suite.True(found.IsMatched())
	suite.False(found.IsExpired())
	suite.Nil(found.Details().PhotoURL)
}

func (suite *JobRepositoryIntegrationTestSuite) TestRemove_SoftDeletes() {
	ctx := context.Background()
	j := suite.addJob("Walk a dog", 1101)

	suite.Require().NoError(suite.repository.Remove(ctx, j.ID()))

	_, err := suite.repository.Get(ctx, j.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	var count int64
	suite.Require().NoError(suite.database.DB.Unscoped().Model(&jobrepo.JobDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count, "row is kept with deleted_at set")

	suite.ErrorIs(suite.repository.Remove(ctx, j.ID()), errs.ErrObjectNotFound)
}

func (suite *JobRepositoryIntegrationTestSuite) TestListActive_ExcludesExpiredMatchedAndDeleted_NewestFirst() {
	ctx := context.Background()
	first := suite.addJob("first", 1101)
	expired := suite.addJob("expired", 1101)
	matched := suite.addJob("matched", 1101)
	deleted := suite.addJob("deleted", 1101)
	last := suite.addJob("last", 1101)

	expired.MarkExpired()
	suite.Require().NoError(suite.repository.Update(ctx, expired))
	matched.MarkMatched()
	suite.Require().NoError(suite.repository.Update(ctx, matched))
	suite.Require().NoError(suite.repository.Remove(ctx, deleted.ID()))

	active, err := suite.repository.ListActive(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(active, 2)
	suite.Equal(last.ID(), active[0].ID())
	suite.Equal(first.ID(), active[1].ID())
}

func (suite *JobRepositoryIntegrationTestSuite) TestListByLocation_KeepsExpiredAndMatched() {
	ctx := context.Background()
	here := suite.addJob("here", 1101)
	suite.addJob("elsewhere", 2202)
	done := suite.addJob("done", 1101)

	done.MarkExpired()
	suite.Require().NoError(suite.repository.Update(ctx, done))

	jobs, err := suite.repository.ListByLocation(ctx, 1101)
	suite.Require().NoError(err)

	suite.Require().Len(jobs, 2)
	suite.Equal(done.ID(), jobs[0].ID())
	suite.Equal(here.ID(), jobs[1].ID())
}

func TestJobRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(JobRepositoryIntegrationTestSuite))
}
