package referencerepo_test

import (
	"context"
	"testing"

	"jobmarket/internal/adapters/out/postgres/pgtest"
	"jobmarket/internal/adapters/out/postgres/referencerepo"
	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/domain/model/location"
	"jobmarket/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type ReferenceRepositoryIntegrationTestSuite struct {
	suite.Suite
	database  *pgtest.Database
	locations *referencerepo.GormLocationRepository
	users     *referencerepo.GormUserRepository
}

func (suite *ReferenceRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *ReferenceRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Reset())
	suite.locations = referencerepo.NewGormLocationRepository(suite.database.DB)
	suite.users = referencerepo.NewGormUserRepository(suite.database.DB)

	suite.Require().NoError(suite.locations.Seed(context.Background(), []referencerepo.LocationCodeDTO{
		{Code: 1101, City: "Seoul", District: "Jongno-gu", Neighborhood: "Cheongun-dong"},
		{Code: 2202, City: "Busan", District: "Haeundae-gu", Neighborhood: "U-dong"},
	}))
}

func (suite *ReferenceRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *ReferenceRepositoryIntegrationTestSuite) TestResolve_KnownAddress() {
	addr, err := kernel.NewAddress("Busan", "Haeundae-gu", "U-dong")
	suite.Require().NoError(err)

	code, err := suite.locations.Resolve(context.Background(), addr)
	suite.Require().NoError(err)
	suite.Equal(location.Code(2202), code)
}

func (suite *ReferenceRepositoryIntegrationTestSuite) TestResolve_UnmappedAddress_ReturnsNotFound() {
	addr, err := kernel.NewAddress("Seoul", "Jongno-gu", "Nowhere-dong")
	suite.Require().NoError(err)

	_, err = suite.locations.Resolve(context.Background(), addr)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ReferenceRepositoryIntegrationTestSuite) TestLookup_ReturnsAddress() {
	loc, err := suite.locations.Lookup(context.Background(), 1101)
	suite.Require().NoError(err)

	suite.Equal("Seoul", loc.Address().City())
	suite.Equal("Jongno-gu", loc.Address().District())
	suite.Equal("Cheongun-dong", loc.Address().Neighborhood())
}

func (suite *ReferenceRepositoryIntegrationTestSuite) TestLookup_UnknownCode_ReturnsReferenceDataMissing() {
	_, err := suite.locations.Lookup(context.Background(), 9999)
	suite.ErrorIs(err, errs.ErrReferenceDataIsMissing)
	suite.NotErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ReferenceRepositoryIntegrationTestSuite) TestSeed_IsIdempotent() {
	ctx := context.Background()
	suite.Require().NoError(suite.locations.Seed(ctx, []referencerepo.LocationCodeDTO{
		{Code: 1101, City: "Seoul", District: "Jongno-gu", Neighborhood: "Cheongun-dong"},
	}))

	var count int64
	suite.Require().NoError(suite.database.DB.Model(&referencerepo.LocationCodeDTO{}).Count(&count).Error)
	suite.Equal(int64(2), count)
}

func (suite *ReferenceRepositoryIntegrationTestSuite) TestUserExists() {
	ctx := context.Background()
	id, err := suite.database.SeedUser("someone")
	suite.Require().NoError(err)

	exists, err := suite.users.Exists(ctx, kernel.ID(id))
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.users.Exists(ctx, kernel.ID(id+1))
	suite.Require().NoError(err)
	suite.False(exists)
}

func TestReferenceRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ReferenceRepositoryIntegrationTestSuite))
}
