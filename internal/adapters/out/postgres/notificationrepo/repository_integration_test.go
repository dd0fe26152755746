package notificationrepo_test

import (
	"context"
	"testing"

	"jobmarket/internal/adapters/out/postgres/notificationrepo"
	"jobmarket/internal/adapters/out/postgres/pgtest"
	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/domain/model/notification"

	"github.com/stretchr/testify/suite"
)

type NotificationRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *notificationrepo.GormNotificationRepository
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Reset())
	suite.repository = notificationrepo.NewGormNotificationRepository(suite.database.DB)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *NotificationRepositoryIntegrationTestSuite) record(event notification.Event) (*notification.Notification, bool) {
	n, err := notification.FromEvent(event)
	suite.Require().NoError(err)

	inserted, err := suite.repository.Add(context.Background(), n)
	suite.Require().NoError(err)
	return n, inserted
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestAdd_DuplicateEvent_IsIgnored() {
	event, err := notification.NewJobAppliedEvent(kernel.ID(42), kernel.ID(7), kernel.ID(3))
	suite.Require().NoError(err)

	first, inserted := suite.record(event)
	suite.True(inserted)
	suite.Positive(first.ID().Int64())

	_, inserted = suite.record(event)
	suite.False(inserted)

	stored, err := suite.repository.ListByRecipient(context.Background(), kernel.ID(3))
	suite.Require().NoError(err)
	suite.Len(stored, 1)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestListByRecipient_RoutesByEventType() {
	applied, err := notification.NewJobAppliedEvent(kernel.ID(42), kernel.ID(7), kernel.ID(3))
	suite.Require().NoError(err)
	accepted, err := notification.NewJobAcceptedEvent(kernel.ID(42), kernel.ID(7), kernel.ID(3))
	suite.Require().NoError(err)

	suite.record(applied)
	suite.record(accepted)

	owner, err := suite.repository.ListByRecipient(context.Background(), kernel.ID(3))
	suite.Require().NoError(err)
	suite.Require().Len(owner, 1)
	suite.Equal(notification.JobApplied, owner[0].Type())
	suite.True(owner[0].EventID().IsEqual(applied.ID()))

	customer, err := suite.repository.ListByRecipient(context.Background(), kernel.ID(7))
	suite.Require().NoError(err)
	suite.Require().Len(customer, 1)
	suite.Equal(notification.JobAccepted, customer[0].Type())
}

func TestNotificationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryIntegrationTestSuite))
}
