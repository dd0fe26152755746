package commands_test

import (
	"context"
	"log/slog"
	"time"

	"jobmarket/internal/core/application/usecases/commands"
	"jobmarket/internal/core/domain/model/job"
	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/domain/model/location"
	"jobmarket/internal/core/domain/model/matching"
	"jobmarket/internal/core/domain/model/notice"
	"jobmarket/internal/core/domain/model/notification"
	"jobmarket/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	if args.Error(0) == nil && j.ID().IsZero() {
		_ = j.AssignIdentity(kernel.ID(100), time.Now())
	}
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.ID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) Remove(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMatchingRepository struct{ mock.Mock }

func (m *MockMatchingRepository) Add(ctx context.Context, a *matching.Matching) error {
	args := m.Called(ctx, a)
	if args.Error(0) == nil && a.ID().IsZero() {
		_ = a.AssignIdentity(kernel.ID(500), time.Now())
	}
	return args.Error(0)
}

func (m *MockMatchingRepository) Update(ctx context.Context, a *matching.Matching) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockMatchingRepository) Get(ctx context.Context, id kernel.ID) (*matching.Matching, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matching.Matching), args.Error(1)
}

func (m *MockMatchingRepository) Remove(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockNoticeRepository struct{ mock.Mock }

func (m *MockNoticeRepository) Add(ctx context.Context, n *notice.Notice) error {
	args := m.Called(ctx, n)
	if args.Error(0) == nil && n.ID().IsZero() {
		_ = n.AssignIdentity(kernel.ID(900), time.Now())
	}
	return args.Error(0)
}

func (m *MockNoticeRepository) Update(ctx context.Context, n *notice.Notice) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNoticeRepository) Get(ctx context.Context, id kernel.ID) (*notice.Notice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notice.Notice), args.Error(1)
}

func (m *MockNoticeRepository) Remove(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Resolve(ctx context.Context, address kernel.Address) (location.Code, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(location.Code), args.Error(1)
}

func (m *MockLocationRepository) Lookup(ctx context.Context, code location.Code) (*location.LocationCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.LocationCode), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Exists(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) (bool, error) {
	args := m.Called(ctx, n)
	return args.Bool(0), args.Error(1)
}

func (m *MockNotificationRepository) ListByRecipient(
	ctx context.Context,
	recipientID kernel.ID,
) ([]*notification.Notification, error) {
	args := m.Called(ctx, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

func (m *MockUoW) MatchingRepository() ports.MatchingRepository {
	args := m.Called()
	return args.Get(0).(ports.MatchingRepository)
}

func (m *MockUoW) NoticeRepository() ports.NoticeRepository {
	args := m.Called()
	return args.Get(0).(ports.NoticeRepository)
}

func (m *MockUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type uowFactory struct{ uow *MockUoW }

func (f uowFactory) jobs() commands.JobUoWFactory {
	return jobUoWFactory(f)
}

func (f uowFactory) matchings() commands.MatchingUoWFactory {
	return matchingUoWFactory(f)
}

func (f uowFactory) notices() commands.NoticeUoWFactory {
	return noticeUoWFactory(f)
}

func (f uowFactory) notifications() commands.NotificationUoWFactory {
	return notificationUoWFactory(f)
}

type jobUoWFactory uowFactory

func (f jobUoWFactory) Create() commands.JobUoW { return f.uow }

type matchingUoWFactory uowFactory

func (f matchingUoWFactory) Create() commands.MatchingUoW { return f.uow }

type noticeUoWFactory uowFactory

func (f noticeUoWFactory) Create() commands.NoticeUoW { return f.uow }

type notificationUoWFactory uowFactory

func (f notificationUoWFactory) Create() commands.NotificationUoW { return f.uow }

type MockCache struct{ mock.Mock }

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *MockCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	args := m.Called(ctx, prefix)
	return args.Error(0)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, event notification.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newInvalidator(cache *MockCache) commands.CacheInvalidator {
	return commands.NewCacheInvalidator(cache, discardLogger())
}

func newNotifier(publisher *MockPublisher) commands.EventNotifier {
	return commands.NewEventNotifier(publisher, time.Second, discardLogger())
}

func persistedJob(ownerID, jobID kernel.ID) *job.Job {
	j, err := job.RestoreJob(job.Snapshot{
		ID:        jobID,
		OwnerID:   ownerID,
		Details:   job.Details{Title: "Fix a fence", Price: 15000, Category: "repair"},
		Location:  location.Code(1101),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	})
	if err != nil {
		panic(err)
	}
	return j
}

func pendingMatching(id, customerID, jobID kernel.ID) *matching.Matching {
	m, err := matching.RestoreMatching(matching.Snapshot{
		ID:         id,
		CustomerID: customerID,
		JobID:      jobID,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		panic(err)
	}
	return m
}

// isEvent matches a published event by type and (job, customer, owner) triple.
func isEvent(kind notification.Type, jobID, customerID, ownerID kernel.ID) any {
	return mock.MatchedBy(func(e notification.Event) bool {
		return e.Type() == kind && e.JobID() == jobID && e.CustomerID() == customerID && e.OwnerID() == ownerID
	})
}
