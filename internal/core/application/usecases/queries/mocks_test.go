package queries_test

import (
	"context"
	"log/slog"
	"time"

	"jobmarket/internal/core/domain/model/job"
	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/domain/model/location"
	"jobmarket/internal/core/domain/model/notice"

	"github.com/stretchr/testify/mock"
)

type MockJobReader struct{ mock.Mock }

func (m *MockJobReader) ListActive(ctx context.Context) ([]*job.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobReader) ListByLocation(ctx context.Context, code location.Code) ([]*job.Job, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, j *job.Job) error {
	return m.Called(ctx, j).Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, j *job.Job) error {
	return m.Called(ctx, j).Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.ID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) Remove(ctx context.Context, id kernel.ID) error {
	return m.Called(ctx, id).Error(0)
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

type MockNoticeReader struct{ mock.Mock }

func (m *MockNoticeReader) ListPage(ctx context.Context, offset, limit int) ([]*notice.Notice, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*notice.Notice), args.Get(1).(int64), args.Error(2)
}

// MockCache stands in for a cache backend that is failing or misbehaving.
type MockCache struct{ mock.Mock }

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	raw, _ := args.Get(0).([]byte)
	return raw, args.Bool(1), args.Error(2)
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

func (m *MockCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	return m.Called(ctx, prefix).Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func restoreJob(id, ownerID int64, title string, code location.Code) *job.Job {
	created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Minute)
	j, err := job.RestoreJob(job.Snapshot{
		ID:        kernel.ID(id),
		OwnerID:   kernel.ID(ownerID),
		Details:   job.Details{Title: title, Content: "content", Price: 15000, Category: "chores"},
		Location:  code,
		CreatedAt: created,
		UpdatedAt: created,
	})
	if err != nil {
		panic(err)
	}
	return j
}

func restoreNotice(id int64, title string) *notice.Notice {
	created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Minute)
	n, err := notice.RestoreNotice(notice.Snapshot{
		ID:        kernel.ID(id),
		AuthorID:  kernel.ID(1),
		Title:     title,
		Content:   "content",
		CreatedAt: created,
		UpdatedAt: created,
	})
	if err != nil {
		panic(err)
	}
	return n
}
