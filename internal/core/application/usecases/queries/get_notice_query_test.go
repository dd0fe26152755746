package queries_test

import (
	"context"
	"testing"

	"jobmarket/internal/core/application/usecases/queries"
	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/domain/model/notice"
	"jobmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNoticeRepository struct{ mock.Mock }

func (m *MockNoticeRepository) Add(ctx context.Context, n *notice.Notice) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNoticeRepository) Update(ctx context.Context, n *notice.Notice) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNoticeRepository) Get(ctx context.Context, id kernel.ID) (*notice.Notice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notice.Notice), args.Error(1)
}

func (m *MockNoticeRepository) Remove(ctx context.Context, id kernel.ID) error {
	return m.Called(ctx, id).Error(0)
}

func TestNewGetNoticeQuery_NonPositiveID_IsNotFound(t *testing.T) {
	for _, id := range []kernel.ID{0, -3} {
		_, err := queries.NewGetNoticeQuery(id)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	}
}

func TestGetNotice_ReturnsView(t *testing.T) {
	notices := new(MockNoticeRepository)
	notices.On("Get", mock.Anything, kernel.ID(4)).Return(restoreNotice(4, "maintenance"), nil)

	query, err := queries.NewGetNoticeQuery(4)
	require.NoError(t, err)

	view, err := queries.NewGetNoticeQueryHandler(notices).Handle(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, int64(4), view.ID)
	assert.Equal(t, "maintenance", view.Title)
	assert.Equal(t, int64(1), view.AuthorID)
}

func TestGetNotice_Missing_ReturnsNotFound(t *testing.T) {
	notices := new(MockNoticeRepository)
	notices.On("Get", mock.Anything, kernel.ID(4)).Return(nil, errs.NewObjectNotFoundError("notice", "4"))

	query, err := queries.NewGetNoticeQuery(4)
	require.NoError(t, err)

	_, err = queries.NewGetNoticeQueryHandler(notices).Handle(context.Background(), query)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
