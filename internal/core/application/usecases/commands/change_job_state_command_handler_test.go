package commands_test

import (
	"testing"

	"jobmarket/internal/core/application/cachekeys"
	"jobmarket/internal/core/application/usecases/commands"
	"jobmarket/internal/core/domain/model/job"
	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/domain/model/location"
	"jobmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	ownerID    = kernel.ID(3)
	customerID = kernel.ID(7)
	jobID      = kernel.ID(42)
	matchingID = kernel.ID(500)
)

func TestChangeJobStateCommandHandler_MarkMatched(t *testing.T) {
	ctx := t.Context()
	posting := persistedJob(ownerID, jobID)

	uow := new(MockUoW)
	jobs := new(MockJobRepository)
	cache := new(MockCache)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobs).Once(),
		jobs.On("Get", ctx, jobID).Return(posting, nil).Once(),
		jobs.On("Update", ctx, posting).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		cache.On("Delete", mock.Anything, []string{cachekeys.ActiveJobs}).Return(nil).Once(),
	)
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewChangeJobStateCommandHandler(uowFactory{uow}.jobs(), newInvalidator(cache))
	cmd, err := commands.NewMarkJobMatchedCommand(ownerID, jobID)
	require.NoError(t, err)

	updated, err := handler.HandleMarkMatched(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, updated.IsMatched())
	assert.False(t, updated.IsListable())
	uow.AssertExpectations(t)
	jobs.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestChangeJobStateCommandHandler_OwnershipPrecedesMutation(t *testing.T) {
	tests := []struct {
		name string
		run  func(h commands.ChangeJobStateCommandHandler, t *testing.T) error
	}{
		{
			name: "mark matched",
			run: func(h commands.ChangeJobStateCommandHandler, t *testing.T) error {
				cmd, err := commands.NewMarkJobMatchedCommand(customerID, jobID)
				require.NoError(t, err)
				_, err = h.HandleMarkMatched(t.Context(), cmd)
				return err
			},
		},
		{
			name: "mark expired",
			run: func(h commands.ChangeJobStateCommandHandler, t *testing.T) error {
				cmd, err := commands.NewMarkJobExpiredCommand(customerID, jobID)
				require.NoError(t, err)
				_, err = h.HandleMarkExpired(t.Context(), cmd)
				return err
			},
		},
		{
			name: "remove",
			run: func(h commands.ChangeJobStateCommandHandler, t *testing.T) error {
				cmd, err := commands.NewRemoveJobCommand(customerID, jobID)
				require.NoError(t, err)
				return h.HandleRemove(t.Context(), cmd)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posting := persistedJob(ownerID, jobID)

			uow := new(MockUoW)
			jobs := new(MockJobRepository)
			cache := new(MockCache)

			uow.On("Begin", mock.Anything).Return(nil).Once()
			uow.On("JobRepository").Return(jobs).Once()
			jobs.On("Get", mock.Anything, jobID).Return(posting, nil).Once()
			uow.On("Rollback", mock.Anything).Return(nil).Once()

			handler := commands.NewChangeJobStateCommandHandler(uowFactory{uow}.jobs(), newInvalidator(cache))

			err := tt.run(handler, t)

			require.ErrorIs(t, err, errs.ErrAccessDenied)
			assert.True(t, posting.IsListable())
			jobs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			jobs.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
			cache.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		})
	}
}

func TestChangeJobStateCommandHandler_Remove(t *testing.T) {
	ctx := t.Context()
	posting := persistedJob(ownerID, jobID)

	uow := new(MockUoW)
	jobs := new(MockJobRepository)
	cache := new(MockCache)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(jobs).Once()
	jobs.On("Get", ctx, jobID).Return(posting, nil).Once()
	jobs.On("Remove", ctx, jobID).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	cache.On("Delete", mock.Anything, []string{cachekeys.ActiveJobs}).Return(nil).Once()

	handler := commands.NewChangeJobStateCommandHandler(uowFactory{uow}.jobs(), newInvalidator(cache))
	cmd, err := commands.NewRemoveJobCommand(ownerID, jobID)
	require.NoError(t, err)

	require.NoError(t, handler.HandleRemove(ctx, cmd))
	jobs.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestChangeJobStateCommandHandler_MissingJob(t *testing.T) {
	ctx := t.Context()

	uow := new(MockUoW)
	jobs := new(MockJobRepository)
	cache := new(MockCache)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(jobs).Once()
	jobs.On("Get", ctx, jobID).Return(nil, errs.NewObjectNotFoundError("job", jobID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewChangeJobStateCommandHandler(uowFactory{uow}.jobs(), newInvalidator(cache))
	cmd, err := commands.NewMarkJobExpiredCommand(ownerID, jobID)
	require.NoError(t, err)

	_, err = handler.HandleMarkExpired(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	cache.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUpdateJobCommandHandler_Handle(t *testing.T) {
	t.Run("applies the patch and moves the posting", func(t *testing.T) {
		ctx := t.Context()
		posting := persistedJob(ownerID, jobID)
		addr, err := kernel.NewAddress("Busan", "Haeundae-gu", "U-dong")
		require.NoError(t, err)

		uow := new(MockUoW)
		jobs := new(MockJobRepository)
		locations := new(MockLocationRepository)
		cache := new(MockCache)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("JobRepository").Return(jobs).Once(),
			jobs.On("Get", ctx, jobID).Return(posting, nil).Once(),
			uow.On("LocationRepository").Return(locations).Once(),
			locations.On("Resolve", ctx, addr).Return(location.Code(2601), nil).Once(),
			jobs.On("Update", ctx, posting).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			cache.On("Delete", mock.Anything, []string{cachekeys.ActiveJobs}).Return(nil).Once(),
		)
		uow.On("Rollback", ctx).Return(nil).Once()

		title := "Paint a fence"
		cmd, err := commands.NewUpdateJobCommand(ownerID, jobID, job.Patch{Title: &title}, &addr)
		require.NoError(t, err)

		handler := commands.NewUpdateJobCommandHandler(uowFactory{uow}.jobs(), newInvalidator(cache))

		updated, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "Paint a fence", updated.Details().Title)
		assert.Equal(t, location.Code(2601), updated.Location())
		jobs.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("non-owner is refused before the address is resolved", func(t *testing.T) {
		ctx := t.Context()
		posting := persistedJob(ownerID, jobID)
		addr, err := kernel.NewAddress("Busan", "Haeundae-gu", "U-dong")
		require.NoError(t, err)

		uow := new(MockUoW)
		jobs := new(MockJobRepository)
		cache := new(MockCache)

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("JobRepository").Return(jobs).Once()
		jobs.On("Get", ctx, jobID).Return(posting, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		title := "Paint a fence"
		cmd, err := commands.NewUpdateJobCommand(customerID, jobID, job.Patch{Title: &title}, &addr)
		require.NoError(t, err)

		handler := commands.NewUpdateJobCommandHandler(uowFactory{uow}.jobs(), newInvalidator(cache))

		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
		assert.Equal(t, "Fix a fence", posting.Details().Title)
		uow.AssertNotCalled(t, "LocationRepository")
		jobs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("an invalid patch changes nothing", func(t *testing.T) {
		ctx := t.Context()
		posting := persistedJob(ownerID, jobID)

		uow := new(MockUoW)
		jobs := new(MockJobRepository)
		cache := new(MockCache)

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("JobRepository").Return(jobs).Once()
		jobs.On("Get", ctx, jobID).Return(posting, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		price := int64(-5)
		cmd, err := commands.NewUpdateJobCommand(ownerID, jobID, job.Patch{Price: &price}, nil)
		require.NoError(t, err)

		handler := commands.NewUpdateJobCommandHandler(uowFactory{uow}.jobs(), newInvalidator(cache))

		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, int64(15000), posting.Details().Price)
		jobs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		cache.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
