package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"jobmarket/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingListing struct {
	calls atomic.Int32
	err   error
}

func (r *countingListing) Refresh(context.Context) (int, error) {
	r.calls.Add(1)
	return 3, r.err
}

type recordingNotices struct {
	calls atomic.Int32
	page  atomic.Int32
	limit atomic.Int32
}

func (r *recordingNotices) Refresh(_ context.Context, query queries.ListNoticesPageQuery) (queries.NoticePage, error) {
	r.calls.Add(1)
	r.page.Store(int32(query.Page()))
	r.limit.Store(int32(query.Limit()))
	return queries.NoticePage{Data: []queries.NoticeView{}}, nil
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestListingRefreshJob_RunCallsRefresher(t *testing.T) {
	refresher := &countingListing{}
	job := NewListingRefreshJob(refresher, "", discard())

	job.run()

	assert.Equal(t, int32(1), refresher.calls.Load())
	assert.Equal(t, DefaultSchedule, job.schedule)
}

func TestListingRefreshJob_FailureDoesNotPanic(t *testing.T) {
	refresher := &countingListing{err: errors.New("store down")}
	job := NewListingRefreshJob(refresher, DefaultSchedule, discard())

	assert.NotPanics(t, job.run)
	assert.Equal(t, int32(1), refresher.calls.Load())
}

func TestNoticePageRefreshJob_RefreshesFirstDefaultPage(t *testing.T) {
	refresher := &recordingNotices{}
	job := NewNoticePageRefreshJob(refresher, DefaultSchedule, discard())

	job.run()

	assert.Equal(t, int32(1), refresher.calls.Load())
	assert.Equal(t, int32(1), refresher.page.Load())
	assert.Equal(t, int32(queries.DefaultPageLimit), refresher.limit.Load())
}

func TestJobManager_RunsOnSchedule(t *testing.T) {
	listing := &countingListing{}
	notices := &recordingNotices{}
	manager := NewJobManager(listing, notices, "@every 1s", discard())

	require.NoError(t, manager.StartAll())
	defer manager.StopAll()

	assert.Eventually(t, func() bool {
		return listing.calls.Load() > 0 && notices.calls.Load() > 0
	}, 3*time.Second, 50*time.Millisecond)
}

func TestJobManager_InvalidSchedule_FailsToStart(t *testing.T) {
	manager := NewJobManager(&countingListing{}, &recordingNotices{}, "not a schedule", discard())

	err := manager.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing refresh job")
}
