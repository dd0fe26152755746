package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	listingRefreshJob    *ListingRefreshJob
	noticePageRefreshJob *NoticePageRefreshJob
}

// NewJobManager wires both cache refresh jobs onto the same schedule.
func NewJobManager(
	listing ListingRefresher,
	notices NoticePageRefresher,
	schedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		listingRefreshJob:    NewListingRefreshJob(listing, schedule, logger),
		noticePageRefreshJob: NewNoticePageRefreshJob(notices, schedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.listingRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start listing refresh job: %w", err)
	}

	if err := jm.noticePageRefreshJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.listingRefreshJob.Stop()
		return fmt.Errorf("failed to start notice page refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.noticePageRefreshJob.Stop()
	jm.listingRefreshJob.Stop()
}
