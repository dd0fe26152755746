package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSchedule rewrites cached collections once a minute, well inside the cache TTL.
const DefaultSchedule = "@every 1m"

const refreshTimeout = 30 * time.Second

// ListingRefresher reloads the active listing into the cache.
type ListingRefresher interface {
	Refresh(ctx context.Context) (int, error)
}

// ListingRefreshJob keeps the active listing warm so readers rarely take the
// store path after the entry expires.
type ListingRefreshJob struct {
	refresher ListingRefresher
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewListingRefreshJob(refresher ListingRefresher, schedule string, logger *slog.Logger) *ListingRefreshJob {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	return &ListingRefreshJob{
		refresher: refresher,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "listing_refresh_job"),
	}
}

// Start registers the refresh on the configured schedule.
func (j *ListingRefreshJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Listing refresh job started", "schedule", j.schedule)
	return nil
}

// Stop halts the scheduler and waits for a running refresh to finish.
func (j *ListingRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Listing refresh job stopped")
}

func (j *ListingRefreshJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	count, err := j.refresher.Refresh(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Listing refresh failed", "error", err)
		return
	}
	j.logger.DebugContext(ctx, "Listing refreshed", "jobs", count)
}
