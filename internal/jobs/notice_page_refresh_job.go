package jobs

import (
	"context"
	"log/slog"

	"jobmarket/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// NoticePageRefresher reloads a single notice page into the cache.
type NoticePageRefresher interface {
	Refresh(ctx context.Context, query queries.ListNoticesPageQuery) (queries.NoticePage, error)
}

// NoticePageRefreshJob rewrites the first notice page at the default page size,
// the page almost every visitor requests.
type NoticePageRefreshJob struct {
	refresher NoticePageRefresher
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewNoticePageRefreshJob(refresher NoticePageRefresher, schedule string, logger *slog.Logger) *NoticePageRefreshJob {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	return &NoticePageRefreshJob{
		refresher: refresher,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "notice_page_refresh_job"),
	}
}

func (j *NoticePageRefreshJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notice page refresh job started", "schedule", j.schedule)
	return nil
}

func (j *NoticePageRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notice page refresh job stopped")
}

func (j *NoticePageRefreshJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	query, err := queries.NewListNoticesPageQuery(1, queries.DefaultPageLimit)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notice page refresh failed", "error", err)
		return
	}

	page, err := j.refresher.Refresh(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notice page refresh failed", "error", err)
		return
	}
	j.logger.DebugContext(ctx, "Notice page refreshed", "notices", len(page.Data), "total", page.Meta.TotalItems)
}
