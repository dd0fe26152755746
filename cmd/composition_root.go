package cmd

import (
	"context"
	"log/slog"

	"jobmarket/internal/adapters/in/consumer"
	httpin "jobmarket/internal/adapters/in/http"
	"jobmarket/internal/adapters/out/postgres"
	"jobmarket/internal/adapters/out/postgres/jobrepo"
	"jobmarket/internal/adapters/out/postgres/matchingrepo"
	"jobmarket/internal/adapters/out/postgres/noticerepo"
	"jobmarket/internal/adapters/out/postgres/notificationrepo"
	"jobmarket/internal/adapters/out/postgres/referencerepo"
	"jobmarket/internal/core/application/usecases/commands"
	"jobmarket/internal/core/application/usecases/queries"
	"jobmarket/internal/core/ports"
	"jobmarket/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	cache      ports.Cache
	bus        EventBus
	events     commands.EventNotifier
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, cache ports.Cache, bus EventBus, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		cache:      cache,
		bus:        bus,
		events:     commands.NewEventNotifier(bus, config.PublishTimeout, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) jobUoWFactory() commands.JobUoWFactory {
	return FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) matchingUoWFactory() commands.MatchingUoWFactory {
	return FuncMatchingUoWFactory(func() commands.MatchingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) noticeUoWFactory() commands.NoticeUoWFactory {
	return FuncNoticeUoWFactory(func() commands.NoticeUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) invalidator() commands.CacheInvalidator {
	return commands.NewCacheInvalidator(c.cache, c.logger)
}

func (c *CompositionRoot) notifier() commands.EventNotifier {
	return c.events
}

// DrainNotifications waits for event publishes still in flight.
func (c *CompositionRoot) DrainNotifications(ctx context.Context) error {
	return c.events.Drain(ctx)
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	return commands.NewCreateJobCommandHandler(c.jobUoWFactory(), c.invalidator())
}

func (c *CompositionRoot) CreateUpdateJobCommandHandler() commands.UpdateJobCommandHandler {
	return commands.NewUpdateJobCommandHandler(c.jobUoWFactory(), c.invalidator())
}

func (c *CompositionRoot) CreateChangeJobStateCommandHandler() commands.ChangeJobStateCommandHandler {
	return commands.NewChangeJobStateCommandHandler(c.jobUoWFactory(), c.invalidator())
}

func (c *CompositionRoot) CreateApplyToJobCommandHandler() commands.ApplyToJobCommandHandler {
	return commands.NewApplyToJobCommandHandler(c.matchingUoWFactory(), c.notifier())
}

func (c *CompositionRoot) CreateDecideMatchingCommandHandler() commands.DecideMatchingCommandHandler {
	return commands.NewDecideMatchingCommandHandler(c.matchingUoWFactory(), c.notifier())
}

func (c *CompositionRoot) CreateWithdrawMatchingCommandHandler() commands.WithdrawMatchingCommandHandler {
	return commands.NewWithdrawMatchingCommandHandler(c.matchingUoWFactory())
}

func (c *CompositionRoot) CreateCreateNoticeCommandHandler() commands.CreateNoticeCommandHandler {
	return commands.NewCreateNoticeCommandHandler(c.noticeUoWFactory(), c.invalidator())
}

func (c *CompositionRoot) CreateNoticeCommandHandler() commands.NoticeCommandHandler {
	return commands.NewNoticeCommandHandler(c.noticeUoWFactory(), c.invalidator())
}

func (c *CompositionRoot) CreateRecordNotificationCommandHandler() commands.RecordNotificationCommandHandler {
	return commands.NewRecordNotificationCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateListActiveJobsQueryHandler() queries.ListActiveJobsQueryHandler {
	return queries.NewListActiveJobsQueryHandler(jobrepo.NewGormJobRepository(c.gormDB), c.cache, c.config.CacheTTL, c.logger)
}

func (c *CompositionRoot) CreateGetJobQueryHandler() queries.GetJobQueryHandler {
	return queries.NewGetJobQueryHandler(
		jobrepo.NewGormJobRepository(c.gormDB),
		referencerepo.NewGormLocationRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateListJobsByLocationQueryHandler() queries.ListJobsByLocationQueryHandler {
	return queries.NewListJobsByLocationQueryHandler(
		referencerepo.NewGormLocationRepository(c.gormDB),
		jobrepo.NewGormJobRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateGetMatchingQueryHandler() queries.GetMatchingQueryHandler {
	return queries.NewGetMatchingQueryHandler(matchingrepo.NewGormMatchingRepository(c.gormDB))
}

func (c *CompositionRoot) CreateListApplicationsQueryHandler() queries.ListApplicationsQueryHandler {
	return queries.NewListApplicationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListNoticesPageQueryHandler() queries.ListNoticesPageQueryHandler {
	return queries.NewListNoticesPageQueryHandler(noticerepo.NewGormNoticeRepository(c.gormDB), c.cache, c.config.CacheTTL, c.logger)
}

func (c *CompositionRoot) CreateGetNoticeQueryHandler() queries.GetNoticeQueryHandler {
	return queries.NewGetNoticeQueryHandler(noticerepo.NewGormNoticeRepository(c.gormDB))
}

func (c *CompositionRoot) CreateListNotificationsQueryHandler() queries.ListNotificationsQueryHandler {
	return queries.NewListNotificationsQueryHandler(notificationrepo.NewGormNotificationRepository(c.gormDB))
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateJob:      c.CreateCreateJobCommandHandler(),
		UpdateJob:      c.CreateUpdateJobCommandHandler(),
		ChangeJobState: c.CreateChangeJobStateCommandHandler(),
		ApplyToJob:     c.CreateApplyToJobCommandHandler(),
		DecideMatching: c.CreateDecideMatchingCommandHandler(),
		Withdraw:       c.CreateWithdrawMatchingCommandHandler(),
		CreateNotice:   c.CreateCreateNoticeCommandHandler(),
		Notices:        c.CreateNoticeCommandHandler(),

		ListActiveJobs:     c.CreateListActiveJobsQueryHandler(),
		GetJob:             c.CreateGetJobQueryHandler(),
		ListJobsByLocation: c.CreateListJobsByLocationQueryHandler(),
		GetMatching:        c.CreateGetMatchingQueryHandler(),
		ListApplications:   c.CreateListApplicationsQueryHandler(),
		ListNoticesPage:    c.CreateListNoticesPageQueryHandler(),
		GetNotice:          c.CreateGetNoticeQueryHandler(),
		ListNotifications:  c.CreateListNotificationsQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateNotificationConsumer() *consumer.NotificationConsumer {
	return consumer.NewNotificationConsumer(c.bus, c.CreateRecordNotificationCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateListActiveJobsQueryHandler(),
		c.CreateListNoticesPageQueryHandler(),
		c.config.ListingRefreshSchedule,
		c.logger,
	)
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncMatchingUoWFactory func() commands.MatchingUoW

func (f FuncMatchingUoWFactory) Create() commands.MatchingUoW {
	return f()
}

type FuncNoticeUoWFactory func() commands.NoticeUoW

func (f FuncNoticeUoWFactory) Create() commands.NoticeUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
