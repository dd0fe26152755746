package http

import (
	"log/slog"
	"net/http"

	"jobmarket/internal/core/application/usecases/commands"
	"jobmarket/internal/core/application/usecases/queries"
	"jobmarket/internal/core/domain/model/job"
	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/domain/model/notice"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases the HTTP surface delegates to.
type Handlers struct {
	CreateJob      commands.CreateJobCommandHandler
	UpdateJob      commands.UpdateJobCommandHandler
	ChangeJobState commands.ChangeJobStateCommandHandler
	ApplyToJob     commands.ApplyToJobCommandHandler
	DecideMatching commands.DecideMatchingCommandHandler
	Withdraw       commands.WithdrawMatchingCommandHandler
	CreateNotice   commands.CreateNoticeCommandHandler
	Notices        commands.NoticeCommandHandler

	ListActiveJobs     queries.ListActiveJobsQueryHandler
	GetJob             queries.GetJobQueryHandler
	ListJobsByLocation queries.ListJobsByLocationQueryHandler
	GetMatching        queries.GetMatchingQueryHandler
	ListApplications   queries.ListApplicationsQueryHandler
	ListNoticesPage    queries.ListNoticesPageQueryHandler
	GetNotice          queries.GetNoticeQueryHandler
	ListNotifications  queries.ListNotificationsQueryHandler
}

// Server implements ServerInterface on top of the application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

var _ ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{h: handlers, logger: logger.With("component", "http")}
}

func (s *Server) ListActiveJobs(ctx echo.Context) error {
	jobs, err := s.h.ListActiveJobs.Handle(ctx.Request().Context(), queries.NewListActiveJobsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, jobs)
}

func (s *Server) CreateJob(ctx echo.Context, actorID int64) error {
	var body NewJob
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	address, err := kernel.NewAddress(body.City, body.District, body.Neighborhood)
	if err != nil {
		return s.fail(ctx, err)
	}

	details := job.Details{
		Title:    body.Title,
		Content:  body.Content,
		PhotoURL: body.PhotoURL,
		Price:    body.Price,
		Category: body.Category,
	}
	cmd, err := commands.NewCreateJobCommand(kernel.ID(actorID), details, address)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.h.CreateJob.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, queries.NewJobView(created))
}

func (s *Server) SearchJobs(ctx echo.Context, params SearchJobsParams) error {
	address, err := kernel.NewAddress(params.City, params.District, params.Neighborhood)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListJobsByLocationQuery(address)
	if err != nil {
		return s.fail(ctx, err)
	}

	jobs, err := s.h.ListJobsByLocation.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, jobs)
}

func (s *Server) GetJob(ctx echo.Context, jobID int64) error {
	query, err := queries.NewGetJobQuery(kernel.ID(jobID))
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.h.GetJob.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, view)
}

func (s *Server) UpdateJob(ctx echo.Context, actorID, jobID int64) error {
	var body JobPatch
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	var address *kernel.Address
	if body.City != nil || body.District != nil || body.Neighborhood != nil {
		addr, err := kernel.NewAddress(deref(body.City), deref(body.District), deref(body.Neighborhood))
		if err != nil {
			return s.fail(ctx, err)
		}
		address = &addr
	}

	patch := job.Patch{
		Title:    body.Title,
		Content:  body.Content,
		PhotoURL: body.PhotoURL,
		Price:    body.Price,
		Category: body.Category,
	}
	cmd, err := commands.NewUpdateJobCommand(kernel.ID(actorID), kernel.ID(jobID), patch, address)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.h.UpdateJob.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, queries.NewJobView(updated))
}

func (s *Server) RemoveJob(ctx echo.Context, actorID, jobID int64) error {
	cmd, err := commands.NewRemoveJobCommand(kernel.ID(actorID), kernel.ID(jobID))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.ChangeJobState.HandleRemove(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) MarkJobMatched(ctx echo.Context, actorID, jobID int64) error {
	cmd, err := commands.NewMarkJobMatchedCommand(kernel.ID(actorID), kernel.ID(jobID))
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.h.ChangeJobState.HandleMarkMatched(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, queries.NewJobView(updated))
}

func (s *Server) MarkJobExpired(ctx echo.Context, actorID, jobID int64) error {
	cmd, err := commands.NewMarkJobExpiredCommand(kernel.ID(actorID), kernel.ID(jobID))
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.h.ChangeJobState.HandleMarkExpired(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, queries.NewJobView(updated))
}

func (s *Server) ApplyToJob(ctx echo.Context, actorID, jobID int64) error {
	cmd, err := commands.NewApplyToJobCommand(kernel.ID(actorID), kernel.ID(jobID))
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.h.ApplyToJob.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, queries.NewMatchingView(created))
}

func (s *Server) GetMatching(ctx echo.Context, matchingID int64) error {
	query, err := queries.NewGetMatchingQuery(kernel.ID(matchingID))
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.h.GetMatching.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, view)
}

func (s *Server) AcceptMatching(ctx echo.Context, actorID, matchingID int64) error {
	cmd, err := commands.NewAcceptMatchingCommand(kernel.ID(actorID), kernel.ID(matchingID))
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.decide(ctx, cmd)
}

func (s *Server) RejectMatching(ctx echo.Context, actorID, matchingID int64) error {
	cmd, err := commands.NewRejectMatchingCommand(kernel.ID(actorID), kernel.ID(matchingID))
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.decide(ctx, cmd)
}

func (s *Server) decide(ctx echo.Context, cmd commands.DecideMatchingCommand) error {
	decided, err := s.h.DecideMatching.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, queries.NewMatchingView(decided))
}

func (s *Server) WithdrawMatching(ctx echo.Context, actorID, matchingID int64) error {
	cmd, err := commands.NewWithdrawMatchingCommand(kernel.ID(actorID), kernel.ID(matchingID))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.Withdraw.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) ListMyApplications(ctx echo.Context, actorID int64) error {
	query, err := queries.NewListApplicationsByCustomerQuery(kernel.ID(actorID))
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.h.ListApplications.HandleByCustomer(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, views)
}

func (s *Server) ListMyApplicants(ctx echo.Context, actorID int64) error {
	query, err := queries.NewListApplicantsByOwnerQuery(kernel.ID(actorID))
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.h.ListApplications.HandleByOwner(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, views)
}

func (s *Server) ListMyNotifications(ctx echo.Context, actorID int64) error {
	query, err := queries.NewListNotificationsQuery(kernel.ID(actorID))
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.h.ListNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, views)
}

func (s *Server) ListNotices(ctx echo.Context, params ListNoticesParams) error {
	page, limit := 1, queries.DefaultPageLimit
	if params.Page != nil {
		page = *params.Page
	}
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewListNoticesPageQuery(page, limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.h.ListNoticesPage.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, result)
}

func (s *Server) CreateNotice(ctx echo.Context, actorID int64) error {
	var body NewNotice
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewCreateNoticeCommand(kernel.ID(actorID), body.Title, body.Content)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.h.CreateNotice.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, queries.NewNoticeView(created))
}

func (s *Server) GetNotice(ctx echo.Context, noticeID int64) error {
	query, err := queries.NewGetNoticeQuery(kernel.ID(noticeID))
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.h.GetNotice.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, view)
}

func (s *Server) UpdateNotice(ctx echo.Context, noticeID int64) error {
	var body NoticePatch
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewUpdateNoticeCommand(kernel.ID(noticeID), notice.Patch{Title: body.Title, Content: body.Content})
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.h.Notices.HandleUpdate(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, queries.NewNoticeView(updated))
}

func (s *Server) RemoveNotice(ctx echo.Context, noticeID int64) error {
	cmd, err := commands.NewRemoveNoticeCommand(kernel.ID(noticeID))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.Notices.HandleRemove(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
