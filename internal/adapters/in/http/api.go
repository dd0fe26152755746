package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ActorHeader carries the id of the calling user. Authentication happens upstream.
const ActorHeader = "X-User-ID"

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewJob struct {
	Title        string  `json:"title"`
	Content      string  `json:"content"`
	PhotoURL     *string `json:"photoUrl,omitempty"`
	Price        int64   `json:"price"`
	Category     string  `json:"category"`
	City         string  `json:"city"`
	District     string  `json:"district"`
	Neighborhood string  `json:"neighborhood"`
}

// JobPatch carries the fields to change. An address change needs all three parts.
type JobPatch struct {
	Title        *string `json:"title,omitempty"`
	Content      *string `json:"content,omitempty"`
	PhotoURL     *string `json:"photoUrl,omitempty"`
	Price        *int64  `json:"price,omitempty"`
	Category     *string `json:"category,omitempty"`
	City         *string `json:"city,omitempty"`
	District     *string `json:"district,omitempty"`
	Neighborhood *string `json:"neighborhood,omitempty"`
}

type NewNotice struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type NoticePatch struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

type SearchJobsParams struct {
	City         string
	District     string
	Neighborhood string
}

type ListNoticesParams struct {
	Page  *int
	Limit *int
}

// ServerInterface lists every operation the HTTP surface exposes.
type ServerInterface interface {
	// (GET /api/v1/jobs)
	ListActiveJobs(ctx echo.Context) error
	// (POST /api/v1/jobs)
	CreateJob(ctx echo.Context, actorID int64) error
	// (GET /api/v1/jobs/search)
	SearchJobs(ctx echo.Context, params SearchJobsParams) error
	// (GET /api/v1/jobs/{jobId})
	GetJob(ctx echo.Context, jobID int64) error
	// (PATCH /api/v1/jobs/{jobId})
	UpdateJob(ctx echo.Context, actorID, jobID int64) error
	// (DELETE /api/v1/jobs/{jobId})
	RemoveJob(ctx echo.Context, actorID, jobID int64) error
	// (POST /api/v1/jobs/{jobId}/matched)
	MarkJobMatched(ctx echo.Context, actorID, jobID int64) error
	// (POST /api/v1/jobs/{jobId}/expired)
	MarkJobExpired(ctx echo.Context, actorID, jobID int64) error
	// (POST /api/v1/jobs/{jobId}/applications)
	ApplyToJob(ctx echo.Context, actorID, jobID int64) error

	// (GET /api/v1/matchings/{matchingId})
	GetMatching(ctx echo.Context, matchingID int64) error
	// (POST /api/v1/matchings/{matchingId}/accept)
	AcceptMatching(ctx echo.Context, actorID, matchingID int64) error
	// (POST /api/v1/matchings/{matchingId}/reject)
	RejectMatching(ctx echo.Context, actorID, matchingID int64) error
	// (DELETE /api/v1/matchings/{matchingId})
	WithdrawMatching(ctx echo.Context, actorID, matchingID int64) error

	// (GET /api/v1/me/applications)
	ListMyApplications(ctx echo.Context, actorID int64) error
	// (GET /api/v1/me/applicants)
	ListMyApplicants(ctx echo.Context, actorID int64) error
	// (GET /api/v1/me/notifications)
	ListMyNotifications(ctx echo.Context, actorID int64) error

	// (GET /api/v1/notices)
	ListNotices(ctx echo.Context, params ListNoticesParams) error
	// (POST /api/v1/notices)
	CreateNotice(ctx echo.Context, actorID int64) error
	// (GET /api/v1/notices/{noticeId})
	GetNotice(ctx echo.Context, noticeID int64) error
	// (PATCH /api/v1/notices/{noticeId})
	UpdateNotice(ctx echo.Context, noticeID int64) error
	// (DELETE /api/v1/notices/{noticeId})
	RemoveNotice(ctx echo.Context, noticeID int64) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListActiveJobs(ctx echo.Context) error {
	return w.Handler.ListActiveJobs(ctx)
}

func (w *ServerInterfaceWrapper) CreateJob(ctx echo.Context) error {
	actorID, err := bindActor(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CreateJob(ctx, actorID)
}

func (w *ServerInterfaceWrapper) SearchJobs(ctx echo.Context) error {
	var params SearchJobsParams
	for name, dest := range map[string]*string{
		"city":         &params.City,
		"district":     &params.District,
		"neighborhood": &params.Neighborhood,
	} {
		if err := runtime.BindQueryParameter("form", true, true, name, ctx.QueryParams(), dest); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
		}
	}
	return w.Handler.SearchJobs(ctx, params)
}

func (w *ServerInterfaceWrapper) GetJob(ctx echo.Context) error {
	jobID, err := bindPathID(ctx, "jobId")
	if err != nil {
		return err
	}
	return w.Handler.GetJob(ctx, jobID)
}

func (w *ServerInterfaceWrapper) UpdateJob(ctx echo.Context) error {
	return w.withActorAndID(ctx, "jobId", w.Handler.UpdateJob)
}

func (w *ServerInterfaceWrapper) RemoveJob(ctx echo.Context) error {
	return w.withActorAndID(ctx, "jobId", w.Handler.RemoveJob)
}

func (w *ServerInterfaceWrapper) MarkJobMatched(ctx echo.Context) error {
	return w.withActorAndID(ctx, "jobId", w.Handler.MarkJobMatched)
}

func (w *ServerInterfaceWrapper) MarkJobExpired(ctx echo.Context) error {
	return w.withActorAndID(ctx, "jobId", w.Handler.MarkJobExpired)
}

func (w *ServerInterfaceWrapper) ApplyToJob(ctx echo.Context) error {
	return w.withActorAndID(ctx, "jobId", w.Handler.ApplyToJob)
}

func (w *ServerInterfaceWrapper) GetMatching(ctx echo.Context) error {
	matchingID, err := bindPathID(ctx, "matchingId")
	if err != nil {
		return err
	}
	return w.Handler.GetMatching(ctx, matchingID)
}

func (w *ServerInterfaceWrapper) AcceptMatching(ctx echo.Context) error {
	return w.withActorAndID(ctx, "matchingId", w.Handler.AcceptMatching)
}

func (w *ServerInterfaceWrapper) RejectMatching(ctx echo.Context) error {
	return w.withActorAndID(ctx, "matchingId", w.Handler.RejectMatching)
}

func (w *ServerInterfaceWrapper) WithdrawMatching(ctx echo.Context) error {
	return w.withActorAndID(ctx, "matchingId", w.Handler.WithdrawMatching)
}

func (w *ServerInterfaceWrapper) ListMyApplications(ctx echo.Context) error {
	return w.withActor(ctx, w.Handler.ListMyApplications)
}

func (w *ServerInterfaceWrapper) ListMyApplicants(ctx echo.Context) error {
	return w.withActor(ctx, w.Handler.ListMyApplicants)
}

func (w *ServerInterfaceWrapper) ListMyNotifications(ctx echo.Context) error {
	return w.withActor(ctx, w.Handler.ListMyNotifications)
}

func (w *ServerInterfaceWrapper) ListNotices(ctx echo.Context) error {
	var params ListNoticesParams

	if err := runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return w.Handler.ListNotices(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateNotice(ctx echo.Context) error {
	return w.withActor(ctx, w.Handler.CreateNotice)
}

func (w *ServerInterfaceWrapper) GetNotice(ctx echo.Context) error {
	return w.withID(ctx, "noticeId", w.Handler.GetNotice)
}

func (w *ServerInterfaceWrapper) UpdateNotice(ctx echo.Context) error {
	return w.withID(ctx, "noticeId", w.Handler.UpdateNotice)
}

func (w *ServerInterfaceWrapper) RemoveNotice(ctx echo.Context) error {
	return w.withID(ctx, "noticeId", w.Handler.RemoveNotice)
}

func (w *ServerInterfaceWrapper) withActor(ctx echo.Context, next func(echo.Context, int64) error) error {
	actorID, err := bindActor(ctx)
	if err != nil {
		return err
	}
	return next(ctx, actorID)
}

func (w *ServerInterfaceWrapper) withID(ctx echo.Context, param string, next func(echo.Context, int64) error) error {
	id, err := bindPathID(ctx, param)
	if err != nil {
		return err
	}
	return next(ctx, id)
}

func (w *ServerInterfaceWrapper) withActorAndID(
	ctx echo.Context,
	param string,
	next func(echo.Context, int64, int64) error,
) error {
	actorID, err := bindActor(ctx)
	if err != nil {
		return err
	}
	id, err := bindPathID(ctx, param)
	if err != nil {
		return err
	}
	return next(ctx, actorID, id)
}

func bindPathID(ctx echo.Context, name string) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func bindActor(ctx echo.Context) (int64, error) {
	values, found := ctx.Request().Header[http.CanonicalHeaderKey(ActorHeader)]
	if !found {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("Header parameter %s is required, but not found", ActorHeader))
	}
	if len(values) != 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for %s, got %d", ActorHeader, len(values)))
	}

	var actorID int64
	err := runtime.BindStyledParameterWithOptions("simple", ActorHeader, values[0], &actorID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", ActorHeader, err))
	}
	return actorID, nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation under baseURL.
func RegisterHandlers(router EchoRouter, si ServerInterface, baseURL string) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/jobs", w.ListActiveJobs)
	router.POST(baseURL+"/jobs", w.CreateJob)
	router.GET(baseURL+"/jobs/search", w.SearchJobs)
	router.GET(baseURL+"/jobs/:jobId", w.GetJob)
	router.PATCH(baseURL+"/jobs/:jobId", w.UpdateJob)
	router.DELETE(baseURL+"/jobs/:jobId", w.RemoveJob)
	router.POST(baseURL+"/jobs/:jobId/matched", w.MarkJobMatched)
	router.POST(baseURL+"/jobs/:jobId/expired", w.MarkJobExpired)
	router.POST(baseURL+"/jobs/:jobId/applications", w.ApplyToJob)

	router.GET(baseURL+"/matchings/:matchingId", w.GetMatching)
	router.POST(baseURL+"/matchings/:matchingId/accept", w.AcceptMatching)
	router.POST(baseURL+"/matchings/:matchingId/reject", w.RejectMatching)
	router.DELETE(baseURL+"/matchings/:matchingId", w.WithdrawMatching)

	router.GET(baseURL+"/me/applications", w.ListMyApplications)
	router.GET(baseURL+"/me/applicants", w.ListMyApplicants)
	router.GET(baseURL+"/me/notifications", w.ListMyNotifications)

	router.GET(baseURL+"/notices", w.ListNotices)
	router.POST(baseURL+"/notices", w.CreateNotice)
	router.GET(baseURL+"/notices/:noticeId", w.GetNotice)
	router.PATCH(baseURL+"/notices/:noticeId", w.UpdateNotice)
	router.DELETE(baseURL+"/notices/:noticeId", w.RemoveNotice)
}
