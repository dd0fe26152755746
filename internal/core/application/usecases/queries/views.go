// Package queries contains read operations. Handlers return flat, JSON-ready
// views; the listing and notice page views are also the cached representation.
package queries

import (
	"time"

	"jobmarket/internal/core/domain/model/job"
	"jobmarket/internal/core/domain/model/matching"
	"jobmarket/internal/core/domain/model/notice"
	"jobmarket/internal/core/domain/model/notification"
)

// JobView is a posting as it appears in listings.
type JobView struct {
	ID           int64     `json:"id"`
	OwnerID      int64     `json:"ownerId"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	PhotoURL     *string   `json:"photoUrl"`
	Price        int64     `json:"price"`
	LocationCode int64     `json:"locationCode"`
	Category     string    `json:"category"`
	Expired      bool      `json:"expired"`
	Matched      bool      `json:"matched"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// JobDetailView is a single posting with its location code replaced by the
// human-readable address.
type JobDetailView struct {
	ID           int64     `json:"id"`
	OwnerID      int64     `json:"ownerId"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	PhotoURL     *string   `json:"photoUrl"`
	Price        int64     `json:"price"`
	City         string    `json:"city"`
	District     string    `json:"district"`
	Neighborhood string    `json:"neighborhood"`
	Category     string    `json:"category"`
	Expired      bool      `json:"expired"`
	Matched      bool      `json:"matched"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func NewJobView(j *job.Job) JobView {
	d := j.Details()
	return JobView{
		ID:           j.ID().Int64(),
		OwnerID:      j.OwnerID().Int64(),
		Title:        d.Title,
		Content:      d.Content,
		PhotoURL:     d.PhotoURL,
		Price:        d.Price,
		LocationCode: int64(j.Location()),
		Category:     d.Category,
		Expired:      j.IsExpired(),
		Matched:      j.IsMatched(),
		CreatedAt:    j.CreatedAt(),
		UpdatedAt:    j.UpdatedAt(),
	}
}

func newJobViews(jobs []*job.Job) []JobView {
	views := make([]JobView, 0, len(jobs))
	for _, j := range jobs {
		views = append(views, NewJobView(j))
	}
	return views
}

// MatchingView is a bare application.
type MatchingView struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customerId"`
	JobID      int64     `json:"jobId"`
	Matched    bool      `json:"matched"`
	Rejected   bool      `json:"rejected"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewMatchingView(m *matching.Matching) MatchingView {
	return MatchingView{
		ID:         m.ID().Int64(),
		CustomerID: m.CustomerID().Int64(),
		JobID:      m.JobID().Int64(),
		Matched:    m.IsMatched(),
		Rejected:   m.IsRejected(),
		CreatedAt:  m.CreatedAt(),
	}
}

// ApplicationJobView is the narrow projection of the job an application refers to.
type ApplicationJobView struct {
	OwnerID      int64   `json:"ownerId"`
	Title        string  `json:"title"`
	Content      string  `json:"content"`
	Price        int64   `json:"price"`
	PhotoURL     *string `json:"photoUrl"`
	LocationCode int64   `json:"locationCode"`
	Category     string  `json:"category"`
	Expired      bool    `json:"expired"`
	Matched      bool    `json:"matched"`
}

// ApplicationView joins an application with its job and the applicant's name.
type ApplicationView struct {
	MatchingView
	ApplicantName string             `json:"applicantName"`
	Job           ApplicationJobView `json:"job"`
}

type NoticeView struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewNoticeView(n *notice.Notice) NoticeView {
	return NoticeView{
		ID:        n.ID().Int64(),
		AuthorID:  n.AuthorID().Int64(),
		Title:     n.Title(),
		Content:   n.Content(),
		CreatedAt: n.CreatedAt(),
		UpdatedAt: n.UpdatedAt(),
	}
}

// PageMeta describes one page of a paginated list.
type PageMeta struct {
	TotalItems   int64 `json:"totalItems"`
	CurrentPage  int   `json:"currentPage"`
	ItemsPerPage int   `json:"itemsPerPage"`
	TotalPages   int   `json:"totalPages"`
}

type NoticePage struct {
	Data []NoticeView `json:"data"`
	Meta PageMeta     `json:"meta"`
}

type NotificationView struct {
	ID         int64             `json:"id"`
	EventID    string            `json:"eventId"`
	Type       notification.Type `json:"type"`
	JobID      int64             `json:"jobId"`
	CustomerID int64             `json:"customerId"`
	OwnerID    int64             `json:"ownerId"`
	CreatedAt  time.Time         `json:"createdAt"`
}

func newNotificationView(n *notification.Notification) NotificationView {
	return NotificationView{
		ID:         n.ID().Int64(),
		EventID:    n.EventID().String(),
		Type:       n.Type(),
		JobID:      n.JobID().Int64(),
		CustomerID: n.CustomerID().Int64(),
		OwnerID:    n.OwnerID().Int64(),
		CreatedAt:  n.CreatedAt(),
	}
}
