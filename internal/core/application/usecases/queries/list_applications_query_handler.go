package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

const applicationColumns = `
	SELECT
		m.id,
		m.customer_id,
		m.job_id,
		m.matched,
		m.rejected,
		m.created_at,
		u.name,
		j.owner_id,
		j.title,
		j.content,
		j.price,
		j.photo_url,
		j.location_code,
		j.category,
		j.expired,
		j.matched
	FROM matchings m
	JOIN users u ON u.id = m.customer_id
	JOIN jobs j ON j.id = m.job_id`

// ListApplicationsQueryHandler runs the joined application reads. Withdrawn
// applications are excluded and rows come newest first. Results are not cached.
//
// Example:
//
//	handler := NewListApplicationsQueryHandler(db)
//	query, _ := NewListApplicationsByCustomerQuery(customerID)
//	applications, err := handler.HandleByCustomer(ctx, query)
type ListApplicationsQueryHandler struct {
	db *gorm.DB
}

func NewListApplicationsQueryHandler(db *gorm.DB) ListApplicationsQueryHandler {
	return ListApplicationsQueryHandler{db: db}
}

// HandleByCustomer returns the applications submitted by a customer.
func (h ListApplicationsQueryHandler) HandleByCustomer(
	ctx context.Context,
	query ListApplicationsByCustomerQuery,
) ([]ApplicationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.scan(ctx, applicationColumns+`
	WHERE m.customer_id = ? AND m.deleted_at IS NULL
	ORDER BY m.created_at DESC, m.id DESC
	`, query.CustomerID().Int64())
}

// HandleByOwner returns the applications to every non-deleted posting of an owner.
func (h ListApplicationsQueryHandler) HandleByOwner(
	ctx context.Context,
	query ListApplicantsByOwnerQuery,
) ([]ApplicationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.scan(ctx, applicationColumns+`
	WHERE j.owner_id = ? AND m.deleted_at IS NULL AND j.deleted_at IS NULL
	ORDER BY m.created_at DESC, m.id DESC
	`, query.OwnerID().Int64())
}

func (h ListApplicationsQueryHandler) scan(ctx context.Context, stmt string, arg int64) ([]ApplicationView, error) {
	rows, err := h.db.WithContext(ctx).Raw(stmt, arg).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := make([]ApplicationView, 0)
	for rows.Next() {
		var (
			view     ApplicationView
			photoURL sql.NullString
		)

		err = rows.Scan(
			&view.ID,
			&view.CustomerID,
			&view.JobID,
			&view.Matched,
			&view.Rejected,
			&view.CreatedAt,
			&view.ApplicantName,
			&view.Job.OwnerID,
			&view.Job.Title,
			&view.Job.Content,
			&view.Job.Price,
			&photoURL,
			&view.Job.LocationCode,
			&view.Job.Category,
			&view.Job.Expired,
			&view.Job.Matched,
		)
		if err != nil {
			return nil, err
		}

		if photoURL.Valid {
			view.Job.PhotoURL = &photoURL.String
		}
		applications = append(applications, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}
