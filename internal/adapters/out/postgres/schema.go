package postgres

import (
	"context"
	"fmt"

	"jobmarket/internal/adapters/out/postgres/jobrepo"
	"jobmarket/internal/adapters/out/postgres/matchingrepo"
	"jobmarket/internal/adapters/out/postgres/noticerepo"
	"jobmarket/internal/adapters/out/postgres/notificationrepo"
	"jobmarket/internal/adapters/out/postgres/referencerepo"

	"gorm.io/gorm"
)

// Tables lists the tables Migrate manages, in dependency order.
var Tables = []string{"users", "location_codes", "jobs", "matchings", "notices", "notifications"}

// Migrate creates or updates every table the marketplace uses.
func Migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&referencerepo.UserDTO{},
		&referencerepo.LocationCodeDTO{},
		&jobrepo.JobDTO{},
		&matchingrepo.MatchingDTO{},
		&noticerepo.NoticeDTO{},
		&notificationrepo.NotificationDTO{},
	)
	if err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
