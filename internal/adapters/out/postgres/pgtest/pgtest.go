// Package pgtest starts a disposable PostgreSQL container for integration
// suites and prepares the marketplace schema in it.
//
// Only _test.go files import it, so testcontainers never reaches the
// production binary.
package pgtest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jobmarket/internal/adapters/out/postgres"
	"jobmarket/internal/adapters/out/postgres/referencerepo"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database is a migrated database inside a running container.
type Database struct {
	Container *tcpostgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine, connects GORM and migrates the schema.
func Start(ctx context.Context) (*Database, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err = postgres.Migrate(ctx, db); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{Container: container, DB: db}, nil
}

// Reset empties every table and restarts identity sequences.
func (d *Database) Reset() error {
	stmt := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(postgres.Tables, ", "))
	return d.DB.Exec(stmt).Error
}

// Terminate stops the container.
func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}

// SeedUser inserts a user row and returns its id.
func (d *Database) SeedUser(name string) (int64, error) {
	user := referencerepo.UserDTO{Name: name}
	if err := d.DB.Create(&user).Error; err != nil {
		return 0, err
	}
	return user.ID, nil
}

// SeedLocation inserts one reference row.
func (d *Database) SeedLocation(code int64, city, district, neighborhood string) error {
	return d.DB.Create(&referencerepo.LocationCodeDTO{
		Code:         code,
		City:         city,
		District:     district,
		Neighborhood: neighborhood,
	}).Error
}
