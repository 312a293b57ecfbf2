// Package pgtest starts a throwaway PostgreSQL container for the adapter's
// integration suites.
package pgtest

import (
	"context"
	"strings"
	"time"

	adapter "tours/internal/adapters/out/postgres"

	"github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Tables lists every table Migrate creates.
var Tables = []string{
	"tours",
	"tour_images",
	"tour_inclusion_exclusions",
	"tour_itinerary_items",
	"inquiries",
}

// Start runs postgres:15-alpine, connects and migrates the schema.
func Start(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := adapter.Open(ctx, dsn)
	if err != nil {
		return container, nil, err
	}

	if err = adapter.Migrate(ctx, db); err != nil {
		return container, nil, err
	}

	return container, db, nil
}

// Truncate empties the given tables, or all of Tables when none are given.
func Truncate(db *gorm.DB, tables ...string) error {
	if len(tables) == 0 {
		tables = Tables
	}

	quoted := make([]string, 0, len(tables))
	for _, table := range tables {
		quoted = append(quoted, pq.QuoteIdentifier(table))
	}
	return db.Exec("TRUNCATE TABLE " + strings.Join(quoted, ", ")).Error
}
