package postgres

import (
	"context"
	"fmt"

	"tours/internal/adapters/out/postgres/inquiryrepo"
	"tours/internal/adapters/out/postgres/itineraryrepo"
	"tours/internal/adapters/out/postgres/tourimagerepo"
	"tours/internal/adapters/out/postgres/tourlinerepo"
	"tours/internal/adapters/out/postgres/tourrepo"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models lists every table the adapter owns, in migration order.
func Models() []any {
	return []any{
		&tourrepo.TourDTO{},
		&tourimagerepo.TourImageDTO{},
		&tourlinerepo.TourLineDTO{},
		&itineraryrepo.ItineraryItemDTO{},
		&inquiryrepo.InquiryDTO{},
	}
}

// Open connects to PostgreSQL and verifies the connection.
func Open(ctx context.Context, dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	if err = sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the schema of every table in Models.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(Models()...)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
