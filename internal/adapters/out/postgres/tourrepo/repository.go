package tourrepo

import (
	"context"
	"errors"
	"strings"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"
	"tours/internal/core/ports"
	"tours/internal/pkg/errs"
	"tours/internal/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTourRepository implements TourRepository using GORM.
type GormTourRepository struct {
	db *gorm.DB
}

func NewGormTourRepository(db *gorm.DB) *GormTourRepository {
	return &GormTourRepository{db: db}
}

// Add saves a new tour to the database.
func (r *GormTourRepository) Add(ctx context.Context, aggregate *tour.Tour) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes the tour's details and updated_at only.
func (r *GormTourRepository) Update(ctx context.Context, aggregate *tour.Tour) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TourDTO{}).
		Where("id = ?", dto.ID).
		Select(detailColumns).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("tourId", aggregate.ID())
	}

	return nil
}

// UpdatePrimaryImage writes image_url only while version still matches the
// version the aggregate was read at, and bumps the version.
func (r *GormTourRepository) UpdatePrimaryImage(ctx context.Context, aggregate *tour.Tour) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID().Bytes()
	result := r.db.WithContext(ctx).
		Model(&TourDTO{}).
		Where("id = ? AND version = ?", id, aggregate.Version()).
		Updates(map[string]any{
			"image_url":  aggregate.ImageURL(),
			"updated_at": aggregate.UpdatedAt(),
			"version":    gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		exists, err := r.Exists(ctx, aggregate.ID())
		if err != nil {
			return err
		}
		if !exists {
			return errs.NewObjectNotFoundError("tourId", aggregate.ID())
		}
		return errs.NewVersionIsInvalidError("tour", aggregate.Version())
	}

	return nil
}

// Get retrieves a tour by ID.
func (r *GormTourRepository) Get(ctx context.Context, id kernel.UUID) (*tour.Tour, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TourDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tourId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormTourRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&TourDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes the tour row only; dependents are removed by their own
// repositories.
func (r *GormTourRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&TourDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("tourId", id)
	}
	return nil
}

func (r *GormTourRepository) List(
	ctx context.Context,
	filter ports.TourFilter,
	page pagination.Page,
) ([]*tour.Tour, error) {
	column, ok := sortColumns[page.SortBy()]
	if !ok {
		column = sortColumns[pagination.DefaultSortBy]
	}
	desc := page.SortOrder() == pagination.Descending

	var dtos []TourDTO
	err := r.filtered(ctx, filter).
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: desc}).
		Offset(page.Skip()).
		Limit(page.Limit()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	tours := make([]*tour.Tour, 0, len(dtos))
	for _, dto := range dtos {
		t, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		tours = append(tours, t)
	}

	return tours, nil
}

func (r *GormTourRepository) Count(ctx context.Context, filter ports.TourFilter) (int64, error) {
	var count int64
	if err := r.filtered(ctx, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormTourRepository) ListIDs(ctx context.Context) ([]kernel.UUID, error) {
	var raw []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&TourDTO{}).Order("id").Pluck("id", &raw).Error; err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, id := range raw {
		parsed, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, parsed)
	}
	return ids, nil
}

func (r *GormTourRepository) filtered(ctx context.Context, filter ports.TourFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&TourDTO{})
	if filter.HotOnly {
		q = q.Where("is_hot_deal = ?", true)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		q = q.Where("name ILIKE ? OR location ILIKE ? OR tagline ILIKE ?", pattern, pattern, pattern)
	}
	return q
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
