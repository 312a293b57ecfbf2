package tour

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/pkg/errs"
	"tours/internal/pkg/guard"
)

const (
	// MaxShortTextLength bounds name, location, tagline and line descriptions.
	MaxShortTextLength = 80

	MinRating = 0.0
	MaxRating = 5.0

	initialVersion = 1
)

var ErrTourIsNotConstructed = errors.New("Tour must be created via NewTour or RestoreTour constructor")

// Details is the caller-supplied field set of a tour. Rating, ReviewsCount
// and IsHotDeal default to their zero values.
type Details struct {
	Name         string
	Location     string
	Price        float64
	Duration     string
	Rating       float64
	ReviewsCount int
	IsHotDeal    bool
	Description  string
	Tagline      string
}

// Patch is a merge patch over Details. Nil fields are left untouched.
type Patch struct {
	Name         *string
	Location     *string
	Price        *float64
	Duration     *string
	Rating       *float64
	ReviewsCount *int
	IsHotDeal    *bool
	Description  *string
	Tagline      *string
}

// Tour is the aggregate root for a bookable product.
//
// imageURL is the primary image. It is empty while the tour owns no images
// and otherwise points at one of them; the pointer is changed only through
// ChangePrimaryImage, and every change is persisted with a compare-and-swap
// on version.
type Tour struct {
	id           kernel.UUID
	name         string
	location     string
	price        float64
	duration     Duration
	rating       float64
	reviewsCount int
	isHotDeal    bool
	description  string
	tagline      string
	imageURL     string
	version      int
	createdAt    time.Time
	updatedAt    time.Time

	guard guard.ConstructorGuard
}

// NewTour validates details and creates a tour with no primary image.
func NewTour(id kernel.UUID, details Details, now time.Time) (*Tour, error) {
	t := &Tour{
		version:   initialVersion,
		createdAt: now,
		updatedAt: now,
	}

	if err := errors.Join(t.setID(id), t.setDetails(details)); err != nil {
		return nil, err
	}

	t.guard = guard.NewConstructorGuard()
	return t, nil
}

// RestoreTour rebuilds a tour from persistence.
func RestoreTour(
	id kernel.UUID,
	details Details,
	imageURL string,
	version int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Tour, error) {
	t := &Tour{
		imageURL:  imageURL,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}

	if version < initialVersion {
		return nil, errs.NewValueIsOutOfRangeError("version", version, initialVersion, "unbounded")
	}
	t.version = version

	if err := errors.Join(t.setID(id), t.setDetails(details)); err != nil {
		return nil, err
	}

	t.guard = guard.NewConstructorGuard()
	return t, nil
}

func (t *Tour) Validate() error {
	if t == nil {
		return ErrTourIsNotConstructed
	}
	return t.guard.Validate(ErrTourIsNotConstructed)
}

func (t *Tour) IsEqual(other *Tour) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the tour identifier.
func (t *Tour) ID() kernel.UUID {
	return t.id
}

func (t *Tour) Name() string {
	return t.name
}

func (t *Tour) Location() string {
	return t.location
}

func (t *Tour) Price() float64 {
	return t.price
}

func (t *Tour) Duration() Duration {
	return t.duration
}

func (t *Tour) Rating() float64 {
	return t.rating
}

func (t *Tour) ReviewsCount() int {
	return t.reviewsCount
}

func (t *Tour) IsHotDeal() bool {
	return t.isHotDeal
}

func (t *Tour) Description() string {
	return t.description
}

func (t *Tour) Tagline() string {
	return t.tagline
}

// ImageURL returns the primary image reference, empty when unset.
func (t *Tour) ImageURL() string {
	return t.imageURL
}

func (t *Tour) HasPrimaryImage() bool {
	return t.imageURL != ""
}

// Version returns the optimistic concurrency token read from storage.
func (t *Tour) Version() int {
	return t.version
}

func (t *Tour) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Tour) UpdatedAt() time.Time {
	return t.updatedAt
}

// Details returns the mutable field set.
func (t *Tour) Details() Details {
	return Details{
		Name:         t.name,
		Location:     t.location,
		Price:        t.price,
		Duration:     t.duration.String(),
		Rating:       t.rating,
		ReviewsCount: t.reviewsCount,
		IsHotDeal:    t.isHotDeal,
		Description:  t.description,
		Tagline:      t.tagline,
	}
}

// Apply merges p into the tour. Either every patched field is valid and
// applied, or the tour is left unchanged. updatedAt moves even for an empty
// patch. The primary image and version are never touched.
func (t *Tour) Apply(p Patch, now time.Time) error {
	next := t.Details()
	if p.Name != nil {
		next.Name = *p.Name
	}
	if p.Location != nil {
		next.Location = *p.Location
	}
	if p.Price != nil {
		next.Price = *p.Price
	}
	if p.Duration != nil {
		next.Duration = *p.Duration
	}
	if p.Rating != nil {
		next.Rating = *p.Rating
	}
	if p.ReviewsCount != nil {
		next.ReviewsCount = *p.ReviewsCount
	}
	if p.IsHotDeal != nil {
		next.IsHotDeal = *p.IsHotDeal
	}
	if p.Description != nil {
		next.Description = *p.Description
	}
	if p.Tagline != nil {
		next.Tagline = *p.Tagline
	}

	candidate := *t
	if err := candidate.setDetails(next); err != nil {
		return err
	}
	candidate.updatedAt = now
	*t = candidate
	return nil
}

// ChangePrimaryImage points the tour at ref (empty clears it) and reports
// whether anything changed. version is left at the value that was read so
// the repository can use it as the compare-and-swap expectation.
func (t *Tour) ChangePrimaryImage(ref string, now time.Time) bool {
	if t.imageURL == ref {
		return false
	}
	t.imageURL = ref
	t.updatedAt = now
	return true
}

func (t *Tour) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Tour) setDetails(d Details) error {
	duration, durationErr := NewDuration(d.Duration)

	if err := errors.Join(
		validateShortText("name", d.Name),
		validateShortText("location", d.Location),
		validateShortText("tagline", d.Tagline),
		validateRequired("description", d.Description),
		validatePrice(d.Price),
		validateRating(d.Rating),
		validateReviewsCount(d.ReviewsCount),
		durationErr,
	); err != nil {
		return err
	}

	t.name = d.Name
	t.location = d.Location
	t.price = d.Price
	t.duration = duration
	t.rating = d.Rating
	t.reviewsCount = d.ReviewsCount
	t.isHotDeal = d.IsHotDeal
	t.description = d.Description
	t.tagline = d.Tagline
	return nil
}

func validateRequired(param, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}

func validateShortText(param, value string) error {
	if err := validateRequired(param, value); err != nil {
		return err
	}
	if n := utf8.RuneCountInString(value); n > MaxShortTextLength {
		return errs.NewValueIsInvalidErrorWithCause(
			param,
			fmt.Errorf("%d characters exceeds the limit of %d", n, MaxShortTextLength),
		)
	}
	return nil
}

func validatePrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is negative", price))
	}
	return nil
}

func validateRating(rating float64) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	return nil
}

func validateReviewsCount(count int) error {
	if count < 0 {
		return errs.NewValueIsInvalidErrorWithCause("reviewsCount", fmt.Errorf("%d is negative", count))
	}
	return nil
}
