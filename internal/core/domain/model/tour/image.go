package tour

import (
	"errors"
	"sort"
	"time"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/pkg/errs"
	"tours/internal/pkg/guard"
)

var (
	ErrImageIsNotConstructed = errors.New("Image must be created via NewImage or RestoreImage constructor")

	// ErrImageNotOwned is returned when an image of another tour is passed
	// where only the tour's own images are expected.
	ErrImageNotOwned = errs.NewValueIsInvalidError("image does not belong to the tour")
)

// Image is an image owned by a tour. Images are ordered by creation time,
// with the ID as tie-break.
type Image struct {
	id        kernel.UUID
	tourID    kernel.UUID
	imageURL  string
	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

func NewImage(id kernel.UUID, tourID kernel.UUID, imageURL string, now time.Time) (*Image, error) {
	return RestoreImage(id, tourID, imageURL, now, now)
}

func RestoreImage(
	id kernel.UUID,
	tourID kernel.UUID,
	imageURL string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Image, error) {
	if err := errors.Join(
		id.Validate(),
		tourID.Validate(),
		validateRequired("imageUrl", imageURL),
	); err != nil {
		return nil, err
	}

	return &Image{
		id:        id,
		tourID:    tourID,
		imageURL:  imageURL,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (i *Image) Validate() error {
	if i == nil {
		return ErrImageIsNotConstructed
	}
	return i.guard.Validate(ErrImageIsNotConstructed)
}

func (i *Image) ID() kernel.UUID {
	return i.id
}

func (i *Image) TourID() kernel.UUID {
	return i.tourID
}

func (i *Image) ImageURL() string {
	return i.imageURL
}

func (i *Image) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Image) UpdatedAt() time.Time {
	return i.updatedAt
}

// BelongsTo reports whether the image is owned by tourID.
func (i *Image) BelongsTo(tourID kernel.UUID) bool {
	return i.tourID.IsEqual(tourID)
}

// SortImages orders images by creation time, then by ID string.
func SortImages(images []*Image) {
	sort.SliceStable(images, func(a, b int) bool {
		if !images[a].createdAt.Equal(images[b].createdAt) {
			return images[a].createdAt.Before(images[b].createdAt)
		}
		return images[a].id.String() < images[b].id.String()
	})
}
