package services

import (
	"slices"

	"tours/internal/core/domain/model/tour"
)

// PrimaryImageSelector derives which image a tour should display.
//
// Rules, applied to the images the tour currently owns:
//   - no images: the primary image is unset
//   - the current primary is still owned: it is kept
//   - otherwise: the earliest created image becomes primary
//
// The rule is idempotent, so running it after every image add/remove, after
// a crash between two writes, or from a background job converges on the
// same answer and never leaves a dangling reference.
//
// Example usage:
//
//	selector := NewPrimaryImageSelector()
//	ref, err := selector.Select(t, images)
//	if err != nil {
//	    return err
//	}
//	if t.ChangePrimaryImage(ref, now) {
//	    // persist with compare-and-swap on t.Version()
//	}
type PrimaryImageSelector struct{}

func NewPrimaryImageSelector() PrimaryImageSelector {
	return PrimaryImageSelector{}
}

// Select returns the reference the tour's primary image should hold. images
// must all belong to t; their order does not matter.
func (s PrimaryImageSelector) Select(t *tour.Tour, images []*tour.Image) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}

	owned := make([]*tour.Image, 0, len(images))
	for _, img := range images {
		if err := img.Validate(); err != nil {
			return "", err
		}
		if !img.BelongsTo(t.ID()) {
			return "", tour.ErrImageNotOwned
		}
		owned = append(owned, img)
	}

	if len(owned) == 0 {
		return "", nil
	}

	current := t.ImageURL()
	if current != "" && slices.ContainsFunc(owned, func(img *tour.Image) bool {
		return img.ImageURL() == current
	}) {
		return current, nil
	}

	tour.SortImages(owned)
	return owned[0].ImageURL(), nil
}
