package commands

import (
	"errors"
	"io"
	"strings"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/pkg/errs"
	"tours/internal/pkg/guard"
)

var (
	ErrAddTourImageCommandIsNotConstructed = errors.New(
		"AddTourImageCommand must be created via NewAddTourImageCommand constructor",
	)

	ErrImageSourceIsRequired = errs.NewValidationErrorWithFields(
		"Image file or imageUrl is required",
		map[string]string{"image": "is required", "imageUrl": "is required"},
	)
	ErrImageSourceIsAmbiguous = errs.NewValidationErrorWithFields(
		"Provide either an image file or imageUrl, not both",
		map[string]string{"image": "conflicts with imageUrl", "imageUrl": "conflicts with image"},
	)
)

// Upload is an image file received with the request.
type Upload struct {
	Filename string
	Content  io.Reader
}

// AddTourImageCommand attaches an image to a tour. Exactly one of an uploaded
// file or an existing image reference must be supplied.
//
// Example:
//
//	cmd, err := NewAddTourImageCommand(kernel.NewUUID(), tourID, nil, "/uploads/x.jpg")
//	if err != nil {
//	    return err // ErrImageSourceIsRequired when both are empty
//	}
//	image, err := handler.Handle(ctx, cmd)
type AddTourImageCommand struct { //nolint:recvcheck //using for validation
	imageID  kernel.UUID
	tourID   kernel.UUID
	upload   *Upload
	imageURL string

	guard guard.ConstructorGuard
}

func NewAddTourImageCommand(
	imageID kernel.UUID,
	tourID kernel.UUID,
	upload *Upload,
	imageURL string,
) (AddTourImageCommand, error) {
	if err := errors.Join(imageID.Validate(), tourID.Validate()); err != nil {
		return AddTourImageCommand{}, err
	}

	imageURL = strings.TrimSpace(imageURL)
	hasUpload := upload != nil && upload.Content != nil
	switch {
	case !hasUpload && imageURL == "":
		return AddTourImageCommand{}, ErrImageSourceIsRequired
	case hasUpload && imageURL != "":
		return AddTourImageCommand{}, ErrImageSourceIsAmbiguous
	}

	if !hasUpload {
		upload = nil
	}

	return AddTourImageCommand{
		imageID:  imageID,
		tourID:   tourID,
		upload:   upload,
		imageURL: imageURL,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AddTourImageCommand) Validate() error {
	return c.guard.Validate(ErrAddTourImageCommandIsNotConstructed)
}

func (c AddTourImageCommand) ImageID() kernel.UUID {
	return c.imageID
}

func (c AddTourImageCommand) TourID() kernel.UUID {
	return c.tourID
}

// Upload is nil when an image reference was supplied instead.
func (c AddTourImageCommand) Upload() *Upload {
	return c.upload
}

func (c AddTourImageCommand) ImageURL() string {
	return c.imageURL
}
