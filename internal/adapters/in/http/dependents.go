package http

import (
	"errors"
	"net/http"
	"strings"

	"tours/internal/core/application/usecases/commands"
	"tours/internal/core/application/usecases/queries"
	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"
	"tours/internal/generated/servers"
	"tours/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	imageFormField    = "image"
	imageURLFormField = "imageUrl"
)

// ListInclusions handles GET /api/v1/tours/{tourId}/inclusions.
func (s *Server) ListInclusions(ctx echo.Context, tourId openapi_types.UUID) error {
	return s.listDependents(ctx, tourId, queries.Inclusions)
}

// AddInclusion handles POST /api/v1/tours/{tourId}/inclusions.
func (s *Server) AddInclusion(ctx echo.Context, tourId openapi_types.UUID) error {
	return s.addTourLine(ctx, tourId, tour.Included)
}

// RemoveInclusion handles DELETE /api/v1/tours/{tourId}/inclusions/{itemId}.
func (s *Server) RemoveInclusion(ctx echo.Context, tourId openapi_types.UUID, itemId openapi_types.UUID) error {
	return s.removeTourLine(ctx, tourId, itemId, tour.Included)
}

// ListExclusions handles GET /api/v1/tours/{tourId}/exclusions.
func (s *Server) ListExclusions(ctx echo.Context, tourId openapi_types.UUID) error {
	return s.listDependents(ctx, tourId, queries.Exclusions)
}

// AddExclusion handles POST /api/v1/tours/{tourId}/exclusions.
func (s *Server) AddExclusion(ctx echo.Context, tourId openapi_types.UUID) error {
	return s.addTourLine(ctx, tourId, tour.Excluded)
}

// RemoveExclusion handles DELETE /api/v1/tours/{tourId}/exclusions/{itemId}.
func (s *Server) RemoveExclusion(ctx echo.Context, tourId openapi_types.UUID, itemId openapi_types.UUID) error {
	return s.removeTourLine(ctx, tourId, itemId, tour.Excluded)
}

// ListItinerary handles GET /api/v1/tours/{tourId}/itinerary.
func (s *Server) ListItinerary(ctx echo.Context, tourId openapi_types.UUID) error {
	return s.listDependents(ctx, tourId, queries.Itinerary)
}

// AddItineraryItem handles POST /api/v1/tours/{tourId}/itinerary.
func (s *Server) AddItineraryItem(ctx echo.Context, tourId openapi_types.UUID) error {
	id, err := toKernelID(tourId)
	if err != nil {
		return err
	}

	var body servers.NewItineraryItem
	if err = ctx.Bind(&body); err != nil {
		return errs.NewValidationError("Invalid request body")
	}
	if err = ctx.Validate(&body); err != nil {
		return err
	}

	cmd, err := commands.NewAddItineraryItemCommand(kernel.NewUUID(), id, body.DayNumber, body.Activity)
	if err != nil {
		return err
	}

	item, err := s.handlers.AddItineraryItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, toItineraryItem(item))
}

// RemoveItineraryItem handles DELETE /api/v1/tours/{tourId}/itinerary/{itemId}.
func (s *Server) RemoveItineraryItem(ctx echo.Context, tourId openapi_types.UUID, itemId openapi_types.UUID) error {
	id, err := toKernelID(tourId)
	if err != nil {
		return err
	}
	itemID, err := toKernelID(itemId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveItineraryItemCommand(id, itemID)
	if err != nil {
		return err
	}

	if err = s.handlers.RemoveItineraryItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListImages handles GET /api/v1/tours/{tourId}/images.
func (s *Server) ListImages(ctx echo.Context, tourId openapi_types.UUID) error {
	return s.listDependents(ctx, tourId, queries.Images)
}

// AddImage handles POST /api/v1/tours/{tourId}/images. The body is either a
// multipart form carrying an "image" file or an "imageUrl" field, or a JSON
// NewTourImageReference.
func (s *Server) AddImage(ctx echo.Context, tourId openapi_types.UUID) error {
	id, err := toKernelID(tourId)
	if err != nil {
		return err
	}

	var (
		upload   *commands.Upload
		imageURL string
	)

	req := ctx.Request()
	if strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		if req.ContentLength > s.maxUploadBytes {
			return echo.ErrStatusRequestEntityTooLarge
		}
		req.Body = http.MaxBytesReader(ctx.Response(), req.Body, s.maxUploadBytes)
		if err = req.ParseMultipartForm(s.maxUploadBytes); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return echo.ErrStatusRequestEntityTooLarge
			}
			return errs.NewValidationError("Invalid multipart body")
		}
		defer func() {
			_ = req.MultipartForm.RemoveAll()
		}()

		imageURL = req.FormValue(imageURLFormField)

		fileHeader, fileErr := ctx.FormFile(imageFormField)
		switch {
		case errors.Is(fileErr, http.ErrMissingFile):
		case fileErr != nil:
			return errs.NewValidationErrorWithFields("Invalid image file", map[string]string{imageFormField: "is invalid"})
		default:
			file, openErr := fileHeader.Open()
			if openErr != nil {
				return openErr
			}
			defer file.Close()
			upload = &commands.Upload{Filename: fileHeader.Filename, Content: file}
		}
	} else {
		var body servers.NewTourImageReference
		if err = ctx.Bind(&body); err != nil {
			return errs.NewValidationError("Invalid request body")
		}
		if body.ImageUrl != nil {
			imageURL = *body.ImageUrl
		}
	}

	cmd, err := commands.NewAddTourImageCommand(kernel.NewUUID(), id, upload, imageURL)
	if err != nil {
		return err
	}

	image, err := s.handlers.AddTourImage.Handle(req.Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, toTourImage(image))
}

// RemoveImage handles DELETE /api/v1/tours/{tourId}/images/{imageId}.
func (s *Server) RemoveImage(ctx echo.Context, tourId openapi_types.UUID, imageId openapi_types.UUID) error {
	id, err := toKernelID(tourId)
	if err != nil {
		return err
	}
	imageID, err := toKernelID(imageId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveTourImageCommand(id, imageID)
	if err != nil {
		return err
	}

	if err = s.handlers.RemoveTourImage.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) listDependents(ctx echo.Context, tourId openapi_types.UUID, dependent queries.Dependent) error {
	id, err := toKernelID(tourId)
	if err != nil {
		return err
	}

	query, err := queries.NewListTourDependentsQuery(id, dependent)
	if err != nil {
		return err
	}

	result, err := s.handlers.ListTourDependents.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	switch dependent {
	case queries.Itinerary:
		return ctx.JSON(http.StatusOK, toItinerary(result.Itinerary))
	case queries.Images:
		return ctx.JSON(http.StatusOK, toTourImages(result.Images))
	default:
		return ctx.JSON(http.StatusOK, toTourLines(result.Lines))
	}
}

func (s *Server) addTourLine(ctx echo.Context, tourId openapi_types.UUID, lineType tour.LineType) error {
	id, err := toKernelID(tourId)
	if err != nil {
		return err
	}

	var body servers.NewTourLine
	if err = ctx.Bind(&body); err != nil {
		return errs.NewValidationError("Invalid request body")
	}
	if err = ctx.Validate(&body); err != nil {
		return err
	}

	cmd, err := commands.NewAddTourLineCommand(kernel.NewUUID(), id, lineType, body.Description)
	if err != nil {
		return err
	}

	line, err := s.handlers.AddTourLine.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, toTourLine(line))
}

func (s *Server) removeTourLine(
	ctx echo.Context,
	tourId openapi_types.UUID,
	itemId openapi_types.UUID,
	lineType tour.LineType,
) error {
	id, err := toKernelID(tourId)
	if err != nil {
		return err
	}
	lineID, err := toKernelID(itemId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveTourLineCommand(id, lineType, lineID)
	if err != nil {
		return err
	}

	if err = s.handlers.RemoveTourLine.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
