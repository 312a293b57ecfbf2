package http

import (
	"net/http"

	"tours/internal/core/application/usecases/commands"
	"tours/internal/core/application/usecases/queries"
	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/ports"
	"tours/internal/generated/servers"
	"tours/internal/pkg/errs"
	"tours/internal/pkg/pagination"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListTours handles GET /api/v1/tours - lists one page of tours.
func (s *Server) ListTours(ctx echo.Context, params servers.ListToursParams) error {
	filter := ports.TourFilter{}
	if params.Hot != nil {
		filter.HotOnly = *params.Hot
	}
	if params.Search != nil {
		filter.Search = *params.Search
	}

	request := pageRequest(params.Page, params.Limit)
	if params.SortBy != nil {
		request.SortBy = string(*params.SortBy)
	}
	if params.SortOrder != nil {
		request.SortOrder = string(*params.SortOrder)
	}

	query, err := queries.NewListToursQuery(filter, request)
	if err != nil {
		return err
	}

	result, err := s.handlers.ListTours.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.TourPage{
		Items: toTours(result.Items),
		Total: result.Total,
		Page:  result.Page,
		Limit: result.Limit,
	})
}

// CreateTour handles POST /api/v1/tours - creates a tour without images.
func (s *Server) CreateTour(ctx echo.Context) error {
	var body servers.NewTour
	if err := ctx.Bind(&body); err != nil {
		return errs.NewValidationError("Invalid request body")
	}
	if err := ctx.Validate(&body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateTourCommand(kernel.NewUUID(), toDetails(body))
	if err != nil {
		return err
	}

	created, err := s.handlers.CreateTour.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, toTour(created))
}

// GetTour handles GET /api/v1/tours/{tourId} - returns the composite view.
func (s *Server) GetTour(ctx echo.Context, tourId openapi_types.UUID) error {
	id, err := toKernelID(tourId)
	if err != nil {
		return err
	}

	query, err := queries.NewGetTourViewQuery(id)
	if err != nil {
		return err
	}

	view, err := s.handlers.GetTourView.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.TourView{
		Tour:       toTour(view.Tour),
		Inclusions: toTourLines(view.Inclusions),
		Exclusions: toTourLines(view.Exclusions),
		Itinerary:  toItinerary(view.Itinerary),
		Images:     toTourImages(view.Images),
	})
}

// UpdateTour handles PUT /api/v1/tours/{tourId} - merge-patches scalar fields.
// The primary image is not writable here.
func (s *Server) UpdateTour(ctx echo.Context, tourId openapi_types.UUID) error {
	id, err := toKernelID(tourId)
	if err != nil {
		return err
	}

	var body servers.TourPatch
	if err = ctx.Bind(&body); err != nil {
		return errs.NewValidationError("Invalid request body")
	}
	if err = ctx.Validate(&body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateTourCommand(id, toPatch(body))
	if err != nil {
		return err
	}

	updated, err := s.handlers.UpdateTour.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toTour(updated))
}

// DeleteTour handles DELETE /api/v1/tours/{tourId} - deletes the tour and
// cascades to its dependents.
func (s *Server) DeleteTour(ctx echo.Context, tourId openapi_types.UUID) error {
	id, err := toKernelID(tourId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteTourCommand(id)
	if err != nil {
		return err
	}

	if err = s.handlers.DeleteTour.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func pageRequest(page, limit *int) pagination.Request {
	request := pagination.Request{}
	if page != nil {
		request.Page = *page
	}
	if limit != nil {
		request.Limit = *limit
	}
	return request
}
