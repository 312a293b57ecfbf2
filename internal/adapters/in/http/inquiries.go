package http

import (
	"net/http"

	"tours/internal/core/application/usecases/commands"
	"tours/internal/core/application/usecases/queries"
	"tours/internal/core/domain/model/kernel"
	"tours/internal/generated/servers"
	"tours/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateInquiry handles POST /api/v1/inquiries - public lead capture.
func (s *Server) CreateInquiry(ctx echo.Context) error {
	var body servers.NewInquiry
	if err := ctx.Bind(&body); err != nil {
		return errs.NewValidationError("Invalid request body")
	}
	if err := ctx.Validate(&body); err != nil {
		return err
	}

	var tourID *kernel.UUID
	if body.TourId != nil {
		id, err := toKernelID(*body.TourId)
		if err != nil {
			return err
		}
		tourID = &id
	}

	cmd, err := commands.NewCreateInquiryCommand(kernel.NewUUID(), toContact(body), tourID)
	if err != nil {
		return err
	}

	created, err := s.handlers.CreateInquiry.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, toInquiry(created))
}

// ListInquiries handles GET /api/v1/inquiries - newest first.
func (s *Server) ListInquiries(ctx echo.Context, params servers.ListInquiriesParams) error {
	query, err := queries.NewListInquiriesQuery(pageRequest(params.Page, params.Limit))
	if err != nil {
		return err
	}

	result, err := s.handlers.ListInquiries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.InquiryPage{
		Items: toInquiries(result.Items),
		Total: result.Total,
		Page:  result.Page,
		Limit: result.Limit,
	})
}

// DeleteInquiry handles DELETE /api/v1/inquiries/{inquiryId}.
func (s *Server) DeleteInquiry(ctx echo.Context, inquiryId openapi_types.UUID) error {
	id, err := toKernelID(inquiryId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteInquiryCommand(id)
	if err != nil {
		return err
	}

	if err = s.handlers.DeleteInquiry.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
