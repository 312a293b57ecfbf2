package commands

import (
	"context"
	"time"

	"tours/internal/core/domain/model/tour"
)

// AddTourLineCommandHandler creates inclusion and exclusion lines.
type AddTourLineCommandHandler struct {
	uowFactory  UoWFactory
	parentCheck ParentCheck
	now         func() time.Time
}

func NewAddTourLineCommandHandler(uowFactory UoWFactory, parentCheck ParentCheck) AddTourLineCommandHandler {
	return AddTourLineCommandHandler{
		uowFactory:  uowFactory,
		parentCheck: parentCheck,
		now:         utcNow,
	}
}

func (h *AddTourLineCommandHandler) Handle(ctx context.Context, cmd AddTourLineCommand) (*tour.Line, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	line, err := tour.NewLine(cmd.LineID(), cmd.TourID(), cmd.Description(), cmd.LineType(), h.now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = h.parentCheck.ensureTourExists(ctx, uow, cmd.TourID()); err != nil {
		return nil, err
	}

	if err = uow.TourLineRepository().Add(ctx, line); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return line, nil
}
