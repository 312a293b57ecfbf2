package commands

import (
	"errors"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"
	"tours/internal/pkg/guard"
)

var (
	ErrAddTourLineCommandIsNotConstructed = errors.New(
		"AddTourLineCommand must be created via NewAddTourLineCommand constructor",
	)
)

// AddTourLineCommand adds an inclusion or exclusion line to a tour.
//
// Example:
//
//	cmd, err := NewAddTourLineCommand(kernel.NewUUID(), tourID, tour.Included, "Hotel pickup")
//	if err != nil {
//	    return err
//	}
//	line, err := handler.Handle(ctx, cmd)
type AddTourLineCommand struct { //nolint:recvcheck //using for validation
	lineID      kernel.UUID
	tourID      kernel.UUID
	lineType    tour.LineType
	description string

	guard guard.ConstructorGuard
}

func NewAddTourLineCommand(
	lineID kernel.UUID,
	tourID kernel.UUID,
	lineType tour.LineType,
	description string,
) (AddTourLineCommand, error) {
	if err := errors.Join(lineID.Validate(), tourID.Validate(), lineType.Validate()); err != nil {
		return AddTourLineCommand{}, err
	}

	return AddTourLineCommand{
		lineID:      lineID,
		tourID:      tourID,
		lineType:    lineType,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c AddTourLineCommand) Validate() error {
	return c.guard.Validate(ErrAddTourLineCommandIsNotConstructed)
}

func (c AddTourLineCommand) LineID() kernel.UUID {
	return c.lineID
}

func (c AddTourLineCommand) TourID() kernel.UUID {
	return c.tourID
}

func (c AddTourLineCommand) LineType() tour.LineType {
	return c.lineType
}

func (c AddTourLineCommand) Description() string {
	return c.description
}
