package commands

import (
	"errors"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"
	"tours/internal/pkg/guard"
)

var (
	ErrRemoveTourLineCommandIsNotConstructed = errors.New(
		"RemoveTourLineCommand must be created via NewRemoveTourLineCommand constructor",
	)
)

// RemoveTourLineCommand removes a line only when its ID, owning tour and type
// all match.
type RemoveTourLineCommand struct { //nolint:recvcheck //using for validation
	tourID   kernel.UUID
	lineType tour.LineType
	lineID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveTourLineCommand(
	tourID kernel.UUID,
	lineType tour.LineType,
	lineID kernel.UUID,
) (RemoveTourLineCommand, error) {
	if err := errors.Join(tourID.Validate(), lineType.Validate(), lineID.Validate()); err != nil {
		return RemoveTourLineCommand{}, err
	}

	return RemoveTourLineCommand{
		tourID:   tourID,
		lineType: lineType,
		lineID:   lineID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveTourLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveTourLineCommandIsNotConstructed)
}

func (c RemoveTourLineCommand) TourID() kernel.UUID {
	return c.tourID
}

func (c RemoveTourLineCommand) LineType() tour.LineType {
	return c.lineType
}

func (c RemoveTourLineCommand) LineID() kernel.UUID {
	return c.lineID
}
