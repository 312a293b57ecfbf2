package tour

import (
	"errors"
	"time"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/pkg/guard"
)

var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine constructor")

// Line is an inclusion or exclusion line of a tour.
type Line struct {
	id          kernel.UUID
	tourID      kernel.UUID
	description string
	lineType    LineType
	createdAt   time.Time

	guard guard.ConstructorGuard
}

func NewLine(id kernel.UUID, tourID kernel.UUID, description string, lineType LineType, now time.Time) (*Line, error) {
	return RestoreLine(id, tourID, description, lineType, now)
}

func RestoreLine(
	id kernel.UUID,
	tourID kernel.UUID,
	description string,
	lineType LineType,
	createdAt time.Time,
) (*Line, error) {
	if err := errors.Join(
		id.Validate(),
		tourID.Validate(),
		validateShortText("description", description),
		lineType.Validate(),
	); err != nil {
		return nil, err
	}

	return &Line{
		id:          id,
		tourID:      tourID,
		description: description,
		lineType:    lineType,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (l *Line) Validate() error {
	if l == nil {
		return ErrLineIsNotConstructed
	}
	return l.guard.Validate(ErrLineIsNotConstructed)
}

func (l *Line) ID() kernel.UUID {
	return l.id
}

func (l *Line) TourID() kernel.UUID {
	return l.tourID
}

func (l *Line) Description() string {
	return l.description
}

func (l *Line) Type() LineType {
	return l.lineType
}

func (l *Line) CreatedAt() time.Time {
	return l.createdAt
}
