package tour

import (
	"fmt"

	"tours/internal/pkg/errs"
)

// LineType distinguishes inclusion lines from exclusion lines. Both share one
// collection.
type LineType int

const (
	// UnknownLineType catches uninitialized values.
	UnknownLineType LineType = iota
	Included
	Excluded
)

var lineTypeNames = map[LineType]string{
	Included: "included",
	Excluded: "excluded",
}

// ParseLineType maps the stored/wire name to a LineType.
func ParseLineType(s string) (LineType, error) {
	for t, name := range lineTypeNames {
		if name == s {
			return t, nil
		}
	}
	return UnknownLineType, errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not included or excluded", s))
}

func (t LineType) Validate() error {
	if _, ok := lineTypeNames[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%d is not a valid line type", t))
	}
	return nil
}

func (t LineType) String() string {
	if name, ok := lineTypeNames[t]; ok {
		return name
	}
	return "unknown"
}
