package tour

import (
	"fmt"
	"regexp"
	"strconv"

	"tours/internal/pkg/errs"
	"tours/internal/pkg/guard"
)

var durationPattern = regexp.MustCompile(`^(\d+)(?:-(\d+))? hours?$`)

// Duration is the length of a tour in hours, written as "4 hours" or
// "2-3 hours".
type Duration struct {
	raw      string
	minHours int
	maxHours int

	guard guard.ConstructorGuard
}

// NewDuration parses s. The upper bound is optional; when absent it equals
// the lower bound.
func NewDuration(s string) (Duration, error) {
	if s == "" {
		return Duration{}, errs.NewValueIsRequiredError("duration")
	}

	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return Duration{}, errs.NewValueIsInvalidErrorWithCause(
			"duration",
			fmt.Errorf("%q does not match <N>[-<M>] hour(s)", s),
		)
	}

	minHours, err := strconv.Atoi(m[1])
	if err != nil {
		return Duration{}, errs.NewValueIsInvalidErrorWithCause("duration", err)
	}
	maxHours := minHours
	if m[2] != "" {
		if maxHours, err = strconv.Atoi(m[2]); err != nil {
			return Duration{}, errs.NewValueIsInvalidErrorWithCause("duration", err)
		}
	}

	return Duration{
		raw:      s,
		minHours: minHours,
		maxHours: maxHours,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (d Duration) Validate() error {
	return d.guard.Validate(errs.NewValueIsRequiredError("duration"))
}

func (d Duration) String() string {
	return d.raw
}

func (d Duration) MinHours() int {
	return d.minHours
}

func (d Duration) MaxHours() int {
	return d.maxHours
}
