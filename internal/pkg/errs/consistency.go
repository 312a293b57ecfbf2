package errs

import (
	"fmt"
	"sort"
	"strings"
)

// ConsistencyError reports a multi-step write whose first step committed but
// one or more follow-up steps failed. Failed maps the step name (for a
// cascade, the dependent collection) to its error.
type ConsistencyError struct {
	Operation string
	ID        string
	Failed    map[string]error
}

func NewConsistencyError(operation, id string) *ConsistencyError {
	return &ConsistencyError{Operation: operation, ID: id, Failed: map[string]error{}}
}

// Add records a failed step. Nil errors are ignored.
func (e *ConsistencyError) Add(step string, err error) {
	if err == nil {
		return
	}
	e.Failed[step] = err
}

// ErrorOrNil returns e when at least one step failed.
func (e *ConsistencyError) ErrorOrNil() error {
	if len(e.Failed) == 0 {
		return nil
	}
	return e
}

// Steps returns the failed step names sorted alphabetically.
func (e *ConsistencyError) Steps() []string {
	steps := make([]string, 0, len(e.Failed))
	for s := range e.Failed {
		steps = append(steps, s)
	}
	sort.Strings(steps)
	return steps
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%s: %s %s left partial state in %s",
		ErrConsistency, e.Operation, e.ID, strings.Join(e.Steps(), ", "))
}

func (e *ConsistencyError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failed)+1)
	errs = append(errs, ErrConsistency)
	for _, s := range e.Steps() {
		errs = append(errs, e.Failed[s])
	}
	return errs
}
