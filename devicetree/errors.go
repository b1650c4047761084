package devicetree

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDevice indicates a device with an empty name or unknown kind.
	ErrInvalidDevice = errors.New("devicetree: invalid device")

	// ErrDuplicateDevice indicates a second device with an existing name.
	ErrDuplicateDevice = errors.New("devicetree: duplicate device")

	// ErrUnknownDevice indicates a reference to a device not in the tree.
	ErrUnknownDevice = errors.New("devicetree: unknown device")

	// ErrInvalidAction indicates a malformed action.
	ErrInvalidAction = errors.New("devicetree: invalid action")

	// ErrDuplicateAction indicates two actions sharing an ID.
	ErrDuplicateAction = errors.New("devicetree: duplicate action id")
)

// PlanCycleError reports actions whose constraints form a cycle.
type PlanCycleError struct {
	// Cycle is the closed path of actions [a, ..., a].
	Cycle []*Action
	// Err is the underlying *tsort.CyclicGraphError.
	Err error
}

func (e *PlanCycleError) Error() string {
	parts := make([]string, len(e.Cycle))
	for i, a := range e.Cycle {
		parts[i] = a.String()
	}

	return fmt.Sprintf("devicetree: circular action dependencies: %s", strings.Join(parts, " -> "))
}

// Unwrap exposes the tsort error so errors.Is(err, tsort.ErrCyclicGraph) holds.
func (e *PlanCycleError) Unwrap() error { return e.Err }

// ExecutionError reports the action that failed during Execute.
type ExecutionError struct {
	Action  *Action
	Applied int // actions applied successfully before the failure
	Err     error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("devicetree: action %s failed after %d applied: %v", e.Action, e.Applied, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }
