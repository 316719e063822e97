package engine

import (
	"errors"
	"fmt"
)

// ErrNoGrid indicates an engine call received a nil grid.
var ErrNoGrid = errors.New("no grid")

// AddressError represents a cell label that cannot be resolved against a grid.
type AddressError struct {
	Label  string
	Reason string
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("invalid cell label %q: %s", e.Label, e.Reason)
}

// NewAddressError creates a new AddressError.
func NewAddressError(label, format string, a ...any) *AddressError {
	return &AddressError{
		Label:  label,
		Reason: fmt.Sprintf(format, a...),
	}
}

// OperationError represents an unrecognized aggregate or transform selector.
type OperationError struct {
	Kind string // selector family, such as "aggregate"
	Op   string
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("invalid %s operation %q", e.Kind, e.Op)
}
