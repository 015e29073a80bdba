package calculator

import (
	"fmt"
	"strings"
)

// UnsupportedOperationError reports an operation name outside the registry,
// together with every name the registry does accept.
type UnsupportedOperationError struct {
	Name       string
	ValidNames []string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("unsupported operation type: %s. Supported types: %s",
		e.Name, strings.Join(e.ValidNames, ", "))
}

// DivisionByZeroError reports a division with a zero divisor, raised either
// when a request is validated or when an existing calculation is recomputed.
// Both paths carry the same message.
type DivisionByZeroError struct {
	Message string
}

func (e *DivisionByZeroError) Error() string {
	return e.Message
}

// NewDivisionByZeroError returns a DivisionByZeroError with the canonical
// message.
func NewDivisionByZeroError() *DivisionByZeroError {
	return &DivisionByZeroError{Message: "Division by zero is not allowed"}
}
