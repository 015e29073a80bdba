// Package calculator implements the arithmetic core of the service: a fixed
// registry of four binary operations and the pure functions behind them.
package calculator

// Operation identifies one of the supported arithmetic operations.
type Operation string

const (
	OperationAdd      Operation = "Add"
	OperationSubtract Operation = "Subtract"
	OperationMultiply Operation = "Multiply"
	OperationDivide   Operation = "Divide"
)

// Computation is the pure function implementing one Operation.
type Computation func(a, b float64) (float64, error)

// operations pairs every supported operation with its computation,
// in registration order.
var operations = []struct {
	name    Operation
	compute Computation
}{
	{OperationAdd, add},
	{OperationSubtract, subtract},
	{OperationMultiply, multiply},
	{OperationDivide, divide},
}

func add(a, b float64) (float64, error)      { return a + b, nil }
func subtract(a, b float64) (float64, error) { return a - b, nil }
func multiply(a, b float64) (float64, error) { return a * b, nil }

// divide rejects a zero divisor with an exact IEEE-754 comparison, so a
// negative zero is rejected too. Infinities and NaNs pass through.
func divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, NewDivisionByZeroError()
	}
	return a / b, nil
}

// Resolve returns the computation registered under name. The match is exact
// and case-sensitive. Unknown names fail with *UnsupportedOperationError
// listing every valid name.
func Resolve(name string) (Computation, error) {
	for _, op := range operations {
		if string(op.name) == name {
			return op.compute, nil
		}
	}
	return nil, &UnsupportedOperationError{Name: name, ValidNames: SupportedOperations()}
}

// SupportedOperations returns the operation names in registration order.
func SupportedOperations() []string {
	names := make([]string, 0, len(operations))
	for _, op := range operations {
		names = append(names, string(op.name))
	}
	return names
}

// Compute resolves name and applies its computation to a and b.
func Compute(name string, a, b float64) (float64, error) {
	compute, err := Resolve(name)
	if err != nil {
		return 0, err
	}
	return compute(a, b)
}

// Valid reports whether op is one of the four supported operations.
func (op Operation) Valid() bool {
	_, err := Resolve(string(op))
	return err == nil
}
