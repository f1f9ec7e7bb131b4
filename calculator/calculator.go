// Package calculator implements the arithmetic operations served by the
// calculator service together with the error taxonomy used to translate
// failures into HTTP responses.
package calculator

// Operation - 지원하는 산술 연산 이름
type Operation string

const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
)

// Operations lists every arithmetic operation in route registration order.
var Operations = []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}

// Add returns a + b.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns a - b.
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns a * b.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a / b. A divisor that compares equal to zero (including -0)
// fails with DivisionByZero; no tolerance is applied to near-zero divisors.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, DivisionByZeroError()
	}
	return a / b, nil
}

// Apply - 연산 이름에 해당하는 계산 수행
func (op Operation) Apply(a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return Add(a, b), nil
	case OpSubtract:
		return Subtract(a, b), nil
	case OpMultiply:
		return Multiply(a, b), nil
	case OpDivide:
		return Divide(a, b)
	default:
		return 0, UnexpectedError(ErrUnknownOperation, string(op))
	}
}
