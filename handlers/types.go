package handlers

// Operands - 산술 연산 쿼리 파라미터
type Operands struct {
	A float64
	B float64
}

const (
	// ParamA and ParamB are the query parameter names, validated in this order.
	ParamA = "a"
	ParamB = "b"
)
