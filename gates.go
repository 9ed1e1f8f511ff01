package qreg

import (
	"fmt"
	"math"
	"math/cmplx"
)

var (
	one   = NewComplex(1, 0)
	unitI = NewComplex(0, 1)
)

/*
Hadamard builds the n×n gate with entries (1/√n)·(−1)^((i+j)/n).

The exponent is fractional for most cells, so the power is taken on the
principal branch of the complex logarithm and only its real part is kept,
which works out to (1/√n)·cos(π(i+j)/n). This is not the textbook ±1/√n
Hadamard transform: for n=2 it yields diag(1, −1)/√2 up to rounding.
*/
func Hadamard(n int) (*Gate, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Hadamard: width %d: %w", n, ErrInvalidWidth)
	}

	scale := 1 / math.Sqrt(float64(n))

	return newFilledGate(n, func(i, j int) Complex {
		exponent := float64(i+j) / float64(n)
		return NewComplex(scale*real(cmplx.Pow(-1, complex(exponent, 0))), 0)
	})
}

// PauliX has zeros on the diagonal and ones everywhere else.
func PauliX(n int) (*Gate, error) {
	return offDiagonal("PauliX", n, Complex{}, one)
}

// PauliY has 0.5i on the diagonal and −0.5i everywhere else.
func PauliY(n int) (*Gate, error) {
	return offDiagonal("PauliY", n, NewComplex(0, 0.5), NewComplex(0, -0.5))
}

// PauliZ has ones on the diagonal and −1 everywhere else.
func PauliZ(n int) (*Gate, error) {
	return offDiagonal("PauliZ", n, one, NewComplex(-1, 0))
}

func offDiagonal(name string, n int, diagonal, rest Complex) (*Gate, error) {
	gate, err := newFilledGate(n, func(i, j int) Complex {
		if i == j {
			return diagonal
		}
		return rest
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return gate, nil
}

/*
CNOT is the identity with cell [control][control] replaced by i. The target
index is validated but only matters when it equals control; no basis states
are exchanged.
*/
func CNOT(n, control, target int) (*Gate, error) {
	return identityWith("CNOT", n, [][2]int{{control, control}}, control, target)
}

// Swap is the identity with cells [lhs][rhs] and [rhs][lhs] set to i.
func Swap(n, lhs, rhs int) (*Gate, error) {
	return identityWith("Swap", n, [][2]int{{lhs, rhs}, {rhs, lhs}}, lhs, rhs)
}

// Toffoli is the identity with the diagonal cells of both controls and the
// target set to i.
func Toffoli(n, control1, control2, target int) (*Gate, error) {
	return identityWith(
		"Toffoli", n,
		[][2]int{{target, target}, {control1, control1}, {control2, control2}},
		control1, control2, target,
	)
}

// identityWith validates indices against n, then sets every listed cell of
// an identity gate to i.
func identityWith(name string, n int, cells [][2]int, indices ...int) (*Gate, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s: width %d: %w", name, n, ErrInvalidWidth)
	}

	for _, index := range indices {
		if index < 0 || index >= n {
			return nil, fmt.Errorf("%s: index %d, width %d: %w", name, index, n, ErrIndexOutOfRange)
		}
	}

	gate, err := Identity(n)
	if err != nil {
		return nil, err
	}

	for _, cell := range cells {
		gate.matrix[cell[0]][cell[1]] = unitI
	}

	return gate, nil
}
