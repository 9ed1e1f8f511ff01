package qreg

import (
	"fmt"
	"math"
)

/*
Gate is a square matrix of amplitudes acting on a register of the same width.
It is meant to be unitary, though nothing here checks that. A Gate is never
mutated after construction, so one value can be applied to any number of
registers, from any number of goroutines.
*/
type Gate struct {
	width  int
	matrix [][]Complex
}

/*
NewGate wraps a row-major width×width grid. The grid is copied, so later
changes to matrix do not leak into the gate.
*/
func NewGate(matrix [][]Complex) (*Gate, error) {
	width := len(matrix)
	if width == 0 {
		return nil, fmt.Errorf("NewGate: %w", ErrInvalidWidth)
	}

	rows := make([][]Complex, width)
	for i, row := range matrix {
		if len(row) != width {
			return nil, fmt.Errorf("NewGate: row %d has %d columns, want %d: %w", i, len(row), width, ErrNotSquare)
		}
		rows[i] = append([]Complex(nil), row...)
	}

	return &Gate{width: width, matrix: rows}, nil
}

// newFilledGate builds a width×width gate from a per-cell function.
func newFilledGate(width int, cell func(i, j int) Complex) (*Gate, error) {
	if width <= 0 {
		return nil, fmt.Errorf("width %d: %w", width, ErrInvalidWidth)
	}

	rows := make([][]Complex, width)
	for i := range rows {
		rows[i] = make([]Complex, width)
		for j := range rows[i] {
			rows[i][j] = cell(i, j)
		}
	}

	return &Gate{width: width, matrix: rows}, nil
}

// Identity returns the n×n identity gate.
func Identity(n int) (*Gate, error) {
	return newFilledGate(n, func(i, j int) Complex {
		if i == j {
			return NewComplex(1, 0)
		}
		return Complex{}
	})
}

func (g *Gate) Width() int {
	return g.width
}

// At returns the entry at row, col. It panics on out of range indices, like
// a slice index would.
func (g *Gate) At(row, col int) Complex {
	return g.matrix[row][col]
}

/*
Apply replaces the amplitudes of register with the product of the gate and
the current state. The new state is computed into a fresh buffer and swapped
in under the register's write lock, so readers never see a half-updated
vector. A width mismatch is reported before anything is touched.
*/
func (g *Gate) Apply(register *Register) error {
	if register == nil {
		return fmt.Errorf("Gate.Apply: %w", ErrNilRegister)
	}

	register.mu.Lock()
	defer register.mu.Unlock()

	if len(register.amplitudes) != g.width {
		return fmt.Errorf(
			"Gate.Apply: gate width %d, register width %d: %w",
			g.width, len(register.amplitudes), ErrDimensionMismatch,
		)
	}

	register.amplitudes = g.multiplyVector(register.amplitudes)
	return nil
}

func (g *Gate) multiplyVector(vector []Complex) []Complex {
	result := make([]Complex, g.width)

	for i, row := range g.matrix {
		var acc Complex
		for j, entry := range row {
			acc = Add(acc, Multiply(entry, vector[j]))
		}
		result[i] = acc
	}

	return result
}

/*
Compose returns the gate equivalent to applying g and then next, that is the
matrix product next·g.
*/
func (g *Gate) Compose(next *Gate) (*Gate, error) {
	if next == nil {
		return nil, fmt.Errorf("Gate.Compose: %w", ErrNilGate)
	}

	if next.width != g.width {
		return nil, fmt.Errorf(
			"Gate.Compose: widths %d and %d: %w", g.width, next.width, ErrDimensionMismatch,
		)
	}

	return newFilledGate(g.width, func(i, j int) Complex {
		var acc Complex
		for k := 0; k < g.width; k++ {
			acc = Add(acc, Multiply(next.matrix[i][k], g.matrix[k][j]))
		}
		return acc
	})
}

// Equal reports whether both gates have the same width and every entry
// differs by at most tolerance in each component.
func (g *Gate) Equal(other *Gate, tolerance float64) bool {
	if other == nil || other.width != g.width {
		return false
	}

	for i := range g.matrix {
		for j := range g.matrix[i] {
			a, b := g.matrix[i][j], other.matrix[i][j]
			if math.Abs(a.real-b.real) > tolerance || math.Abs(a.imaginary-b.imaginary) > tolerance {
				return false
			}
		}
	}

	return true
}
