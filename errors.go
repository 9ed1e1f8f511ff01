package qreg

import "errors"

// Every message carries the "qreg:" prefix. Call sites wrap these with
// fmt.Errorf("...: %w", ErrX) and callers match them with errors.Is.
var (
	// ErrDimensionMismatch is returned when a gate, register or circuit
	// disagree on width. Nothing is mutated when it is returned.
	ErrDimensionMismatch = errors.New("qreg: dimension mismatch")

	// ErrIndexOutOfRange is returned by gate constructors given a basis
	// index outside 0..n.
	ErrIndexOutOfRange = errors.New("qreg: index out of range")

	// ErrInvalidWidth is returned for a width <= 0 or an empty amplitude
	// sequence.
	ErrInvalidWidth = errors.New("qreg: width must be > 0")

	// ErrNotSquare is returned when a gate matrix is ragged or not square.
	ErrNotSquare = errors.New("qreg: matrix is not square")

	ErrNilGate     = errors.New("qreg: nil gate")
	ErrNilRegister = errors.New("qreg: nil register")
)
