package qreg

import (
	"fmt"
	"sync"

	"github.com/theapemachine/errnie"
)

// StepObserver is called after each gate of a circuit has been applied.
type StepObserver func(step int, gate *Gate, register *Register)

// Circuit is an ordered list of gates of a single width.
type Circuit struct {
	mu    sync.RWMutex
	width int
	gates []*Gate
}

// NewCircuit creates an empty circuit for registers of the given width.
func NewCircuit(width int) (*Circuit, error) {
	if width <= 0 {
		return nil, fmt.Errorf("NewCircuit: width %d: %w", width, ErrInvalidWidth)
	}

	return &Circuit{width: width}, nil
}

/*
Append adds gates to the end of the circuit. Either every gate is added or,
if any of them is nil or has the wrong width, none is.
*/
func (c *Circuit) Append(gates ...*Gate) error {
	for i, gate := range gates {
		if gate == nil {
			return fmt.Errorf("Circuit.Append: gate %d: %w", i, ErrNilGate)
		}

		if gate.width != c.width {
			return fmt.Errorf(
				"Circuit.Append: gate %d has width %d, circuit %d: %w",
				i, gate.width, c.width, ErrDimensionMismatch,
			)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.gates = append(c.gates, gates...)
	return nil
}

func (c *Circuit) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.gates)
}

func (c *Circuit) Width() int {
	return c.width
}

/*
Run applies every gate to register in order and calls the observers after
each step. A register of the wrong width is rejected before the first gate.
*/
func (c *Circuit) Run(register *Register, observers ...StepObserver) error {
	if register == nil {
		return fmt.Errorf("Circuit.Run: %w", ErrNilRegister)
	}

	if width := register.Width(); width != c.width {
		return fmt.Errorf(
			"Circuit.Run: circuit width %d, register width %d: %w",
			c.width, width, ErrDimensionMismatch,
		)
	}

	c.mu.RLock()
	gates := append([]*Gate(nil), c.gates...)
	c.mu.RUnlock()

	for step, gate := range gates {
		if err := register.Apply(gate); err != nil {
			return fmt.Errorf("Circuit.Run: step %d: %w", step, err)
		}

		errnie.Info("Circuit.Run - step %d, state %v", step, register)

		for _, observe := range observers {
			observe(step, gate, register)
		}
	}

	return nil
}
