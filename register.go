package qreg

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/theapemachine/errnie"
)

/*
Register holds the full state of a quantum system: one amplitude per basis
state. Its width is fixed at construction, and the only way to change the
amplitudes is Apply, which swaps in the whole new vector at once.
*/
type Register struct {
	mu         sync.RWMutex
	amplitudes []Complex
}

/*
NewRegister seeds width amplitudes independently from rng, each with a real
part on [0,1) and no imaginary part. The result is not normalized. A nil rng
falls back to a time-seeded source.
*/
func NewRegister(width int, rng *rand.Rand) (*Register, error) {
	if width <= 0 {
		return nil, fmt.Errorf("NewRegister: width %d: %w", width, ErrInvalidWidth)
	}

	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed))
	}

	amplitudes := make([]Complex, width)
	for i := range amplitudes {
		amplitudes[i] = RandomComplex(rng)
	}

	errnie.Info("NewRegister - width %d, amplitudes %v", width, amplitudes)

	return &Register{amplitudes: amplitudes}, nil
}

// FromAmplitudes builds a register holding a copy of amplitudes.
func FromAmplitudes(amplitudes []Complex) (*Register, error) {
	if len(amplitudes) == 0 {
		return nil, fmt.Errorf("FromAmplitudes: %w", ErrInvalidWidth)
	}

	return &Register{amplitudes: append([]Complex(nil), amplitudes...)}, nil
}

func (r *Register) Width() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.amplitudes)
}

// Amplitudes returns a copy of the current state.
func (r *Register) Amplitudes() []Complex {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Complex(nil), r.amplitudes...)
}

// Apply evolves the register by gate. See Gate.Apply.
func (r *Register) Apply(gate *Gate) error {
	if gate == nil {
		return fmt.Errorf("Register.Apply: %w", ErrNilGate)
	}

	return gate.Apply(r)
}

/*
TotalProbability sums the squared moduli of all amplitudes. It is 1 for a
normalized state and stays 1 under unitary gates, up to rounding.
*/
func (r *Register) TotalProbability() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total float64
	for _, amplitude := range r.amplitudes {
		total += amplitude.NormalizedSquared()
	}

	return total
}

// Dump renders the amplitudes with go-spew, for debugging.
func (r *Register) Dump() string {
	return spew.Sdump(r.Amplitudes())
}

func (r *Register) String() string {
	amplitudes := r.Amplitudes()
	parts := make([]string, len(amplitudes))

	for i, amplitude := range amplitudes {
		parts[i] = amplitude.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}
