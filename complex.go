package qreg

import (
	"fmt"
	"math/rand/v2"
)

/*
Complex is a single probability amplitude. It is a plain value type, every
operation returns a new value and none of them normalize.
*/
type Complex struct {
	real      float64
	imaginary float64
}

// NewComplex creates a Complex from its real and imaginary parts.
func NewComplex(real, imaginary float64) Complex {
	return Complex{real: real, imaginary: imaginary}
}

// FromComplex128 converts a native complex128.
func FromComplex128(c complex128) Complex {
	return Complex{real: real(c), imaginary: imag(c)}
}

/*
RandomComplex draws the real part uniformly from [0,1) and leaves the
imaginary part at zero. It advances rng.
*/
func RandomComplex(rng *rand.Rand) Complex {
	return Complex{real: rng.Float64()}
}

func (c Complex) Real() float64 {
	return c.real
}

func (c Complex) Imaginary() float64 {
	return c.imaginary
}

// NormalizedSquared returns the squared modulus, the probability weight of
// the amplitude.
func (c Complex) NormalizedSquared() float64 {
	return c.real*c.real + c.imaginary*c.imaginary
}

// Complex128 converts to the native type so math/cmplx can be used on it.
func (c Complex) Complex128() complex128 {
	return complex(c.real, c.imaginary)
}

func (c Complex) String() string {
	return fmt.Sprintf("(%g, %g)", c.real, c.imaginary)
}

// Multiply returns the complex product a·b.
func Multiply(a, b Complex) Complex {
	return Complex{
		real:      a.real*b.real - a.imaginary*b.imaginary,
		imaginary: a.real*b.imaginary + a.imaginary*b.real,
	}
}

// Add returns the component-wise sum a+b.
func Add(a, b Complex) Complex {
	return Complex{
		real:      a.real + b.real,
		imaginary: a.imaginary + b.imaginary,
	}
}
