package qreg

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCircuit(t *testing.T) {
	Convey("Given a circuit of width 2", t, func() {
		circuit, err := NewCircuit(2)
		So(err, ShouldBeNil)

		hadamard, _ := Hadamard(2)
		pauliX, _ := PauliX(2)

		Convey("When appending gates of the right width", func() {
			So(circuit.Append(hadamard, pauliX), ShouldBeNil)
			So(circuit.Len(), ShouldEqual, 2)
			So(circuit.Width(), ShouldEqual, 2)

			Convey("Run should apply them in order and notify observers", func() {
				register, _ := FromAmplitudes([]Complex{one, {}})
				expected, _ := FromAmplitudes([]Complex{one, {}})
				So(expected.Apply(hadamard), ShouldBeNil)
				So(expected.Apply(pauliX), ShouldBeNil)

				var steps []int
				var seen []*Gate
				err := circuit.Run(register, func(step int, gate *Gate, r *Register) {
					steps = append(steps, step)
					seen = append(seen, gate)
					So(r, ShouldPointTo, register)
				})

				So(err, ShouldBeNil)
				So(steps, ShouldResemble, []int{0, 1})
				So(seen[0], ShouldPointTo, hadamard)
				So(seen[1], ShouldPointTo, pauliX)
				soAmplitudes(register.Amplitudes(), expected.Amplitudes())
			})

			Convey("Run should reject a register of another width untouched", func() {
				start := []Complex{one, {}, {}}
				register, _ := FromAmplitudes(start)

				calls := 0
				err := circuit.Run(register, func(int, *Gate, *Register) { calls++ })
				So(errors.Is(err, ErrDimensionMismatch), ShouldBeTrue)
				So(calls, ShouldEqual, 0)
				So(register.Amplitudes(), ShouldResemble, start)
			})

			Convey("Run should reject a nil register", func() {
				So(errors.Is(circuit.Run(nil), ErrNilRegister), ShouldBeTrue)
			})
		})

		Convey("When appending a batch with a bad gate", func() {
			wide, _ := Identity(3)

			err := circuit.Append(hadamard, wide)
			So(errors.Is(err, ErrDimensionMismatch), ShouldBeTrue)

			err = circuit.Append(pauliX, nil)
			So(errors.Is(err, ErrNilGate), ShouldBeTrue)

			Convey("Then nothing should have been added", func() {
				So(circuit.Len(), ShouldEqual, 0)
			})
		})

		Convey("An empty circuit should leave the register alone", func() {
			start := []Complex{NewComplex(0.3, 0.1), NewComplex(0.2, 0)}
			register, _ := FromAmplitudes(start)
			So(circuit.Run(register), ShouldBeNil)
			So(register.Amplitudes(), ShouldResemble, start)
		})
	})

	Convey("A non-positive width should be rejected", t, func() {
		_, err := NewCircuit(-1)
		So(errors.Is(err, ErrInvalidWidth), ShouldBeTrue)
	})
}
