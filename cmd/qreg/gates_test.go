package main

import (
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/theapemachine/qreg"
)

func TestParseGate(t *testing.T) {
	Convey("Given gate tokens for width 3", t, func() {
		Convey("Every documented token should parse", func() {
			for _, token := range []string{"h", "X", " y ", "z", "i", "cnot:0,1", "swap:1, 2", "toffoli:0,1,2"} {
				gate, err := parseGate(3, token)
				So(err, ShouldBeNil)
				So(gate.Width(), ShouldEqual, 3)
			}
		})

		Convey("Parsed gates should match the library constructors", func() {
			parsed, err := parseGate(3, "swap:0,2")
			So(err, ShouldBeNil)

			direct, _ := qreg.Swap(3, 0, 2)
			So(parsed.Equal(direct, 0), ShouldBeTrue)
		})

		Convey("Unknown names should be rejected", func() {
			_, err := parseGate(3, "rx")
			So(errors.Is(err, errUnknownGate), ShouldBeTrue)
		})

		Convey("The wrong number of indices should be rejected", func() {
			_, err := parseGate(3, "cnot:0")
			So(errors.Is(err, errArity), ShouldBeTrue)

			_, err = parseGate(3, "h:0")
			So(errors.Is(err, errArity), ShouldBeTrue)
		})

		Convey("Malformed indices should be rejected", func() {
			_, err := parseGate(3, "swap:a,b")
			So(err, ShouldNotBeNil)
		})

		Convey("Out of range indices should surface the library error", func() {
			_, err := parseGate(3, "cnot:0,3")
			So(errors.Is(err, qreg.ErrIndexOutOfRange), ShouldBeTrue)
		})
	})
}

func TestBuildCircuit(t *testing.T) {
	Convey("Given a list of tokens", t, func() {
		Convey("It should build a circuit with one gate per token", func() {
			circuit, err := buildCircuit(2, []string{"h", "x", "cnot:0,1"})
			So(err, ShouldBeNil)
			So(circuit.Len(), ShouldEqual, 3)
		})

		Convey("A bad token should fail the whole build", func() {
			_, err := buildCircuit(2, []string{"h", "nope"})
			So(errors.Is(err, errUnknownGate), ShouldBeTrue)
		})
	})
}

func TestRenderState(t *testing.T) {
	Convey("Given a register", t, func() {
		register, _ := qreg.FromAmplitudes([]qreg.Complex{qreg.NewComplex(1, 0), qreg.NewComplex(0, 0)})

		Convey("The rendering should list each basis state and the total", func() {
			out := renderState("initial", register)
			So(strings.Contains(out, "initial"), ShouldBeTrue)
			So(strings.Contains(out, "|0⟩"), ShouldBeTrue)
			So(strings.Contains(out, "|1⟩"), ShouldBeTrue)
			So(strings.Contains(out, "total=1.0000"), ShouldBeTrue)
		})
	})
}
