package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theapemachine/qreg"
)

var (
	errUnknownGate = errors.New("unknown gate")
	errArity       = errors.New("wrong number of indices")
)

// gateArity is the number of basis indices each gate token takes after the
// colon, e.g. "cnot:0,1".
var gateArity = map[string]int{
	"h": 0, "x": 0, "y": 0, "z": 0, "i": 0,
	"cnot": 2, "swap": 2, "toffoli": 3,
}

/*
parseGate turns a token such as "h" or "toffoli:0,1,2" into a gate of the
given width. Names are case-insensitive.
*/
func parseGate(width int, token string) (*qreg.Gate, error) {
	name, args, _ := strings.Cut(strings.ToLower(strings.TrimSpace(token)), ":")

	arity, ok := gateArity[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", token, errUnknownGate)
	}

	var indices []int
	if args != "" {
		for _, part := range strings.Split(args, ",") {
			index, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return nil, fmt.Errorf("%q: %w", token, err)
			}
			indices = append(indices, index)
		}
	}

	if len(indices) != arity {
		return nil, fmt.Errorf("%q: want %d, got %d: %w", token, arity, len(indices), errArity)
	}

	switch name {
	case "h":
		return qreg.Hadamard(width)
	case "x":
		return qreg.PauliX(width)
	case "y":
		return qreg.PauliY(width)
	case "z":
		return qreg.PauliZ(width)
	case "i":
		return qreg.Identity(width)
	case "cnot":
		return qreg.CNOT(width, indices[0], indices[1])
	case "swap":
		return qreg.Swap(width, indices[0], indices[1])
	default:
		return qreg.Toffoli(width, indices[0], indices[1], indices[2])
	}
}

// buildCircuit parses every token into one circuit.
func buildCircuit(width int, tokens []string) (*qreg.Circuit, error) {
	circuit, err := qreg.NewCircuit(width)
	if err != nil {
		return nil, err
	}

	for _, token := range tokens {
		gate, err := parseGate(width, token)
		if err != nil {
			return nil, err
		}

		if err := circuit.Append(gate); err != nil {
			return nil, err
		}
	}

	return circuit, nil
}
