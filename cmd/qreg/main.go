// Command qreg runs a gate sequence against a freshly seeded register and
// prints the state after every step.
package main

import (
	"fmt"
	"os"

	"github.com/theapemachine/errnie"
	"github.com/theapemachine/qreg"
	"gopkg.in/urfave/cli.v1"
)

var (
	widthFlag = cli.IntFlag{
		Name:  "width",
		Usage: "Number of amplitudes in the register",
		Value: 2,
	}
	seedFlag = cli.Uint64Flag{
		Name:  "seed",
		Usage: "Seed for the initial amplitudes (default: current time)",
	}
	gateFlag = cli.StringSliceFlag{
		Name:  "gate",
		Usage: "Gate to apply, repeatable: h, x, y, z, i, cnot:c,t, swap:a,b, toffoli:c1,c2,t",
	}
	verboseFlag = cli.BoolFlag{
		Name:  "verbose",
		Usage: "Also dump the raw amplitudes after each step",
	}

	runCommand = cli.Command{
		Action:    run,
		Name:      "run",
		Usage:     "Apply a gate sequence to a random register",
		ArgsUsage: "",
		Flags:     []cli.Flag{widthFlag, seedFlag, gateFlag, verboseFlag},
		Description: `The run command seeds a register, applies each --gate in order and
prints the state after every step. Without --gate a single Hadamard is applied.`,
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "qreg"
	app.Usage = "minimal state-vector simulator"
	app.Commands = []cli.Command{runCommand}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// configFromContext applies command line flags over the defaults.
func configFromContext(ctx *cli.Context) *qreg.Config {
	config := qreg.NewConfig()
	config.Width = ctx.Int(widthFlag.Name)
	if ctx.IsSet(seedFlag.Name) {
		config.Seed = ctx.Uint64(seedFlag.Name)
	}
	config.Verbose = ctx.Bool(verboseFlag.Name)
	return config
}

func run(ctx *cli.Context) error {
	config := configFromContext(ctx)

	tokens := ctx.StringSlice(gateFlag.Name)
	if len(tokens) == 0 {
		tokens = []string{"h"}
	}

	circuit, err := buildCircuit(config.Width, tokens)
	if err != nil {
		return err
	}

	register, err := config.NewRegister()
	if err != nil {
		return err
	}

	errnie.Info("run - width %d, seed %d, gates %v", config.Width, config.Seed, tokens)

	show := func(title string, register *qreg.Register) {
		fmt.Println(renderState(title, register))
		if config.Verbose {
			fmt.Print(register.Dump())
		}
	}

	show("initial", register)

	return circuit.Run(register, func(step int, _ *qreg.Gate, register *qreg.Register) {
		show(fmt.Sprintf("step %d: %s", step, tokens[step]), register)
	})
}
