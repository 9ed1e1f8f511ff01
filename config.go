package qreg

import (
	"math/rand/v2"
	"time"
)

type Config struct {
	Width   int
	Seed    uint64
	Verbose bool
}

func NewConfig() *Config {
	return &Config{
		Width: 2,
		Seed:  uint64(time.Now().UnixNano()),
	}
}

// Source returns a random source seeded from Seed. Two sources from the same
// seed produce the same sequence.
func (c *Config) Source() *rand.Rand {
	return rand.New(rand.NewPCG(c.Seed, c.Seed))
}

// NewRegister seeds a register of the configured width.
func (c *Config) NewRegister() (*Register, error) {
	return NewRegister(c.Width, c.Source())
}
