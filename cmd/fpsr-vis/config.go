//go:build ebiten

package main

import (
	"flag"

	"github.com/patwooky/fpsr/sm"
)

// config represents the command-line parameters for the demo.
type config struct {
	Scale int
	TPS   int

	MinHold  int
	MaxHold  int
	Reseed   int
	WaveFreq float64
}

// newConfig returns a config populated with sensible defaults.
func newConfig() *config {
	def := sm.DefaultOptions()
	return &config{
		Scale:    3,
		TPS:      30,
		MinHold:  def.MinHold,
		MaxHold:  def.MaxHold,
		Reseed:   def.ReseedInterval,
		WaveFreq: 0.012,
	}
}

// bind attaches the configuration to the provided FlagSet.
func (c *config) bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.MinHold, "minhold", c.MinHold, "stacked modulo: minimum hold duration in frames")
	fs.IntVar(&c.MaxHold, "maxhold", c.MaxHold, "stacked modulo: maximum hold duration in frames")
	fs.IntVar(&c.Reseed, "reseed", c.Reseed, "stacked modulo: reseed interval in frames")
	fs.Float64Var(&c.WaveFreq, "wavefreq", c.WaveFreq, "quantised switching: base wave frequency")
}
