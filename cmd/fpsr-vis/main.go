//go:build ebiten

// Command fpsr-vis scrolls the two FPS-R generators through a live strip
// chart: the top lane is Stacked Modulo, the bottom lane is Quantised
// Switching. Every visible column is recomputed from scratch each tick —
// the chart itself is a demonstration that the generators need no history.
//
// Keys: Space pause, N single-step, R rewind to frame 0, Q/Escape quit.
package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := newConfig()
	cfg.bind(flag.CommandLine)
	flag.Parse()

	g := newGame(cfg)

	ebiten.SetWindowTitle("fpsr-vis — stacked modulo / quantised switching")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(chartW*cfg.Scale, 2*laneH*cfg.Scale)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
