//go:build ebiten

package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/patwooky/fpsr/qs"
	"github.com/patwooky/fpsr/sm"
)

const (
	chartW = 320 // visible frames per lane
	laneH  = 72  // lane height in chart pixels
)

var (
	smBar    = color.RGBA{R: 0x56, G: 0xb6, B: 0xc2, A: 0xff}
	qsBar    = color.RGBA{R: 0xc6, G: 0x78, B: 0xdd, A: 0xff}
	jumpMark = color.RGBA{R: 0xe0, G: 0x6c, B: 0x75, A: 0xff}
	laneBG   = color.RGBA{R: 0x16, G: 0x16, B: 0x1e, A: 0xff}
)

// game adapts the two generators to the ebiten.Game interface. It owns no
// signal history: each Draw recomputes every visible column from the frame
// counter alone.
type game struct {
	smOpt sm.Options
	qsOpt qs.Options

	frame    int
	paused   bool
	tickOnce bool
	scale    int

	chart *ebiten.Image
	buf   []byte
}

// newGame constructs the demo for the provided configuration.
func newGame(cfg *config) *game {
	smOpt := sm.DefaultOptions()
	smOpt.MinHold = cfg.MinHold
	smOpt.MaxHold = cfg.MaxHold
	smOpt.ReseedInterval = cfg.Reseed

	qsOpt := qs.DefaultOptions()
	qsOpt.BaseWaveFreq = float32(cfg.WaveFreq)

	return &game{
		smOpt: smOpt,
		qsOpt: qsOpt,
		scale: cfg.Scale,
		chart: ebiten.NewImage(chartW, 2*laneH),
		buf:   make([]byte, chartW*2*laneH*4),
	}
}

// Update handles keys and advances the frame counter.
func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.frame = 0
	}

	if !g.paused || g.tickOnce {
		g.frame++
		g.tickOnce = false
	}
	return nil
}

// Draw recomputes the visible window of both generators and blits the chart.
func (g *game) Draw(screen *ebiten.Image) {
	clearRGBA(g.buf, laneBG)

	for x := 0; x < chartW; x++ {
		f := g.frame - chartW + 1 + x

		v := sm.Value(f, g.smOpt)
		g.drawColumn(x, 0, v, smBar)
		if sm.Changed(f, g.smOpt) {
			g.markColumn(x, 0)
		}

		v = qs.Value(f, g.qsOpt)
		g.drawColumn(x, laneH, v, qsBar)
		if qs.Changed(f, g.qsOpt) {
			g.markColumn(x, laneH)
		}
	}

	g.chart.WritePixels(g.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.chart, op)
}

// Layout returns the logical screen size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return chartW * g.scale, 2 * laneH * g.scale
}

// drawColumn fills one chart column from the lane floor up to v in [0,1).
func (g *game) drawColumn(x, laneTop int, v float32, col color.RGBA) {
	barTop := laneTop + laneH - 1 - int(v*float32(laneH-2))
	for y := laneTop + laneH - 1; y >= barTop; y-- {
		g.setPixel(x, y, col)
	}
}

// markColumn paints a short transition tick at the top edge of a lane.
func (g *game) markColumn(x, laneTop int) {
	for y := laneTop; y < laneTop+4; y++ {
		g.setPixel(x, y, jumpMark)
	}
}

func (g *game) setPixel(x, y int, col color.RGBA) {
	base := (y*chartW + x) * 4
	g.buf[base+0] = col.R
	g.buf[base+1] = col.G
	g.buf[base+2] = col.B
	g.buf[base+3] = col.A
}

// clearRGBA floods the pixel buffer with a single color.
func clearRGBA(buf []byte, col color.RGBA) {
	for i := 0; i < len(buf); i += 4 {
		buf[i+0] = col.R
		buf[i+1] = col.G
		buf[i+2] = col.B
		buf[i+3] = col.A
	}
}
