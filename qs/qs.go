// SPDX-License-Identifier: MIT
// Package: fpsr/qs
//
// qs.go - the Quantised Switching pipeline: resolve → quantise → synthesize
// → switch → hash.
//
// Contract:
//   - Pure functions of (frame, Options). No globals, no errors, no logging.
//   - Sentinel resolution happens once per call (Resolve); caller input is
//     never mutated.
//   - Every divisor is clamped to ≥1 before use; no input can fail. A zero
//     BaseWaveFreq makes the derived durations collapse to the clamp and the
//     synthesis degenerate, but a finite in-range value is still returned.
//   - Flooring modulo throughout, matching package sm.

package qs

import (
	"math"

	"github.com/patwooky/fpsr/fpsrand"
)

// maxDerivedDur bounds a derived duration before the float→int conversion.
// Non-finite or absurd derivations (BaseWaveFreq near zero) fall through to
// the 1-frame clamp instead of an implementation-defined conversion.
const maxDerivedDur = math.MaxInt32

// Resolve expands opt into a fully-populated Params: negative
// Stream2FreqMult becomes Stream2FreqMultDefault, each duration below 1 is
// derived from the base wave period by its fixed ratio, and all durations
// are clamped to ≥1.
//
// Complexity: O(1).
func Resolve(opt Options) Params {
	p := Params{
		BaseWaveFreq:    opt.BaseWaveFreq,
		Stream2FreqMult: opt.Stream2FreqMult,
		QuantLevels:     opt.QuantLevels,
		StreamsOffset:   opt.StreamsOffset,
		StreamSwitchDur: opt.StreamSwitchDur,
		Stream1QuantDur: opt.Stream1QuantDur,
		Stream2QuantDur: opt.Stream2QuantDur,
	}

	if p.Stream2FreqMult < 0 {
		p.Stream2FreqMult = Stream2FreqMultDefault
	}

	base := float64(p.BaseWaveFreq)
	p.StreamSwitchDur = resolveDur(p.StreamSwitchDur, base, SwitchDurRatio)
	p.Stream1QuantDur = resolveDur(p.Stream1QuantDur, base, Stream1QuantDurRatio)
	p.Stream2QuantDur = resolveDur(p.Stream2QuantDur, base, Stream2QuantDurRatio)

	return p
}

// resolveDur keeps an explicit duration (≥1) as-is, derives a sentinel one
// from the base wave period, and clamps the result to [1, maxDerivedDur].
func resolveDur(dur int, base, ratio float64) int {
	if dur >= 1 {
		return dur
	}

	d := math.Floor((1.0 / base) * ratio)
	if !(d >= 1 && d <= maxDerivedDur) {
		return 1
	}

	return int(d)
}

// Value returns the Quantised Switching output for frame: a float32 in
// [0,1) that steps and flickers on the generator's internal cycles.
//
// Complexity: O(1).
func Value(frame int, opt Options) float32 {
	p := Resolve(opt)

	// Each stream's quantisation level flips halfway through its own cycle.
	level1 := p.QuantLevels[1]
	if floorMod(p.StreamsOffset[0]+frame, p.Stream1QuantDur) < p.Stream1QuantDur/2 {
		level1 = p.QuantLevels[0]
	}
	level2 := int(math.Floor(float64(p.QuantLevels[1]) * Stream2QuantRatioMax))
	if floorMod(p.StreamsOffset[1]+frame, p.Stream2QuantDur) < p.Stream2QuantDur/2 {
		level2 = int(math.Floor(float64(p.QuantLevels[0]) * Stream2QuantRatioMin))
	}
	if level1 < 1 {
		level1 = 1
	}
	if level2 < 1 {
		level2 = 1
	}

	// Staircase-quantised sine per stream: level discrete steps.
	base := float64(p.BaseWaveFreq)
	stream1 := math.Floor(math.Sin(float64(p.StreamsOffset[0]+frame)*base)*float64(level1)) / float64(level1)
	stream2 := math.Floor(math.Sin(float64(p.StreamsOffset[1]+frame)*base*float64(p.Stream2FreqMult))*float64(level2)) / float64(level2)

	active := stream2
	if floorMod(frame, p.StreamSwitchDur) < p.StreamSwitchDur/2 {
		active = stream1
	}

	// Re-randomize the staircase levels so the output does not read as a
	// sine wave.
	return fpsrand.Rand(int(active * finalHashScale))
}

// Changed reports whether the output jumped between frame-1 and frame.
//
// Complexity: O(1).
func Changed(frame int, opt Options) bool {
	return Value(frame, opt) != Value(frame-1, opt)
}

// floorMod reduces a modulo n with the flooring convention: the result is
// always in [0, n), regardless of the sign of a. Precondition: n ≥ 1.
func floorMod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}

	return r
}
