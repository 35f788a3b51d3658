// SPDX-License-Identifier: MIT
// Package: fpsr/sm
//
// sm.go - the Stacked Modulo pipeline: duration roll → state collapse → hash.
//
// Contract:
//   - Pure functions of (frame, Options). No globals, no errors, no logging.
//   - Every divisor is clamped to ≥1 before use; no input can fail.
//   - Flooring modulo throughout: windows stay contiguous across frame 0.

package sm

import (
	"math"

	"github.com/patwooky/fpsr/fpsrand"
)

// Value returns the Stacked Modulo output for frame: a float32 in [0,1)
// that stays bit-identical for the current hold window and jumps when the
// window ends.
//
// Complexity: O(1).
func Value(frame int, opt Options) float32 {
	hold := HoldDuration(frame, opt)

	// Collapse every frame of the hold window onto its first frame. The
	// result is constant for hold consecutive frames, so the hash of it is
	// too.
	outer := opt.SeedOuter + frame
	state := outer - floorMod(outer, hold)

	return fpsrand.Rand(state)
}

// HoldDuration returns the hold duration (in frames, ≥1) rolled for the
// reseed window containing frame. The same duration is reported for every
// frame inside one reseed window.
//
// Complexity: O(1).
func HoldDuration(frame int, opt Options) int {
	interval := opt.ReseedInterval
	if interval < 1 {
		interval = 1
	}

	// Start of the current reseed window; hashing it keeps the rolled
	// duration stable until the next window begins.
	bucket := frame - floorMod(frame, interval)
	r := fpsrand.Rand(opt.SeedInner + bucket)

	hold := int(math.Floor(float64(opt.MinHold) + float64(r)*float64(opt.MaxHold-opt.MinHold)))
	if hold < 1 {
		hold = 1
	}

	return hold
}

// Changed reports whether the output jumped between frame-1 and frame.
// It is the standard hold-to-hold transition probe: two evaluations, one
// comparison.
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
