// SPDX-License-Identifier: MIT
// Package: fpsr/fpsrand
//
// rand.go - the portable integer→[0,1) hash underlying all FPS-R output.
//
// Contract:
//   - Pure function, total over all int seeds. No globals, no errors.
//   - Single-precision pipeline: the sine product is rounded to float32
//     before the fractional part is taken, matching the canonical FPS-R
//     evaluation order. The rounding step quantises the result, which
//     is what keeps the output byte-identical across libm implementations.

package fpsrand

import "math"

const (
	// SinMultiplier scales the seed before the sine evaluation. Chosen to
	// push the argument into the sine's chaotic high-frequency regime.
	SinMultiplier = 12.9898

	// ScaleFactor spreads the sine output across many integer periods so
	// that the fractional part decorrelates from the seed.
	ScaleFactor = 43758.5453
)

// Rand maps an integer seed to a deterministic float32 in [0,1).
//
// Evaluation order matters and is part of the contract:
//  1. seed is truncated to float32, then multiplied by SinMultiplier.
//  2. sin of the product is scaled by ScaleFactor and rounded to float32.
//  3. the fractional part of that float32 is returned.
//
// Complexity: O(1).
func Rand(seed int) float32 {
	x := float32(math.Sin(float64(float32(seed))*SinMultiplier) * ScaleFactor)

	return x - float32(math.Floor(float64(x)))
}
