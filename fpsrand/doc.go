// Package fpsrand provides the portable deterministic hash shared by the
// FPS-R generators: a pure mapping from an integer seed to a float32 in [0,1).
//
// Goals:
//   - Determinism: same seed ⇒ identical bits on every platform and run.
//   - Statelessness: no hidden source, no call-order dependence, no globals.
//   - Safety: total over all int seeds; no panics, no errors, no logging.
//
// The hash is the classic sine-fract construction. Its multiplier and scale
// constants carry the visual signature of every FPS-R sequence and must not
// be changed: callers depend on the exact output bits, not merely on "some
// random-looking value".
//
// ⚙️ Usage:
//
//	import "github.com/patwooky/fpsr/fpsrand"
//
//	v := fpsrand.Rand(12345) // 0.4794922, every time, everywhere
//
// Complexity: O(1) per call, zero allocations.
package fpsrand
