// Package fpsr is a stateless toolkit for frame-persistent pseudo-random
// values — deterministic "glitchy" motion signals for procedural animation.
//
// 🚀 What is FPS-R?
//
//	Frame-Persistent Stateless Randomization: given an integer frame and a
//	handful of numeric tuning parameters, produce a float32 in [0,1) that
//	holds steady for a span of frames and then jumps. No history, no seed
//	files, no shared state — every call is a full recomputation, and the
//	same (frame, parameters) pair always yields the same bits.
//
// ✨ Why choose fpsr?
//
//   - Stateless by construction — safe from any number of goroutines
//   - Deterministic across platforms, runs and machines
//   - Random access in time: evaluate frame 9000 without frames 0..8999
//   - Two characters of motion: held jumps (sm) and quantised glitch (qs)
//
// Everything is organized under three subpackages:
//
//	fpsrand/ — the portable integer→[0,1) hash both generators share
//	sm/      — Stacked Modulo: hash-rolled hold durations, held values
//	qs/      — Quantised Switching: two stepped sine streams on a switch timer
//
// Quick sketch of a Stacked Modulo signal over time:
//
//	value
//	  │ ────┐
//	  │     │   ┌──────┐
//	  │     └───┘      └───
//	  └────────────────────── frame
//
// A demo binary lives in cmd/fpsr-vis (build with -tags ebiten) that scrolls
// both generators through a live strip chart.
//
//	go get github.com/patwooky/fpsr
package fpsr
