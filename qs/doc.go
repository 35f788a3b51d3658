// Package qs implements FPS-R Quantised Switching: a stateless generator
// that flickers between two staircase-quantised sine streams and hashes the
// result into glitch-like motion.
//
// 🚀 How it works
//
//	Five stages per call:
//	  A. Default derivation — any duration left below 1 is derived from the
//	     base wave period (1/BaseWaveFreq) by a fixed per-duration ratio;
//	     everything is then clamped to ≥1.
//	  B. Level selection — each stream picks its quantisation level by which
//	     half of its quant-duration cycle the frame falls in. Stream 2 scales
//	     the shared level bounds by fixed ratios to decorrelate its character.
//	  C. Synthesis — each stream evaluates floor(sin·level)/level: a sine
//	     snapped to level discrete steps.
//	  D. Switch — the first half of the switch cycle is driven by stream 1,
//	     the second half by stream 2.
//	  E. Hash — the stepped value is scaled, truncated to an integer and
//	     hashed, so the output does not read as a sine wave.
//
// ✨ Key properties:
//   - Stateless and pure; random access over all frames, any order
//   - Sentinel convention: Stream2FreqMult < 0 and any duration < 1 opt
//     into derived defaults — resolution happens once per call into a
//     fully-populated Params bundle (see Resolve), never by mutating input
//   - Total: every divisor is clamped to ≥1; no input can fail
//   - BaseWaveFreq == 0 with sentinel durations is degenerate but safe: the
//     derivations collapse to the 1-frame clamp and a finite value returns
//
// Modulo convention: flooring modulo for all frame reductions, matching
// package sm, so cycles stay contiguous across frame 0.
//
// ⚙️ Usage:
//
//	import "github.com/patwooky/fpsr/qs"
//
//	opt := qs.DefaultOptions()
//	v := qs.Value(frame, opt)
//	p := qs.Resolve(opt) // inspect the resolved durations/multiplier
//
// Complexity: O(1) per call, zero allocations.
package qs
