// Package sm implements FPS-R Stacked Modulo: a stateless generator whose
// output holds a pseudo-random value for a rolled number of frames, then
// jumps to a new one.
//
// 🚀 How it works
//
//	Three stages, each feeding the next:
//	  1. Duration roll — the frame is bucketed into reseed windows of
//	     ReseedInterval frames; hashing the window start (offset by
//	     SeedInner) rolls a hold duration in [MinHold, MaxHold).
//	  2. State stabilisation — (SeedOuter + frame) is collapsed by modulo
//	     onto the start of its hold window, yielding an integer that stays
//	     constant for holdDuration consecutive frames.
//	  3. Output — the held integer is hashed to a float32 in [0,1).
//
// ✨ Key properties:
//   - Stateless and pure: Value(f, opt) is a function of its arguments only
//   - Random access: any frame, any order, negative frames included
//   - Total: every divisor is clamped to ≥1; no input can fail
//   - MinHold > MaxHold is not validated — the arithmetic degenerates but
//     still returns a value; ordering the bounds is the caller's job
//
// Modulo convention: all frame reductions use flooring modulo (result in
// [0, n)), so hold and reseed windows stay contiguous across frame 0.
// Truncating modulo would flip window boundaries for negative frames.
//
// ⚙️ Usage:
//
//	import "github.com/patwooky/fpsr/sm"
//
//	opt := sm.DefaultOptions()
//	v := sm.Value(frame, opt)          // held value for this frame
//	if sm.Changed(frame, opt) {        // did it jump since frame-1?
//	  retarget()
//	}
//
// Complexity: O(1) per call, zero allocations.
package sm
