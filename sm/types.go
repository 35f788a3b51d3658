// Package sm defines the option bundle for the Stacked Modulo generator.
package sm

// Canonical FPS-R:SM defaults. They produce a
// mid-tempo hold pattern at common animation frame rates.
const (
	defMinHold        = 16  // probable minimum held period, in frames
	defMaxHold        = 24  // maximum held period before cycling
	defReseedInterval = 9   // cadence of the hold-duration reroll
	defSeedInner      = -41 // decorrelates the duration roll between instances
	defSeedOuter      = 23  // decorrelates the held value between instances
)

// Options are the tuning parameters of a Stacked Modulo instance.
//
// Fields:
//   - MinHold, MaxHold        — hold-duration bounds in frames. The rolled
//     duration is floor(MinHold + r·(MaxHold-MinHold)) for r in [0,1),
//     clamped to ≥1. Ordering is not validated (see package doc).
//   - ReseedInterval          — frames between duration rerolls; clamped to ≥1.
//   - SeedInner, SeedOuter    — integer offsets that let several instances
//     share one frame stream without correlating: SeedInner shifts the
//     duration roll, SeedOuter shifts the held value.
//
// The zero value is usable but degenerate (every duration clamps to 1);
// start from DefaultOptions and adjust.
type Options struct {
	MinHold        int
	MaxHold        int
	ReseedInterval int
	SeedInner      int
	SeedOuter      int
}

// DefaultOptions returns the canonical parameter tuple
// {MinHold: 16, MaxHold: 24, ReseedInterval: 9, SeedInner: -41, SeedOuter: 23}.
func DefaultOptions() Options {
	return Options{
		MinHold:        defMinHold,
		MaxHold:        defMaxHold,
		ReseedInterval: defReseedInterval,
		SeedInner:      defSeedInner,
		SeedOuter:      defSeedOuter,
	}
}
