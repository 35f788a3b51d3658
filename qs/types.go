// Package qs defines the option bundle, resolved parameter bundle and the
// fixed ratio constants of the Quantised Switching generator.
package qs

// Fixed ratios of the algorithm. They carry the visual signature of every
// QS sequence; changing any of them changes the output bits callers depend on.
const (
	// Stream2FreqMultDefault replaces a negative Stream2FreqMult.
	Stream2FreqMultDefault = 3.7

	// SwitchDurRatio derives a missing StreamSwitchDur from the base period.
	SwitchDurRatio = 0.76
	// Stream1QuantDurRatio derives a missing Stream1QuantDur from the base period.
	Stream1QuantDurRatio = 1.2
	// Stream2QuantDurRatio derives a missing Stream2QuantDur from the base period.
	Stream2QuantDurRatio = 0.9

	// Stream2QuantRatioMin scales QuantLevels[0] for stream 2's low half-cycle.
	Stream2QuantRatioMin = 1.24
	// Stream2QuantRatioMax scales QuantLevels[1] for stream 2's high half-cycle.
	Stream2QuantRatioMax = 0.66
)

// finalHashScale converts the stepped stream value into an integer seed for
// the final hash.
const finalHashScale = 100000.0

// Canonical FPS-R:QS defaults.
const (
	defBaseWaveFreq    = 0.012
	defStream2FreqMult = 3.1
	defQuantLevelLo    = 12
	defQuantLevelHi    = 22
	defStream1Offset   = 0
	defStream2Offset   = 76
	defStreamSwitchDur = 24
	defStream1QuantDur = 16
	defStream2QuantDur = 20
)

// Options are the tuning parameters of a Quantised Switching instance.
//
// Sentinels opt into derived defaults, resolved by Resolve at the start of
// every evaluation:
//   - Stream2FreqMult < 0        → Stream2FreqMultDefault
//   - StreamSwitchDur < 1        → floor((1/BaseWaveFreq)·SwitchDurRatio)
//   - Stream1QuantDur < 1        → floor((1/BaseWaveFreq)·Stream1QuantDurRatio)
//   - Stream2QuantDur < 1        → floor((1/BaseWaveFreq)·Stream2QuantDurRatio)
//
// All three durations are clamped to ≥1 after resolution regardless of
// origin. QuantLevels ordering is not validated; degenerate bounds degrade
// the staircase but never fail.
type Options struct {
	// BaseWaveFreq is the frequency of stream 1's sine, in radians per frame.
	BaseWaveFreq float32
	// Stream2FreqMult is the ratio of stream 2's frequency to stream 1's.
	Stream2FreqMult float32
	// QuantLevels holds the {min, max} quantisation step counts shared by
	// both streams (stream 2 rescales them, see package doc).
	QuantLevels [2]int
	// StreamsOffset holds the per-stream frame offsets {stream 1, stream 2}.
	StreamsOffset [2]int
	// StreamSwitchDur is the full period of the stream switch cycle, in frames.
	StreamSwitchDur int
	// Stream1QuantDur is the full period of stream 1's level cycle, in frames.
	Stream1QuantDur int
	// Stream2QuantDur is the full period of stream 2's level cycle, in frames.
	Stream2QuantDur int
}

// DefaultOptions returns the canonical parameter tuple
// {BaseWaveFreq: 0.012, Stream2FreqMult: 3.1, QuantLevels: {12, 22},
// StreamsOffset: {0, 76}, StreamSwitchDur: 24, Stream1QuantDur: 16,
// Stream2QuantDur: 20}.
func DefaultOptions() Options {
	return Options{
		BaseWaveFreq:    defBaseWaveFreq,
		Stream2FreqMult: defStream2FreqMult,
		QuantLevels:     [2]int{defQuantLevelLo, defQuantLevelHi},
		StreamsOffset:   [2]int{defStream1Offset, defStream2Offset},
		StreamSwitchDur: defStreamSwitchDur,
		Stream1QuantDur: defStream1QuantDur,
		Stream2QuantDur: defStream2QuantDur,
	}
}

// Params is the fully-populated form of Options: every sentinel resolved,
// every duration clamped to ≥1. Produced by Resolve; Value works off Params
// only, so caller-supplied Options are never mutated.
type Params struct {
	BaseWaveFreq    float32
	Stream2FreqMult float32
	QuantLevels     [2]int
	StreamsOffset   [2]int
	StreamSwitchDur int
	Stream1QuantDur int
	Stream2QuantDur int
}
