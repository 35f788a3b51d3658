package qs_test

import (
	"math"
	"testing"

	"github.com/patwooky/fpsr/qs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolve_DerivesDefaults verifies sentinel resolution at
// BaseWaveFreq=0.012 with all three durations and the multiplier left as
// sentinels: each duration must equal floor((1/BaseWaveFreq)·ratio) with the
// single-precision base, and the multiplier must become 3.7.
func TestResolve_DerivesDefaults(t *testing.T) {
	opt := qs.Options{
		BaseWaveFreq:    0.012,
		Stream2FreqMult: -1,
		QuantLevels:     [2]int{12, 22},
		StreamsOffset:   [2]int{0, 76},
	}
	p := qs.Resolve(opt)

	period := 1.0 / float64(float32(0.012))
	assert.Equal(t, int(math.Floor(period*qs.SwitchDurRatio)), p.StreamSwitchDur)
	assert.Equal(t, int(math.Floor(period*qs.Stream1QuantDurRatio)), p.Stream1QuantDur)
	assert.Equal(t, int(math.Floor(period*qs.Stream2QuantDurRatio)), p.Stream2QuantDur)

	// Pin the concrete frame counts as well.
	assert.Equal(t, 63, p.StreamSwitchDur)
	assert.Equal(t, 99, p.Stream1QuantDur)
	assert.Equal(t, 74, p.Stream2QuantDur)

	assert.Equal(t, float32(3.7), p.Stream2FreqMult)
}

// TestResolve_KeepsExplicitValues verifies that non-sentinel parameters pass
// through untouched.
func TestResolve_KeepsExplicitValues(t *testing.T) {
	opt := qs.DefaultOptions()
	p := qs.Resolve(opt)

	assert.Equal(t, 24, p.StreamSwitchDur)
	assert.Equal(t, 16, p.Stream1QuantDur)
	assert.Equal(t, 20, p.Stream2QuantDur)
	assert.Equal(t, float32(3.1), p.Stream2FreqMult)
	assert.Equal(t, opt.QuantLevels, p.QuantLevels)
	assert.Equal(t, opt.StreamsOffset, p.StreamsOffset)
}

// TestResolve_ClampsToOne covers the degenerate derivations: a base
// frequency so high the derived duration floors to 0, and a zero base
// frequency whose derivation is non-finite. Both must clamp to 1.
func TestResolve_ClampsToOne(t *testing.T) {
	fast := qs.Resolve(qs.Options{BaseWaveFreq: 1000})
	assert.Equal(t, 1, fast.StreamSwitchDur)
	assert.Equal(t, 1, fast.Stream1QuantDur)
	assert.Equal(t, 1, fast.Stream2QuantDur)

	zero := qs.Resolve(qs.Options{BaseWaveFreq: 0})
	assert.Equal(t, 1, zero.StreamSwitchDur)
	assert.Equal(t, 1, zero.Stream1QuantDur)
	assert.Equal(t, 1, zero.Stream2QuantDur)
}

// TestValue_Deterministic verifies bit-identical output for repeated calls.
func TestValue_Deterministic(t *testing.T) {
	opt := qs.DefaultOptions()
	for frame := -50; frame <= 50; frame++ {
		first := qs.Value(frame, opt)
		assert.Equal(t, first, qs.Value(frame, opt), "frame %d drifted", frame)
	}
}

// TestValue_StreamSwitchBoundary verifies which stream drives the output on
// each half of a StreamSwitchDur=24 cycle. Moving the idle stream's frame
// offset must not change the output; moving the driving stream's offset
// must change it somewhere in the half-cycle.
func TestValue_StreamSwitchBoundary(t *testing.T) {
	opt := qs.DefaultOptions() // StreamSwitchDur: 24

	movedStream1 := opt
	movedStream1.StreamsOffset[0] = 731
	movedStream2 := opt
	movedStream2.StreamsOffset[1] = 999

	stream1Visible := false
	for f := 0; f < 12; f++ {
		require.Equal(t, qs.Value(f, opt), qs.Value(f, movedStream2),
			"frame %d in the first half-cycle reacted to stream 2", f)
		if qs.Value(f, opt) != qs.Value(f, movedStream1) {
			stream1Visible = true
		}
	}
	assert.True(t, stream1Visible, "stream 1 never drove the first half-cycle")

	stream2Visible := false
	for f := 12; f < 24; f++ {
		require.Equal(t, qs.Value(f, opt), qs.Value(f, movedStream1),
			"frame %d in the second half-cycle reacted to stream 1", f)
		if qs.Value(f, opt) != qs.Value(f, movedStream2) {
			stream2Visible = true
		}
	}
	assert.True(t, stream2Visible, "stream 2 never drove the second half-cycle")
}

// TestValue_ClampSafety abuses the degenerate corners — zero base frequency
// with sentinel durations, negative durations, zero Options — and demands a
// finite in-range result for every frame.
func TestValue_ClampSafety(t *testing.T) {
	cases := []struct {
		name string
		opt  qs.Options
	}{
		{"zero base freq, sentinel durations", qs.Options{BaseWaveFreq: 0, Stream2FreqMult: -1, QuantLevels: [2]int{12, 22}, StreamsOffset: [2]int{0, 76}}},
		{"negative durations", qs.Options{BaseWaveFreq: 0.012, Stream2FreqMult: 3.1, QuantLevels: [2]int{12, 22}, StreamSwitchDur: -5, Stream1QuantDur: -5, Stream2QuantDur: -5}},
		{"zero quant levels", qs.Options{BaseWaveFreq: 0.012, QuantLevels: [2]int{0, 0}, StreamSwitchDur: 24, Stream1QuantDur: 16, Stream2QuantDur: 20}},
		{"zero options", qs.Options{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for frame := -30; frame <= 30; frame++ {
				v := qs.Value(frame, tc.opt)
				require.False(t, math.IsNaN(float64(v)), "NaN at frame %d", frame)
				require.False(t, math.IsInf(float64(v), 0), "Inf at frame %d", frame)
				require.GreaterOrEqual(t, v, float32(0), "negative at frame %d", frame)
				require.Less(t, v, float32(1), "reached 1.0 at frame %d", frame)
			}
		})
	}
}

// TestValue_Golden pins the first 16 frames of the canonical tuple plus
// frame 103. A run on any machine or process must reproduce these
// exact bits.
func TestValue_Golden(t *testing.T) {
	opt := qs.DefaultOptions()

	golden := []float32{
		0, 0, 0, 0, 0, 0, 0,
		0.205078125, 0.986328125, 0.986328125, 0.986328125, 0.986328125,
		0.5078125, 0.40625, 0.40625, 0.435546875,
	}
	for f, want := range golden {
		assert.Equal(t, want, qs.Value(f, opt), "frame %d", f)
	}

	assert.Equal(t, float32(0.8720703125), qs.Value(103, opt))
}

// TestChanged_DetectsSteps verifies the probe on a known step (frames 6→7)
// and a known plateau (frames 102→103).
func TestChanged_DetectsSteps(t *testing.T) {
	opt := qs.DefaultOptions()

	assert.True(t, qs.Changed(7, opt), "frame 7 steps to a new level")
	assert.False(t, qs.Changed(103, opt), "frame 103 continues its plateau")
}
