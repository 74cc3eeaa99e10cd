package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pranavprog/PRANA/screening/config"
)

func testConfig(windowSize, hopSize int) *config.AnalysisConfig {
	return &config.AnalysisConfig{
		SampleRate:         8000,
		WindowSize:         windowSize,
		HopSize:            hopSize,
		NoiseGateThreshold: 0.02,
	}
}

func TestPipelineFrameOffsets(t *testing.T) {
	signal := make([]float64, 11)
	for i := range signal {
		signal[i] = 0.5
	}

	frames := NewPipeline(testConfig(4, 2)).Run(signal)

	require.Len(t, frames, 4, "trailing partial frame is dropped, not padded")
	for i, frame := range frames {
		assert.Equal(t, i*2, frame.StartOffset)
	}
}

func TestPipelineTooShortYieldsNoFrames(t *testing.T) {
	signal := make([]float64, 3)

	frames := NewPipeline(testConfig(4, 2)).Run(signal)

	assert.Empty(t, frames, "shorter than one window means insufficient data")
}

func TestPipelineAppliesNoiseGate(t *testing.T) {
	// Everything below the gate threshold: the frames must come out silent
	signal := make([]float64, 16)
	for i := range signal {
		signal[i] = 0.01
	}

	frames := NewPipeline(testConfig(8, 4)).Run(signal)

	require.NotEmpty(t, frames)
	for _, frame := range frames {
		assert.Equal(t, 0.0, frame.Energy)
		assert.Equal(t, 0.0, frame.RMS)
	}
}

func TestPipelinePreservesFrameOrder(t *testing.T) {
	signal := make([]float64, 64)
	for i := range signal {
		signal[i] = 0.1 + float64(i)*0.01
	}

	frames := NewPipeline(testConfig(16, 8)).Run(signal)

	require.Len(t, frames, 7)
	for i := 1; i < len(frames); i++ {
		assert.Greater(t, frames[i].StartOffset, frames[i-1].StartOffset)
		assert.Greater(t, frames[i].Energy, frames[i-1].Energy, "rising ramp means rising per-frame energy")
	}
}
