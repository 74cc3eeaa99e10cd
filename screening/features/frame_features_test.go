package features

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZCRAlternatingSignal(t *testing.T) {
	frame := make([]float64, 64)
	for i := range frame {
		if i%2 == 0 {
			frame[i] = 1.0
		} else {
			frame[i] = -1.0
		}
	}

	ff := NewFrameExtractor(16000).Extract(frame, 0)
	assert.Equal(t, 1.0, ff.ZCR, "strictly alternating signal crosses on every step")
}

func TestZCRConstantSignal(t *testing.T) {
	frame := make([]float64, 64)
	for i := range frame {
		frame[i] = 0.5
	}

	ff := NewFrameExtractor(16000).Extract(frame, 0)
	assert.Equal(t, 0.0, ff.ZCR)
}

func TestZCRDegenerateFrames(t *testing.T) {
	extractor := NewFrameExtractor(16000)

	assert.Equal(t, 0.0, extractor.Extract(nil, 0).ZCR)
	assert.Equal(t, 0.0, extractor.Extract([]float64{0.3}, 0).ZCR)
}

func TestRMSIsSquareRootOfEnergy(t *testing.T) {
	frame := []float64{0.1, -0.4, 0.25, 0.9, -0.7, 0.05}

	ff := NewFrameExtractor(16000).Extract(frame, 0)

	assert.InDelta(t, math.Sqrt(ff.Energy), ff.RMS, 1e-12)
	assert.Greater(t, ff.Energy, 0.0)
}

func TestEnergyOfSilenceIsZero(t *testing.T) {
	ff := NewFrameExtractor(16000).Extract(make([]float64, 128), 0)

	assert.Equal(t, 0.0, ff.Energy)
	assert.Equal(t, 0.0, ff.RMS)
	assert.Equal(t, 0.0, ff.DominantFreq, "silent spectrum has no dominant bin")
}

func TestDominantFreqUsesUnpaddedFrameLengthScaling(t *testing.T) {
	const (
		sampleRate = 8000
		frameLen   = 1024
		freq       = 250.0 // exactly bin 32 of the padded transform
	)

	frame := make([]float64, frameLen)
	for i := range frame {
		frame[i] = math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
	}

	ff := NewFrameExtractor(sampleRate).Extract(frame, 0)

	// bin * sampleRate / (frameLen * 2), NOT the physical bin frequency
	want := 32.0 * sampleRate / (frameLen * 2)
	assert.InDelta(t, want, ff.DominantFreq, 1e-9)
}

func TestExtractSetsOffsetAndTimestamp(t *testing.T) {
	frame := []float64{0.1, 0.2, 0.3, 0.4}

	ff := NewFrameExtractor(8000).Extract(frame, 4000)

	assert.Equal(t, 4000, ff.StartOffset)
	assert.InDelta(t, 0.5, ff.Timestamp, 1e-12)
	assert.NotEmpty(t, ff.MagnitudeSpectrum)
}
