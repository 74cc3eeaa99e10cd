package spectral

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextPowerOfTwo(t *testing.T) {
	assert.Equal(t, 1, NextPowerOfTwo(1))
	assert.Equal(t, 2, NextPowerOfTwo(2))
	assert.Equal(t, 8, NextPowerOfTwo(5))
	assert.Equal(t, 8, NextPowerOfTwo(8))
	assert.Equal(t, 16384, NextPowerOfTwo(9000))
}

func TestTransformEmptyFrame(t *testing.T) {
	spectrum := NewTransform().Compute(nil)
	assert.Equal(t, 0, spectrum.Bins())
	assert.Equal(t, 0, spectrum.DominantBin())
}

func TestTransformBinCountIsHalfPaddedLength(t *testing.T) {
	frame := make([]float64, 1000) // pads to 1024
	spectrum := NewTransform().Compute(frame)
	assert.Equal(t, 512, spectrum.Bins())
	require.Len(t, spectrum.Real, 512)
	require.Len(t, spectrum.Imag, 512)
}

func TestTransformRecoversSineFrequency(t *testing.T) {
	const (
		sampleRate = 8000
		frameLen   = 1024
		freq       = 250.0 // exactly bin 32 at this rate and length
	)

	frame := make([]float64, frameLen)
	for i := range frame {
		frame[i] = math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
	}

	spectrum := NewTransform().Compute(frame)
	bin := spectrum.DominantBin()

	binFreq := float64(bin) * sampleRate / frameLen
	resolution := float64(sampleRate) / frameLen
	assert.InDelta(t, freq, binFreq, resolution,
		"dominant bin must map back to the input frequency within one bin")
}

func TestTransformMagnitudeMatchesDirectSum(t *testing.T) {
	// The fast transform must agree with the textbook DFT sum
	frame := []float64{0.5, -0.25, 0.75, -1.0, 0.1, 0.0, -0.3, 0.9}
	spectrum := NewTransform().Compute(frame)

	n := len(frame)
	for k := 0; k < n/2; k++ {
		var re, im float64
		for j := 0; j < n; j++ {
			angle := 2 * math.Pi * float64(k) * float64(j) / float64(n)
			re += frame[j] * math.Cos(angle)
			im -= frame[j] * math.Sin(angle)
		}
		assert.InDelta(t, re, spectrum.Real[k], 1e-9)
		assert.InDelta(t, im, spectrum.Imag[k], 1e-9)
		assert.InDelta(t, math.Hypot(re, im), spectrum.Magnitude[k], 1e-9)
	}
}
