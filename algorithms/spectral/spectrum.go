package spectral

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// Spectrum holds the frequency-domain representation of one analysis frame:
// for each of the N/2 bins, the real part, imaginary part, and magnitude.
// Ephemeral - recomputed per frame, not retained past feature extraction.
type Spectrum struct {
	Real      []float64
	Imag      []float64
	Magnitude []float64
}

// Bins returns the number of frequency bins.
func (s *Spectrum) Bins() int {
	return len(s.Magnitude)
}

// DominantBin returns the index of the largest-magnitude bin, excluding
// bin 0 (DC). Returns 0 when the spectrum has fewer than two bins.
func (s *Spectrum) DominantBin() int {
	best := 0
	bestMag := 0.0
	for k := 1; k < len(s.Magnitude); k++ {
		if s.Magnitude[k] > bestMag {
			bestMag = s.Magnitude[k]
			best = k
		}
	}
	return best
}

// Transform converts time-domain frames into frequency-magnitude spectra.
type Transform struct {
	// Stateless - the FFT library carries no per-call state
}

// NewTransform creates a new spectral transform.
func NewTransform() *Transform {
	return &Transform{}
}

// Compute zero-pads the frame to the next power of two P >= len(frame),
// computes the discrete Fourier transform, and returns the first P/2 bins.
// An empty frame degenerates to an empty spectrum.
func (t *Transform) Compute(frame []float64) *Spectrum {
	if len(frame) == 0 {
		return &Spectrum{}
	}

	padded := NextPowerOfTwo(len(frame))
	input := make([]float64, padded)
	copy(input, frame)

	bins := fft.FFTReal(input)

	half := padded / 2
	spectrum := &Spectrum{
		Real:      make([]float64, half),
		Imag:      make([]float64, half),
		Magnitude: make([]float64, half),
	}
	for k := 0; k < half; k++ {
		spectrum.Real[k] = real(bins[k])
		spectrum.Imag[k] = imag(bins[k])
		spectrum.Magnitude[k] = cmplx.Abs(bins[k])
	}

	return spectrum
}

// NextPowerOfTwo returns the smallest power of two >= n (n must be > 0).
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << int(math.Ceil(math.Log2(float64(n))))
}
