package features

import (
	"math"

	"github.com/Pranavprog/PRANA/algorithms/spectral"
)

// FrameFeatures holds the scalar features of one sliding-window frame.
// Immutable once produced; the pipeline emits one per frame, in frame order.
type FrameFeatures struct {
	StartOffset  int     `json:"startOffset"` // sample offset of the frame start
	Timestamp    float64 `json:"timestamp"`   // seconds from recording start
	Energy       float64 `json:"energy"`      // mean of squared samples
	RMS          float64 `json:"rms"`
	ZCR          float64 `json:"zcr"` // fraction of adjacent sign changes
	DominantFreq float64 `json:"dominantFreq"`

	// Full magnitude spectrum of the frame
	MagnitudeSpectrum []float64 `json:"magnitudeSpectrum,omitempty"`
}

// FrameExtractor computes per-frame features using the spectral transform.
type FrameExtractor struct {
	sampleRate int
	transform  *spectral.Transform
}

// NewFrameExtractor creates an extractor for recordings at the given rate.
func NewFrameExtractor(sampleRate int) *FrameExtractor {
	return &FrameExtractor{
		sampleRate: sampleRate,
		transform:  spectral.NewTransform(),
	}
}

// Extract computes the features of one frame starting at the given sample
// offset. Degenerate frames (length <= 1) yield a zero ZCR by convention.
func (fe *FrameExtractor) Extract(frame []float64, startOffset int) FrameFeatures {
	ff := FrameFeatures{
		StartOffset: startOffset,
		Timestamp:   float64(startOffset) / float64(fe.sampleRate),
	}

	if len(frame) > 0 {
		sumSquares := 0.0
		for _, s := range frame {
			sumSquares += s * s
		}
		ff.Energy = sumSquares / float64(len(frame))
		ff.RMS = math.Sqrt(ff.Energy)
	}

	ff.ZCR = zeroCrossingRate(frame)

	spectrum := fe.transform.Compute(frame)
	ff.MagnitudeSpectrum = spectrum.Magnitude
	if bin := spectrum.DominantBin(); bin > 0 && len(frame) > 0 {
		// Bin-to-Hz scaling is tied to the un-padded frame length, not the
		// padded transform length. Behavioral contract; do not "correct".
		ff.DominantFreq = float64(bin) * float64(fe.sampleRate) / float64(len(frame)*2)
	}

	return ff
}

// zeroCrossingRate counts transitions where one sample is >= 0 and the
// previous is < 0, or vice versa, normalized by len-1.
func zeroCrossingRate(frame []float64) float64 {
	if len(frame) < 2 {
		return 0.0
	}

	crossings := 0
	for i := 1; i < len(frame); i++ {
		if (frame[i-1] >= 0 && frame[i] < 0) || (frame[i-1] < 0 && frame[i] >= 0) {
			crossings++
		}
	}

	return float64(crossings) / float64(len(frame)-1)
}
