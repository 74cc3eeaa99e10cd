package filters

import "math"

// DefaultNoiseGateThreshold is the amplitude below which samples are
// considered background noise in normalized recordings.
const DefaultNoiseGateThreshold = 0.02

// NoiseGate zeroes samples whose absolute value falls below a fixed
// threshold. A simple non-adaptive denoiser applied before windowing.
type NoiseGate struct {
	threshold float64
}

// NewNoiseGate creates a noise gate with the given amplitude threshold.
func NewNoiseGate(threshold float64) *NoiseGate {
	return &NoiseGate{threshold: threshold}
}

// Apply returns a gated copy of the signal: samples with |x| below the
// threshold become 0, all others pass through unchanged.
func (g *NoiseGate) Apply(signal []float64) []float64 {
	gated := make([]float64, len(signal))
	for i, sample := range signal {
		if math.Abs(sample) >= g.threshold {
			gated[i] = sample
		}
	}
	return gated
}

// Threshold returns the gate's amplitude threshold.
func (g *NoiseGate) Threshold() float64 {
	return g.threshold
}
