package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoiseGateZeroesQuietSamples(t *testing.T) {
	gate := NewNoiseGate(0.02)

	in := []float64{0.5, 0.019, -0.019, -0.5, 0.0, 0.02, -0.02}
	out := gate.Apply(in)

	assert.Equal(t, []float64{0.5, 0, 0, -0.5, 0, 0.02, -0.02}, out)
}

func TestNoiseGateDoesNotMutateInput(t *testing.T) {
	gate := NewNoiseGate(0.02)

	in := []float64{0.01, 0.3}
	_ = gate.Apply(in)

	assert.Equal(t, []float64{0.01, 0.3}, in)
}
