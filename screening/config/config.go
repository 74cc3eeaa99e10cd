package config

// AnalysisConfig holds the parameters of the sliding-window analysis.
type AnalysisConfig struct {
	// Windowing
	SampleRate int `json:"sample_rate"`
	WindowSize int `json:"window_size"` // samples per analysis frame
	HopSize    int `json:"hop_size"`    // samples between frame starts

	// Denoising
	NoiseGateThreshold float64 `json:"noise_gate_threshold"`
}

// DefaultAnalysisConfig returns the analysis parameters for a recording at
// the given sample rate: half-second windows with 50% overlap.
func DefaultAnalysisConfig(sampleRate int) *AnalysisConfig {
	windowSize := sampleRate / 2
	return &AnalysisConfig{
		SampleRate:         sampleRate,
		WindowSize:         windowSize,
		HopSize:            windowSize / 2,
		NoiseGateThreshold: 0.02,
	}
}

// ClassifierConfig holds the thresholds of the abnormality checks.
// The defaults are the calibrated screening contract; they are exposed as
// configuration for experimentation, not expected to change in production.
type ClassifierConfig struct {
	MaxNormalZCR       float64 `json:"max_normal_zcr"`
	MaxNormalVariance  float64 `json:"max_normal_variance"`
	MinBreathingRate   float64 `json:"min_breathing_rate"` // breaths per minute
	MaxBreathingRate   float64 `json:"max_breathing_rate"`
	MinSignalRMS       float64 `json:"min_signal_rms"`
	MinSignalEnergy    float64 `json:"min_signal_energy"`
	SpikeRatio         float64 `json:"spike_ratio"`
	AbnormalScoreLimit float64 `json:"abnormal_score_limit"`
}

// DefaultClassifierConfig returns the screening thresholds.
func DefaultClassifierConfig() *ClassifierConfig {
	return &ClassifierConfig{
		MaxNormalZCR:       0.08,
		MaxNormalVariance:  0.0005,
		MinBreathingRate:   10,
		MaxBreathingRate:   18,
		MinSignalRMS:       0.008,
		MinSignalEnergy:    0.00005,
		SpikeRatio:         3.0,
		AbnormalScoreLimit: 20,
	}
}
