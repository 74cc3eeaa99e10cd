package features

import (
	"github.com/Pranavprog/PRANA/algorithms/filters"
	"github.com/Pranavprog/PRANA/logging"
	"github.com/Pranavprog/PRANA/screening/config"
)

// Pipeline segments a full recording into overlapping frames and drives the
// frame extractor over each. Output preserves frame order. An empty result
// means the recording was shorter than one analysis window - callers must
// treat that as insufficient data, not as zero breathing rate.
type Pipeline struct {
	cfg       *config.AnalysisConfig
	gate      *filters.NoiseGate
	extractor *FrameExtractor
	logger    logging.Logger
}

// NewPipeline creates a sliding-window pipeline for the given configuration.
func NewPipeline(cfg *config.AnalysisConfig) *Pipeline {
	return &Pipeline{
		cfg:       cfg,
		gate:      filters.NewNoiseGate(cfg.NoiseGateThreshold),
		extractor: NewFrameExtractor(cfg.SampleRate),
		logger: logging.WithFields(logging.Fields{
			"component": "feature_pipeline",
		}),
	}
}

// Run gates the signal, then extracts features for frames starting at
// 0, hop, 2*hop, ... while start+windowSize <= len(signal). A trailing
// partial frame is dropped, not padded.
func (p *Pipeline) Run(signal []float64) []FrameFeatures {
	if len(signal) < p.cfg.WindowSize || p.cfg.WindowSize <= 0 || p.cfg.HopSize <= 0 {
		p.logger.Debug("recording shorter than one analysis window", logging.Fields{
			"samples":     len(signal),
			"window_size": p.cfg.WindowSize,
		})
		return []FrameFeatures{}
	}

	gated := p.gate.Apply(signal)

	numFrames := (len(gated)-p.cfg.WindowSize)/p.cfg.HopSize + 1
	frames := make([]FrameFeatures, 0, numFrames)

	for start := 0; start+p.cfg.WindowSize <= len(gated); start += p.cfg.HopSize {
		frame := gated[start : start+p.cfg.WindowSize]
		frames = append(frames, p.extractor.Extract(frame, start))
	}

	p.logger.Debug("feature extraction complete", logging.Fields{
		"frames":   len(frames),
		"hop_size": p.cfg.HopSize,
	})

	return frames
}
