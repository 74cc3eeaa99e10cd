// Package screening runs the offline breathing-audio analysis pipeline:
// noise gate, sliding-window feature extraction, breath-cycle peak
// detection, and threshold classification over one bounded recording.
package screening

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/Pranavprog/PRANA/algorithms/common"
	"github.com/Pranavprog/PRANA/algorithms/temporal"
	"github.com/Pranavprog/PRANA/logging"
	"github.com/Pranavprog/PRANA/screening/classify"
	"github.com/Pranavprog/PRANA/screening/config"
	"github.com/Pranavprog/PRANA/screening/features"
)

// ErrInsufficientData is returned when the recording is shorter than one
// analysis window and no frame can be extracted.
var ErrInsufficientData = errors.New("recording shorter than one analysis window")

// DefaultBreathingRate is reported when peak detection is inconclusive
// (one peak or none). An explicit fallback, not a computed value.
const DefaultBreathingRate = 12.0

// Report is the structured result consumed by downstream presentation.
type Report struct {
	Features       features.Snapshot           `json:"features"`
	Classification classify.Result             `json:"classification"`
	Abnormalities  []classify.AbnormalityEvent `json:"abnormalities"`
	WindowFeatures []features.FrameFeatures    `json:"windowFeatures"`
	Peaks          []temporal.Peak             `json:"peaks"`
}

// Screener analyzes one bounded recording at a time. It keeps an in-memory,
// append-only log of feature snapshots for the session; nothing persists
// across sessions.
type Screener struct {
	classifier *classify.Classifier
	featureLog *features.FeatureMap
	logger     logging.Logger
}

// NewScreener creates a screener. A nil config uses the default thresholds.
func NewScreener(cfg *config.ClassifierConfig) *Screener {
	return &Screener{
		classifier: classify.NewClassifier(cfg),
		featureLog: features.NewFeatureMap(),
		logger: logging.WithFields(logging.Fields{
			"component": "screener",
		}),
	}
}

// Analyze runs the full pipeline over a finite mono recording and returns
// the report. Deterministic and side-effect-free given its input, apart
// from the session snapshot log.
func (s *Screener) Analyze(samples []float64, sampleRate int) (*Report, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate: %d", sampleRate)
	}

	cfg := config.DefaultAnalysisConfig(sampleRate)
	pipeline := features.NewPipeline(cfg)

	s.logger.Debug("starting analysis", logging.Fields{
		"samples":     len(samples),
		"sample_rate": sampleRate,
		"window_size": cfg.WindowSize,
	})

	windowFeatures := pipeline.Run(samples)
	if len(windowFeatures) == 0 {
		return nil, ErrInsufficientData
	}

	envelope := make([]float64, len(windowFeatures))
	energies := make([]float64, len(windowFeatures))
	zcrs := make([]float64, len(windowFeatures))
	domFreqs := make([]float64, len(windowFeatures))
	for i, wf := range windowFeatures {
		envelope[i] = wf.RMS
		energies[i] = wf.Energy
		zcrs[i] = wf.ZCR
		domFreqs[i] = wf.DominantFreq
	}

	// A breath peak must rise above the recording's average frame amplitude
	detector := temporal.NewPeakDetector(stat.Mean(envelope, nil))
	peaks := detector.Detect(envelope)

	duration := float64(len(samples)) / float64(sampleRate)
	breathingRate := DefaultBreathingRate
	if len(peaks) > 1 {
		breathingRate = float64(len(peaks)) / duration * 60
	}

	agg := classify.Aggregates{
		AvgEnergy:       stat.Mean(energies, nil),
		AvgRMS:          stat.Mean(envelope, nil),
		AvgZCR:          stat.Mean(zcrs, nil),
		AvgDominantFreq: stat.Mean(domFreqs, nil),
		// Population variance: the stability constants are calibrated to
		// sum of squared deviations over N
		EnergyVariance: stat.Moment(2, energies, nil),
		BreathingRate:  breathingRate,
		PeakCount:      len(peaks),
		FrameEnergies:  energies,
	}

	s.featureLog.Set(features.KeyAvgEnergy, agg.AvgEnergy)
	s.featureLog.Set(features.KeyAvgRMS, agg.AvgRMS)
	s.featureLog.Set(features.KeyAvgZCR, agg.AvgZCR)
	s.featureLog.Set(features.KeyAvgDominantFreq, agg.AvgDominantFreq)
	s.featureLog.Set(features.KeyEnergyVariance, agg.EnergyVariance)
	s.featureLog.Set(features.KeyBreathingRate, agg.BreathingRate)
	s.featureLog.Set(features.KeyPeakCount, agg.PeakCount)
	s.featureLog.Set(features.KeyDuration, duration)
	s.featureLog.Set(features.KeyWindowFeatures, windowFeatures)
	snapshot := s.featureLog.Snapshot()

	result, ranking := s.classifier.Classify(agg)

	s.logger.Info("screening complete", logging.Fields{
		"status":         result.Status,
		"breathing_rate": breathingRate,
		"peaks":          len(peaks),
		"frames":         len(windowFeatures),
	})

	return &Report{
		Features:       snapshot,
		Classification: result,
		Abnormalities:  ranking.Events(),
		WindowFeatures: windowFeatures,
		Peaks:          peaks,
	}, nil
}

// AnalyzeBuffer snapshots a capture ring buffer and analyzes its contents.
func (s *Screener) AnalyzeBuffer(buf *common.RingBuffer, sampleRate int) (*Report, error) {
	return s.Analyze(buf.Samples(), sampleRate)
}

// History returns the session's ordered snapshot log, oldest first.
func (s *Screener) History() []features.Snapshot {
	return s.featureLog.History()
}
