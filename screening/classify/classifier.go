package classify

import (
	"math"

	"github.com/Pranavprog/PRANA/logging"
	"github.com/Pranavprog/PRANA/screening/config"
)

// Status is the final screening verdict.
type Status string

const (
	StatusNormal   Status = "normal"
	StatusAbnormal Status = "abnormal"
)

// BreathingType characterizes a normal recording.
type BreathingType string

const (
	BreathingDeep    BreathingType = "deep"
	BreathingSlow    BreathingType = "slow"
	BreathingRegular BreathingType = "regular"
)

// Lung-comfort labels shown to the user, keyed off the stability score.
const (
	ComfortGood           = "Good"
	ComfortModerate       = "Moderate"
	ComfortFair           = "Fair"
	ComfortNeedsAttention = "Needs Attention"
)

// Aggregates is the aggregate feature record the classifier consumes.
type Aggregates struct {
	AvgEnergy       float64
	AvgRMS          float64
	AvgZCR          float64
	AvgDominantFreq float64
	EnergyVariance  float64
	BreathingRate   float64 // breaths per minute
	PeakCount       int
	FrameEnergies   []float64 // per-frame energy, frame order
}

// Result is the classification produced once per run. Immutable.
type Result struct {
	Status         Status        `json:"status"`
	BreathingType  BreathingType `json:"breathingType,omitempty"`
	StabilityScore float64       `json:"stabilityScore"` // 0-100
	LungComfort    string        `json:"lungComfort"`
	Confidence     int           `json:"confidence"` // 0-100
}

// checkOutcome is what one abnormality check reports back.
type checkOutcome struct {
	triggered    bool
	flipsNormal  bool
	event        AbnormalityEvent
	contribution float64
}

// Classifier is a deterministic decision procedure over the aggregate
// feature record. Pure: same aggregates in, same result and ranking out.
type Classifier struct {
	cfg    *config.ClassifierConfig
	logger logging.Logger
}

// NewClassifier creates a classifier with the given thresholds.
func NewClassifier(cfg *config.ClassifierConfig) *Classifier {
	if cfg == nil {
		cfg = config.DefaultClassifierConfig()
	}
	return &Classifier{
		cfg: cfg,
		logger: logging.WithFields(logging.Fields{
			"component": "classifier",
		}),
	}
}

// Classify runs the five abnormality checks in order, populates a fresh
// severity ranking, and produces the final result.
func (c *Classifier) Classify(agg Aggregates) (Result, *SeverityRanking) {
	checks := []func(Aggregates) checkOutcome{
		c.checkZCR,
		c.checkVariance,
		c.checkBreathingRate,
		c.checkSignalQuality,
		c.checkEnergySpikes,
	}

	ranking := NewSeverityRanking()
	isNormal := true
	abnormalityScore := 0.0

	for _, check := range checks {
		outcome := check(agg)
		if !outcome.triggered {
			continue
		}
		if outcome.flipsNormal {
			isNormal = false
		}
		abnormalityScore += outcome.contribution
		ranking.Insert(outcome.event)
	}

	stability := math.Max(0, 100-agg.EnergyVariance*15000)

	abnormal := !isNormal ||
		abnormalityScore >= c.cfg.AbnormalScoreLimit ||
		ranking.Len() > 0

	if abnormal && ranking.Len() == 0 && abnormalityScore > 0 {
		severity := math.Min(100, abnormalityScore)
		ranking.Insert(AbnormalityEvent{
			Type:        AbnormalityIrregular,
			Description: "General breathing irregularity",
			Severity:    severity,
			Percentage:  int(math.Round(severity)),
		})
	}

	result := Result{StabilityScore: stability}

	if abnormal {
		result.Status = StatusAbnormal
		result.Confidence = int(math.Round(math.Min(95, abnormalityScore+35)))
		result.LungComfort = ComfortNeedsAttention
	} else {
		result.Status = StatusNormal
		result.BreathingType = c.breathingType(agg)
		result.Confidence = int(math.Round(math.Max(75, 100-abnormalityScore)))
		switch {
		case stability > 80:
			result.LungComfort = ComfortGood
		case stability > 60:
			result.LungComfort = ComfortModerate
		default:
			result.LungComfort = ComfortFair
		}
	}

	c.logger.Debug("classification complete", logging.Fields{
		"status":            result.Status,
		"abnormality_score": abnormalityScore,
		"events":            ranking.Len(),
	})

	return result, ranking
}

func (c *Classifier) breathingType(agg Aggregates) BreathingType {
	switch {
	case agg.AvgRMS > 0.06 && agg.BreathingRate < 14:
		return BreathingDeep
	case agg.AvgRMS <= 0.06 && agg.BreathingRate < 12:
		return BreathingSlow
	default:
		return BreathingRegular
	}
}

// checkZCR flags high-frequency content consistent with wheezing.
func (c *Classifier) checkZCR(agg Aggregates) checkOutcome {
	if agg.AvgZCR <= c.cfg.MaxNormalZCR {
		return checkOutcome{}
	}

	severity := math.Min(100, (agg.AvgZCR-c.cfg.MaxNormalZCR)/c.cfg.MaxNormalZCR*100)
	return checkOutcome{
		triggered:   true,
		flipsNormal: true,
		event: AbnormalityEvent{
			Type:        AbnormalityWheezing,
			Description: "High-frequency content consistent with wheezing",
			Severity:    severity,
			Percentage:  max(35, int(math.Round(severity))),
		},
		contribution: severity * 0.4,
	}
}

// checkVariance flags unstable breath-to-breath energy.
func (c *Classifier) checkVariance(agg Aggregates) checkOutcome {
	if agg.EnergyVariance <= c.cfg.MaxNormalVariance {
		return checkOutcome{}
	}

	severity := math.Min(100, (agg.EnergyVariance-c.cfg.MaxNormalVariance)/c.cfg.MaxNormalVariance*80)
	return checkOutcome{
		triggered:   true,
		flipsNormal: true,
		event: AbnormalityEvent{
			Type:        AbnormalityIrregular,
			Description: "Irregular breathing energy pattern",
			Severity:    severity,
			Percentage:  max(30, int(math.Round(severity))),
		},
		contribution: severity * 0.35,
	}
}

// checkBreathingRate flags rates outside the resting range. The severity
// formula is asymmetric between too-slow and too-fast.
func (c *Classifier) checkBreathingRate(agg Aggregates) checkOutcome {
	rate := agg.BreathingRate
	if rate >= c.cfg.MinBreathingRate && rate <= c.cfg.MaxBreathingRate {
		return checkOutcome{}
	}

	var severity float64
	var eventType AbnormalityType
	var description string

	if rate < c.cfg.MinBreathingRate {
		severity = math.Min(100, (c.cfg.MinBreathingRate-rate)/c.cfg.MinBreathingRate*100)
		eventType = AbnormalityIrregular
		description = "Abnormally slow breathing rate"
	} else {
		severity = math.Min(100, (rate-c.cfg.MaxBreathingRate)/c.cfg.MaxBreathingRate*100)
		eventType = AbnormalityShortness
		description = "Abnormally rapid breathing rate"
	}

	percentage := int(math.Round(severity))
	percentage = max(25, min(100, percentage))

	return checkOutcome{
		triggered:   true,
		flipsNormal: true,
		event: AbnormalityEvent{
			Type:        eventType,
			Description: description,
			Severity:    severity,
			Percentage:  percentage,
		},
		contribution: severity * 0.3,
	}
}

// checkSignalQuality flags a weak recording. It never sets the isNormal
// flag itself; its enqueued event still surfaces in the report.
func (c *Classifier) checkSignalQuality(agg Aggregates) checkOutcome {
	if agg.AvgRMS >= c.cfg.MinSignalRMS && agg.AvgEnergy >= c.cfg.MinSignalEnergy {
		return checkOutcome{}
	}

	return checkOutcome{
		triggered:   true,
		flipsNormal: false,
		event: AbnormalityEvent{
			Type:        AbnormalityNoise,
			Description: "Weak signal or very shallow breathing",
			Severity:    35,
			Percentage:  35,
		},
		contribution: 15,
	}
}

// checkEnergySpikes counts frames (beyond the 3rd) whose energy jumps past
// SpikeRatio times the previous frame's energy.
func (c *Classifier) checkEnergySpikes(agg Aggregates) checkOutcome {
	spikes := 0
	for i := 3; i < len(agg.FrameEnergies); i++ {
		if agg.FrameEnergies[i] > c.cfg.SpikeRatio*agg.FrameEnergies[i-1] {
			spikes++
		}
	}
	if spikes <= 1 {
		return checkOutcome{}
	}

	severity := math.Min(80, float64(spikes)*20)
	return checkOutcome{
		triggered:   true,
		flipsNormal: true,
		event: AbnormalityEvent{
			Type:        AbnormalityIrregular,
			Description: "Sudden energy spikes between breaths",
			Severity:    severity,
			Percentage:  int(math.Round(severity)),
		},
		contribution: severity * 0.25,
	}
}
