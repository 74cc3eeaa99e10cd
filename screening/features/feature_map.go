package features

import (
	"maps"
	"time"
)

// Fixed feature keys. The map never carries keys outside this set.
const (
	KeyAvgEnergy       = "avgEnergy"
	KeyAvgRMS          = "avgRMS"
	KeyAvgZCR          = "avgZCR"
	KeyAvgDominantFreq = "avgDominantFreq"
	KeyEnergyVariance  = "energyVariance"
	KeyBreathingRate   = "breathingRate"
	KeyPeakCount       = "peakCount"
	KeyDuration        = "duration"
	KeyWindowFeatures  = "windowFeatures"
)

// Snapshot is an immutable, capture-time-tagged copy of the feature map.
type Snapshot struct {
	CapturedAt time.Time      `json:"capturedAt"`
	Values     map[string]any `json:"values"`
}

// FeatureMap maps feature names to aggregate scalars or to the ordered
// FrameFeatures sequence. It also retains an append-only history of
// snapshots for audit and debugging; snapshots never alias the live map.
type FeatureMap struct {
	values  map[string]any
	history []Snapshot
}

// NewFeatureMap creates an empty feature map.
func NewFeatureMap() *FeatureMap {
	return &FeatureMap{
		values: make(map[string]any),
	}
}

// Set stores a value under the given key.
func (fm *FeatureMap) Set(key string, value any) {
	fm.values[key] = value
}

// Get returns the value stored under the key.
func (fm *FeatureMap) Get(key string) (any, bool) {
	v, ok := fm.values[key]
	return v, ok
}

// Values returns a copy of the current mapping.
func (fm *FeatureMap) Values() map[string]any {
	out := make(map[string]any, len(fm.values))
	maps.Copy(out, fm.values)
	return out
}

// Snapshot copies the current mapping, appends it to the history tagged
// with the capture time, and returns it.
func (fm *FeatureMap) Snapshot() Snapshot {
	snap := Snapshot{
		CapturedAt: time.Now(),
		Values:     fm.Values(),
	}
	fm.history = append(fm.history, snap)
	return snap
}

// History returns the ordered snapshot log, oldest first.
func (fm *FeatureMap) History() []Snapshot {
	out := make([]Snapshot, len(fm.history))
	copy(out, fm.history)
	return out
}
