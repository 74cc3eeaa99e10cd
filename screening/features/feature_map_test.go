package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureMapSetGet(t *testing.T) {
	fm := NewFeatureMap()
	fm.Set(KeyAvgRMS, 0.07)

	v, ok := fm.Get(KeyAvgRMS)
	require.True(t, ok)
	assert.Equal(t, 0.07, v)

	_, ok = fm.Get(KeyBreathingRate)
	assert.False(t, ok)
}

func TestSnapshotDoesNotAliasLiveMap(t *testing.T) {
	fm := NewFeatureMap()
	fm.Set(KeyBreathingRate, 12.0)

	snap := fm.Snapshot()
	fm.Set(KeyBreathingRate, 60.0)

	assert.Equal(t, 12.0, snap.Values[KeyBreathingRate],
		"historical snapshot must not see later writes")
}

func TestHistoryIsAppendOnlyAndOrdered(t *testing.T) {
	fm := NewFeatureMap()

	fm.Set(KeyPeakCount, 1)
	first := fm.Snapshot()
	fm.Set(KeyPeakCount, 2)
	second := fm.Snapshot()

	history := fm.History()
	require.Len(t, history, 2)
	assert.Equal(t, 1, history[0].Values[KeyPeakCount])
	assert.Equal(t, 2, history[1].Values[KeyPeakCount])
	assert.False(t, second.CapturedAt.Before(first.CapturedAt))
}
