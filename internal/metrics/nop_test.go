package metrics

import (
	"testing"

	"github.com/Willfwalker/Discord-Bot/types"
	"github.com/stretchr/testify/require"
)

func TestNewNop(t *testing.T) {
	metrics := NewNop()

	require.NotNil(t, metrics)
	require.IsType(t, &NopMetrics{}, metrics)
}

func TestNopMetrics_Record(t *testing.T) {
	metrics := NewNop()

	// Should not panic with various inputs
	require.NotPanics(t, func() {
		metrics.RecordStateTransition(types.StateInit, types.StateReady, 1.5)
		metrics.RecordStateTransition(types.State(999), types.State(1000), -1.0)
		metrics.RecordCommand("distribute", "None")
		metrics.RecordCommand("", "")
		metrics.RecordDistribution(3, 10, 0.4)
		metrics.RecordDistribution(0, 0, 0)
		metrics.RecordPodSize(4)
		metrics.RecordChannelCreated(true)
		metrics.RecordChannelDeleted(false)
		metrics.RecordRelocation(false)
	})
}

func BenchmarkNopMetrics_RecordRelocation(b *testing.B) {
	metrics := NewNop()
	for b.Loop() {
		metrics.RecordRelocation(true)
	}
}
