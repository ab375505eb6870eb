// Package metrics provides MetricsCollector implementations.
package metrics

import "github.com/Willfwalker/Discord-Bot/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	bot, err := podbot.NewBot(&cfg, platform, platform, strat, podbot.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// BotMetrics implementation

// RecordStateTransition discards the state transition metric.
func (n *NopMetrics) RecordStateTransition(_ /* from */, _ /* to */ types.State, _ /* duration */ float64) {
	// No-op
}

// RecordCommand discards the command metric.
func (n *NopMetrics) RecordCommand(_ /* command */ string, _ /* outcome */ string) {
	// No-op
}

// DistributionMetrics implementation

// RecordDistribution discards the distribution metric.
func (n *NopMetrics) RecordDistribution(_ /* pods */, _ /* members */ int, _ /* duration */ float64) {
	// No-op
}

// RecordPodSize discards the pod size metric.
func (n *NopMetrics) RecordPodSize(_ /* size */ int) {
	// No-op
}

// ChannelMetrics implementation

// RecordChannelCreated discards the channel creation metric.
func (n *NopMetrics) RecordChannelCreated(_ /* success */ bool) {
	// No-op
}

// RecordChannelDeleted discards the channel deletion metric.
func (n *NopMetrics) RecordChannelDeleted(_ /* success */ bool) {
	// No-op
}

// RecordRelocation discards the relocation metric.
func (n *NopMetrics) RecordRelocation(_ /* success */ bool) {
	// No-op
}
