package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Methods are called from platform event goroutines and must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	BotMetrics
	DistributionMetrics
	ChannelMetrics
}

// BotMetrics defines metrics for bot lifecycle and command handling.
type BotMetrics interface {
	// RecordStateTransition records a bot state transition event.
	//
	// Parameters:
	//   - from, to: Lifecycle states
	//   - duration: Seconds spent in the previous state
	RecordStateTransition(from, to State, duration float64)

	// RecordCommand records a handled command.
	//
	// Parameters:
	//   - command: Canonical command name
	//   - outcome: FailureKind name ("None" on success)
	RecordCommand(command string, outcome string)
}

// DistributionMetrics defines metrics for partition runs.
type DistributionMetrics interface {
	// RecordDistribution records a successful partition run.
	//
	// Parameters:
	//   - pods: Number of pods created
	//   - members: Number of candidates distributed
	//   - duration: Seconds spent in the whole command (including relocation)
	RecordDistribution(pods, members int, duration float64)

	// RecordPodSize observes the size of a single pod.
	RecordPodSize(size int)
}

// ChannelMetrics defines metrics for pod channel lifecycle operations.
type ChannelMetrics interface {
	// RecordChannelCreated records a pod channel creation attempt.
	RecordChannelCreated(success bool)

	// RecordChannelDeleted records a pod channel deletion attempt.
	RecordChannelDeleted(success bool)

	// RecordRelocation records a single member move attempt.
	RecordRelocation(success bool)
}
