package podbot

import "github.com/Willfwalker/Discord-Bot/types"

// Re-export types from the types package.
//
// The types subpackage holds the definitions so that internal packages and
// platform adapters can depend on it without importing the root package,
// while users still get podbot.Member, podbot.Logger and so on.
type (
	State             = types.State
	Member            = types.Member
	Pod               = types.Pod
	Distribution      = types.Distribution
	Invocation        = types.Invocation
	Message           = types.Message
	Channel           = types.Channel
	DistributionEvent = types.DistributionEvent
	FailureKind       = types.FailureKind
)

// Re-export interfaces from the types package for convenience.
type (
	Platform         = types.Platform
	Authorizer       = types.Authorizer
	PodStrategy      = types.PodStrategy
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
	Hooks            = types.Hooks
	EventPublisher   = types.EventPublisher
)

// Re-export State constants from the types package.
const (
	StateInit       = types.StateInit
	StateConnecting = types.StateConnecting
	StateReady      = types.StateReady
	StateShutdown   = types.StateShutdown
)
