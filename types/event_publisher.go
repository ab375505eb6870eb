package types

import (
	"context"
	"time"
)

// DistributionEvent describes one completed distribution command.
type DistributionEvent struct {
	GuildID string `json:"guildId"`

	// Scope is the voice channel name, or the guild name for server-wide runs.
	Scope string `json:"scope"`

	// IssuerID is the member that issued the command.
	IssuerID string `json:"issuerId"`

	Distribution Distribution `json:"distribution"`

	// ChannelIDs maps pod index to the created voice channel (empty without channels).
	ChannelIDs map[int]string `json:"channelIds,omitempty"`

	// FailedRelocations lists member IDs that could not be moved.
	FailedRelocations []string `json:"failedRelocations,omitempty"`

	At time.Time `json:"at"`
}

// EventPublisher forwards distribution events to an external sink.
//
// Publish failures are logged by the bot and never fail the command.
type EventPublisher interface {
	// PublishDistribution publishes a completed distribution.
	PublishDistribution(ctx context.Context, ev DistributionEvent) error

	// Close releases publisher resources.
	Close() error
}
