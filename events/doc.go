// Package events publishes distribution results to external consumers.
//
// The package includes:
//
//   - NATSPublisher: JSON events on core NATS subjects
//   - NopPublisher: Discards events (default)
//
// Subjects follow "<prefix>.distribution.<guildID>", so consumers can
// subscribe to "<prefix>.distribution.>" for every guild.
package events
