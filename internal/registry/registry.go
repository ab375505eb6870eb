// Package registry tracks the pod voice channels created by this bot process.
package registry

import (
	"sort"
	"time"

	"github.com/puzpuzpuz/xsync/v4"
)

// PodChannel is a voice channel created for one pod.
type PodChannel struct {
	ChannelID string
	GuildID   string
	Name      string
	PodIndex  int
	LeaderID  string
	CreatedAt time.Time
}

// Registry is a concurrent set of pod channels keyed by channel ID.
//
// Platform event handlers run on their own goroutines, so every method is
// safe for concurrent use. The registry lives only as long as the process.
type Registry struct {
	channels *xsync.Map[string, PodChannel]
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{channels: xsync.NewMap[string, PodChannel]()}
}

// Track records a newly created pod channel.
func (r *Registry) Track(pc PodChannel) {
	r.channels.Store(pc.ChannelID, pc)
}

// Get returns the pod channel with the given ID.
func (r *Registry) Get(channelID string) (PodChannel, bool) {
	return r.channels.Load(channelID)
}

// Forget removes a channel and returns what was recorded for it.
//
// Only one of several concurrent callers observes ok == true, which makes
// Forget usable as a claim before deleting the channel.
func (r *Registry) Forget(channelID string) (PodChannel, bool) {
	return r.channels.LoadAndDelete(channelID)
}

// Len returns the number of tracked channels.
func (r *Registry) Len() int {
	return r.channels.Size()
}

// Guild returns the tracked channels of a guild ordered by pod index.
func (r *Registry) Guild(guildID string) []PodChannel {
	var out []PodChannel
	r.channels.Range(func(_ string, pc PodChannel) bool {
		if pc.GuildID == guildID {
			out = append(out, pc)
		}

		return true
	})

	sort.Slice(out, func(i, j int) bool {
		if out[i].PodIndex != out[j].PodIndex {
			return out[i].PodIndex < out[j].PodIndex
		}

		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out
}

// CreatedBefore returns the tracked channels of every guild created before cutoff.
func (r *Registry) CreatedBefore(cutoff time.Time) []PodChannel {
	var out []PodChannel
	r.channels.Range(func(_ string, pc PodChannel) bool {
		if pc.CreatedAt.Before(cutoff) {
			out = append(out, pc)
		}

		return true
	})

	return out
}
