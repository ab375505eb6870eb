package podbot

import (
	"context"
	"strings"
	"time"
)

// OnVoiceLeave deletes a pod channel once its last member has left.
//
// A channel counts as a pod channel when this bot created it or when its name
// starts with PodChannelPrefix, so channels left over from an earlier process
// are cleaned up too. Deletion failures are logged.
func (b *Bot) OnVoiceLeave(ctx context.Context, guildID, channelID string) {
	opCtx, release, ok := b.acquire(ctx)
	if !ok {
		return
	}
	defer release()

	b.cleanupChannel(opCtx, guildID, channelID)
}

// cleanupChannel deletes channelID if it is an empty pod channel and reports
// whether it was deleted.
func (b *Bot) cleanupChannel(ctx context.Context, guildID, channelID string) bool {
	pc, tracked := b.channels.Get(channelID)
	name := pc.Name
	if !tracked {
		ch, err := b.platform.Channel(ctx, channelID)
		if err != nil {
			b.logger.Debug("skipping cleanup, channel not resolvable", "channel", channelID, "error", err)
			return false
		}
		if !ch.Voice || !strings.HasPrefix(ch.Name, b.cfg.PodChannelPrefix) {
			return false
		}
		name = ch.Name
	}

	occupants, err := b.platform.ChannelOccupancy(ctx, guildID, channelID)
	if err != nil {
		b.logger.Warn("failed to count pod channel members", "channel", name, "error", err)
		return false
	}
	if occupants > 0 {
		return false
	}

	// Another leave event may be deleting the same channel.
	if tracked {
		if _, claimed := b.channels.Forget(channelID); !claimed {
			return false
		}
	}

	err = b.platform.DeleteChannel(ctx, channelID)
	b.metrics.RecordChannelDeleted(err == nil)
	if err != nil {
		b.logger.Error("failed to delete pod channel", "channel", name, "error", err)
		if tracked {
			b.channels.Track(pc)
		}

		return false
	}

	b.logger.Info("deleted empty pod channel", "channel", name, "guild", guildID)

	return true
}

// Sweep deletes every empty pod channel this bot created in a guild and
// returns how many were removed.
func (b *Bot) Sweep(ctx context.Context, guildID string) int {
	opCtx, release, ok := b.acquire(ctx)
	if !ok {
		return 0
	}
	defer release()

	removed := 0
	for _, pc := range b.channels.Guild(guildID) {
		if b.cleanupChannel(opCtx, guildID, pc.ChannelID) {
			removed++
		}
	}

	return removed
}

// sweepLoop periodically deletes empty pod channels that no leave event
// removed, such as channels whose deletion failed or whose moves all failed.
func (b *Bot) sweepLoop(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			b.sweepStale(ctx, now.Add(-b.cfg.OperationTimeout))
		}
	}
}

// sweepStale cleans up the tracked channels of every guild created before
// cutoff and returns how many were deleted.
func (b *Bot) sweepStale(ctx context.Context, cutoff time.Time) int {
	opCtx, cancel := context.WithTimeout(ctx, b.cfg.OperationTimeout)
	defer cancel()

	removed := 0
	for _, pc := range b.channels.CreatedBefore(cutoff) {
		if b.cleanupChannel(opCtx, pc.GuildID, pc.ChannelID) {
			removed++
		}
	}
	if removed > 0 {
		b.logger.Info("swept empty pod channels", "removed", removed)
	}

	return removed
}
