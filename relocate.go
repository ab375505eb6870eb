package podbot

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RelocationResult is the outcome of moving one member into a pod channel.
type RelocationResult struct {
	Member    Member
	ChannelID string

	// Err wraps ErrRelocationFailed when the move failed.
	Err error
}

// relocate moves members into channelID on a best-effort basis.
//
// The first member (the pod lead) is always moved first. The rest are moved
// sequentially, or with up to RelocationConcurrency moves in flight. Results
// are returned in input order and a failure never stops the batch.
func (b *Bot) relocate(ctx context.Context, guildID, channelID string, members []Member) []RelocationResult {
	results := make([]RelocationResult, len(members))
	if len(members) == 0 {
		return results
	}

	move := func(i int) {
		m := members[i]
		err := b.platform.MoveMember(ctx, guildID, m.ID, channelID)
		b.metrics.RecordRelocation(err == nil)
		if err != nil {
			b.logger.Warn("failed to move member", "member", m.String(), "channel", channelID, "error", err)
			err = fmt.Errorf("%w %s: %w", ErrRelocationFailed, m, err)
		}
		results[i] = RelocationResult{Member: m, ChannelID: channelID, Err: err}
	}

	move(0)

	if b.cfg.RelocationConcurrency <= 1 {
		for i := 1; i < len(members); i++ {
			move(i)
		}

		return results
	}

	var g errgroup.Group
	g.SetLimit(b.cfg.RelocationConcurrency)
	for i := 1; i < len(members); i++ {
		g.Go(func() error {
			move(i)
			return nil
		})
	}
	_ = g.Wait()

	return results
}
