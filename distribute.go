package podbot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Willfwalker/Discord-Bot/internal/registry"
	"github.com/Willfwalker/Discord-Bot/render"
	"github.com/Willfwalker/Discord-Bot/roster"
	"github.com/Willfwalker/Discord-Bot/types"
)

// Request is one distribution command.
type Request struct {
	GuildID string

	// ChannelID is the text channel the command was issued in; output goes there.
	ChannelID string

	// MessageID is the command message, answered by replies.
	MessageID string

	Issuer Member

	// Scope is the voice channel name. Ignored when ServerWide is set.
	Scope string

	// ServerWide distributes the whole guild roster. No channels are created.
	ServerWide bool
}

// Report describes what a distribution did.
type Report struct {
	// Scope is the resolved voice channel name, or the guild name for server-wide runs.
	Scope string

	ServerWide bool

	Distribution Distribution

	// Channels maps pod index to the voice channel created for it.
	Channels map[int]Channel

	// Relocations holds one result per attempted move, leaders first within each pod.
	Relocations []RelocationResult
}

// FailedRelocations returns the moves that did not succeed.
func (r *Report) FailedRelocations() []RelocationResult {
	var failed []RelocationResult
	for _, res := range r.Relocations {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}

	return failed
}

// Distribute runs one distribution end to end.
//
// The steps are: check the issuer is an administrator, resolve the scope,
// acknowledge, snapshot the roster, resolve the pod lead role, split and
// partition, then (channel scope only, when enabled) create one voice channel
// per pod and move its lead and members into it. The summary is posted to
// req.ChannelID, the event is published and OnDistributed fires.
//
// Failures are returned, not posted; OnCommand renders them. On error the
// report holds what was done before the failure, or is nil if the scope was
// never resolved.
//
// Parameters:
//   - ctx: Context bounding every platform call
//   - req: The command to run
//
// Returns:
//   - *Report: What was distributed, created and moved
//   - error: A sentinel classified by types.KindOf, possibly wrapped
func (b *Bot) Distribute(ctx context.Context, req Request) (*Report, error) {
	started := time.Now()

	allowed, err := b.auth.HasPermission(ctx, req.GuildID, req.ChannelID, req.Issuer, types.CapabilityAdministrator)
	if err != nil {
		return nil, fmt.Errorf("failed to check permissions: %w", err)
	}
	if !allowed {
		return nil, fmt.Errorf("%s lacks %s: %w", req.Issuer, types.CapabilityAdministrator, ErrPermissionDenied)
	}

	var source Channel
	report := &Report{ServerWide: req.ServerWide}
	if req.ServerWide {
		name, err := b.platform.GuildName(ctx, req.GuildID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve guild: %w", err)
		}
		report.Scope = name
	} else {
		name := strings.TrimSpace(req.Scope)
		if name == "" {
			return nil, ErrMissingArgument
		}
		source, err = b.platform.VoiceChannelByName(ctx, req.GuildID, name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve voice channel %q: %w", name, err)
		}
		report.Scope = source.Name
	}

	if err := b.platform.Reply(ctx, req.ChannelID, req.MessageID, render.Progress(report.Scope, req.ServerWide)); err != nil {
		b.logger.Warn("failed to acknowledge command", "channel", req.ChannelID, "error", err)
	}

	var members []Member
	if req.ServerWide {
		members, err = b.platform.GuildMembers(ctx, req.GuildID)
	} else {
		members, err = b.platform.ChannelMembers(ctx, req.GuildID, source.ID)
	}
	if err != nil {
		return report, fmt.Errorf("failed to fetch members of %q: %w", report.Scope, err)
	}
	if len(members) == 0 {
		return report, fmt.Errorf("%q: %w", report.Scope, ErrScopeEmpty)
	}

	role, err := b.platform.RoleByName(ctx, req.GuildID, b.cfg.PodLeadRole)
	if err != nil {
		return report, fmt.Errorf("failed to resolve role %q: %w", b.cfg.PodLeadRole, err)
	}

	leaders, candidates := roster.Split(members, role.ID, b.auth)

	dist, err := b.strategy.Partition(leaders, candidates)
	if err != nil {
		return report, fmt.Errorf("%q: %w", report.Scope, err)
	}
	for _, pod := range dist.Pods {
		b.metrics.RecordPodSize(pod.Size)
	}
	report.Distribution = dist

	if empty := dist.EmptyPods(); empty > 0 {
		b.logger.Warn("pods without members",
			"scope", report.Scope,
			"empty", empty,
			"leaders", len(leaders),
			"candidates", len(candidates),
		)
	}

	b.logger.Info("pods formed",
		"guild", req.GuildID,
		"scope", report.Scope,
		"pods", len(dist.Pods),
		"members", dist.TotalMembers,
		"sizes", dist.Sizes(),
	)

	if !req.ServerWide && b.cfg.CreateChannels {
		if err := b.populateChannels(ctx, req.GuildID, source, report); err != nil {
			return report, err
		}
	}

	b.metrics.RecordDistribution(len(dist.Pods), dist.TotalMembers, time.Since(started).Seconds())
	b.finish(ctx, req, report)

	return report, nil
}

// populateChannels creates one voice channel per pod next to source and moves
// each pod into it, pod by pod. A creation failure stops the run; move
// failures are recorded in the report.
func (b *Bot) populateChannels(ctx context.Context, guildID string, source Channel, report *Report) error {
	report.Channels = make(map[int]Channel, len(report.Distribution.Pods))

	for _, pod := range report.Distribution.Pods {
		spec := types.ChannelSpec{
			Name:      fmt.Sprintf("%s %d", b.cfg.PodChannelPrefix, pod.Index),
			ParentID:  source.ParentID,
			UserLimit: pod.Size + 1,
		}

		ch, err := b.platform.CreateVoiceChannel(ctx, guildID, spec)
		b.metrics.RecordChannelCreated(err == nil)
		if err != nil {
			return fmt.Errorf("%w %q: %w", ErrChannelCreateFailed, spec.Name, err)
		}

		report.Channels[pod.Index] = ch
		b.channels.Track(registry.PodChannel{
			ChannelID: ch.ID,
			GuildID:   guildID,
			Name:      ch.Name,
			PodIndex:  pod.Index,
			LeaderID:  pod.Leader.ID,
			CreatedAt: time.Now(),
		})
		b.logger.Debug("pod channel created", "channel", ch.ID, "name", ch.Name, "userLimit", spec.UserLimit)

		batch := make([]Member, 0, pod.Size+1)
		batch = append(batch, pod.Leader)
		batch = append(batch, pod.Members...)
		report.Relocations = append(report.Relocations, b.relocate(ctx, guildID, ch.ID, batch)...)
	}

	return nil
}

// finish posts the summary, publishes the event and fires OnDistributed.
// None of these can fail the command.
func (b *Bot) finish(ctx context.Context, req Request, report *Report) {
	channelNames := make(map[int]string, len(report.Channels))
	channelIDs := make(map[int]string, len(report.Channels))
	for idx, ch := range report.Channels {
		channelNames[idx] = ch.Name
		channelIDs[idx] = ch.ID
	}

	failed := report.FailedRelocations()
	failedIDs := make([]string, len(failed))
	for i, res := range failed {
		failedIDs[i] = res.Member.ID
	}

	summary := render.Distribution(report.Distribution, render.Summary{
		Scope:             report.Scope,
		ServerWide:        report.ServerWide,
		ChannelNames:      channelNames,
		FailedRelocations: len(failed),
		FieldLimit:        b.cfg.FieldLimit,
	})
	if err := b.platform.SendMessage(ctx, req.ChannelID, summary); err != nil {
		b.logger.Error("failed to send distribution summary", "channel", req.ChannelID, "error", err)
	}

	ev := DistributionEvent{
		GuildID:           req.GuildID,
		Scope:             report.Scope,
		IssuerID:          req.Issuer.ID,
		Distribution:      report.Distribution,
		ChannelIDs:        channelIDs,
		FailedRelocations: failedIDs,
		At:                time.Now().UTC(),
	}
	if err := b.publisher.PublishDistribution(ctx, ev); err != nil {
		b.logger.Warn("failed to publish distribution event", "guild", req.GuildID, "error", err)
	}

	if err := b.hooks.OnDistributed(ctx, ev); err != nil {
		b.logger.Error("distributed hook error", "guild", req.GuildID, "error", err)
	}
}
