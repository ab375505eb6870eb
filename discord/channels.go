package discord

import (
	"context"
	"fmt"

	"github.com/Willfwalker/Discord-Bot/types"
	"github.com/bwmarrin/discordgo"
)

// CreateVoiceChannel creates a voice channel in the guild.
func (s *Session) CreateVoiceChannel(ctx context.Context, guildID string, spec types.ChannelSpec) (types.Channel, error) {
	c, err := s.dg.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name:      spec.Name,
		Type:      discordgo.ChannelTypeGuildVoice,
		ParentID:  spec.ParentID,
		UserLimit: spec.UserLimit,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return types.Channel{}, fmt.Errorf("failed to create voice channel %q: %w", spec.Name, err)
	}

	return toChannel(c), nil
}

// MoveMember moves a connected member into a voice channel.
func (s *Session) MoveMember(ctx context.Context, guildID, userID, channelID string) error {
	if err := s.dg.GuildMemberMove(guildID, userID, &channelID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to move member %s to channel %s: %w", userID, channelID, err)
	}

	return nil
}

// DeleteChannel deletes a channel.
func (s *Session) DeleteChannel(ctx context.Context, channelID string) error {
	if _, err := s.dg.ChannelDelete(channelID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to delete channel %s: %w", channelID, err)
	}

	return nil
}

// ChannelOccupancy counts the cached voice states in a channel.
func (s *Session) ChannelOccupancy(_ context.Context, guildID, channelID string) (int, error) {
	states, err := s.voiceStates(guildID)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, vs := range states {
		if vs.ChannelID == channelID {
			n++
		}
	}

	return n, nil
}

// Reply answers a message in its channel.
func (s *Session) Reply(ctx context.Context, channelID, messageID, text string) error {
	_, err := s.dg.ChannelMessageSendReply(channelID, text, &discordgo.MessageReference{
		MessageID: messageID,
		ChannelID: channelID,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to reply in channel %s: %w", channelID, err)
	}

	return nil
}

// Send posts plain text.
func (s *Session) Send(ctx context.Context, channelID, text string) error {
	if _, err := s.dg.ChannelMessageSend(channelID, text, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send to channel %s: %w", channelID, err)
	}

	return nil
}

// SendMessage posts a rich message as embeds, one Discord message per embed.
// Messages with more fields than one embed can hold continue in follow-up
// messages.
func (s *Session) SendMessage(ctx context.Context, channelID string, msg types.Message) error {
	embeds := toEmbeds(msg)
	for i, embed := range embeds {
		if _, err := s.dg.ChannelMessageSendEmbed(channelID, embed, discordgo.WithContext(ctx)); err != nil {
			return fmt.Errorf("failed to send embed %d/%d to channel %s: %w", i+1, len(embeds), channelID, err)
		}
	}

	return nil
}

// HasRole reports whether the member carries the role.
func (s *Session) HasRole(member types.Member, roleID string) bool {
	return member.HasRole(roleID)
}

// HasPermission reports whether the issuer holds the capability in a channel.
//
// Permissions are computed from the state cache when possible; the guild
// owner and administrators hold every capability.
func (s *Session) HasPermission(ctx context.Context, _, channelID string, issuer types.Member, capability types.Capability) (bool, error) {
	var required int64
	switch capability {
	case types.CapabilityAdministrator:
		required = discordgo.PermissionAdministrator
	default:
		return false, fmt.Errorf("unsupported capability %s", capability)
	}

	perms, err := s.dg.State.UserChannelPermissions(issuer.ID, channelID)
	if err != nil {
		perms, err = s.dg.UserChannelPermissions(issuer.ID, channelID, discordgo.WithContext(ctx))
		if err != nil {
			return false, fmt.Errorf("failed to compute permissions of %s: %w", issuer, err)
		}
	}

	return perms&required == required, nil
}
