package discord

import (
	"context"
	"fmt"

	"github.com/Willfwalker/Discord-Bot/types"
	"github.com/bwmarrin/discordgo"
)

// guildMembersPage is the largest page the member list endpoint returns.
const guildMembersPage = 1000

// GuildName returns the guild name from the state cache, or the API when the
// guild is not cached.
func (s *Session) GuildName(ctx context.Context, guildID string) (string, error) {
	if g, err := s.dg.State.Guild(guildID); err == nil && g.Name != "" {
		return g.Name, nil
	}

	g, err := s.dg.Guild(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to fetch guild %s: %w", guildID, err)
	}

	return g.Name, nil
}

// Channel returns a channel from the state cache, or the API when absent.
func (s *Session) Channel(ctx context.Context, channelID string) (types.Channel, error) {
	if c, err := s.dg.State.Channel(channelID); err == nil {
		return toChannel(c), nil
	}

	c, err := s.dg.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return types.Channel{}, fmt.Errorf("failed to fetch channel %s: %w", channelID, err)
	}

	return toChannel(c), nil
}

// VoiceChannelByName finds a guild voice channel by case-insensitive name.
func (s *Session) VoiceChannelByName(ctx context.Context, guildID, name string) (types.Channel, error) {
	channels, err := s.dg.GuildChannels(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return types.Channel{}, fmt.Errorf("failed to list channels of guild %s: %w", guildID, err)
	}

	c, ok := findVoiceChannel(channels, name)
	if !ok {
		return types.Channel{}, fmt.Errorf("%w: %q", types.ErrScopeNotFound, name)
	}

	return toChannel(c), nil
}

// RoleByName finds a guild role by exact name.
func (s *Session) RoleByName(ctx context.Context, guildID, name string) (types.Role, error) {
	roles, err := s.dg.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return types.Role{}, fmt.Errorf("failed to list roles of guild %s: %w", guildID, err)
	}

	r, ok := findRole(roles, name)
	if !ok {
		return types.Role{}, fmt.Errorf("%w: %q", types.ErrRoleNotFound, name)
	}

	return types.Role{ID: r.ID, Name: r.Name}, nil
}

// ChannelMembers returns the members connected to a voice channel.
//
// Voice states come from the state cache. Each member is resolved from the
// member cache, then the voice state payload, then the API.
func (s *Session) ChannelMembers(ctx context.Context, guildID, channelID string) ([]types.Member, error) {
	states, err := s.voiceStates(guildID)
	if err != nil {
		return nil, err
	}

	members := make([]types.Member, 0, len(states))
	for _, vs := range states {
		if vs.ChannelID != channelID {
			continue
		}

		m, err := s.member(ctx, guildID, vs)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, nil
}

// GuildMembers returns the full guild roster, paging through the API.
func (s *Session) GuildMembers(ctx context.Context, guildID string) ([]types.Member, error) {
	var (
		members []types.Member
		after   string
	)

	for {
		page, err := s.dg.GuildMembers(guildID, after, guildMembersPage, discordgo.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to list members of guild %s: %w", guildID, err)
		}

		for _, m := range page {
			if m.User == nil {
				continue
			}
			members = append(members, toMember(m, nil))
			after = m.User.ID
		}

		if len(page) < guildMembersPage {
			return members, nil
		}
	}
}

// voiceStates copies the cached voice states of a guild.
func (s *Session) voiceStates(guildID string) ([]discordgo.VoiceState, error) {
	g, err := s.dg.State.Guild(guildID)
	if err != nil {
		return nil, fmt.Errorf("guild %s is not cached: %w", guildID, err)
	}

	s.dg.State.RLock()
	defer s.dg.State.RUnlock()

	states := make([]discordgo.VoiceState, 0, len(g.VoiceStates))
	for _, vs := range g.VoiceStates {
		if vs != nil {
			states = append(states, *vs)
		}
	}

	return states, nil
}

// member resolves the member behind a voice state. The guild member cache is
// preferred: the copy inside a voice state keeps the roles held when the
// member joined voice.
func (s *Session) member(ctx context.Context, guildID string, vs discordgo.VoiceState) (types.Member, error) {
	if m, err := s.dg.State.Member(guildID, vs.UserID); err == nil && m.User != nil {
		return toMember(m, nil), nil
	}

	if vs.Member != nil && vs.Member.User != nil {
		return toMember(vs.Member, nil), nil
	}

	m, err := s.dg.GuildMember(guildID, vs.UserID, discordgo.WithContext(ctx))
	if err != nil {
		return types.Member{}, fmt.Errorf("failed to fetch member %s: %w", vs.UserID, err)
	}

	return toMember(m, nil), nil
}
