package discord

import (
	"context"
	"testing"

	"github.com/Willfwalker/Discord-Bot/types"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

// cachedSession returns a session whose state cache holds one guild with a
// voice channel, a text channel and three members.
func cachedSession(t *testing.T) *Session {
	t.Helper()

	s, err := New("token")
	require.NoError(t, err)

	user := func(id string) *discordgo.User {
		return &discordgo.User{ID: id, Username: id, Discriminator: "0"}
	}

	guild := &discordgo.Guild{
		ID:      "guild-1",
		Name:    "Test Guild",
		OwnerID: "owner",
		Roles: []*discordgo.Role{
			{ID: "guild-1", Name: "@everyone", Permissions: discordgo.PermissionViewChannel},
			{ID: "admins", Name: "Admins", Permissions: discordgo.PermissionAdministrator},
			{ID: "leads", Name: "Pod Lead"},
		},
		Channels: []*discordgo.Channel{
			{ID: "voice-1", GuildID: "guild-1", Name: "Lounge", Type: discordgo.ChannelTypeGuildVoice, ParentID: "cat"},
			{ID: "text-1", GuildID: "guild-1", Name: "general", Type: discordgo.ChannelTypeGuildText},
		},
		Members: []*discordgo.Member{
			{GuildID: "guild-1", User: user("owner")},
			{GuildID: "guild-1", User: user("admin"), Roles: []string{"admins"}},
			{GuildID: "guild-1", User: user("lead"), Roles: []string{"leads"}},
			{GuildID: "guild-1", User: user("member")},
		},
		VoiceStates: []*discordgo.VoiceState{
			{GuildID: "guild-1", UserID: "lead", ChannelID: "voice-1"},
			{GuildID: "guild-1", UserID: "member", ChannelID: "voice-1", Member: &discordgo.Member{User: user("member")}},
			{GuildID: "guild-1", UserID: "admin", ChannelID: "other"},
		},
	}
	require.NoError(t, s.dg.State.GuildAdd(guild))

	return s
}

func TestCachedDirectory(t *testing.T) {
	ctx := context.Background()
	s := cachedSession(t)

	t.Run("guild name", func(t *testing.T) {
		name, err := s.GuildName(ctx, "guild-1")
		require.NoError(t, err)
		require.Equal(t, "Test Guild", name)
	})

	t.Run("channel", func(t *testing.T) {
		c, err := s.Channel(ctx, "voice-1")
		require.NoError(t, err)
		require.Equal(t, types.Channel{ID: "voice-1", GuildID: "guild-1", Name: "Lounge", ParentID: "cat", Voice: true}, c)
	})

	t.Run("channel members", func(t *testing.T) {
		members, err := s.ChannelMembers(ctx, "guild-1", "voice-1")
		require.NoError(t, err)
		require.Equal(t, []types.Member{
			{ID: "lead", Label: "lead", Roles: []string{"leads"}},
			{ID: "member", Label: "member"},
		}, members)
	})

	t.Run("occupancy", func(t *testing.T) {
		n, err := s.ChannelOccupancy(ctx, "guild-1", "voice-1")
		require.NoError(t, err)
		require.Equal(t, 2, n)

		n, err = s.ChannelOccupancy(ctx, "guild-1", "empty")
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("unknown guild", func(t *testing.T) {
		_, err := s.ChannelOccupancy(ctx, "guild-2", "voice-1")
		require.Error(t, err)
	})
}

func TestHasPermission(t *testing.T) {
	ctx := context.Background()
	s := cachedSession(t)

	tests := []struct {
		user string
		want bool
	}{
		{"owner", true},
		{"admin", true},
		{"lead", false},
		{"member", false},
	}

	for _, tt := range tests {
		t.Run(tt.user, func(t *testing.T) {
			ok, err := s.HasPermission(ctx, "guild-1", "text-1", types.Member{ID: tt.user}, types.CapabilityAdministrator)
			require.NoError(t, err)
			require.Equal(t, tt.want, ok)
		})
	}

	t.Run("unsupported capability", func(t *testing.T) {
		_, err := s.HasPermission(ctx, "guild-1", "text-1", types.Member{ID: "owner"}, types.Capability(99))
		require.Error(t, err)
	})
}

func TestHasRole(t *testing.T) {
	s := cachedSession(t)

	require.True(t, s.HasRole(types.Member{Roles: []string{"leads"}}, "leads"))
	require.False(t, s.HasRole(types.Member{Roles: []string{"leads"}}, "admins"))
}

func TestChannelMembers_CurrentRoles(t *testing.T) {
	s := cachedSession(t)

	// The voice state copy predates the role grant.
	promoted := &discordgo.User{ID: "promoted", Username: "promoted", Discriminator: "0"}
	require.NoError(t, s.dg.State.GuildAdd(&discordgo.Guild{
		ID:   "guild-2",
		Name: "Second Guild",
		Members: []*discordgo.Member{
			{GuildID: "guild-2", User: promoted, Roles: []string{"leads"}},
		},
		VoiceStates: []*discordgo.VoiceState{
			{GuildID: "guild-2", UserID: "promoted", ChannelID: "voice-2", Member: &discordgo.Member{User: promoted}},
			{GuildID: "guild-2", UserID: "guest", ChannelID: "voice-2", Member: &discordgo.Member{
				User: &discordgo.User{ID: "guest", Username: "guest", Discriminator: "0"}, Roles: []string{"visitor"},
			}},
		},
	}))

	members, err := s.ChannelMembers(context.Background(), "guild-2", "voice-2")
	require.NoError(t, err)
	require.Equal(t, []types.Member{
		{ID: "promoted", Label: "promoted", Roles: []string{"leads"}},
		{ID: "guest", Label: "guest", Roles: []string{"visitor"}},
	}, members)
}
