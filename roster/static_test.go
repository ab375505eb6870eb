package roster

import (
	"testing"

	"github.com/Willfwalker/Discord-Bot/types"
	"github.com/stretchr/testify/require"
)

func TestStatic(t *testing.T) {
	members := []types.Member{{ID: "u1"}, {ID: "u2"}, {ID: "u3"}}

	t.Run("tracks voice connections", func(t *testing.T) {
		r := NewStatic(members)
		r.Connect("lounge", "u1", "u3")

		require.Equal(t, []string{"u1", "u3"}, ids(r.ChannelMembers("lounge")))
		require.Equal(t, 2, r.Occupancy("lounge"))
		require.Equal(t, "lounge", r.VoiceChannel("u1"))
		require.Equal(t, "", r.VoiceChannel("u2"))
	})

	t.Run("moves and disconnects", func(t *testing.T) {
		r := NewStatic(members)
		r.Connect("lounge", "u1", "u2")
		r.Connect("pod-1", "u1")

		require.Equal(t, 1, r.Occupancy("lounge"))
		require.Equal(t, "pod-1", r.Disconnect("u1"))
		require.Equal(t, 0, r.Occupancy("pod-1"))
	})

	t.Run("does not modify original slice", func(t *testing.T) {
		src := []types.Member{{ID: "u1", Label: "one"}}
		r := NewStatic(src)
		src[0].Label = "changed"

		m, ok := r.Member("u1")
		require.True(t, ok)
		require.Equal(t, "one", m.Label)

		out := r.GuildMembers()
		out[0].Label = "mutated"
		m, _ = r.Member("u1")
		require.Equal(t, "one", m.Label)
	})

	t.Run("update drops voice state of removed members", func(t *testing.T) {
		r := NewStatic(members)
		r.Connect("lounge", "u1", "u2")
		r.Update([]types.Member{{ID: "u2"}})

		require.Equal(t, 1, r.Occupancy("lounge"))
		_, ok := r.Member("u1")
		require.False(t, ok)
	})
}
