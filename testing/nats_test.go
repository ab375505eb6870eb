package testing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartEmbeddedNATS(t *testing.T) {
	ns, nc := StartEmbeddedNATS(t)
	require.True(t, nc.IsConnected())
	require.Equal(t, ns.ClientURL(), nc.ConnectedUrl())

	t.Run("round trip", func(t *testing.T) {
		sub, err := nc.SubscribeSync("podbot.distribution.*")
		require.NoError(t, err)
		require.NoError(t, nc.Publish("podbot.distribution.guild-1", []byte(`{"scope":"Lounge"}`)))

		msg, err := sub.NextMsg(time.Second)
		require.NoError(t, err)
		require.Equal(t, "podbot.distribution.guild-1", msg.Subject)
		require.JSONEq(t, `{"scope":"Lounge"}`, string(msg.Data))
	})

	t.Run("isolated servers", func(t *testing.T) {
		other, _ := StartEmbeddedNATS(t)
		require.NotEqual(t, ns.ClientURL(), other.ClientURL())
	})
}
