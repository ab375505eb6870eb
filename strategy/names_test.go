package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		want any
	}{
		{"", &BalancedShuffle{}},
		{"shuffle", &BalancedShuffle{}},
		{" Shuffle ", &BalancedShuffle{}},
		{"roundrobin", &RoundRobin{}},
		{"RoundRobin", &RoundRobin{}},
	}

	for _, tt := range tests {
		t.Run("name="+tt.name, func(t *testing.T) {
			s, err := New(tt.name)
			require.NoError(t, err)
			require.IsType(t, tt.want, s)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		s, err := New("weighted")
		require.ErrorIs(t, err, ErrUnknownStrategy)
		require.Nil(t, s)
	})
}

func TestNames(t *testing.T) {
	for _, name := range Names() {
		_, err := New(name)
		require.NoError(t, err)
	}
}
