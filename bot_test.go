package podbot

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Willfwalker/Discord-Bot/command"
	"github.com/Willfwalker/Discord-Bot/strategy"
	podtest "github.com/Willfwalker/Discord-Bot/testing"
	"github.com/stretchr/testify/require"
)

func TestNewBot_NilSafety(t *testing.T) {
	cfg := DefaultConfig()
	p := podtest.NewFakePlatform(testGuild, nil)

	t.Run("without optional dependencies", func(t *testing.T) {
		bot, err := NewBot(&cfg, p, p, strategy.NewBalancedShuffle())

		require.NoError(t, err)
		require.NotNil(t, bot)

		// Optional fields get safe defaults.
		require.NotNil(t, bot.hooks)
		require.NotNil(t, bot.hooks.OnDistributed)
		require.NotNil(t, bot.metrics)
		require.NotNil(t, bot.logger)
		require.NotNil(t, bot.publisher)
		require.Equal(t, StateInit, bot.State())

		require.NotPanics(t, func() {
			bot.transitionState(context.Background(), StateInit, StateShutdown)
		})
	})

	t.Run("accepts partial hooks", func(t *testing.T) {
		bot, err := NewBot(&cfg, p, p, strategy.NewRoundRobin(), WithHooks(&Hooks{}))

		require.NoError(t, err)
		require.NotNil(t, bot.hooks.OnStateChanged)
	})
}

func TestNewBot_RequiredParameters(t *testing.T) {
	cfg := DefaultConfig()
	p := podtest.NewFakePlatform(testGuild, nil)
	strat := strategy.NewBalancedShuffle()

	t.Run("nil config", func(t *testing.T) {
		bot, err := NewBot(nil, p, p, strat)

		require.ErrorIs(t, err, ErrInvalidConfig)
		require.Nil(t, bot)
	})

	t.Run("nil platform", func(t *testing.T) {
		bot, err := NewBot(&cfg, nil, p, strat)

		require.ErrorIs(t, err, ErrPlatformRequired)
		require.Nil(t, bot)
	})

	t.Run("nil authorizer", func(t *testing.T) {
		bot, err := NewBot(&cfg, p, nil, strat)

		require.ErrorIs(t, err, ErrAuthorizerRequired)
		require.Nil(t, bot)
	})

	t.Run("nil strategy", func(t *testing.T) {
		bot, err := NewBot(&cfg, p, p, nil)

		require.ErrorIs(t, err, ErrStrategyRequired)
		require.Nil(t, bot)
	})

	t.Run("invalid config", func(t *testing.T) {
		bad := DefaultConfig()
		bad.Strategy = "weighted"
		bot, err := NewBot(&bad, p, p, strat)

		require.ErrorIs(t, err, ErrInvalidConfig)
		require.ErrorIs(t, err, strategy.ErrUnknownStrategy)
		require.Nil(t, bot)
	})
}

func TestBot_Lifecycle(t *testing.T) {
	var (
		mu          sync.Mutex
		transitions []string
	)
	hooks := &Hooks{
		OnStateChanged: func(_ context.Context, from, to State) error {
			mu.Lock()
			defer mu.Unlock()
			transitions = append(transitions, from.String()+"->"+to.String())

			return nil
		},
	}

	f := newFixture(t, setup{leads: 1, members: 1, noStart: true, opts: []Option{WithHooks(hooks)}})
	ctx := context.Background()

	require.ErrorIs(t, f.bot.Stop(ctx), ErrNotStarted)

	require.NoError(t, f.bot.Start(ctx))
	require.Equal(t, StateReady, f.bot.State())
	require.True(t, f.platform.Opened())

	require.ErrorIs(t, f.bot.Start(ctx), ErrAlreadyStarted)

	require.NoError(t, f.bot.Stop(ctx))
	require.Equal(t, StateShutdown, f.bot.State())
	require.False(t, f.platform.Opened())
	require.Equal(t, 1, f.platform.CloseCount())
	require.True(t, f.publisher.closed)

	require.ErrorIs(t, f.bot.Stop(ctx), ErrNotStarted)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"Init->Connecting", "Connecting->Ready", "Ready->Shutdown"}, transitions)
	require.Equal(t, transitions, f.metrics.stateChanges)
}

func TestBot_StartFailure(t *testing.T) {
	f := newFixture(t, setup{leads: 1, members: 1, noStart: true})
	ctx := context.Background()
	boom := errors.New("gateway unavailable")

	f.platform.FailOpen(boom)
	err := f.bot.Start(ctx)
	require.ErrorIs(t, err, boom)
	require.Equal(t, StateInit, f.bot.State())
	require.False(t, f.platform.Opened())

	// Start can be retried after a failed connection.
	f.platform.FailOpen(nil)
	require.NoError(t, f.bot.Start(ctx))
	require.Equal(t, StateReady, f.bot.State())
	require.NoError(t, f.bot.Stop(ctx))
}

func TestBot_IgnoresEventsOutsideReady(t *testing.T) {
	f := newFixture(t, setup{leads: 1, members: 2, noStart: true})

	f.run(command.Distribute, "Lounge")
	require.Empty(t, f.platform.Sent())

	require.NoError(t, f.bot.Start(context.Background()))
	require.NoError(t, f.bot.Stop(context.Background()))

	f.run(command.Help, "")
	require.Empty(t, f.platform.Sent())
	require.Empty(t, f.platform.Created())
}

func TestBot_StopWaitsForCommands(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	hooks := &Hooks{
		OnDistributed: func(context.Context, DistributionEvent) error {
			close(entered)
			<-release

			return nil
		},
	}
	f := newFixture(t, setup{leads: 1, members: 2, opts: []Option{WithHooks(hooks)}})

	done := make(chan struct{})
	go func() {
		defer close(done)
		f.run(command.Distribute, "Lounge")
	}()
	<-entered

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := f.bot.Stop(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	<-done
}

func TestIsValidTransition(t *testing.T) {
	require.True(t, isValidTransition(StateInit, StateConnecting))
	require.True(t, isValidTransition(StateConnecting, StateReady))
	require.True(t, isValidTransition(StateConnecting, StateInit))
	require.True(t, isValidTransition(StateReady, StateShutdown))
	require.False(t, isValidTransition(StateInit, StateReady))
	require.False(t, isValidTransition(StateReady, StateConnecting))
	require.False(t, isValidTransition(StateShutdown, StateInit))
}
