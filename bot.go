package podbot

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Willfwalker/Discord-Bot/command"
	"github.com/Willfwalker/Discord-Bot/events"
	"github.com/Willfwalker/Discord-Bot/internal/hooks"
	"github.com/Willfwalker/Discord-Bot/internal/logger"
	"github.com/Willfwalker/Discord-Bot/internal/metrics"
	"github.com/Willfwalker/Discord-Bot/internal/registry"
	"github.com/Willfwalker/Discord-Bot/render"
	"github.com/Willfwalker/Discord-Bot/types"
)

// Bot forms pods from voice channel rosters on command.
//
// Bot owns the single platform connection. It handles:
//   - Command dispatch (distribute, distributeserver, podhelp)
//   - Administrator checks delegated to the Authorizer
//   - Pod channel creation and member relocation
//   - Deletion of pod channels once they are empty
//
// Thread Safety:
//   - All public methods are safe for concurrent use
//   - Platforms deliver events on their own goroutines
//   - Each command works on a fresh roster snapshot; nothing persists between commands
//
// Lifecycle:
//   - Create with NewBot()
//   - Call Start() to connect and begin handling events
//   - Call Stop() for graceful shutdown
type Bot struct {
	cfg      Config
	platform Platform
	auth     Authorizer
	strategy PodStrategy

	hooks     *Hooks
	metrics   MetricsCollector
	logger    Logger
	publisher EventPublisher

	channels *registry.Registry

	state      atomic.Int32 // State
	stateSince atomic.Int64 // unix nanos of the last transition

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup // in-flight events
	mu     sync.RWMutex
}

// NewBot creates a new Bot instance with the provided configuration.
//
// Returns a concrete *Bot struct following the "accept interfaces, return structs" principle.
//
// Parameters:
//   - cfg: Configuration (missing values are filled with defaults)
//   - platform: Chat platform connection (e.g. discord.Session)
//   - auth: Role and permission checks, usually the same adapter as platform
//   - strategy: Pod strategy (recommended: strategy.NewBalancedShuffle())
//   - opts: Optional configuration (hooks, metrics, logger, publisher)
//
// Returns:
//   - *Bot: Initialized bot instance
//   - error: Validation error if configuration is invalid
//
// Example:
//
//	cfg := podbot.DefaultConfig()
//	session, _ := discord.New(token, discord.WithPrefix(cfg.CommandPrefix))
//	bot, err := podbot.NewBot(&cfg, session, session, strategy.NewBalancedShuffle())
func NewBot(cfg *Config, platform Platform, auth Authorizer, strategy PodStrategy, opts ...Option) (*Bot, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}
	if platform == nil {
		return nil, ErrPlatformRequired
	}
	if auth == nil {
		return nil, ErrAuthorizerRequired
	}
	if strategy == nil {
		return nil, ErrStrategyRequired
	}

	SetDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &botOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Safe defaults for optional dependencies avoid nil checks everywhere.
	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNop()
	}

	cfg.ValidateWithWarnings(loggerInstance)

	publisher := options.publisher
	if publisher == nil {
		publisher = events.NewNop()
	}

	b := &Bot{
		cfg:       *cfg,
		platform:  platform,
		auth:      auth,
		strategy:  strategy,
		hooks:     hooks.Fill(options.hooks),
		metrics:   metricsCollector,
		logger:    loggerInstance,
		publisher: publisher,
		channels:  registry.New(),
	}

	b.state.Store(int32(StateInit))
	b.stateSince.Store(time.Now().UnixNano())

	return b, nil
}

var _ types.EventHandler = (*Bot)(nil)

// Start connects to the platform and begins handling events.
//
// Parameters:
//   - ctx: Context for the connection attempt
//
// Returns:
//   - error: ErrAlreadyStarted, or the platform connection error
func (b *Bot) Start(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ctx != nil {
		return ErrAlreadyStarted
	}

	b.ctx, b.cancel = context.WithCancel(context.Background())
	b.transitionState(ctx, b.State(), StateConnecting)

	if err := b.platform.Open(ctx, b); err != nil {
		b.cancel()
		b.ctx, b.cancel = nil, nil
		b.transitionState(ctx, StateConnecting, StateInit)

		return fmt.Errorf("failed to open platform session: %w", err)
	}

	b.transitionState(ctx, StateConnecting, StateReady)

	if b.cfg.SweepInterval > 0 {
		b.wg.Add(1)
		go b.sweepLoop(b.ctx)
	}

	return nil
}

// Stop gracefully shuts down the bot.
//
// In-flight commands are cancelled and awaited until ctx expires. Safe to call
// multiple times; subsequent calls return ErrNotStarted.
//
// Parameters:
//   - ctx: Context for shutdown timeout
//
// Returns:
//   - error: Close error or timeout
func (b *Bot) Stop(ctx context.Context) error {
	b.mu.Lock()

	if b.ctx == nil || b.State() == StateShutdown {
		b.mu.Unlock()

		return ErrNotStarted
	}

	b.transitionState(ctx, b.State(), StateShutdown)
	b.cancel()
	b.mu.Unlock()

	var shutdownErr error
	if err := b.platform.Close(); err != nil {
		b.logger.Error("failed to close platform session", "error", err)
		shutdownErr = fmt.Errorf("platform close failed: %w", err)
	}

	if err := b.publisher.Close(); err != nil {
		b.logger.Error("failed to close event publisher", "error", err)
		if shutdownErr == nil {
			shutdownErr = fmt.Errorf("publisher close failed: %w", err)
		}
	}

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		b.logger.Info("bot stopped gracefully")
		return shutdownErr
	case <-ctx.Done():
		b.logger.Error("shutdown timeout exceeded, some commands may still be running")
		if shutdownErr == nil {
			return ctx.Err()
		}

		return fmt.Errorf("shutdown timeout: %w; additional error: %w", ctx.Err(), shutdownErr)
	}
}

// State returns the current lifecycle state.
func (b *Bot) State() State {
	return State(b.state.Load())
}

// PodChannels returns the pod channels created in a guild that still exist,
// ordered by pod index.
func (b *Bot) PodChannels(guildID string) []Channel {
	tracked := b.channels.Guild(guildID)
	out := make([]Channel, 0, len(tracked))
	for _, pc := range tracked {
		out = append(out, Channel{ID: pc.ChannelID, GuildID: pc.GuildID, Name: pc.Name, Voice: true})
	}

	return out
}

// transitionState moves to a new state, then records metrics and fires hooks.
func (b *Bot) transitionState(ctx context.Context, from, to State) {
	if !isValidTransition(from, to) {
		b.logger.Error("invalid state transition attempted", "from", from.String(), "to", to.String())

		return
	}

	now := time.Now()
	b.state.Store(int32(to)) //nolint:gosec // State values are controlled enum
	since := b.stateSince.Swap(now.UnixNano())

	b.logger.Info("state transition", "from", from.String(), "to", to.String())
	b.metrics.RecordStateTransition(from, to, now.Sub(time.Unix(0, since)).Seconds())

	if err := b.hooks.OnStateChanged(ctx, from, to); err != nil {
		b.logger.Error("state change hook error", "from", from, "to", to, "error", err)
	}
}

// isValidTransition reports whether a lifecycle transition is allowed.
func isValidTransition(from, to State) bool {
	validTransitions := map[State][]State{
		StateInit:       {StateConnecting, StateShutdown},
		StateConnecting: {StateReady, StateInit, StateShutdown},
		StateReady:      {StateShutdown},
		StateShutdown:   {}, // Terminal state
	}

	return slices.Contains(validTransitions[from], to)
}

// acquire registers an in-flight event. It returns a context bound to both
// the caller's context and the bot lifetime, or false when the bot is not ready.
func (b *Bot) acquire(ctx context.Context) (context.Context, func(), bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.State() != StateReady {
		return nil, nil, false
	}
	b.wg.Add(1)

	opCtx, cancel := context.WithTimeout(ctx, b.cfg.OperationTimeout)
	stop := context.AfterFunc(b.ctx, cancel)

	return opCtx, func() {
		stop()
		cancel()
		b.wg.Done()
	}, true
}

// OnCommand handles a parsed command. Failures are rendered to the issuing
// channel; nothing is returned to the platform.
func (b *Bot) OnCommand(ctx context.Context, inv Invocation) {
	if inv.Issuer.Bot {
		return
	}

	opCtx, release, ok := b.acquire(ctx)
	if !ok {
		b.logger.Debug("ignoring command, bot not ready", "command", inv.Command, "state", b.State().String())
		return
	}
	defer release()

	switch inv.Command {
	case command.Help:
		help := render.Help(b.cfg.CommandPrefix, b.cfg.PodLeadRole)
		if err := b.platform.SendMessage(opCtx, inv.ChannelID, help); err != nil {
			b.logger.Error("failed to send help", "channel", inv.ChannelID, "error", err)
			b.metrics.RecordCommand(inv.Command, types.FailureUnknown.String())

			return
		}
		b.metrics.RecordCommand(inv.Command, "ok")

	case command.Distribute, command.DistributeServer:
		req := Request{
			GuildID:    inv.GuildID,
			ChannelID:  inv.ChannelID,
			MessageID:  inv.MessageID,
			Issuer:     inv.Issuer,
			Scope:      inv.Argument,
			ServerWide: inv.Command == command.DistributeServer,
		}
		report, err := b.Distribute(opCtx, req)
		if err != nil {
			if report != nil && report.Scope != "" {
				req.Scope = report.Scope
			}
			b.reportFailure(opCtx, req, err)
			b.metrics.RecordCommand(inv.Command, types.KindOf(err).String())

			return
		}
		b.metrics.RecordCommand(inv.Command, "ok")

	default:
		b.logger.Debug("ignoring unknown command", "command", inv.Command)
	}
}

// reportFailure posts the rendered failure to the issuing channel.
//
// Refusals that happen before any work starts answer the command message;
// later failures are posted to the channel.
func (b *Bot) reportFailure(ctx context.Context, req Request, err error) {
	kind := types.KindOf(err)
	if kind == types.FailureUnknown || kind == types.FailureChannelCreate {
		b.logger.Error("distribution failed", "guild", req.GuildID, "scope", req.Scope, "error", err)
	} else {
		b.logger.Info("distribution refused", "guild", req.GuildID, "scope", req.Scope, "reason", kind.String())
	}

	if hookErr := b.hooks.OnError(ctx, err); hookErr != nil {
		b.logger.Error("error hook failed", "error", hookErr)
	}

	text := render.Failure(err, render.FailureContext{
		Scope:      req.Scope,
		Prefix:     b.cfg.CommandPrefix,
		LeadRole:   b.cfg.PodLeadRole,
		ServerWide: req.ServerWide,
	})

	var sendErr error
	switch kind {
	case types.FailurePermissionDenied, types.FailureMissingArgument, types.FailureScopeNotFound:
		sendErr = b.platform.Reply(ctx, req.ChannelID, req.MessageID, text)
	default:
		sendErr = b.platform.Send(ctx, req.ChannelID, text)
	}
	if sendErr != nil && !errors.Is(sendErr, context.Canceled) {
		b.logger.Error("failed to report failure", "channel", req.ChannelID, "error", sendErr)
	}
}
