package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/Willfwalker/Discord-Bot/command"
	"github.com/Willfwalker/Discord-Bot/internal/logger"
	"github.com/Willfwalker/Discord-Bot/types"
	"github.com/bwmarrin/discordgo"
)

// Intents are the gateway intents the bot needs: guild structure, member
// roles, message content for commands and voice states for rosters.
const Intents = discordgo.IntentGuilds |
	discordgo.IntentGuildMembers |
	discordgo.IntentGuildMessages |
	discordgo.IntentMessageContent |
	discordgo.IntentGuildVoiceStates

// ErrTokenRequired is returned by New when the bot token is empty.
var ErrTokenRequired = errors.New("discord bot token is required")

// Session is a Discord connection implementing types.Platform and types.Authorizer.
type Session struct {
	dg     *discordgo.Session
	prefix string
	logger types.Logger

	parser  atomic.Pointer[command.Parser]
	handler atomic.Pointer[handlerBox]

	mu       sync.Mutex
	removers []func()
}

// handlerBox lets an interface value live in an atomic.Pointer.
type handlerBox struct {
	types.EventHandler
}

var (
	_ types.Platform   = (*Session)(nil)
	_ types.Authorizer = (*Session)(nil)
)

// Option configures a Session.
type Option func(*Session)

// WithPrefix sets the command prefix (default "!").
func WithPrefix(prefix string) Option {
	return func(s *Session) {
		s.prefix = prefix
	}
}

// WithLogger sets the logger for gateway events.
func WithLogger(l types.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// New creates a Discord session for a bot token.
//
// The connection is not opened until Open.
//
// Parameters:
//   - token: Bot token without the "Bot " prefix
//   - opts: Optional configuration
//
// Returns:
//   - *Session: Unopened session
//   - error: ErrTokenRequired, or the discordgo construction error
//
// Example:
//
//	session, err := discord.New(os.Getenv("DISCORD_TOKEN"), discord.WithPrefix("!"))
//	if err != nil {
//	    return err
//	}
func New(token string, opts ...Option) (*Session, error) {
	if token == "" {
		return nil, ErrTokenRequired
	}

	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	dg.Identify.Intents = Intents

	return Wrap(dg, opts...), nil
}

// Wrap adapts an existing discordgo session.
func Wrap(dg *discordgo.Session, opts ...Option) *Session {
	s := &Session{dg: dg, prefix: "!"}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.NewNop()
	}
	s.parser.Store(command.NewParser(s.prefix))

	return s
}

// Open registers the event handlers and connects to the gateway.
func (s *Session) Open(_ context.Context, handler types.EventHandler) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.handler.Store(&handlerBox{handler})
	s.removers = append(s.removers,
		s.dg.AddHandler(s.onReady),
		s.dg.AddHandler(s.onMessageCreate),
		s.dg.AddHandler(s.onVoiceStateUpdate),
	)

	if err := s.dg.Open(); err != nil {
		s.removeHandlers()
		return fmt.Errorf("failed to open discord gateway: %w", err)
	}

	return nil
}

// Close removes the event handlers and disconnects from the gateway.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeHandlers()

	return s.dg.Close()
}

func (s *Session) removeHandlers() {
	for _, remove := range s.removers {
		remove()
	}
	s.removers = nil
	s.handler.Store(nil)
}

func (s *Session) eventHandler() types.EventHandler {
	if box := s.handler.Load(); box != nil {
		return box.EventHandler
	}

	return nil
}

// onReady also accepts mentions of the bot as command prefixes.
func (s *Session) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	if r.User == nil {
		return
	}

	s.parser.Store(command.NewParser(mentionPrefixes(r.User.ID, s.prefix)...))
	s.logger.Info("discord session ready", "user", r.User.String(), "guilds", len(r.Guilds))
}

func (s *Session) onMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	handler := s.eventHandler()
	if handler == nil || m.Message == nil || m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	name, arg, ok := s.parser.Load().Parse(m.Content)
	if !ok {
		return
	}

	handler.OnCommand(context.Background(), types.Invocation{
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		MessageID: m.ID,
		Issuer:    toMember(m.Member, m.Author),
		Command:   name,
		Argument:  arg,
	})
}

func (s *Session) onVoiceStateUpdate(_ *discordgo.Session, v *discordgo.VoiceStateUpdate) {
	handler := s.eventHandler()
	if handler == nil {
		return
	}

	if channelID, left := leftChannel(v); left {
		handler.OnVoiceLeave(context.Background(), v.GuildID, channelID)
	}
}

// mentionPrefixes returns the prefixes a command may start with once the bot
// user is known.
func mentionPrefixes(botID, prefix string) []string {
	return []string{fmt.Sprintf("<@%s> ", botID), fmt.Sprintf("<@!%s> ", botID), prefix}
}

// leftChannel reports the voice channel a member left, if any. Moving between
// channels counts as leaving the previous one.
func leftChannel(v *discordgo.VoiceStateUpdate) (string, bool) {
	if v == nil || v.VoiceState == nil || v.BeforeUpdate == nil || v.BeforeUpdate.ChannelID == "" {
		return "", false
	}
	if v.ChannelID == v.BeforeUpdate.ChannelID {
		return "", false
	}

	return v.BeforeUpdate.ChannelID, true
}
