package podbot

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/Willfwalker/Discord-Bot/strategy"
	podtest "github.com/Willfwalker/Discord-Bot/testing"
	"github.com/Willfwalker/Discord-Bot/types"
	"github.com/stretchr/testify/require"
)

const (
	testGuild   = "guild-1"
	testMessage = "msg-1"
)

var admin = types.Member{ID: "admin", Label: "admin"}

// setup describes the guild a fixture starts with.
type setup struct {
	leads   int
	members int

	// roleName is the name of the role given to leads ("Pod Lead" when empty).
	roleName string

	cfg  func(*Config)
	opts []Option

	// noStart leaves the bot in StateInit.
	noStart bool
}

type fixture struct {
	t         *testing.T
	platform  *podtest.FakePlatform
	bot       *Bot
	logger    *podtest.RecordingLogger
	metrics   *recordingMetrics
	publisher *recordingPublisher
	lounge    types.Channel
	text      types.Channel
}

// newFixture builds a guild with an admin (not in voice), a bot account, s.leads
// pod leads and s.members regular members, all connected to "Lounge".
func newFixture(t *testing.T, s setup) *fixture {
	t.Helper()

	if s.roleName == "" {
		s.roleName = "Pod Lead"
	}

	p := podtest.NewFakePlatform(testGuild, nil)
	p.SetGuildName("Test Guild")
	role := p.AddRole(s.roleName)
	lounge := p.AddVoiceChannel("Lounge", "category-1")
	text := p.AddTextChannel("general")

	members := []types.Member{admin, {ID: "helper-bot", Label: "helper-bot", Bot: true}}
	connected := []string{"helper-bot"}
	for i := range s.leads {
		id := fmt.Sprintf("lead%d", i+1)
		members = append(members, types.Member{ID: id, Label: id, Roles: []string{role.ID}})
		connected = append(connected, id)
	}
	for i := range s.members {
		id := fmt.Sprintf("m%d", i+1)
		members = append(members, types.Member{ID: id, Label: id})
		connected = append(connected, id)
	}
	p.Roster.Update(members)
	p.Roster.Connect(lounge.ID, connected...)
	p.GrantAdmin(admin.ID)

	cfg := TestConfig()
	if s.cfg != nil {
		s.cfg(&cfg)
	}

	f := &fixture{
		t:         t,
		platform:  p,
		logger:    podtest.NewRecordingLogger(),
		metrics:   newRecordingMetrics(),
		publisher: &recordingPublisher{},
		lounge:    lounge,
		text:      text,
	}

	strat := strategy.NewBalancedShuffle(strategy.WithRand(rand.New(rand.NewPCG(7, 11))))
	opts := append([]Option{
		WithLogger(f.logger),
		WithMetrics(f.metrics),
		WithPublisher(f.publisher),
	}, s.opts...)

	bot, err := NewBot(&cfg, p, p, strat, opts...)
	require.NoError(t, err)
	f.bot = bot

	if !s.noStart {
		require.NoError(t, bot.Start(context.Background()))
		t.Cleanup(func() { _ = bot.Stop(context.Background()) })
	}

	return f
}

func (f *fixture) invocation(name, arg string) types.Invocation {
	return types.Invocation{
		GuildID:   testGuild,
		ChannelID: f.text.ID,
		MessageID: testMessage,
		Issuer:    admin,
		Command:   name,
		Argument:  arg,
	}
}

// run issues a command as the admin.
func (f *fixture) run(name, arg string) {
	f.bot.OnCommand(context.Background(), f.invocation(name, arg))
}

func (f *fixture) distribute(arg string) (*Report, error) {
	return f.bot.Distribute(context.Background(), Request{
		GuildID:   testGuild,
		ChannelID: f.text.ID,
		MessageID: testMessage,
		Issuer:    admin,
		Scope:     arg,
	})
}

// lastSent returns the last posted message.
func (f *fixture) lastSent() podtest.SentMessage {
	f.t.Helper()

	sent := f.platform.Sent()
	require.NotEmpty(f.t, sent)

	return sent[len(sent)-1]
}

// recordingMetrics counts the calls the bot makes.
type recordingMetrics struct {
	mu            sync.Mutex
	commands      map[string]int
	distributions int
	podSizes      []int
	created       map[bool]int
	deleted       map[bool]int
	relocations   map[bool]int
	stateChanges  []string
}

var _ types.MetricsCollector = (*recordingMetrics)(nil)

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		commands:    make(map[string]int),
		created:     make(map[bool]int),
		deleted:     make(map[bool]int),
		relocations: make(map[bool]int),
	}
}

func (m *recordingMetrics) RecordStateTransition(from, to types.State, _ float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stateChanges = append(m.stateChanges, from.String()+"->"+to.String())
}

func (m *recordingMetrics) RecordCommand(command, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commands[command+"/"+outcome]++
}

func (m *recordingMetrics) RecordDistribution(_, _ int, _ float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.distributions++
}

func (m *recordingMetrics) RecordPodSize(size int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.podSizes = append(m.podSizes, size)
}

func (m *recordingMetrics) RecordChannelCreated(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created[success]++
}

func (m *recordingMetrics) RecordChannelDeleted(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted[success]++
}

func (m *recordingMetrics) RecordRelocation(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.relocations[success]++
}

func (m *recordingMetrics) command(name, outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.commands[name+"/"+outcome]
}

// recordingPublisher keeps published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []types.DistributionEvent
	err    error
	closed bool
}

var _ types.EventPublisher = (*recordingPublisher)(nil)

func (p *recordingPublisher) PublishDistribution(_ context.Context, ev types.DistributionEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, ev)

	return nil
}

func (p *recordingPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true

	return nil
}

func (p *recordingPublisher) published() []types.DistributionEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]types.DistributionEvent(nil), p.events...)
}
