package testing

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/Willfwalker/Discord-Bot/roster"
	"github.com/Willfwalker/Discord-Bot/types"
)

// Errors returned by FakePlatform.
var (
	// ErrUnknownChannel is returned for channel IDs the fake does not know.
	ErrUnknownChannel = errors.New("unknown channel")

	// ErrNotConnected is returned when moving a member that is not in voice.
	ErrNotConnected = errors.New("target user is not connected to voice")
)

// SentMessage is one message posted through FakePlatform.
type SentMessage struct {
	ChannelID string

	// ReplyTo is the referenced message ID for replies.
	ReplyTo string

	// Text is set for plain messages and replies.
	Text string

	// Message is set for rich messages.
	Message *types.Message
}

// Move is one member relocation performed through FakePlatform.
type Move struct {
	UserID    string
	ChannelID string
}

// FakePlatform is an in-memory single-guild platform.
//
// It implements types.Platform and types.Authorizer, records every side effect,
// and lets tests inject failures for channel creation, moves and deletion.
// Voice connections live in the embedded roster.
type FakePlatform struct {
	// Roster holds guild members and their voice connections.
	Roster *roster.Static

	mu        sync.Mutex
	guildID   string
	guildName string
	channels  []types.Channel
	roles     []types.Role
	admins    map[string]bool
	nextID    int
	handler   types.EventHandler
	opened    bool
	sent      []SentMessage
	moves     []Move
	created   []types.Channel
	deleted   []string
	closeCnt  int

	openErr      error
	createErr    error
	createAfter  int
	moveErrs     map[string]error
	deleteErr    error
	sendErr      error
	permErr      error
	occupancyErr error
}

var (
	_ types.Platform   = (*FakePlatform)(nil)
	_ types.Authorizer = (*FakePlatform)(nil)
)

// NewFakePlatform creates a fake guild with the given members and no channels.
//
// Parameters:
//   - guildID: Guild identifier every channel belongs to
//   - members: Guild roster (nobody is connected to voice yet)
//
// Returns:
//   - *FakePlatform: Ready-to-use fake
//
// Example:
//
//	p := podtest.NewFakePlatform("g1", members)
//	lounge := p.AddVoiceChannel("Lounge", "cat")
//	p.Roster.Connect(lounge.ID, "lead", "a", "b")
//	p.GrantAdmin("admin")
func NewFakePlatform(guildID string, members []types.Member) *FakePlatform {
	return &FakePlatform{
		Roster:    roster.NewStatic(members),
		guildID:   guildID,
		guildName: guildID,
		admins:    make(map[string]bool),
		moveErrs:  make(map[string]error),
	}
}

// GuildID returns the fake guild ID.
func (p *FakePlatform) GuildID() string {
	return p.guildID
}

func (p *FakePlatform) newID(kind string) string {
	p.nextID++

	return fmt.Sprintf("%s-%d", kind, p.nextID)
}

// SetGuildName sets the name returned by GuildName (the guild ID by default).
func (p *FakePlatform) SetGuildName(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.guildName = name
}

// GuildName returns the fake guild name.
func (p *FakePlatform) GuildName(_ context.Context, _ string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.guildName, nil
}

// AddVoiceChannel adds a voice channel under parentID.
func (p *FakePlatform) AddVoiceChannel(name, parentID string) types.Channel {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch := types.Channel{ID: p.newID("voice"), GuildID: p.guildID, Name: name, ParentID: parentID, Voice: true}
	p.channels = append(p.channels, ch)

	return ch
}

// AddTextChannel adds a text channel.
func (p *FakePlatform) AddTextChannel(name string) types.Channel {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch := types.Channel{ID: p.newID("text"), GuildID: p.guildID, Name: name}
	p.channels = append(p.channels, ch)

	return ch
}

// AddRole adds a guild role.
func (p *FakePlatform) AddRole(name string) types.Role {
	p.mu.Lock()
	defer p.mu.Unlock()

	r := types.Role{ID: p.newID("role"), Name: name}
	p.roles = append(p.roles, r)

	return r
}

// GrantAdmin gives the administrator capability to the given members.
func (p *FakePlatform) GrantAdmin(memberIDs ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, id := range memberIDs {
		p.admins[id] = true
	}
}

// FailOpen makes Open return err.
func (p *FakePlatform) FailOpen(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.openErr = err
}

// FailCreateAfter makes every channel creation after the first n return err.
func (p *FakePlatform) FailCreateAfter(n int, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.createAfter = n
	p.createErr = err
}

// FailMove makes moving userID return err.
func (p *FakePlatform) FailMove(userID string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.moveErrs[userID] = err
}

// FailDelete makes channel deletion return err.
func (p *FakePlatform) FailDelete(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.deleteErr = err
}

// FailSend makes every message post return err.
func (p *FakePlatform) FailSend(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sendErr = err
}

// FailPermission makes HasPermission return err.
func (p *FakePlatform) FailPermission(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.permErr = err
}

// FailOccupancy makes ChannelOccupancy return err.
func (p *FakePlatform) FailOccupancy(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.occupancyErr = err
}

// Open stores handler; Leave dispatches voice events to it.
func (p *FakePlatform) Open(_ context.Context, handler types.EventHandler) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.openErr != nil {
		return p.openErr
	}
	p.handler = handler
	p.opened = true

	return nil
}

// Close marks the fake closed.
func (p *FakePlatform) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.opened = false
	p.handler = nil
	p.closeCnt++

	return nil
}

// Opened reports whether Open succeeded and Close was not called since.
func (p *FakePlatform) Opened() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.opened
}

// CloseCount returns how many times Close was called.
func (p *FakePlatform) CloseCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.closeCnt
}

// Leave disconnects a member from voice and dispatches OnVoiceLeave.
func (p *FakePlatform) Leave(ctx context.Context, memberID string) {
	prev := p.Roster.Disconnect(memberID)

	p.mu.Lock()
	handler := p.handler
	p.mu.Unlock()

	if prev != "" && handler != nil {
		handler.OnVoiceLeave(ctx, p.guildID, prev)
	}
}

// Channel returns the channel with the given ID.
func (p *FakePlatform) Channel(_ context.Context, channelID string) (types.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	idx := slices.IndexFunc(p.channels, func(c types.Channel) bool { return c.ID == channelID })
	if idx < 0 {
		return types.Channel{}, fmt.Errorf("%s: %w", channelID, ErrUnknownChannel)
	}

	return p.channels[idx], nil
}

// VoiceChannelByName finds a voice channel by case-insensitive name.
func (p *FakePlatform) VoiceChannelByName(_ context.Context, _ string, name string) (types.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, c := range p.channels {
		if c.Voice && strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}

	return types.Channel{}, types.ErrScopeNotFound
}

// RoleByName finds a role by exact name.
func (p *FakePlatform) RoleByName(_ context.Context, _ string, name string) (types.Role, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, r := range p.roles {
		if r.Name == name {
			return r, nil
		}
	}

	return types.Role{}, types.ErrRoleNotFound
}

// ChannelMembers returns the members connected to channelID.
func (p *FakePlatform) ChannelMembers(_ context.Context, _ string, channelID string) ([]types.Member, error) {
	return p.Roster.ChannelMembers(channelID), nil
}

// GuildMembers returns the whole roster.
func (p *FakePlatform) GuildMembers(_ context.Context, _ string) ([]types.Member, error) {
	return p.Roster.GuildMembers(), nil
}

// CreateVoiceChannel creates a voice channel unless a creation failure is armed.
func (p *FakePlatform) CreateVoiceChannel(_ context.Context, guildID string, spec types.ChannelSpec) (types.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.createErr != nil && len(p.created) >= p.createAfter {
		return types.Channel{}, p.createErr
	}

	ch := types.Channel{
		ID:        p.newID("pod"),
		GuildID:   guildID,
		Name:      spec.Name,
		ParentID:  spec.ParentID,
		Voice:     true,
		UserLimit: spec.UserLimit,
	}
	p.channels = append(p.channels, ch)
	p.created = append(p.created, ch)

	return ch, nil
}

// MoveMember moves a connected member into channelID.
func (p *FakePlatform) MoveMember(_ context.Context, _ string, userID, channelID string) error {
	p.mu.Lock()
	err := p.moveErrs[userID]
	p.mu.Unlock()

	if err != nil {
		return err
	}
	if p.Roster.VoiceChannel(userID) == "" {
		return ErrNotConnected
	}

	p.Roster.Connect(channelID, userID)

	p.mu.Lock()
	p.moves = append(p.moves, Move{UserID: userID, ChannelID: channelID})
	p.mu.Unlock()

	return nil
}

// DeleteChannel removes a channel unless a deletion failure is armed.
func (p *FakePlatform) DeleteChannel(_ context.Context, channelID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.deleteErr != nil {
		return p.deleteErr
	}

	idx := slices.IndexFunc(p.channels, func(c types.Channel) bool { return c.ID == channelID })
	if idx < 0 {
		return fmt.Errorf("%s: %w", channelID, ErrUnknownChannel)
	}
	p.channels = slices.Delete(p.channels, idx, idx+1)
	p.deleted = append(p.deleted, channelID)

	return nil
}

// ChannelOccupancy returns how many members are connected to channelID.
func (p *FakePlatform) ChannelOccupancy(_ context.Context, _ string, channelID string) (int, error) {
	p.mu.Lock()
	err := p.occupancyErr
	p.mu.Unlock()

	if err != nil {
		return 0, err
	}

	return p.Roster.Occupancy(channelID), nil
}

// Reply records a reply.
func (p *FakePlatform) Reply(_ context.Context, channelID, messageID, text string) error {
	return p.post(SentMessage{ChannelID: channelID, ReplyTo: messageID, Text: text})
}

// Send records a plain message.
func (p *FakePlatform) Send(_ context.Context, channelID, text string) error {
	return p.post(SentMessage{ChannelID: channelID, Text: text})
}

// SendMessage records a rich message.
func (p *FakePlatform) SendMessage(_ context.Context, channelID string, msg types.Message) error {
	return p.post(SentMessage{ChannelID: channelID, Message: &msg})
}

func (p *FakePlatform) post(m SentMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sendErr != nil {
		return p.sendErr
	}
	p.sent = append(p.sent, m)

	return nil
}

// HasRole reports whether member carries roleID.
func (p *FakePlatform) HasRole(member types.Member, roleID string) bool {
	return member.HasRole(roleID)
}

// HasPermission grants the administrator capability to members passed to GrantAdmin.
func (p *FakePlatform) HasPermission(_ context.Context, _, _ string, issuer types.Member, capability types.Capability) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.permErr != nil {
		return false, p.permErr
	}

	return capability == types.CapabilityAdministrator && p.admins[issuer.ID], nil
}

// Sent returns every posted message in order.
func (p *FakePlatform) Sent() []SentMessage {
	p.mu.Lock()
	defer p.mu.Unlock()

	return slices.Clone(p.sent)
}

// Moves returns every successful relocation in order.
func (p *FakePlatform) Moves() []Move {
	p.mu.Lock()
	defer p.mu.Unlock()

	return slices.Clone(p.moves)
}

// Created returns the channels created through CreateVoiceChannel.
func (p *FakePlatform) Created() []types.Channel {
	p.mu.Lock()
	defer p.mu.Unlock()

	return slices.Clone(p.created)
}

// Deleted returns the IDs of deleted channels in order.
func (p *FakePlatform) Deleted() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return slices.Clone(p.deleted)
}

// Channels returns every existing channel.
func (p *FakePlatform) Channels() []types.Channel {
	p.mu.Lock()
	defer p.mu.Unlock()

	return slices.Clone(p.channels)
}
