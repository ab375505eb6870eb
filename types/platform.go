package types

import (
	"context"
	"time"
)

// Channel describes a platform channel.
type Channel struct {
	ID       string `json:"id"`
	GuildID  string `json:"guildId"`
	Name     string `json:"name"`
	ParentID string `json:"parentId,omitempty"`
	Voice    bool   `json:"voice"`
	// UserLimit caps voice occupancy (0 = unlimited).
	UserLimit int `json:"userLimit,omitempty"`
}

// Role describes a guild role.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ChannelSpec holds the parameters for creating a pod voice channel.
type ChannelSpec struct {
	Name      string
	ParentID  string
	UserLimit int
}

// Capability is a platform privilege checked before running a command.
type Capability int

const (
	// CapabilityAdministrator is the guild administrator privilege.
	CapabilityAdministrator Capability = iota
)

// String returns the capability name.
func (c Capability) String() string {
	switch c {
	case CapabilityAdministrator:
		return "Administrator"
	default:
		return "Unknown"
	}
}

// Field is one titled block of a rendered message.
type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Message is a platform-neutral rich message (an embed on Discord).
type Message struct {
	Title       string
	Description string
	Color       int
	Fields      []Field
	Timestamp   time.Time
}

// Invocation is a parsed bot command issued in a guild text channel.
type Invocation struct {
	GuildID   string
	ChannelID string
	MessageID string

	// Issuer is the member that sent the command.
	Issuer Member

	// Command is the canonical command name (see package command).
	Command string

	// Argument is the trimmed text after the command name.
	Argument string
}

// EventHandler receives the platform events the bot reacts to.
//
// Platforms call these methods from their own goroutines.
type EventHandler interface {
	// OnCommand is called for every message that parsed as a bot command.
	OnCommand(ctx context.Context, inv Invocation)

	// OnVoiceLeave is called when a member left (or moved out of) a voice channel.
	OnVoiceLeave(ctx context.Context, guildID, channelID string)
}

// Session owns the single connection to the chat platform.
type Session interface {
	// Open connects to the platform and starts dispatching events to handler.
	Open(ctx context.Context, handler EventHandler) error

	// Close disconnects from the platform.
	Close() error
}

// Directory resolves guild objects and rosters.
type Directory interface {
	// GuildName returns the display name of a guild.
	GuildName(ctx context.Context, guildID string) (string, error)

	// Channel returns the channel with the given ID.
	Channel(ctx context.Context, channelID string) (Channel, error)

	// VoiceChannelByName finds a voice channel by case-insensitive name.
	// Returns ErrScopeNotFound when no voice channel matches.
	VoiceChannelByName(ctx context.Context, guildID, name string) (Channel, error)

	// RoleByName finds a role by exact name. Returns ErrRoleNotFound when absent.
	RoleByName(ctx context.Context, guildID, name string) (Role, error)

	// ChannelMembers returns the members currently connected to a voice channel.
	ChannelMembers(ctx context.Context, guildID, channelID string) ([]Member, error)

	// GuildMembers returns the full guild roster.
	GuildMembers(ctx context.Context, guildID string) ([]Member, error)
}

// ChannelManager creates, fills and removes pod voice channels.
type ChannelManager interface {
	// CreateVoiceChannel creates a voice channel in the guild.
	CreateVoiceChannel(ctx context.Context, guildID string, spec ChannelSpec) (Channel, error)

	// MoveMember moves a connected member into a voice channel.
	MoveMember(ctx context.Context, guildID, userID, channelID string) error

	// DeleteChannel removes a channel.
	DeleteChannel(ctx context.Context, channelID string) error

	// ChannelOccupancy returns how many members are connected to a voice channel.
	ChannelOccupancy(ctx context.Context, guildID, channelID string) (int, error)
}

// Messenger posts bot output.
type Messenger interface {
	// Reply answers a specific message.
	Reply(ctx context.Context, channelID, messageID, text string) error

	// Send posts plain text.
	Send(ctx context.Context, channelID, text string) error

	// SendMessage posts a rich message.
	SendMessage(ctx context.Context, channelID string, msg Message) error
}

// Platform is the full chat-platform surface the bot depends on.
type Platform interface {
	Session
	Directory
	ChannelManager
	Messenger
}

// Authorizer answers role and permission questions about members.
//
// It replaces ad-hoc inspection of platform objects with an explicit boundary
// that each platform adapter implements.
type Authorizer interface {
	// HasRole reports whether member carries the role with roleID.
	HasRole(member Member, roleID string) bool

	// HasPermission reports whether issuer holds capability in the given channel.
	HasPermission(ctx context.Context, guildID, channelID string, issuer Member, capability Capability) (bool, error)
}
