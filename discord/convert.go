package discord

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Willfwalker/Discord-Bot/types"
	"github.com/bwmarrin/discordgo"
)

// Embed limits enforced by the Discord API.
const (
	maxEmbedTitle       = 256
	maxEmbedDescription = 4096
	maxEmbedFields      = 25
	maxFieldName        = 256
	maxFieldValue       = 1024
	maxEmbedTotal       = 6000
)

// toMember converts a guild member, falling back to the bare user when the
// member payload is missing.
func toMember(m *discordgo.Member, u *discordgo.User) types.Member {
	if m != nil && m.User != nil {
		u = m.User
	}

	var member types.Member
	if u != nil {
		member.ID = u.ID
		member.Label = u.String()
		member.Bot = u.Bot
	}
	if m != nil && len(m.Roles) > 0 {
		member.Roles = append([]string(nil), m.Roles...)
	}

	return member
}

func toChannel(c *discordgo.Channel) types.Channel {
	return types.Channel{
		ID:        c.ID,
		GuildID:   c.GuildID,
		Name:      c.Name,
		ParentID:  c.ParentID,
		Voice:     c.Type == discordgo.ChannelTypeGuildVoice,
		UserLimit: c.UserLimit,
	}
}

// findVoiceChannel returns the first voice channel whose name matches
// case-insensitively.
func findVoiceChannel(channels []*discordgo.Channel, name string) (*discordgo.Channel, bool) {
	for _, c := range channels {
		if c != nil && c.Type == discordgo.ChannelTypeGuildVoice && strings.EqualFold(c.Name, name) {
			return c, true
		}
	}

	return nil, false
}

func findRole(roles []*discordgo.Role, name string) (*discordgo.Role, bool) {
	for _, r := range roles {
		if r != nil && r.Name == name {
			return r, true
		}
	}

	return nil, false
}

// toEmbeds converts a rendered message into one or more embeds. The first
// embed carries the title, description and timestamp; fields continue into
// further embeds so that none exceeds the field count or total size limits.
func toEmbeds(msg types.Message) []*discordgo.MessageEmbed {
	first := &discordgo.MessageEmbed{
		Title:       clip(msg.Title, maxEmbedTitle),
		Description: clip(msg.Description, maxEmbedDescription),
		Color:       msg.Color,
	}
	if !msg.Timestamp.IsZero() {
		first.Timestamp = msg.Timestamp.UTC().Format(time.RFC3339)
	}

	embeds := []*discordgo.MessageEmbed{first}
	current := first
	size := utf8.RuneCountInString(first.Title) + utf8.RuneCountInString(first.Description)

	for _, f := range msg.Fields {
		field := &discordgo.MessageEmbedField{
			Name:   clip(f.Name, maxFieldName),
			Value:  clip(f.Value, maxFieldValue),
			Inline: f.Inline,
		}
		n := utf8.RuneCountInString(field.Name) + utf8.RuneCountInString(field.Value)

		if len(current.Fields) == maxEmbedFields || size+n > maxEmbedTotal {
			current = &discordgo.MessageEmbed{Color: msg.Color}
			embeds = append(embeds, current)
			size = 0
		}
		current.Fields = append(current.Fields, field)
		size += n
	}

	return embeds
}

// clip cuts s to at most limit runes.
func clip(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	runes := []rune(s)

	return string(runes[:limit])
}
