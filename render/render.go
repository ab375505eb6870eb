// Package render turns distribution results and failures into chat output.
//
// Output is platform neutral (types.Message); adapters convert it to their
// native rich-message format.
package render

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Willfwalker/Discord-Bot/command"
	"github.com/Willfwalker/Discord-Bot/types"
)

// DefaultFieldLimit is the platform display limit for a single field value.
const DefaultFieldLimit = 1024

// Color is the accent color of every bot message.
const Color = 0x0099FF

const ellipsis = "..."

// Summary carries what the distribution message needs besides the pods.
type Summary struct {
	// Scope is the voice channel (or server) name.
	Scope string
	// ServerWide marks runs over the whole guild roster.
	ServerWide bool
	// ChannelNames maps pod index to the created channel name.
	ChannelNames map[int]string
	// FailedRelocations is the number of members that could not be moved.
	FailedRelocations int
	// FieldLimit overrides DefaultFieldLimit when > 0.
	FieldLimit int
	// Now stamps the message; zero means time.Now().
	Now time.Time
}

// Distribution renders the result of a successful run.
//
// Each pod becomes one field: "<pod name> - Led by <lead> (<size> members)"
// with a bullet list of members, or "No members assigned" for empty pods.
func Distribution(dist types.Distribution, s Summary) types.Message {
	limit := s.FieldLimit
	if limit <= 0 {
		limit = DefaultFieldLimit
	}
	now := s.Now
	if now.IsZero() {
		now = time.Now()
	}

	scope := "voice channel"
	if s.ServerWide {
		scope = "server"
	}
	desc := fmt.Sprintf("Successfully distributed **%d** members from %s **%s** among **%d** pods.",
		dist.TotalMembers, scope, s.Scope, dist.PodLeadCount)
	if s.FailedRelocations > 0 {
		desc += fmt.Sprintf("\n⚠️ %d member(s) could not be moved and must join their pod manually.", s.FailedRelocations)
	}

	msg := types.Message{
		Title:       "🎯 Pod Distribution Complete",
		Description: desc,
		Color:       Color,
		Timestamp:   now,
		Fields:      make([]types.Field, 0, len(dist.Pods)),
	}

	for _, pod := range dist.Pods {
		name := s.ChannelNames[pod.Index]
		if name == "" {
			name = fmt.Sprintf("Pod %d", pod.Index)
		}

		msg.Fields = append(msg.Fields, types.Field{
			Name:  fmt.Sprintf("%s - Led by %s (%d members)", name, pod.Leader, pod.Size),
			Value: Truncate(memberList(pod.Members), limit),
		})
	}

	return msg
}

func memberList(members []types.Member) string {
	if len(members) == 0 {
		return "No members assigned"
	}

	lines := make([]string, len(members))
	for i, m := range members {
		lines[i] = "• " + m.String()
	}

	return strings.Join(lines, "\n")
}

// Truncate shortens s to at most limit characters, ending in "..." when cut.
//
// Lengths are counted in runes so multi-byte names are never split.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= len(ellipsis) {
		return string(runes[:limit])
	}

	return string(runes[:limit-len(ellipsis)]) + ellipsis
}

// FailureContext holds the names a failure message refers to.
type FailureContext struct {
	// Scope is the voice channel name, the argument the issuer typed, or the guild name.
	Scope string
	// Prefix is the command prefix, used in usage hints.
	Prefix string
	// LeadRole is the name of the pod lead role.
	LeadRole string
	// ServerWide marks runs over the whole guild; Scope is then the guild name.
	ServerWide bool
}

// Failure renders the user-visible text for a failed command.
//
// Parameters:
//   - err: Error returned by the bot (classified with types.KindOf)
//   - fc: Names to mention in the message
func Failure(err error, fc FailureContext) string {
	scope, prefix := fc.Scope, fc.Prefix
	switch types.KindOf(err) {
	case types.FailureNone:
		return ""
	case types.FailurePermissionDenied:
		return "You need Administrator permissions to use this command."
	case types.FailureMissingArgument:
		return fmt.Sprintf("Please specify a voice channel name. Usage: `%s%s ChannelName`", prefix, command.Distribute)
	case types.FailureScopeNotFound:
		return fmt.Sprintf("Voice channel %q not found. Please check the channel name and try again.", scope)
	case types.FailureScopeEmpty:
		if fc.ServerWide {
			return fmt.Sprintf("❌ No members found in server %q.", scope)
		}
		return fmt.Sprintf("❌ No one is currently in the voice channel %q.", scope)
	case types.FailureRoleNotFound:
		return fmt.Sprintf("❌ %s role not found. Please create a role named %q first.", fc.LeadRole, fc.LeadRole)
	case types.FailureNoLeaders:
		if fc.ServerWide {
			return fmt.Sprintf("❌ No Pod Leads found in server %q.", scope)
		}
		return fmt.Sprintf("❌ No Pod Leads found in %q. Pod Leads must be in the channel.", scope)
	case types.FailureNoCandidates:
		if fc.ServerWide {
			return fmt.Sprintf("❌ No members to distribute in server %q. Only Pod Leads are present.", scope)
		}
		return fmt.Sprintf("❌ No members to distribute in %q. Only Pod Leads are present.", scope)
	case types.FailureChannelCreate:
		return "❌ Error: could not create pod voice channels. Check the bot's Manage Channels permission."
	default:
		return "❌ Error: " + rootCause(err).Error()
	}
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// Progress renders the acknowledgement sent before a run starts.
func Progress(scope string, serverWide bool) string {
	if serverWide {
		return fmt.Sprintf("Distributing all members of %q into pods... Please wait.", scope)
	}

	return fmt.Sprintf("Distributing members from voice channel %q into pods... Please wait.", scope)
}

// Help renders the command reference.
//
// Parameters:
//   - prefix: Command prefix (e.g. "!")
//   - leadRole: Name of the pod lead role
func Help(prefix, leadRole string) types.Message {
	msg := types.Message{
		Title:       "Pod Bot Commands",
		Description: "Commands for managing pod distribution from voice channels",
		Color:       Color,
		Timestamp:   time.Now(),
	}

	for _, c := range command.Commands() {
		name := prefix + c.Name
		if c.Usage != "" {
			name += " " + c.Usage
		}
		value := c.Description
		if len(c.Aliases) > 0 {
			value += "\nAliases: " + prefix + strings.Join(c.Aliases, ", "+prefix)
		}
		if c.Name == command.Distribute {
			value += "\n• Creates temporary voice channels for each pod" +
				"\n• Moves everyone into their pod channels" +
				"\n• Channels auto-delete when empty" +
				fmt.Sprintf("\n\nExample: `%s%s Lounge`", prefix, c.Name)
		}
		if c.AdminOnly {
			value += "\n\nRequires Administrator permissions."
		}
		msg.Fields = append(msg.Fields, types.Field{Name: name, Value: value})
	}

	msg.Fields = append(msg.Fields,
		types.Field{
			Name: "Setup",
			Value: fmt.Sprintf("1. Create a role named %q\n2. Have Pod Leads join a voice channel\n"+
				"3. Have other members join the same voice channel\n4. Run `%s%s ChannelName` to create pods",
				leadRole, prefix, command.Distribute),
		},
		types.Field{
			Name: "Important Notes",
			Value: "• Only distributes members currently in the specified voice channel\n" +
				"• Pod Leads must be in the voice channel\n" +
				"• Bots are automatically excluded\n" +
				"• Pod channels are created in the same category as the original channel",
		},
	)

	return msg
}
