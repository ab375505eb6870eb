package types

import "slices"

// Member is a chat-platform member as seen by the bot.
//
// Members are snapshots taken from the platform roster for a single command
// invocation and are never mutated afterwards.
type Member struct {
	// ID is the opaque platform identifier. Two members are equal iff their IDs match.
	ID string `json:"id"`

	// Label is the human-readable name used in rendered summaries.
	Label string `json:"label"`

	// Bot marks automated accounts; they are never leaders or candidates.
	Bot bool `json:"bot,omitempty"`

	// Roles holds the IDs of the roles the member carries.
	Roles []string `json:"roles,omitempty"`
}

// Equal reports whether m and other refer to the same member.
func (m Member) Equal(other Member) bool {
	return m.ID == other.ID
}

// HasRole reports whether the member carries the role with the given ID.
func (m Member) HasRole(roleID string) bool {
	if roleID == "" {
		return false
	}

	return slices.Contains(m.Roles, roleID)
}

// String returns the member label, falling back to the ID.
func (m Member) String() string {
	if m.Label != "" {
		return m.Label
	}

	return m.ID
}
