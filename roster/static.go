package roster

import (
	"slices"
	"sync"

	"github.com/Willfwalker/Discord-Bot/types"
)

// Static is an in-memory roster of guild members and their voice channels.
//
// It mirrors the subset of platform state the bot reads: who is in the guild
// and which voice channel each member is connected to.
type Static struct {
	mu      sync.RWMutex
	members []types.Member
	voice   map[string]string // member ID -> channel ID
}

// NewStatic creates a new static roster.
//
// Parameters:
//   - members: Guild members (copied)
//
// Returns:
//   - *Static: Initialized roster with nobody connected to voice
//
// Example:
//
//	r := roster.NewStatic(members)
//	r.Connect("lounge", "u1", "u2")
func NewStatic(members []types.Member) *Static {
	return &Static{
		members: slices.Clone(members),
		voice:   make(map[string]string),
	}
}

// GuildMembers returns a copy of all guild members.
func (s *Static) GuildMembers() []types.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.members)
}

// Member returns the member with the given ID.
func (s *Static) Member(id string) (types.Member, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := slices.IndexFunc(s.members, func(m types.Member) bool { return m.ID == id })
	if idx < 0 {
		return types.Member{}, false
	}

	return s.members[idx], true
}

// ChannelMembers returns the members connected to channelID, in roster order.
func (s *Static) ChannelMembers(channelID string) []types.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []types.Member
	for _, m := range s.members {
		if s.voice[m.ID] == channelID {
			out = append(out, m)
		}
	}

	return out
}

// Occupancy returns how many members are connected to channelID.
func (s *Static) Occupancy(channelID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, ch := range s.voice {
		if ch == channelID {
			n++
		}
	}

	return n
}

// VoiceChannel returns the channel a member is connected to ("" if none).
func (s *Static) VoiceChannel(memberID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.voice[memberID]
}

// Connect places the given members into channelID.
func (s *Static) Connect(channelID string, memberIDs ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range memberIDs {
		s.voice[id] = channelID
	}
}

// Disconnect removes a member from voice and returns the channel it left.
func (s *Static) Disconnect(memberID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.voice[memberID]
	delete(s.voice, memberID)

	return prev
}

// Update replaces the member list, keeping voice connections of members that remain.
func (s *Static) Update(members []types.Member) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.members = slices.Clone(members)
	for id := range s.voice {
		if !slices.ContainsFunc(s.members, func(m types.Member) bool { return m.ID == id }) {
			delete(s.voice, id)
		}
	}
}
