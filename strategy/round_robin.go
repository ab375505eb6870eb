package strategy

import "github.com/Willfwalker/Discord-Bot/types"

// RoundRobin implements deterministic round-robin pod assignment.
type RoundRobin struct{}

var _ types.PodStrategy = (*RoundRobin)(nil)

// NewRoundRobin creates a new round-robin strategy.
//
// The strategy deals candidates to pods in the order given, like dealing
// cards: candidate i goes to pod i mod k. Pod sizes match BalancedShuffle,
// but no randomness is involved.
//
// Returns:
//   - *RoundRobin: Initialized round-robin strategy
func NewRoundRobin() *RoundRobin {
	return &RoundRobin{}
}

// Partition deals candidates across leaders in round-robin fashion.
//
// Parameters:
//   - leaders: Pod leads, in the order pods should be produced
//   - candidates: Members to distribute, in dealing order
//
// Returns:
//   - types.Distribution: One pod per leader
//   - error: ErrNoLeaders or ErrNoCandidates
func (rr *RoundRobin) Partition(leaders, candidates []types.Member) (types.Distribution, error) {
	if err := validate(leaders, candidates); err != nil {
		return types.Distribution{}, err
	}

	pods := make([]types.Pod, len(leaders))
	for i, leader := range leaders {
		pods[i] = types.Pod{Index: i + 1, Leader: leader, Members: []types.Member{}}
	}

	for i, c := range candidates {
		p := &pods[i%len(pods)]
		p.Members = append(p.Members, c)
		p.Size++
	}

	return types.Distribution{
		Pods:         pods,
		TotalMembers: len(candidates),
		PodLeadCount: len(leaders),
	}, nil
}
