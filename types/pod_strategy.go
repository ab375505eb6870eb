package types

// PodStrategy partitions candidates into one pod per leader.
//
// Implementations must:
//   - Return ErrNoLeaders when leaders is empty (checked before candidates)
//   - Return ErrNoCandidates when candidates is empty
//   - Produce exactly len(leaders) pods, in leader order
//   - Place every candidate in exactly one pod
//   - Keep pod sizes within one of each other, larger pods first
//   - Leave the input slices untouched
//
// The bot calls Partition from concurrent event handlers, so implementations
// must be safe for concurrent use.
type PodStrategy interface {
	// Partition distributes candidates across the given leaders.
	//
	// Parameters:
	//   - leaders: Pod leads; iteration order decides pod order and remainder placement
	//   - candidates: Members to distribute (order irrelevant)
	//
	// Returns:
	//   - Distribution: Pods plus summary counts
	//   - error: ErrNoLeaders or ErrNoCandidates
	Partition(leaders, candidates []Member) (Distribution, error)
}
