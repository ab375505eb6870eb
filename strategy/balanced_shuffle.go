package strategy

import (
	"math/rand/v2"
	"sync"

	"github.com/Willfwalker/Discord-Bot/types"
)

// BalancedShuffle shuffles candidates uniformly and slices them into balanced pods.
type BalancedShuffle struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ types.PodStrategy = (*BalancedShuffle)(nil)

// BalancedShuffleOption configures a BalancedShuffle strategy.
type BalancedShuffleOption func(*BalancedShuffle)

// NewBalancedShuffle creates a new balanced shuffle strategy.
//
// Without options the strategy draws from the math/rand/v2 global source,
// which is safe for concurrent use and seeded randomly at startup.
//
// Parameters:
//   - opts: Optional configuration (WithRand)
//
// Returns:
//   - *BalancedShuffle: Initialized strategy
//
// Example:
//
//	strat := strategy.NewBalancedShuffle()
//	bot, err := podbot.NewBot(&cfg, platform, platform, strat)
func NewBalancedShuffle(opts ...BalancedShuffleOption) *BalancedShuffle {
	bs := &BalancedShuffle{}
	for _, opt := range opts {
		opt(bs)
	}

	return bs
}

// WithRand injects the random source used by the shuffle.
//
// Tests pass a seeded source to pin the permutation. Access to the source is
// serialized by the strategy, so the same strategy may still be shared.
//
// Parameters:
//   - rng: Random source (nil keeps the global source)
//
// Returns:
//   - BalancedShuffleOption: Option for NewBalancedShuffle
//
// Example:
//
//	strat := strategy.NewBalancedShuffle(
//	    strategy.WithRand(rand.New(rand.NewPCG(1, 2))),
//	)
func WithRand(rng *rand.Rand) BalancedShuffleOption {
	return func(bs *BalancedShuffle) {
		bs.rng = rng
	}
}

// Partition distributes candidates across leaders.
//
// The algorithm:
//  1. Fisher-Yates shuffle a copy of the candidates
//  2. base = n/k, remainder = n%k; pod i holds base+1 members if i < remainder
//  3. Slice the shuffled candidates into contiguous runs in leader order
//
// Parameters:
//   - leaders: Pod leads, in the order pods should be produced
//   - candidates: Members to distribute
//
// Returns:
//   - types.Distribution: One pod per leader
//   - error: ErrNoLeaders or ErrNoCandidates
//
// Example:
//
//	dist, err := strat.Partition(leaders, candidates)
//	if errors.Is(err, strategy.ErrNoLeaders) { /* tell the issuer */ }
func (bs *BalancedShuffle) Partition(leaders, candidates []types.Member) (types.Distribution, error) {
	if err := validate(leaders, candidates); err != nil {
		return types.Distribution{}, err
	}

	shuffled := make([]types.Member, len(candidates))
	copy(shuffled, candidates)
	bs.shuffle(shuffled)

	return slicePods(leaders, shuffled), nil
}

// shuffle permutes members in place; every permutation is equally likely.
func (bs *BalancedShuffle) shuffle(members []types.Member) {
	intN := rand.IntN
	if bs.rng != nil {
		bs.mu.Lock()
		defer bs.mu.Unlock()
		intN = bs.rng.IntN
	}

	for i := len(members) - 1; i > 0; i-- {
		j := intN(i + 1)
		members[i], members[j] = members[j], members[i]
	}
}
