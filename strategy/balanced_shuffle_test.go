package strategy

import (
	"math/rand/v2"
	"testing"

	"github.com/Willfwalker/Discord-Bot/types"
	"github.com/stretchr/testify/require"
)

func TestBalancedShuffle_Partition(t *testing.T) {
	t.Run("five candidates over two leaders", func(t *testing.T) {
		strat := NewBalancedShuffle()
		leaders := named("L1", "L2")
		candidates := named("A", "B", "C", "D", "E")

		dist, err := strat.Partition(leaders, candidates)

		require.NoError(t, err)
		require.Len(t, dist.Pods, 2)
		require.Equal(t, "L1", dist.Pods[0].Leader.ID)
		require.Equal(t, 3, dist.Pods[0].Size)
		require.Equal(t, "L2", dist.Pods[1].Leader.ID)
		require.Equal(t, 2, dist.Pods[1].Size)
		require.Equal(t, 5, dist.TotalMembers)
		require.Equal(t, 2, dist.PodLeadCount)
	})

	t.Run("one candidate over three leaders", func(t *testing.T) {
		strat := NewBalancedShuffle()

		dist, err := strat.Partition(named("L1", "L2", "L3"), named("A"))

		require.NoError(t, err)
		require.Equal(t, []int{1, 0, 0}, dist.Sizes())
		require.Equal(t, "A", dist.Pods[0].Members[0].ID)
		require.Empty(t, dist.Pods[1].Members)
		require.Empty(t, dist.Pods[2].Members)
	})

	t.Run("no candidates", func(t *testing.T) {
		strat := NewBalancedShuffle()

		_, err := strat.Partition(named("L1"), nil)

		require.ErrorIs(t, err, types.ErrNoCandidates)
	})

	t.Run("no leaders", func(t *testing.T) {
		strat := NewBalancedShuffle()

		_, err := strat.Partition(nil, named("A", "B"))

		require.ErrorIs(t, err, types.ErrNoLeaders)
	})

	t.Run("no leaders wins over no candidates", func(t *testing.T) {
		strat := NewBalancedShuffle()

		_, err := strat.Partition(nil, nil)

		require.ErrorIs(t, err, types.ErrNoLeaders)
	})

	t.Run("pod indexes are one-based in leader order", func(t *testing.T) {
		strat := NewBalancedShuffle()

		dist, err := strat.Partition(named("L1", "L2", "L3"), makeMembers("c", 7))

		require.NoError(t, err)
		for i, pod := range dist.Pods {
			require.Equal(t, i+1, pod.Index)
		}
	})

	t.Run("does not mutate inputs", func(t *testing.T) {
		strat := NewBalancedShuffle()
		leaders := named("L1", "L2")
		candidates := makeMembers("c", 10)
		before := memberIDs(candidates)

		_, err := strat.Partition(leaders, candidates)

		require.NoError(t, err)
		require.Equal(t, before, memberIDs(candidates))
		require.Equal(t, []string{"L1", "L2"}, memberIDs(leaders))
	})
}

func TestBalancedShuffle_InjectedRand(t *testing.T) {
	t.Run("same seed gives same pods", func(t *testing.T) {
		leaders := named("L1", "L2", "L3")
		candidates := makeMembers("c", 11)

		a, err := NewBalancedShuffle(WithRand(rand.New(rand.NewPCG(7, 11)))).Partition(leaders, candidates)
		require.NoError(t, err)
		b, err := NewBalancedShuffle(WithRand(rand.New(rand.NewPCG(7, 11)))).Partition(leaders, candidates)
		require.NoError(t, err)

		require.Equal(t, a, b)
	})

	t.Run("follows Fisher-Yates draws exactly", func(t *testing.T) {
		leaders := named("L1", "L2")
		candidates := named("A", "B", "C", "D", "E")

		// Replay the draws the strategy makes to build the expected permutation.
		replay := rand.New(rand.NewPCG(42, 99))
		want := named("A", "B", "C", "D", "E")
		for i := len(want) - 1; i > 0; i-- {
			j := replay.IntN(i + 1)
			want[i], want[j] = want[j], want[i]
		}

		strat := NewBalancedShuffle(WithRand(rand.New(rand.NewPCG(42, 99))))
		dist, err := strat.Partition(leaders, candidates)

		require.NoError(t, err)
		require.Equal(t, memberIDs(want[:3]), memberIDs(dist.Pods[0].Members))
		require.Equal(t, memberIDs(want[3:]), memberIDs(dist.Pods[1].Members))
	})

	t.Run("nil rand falls back to global source", func(t *testing.T) {
		strat := NewBalancedShuffle(WithRand(nil))

		dist, err := strat.Partition(named("L1"), makeMembers("c", 4))

		require.NoError(t, err)
		require.Equal(t, 4, dist.Pods[0].Size)
	})
}

func TestBalancedShuffle_RepeatedRunsDiffer(t *testing.T) {
	strat := NewBalancedShuffle()
	leaders := named("L1", "L2")
	candidates := makeMembers("c", 20)

	first, err := strat.Partition(leaders, candidates)
	require.NoError(t, err)

	// 20! orderings: a repeat of the exact arrangement across several runs is negligible.
	differs := false
	for range 5 {
		next, err := strat.Partition(leaders, candidates)
		require.NoError(t, err)
		require.Equal(t, first.Sizes(), next.Sizes())
		if !equalPods(first, next) {
			differs = true
		}
	}
	require.True(t, differs, "shuffle should change member order between runs")
}

func TestBalancedShuffle_ConcurrentUse(t *testing.T) {
	strat := NewBalancedShuffle(WithRand(rand.New(rand.NewPCG(1, 2))))
	leaders := named("L1", "L2", "L3")
	candidates := makeMembers("c", 30)

	done := make(chan types.Distribution, 8)
	for range 8 {
		go func() {
			dist, _ := strat.Partition(leaders, candidates)
			done <- dist
		}()
	}
	for range 8 {
		dist := <-done
		require.Equal(t, []int{10, 10, 10}, dist.Sizes())
	}
}

func BenchmarkBalancedShuffle_Partition(b *testing.B) {
	strat := NewBalancedShuffle()
	leaders := makeMembers("L", 8)
	candidates := makeMembers("c", 200)

	for b.Loop() {
		_, _ = strat.Partition(leaders, candidates)
	}
}

func equalPods(a, b types.Distribution) bool {
	for i := range a.Pods {
		ai, bi := memberIDs(a.Pods[i].Members), memberIDs(b.Pods[i].Members)
		for j := range ai {
			if ai[j] != bi[j] {
				return false
			}
		}
	}

	return true
}
