package strategy

import "github.com/Willfwalker/Discord-Bot/types"

// validate applies the failure rules shared by all strategies.
// Leaders are checked first, independent of the candidate count.
func validate(leaders, candidates []types.Member) error {
	if len(leaders) == 0 {
		return ErrNoLeaders
	}
	if len(candidates) == 0 {
		return ErrNoCandidates
	}

	return nil
}

// podSizes returns the size of each of k pods holding n members.
// The first n%k pods get one extra member.
func podSizes(n, k int) []int {
	base := n / k
	remainder := n % k

	sizes := make([]int, k)
	for i := range sizes {
		sizes[i] = base
		if i < remainder {
			sizes[i]++
		}
	}

	return sizes
}

// slicePods cuts ordered into contiguous runs matching the pod sizes.
func slicePods(leaders, ordered []types.Member) types.Distribution {
	sizes := podSizes(len(ordered), len(leaders))
	pods := make([]types.Pod, len(leaders))

	offset := 0
	for i, leader := range leaders {
		members := make([]types.Member, sizes[i])
		copy(members, ordered[offset:offset+sizes[i]])
		offset += sizes[i]

		pods[i] = types.Pod{
			Index:   i + 1,
			Leader:  leader,
			Members: members,
			Size:    sizes[i],
		}
	}

	return types.Distribution{
		Pods:         pods,
		TotalMembers: len(ordered),
		PodLeadCount: len(leaders),
	}
}
