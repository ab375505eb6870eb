package strategy

import (
	"fmt"

	"github.com/Willfwalker/Discord-Bot/types"
)

func makeMembers(prefix string, n int) []types.Member {
	members := make([]types.Member, n)
	for i := range members {
		members[i] = types.Member{ID: fmt.Sprintf("%s%d", prefix, i), Label: fmt.Sprintf("%s-%d", prefix, i)}
	}

	return members
}

func memberIDs(members []types.Member) []string {
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}

	return ids
}

func named(ids ...string) []types.Member {
	members := make([]types.Member, len(ids))
	for i, id := range ids {
		members[i] = types.Member{ID: id, Label: id}
	}

	return members
}
