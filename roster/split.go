package roster

import "github.com/Willfwalker/Discord-Bot/types"

// Split classifies the members of a scope.
//
// Bots are dropped. Members carrying the lead role become leaders, everyone
// else becomes a candidate. Input order is preserved in both results.
//
// Parameters:
//   - members: Scope roster (voice channel occupants or the whole guild)
//   - leadRoleID: ID of the pod lead role
//   - auth: Role checker
//
// Returns:
//   - leaders: Non-bot members holding the lead role
//   - candidates: Non-bot members without the lead role
//
// Example:
//
//	leaders, candidates := roster.Split(members, role.ID, platform)
//	dist, err := strat.Partition(leaders, candidates)
func Split(members []types.Member, leadRoleID string, auth types.Authorizer) (leaders, candidates []types.Member) {
	for _, m := range members {
		if m.Bot {
			continue
		}
		if auth.HasRole(m, leadRoleID) {
			leaders = append(leaders, m)
		} else {
			candidates = append(candidates, m)
		}
	}

	return leaders, candidates
}
