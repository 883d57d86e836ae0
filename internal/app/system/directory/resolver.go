// Package directory resolves which council member represents an
// organizational area on the public structure pages.
package directory

import "github.com/ceitm/platform/internal/domain/models"

// Resolve returns the member representing the given coordination: the first
// member in roster order whose area matches and whose role is eligible
// (coordinador, estructura or vocal). ok=false means the seat is vacant,
// an expected state, not an error.
//
// The area match prefers the stable AreaID join. Records imported from the
// legacy data carry only a label; for those the original exact,
// case-sensitive label comparison is preserved. The source data is expected
// to hold at most one active representative per area; multiplicity is not
// validated, the first match simply wins.
func Resolve(coord models.Coordination, roster []models.CouncilMember) (models.CouncilMember, bool) {
	for _, m := range roster {
		if !matchesArea(m, coord) {
			continue
		}
		if !models.IsRepresentativeRole(m.Role) {
			continue
		}
		return m, true
	}
	return models.CouncilMember{}, false
}

// Members returns every roster entry assigned to the coordination, in
// roster order, regardless of role. Used by the concejales page grouping.
func Members(coord models.Coordination, roster []models.CouncilMember) []models.CouncilMember {
	var out []models.CouncilMember
	for _, m := range roster {
		if matchesArea(m, coord) {
			out = append(out, m)
		}
	}
	return out
}

func matchesArea(m models.CouncilMember, coord models.Coordination) bool {
	if m.AreaID != "" {
		return m.AreaID == coord.ID
	}
	return m.AreaLabel == coord.Label
}
