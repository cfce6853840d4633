package domain

import "strings"

// Role is a player's assigned tournament position. RoleFill is a wildcard
// that matches any champion lane in compatibility checks.
type Role string

const (
	RoleTop     Role = "top"
	RoleJungle  Role = "jungle"
	RoleMid     Role = "mid"
	RoleBot     Role = "bot"
	RoleSupport Role = "support"
	RoleFill    Role = "fill"
)

// Roles lists the five assignable positions in draft order.
var Roles = []Role{RoleTop, RoleJungle, RoleMid, RoleBot, RoleSupport}

// roleAliases maps each canonical role to the lane tags the stat sites use.
var roleAliases = map[Role][]string{
	RoleTop:     {"top"},
	RoleJungle:  {"jgl", "jungle", "jung"},
	RoleMid:     {"mid", "middle"},
	RoleBot:     {"bot", "adc", "bottom", "ad carry"},
	RoleSupport: {"sup", "support", "supp"},
}

// ParseRole normalizes free-form role input; anything unknown becomes fill.
func ParseRole(s string) Role {
	r := strings.ToLower(strings.TrimSpace(s))
	for role, aliases := range roleAliases {
		if r == string(role) {
			return role
		}
		for _, a := range aliases {
			if r == a {
				return role
			}
		}
	}
	return RoleFill
}

// MatchesChampionRoles checks a champion's slash-separated lane tags
// (e.g. "Mid/Top") against the role. Either side unspecified, or the
// wildcard fill role, always matches.
func (r Role) MatchesChampionRoles(champRoles string) bool {
	if champRoles == "" || r == "" || r == RoleFill {
		return true
	}
	aliases, ok := roleAliases[r]
	if !ok {
		aliases = []string{string(r)}
	}
	for _, part := range strings.Split(champRoles, "/") {
		part = strings.ToLower(strings.TrimSpace(part))
		for _, a := range aliases {
			if part == a {
				return true
			}
		}
	}
	return false
}
