package domain

import "strings"

// Tier is a competitive rank bracket.
type Tier string

const (
	TierChallenger  Tier = "CHALLENGER"
	TierGrandmaster Tier = "GRANDMASTER"
	TierMaster      Tier = "MASTER"
	TierDiamond     Tier = "DIAMOND"
	TierEmerald     Tier = "EMERALD"
	TierPlatinum    Tier = "PLATINUM"
	TierGold        Tier = "GOLD"
	TierSilver      Tier = "SILVER"
	TierBronze      Tier = "BRONZE"
	TierIron        Tier = "IRON"
	TierUnranked    Tier = "UNRANKED"
)

// tierWeights drives ban scoring. Higher tiers weigh more; UNRANKED sits
// below average because an unranked pool says little about current form.
var tierWeights = map[Tier]float64{
	TierChallenger:  2.0,
	TierGrandmaster: 1.8,
	TierMaster:      1.6,
	TierDiamond:     1.3,
	TierEmerald:     1.1,
	TierPlatinum:    1.0,
	TierGold:        0.9,
	TierSilver:      0.8,
	TierBronze:      0.7,
	TierIron:        0.6,
	TierUnranked:    0.8,
}

// tierOrder ranks tiers for sorting, 0 is best.
var tierOrder = map[string]int{
	"challenger":  0,
	"grandmaster": 1,
	"master":      2,
	"diamond":     3,
	"emerald":     4,
	"platinum":    5,
	"gold":        6,
	"silver":      7,
	"bronze":      8,
	"iron":        9,
}

var apexTiers = map[Tier]bool{
	TierChallenger:  true,
	TierGrandmaster: true,
	TierMaster:      true,
}

// ParseTier normalizes a scraped tier string. Anything unknown is UNRANKED.
func ParseTier(s string) Tier {
	t := Tier(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := tierWeights[t]; ok {
		return t
	}
	return TierUnranked
}

// Weight returns the scoring weight for the tier.
func (t Tier) Weight() float64 {
	if w, ok := tierWeights[t]; ok {
		return w
	}
	return 1.0
}

// IsApex reports whether the tier has no divisions.
func (t Tier) IsApex() bool {
	return apexTiers[t]
}

// Display capitalizes the tier for human-readable output.
func (t Tier) Display() string {
	s := strings.ToLower(string(t))
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var divisionOrder = map[string]int{"I": 1, "II": 2, "III": 3, "IV": 4}

// RankSortKey converts a rank string such as "Diamond II" into a sortable
// pair where lower is better. Unknown tiers sort last.
func RankSortKey(rank string) (int, int) {
	parts := strings.Fields(rank)
	if len(parts) == 0 {
		return 999, 5
	}
	tier, ok := tierOrder[strings.ToLower(parts[0])]
	if !ok {
		return 999, 5
	}
	div := 5
	if len(parts) > 1 {
		if d, ok := divisionOrder[strings.ToUpper(parts[1])]; ok {
			div = d
		}
	}
	return tier, div
}

// BetterRank reports whether rank a is strictly higher than rank b.
func BetterRank(a, b string) bool {
	at, ad := RankSortKey(a)
	bt, bd := RankSortKey(b)
	if at != bt {
		return at < bt
	}
	return ad < bd
}
