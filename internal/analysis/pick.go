package analysis

import (
	"context"
	"fmt"
	"math"
	"sort"

	"lol-scout/internal/domain"
)

const (
	minPickGames = 3
	// counterMargin keeps near-even matchups out of the counter term.
	counterMargin = 2.0
	// banPenalty keeps likely-banned candidates visible but ranked down.
	banPenalty = 0.3
	picksPerRole = 5
)

// counterLanes maps tournament roles to the lane names matchup pages use.
var counterLanes = map[domain.Role]string{
	domain.RoleTop:     "top",
	domain.RoleJungle:  "jungle",
	domain.RoleMid:     "mid",
	domain.RoleBot:     "adc",
	domain.RoleSupport: "support",
}

// opposingMain is the champion an opponent is expected to play in a role.
type opposingMain struct {
	champion string
	tier     domain.Tier
}

// PickRecommendations suggests up to five picks per role from the own
// team's champion pools, scored against the opposing roster.
//
// The base score is the candidate's own winrate. On top of that: a
// counter term when matchup data against the opposing main in that role
// is decisive either way, a comfort term from mastery that weighs more
// against weaker opposition, and a small volume bonus. Candidates the
// opponent is likely to ban stay listed with a heavy multiplicative
// penalty instead of being dropped.
func (e *Engine) PickRecommendations(ctx context.Context, myTeam, opponent *domain.Team) map[domain.Role][]domain.PickRecommendation {
	likelyBans := make(map[string]bool)
	for _, b := range e.BanRecommendations(opponent, picksPerRole) {
		if len(likelyBans) >= picksPerRole {
			break
		}
		likelyBans[b.ChampionName] = true
	}

	mains := opposingMains(opponent)
	counterWR := e.lookupCounters(ctx, mains)

	byRole := make(map[domain.Role][]domain.PickRecommendation)
	if myTeam == nil {
		return byRole
	}

	for _, player := range myTeam.Players {
		stats := player.Stats
		if stats == nil || len(stats.Champions) == 0 {
			continue
		}
		role := player.Role
		if role == "" || role == domain.RoleFill {
			continue
		}

		oppWeight := 1.0
		if main, ok := mains[role]; ok {
			oppWeight = main.tier.Weight()
		}

		masteryByName := make(map[string]domain.MasteryRecord, len(stats.Masteries))
		for _, m := range stats.Masteries {
			masteryByName[m.ChampionName] = m
		}

		for _, champ := range stats.Champions {
			if champ.Games < minPickGames {
				continue
			}
			if !role.MatchesChampionRoles(champ.Role) {
				continue
			}

			score := champ.Winrate
			if score == 0 {
				score = 50
			}

			volume := float64(champ.Games) / 5
			if volume > 15 {
				volume = 15
			}
			score += volume

			if m, ok := masteryByName[champ.ChampionName]; ok && m.Points >= 10000 {
				comfort := math.Log10(float64(m.Points)) * 3 / oppWeight
				if comfort > 15 {
					comfort = 15
				}
				score += comfort
			}

			var counterNote string
			if wr, ok := counterWR[role][champ.ChampionName]; ok {
				advantage := wr - 50
				if math.Abs(advantage) > counterMargin {
					score += advantage
					main := mains[role].champion
					if advantage > 0 {
						counterNote = fmt.Sprintf("strong into %s (%.1f%% WR)", main, wr)
					} else {
						counterNote = fmt.Sprintf("weak into %s (%.1f%% WR)", main, wr)
					}
				}
			}

			banned := likelyBans[champ.ChampionName]
			if banned {
				score *= banPenalty
			}

			byRole[role] = append(byRole[role], domain.PickRecommendation{
				ChampionName: champ.ChampionName,
				ChampionKey:  champ.ChampionKey,
				ChampionID:   champ.ChampionID,
				Winrate:      champ.Winrate,
				Games:        champ.Games,
				KDA:          champ.KDA,
				Score:        domain.Round1(score),
				LikelyBanned: banned,
				Player:       player.GameName,
				CounterNote:  counterNote,
			})
		}
	}

	for role, picks := range byRole {
		sort.Slice(picks, func(i, j int) bool {
			if picks[i].Score != picks[j].Score {
				return picks[i].Score > picks[j].Score
			}
			return picks[i].ChampionName < picks[j].ChampionName
		})
		if len(picks) > picksPerRole {
			picks = picks[:picksPerRole]
		}
		byRole[role] = picks
	}

	return byRole
}

// opposingMains picks each opponent's most-played champion, per assigned
// role, as the expected lane matchup. Pools under 10 games on top say
// too little to predict a lock-in.
func opposingMains(opponent *domain.Team) map[domain.Role]opposingMain {
	mains := make(map[domain.Role]opposingMain)
	if opponent == nil {
		return mains
	}
	for _, player := range opponent.Players {
		stats := player.Stats
		if stats == nil || len(stats.Champions) == 0 {
			continue
		}
		role := player.Role
		if role == "" || role == domain.RoleFill {
			continue
		}
		if _, taken := mains[role]; taken {
			continue
		}
		top := stats.Champions[0]
		for _, c := range stats.Champions[1:] {
			if c.Games > top.Games {
				top = c
			}
		}
		if top.Games < 10 {
			continue
		}
		mains[role] = opposingMain{champion: top.ChampionName, tier: stats.Tier}
	}
	return mains
}

// lookupCounters fetches matchup data for each opposing main and indexes
// it by candidate champion name. Lookup failures just disable the
// counter term for that role.
func (e *Engine) lookupCounters(ctx context.Context, mains map[domain.Role]opposingMain) map[domain.Role]map[string]float64 {
	result := make(map[domain.Role]map[string]float64)
	if e.counters == nil {
		return result
	}
	for role, main := range mains {
		stats, err := e.counters.Counters(ctx, main.champion, counterLanes[role])
		if err != nil {
			e.logger.Debug().Err(err).
				Str("champion", main.champion).
				Str("role", string(role)).
				Msg("counter lookup unavailable")
			continue
		}
		wrs := make(map[string]float64, len(stats))
		for _, s := range stats {
			wrs[s.ChampionName] = s.WinRate
		}
		result[role] = wrs
	}
	return result
}
