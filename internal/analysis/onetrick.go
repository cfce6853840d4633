package analysis

import (
	"sort"

	"lol-scout/internal/domain"
)

const (
	TagOTP  = "OTP"
	TagMain = "MAIN"
)

// classifyPool tags a champion pool by how concentrated it is on the
// most-played champion, using the ratio to the second-most-played with
// an adaptive threshold: the more games on top, the smaller the ratio
// required. A pool with no real second champion is an OTP outright once
// the top champion carries enough games.
func classifyPool(champs []domain.ChampionRecord) (tag string, top domain.ChampionRecord, ok bool) {
	if len(champs) == 0 {
		return "", domain.ChampionRecord{}, false
	}

	sorted := make([]domain.ChampionRecord, len(champs))
	copy(sorted, champs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Games > sorted[j].Games
	})

	top = sorted[0]
	topGames := top.Games
	secondGames := 0
	if len(sorted) >= 2 {
		secondGames = sorted[1].Games
	}

	switch {
	case topGames >= 20 && secondGames <= 2:
		return TagOTP, top, true
	case secondGames == 0 && topGames >= 10:
		return TagOTP, top, true
	case topGames >= 10 && secondGames > 0:
		ratioNeeded := 2.0 - float64(topGames-10)*0.0125
		if ratioNeeded < 1.5 {
			ratioNeeded = 1.5
		}
		if float64(topGames)/float64(secondGames) >= ratioNeeded {
			return TagMain, top, true
		}
	}
	return "", domain.ChampionRecord{}, false
}

// IdentifyOneTricks finds players whose pools are concentrated enough on
// a single champion to tag them OTP or MAIN.
func (e *Engine) IdentifyOneTricks(team *domain.Team) []domain.OneTrick {
	var results []domain.OneTrick
	if team == nil {
		return results
	}

	for _, player := range team.Players {
		stats := player.Stats
		if stats == nil || len(stats.Champions) == 0 {
			continue
		}

		tag, top, ok := classifyPool(stats.Champions)
		if !ok {
			continue
		}

		total := stats.SeasonGames
		if total == 0 {
			for _, c := range stats.Champions {
				total += c.Games
			}
		}
		if total < 1 {
			total = 1
		}

		results = append(results, domain.OneTrick{
			Player:      player.GameName,
			Role:        player.Role,
			Champion:    top.ChampionName,
			ChampionKey: top.ChampionKey,
			Games:       top.Games,
			Pct:         domain.Round1(float64(top.Games) / float64(total) * 100),
			Winrate:     top.Winrate,
			Tag:         tag,
		})
	}
	return results
}
