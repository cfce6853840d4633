package analysis

import (
	"fmt"
	"math"
	"sort"

	"lol-scout/internal/domain"
)

// minBanGames is the floor below which a champion line is noise.
const minBanGames = 3

type banEntry struct {
	score       float64
	reasons     []string
	players     []string
	championKey string
	championID  int
}

// BanRecommendations scores the opposing roster's champion pools and
// returns the top 2n candidates, n prime targets plus n for context.
//
// Ranked games weighted by the player's tier are the primary signal.
// The two most-played champions of each player get slot multipliers,
// mastery adds a logarithmic bonus when the champion fits the player's
// tournament role, and OTP/MAIN pools get a final multiplier since a
// concentrated pool is easier to remove from the game.
func (e *Engine) BanRecommendations(opponent *domain.Team, numBans int) []domain.BanRecommendation {
	if numBans <= 0 {
		numBans = 5
	}
	scores := make(map[string]*banEntry)

	if opponent != nil {
		for _, player := range opponent.Players {
			e.scorePlayerPool(scores, player)
		}
	}

	results := make([]domain.BanRecommendation, 0, len(scores))
	for name, entry := range scores {
		results = append(results, domain.BanRecommendation{
			ChampionName: name,
			ChampionKey:  entry.championKey,
			ChampionID:   entry.championID,
			Score:        domain.Round1(entry.score),
			Reasons:      entry.reasons,
			Players:      dedupe(entry.players),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ChampionName < results[j].ChampionName
	})

	if len(results) > numBans*2 {
		results = results[:numBans*2]
	}
	return results
}

func (e *Engine) scorePlayerPool(scores map[string]*banEntry, player domain.Player) {
	stats := player.Stats
	if stats == nil {
		return
	}

	tierWeight := stats.Tier.Weight()
	tag, poolTop, tagged := classifyPool(stats.Champions)

	masteryByName := make(map[string]domain.MasteryRecord, len(stats.Masteries))
	for _, m := range stats.Masteries {
		masteryByName[m.ChampionName] = m
	}

	pool := stats.Champions
	if len(pool) > 10 {
		pool = pool[:10]
	}

	for i, champ := range pool {
		if champ.Games < minBanGames {
			continue
		}

		entry := scores[champ.ChampionName]
		if entry == nil {
			entry = &banEntry{championKey: champ.ChampionKey, championID: champ.ChampionID}
			scores[champ.ChampionName] = entry
		}

		score := float64(champ.Games) * tierWeight
		switch i {
		case 0:
			score *= 1.5
		case 1:
			score *= 1.2
		}

		reasons := []string{fmt.Sprintf("%s (%s, %dg)", player.GameName, stats.Tier.Display(), champ.Games)}

		if m, ok := masteryByName[champ.ChampionName]; ok && m.Points >= 10000 &&
			player.Role.MatchesChampionRoles(champ.Role) {
			points := m.Points
			if points < 1 {
				points = 1
			}
			score += math.Log10(float64(points)) * 5 * tierWeight
			reasons = append(reasons, fmt.Sprintf("Mastery Lvl %d, %s pts", m.Level, formatPoints(m.Points)))
		}

		if tagged && champ.ChampionName == poolTop.ChampionName {
			switch tag {
			case TagOTP:
				score *= 1.15
				reasons = append(reasons, "OTP")
			case TagMain:
				score *= 1.1
				reasons = append(reasons, "Main")
			}
		}

		entry.score += score
		entry.reasons = append(entry.reasons, reasons...)
		entry.players = append(entry.players, player.GameName)
	}
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := names[:0]
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
