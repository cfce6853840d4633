package scrape

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"lol-scout/internal/domain"
	"lol-scout/internal/extract"
)

const championStatsAnchor = `"my_champion_stats":[`

// seasonTotalsRe pulls the RANKED play/win/lose triple out of the header
// window preceding the champion stats block.
var seasonTotalsRe = regexp.MustCompile(
	`"game_type"\s*:\s*"RANKED"[^}]*?"play"\s*:\s*(\d+)\s*,\s*"win"\s*:\s*(\d+)\s*,\s*"lose"\s*:\s*(\d+)`)

// ChampionStats is the champions-page result: season ranked totals plus
// the per-champion lines sorted by games played.
type ChampionStats struct {
	SeasonGames   int
	SeasonWins    int
	SeasonLosses  int
	SeasonWinrate float64
	Champions     []domain.ChampionRecord
}

// kdaField tolerates both shapes the source uses: a nested object with
// averages, or a bare number.
type kdaField struct {
	KDA       float64
	AvgKill   float64
	AvgDeath  float64
	AvgAssist float64
}

func (k *kdaField) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '{' {
		var obj struct {
			KDA       float64 `json:"kda"`
			AvgKill   float64 `json:"avg_kill"`
			AvgDeath  float64 `json:"avg_death"`
			AvgAssist float64 `json:"avg_assist"`
		}
		if json.Unmarshal(b, &obj) == nil {
			k.KDA = obj.KDA
			k.AvgKill = obj.AvgKill
			k.AvgDeath = obj.AvgDeath
			k.AvgAssist = obj.AvgAssist
		}
		return nil
	}
	var f float64
	if json.Unmarshal(b, &f) == nil {
		k.KDA = f
	}
	// A malformed field is treated as absent, never fatal.
	return nil
}

type championRow struct {
	ID         int      `json:"id"`
	ChampionID int      `json:"champion_id"`
	Key        string   `json:"key"`
	Name       string   `json:"name"`
	Play       int      `json:"play"`
	Win        int      `json:"win"`
	Lose       int      `json:"lose"`
	WinRate    float64  `json:"win_rate"`
	KDA        kdaField `json:"kda"`
	ImageURL   string   `json:"image_url"`
}

// Champions fetches the champions page and extracts the current-season
// champion statistics. A page without the stats block yields an empty
// result, not an error.
func (c *Client) Champions(ctx context.Context, gameName, tagLine string) (ChampionStats, error) {
	var result ChampionStats

	u := fmt.Sprintf("https://op.gg/lol/summoners/%s/%s/champions", c.region, slug(gameName, tagLine))
	html, err := c.fetcher.Fetch(ctx, u)
	if err != nil {
		return result, err
	}

	clean := extract.Unescape(html)
	idx := strings.Index(clean, "my_champion_stats")
	if idx < 0 {
		return result, nil
	}

	// Season totals sit in the RANKED summary just before the stats block.
	headerStart := idx - 500
	if headerStart < 0 {
		headerStart = 0
	}
	if m := seasonTotalsRe.FindStringSubmatch(clean[headerStart:idx]); m != nil {
		result.SeasonGames = atoi(m[1])
		result.SeasonWins = atoi(m[2])
		result.SeasonLosses = atoi(m[3])
		if result.SeasonGames > 0 {
			result.SeasonWinrate = domain.Round1(float64(result.SeasonWins) / float64(result.SeasonGames) * 100)
		}
	}

	raw, ok := extract.Aggregate(clean, championStatsAnchor)
	if !ok {
		return result, nil
	}

	var rows []championRow
	if !extract.Decode(raw, &rows) {
		c.logger.Debug().Str("game_name", gameName).Msg("champion stats payload did not decode")
		return result, nil
	}

	for _, r := range rows {
		championID := r.ChampionID
		if championID == 0 {
			championID = r.ID
		}
		// id 0 is the all-champions aggregate row.
		if championID == 0 || r.Play == 0 {
			continue
		}

		key := r.Key
		if key == "" && r.ImageURL != "" {
			key = strings.TrimSuffix(path.Base(r.ImageURL), ".png")
		}
		name := r.Name
		if name == "" {
			name = key
		}
		if name == "" {
			name = fmt.Sprintf("Champion %d", championID)
		}

		result.Champions = append(result.Champions, domain.NewChampionRecord(domain.ChampionRecord{
			ChampionID:   championID,
			ChampionName: name,
			ChampionKey:  key,
			Games:        r.Play,
			Wins:         r.Win,
			Losses:       r.Lose,
			Winrate:      domain.Round1(r.WinRate),
			KDA:          domain.Round2(r.KDA.KDA),
			AvgKills:     domain.Round1(r.KDA.AvgKill),
			AvgDeaths:    domain.Round1(r.KDA.AvgDeath),
			AvgAssists:   domain.Round1(r.KDA.AvgAssist),
		}))
	}

	sort.SliceStable(result.Champions, func(i, j int) bool {
		return result.Champions[i].Games > result.Champions[j].Games
	})

	return result, nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
