package scrape

import (
	"context"
	"fmt"
	"path"
	"strings"

	"lol-scout/internal/domain"
	"lol-scout/internal/extract"
)

const masteryAnchor = `"champion_masteries":[`

type masteryRow struct {
	ChampionID int    `json:"champion_id"`
	Name       string `json:"name"`
	Key        string `json:"key"`
	Level      int    `json:"level"`
	Points     int    `json:"points"`
	ImageURL   string `json:"image_url"`
}

// Masteries fetches the mastery page and extracts per-champion mastery
// levels and points. A player with no mastery section yields an empty
// slice, not an error.
func (c *Client) Masteries(ctx context.Context, gameName, tagLine string) ([]domain.MasteryRecord, error) {
	u := fmt.Sprintf("https://op.gg/lol/summoners/%s/%s/mastery", c.region, slug(gameName, tagLine))
	html, err := c.fetcher.Fetch(ctx, u)
	if err != nil {
		return nil, err
	}

	raw, ok := extract.Aggregate(extract.Unescape(html), masteryAnchor)
	if !ok {
		return nil, nil
	}

	var rows []masteryRow
	if !extract.Decode(raw, &rows) {
		c.logger.Debug().Str("game_name", gameName).Msg("mastery payload did not decode")
		return nil, nil
	}

	var records []domain.MasteryRecord
	for _, r := range rows {
		key := r.Key
		if key == "" && r.ImageURL != "" {
			key = strings.TrimSuffix(path.Base(r.ImageURL), ".png")
		}
		name := r.Name
		if name == "" {
			name = key
		}
		if name == "" {
			continue
		}
		if r.Level < 0 || r.Points < 0 {
			continue
		}
		records = append(records, domain.MasteryRecord{
			ChampionID:   r.ChampionID,
			ChampionName: name,
			ChampionKey:  key,
			Level:        r.Level,
			Points:       r.Points,
		})
	}

	return records, nil
}
