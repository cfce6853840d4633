package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"lol-scout/internal/constants"
)

// CounterStat is one entry from a champion's counter list: a champion
// favored into the queried champion, with its estimated win rate for
// that head-to-head.
type CounterStat struct {
	ChampionName string  `json:"champion_name"`
	WinRate      float64 `json:"win_rate"`
	Lane         string  `json:"lane"`
}

// Counters returns the best picks against a champion in a lane, cached
// for a day since matchup tables move slowly.
func (c *Client) Counters(ctx context.Context, champion, lane string) ([]CounterStat, error) {
	normChamp := normalizeChampionSlug(champion)
	normLane := normalizeLane(lane)

	cacheKey := fmt.Sprintf("counter:v1:%s:%s", normChamp, normLane)
	if val, err := c.redis.Get(ctx, cacheKey); err == nil && val != "" {
		var stats []CounterStat
		if json.Unmarshal([]byte(val), &stats) == nil {
			return stats, nil
		}
	}

	u := fmt.Sprintf("https://counterstats.net/league-of-legends/%s", normChamp)
	html, err := c.fetcher.Fetch(ctx, u)
	if err != nil {
		return nil, err
	}

	stats := parseCounterPage(html, normLane)
	if len(stats) == 0 {
		return nil, fmt.Errorf("no counters found for %s", champion)
	}

	if data, err := json.Marshal(stats); err == nil {
		if err := c.redis.Set(ctx, cacheKey, string(data), constants.CounterCacheTTL); err != nil {
			c.logger.Debug().Err(err).Str("key", cacheKey).Msg("failed to cache counters")
		}
	}

	return stats, nil
}

func parseCounterPage(html, lane string) []CounterStat {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var results []CounterStat
	doc.Find("div.champ-box__wrap").Each(func(_ int, section *goquery.Selection) {
		header := strings.ToLower(section.Find("h2").First().Text())
		if lane != "" && !strings.Contains(header, lane) {
			return
		}

		section.Find("div.champ-box").Each(func(_ int, box *goquery.Selection) {
			if !strings.Contains(strings.ToLower(box.Find("h3").Text()), "best picks") {
				return
			}

			box.Find("a.champ-box__row").Each(func(_ int, row *goquery.Selection) {
				if len(results) >= 10 {
					return
				}
				if style, ok := row.Attr("style"); ok && strings.Contains(style, "display:none") {
					return
				}

				name := strings.TrimSpace(row.Find("span.champion").Text())
				if name == "" {
					return
				}

				winRate := strings.TrimSpace(row.Find("span.win span.b").Text())
				if winRate == "" {
					winRate = strings.TrimSpace(row.Find("span.b").Text())
				}

				results = append(results, CounterStat{
					ChampionName: name,
					WinRate:      parsePercent(winRate),
					Lane:         detectLane(header),
				})
			})
		})
	})

	return results
}

func parsePercent(s string) float64 {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func detectLane(header string) string {
	switch {
	case strings.Contains(header, "mid"):
		return "Mid"
	case strings.Contains(header, "top"):
		return "Top"
	case strings.Contains(header, "jungle"):
		return "Jungle"
	case strings.Contains(header, "adc"), strings.Contains(header, "bot"):
		return "ADC"
	case strings.Contains(header, "support"):
		return "Support"
	}
	return "All"
}

// hyphenatedSlugs covers champions whose URL slug is not just the
// lowercased name with punctuation removed.
var hyphenatedSlugs = map[string]string{
	"aurelionsol": "aurelion-sol",
	"drmundo":     "dr-mundo",
	"jarvaniv":    "jarvan-iv",
	"leesin":      "lee-sin",
	"masteryi":    "master-yi",
	"missfortune": "miss-fortune",
	"monkeyking":  "wukong",
	"nunuwillump": "nunu",
	"renata":      "renata-glasc",
	"renataglasc": "renata-glasc",
	"tahmkench":   "tahm-kench",
	"twistedfate": "twisted-fate",
	"xinzhao":     "xin-zhao",
}

var slugCleanRe = regexp.MustCompile(`[^a-z0-9-]`)

func normalizeChampionSlug(name string) string {
	clean := strings.ToLower(strings.TrimSpace(name))
	clean = strings.NewReplacer("'", "", ".", "", " ", "", "&", "").Replace(clean)
	if mapped, ok := hyphenatedSlugs[clean]; ok {
		return mapped
	}
	return slugCleanRe.ReplaceAllString(clean, "")
}

func normalizeLane(lane string) string {
	switch strings.ToLower(strings.TrimSpace(lane)) {
	case "top":
		return "top"
	case "mid", "middle":
		return "mid"
	case "adc", "bot", "bottom":
		return "adc"
	case "jungle", "jg", "jung":
		return "jungle"
	case "support", "supp", "sup":
		return "support"
	}
	return ""
}
