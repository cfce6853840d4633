package scrape

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"lol-scout/internal/domain"
)

// seasonEntryRe matches the per-season sentence inside a tag description.
var seasonEntryRe = regexp.MustCompile(
	`This player reached ([\w\s]+?) during (Season [\w\s()]+?)\.\s*At the end of the season, this player was ([\w\s]+?)\.`)

// SeasonHistory is the career summary built from past-season tags: peak
// ranks actually reached during each season, not just end-of-season ranks.
type SeasonHistory struct {
	PreviousSeasonTier string
	PeakTier           string
	History            []domain.SeasonRecord
}

// SeasonHistory fetches the player's profile on the history source and
// parses the past-season tag descriptions, keeping Solo/Duo entries only.
func (c *Client) SeasonHistory(ctx context.Context, gameName, tagLine string) (SeasonHistory, error) {
	var result SeasonHistory

	u := fmt.Sprintf("https://www.leagueofgraphs.com/summoner/%s/%s", c.region, slug(gameName, tagLine))
	html, err := c.fetcher.Fetch(ctx, u)
	if err != nil {
		return result, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return result, nil
	}

	doc.Find("span.tagDescription").Each(func(_ int, s *goquery.Selection) {
		// Each block reads "Ranked Solo/Duo | ... | Ranked Flex | ...";
		// only the Solo/Duo portion counts.
		text := normalizeSpace(s.Text())
		soloPart, _, _ := strings.Cut(text, "Ranked Flex")
		if !strings.Contains(soloPart, "Ranked Solo/Duo") {
			return
		}
		m := seasonEntryRe.FindStringSubmatch(soloPart)
		if m == nil {
			return
		}
		result.History = append(result.History, domain.SeasonRecord{
			Season:   strings.TrimSpace(m[2]),
			PeakRank: strings.TrimSpace(m[1]),
			EndRank:  strings.TrimSpace(m[3]),
		})
	})

	if len(result.History) == 0 {
		return result, nil
	}

	// All-time peak: the best peak rank across every season.
	best := result.History[0].PeakRank
	for _, e := range result.History[1:] {
		if domain.BetterRank(e.PeakRank, best) {
			best = e.PeakRank
		}
	}
	result.PeakTier = best

	// Previous season: end rank of the most recent season. Page order is
	// not guaranteed, so pick the greatest season label.
	recent := result.History[0]
	for _, e := range result.History[1:] {
		if e.Season > recent.Season {
			recent = e
		}
	}
	result.PreviousSeasonTier = recent.EndRank

	return result, nil
}

var spaceRe = regexp.MustCompile(`\s+`)

func normalizeSpace(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
