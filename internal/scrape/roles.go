package scrape

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"lol-scout/internal/assets"
)

// ChampionRoles infers each champion's recently-played lanes from the
// per-champion table on the history source. This adapter is best-effort:
// any failure returns an error the caller treats as "fall back to the
// static reference table", never as a reconciliation failure.
func (c *Client) ChampionRoles(ctx context.Context, gameName, tagLine string) (map[string]string, error) {
	u := fmt.Sprintf("https://www.leagueofgraphs.com/summoner/champions/%s/%s", c.region, slug(gameName, tagLine))
	html, err := c.fetcher.Fetch(ctx, u)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	roles := make(map[string]string)
	doc.Find("table.data_table tr").Each(func(_ int, row *goquery.Selection) {
		name := strings.TrimSpace(row.Find(".name").First().Text())
		if name == "" {
			return
		}
		var lanes []string
		row.Find(".rolesCell img, td.role img").Each(func(_ int, img *goquery.Selection) {
			if alt, ok := img.Attr("alt"); ok && alt != "" {
				lanes = append(lanes, strings.TrimSpace(alt))
			}
		})
		if len(lanes) > 0 {
			roles[name] = strings.Join(lanes, "/")
		}
	})

	return roles, nil
}

// RoleFor resolves a champion's lane tags from an inference result,
// falling back to the static reference table.
func RoleFor(inferred map[string]string, championName string) string {
	if inferred != nil {
		if r, ok := inferred[championName]; ok {
			return r
		}
	}
	return assets.LaneFor(championName)
}
