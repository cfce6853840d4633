package scrape

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"lol-scout/internal/domain"
	"lol-scout/internal/extract"
)

// dataAnchor marks the summoner array inside the multisearch RSC payload.
const dataAnchor = `"data":[{"id"`

// Identity is the resolved canonical form of a player plus their current
// solo-queue standing. The user-supplied tag may be stale or mistyped;
// ResolvedName/ResolvedTag are the provider's truth when present.
type Identity struct {
	Tier         domain.Tier
	Division     int
	LP           int
	ResolvedName string
	ResolvedTag  string
	InternalName string
}

type multisearchSummoner struct {
	GameName     string `json:"game_name"`
	Tagline      string `json:"tagline"`
	InternalName string `json:"internal_name"`
	SoloTierInfo *struct {
		Tier     string `json:"tier"`
		Division int    `json:"division"`
		LP       int    `json:"lp"`
	} `json:"solo_tier_info"`
}

// ResolveIdentity fetches the multisearch page for name#tag and extracts
// the matching summoner. An exact name#tag search that returns no data
// fails over to a name-only search, since the user-provided tag may be
// wrong. A page with no usable data yields a default identity, not an
// error; only fetch failures are returned.
func (c *Client) ResolveIdentity(ctx context.Context, gameName, tagLine string) (Identity, error) {
	ident := Identity{Tier: domain.TierUnranked}

	searchTerm := gameName
	if tagLine != "" {
		searchTerm = gameName + "#" + tagLine
	}

	clean, err := c.fetchMultisearch(ctx, searchTerm)
	if err != nil {
		return ident, err
	}

	// Exact search came back empty: retry by name alone.
	if !strings.Contains(clean, dataAnchor) && tagLine != "" {
		fallback, ferr := c.fetchMultisearch(ctx, gameName)
		if ferr == nil {
			clean = fallback
		}
	}

	raw, ok := extract.Aggregate(clean, dataAnchor)
	if !ok {
		return ident, nil
	}

	var summoners []multisearchSummoner
	if !extract.Decode(raw, &summoners) {
		c.logger.Debug().Str("game_name", gameName).Msg("multisearch payload did not decode")
		return ident, nil
	}

	target := strings.ToLower(gameName)
	for _, s := range summoners {
		if strings.ToLower(s.GameName) != target {
			continue
		}
		ident.ResolvedName = s.GameName
		ident.ResolvedTag = s.Tagline
		ident.InternalName = s.InternalName
		if s.SoloTierInfo != nil {
			ident.Tier = domain.ParseTier(s.SoloTierInfo.Tier)
			ident.Division = s.SoloTierInfo.Division
			ident.LP = s.SoloTierInfo.LP
		}
		break
	}

	return ident, nil
}

func (c *Client) fetchMultisearch(ctx context.Context, searchTerm string) (string, error) {
	u := fmt.Sprintf("https://op.gg/lol/multisearch/%s?summoners=%s",
		c.region, url.QueryEscape(searchTerm))
	html, err := c.fetcher.Fetch(ctx, u)
	if err != nil {
		return "", err
	}
	return extract.Unescape(html), nil
}
