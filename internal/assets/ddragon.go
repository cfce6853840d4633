// Package assets resolves slow-changing reference data: the current Data
// Dragon version and a static champion-to-lane table used as a fallback
// when per-player role inference fails.
package assets

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"lol-scout/internal/cache"
	"lol-scout/internal/constants"
	"lol-scout/internal/extract"
	"lol-scout/internal/fetch"
)

const (
	versionsURL = "https://ddragon.leagueoflegends.com/api/versions.json"

	// Used when the version list cannot be fetched and nothing is cached.
	fallbackVersion = "14.24.1"

	versionKey = "ddragon_version"
)

type DDragon struct {
	fetcher  fetch.Fetcher
	versions *cache.TTL[string]
	logger   zerolog.Logger
}

func NewDDragon(fetcher fetch.Fetcher, clock cache.Clock, logger zerolog.Logger) *DDragon {
	return &DDragon{
		fetcher:  fetcher,
		versions: cache.NewTTL[string](constants.DDragonVersionTTL, clock),
		logger:   logger,
	}
}

// LatestVersion returns the newest Data Dragon version, cached for 24h.
// Fetch failures fall back to the last cached value, then to a pinned
// version; icon URLs degrade gracefully either way.
func (d *DDragon) LatestVersion(ctx context.Context) string {
	if v, ok := d.versions.Get(versionKey); ok {
		return v
	}

	body, err := d.fetcher.Fetch(ctx, versionsURL)
	if err != nil {
		d.logger.Warn().Err(err).Msg("failed to fetch ddragon versions")
		return fallbackVersion
	}

	var versions []string
	if !extract.Decode(body, &versions) || len(versions) == 0 {
		d.logger.Warn().Msg("unexpected ddragon versions payload")
		return fallbackVersion
	}

	d.versions.Set(versionKey, versions[0])
	return versions[0]
}

// ChampionIconURL builds the CDN icon URL for a champion key.
func (d *DDragon) ChampionIconURL(ctx context.Context, championKey string) string {
	key := "Unknown"
	if championKey != "" {
		key = strings.ToUpper(championKey[:1]) + championKey[1:]
	}
	return fmt.Sprintf("https://ddragon.leagueoflegends.com/cdn/%s/img/champion/%s.png",
		d.LatestVersion(ctx), key)
}
