// Package scrape contains one adapter per third-party stat source. Every
// adapter fetches a document, extracts an embedded payload and maps it
// into the common domain schema. Adapters fail independently: an error
// from one never prevents the others from producing data.
package scrape

import (
	"net/url"

	"github.com/rs/zerolog"

	"lol-scout/internal/cache"
	"lol-scout/internal/fetch"
)

type Client struct {
	fetcher fetch.Fetcher
	redis   *cache.RedisClient
	region  string
	logger  zerolog.Logger
}

func NewClient(fetcher fetch.Fetcher, redis *cache.RedisClient, region string, logger zerolog.Logger) *Client {
	if region == "" {
		region = "na"
	}
	return &Client{
		fetcher: fetcher,
		redis:   redis,
		region:  region,
		logger:  logger,
	}
}

// slug builds the percent-encoded name-tag path segment the summoner
// pages use.
func slug(gameName, tagLine string) string {
	return url.PathEscape(gameName + "-" + tagLine)
}
