package assets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type countingFetcher struct {
	body  string
	err   error
	calls int
}

func (f *countingFetcher) Fetch(context.Context, string) (string, error) {
	f.calls++
	return f.body, f.err
}

func TestLatestVersionCached(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	fetcher := &countingFetcher{body: `["15.2.1","15.1.1"]`}
	d := NewDDragon(fetcher, clock, zerolog.New(nil))

	ctx := context.Background()
	assert.Equal(t, "15.2.1", d.LatestVersion(ctx))
	assert.Equal(t, "15.2.1", d.LatestVersion(ctx))
	assert.Equal(t, 1, fetcher.calls)

	// A day later the cache expires and the fetch repeats.
	clock.now = clock.now.Add(25 * time.Hour)
	fetcher.body = `["15.3.1"]`
	assert.Equal(t, "15.3.1", d.LatestVersion(ctx))
	assert.Equal(t, 2, fetcher.calls)
}

func TestLatestVersionFallback(t *testing.T) {
	fetcher := &countingFetcher{err: errors.New("unreachable")}
	d := NewDDragon(fetcher, &fakeClock{now: time.Now()}, zerolog.New(nil))

	assert.Equal(t, "14.24.1", d.LatestVersion(context.Background()))
}

func TestChampionIconURL(t *testing.T) {
	fetcher := &countingFetcher{body: `["15.2.1"]`}
	d := NewDDragon(fetcher, &fakeClock{now: time.Now()}, zerolog.New(nil))

	url := d.ChampionIconURL(context.Background(), "ahri")
	assert.Equal(t, "https://ddragon.leagueoflegends.com/cdn/15.2.1/img/champion/Ahri.png", url)

	url = d.ChampionIconURL(context.Background(), "")
	assert.Contains(t, url, "/Unknown.png")
}

func TestLaneFor(t *testing.T) {
	assert.Equal(t, "Mid", LaneFor("Ahri"))
	assert.Equal(t, "Bot", LaneFor("Jinx"))
	assert.Empty(t, LaneFor("NotAChampion"))
}
