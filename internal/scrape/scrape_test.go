package scrape

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lol-scout/internal/cache"
	"lol-scout/internal/domain"
)

// stubFetcher serves canned bodies by URL substring, in order, so tests
// can distinguish an exact search from its name-only fallback.
type stubFetcher struct {
	rules []stubRule
	calls []string
}

type stubRule struct {
	substr string
	body   string
	err    error
}

func (s *stubFetcher) Fetch(_ context.Context, url string) (string, error) {
	s.calls = append(s.calls, url)
	for _, r := range s.rules {
		if strings.Contains(url, r.substr) {
			return r.body, r.err
		}
	}
	return "", errors.New("no stub for " + url)
}

func newTestScrapeClient(f *stubFetcher) *Client {
	logger := zerolog.New(nil)
	return NewClient(f, cache.NewRedisClient("", logger), "na", logger)
}

const identityPayload = `junk before \"data\":[{\"id\":1,\"game_name\":\"Faker\",\"tagline\":\"T1\",\"internal_name\":\"faker\",\"solo_tier_info\":{\"tier\":\"CHALLENGER\",\"division\":1,\"lp\":1203}},{\"id\":2,\"game_name\":\"Other\",\"tagline\":\"NA1\",\"internal_name\":\"other\",\"solo_tier_info\":null}] junk after`

func TestResolveIdentity(t *testing.T) {
	f := &stubFetcher{rules: []stubRule{
		{substr: "multisearch", body: identityPayload},
	}}
	c := newTestScrapeClient(f)

	ident, err := c.ResolveIdentity(context.Background(), "Faker", "T1")
	require.NoError(t, err)
	assert.Equal(t, "Faker", ident.ResolvedName)
	assert.Equal(t, "T1", ident.ResolvedTag)
	assert.Equal(t, "faker", ident.InternalName)
	assert.Equal(t, domain.TierChallenger, ident.Tier)
	assert.Equal(t, 1203, ident.LP)
}

func TestResolveIdentityNameOnlyFallback(t *testing.T) {
	// Exact name#tag search comes back empty; the name-only retry hits.
	f := &stubFetcher{rules: []stubRule{
		{substr: "%23", body: "<html>nothing here</html>"},
		{substr: "multisearch", body: identityPayload},
	}}
	c := newTestScrapeClient(f)

	ident, err := c.ResolveIdentity(context.Background(), "Faker", "KR9")
	require.NoError(t, err)
	require.Len(t, f.calls, 2)
	assert.Equal(t, "T1", ident.ResolvedTag)
	assert.Equal(t, domain.TierChallenger, ident.Tier)
}

func TestResolveIdentityNoData(t *testing.T) {
	f := &stubFetcher{rules: []stubRule{
		{substr: "multisearch", body: "<html>empty</html>"},
	}}
	c := newTestScrapeClient(f)

	ident, err := c.ResolveIdentity(context.Background(), "Ghost", "")
	require.NoError(t, err)
	assert.Equal(t, domain.TierUnranked, ident.Tier)
	assert.Empty(t, ident.ResolvedName)
}

func TestResolveIdentityNullTierInfo(t *testing.T) {
	f := &stubFetcher{rules: []stubRule{
		{substr: "multisearch", body: identityPayload},
	}}
	c := newTestScrapeClient(f)

	ident, err := c.ResolveIdentity(context.Background(), "Other", "NA1")
	require.NoError(t, err)
	assert.Equal(t, "Other", ident.ResolvedName)
	assert.Equal(t, domain.TierUnranked, ident.Tier)
}

const championsPayload = `{\"game_type\":\"RANKED\",\"play\":100,\"win\":55,\"lose\":45},\"my_champion_stats\":[{\"id\":0,\"play\":100,\"win\":55,\"lose\":45},{\"id\":266,\"key\":\"Aatrox\",\"name\":\"Aatrox\",\"play\":40,\"win\":25,\"lose\":15,\"win_rate\":62.5,\"kda\":{\"kda\":3.21,\"avg_kill\":7.1,\"avg_death\":4.2,\"avg_assist\":6.4},\"image_url\":\"https:\\/\\/cdn\\/Aatrox.png\"},{\"id\":103,\"name\":\"Ahri\",\"play\":60,\"win\":30,\"lose\":30,\"win_rate\":50,\"kda\":2.8,\"image_url\":\"https:\\/\\/cdn\\/Ahri.png\"},{\"id\":517,\"name\":\"Sylas\",\"play\":0,\"win\":0,\"lose\":0}]`

func TestChampions(t *testing.T) {
	f := &stubFetcher{rules: []stubRule{
		{substr: "/champions", body: championsPayload},
	}}
	c := newTestScrapeClient(f)

	stats, err := c.Champions(context.Background(), "Faker", "T1")
	require.NoError(t, err)

	assert.Equal(t, 100, stats.SeasonGames)
	assert.Equal(t, 55, stats.SeasonWins)
	assert.Equal(t, 45, stats.SeasonLosses)
	assert.Equal(t, 55.0, stats.SeasonWinrate)

	// Aggregate row (id 0) and zero-game rows are dropped; the rest are
	// sorted by games played.
	require.Len(t, stats.Champions, 2)
	assert.Equal(t, "Ahri", stats.Champions[0].ChampionName)
	assert.Equal(t, 60, stats.Champions[0].Games)
	assert.Equal(t, 2.8, stats.Champions[0].KDA)

	aatrox := stats.Champions[1]
	assert.Equal(t, "Aatrox", aatrox.ChampionKey)
	assert.Equal(t, 62.5, aatrox.Winrate)
	assert.Equal(t, 3.21, aatrox.KDA)
	assert.Equal(t, 7.1, aatrox.AvgKills)
}

func TestChampionsMissingBlock(t *testing.T) {
	f := &stubFetcher{rules: []stubRule{
		{substr: "/champions", body: "<html>no stats</html>"},
	}}
	c := newTestScrapeClient(f)

	stats, err := c.Champions(context.Background(), "Ghost", "NA1")
	require.NoError(t, err)
	assert.Empty(t, stats.Champions)
	assert.Zero(t, stats.SeasonGames)
}

const masteryPayload = `prefix \"champion_masteries\":[{\"champion_id\":266,\"name\":\"Aatrox\",\"key\":\"Aatrox\",\"level\":7,\"points\":234567},{\"champion_id\":103,\"level\":5,\"points\":45000,\"image_url\":\"https:\\/\\/cdn\\/Ahri.png\"},{\"champion_id\":1,\"name\":\"Annie\",\"level\":-1,\"points\":100}] suffix`

func TestMasteries(t *testing.T) {
	f := &stubFetcher{rules: []stubRule{
		{substr: "/mastery", body: masteryPayload},
	}}
	c := newTestScrapeClient(f)

	records, err := c.Masteries(context.Background(), "Faker", "T1")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Aatrox", records[0].ChampionName)
	assert.Equal(t, 234567, records[0].Points)

	// Name backfilled from the image key.
	assert.Equal(t, "Ahri", records[1].ChampionName)
	assert.Equal(t, "Ahri", records[1].ChampionKey)
}

func TestMasteriesAbsent(t *testing.T) {
	f := &stubFetcher{rules: []stubRule{
		{substr: "/mastery", body: "<html>fresh account</html>"},
	}}
	c := newTestScrapeClient(f)

	records, err := c.Masteries(context.Background(), "Ghost", "NA1")
	require.NoError(t, err)
	assert.Empty(t, records)
}

const historyPage = `<html><body>
<span class="tagDescription">Ranked Solo/Duo This player reached Diamond I during Season 14 (Split 2). At the end of the season, this player was Diamond II. Ranked Flex This player reached Gold I during Season 14 (Split 2). At the end of the season, this player was Gold II.</span>
<span class="tagDescription">Ranked Solo/Duo This player reached Master during Season 13. At the end of the season, this player was Diamond I.</span>
<span class="tagDescription">Ranked Flex This player reached Platinum I during Season 12. At the end of the season, this player was Platinum II.</span>
</body></html>`

func TestSeasonHistory(t *testing.T) {
	f := &stubFetcher{rules: []stubRule{
		{substr: "leagueofgraphs.com/summoner/na", body: historyPage},
	}}
	c := newTestScrapeClient(f)

	hist, err := c.SeasonHistory(context.Background(), "Faker", "T1")
	require.NoError(t, err)

	// The flex-only tag is skipped.
	require.Len(t, hist.History, 2)
	assert.Equal(t, "Season 14 (Split 2)", hist.History[0].Season)
	assert.Equal(t, "Diamond I", hist.History[0].PeakRank)
	assert.Equal(t, "Diamond II", hist.History[0].EndRank)

	assert.Equal(t, "Master", hist.PeakTier)
	// Most recent season label wins for the previous-season rank.
	assert.Equal(t, "Diamond II", hist.PreviousSeasonTier)
}

func TestSeasonHistoryEmpty(t *testing.T) {
	f := &stubFetcher{rules: []stubRule{
		{substr: "leagueofgraphs.com", body: "<html><body>no tags</body></html>"},
	}}
	c := newTestScrapeClient(f)

	hist, err := c.SeasonHistory(context.Background(), "Ghost", "NA1")
	require.NoError(t, err)
	assert.Empty(t, hist.History)
	assert.Empty(t, hist.PeakTier)
}

const rolesPage = `<html><body><table class="data_table">
<tr><td class="name">Sylas</td><td class="rolesCell"><img alt="Mid"><img alt="Jungle"></td></tr>
<tr><td class="name">Jinx</td><td class="rolesCell"><img alt="AD Carry"></td></tr>
<tr><td class="name">NoLanes</td><td class="rolesCell"></td></tr>
</table></body></html>`

func TestChampionRoles(t *testing.T) {
	f := &stubFetcher{rules: []stubRule{
		{substr: "/summoner/champions/", body: rolesPage},
	}}
	c := newTestScrapeClient(f)

	roles, err := c.ChampionRoles(context.Background(), "Faker", "T1")
	require.NoError(t, err)
	assert.Equal(t, "Mid/Jungle", roles["Sylas"])
	assert.Equal(t, "AD Carry", roles["Jinx"])
	assert.NotContains(t, roles, "NoLanes")
}

func TestRoleForFallsBackToStaticTable(t *testing.T) {
	inferred := map[string]string{"Sylas": "Jungle"}
	assert.Equal(t, "Jungle", RoleFor(inferred, "Sylas"))
	// Not inferred: the static reference table answers.
	assert.NotEmpty(t, RoleFor(inferred, "Jinx"))
	assert.NotEmpty(t, RoleFor(nil, "Ahri"))
}

const counterPage = `<html><body>
<div class="champ-box__wrap">
  <h2>Best Picks vs Ahri in Mid</h2>
  <div class="champ-box">
    <h3>Best Picks</h3>
    <a class="champ-box__row"><span class="champion">Kassadin</span><span class="win"><span class="b">56%</span></span></a>
    <a class="champ-box__row" style="display:none"><span class="champion">Hidden</span><span class="win"><span class="b">99%</span></span></a>
    <a class="champ-box__row"><span class="champion">Fizz</span><span class="win"><span class="b">53.4%</span></span></a>
  </div>
  <div class="champ-box">
    <h3>Worst Picks</h3>
    <a class="champ-box__row"><span class="champion">Azir</span><span class="win"><span class="b">44%</span></span></a>
  </div>
</div>
<div class="champ-box__wrap">
  <h2>Best Picks vs Ahri in Top</h2>
  <div class="champ-box">
    <h3>Best Picks</h3>
    <a class="champ-box__row"><span class="champion">Garen</span><span class="win"><span class="b">51%</span></span></a>
  </div>
</div>
</body></html>`

func TestCounters(t *testing.T) {
	f := &stubFetcher{rules: []stubRule{
		{substr: "counterstats.net", body: counterPage},
	}}
	c := newTestScrapeClient(f)

	stats, err := c.Counters(context.Background(), "Ahri", "mid")
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "Kassadin", stats[0].ChampionName)
	assert.Equal(t, 56.0, stats[0].WinRate)
	assert.Equal(t, "Mid", stats[0].Lane)
	assert.Equal(t, "Fizz", stats[1].ChampionName)
	assert.Equal(t, 53.4, stats[1].WinRate)
}

func TestCountersNoLaneFilterTakesAllSections(t *testing.T) {
	f := &stubFetcher{rules: []stubRule{
		{substr: "counterstats.net", body: counterPage},
	}}
	c := newTestScrapeClient(f)

	stats, err := c.Counters(context.Background(), "Ahri", "")
	require.NoError(t, err)
	assert.Len(t, stats, 3)
}

func TestCountersEmptyPage(t *testing.T) {
	f := &stubFetcher{rules: []stubRule{
		{substr: "counterstats.net", body: "<html></html>"},
	}}
	c := newTestScrapeClient(f)

	_, err := c.Counters(context.Background(), "Ahri", "mid")
	assert.Error(t, err)
}

func TestNormalizeChampionSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ahri", "ahri"},
		{"Kai'Sa", "kaisa"},
		{"Dr. Mundo", "dr-mundo"},
		{"Lee Sin", "lee-sin"},
		{"Aurelion Sol", "aurelion-sol"},
		{"Wukong", "wukong"},
		{"Renata Glasc", "renata-glasc"},
		{"Nunu & Willump", "nunu"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeChampionSlug(tt.in), tt.in)
	}
}

func TestParsePlayerInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []RiotID
	}{
		{"hash form", "Faker#T1", []RiotID{{GameName: "Faker", TagLine: "T1"}}},
		{"dash form", "Hide on bush-KR1", []RiotID{{GameName: "Hide on bush", TagLine: "KR1"}}},
		{"bare name", "Faker", []RiotID{{GameName: "Faker", TagLine: "NA1"}}},
		{"whitespace", "  Faker # T1 ", []RiotID{{GameName: "Faker", TagLine: "T1"}}},
		{"empty", "   ", nil},
		{
			"multi link",
			"https://op.gg/multisearch/na?summoners=Faker%23T1%2CChovy%23GEN1",
			[]RiotID{{GameName: "Faker", TagLine: "T1"}, {GameName: "Chovy", TagLine: "GEN1"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePlayerInput(tt.in))
		})
	}
}

func TestParseMultiSearchURL(t *testing.T) {
	ids := ParseMultiSearchURL("https://op.gg/multisearch/na?summoners=Faker%23T1%0ADoublelift-NA1%0ABareName")
	require.Len(t, ids, 3)
	assert.Equal(t, RiotID{GameName: "Faker", TagLine: "T1"}, ids[0])
	assert.Equal(t, RiotID{GameName: "Doublelift", TagLine: "NA1"}, ids[1])
	assert.Equal(t, RiotID{GameName: "BareName", TagLine: "NA1"}, ids[2])
}
