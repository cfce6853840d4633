package reconcile

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lol-scout/internal/domain"
	"lol-scout/internal/scrape"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) ResolveIdentity(ctx context.Context, gameName, tagLine string) (scrape.Identity, error) {
	args := m.Called(ctx, gameName, tagLine)
	return args.Get(0).(scrape.Identity), args.Error(1)
}

func (m *mockSource) Champions(ctx context.Context, gameName, tagLine string) (scrape.ChampionStats, error) {
	args := m.Called(ctx, gameName, tagLine)
	return args.Get(0).(scrape.ChampionStats), args.Error(1)
}

func (m *mockSource) Masteries(ctx context.Context, gameName, tagLine string) ([]domain.MasteryRecord, error) {
	args := m.Called(ctx, gameName, tagLine)
	if v := args.Get(0); v != nil {
		return v.([]domain.MasteryRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSource) SeasonHistory(ctx context.Context, gameName, tagLine string) (scrape.SeasonHistory, error) {
	args := m.Called(ctx, gameName, tagLine)
	return args.Get(0).(scrape.SeasonHistory), args.Error(1)
}

func (m *mockSource) ChampionRoles(ctx context.Context, gameName, tagLine string) (map[string]string, error) {
	args := m.Called(ctx, gameName, tagLine)
	if v := args.Get(0); v != nil {
		return v.(map[string]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestReconciler(src Source) *Reconciler {
	return NewReconciler(src, "na", zerolog.New(nil))
}

func TestReconcileFullSnapshot(t *testing.T) {
	src := new(mockSource)
	src.On("ResolveIdentity", mock.Anything, "faker", "t1").Return(scrape.Identity{
		Tier: domain.TierChallenger, Division: 1, LP: 1203,
		ResolvedName: "Faker", ResolvedTag: "T1",
	}, nil)
	src.On("Champions", mock.Anything, "Faker", "T1").Return(scrape.ChampionStats{
		SeasonGames: 100, SeasonWins: 60, SeasonLosses: 40, SeasonWinrate: 60,
		Champions: []domain.ChampionRecord{
			{ChampionName: "Azir", ChampionKey: "Azir", Games: 40, Wins: 25, Losses: 15},
		},
	}, nil)
	src.On("Masteries", mock.Anything, "Faker", "T1").Return([]domain.MasteryRecord{
		{ChampionName: "Azir", Level: 7, Points: 500000},
	}, nil)
	src.On("SeasonHistory", mock.Anything, "Faker", "T1").Return(scrape.SeasonHistory{
		PreviousSeasonTier: "Challenger", PeakTier: "Challenger",
		History: []domain.SeasonRecord{{Season: "Season 14", PeakRank: "Challenger", EndRank: "Challenger"}},
	}, nil)
	src.On("ChampionRoles", mock.Anything, "Faker", "T1").Return(map[string]string{"Azir": "Mid"}, nil)

	stats := newTestReconciler(src).Reconcile(context.Background(), "faker", "t1")

	assert.Equal(t, domain.TierChallenger, stats.Tier)
	assert.Equal(t, 1203, stats.LP)
	assert.Equal(t, 100, stats.SeasonGames)
	require.Len(t, stats.Champions, 1)
	assert.Equal(t, "Mid", stats.Champions[0].Role)
	assert.Equal(t, "Challenger", stats.PeakTier)
	require.Len(t, stats.Masteries, 1)
	assert.Empty(t, stats.ScrapeError)
	// Profile URL is built from the resolved identity, not the raw input.
	assert.Contains(t, stats.ProfileURL, "Faker-T1")
	assert.False(t, stats.LastUpdated.IsZero())
	src.AssertExpectations(t)
}

func TestReconcilePartialFailures(t *testing.T) {
	src := new(mockSource)
	src.On("ResolveIdentity", mock.Anything, "Faker", "T1").Return(scrape.Identity{
		Tier: domain.TierDiamond, ResolvedName: "Faker", ResolvedTag: "T1",
	}, nil)
	src.On("Champions", mock.Anything, "Faker", "T1").Return(
		scrape.ChampionStats{}, errors.New("blocked by https://op.gg (status 403)"))
	src.On("Masteries", mock.Anything, "Faker", "T1").Return(nil, errors.New("timeout"))
	src.On("SeasonHistory", mock.Anything, "Faker", "T1").Return(scrape.SeasonHistory{
		PeakTier: "Master",
	}, nil)
	src.On("ChampionRoles", mock.Anything, "Faker", "T1").Return(nil, errors.New("unavailable"))

	stats := newTestReconciler(src).Reconcile(context.Background(), "Faker", "T1")

	// Two recording adapters failed; role inference is best-effort and
	// never surfaces as a diagnostic.
	parts := strings.Split(stats.ScrapeError, "; ")
	require.Len(t, parts, 2)
	assert.Contains(t, stats.ScrapeError, "Champions fetch failed")
	assert.Contains(t, stats.ScrapeError, "Mastery fetch failed")

	// The successes still landed.
	assert.Equal(t, domain.TierDiamond, stats.Tier)
	assert.Equal(t, "Master", stats.PeakTier)
	assert.Empty(t, stats.Champions)
}

func TestReconcileIdentityFailure(t *testing.T) {
	src := new(mockSource)
	src.On("ResolveIdentity", mock.Anything, "Ghost", "NA1").Return(
		scrape.Identity{Tier: domain.TierUnranked}, errors.New("rate limited"))
	// Downstream adapters run against the raw input when resolution fails.
	src.On("Champions", mock.Anything, "Ghost", "NA1").Return(scrape.ChampionStats{}, nil)
	src.On("Masteries", mock.Anything, "Ghost", "NA1").Return(nil, nil)
	src.On("SeasonHistory", mock.Anything, "Ghost", "NA1").Return(scrape.SeasonHistory{}, nil)
	src.On("ChampionRoles", mock.Anything, "Ghost", "NA1").Return(nil, nil)

	stats := newTestReconciler(src).Reconcile(context.Background(), "Ghost", "NA1")

	assert.Equal(t, domain.TierUnranked, stats.Tier)
	assert.Contains(t, stats.ScrapeError, "Tier fetch failed")
	assert.Contains(t, stats.ProfileURL, "Ghost-NA1")
}

func TestReconcileTeam(t *testing.T) {
	src := new(mockSource)
	for _, name := range []string{"Alpha", "Bravo", "Charlie"} {
		src.On("ResolveIdentity", mock.Anything, name, "NA1").Return(
			scrape.Identity{Tier: domain.TierGold, ResolvedName: name, ResolvedTag: "NA1"}, nil)
		src.On("Champions", mock.Anything, name, "NA1").Return(scrape.ChampionStats{SeasonGames: 10}, nil)
		src.On("Masteries", mock.Anything, name, "NA1").Return(nil, nil)
		src.On("SeasonHistory", mock.Anything, name, "NA1").Return(scrape.SeasonHistory{}, nil)
		src.On("ChampionRoles", mock.Anything, name, "NA1").Return(nil, nil)
	}

	players := []domain.Player{
		{ID: "p1", GameName: "Alpha", TagLine: "NA1"},
		{ID: "p2", GameName: "Bravo", TagLine: "NA1"},
		{ID: "p3", GameName: "Charlie", TagLine: "NA1"},
	}

	var progressCalls int
	results := newTestReconciler(src).ReconcileTeam(context.Background(), players, func(done int, current string) {
		progressCalls++
	})

	require.Len(t, results, 3)
	assert.Equal(t, 3, progressCalls)
	// Results stay in roster order regardless of completion order.
	for i, r := range results {
		assert.Equal(t, players[i].ID, r.PlayerID)
		assert.True(t, r.Success)
		require.NotNil(t, r.Stats)
		assert.Equal(t, 10, r.Stats.SeasonGames)
	}
}

func TestReconcileTeamCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := new(mockSource)
	results := newTestReconciler(src).ReconcileTeam(ctx, []domain.Player{
		{ID: "p1", GameName: "Alpha", TagLine: "NA1"},
	}, nil)

	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.NotEmpty(t, results[0].Error)
}
