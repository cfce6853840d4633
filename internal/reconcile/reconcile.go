// Package reconcile turns per-source adapter results into a single
// PlayerStats snapshot. Sources fail independently: every adapter that
// succeeds contributes its slice of the snapshot, and every failure is
// recorded as a diagnostic on the snapshot instead of aborting the run.
package reconcile

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"lol-scout/internal/constants"
	"lol-scout/internal/domain"
	"lol-scout/internal/scrape"
)

// Source is the adapter surface a reconciliation run consumes.
type Source interface {
	ResolveIdentity(ctx context.Context, gameName, tagLine string) (scrape.Identity, error)
	Champions(ctx context.Context, gameName, tagLine string) (scrape.ChampionStats, error)
	Masteries(ctx context.Context, gameName, tagLine string) ([]domain.MasteryRecord, error)
	SeasonHistory(ctx context.Context, gameName, tagLine string) (scrape.SeasonHistory, error)
	ChampionRoles(ctx context.Context, gameName, tagLine string) (map[string]string, error)
}

type Reconciler struct {
	source Source
	region string
	logger zerolog.Logger
}

func NewReconciler(source Source, region string, logger zerolog.Logger) *Reconciler {
	if region == "" {
		region = "na"
	}
	return &Reconciler{source: source, region: region, logger: logger}
}

// Reconcile builds a complete snapshot for one player. It never returns
// an error: a snapshot with a populated ScrapeError field is still a
// snapshot, and whatever adapters delivered stays in it.
func (r *Reconciler) Reconcile(ctx context.Context, gameName, tagLine string) *domain.PlayerStats {
	started := time.Now()
	stats := domain.NewPlayerStats()

	var mu sync.Mutex
	var failures []string
	record := func(label string, err error) {
		mu.Lock()
		failures = append(failures, fmt.Sprintf("%s failed: %v", label, err))
		mu.Unlock()
	}

	// Identity goes first: it resolves the canonical name and tag the
	// remaining adapters key on.
	resolvedName, resolvedTag := gameName, tagLine
	identCtx, cancel := context.WithTimeout(ctx, constants.AdapterTimeout)
	ident, err := r.source.ResolveIdentity(identCtx, gameName, tagLine)
	cancel()
	if err != nil {
		record("Tier fetch", err)
	} else {
		stats.Tier = ident.Tier
		stats.Division = ident.Division
		stats.LP = ident.LP
		if ident.ResolvedName != "" {
			resolvedName = ident.ResolvedName
		}
		if ident.ResolvedTag != "" {
			resolvedTag = ident.ResolvedTag
		}
	}

	stats.ProfileURL = fmt.Sprintf("https://op.gg/lol/summoners/%s/%s",
		r.region, url.PathEscape(resolvedName+"-"+resolvedTag))

	// The remaining adapters hit distinct sites and are independent of
	// each other. A plain group, not WithContext: one adapter's failure
	// must not cancel its siblings.
	var g errgroup.Group
	g.SetLimit(constants.AdapterPoolSize)

	var inferredRoles map[string]string

	g.Go(func() error {
		actx, cancel := context.WithTimeout(ctx, constants.AdapterTimeout)
		defer cancel()
		champs, err := r.source.Champions(actx, resolvedName, resolvedTag)
		if err != nil {
			record("Champions fetch", err)
			return nil
		}
		mu.Lock()
		stats.SeasonGames = champs.SeasonGames
		stats.SeasonWins = champs.SeasonWins
		stats.SeasonLosses = champs.SeasonLosses
		stats.SeasonWinrate = champs.SeasonWinrate
		stats.Champions = champs.Champions
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		actx, cancel := context.WithTimeout(ctx, constants.AdapterTimeout)
		defer cancel()
		masteries, err := r.source.Masteries(actx, resolvedName, resolvedTag)
		if err != nil {
			record("Mastery fetch", err)
			return nil
		}
		mu.Lock()
		stats.Masteries = masteries
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		actx, cancel := context.WithTimeout(ctx, constants.AdapterTimeout)
		defer cancel()
		history, err := r.source.SeasonHistory(actx, resolvedName, resolvedTag)
		if err != nil {
			record("Season history", err)
			return nil
		}
		mu.Lock()
		stats.PreviousSeasonTier = history.PreviousSeasonTier
		stats.PeakTier = history.PeakTier
		stats.SeasonHistory = history.History
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		actx, cancel := context.WithTimeout(ctx, constants.AdapterTimeout)
		defer cancel()
		roles, err := r.source.ChampionRoles(actx, resolvedName, resolvedTag)
		if err != nil {
			// Best-effort: the static lane table covers the gap.
			r.logger.Debug().Err(err).Str("game_name", resolvedName).Msg("role inference unavailable")
			return nil
		}
		mu.Lock()
		inferredRoles = roles
		mu.Unlock()
		return nil
	})

	_ = g.Wait()

	for i := range stats.Champions {
		stats.Champions[i].Role = scrape.RoleFor(inferredRoles, stats.Champions[i].ChampionName)
	}

	if len(failures) > 0 {
		sort.Strings(failures)
		stats.ScrapeError = strings.Join(failures, "; ")
	}
	stats.LastUpdated = time.Now().UTC()

	r.logger.Info().
		Str("game_name", resolvedName).
		Str("tag_line", resolvedTag).
		Str("tier", string(stats.Tier)).
		Int("champions", len(stats.Champions)).
		Int("failures", len(failures)).
		Dur("elapsed", time.Since(started)).
		Msg("player reconciled")

	return stats
}

// TeamResult is the outcome of refreshing one roster member.
type TeamResult struct {
	PlayerID string `json:"player_id"`
	Player   string `json:"player"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`

	Stats *domain.PlayerStats `json:"-"`
}

// ReconcileTeam refreshes every given player with bounded concurrency
// and reports per-player outcomes in roster order. A player whose
// snapshot carries only partial data still counts as a success; Success
// is false only when the context was cancelled before the run started.
func (r *Reconciler) ReconcileTeam(ctx context.Context, players []domain.Player, progress func(done int, current string)) []TeamResult {
	results := make([]TeamResult, len(players))

	var mu sync.Mutex
	done := 0

	var g errgroup.Group
	g.SetLimit(constants.TeamRefreshPoolSize)

	for i, p := range players {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = TeamResult{PlayerID: p.ID, Player: p.GameName, Error: err.Error()}
			} else {
				stats := r.Reconcile(ctx, p.GameName, p.TagLine)
				results[i] = TeamResult{PlayerID: p.ID, Player: p.GameName, Success: true, Stats: stats}
			}
			mu.Lock()
			done++
			if progress != nil {
				progress(done, p.GameName)
			}
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()
	return results
}
