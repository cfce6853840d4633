package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"lol-scout/internal/constants"
	"lol-scout/internal/domain"
	"lol-scout/internal/reconcile"
	"lol-scout/internal/repository"
)

// JobStatus is the lifecycle of a background team refresh.
type JobStatus string

const (
	JobRunning  JobStatus = "running"
	JobComplete JobStatus = "complete"
)

// RefreshJob is a point-in-time view of one team's refresh progress.
type RefreshJob struct {
	Status  JobStatus              `json:"status"`
	Total   int                    `json:"total"`
	Done    int                    `json:"done"`
	Current string                 `json:"current,omitempty"`
	Results []reconcile.TeamResult `json:"results"`
}

// RefreshService drives reconciliation for single players synchronously
// and for whole teams as background jobs, one job per team at a time.
type RefreshService struct {
	reconciler *reconcile.Reconciler
	players    *repository.PlayerRepository
	teams      *repository.TeamRepository
	logger     zerolog.Logger

	mu   sync.Mutex
	jobs map[string]*RefreshJob
}

func NewRefreshService(reconciler *reconcile.Reconciler, players *repository.PlayerRepository, teams *repository.TeamRepository, logger zerolog.Logger) *RefreshService {
	return &RefreshService{
		reconciler: reconciler,
		players:    players,
		teams:      teams,
		logger:     logger,
		jobs:       make(map[string]*RefreshJob),
	}
}

// RefreshPlayer reconciles one player and persists the snapshot. The
// returned stats may carry a ScrapeError and still be persisted; partial
// data beats stale data.
func (s *RefreshService) RefreshPlayer(ctx context.Context, playerID string) (*domain.PlayerStats, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	player, err := s.players.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}

	stats := s.reconciler.Reconcile(ctx, player.GameName, player.TagLine)
	if err := s.players.SetStats(ctx, playerID, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// RefreshTeam starts a background refresh of the whole roster. Returns
// the total player count and whether a new job was started; a team with
// a job already running is left alone.
func (s *RefreshService) RefreshTeam(ctx context.Context, teamID string) (int, bool, error) {
	dbCtx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	team, err := s.teams.Get(dbCtx, teamID)
	cancel()
	if err != nil {
		return 0, false, err
	}

	s.mu.Lock()
	if job, ok := s.jobs[teamID]; ok && job.Status == JobRunning {
		s.mu.Unlock()
		return job.Total, false, nil
	}
	s.jobs[teamID] = &RefreshJob{
		Status:  JobRunning,
		Total:   len(team.Players),
		Results: []reconcile.TeamResult{},
	}
	s.mu.Unlock()

	// The job outlives the request that started it.
	go s.runTeamRefresh(context.Background(), teamID, team.Players)

	return len(team.Players), true, nil
}

func (s *RefreshService) runTeamRefresh(ctx context.Context, teamID string, players []domain.Player) {
	s.logger.Info().Str("team_id", teamID).Int("players", len(players)).Msg("team refresh started")

	results := s.reconciler.ReconcileTeam(ctx, players, func(done int, current string) {
		s.mu.Lock()
		if job, ok := s.jobs[teamID]; ok {
			job.Done = done
			job.Current = current
		}
		s.mu.Unlock()
	})

	for _, result := range results {
		if result.Stats == nil {
			continue
		}
		dbCtx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
		err := s.players.SetStats(dbCtx, result.PlayerID, result.Stats)
		cancel()
		if err != nil {
			s.logger.Error().Err(err).Str("player_id", result.PlayerID).Msg("failed to persist refreshed stats")
		}
	}

	s.mu.Lock()
	if job, ok := s.jobs[teamID]; ok {
		job.Status = JobComplete
		job.Current = ""
		job.Done = len(results)
		job.Results = results
	}
	s.mu.Unlock()

	s.logger.Info().Str("team_id", teamID).Msg("team refresh complete")
}

// JobFor returns a snapshot of the team's refresh job, if any.
func (s *RefreshService) JobFor(teamID string) (RefreshJob, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[teamID]
	if !ok {
		return RefreshJob{}, false
	}
	snapshot := *job
	snapshot.Results = append([]reconcile.TeamResult(nil), job.Results...)
	return snapshot, true
}
