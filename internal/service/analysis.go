package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"lol-scout/internal/analysis"
	"lol-scout/internal/constants"
	"lol-scout/internal/domain"
	"lol-scout/internal/repository"
)

// Matchup bundles everything the draft screen needs against one opponent.
type Matchup struct {
	MyTeam    *domain.Team                                `json:"my_team"`
	Opponent  *domain.Team                                `json:"opponent"`
	Bans      []domain.BanRecommendation                  `json:"bans"`
	Picks     map[domain.Role][]domain.PickRecommendation `json:"picks"`
	OneTricks []domain.OneTrick                           `json:"one_tricks"`
}

// AnalysisService runs the scoring engine over persisted rosters.
type AnalysisService struct {
	engine *analysis.Engine
	teams  *repository.TeamRepository
	logger zerolog.Logger
}

func NewAnalysisService(engine *analysis.Engine, teams *repository.TeamRepository, logger zerolog.Logger) *AnalysisService {
	return &AnalysisService{engine: engine, teams: teams, logger: logger}
}

// Analyze scores the matchup between our flagged team and the given
// opponent.
func (s *AnalysisService) Analyze(ctx context.Context, opponentID string) (*Matchup, error) {
	dbCtx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	myTeam, err := s.teams.MyTeam(dbCtx)
	if err != nil {
		return nil, fmt.Errorf("no team flagged as mine: %w", err)
	}
	opponent, err := s.teams.Get(dbCtx, opponentID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("my_team", myTeam.Name).
		Str("opponent", opponent.Name).
		Msg("running matchup analysis")

	return &Matchup{
		MyTeam:    myTeam,
		Opponent:  opponent,
		Bans:      s.engine.BanRecommendations(opponent, 5),
		Picks:     s.engine.PickRecommendations(ctx, myTeam, opponent),
		OneTricks: s.engine.IdentifyOneTricks(opponent),
	}, nil
}
