package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"lol-scout/internal/constants"
	"lol-scout/internal/domain"
	"lol-scout/internal/repository"
	"lol-scout/internal/scrape"
)

// RosterService manages teams and players, including bulk imports from
// multi-search links.
type RosterService struct {
	teams   *repository.TeamRepository
	players *repository.PlayerRepository
	meta    *repository.MetaRepository
	logger  zerolog.Logger
}

func NewRosterService(teams *repository.TeamRepository, players *repository.PlayerRepository, meta *repository.MetaRepository, logger zerolog.Logger) *RosterService {
	return &RosterService{teams: teams, players: players, meta: meta, logger: logger}
}

func (s *RosterService) ListTeams(ctx context.Context) ([]domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.teams.List(ctx)
}

func (s *RosterService) GetTeam(ctx context.Context, id string) (*domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.teams.Get(ctx, id)
}

func (s *RosterService) CreateTeam(ctx context.Context, name string) (*domain.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("team name required")
	}
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.teams.Create(ctx, name)
}

// TeamUpdate mirrors the fields the manage screen can change in one call.
type TeamUpdate struct {
	Name       *string
	SetMyTeam  bool
	SeasonName *string
}

func (s *RosterService) UpdateTeam(ctx context.Context, id string, upd TeamUpdate) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if upd.Name != nil {
		if err := s.teams.Rename(ctx, id, strings.TrimSpace(*upd.Name)); err != nil {
			return err
		}
	}
	if upd.SetMyTeam {
		if err := s.teams.SetMyTeam(ctx, id); err != nil {
			return err
		}
	}
	if upd.SeasonName != nil {
		if err := s.meta.Set(ctx, repository.MetaKeySeasonName, strings.TrimSpace(*upd.SeasonName)); err != nil {
			return err
		}
	}
	return nil
}

func (s *RosterService) DeleteTeam(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.teams.Delete(ctx, id)
}

func (s *RosterService) SeasonName(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.meta.Get(ctx, repository.MetaKeySeasonName)
}

func (s *RosterService) SetSeasonName(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.meta.Set(ctx, repository.MetaKeySeasonName, strings.TrimSpace(name))
}

// AddPlayers parses the raw input, which may be a single name or a
// multi-search link, and adds every parsed player to the team. When a
// full five-stack is pasted, roles are assigned in draft order;
// otherwise the given role applies. Overwrite clears the roster first.
func (s *RosterService) AddPlayers(ctx context.Context, teamID, playerInput string, role domain.Role, isSubstitute, overwrite bool) ([]domain.Player, error) {
	parsed := scrape.ParsePlayerInput(playerInput)
	if len(parsed) == 0 {
		return nil, fmt.Errorf("player input required")
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if _, err := s.teams.Get(ctx, teamID); err != nil {
		return nil, err
	}

	if overwrite {
		if err := s.players.DeleteByTeam(ctx, teamID); err != nil {
			return nil, err
		}
	}

	added := make([]domain.Player, 0, len(parsed))
	for i, id := range parsed {
		playerRole := role
		if len(parsed) >= len(domain.Roles) && i < len(domain.Roles) {
			playerRole = domain.Roles[i]
		}
		if playerRole == "" {
			playerRole = domain.RoleFill
		}
		player, err := s.players.Add(ctx, teamID, id.GameName, id.TagLine, playerRole, isSubstitute)
		if err != nil {
			s.logger.Warn().Err(err).Str("game_name", id.GameName).Msg("failed to add player, skipping")
			continue
		}
		added = append(added, *player)
	}

	if len(added) == 0 {
		return nil, fmt.Errorf("could not add players")
	}
	return added, nil
}

func (s *RosterService) UpdatePlayer(ctx context.Context, id string, upd repository.PlayerUpdate) (*domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.players.Update(ctx, id, upd)
}

// OverrideStats installs a manually entered snapshot for a player whose
// profile cannot be scraped.
func (s *RosterService) OverrideStats(ctx context.Context, id string, stats *domain.PlayerStats) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if stats != nil && stats.SeasonGames > 0 && stats.SeasonWinrate == 0 {
		stats.SeasonWinrate = domain.Round1(float64(stats.SeasonWins) / float64(stats.SeasonGames) * 100)
	}
	return s.players.SetStats(ctx, id, stats)
}

func (s *RosterService) DeletePlayer(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.players.Delete(ctx, id)
}
