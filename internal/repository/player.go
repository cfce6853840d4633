package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"

	"lol-scout/internal/domain"
)

type PlayerRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewPlayerRepository(sqlDB *sql.DB, logger zerolog.Logger) *PlayerRepository {
	return &PlayerRepository{db: sqlDB, logger: logger}
}

func (r *PlayerRepository) Add(ctx context.Context, teamID, gameName, tagLine string, role domain.Role, isSubstitute bool) (*domain.Player, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate player id: %w", err)
	}

	var position int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM players WHERE team_id = ?`, teamID).Scan(&position); err != nil {
		return nil, fmt.Errorf("failed to count players: %w", err)
	}

	now := time.Now().UTC()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO players (id, team_id, game_name, tag_line, role, is_substitute, position, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, teamID, gameName, tagLine, string(role), boolToInt(isSubstitute), position, now, now)
	if err != nil {
		r.logger.Error().Err(err).Str("team_id", teamID).Str("game_name", gameName).Msg("failed to add player")
		return nil, fmt.Errorf("failed to add player: %w", err)
	}

	r.logger.Info().Str("player_id", id).Str("game_name", gameName).Str("tag_line", tagLine).Msg("player added")
	return &domain.Player{
		ID:           id,
		GameName:     gameName,
		TagLine:      tagLine,
		Role:         role,
		IsSubstitute: isSubstitute,
	}, nil
}

func (r *PlayerRepository) Get(ctx context.Context, id string) (*domain.Player, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, game_name, tag_line, role, is_substitute, stats FROM players WHERE id = ?`, id)
	player, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

// TeamID resolves which team a player belongs to.
func (r *PlayerRepository) TeamID(ctx context.Context, playerID string) (string, error) {
	var teamID string
	err := r.db.QueryRowContext(ctx,
		`SELECT team_id FROM players WHERE id = ?`, playerID).Scan(&teamID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve player team: %w", err)
	}
	return teamID, nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]domain.Player, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, game_name, tag_line, role, is_substitute, stats
		 FROM players WHERE team_id = ? ORDER BY position, created_at`, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	players := []domain.Player{}
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, *player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate players: %w", err)
	}
	return players, nil
}

// PlayerUpdate carries the mutable identity fields; nil means unchanged.
type PlayerUpdate struct {
	GameName     *string
	TagLine      *string
	Role         *domain.Role
	IsSubstitute *bool
}

func (r *PlayerRepository) Update(ctx context.Context, id string, upd PlayerUpdate) (*domain.Player, error) {
	player, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.GameName != nil {
		player.GameName = *upd.GameName
	}
	if upd.TagLine != nil {
		player.TagLine = *upd.TagLine
	}
	if upd.Role != nil {
		player.Role = *upd.Role
	}
	if upd.IsSubstitute != nil {
		player.IsSubstitute = *upd.IsSubstitute
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE players SET game_name = ?, tag_line = ?, role = ?, is_substitute = ?, updated_at = ? WHERE id = ?`,
		player.GameName, player.TagLine, string(player.Role), boolToInt(player.IsSubstitute),
		time.Now().UTC(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}
	return player, nil
}

// SetStats replaces the player's stats snapshot wholesale.
func (r *PlayerRepository) SetStats(ctx context.Context, id string, stats *domain.PlayerStats) error {
	var blob any
	if stats != nil {
		data, err := json.Marshal(stats)
		if err != nil {
			return fmt.Errorf("failed to marshal stats: %w", err)
		}
		blob = string(data)
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE players SET stats = ?, updated_at = ? WHERE id = ?`,
		blob, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to set player stats: %w", err)
	}
	return requireRow(res)
}

func (r *PlayerRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	if err := requireRow(res); err != nil {
		return err
	}
	r.logger.Info().Str("player_id", id).Msg("player deleted")
	return nil
}

// DeleteByTeam clears a roster, used by overwrite imports.
func (r *PlayerRepository) DeleteByTeam(ctx context.Context, teamID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE team_id = ?`, teamID); err != nil {
		return fmt.Errorf("failed to clear roster: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (*domain.Player, error) {
	var player domain.Player
	var role string
	var isSubstitute int
	var stats sql.NullString
	if err := row.Scan(&player.ID, &player.GameName, &player.TagLine, &role, &isSubstitute, &stats); err != nil {
		return nil, err
	}
	player.Role = domain.Role(role)
	player.IsSubstitute = isSubstitute != 0

	if stats.Valid && stats.String != "" {
		var snapshot domain.PlayerStats
		if err := json.Unmarshal([]byte(stats.String), &snapshot); err != nil {
			// A corrupt snapshot should not hide the roster entry.
			return &player, nil
		}
		player.Stats = &snapshot
	}
	return &player, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
