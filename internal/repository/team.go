package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"

	"lol-scout/internal/domain"
)

type TeamRepository struct {
	db      *sql.DB
	players *PlayerRepository
	logger  zerolog.Logger
}

func NewTeamRepository(sqlDB *sql.DB, players *PlayerRepository, logger zerolog.Logger) *TeamRepository {
	return &TeamRepository{
		db:      sqlDB,
		players: players,
		logger:  logger,
	}
}

func (r *TeamRepository) Create(ctx context.Context, name string) (*domain.Team, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate team id: %w", err)
	}

	now := time.Now().UTC()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO teams (id, name, is_my_team, created_at, updated_at) VALUES (?, ?, 0, ?, ?)`,
		id, name, now, now)
	if err != nil {
		r.logger.Error().Err(err).Str("name", name).Msg("failed to create team")
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	r.logger.Info().Str("team_id", id).Str("name", name).Msg("team created")
	return &domain.Team{ID: id, Name: name, Players: []domain.Player{}}, nil
}

func (r *TeamRepository) Get(ctx context.Context, id string) (*domain.Team, error) {
	var team domain.Team
	var isMyTeam int
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, is_my_team FROM teams WHERE id = ?`, id).
		Scan(&team.ID, &team.Name, &isMyTeam)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	team.IsMyTeam = isMyTeam != 0

	team.Players, err = r.players.ListByTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]domain.Team, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, is_my_team FROM teams ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		var team domain.Team
		var isMyTeam int
		if err := rows.Scan(&team.ID, &team.Name, &isMyTeam); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		team.IsMyTeam = isMyTeam != 0
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate teams: %w", err)
	}

	for i := range teams {
		teams[i].Players, err = r.players.ListByTeam(ctx, teams[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return teams, nil
}

func (r *TeamRepository) Rename(ctx context.Context, id, name string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE teams SET name = ?, updated_at = ? WHERE id = ?`,
		name, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to rename team: %w", err)
	}
	return requireRow(res)
}

// SetMyTeam marks one team as ours and clears the flag everywhere else.
func (r *TeamRepository) SetMyTeam(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE teams SET is_my_team = 0`); err != nil {
		return fmt.Errorf("failed to clear my-team flag: %w", err)
	}
	res, err := tx.ExecContext(ctx,
		`UPDATE teams SET is_my_team = 1, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to set my-team flag: %w", err)
	}
	if err := requireRow(res); err != nil {
		return err
	}
	return tx.Commit()
}

// MyTeam returns the team flagged as ours, or ErrNotFound when none is.
func (r *TeamRepository) MyTeam(ctx context.Context) (*domain.Team, error) {
	var id string
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM teams WHERE is_my_team = 1 LIMIT 1`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find my team: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	if err := requireRow(res); err != nil {
		return err
	}
	r.logger.Info().Str("team_id", id).Msg("team deleted")
	return nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
