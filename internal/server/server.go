// Package server exposes the roster, refresh and analysis services as a
// JSON API.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"lol-scout/internal/assets"
	"lol-scout/internal/domain"
	"lol-scout/internal/repository"
	"lol-scout/internal/service"
)

type Server struct {
	roster   *service.RosterService
	refresh  *service.RefreshService
	analysis *service.AnalysisService
	ddragon  *assets.DDragon
	logger   zerolog.Logger
}

func New(roster *service.RosterService, refresh *service.RefreshService, analysis *service.AnalysisService, ddragon *assets.DDragon, logger zerolog.Logger) *Server {
	return &Server{
		roster:   roster,
		refresh:  refresh,
		analysis: analysis,
		ddragon:  ddragon,
		logger:   logger,
	}
}

// Handler builds the API routing table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/teams", s.handleListTeams)
	mux.HandleFunc("POST /api/teams", s.handleCreateTeam)
	mux.HandleFunc("GET /api/teams/{id}", s.handleGetTeam)
	mux.HandleFunc("PUT /api/teams/{id}", s.handleUpdateTeam)
	mux.HandleFunc("DELETE /api/teams/{id}", s.handleDeleteTeam)
	mux.HandleFunc("POST /api/teams/{id}/refresh", s.handleRefreshTeam)
	mux.HandleFunc("GET /api/teams/{id}/refresh/status", s.handleRefreshStatus)

	mux.HandleFunc("POST /api/players", s.handleCreatePlayers)
	mux.HandleFunc("PUT /api/players/{id}", s.handleUpdatePlayer)
	mux.HandleFunc("DELETE /api/players/{id}", s.handleDeletePlayer)
	mux.HandleFunc("POST /api/players/{id}/refresh", s.handleRefreshPlayer)

	mux.HandleFunc("PUT /api/season", s.handleUpdateSeason)
	mux.HandleFunc("GET /api/analysis/{opponent_id}", s.handleAnalysis)
	mux.HandleFunc("GET /api/champions/{key}/icon", s.handleChampionIcon)

	return mux
}

func (s *Server) handleListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := s.roster.ListTeams(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	season, err := s.roster.SeasonName(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"teams":       teams,
		"season_name": season,
	})
}

func (s *Server) handleCreateTeam(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	team, err := s.roster.CreateTeam(r.Context(), body.Name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "team": team})
}

func (s *Server) handleGetTeam(w http.ResponseWriter, r *http.Request) {
	team, err := s.roster.GetTeam(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, team)
}

func (s *Server) handleUpdateTeam(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name       *string `json:"name"`
		SetMyTeam  bool    `json:"set_my_team"`
		SeasonName *string `json:"season_name"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	err := s.roster.UpdateTeam(r.Context(), r.PathValue("id"), service.TeamUpdate{
		Name:       body.Name,
		SetMyTeam:  body.SetMyTeam,
		SeasonName: body.SeasonName,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleDeleteTeam(w http.ResponseWriter, r *http.Request) {
	if err := s.roster.DeleteTeam(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleCreatePlayers(w http.ResponseWriter, r *http.Request) {
	var body struct {
		TeamID       string `json:"team_id"`
		PlayerInput  string `json:"player_input"`
		Role         string `json:"role"`
		IsSubstitute bool   `json:"is_substitute"`
		Overwrite    bool   `json:"overwrite"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.TeamID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "team_id required"})
		return
	}
	if body.PlayerInput == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "player input required"})
		return
	}

	added, err := s.roster.AddPlayers(r.Context(), body.TeamID, body.PlayerInput,
		domain.ParseRole(body.Role), body.IsSubstitute, body.Overwrite)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "players": added})
}

func (s *Server) handleUpdatePlayer(w http.ResponseWriter, r *http.Request) {
	var body struct {
		GameName     *string             `json:"game_name"`
		TagLine      *string             `json:"tag_line"`
		Role         *string             `json:"role"`
		IsSubstitute *bool               `json:"is_substitute"`
		ManualStats  *domain.PlayerStats `json:"manual_stats"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	upd := repository.PlayerUpdate{
		GameName:     body.GameName,
		TagLine:      body.TagLine,
		IsSubstitute: body.IsSubstitute,
	}
	if body.Role != nil {
		role := domain.ParseRole(*body.Role)
		upd.Role = &role
	}

	player, err := s.roster.UpdatePlayer(r.Context(), r.PathValue("id"), upd)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if body.ManualStats != nil {
		if err := s.roster.OverrideStats(r.Context(), player.ID, body.ManualStats); err != nil {
			s.writeError(w, r, err)
			return
		}
		player.Stats = body.ManualStats
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "player": player})
}

func (s *Server) handleDeletePlayer(w http.ResponseWriter, r *http.Request) {
	if err := s.roster.DeletePlayer(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleRefreshPlayer(w http.ResponseWriter, r *http.Request) {
	stats, err := s.refresh.RefreshPlayer(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "stats": stats})
}

func (s *Server) handleRefreshTeam(w http.ResponseWriter, r *http.Request) {
	total, started, err := s.refresh.RefreshTeam(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	status := "started"
	if !started {
		status = "already_running"
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "status": status, "total": total})
}

func (s *Server) handleRefreshStatus(w http.ResponseWriter, r *http.Request) {
	job, ok := s.refresh.JobFor(r.PathValue("id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "no refresh job for team"})
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (s *Server) handleUpdateSeason(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SeasonName string `json:"season_name"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if err := s.roster.SetSeasonName(r.Context(), body.SeasonName); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	matchup, err := s.analysis.Analyze(r.Context(), r.PathValue("opponent_id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, matchup)
}

func (s *Server) handleChampionIcon(w http.ResponseWriter, r *http.Request) {
	url := s.ddragon.ChampionIconURL(r.Context(), r.PathValue("key"))
	writeJSON(w, http.StatusOK, map[string]any{"url": url})
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, repository.ErrNotFound) {
		status = http.StatusNotFound
	}
	s.logger.Error().Err(err).Str("path", r.URL.Path).Int("status", status).Msg("request failed")
	writeJSON(w, status, map[string]any{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		return false
	}
	return true
}
