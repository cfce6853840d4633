package domain

import (
	"math"
	"time"
)

// ChampionRecord is one champion's ranked-season line for a single player.
type ChampionRecord struct {
	ChampionID   int     `json:"champion_id"`
	ChampionName string  `json:"champion_name"`
	ChampionKey  string  `json:"champion_key"`
	Games        int     `json:"games"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	Winrate      float64 `json:"winrate"`
	KDA          float64 `json:"kda"`
	AvgKills     float64 `json:"avg_kills"`
	AvgDeaths    float64 `json:"avg_deaths"`
	AvgAssists   float64 `json:"avg_assists"`

	// Slash-separated lane tags, e.g. "Mid/Top". Empty means unknown.
	Role string `json:"role,omitempty"`
}

// NewChampionRecord builds a record with the invariants enforced:
// wins+losses never exceeds games, and a zero winrate is recomputed from
// wins/games when games were played.
func NewChampionRecord(r ChampionRecord) ChampionRecord {
	if r.Wins+r.Losses > r.Games {
		r.Games = r.Wins + r.Losses
	}
	if r.Winrate == 0 && r.Games > 0 {
		r.Winrate = Round1(float64(r.Wins) / float64(r.Games) * 100)
	}
	if r.KDA < 0 {
		r.KDA = 0
	}
	if r.ChampionName == "" {
		r.ChampionName = r.ChampionKey
	}
	if r.ChampionKey == "" {
		r.ChampionKey = r.ChampionName
	}
	return r
}

// MasteryRecord is a champion mastery entry, joined to ChampionRecord by
// champion name.
type MasteryRecord struct {
	ChampionID   int    `json:"champion_id"`
	ChampionName string `json:"champion_name"`
	ChampionKey  string `json:"champion_key"`
	Level        int    `json:"level"`
	Points       int    `json:"points"`
}

// SeasonRecord is one past season's solo-queue result.
type SeasonRecord struct {
	Season   string `json:"season"`
	PeakRank string `json:"peak_rank"`
	EndRank  string `json:"end_rank"`
}

// PlayerStats is the reconciled snapshot for one player. It is produced
// wholesale by a single reconciliation run and never mutated afterwards;
// a refresh supersedes it with a new value.
type PlayerStats struct {
	Tier               Tier             `json:"tier"`
	Division           int              `json:"division,omitempty"`
	LP                 int              `json:"lp"`
	SeasonGames        int              `json:"season_games"`
	SeasonWins         int              `json:"season_wins"`
	SeasonLosses       int              `json:"season_losses"`
	SeasonWinrate      float64          `json:"season_winrate"`
	Champions          []ChampionRecord `json:"champions"`
	Masteries          []MasteryRecord  `json:"masteries,omitempty"`
	PreviousSeasonTier string           `json:"previous_season_tier,omitempty"`
	PeakTier           string           `json:"peak_tier,omitempty"`
	SeasonHistory      []SeasonRecord   `json:"season_history,omitempty"`
	ProfileURL         string           `json:"profile_url,omitempty"`

	// Advisory only. A non-empty value means some adapters failed; the
	// rest of the snapshot is still valid.
	ScrapeError string `json:"scrape_error,omitempty"`

	LastUpdated time.Time `json:"last_updated"`
}

// NewPlayerStats returns an empty snapshot with defaults applied.
func NewPlayerStats() *PlayerStats {
	return &PlayerStats{
		Tier:        TierUnranked,
		LastUpdated: time.Now().UTC(),
	}
}

// Player is a roster entry. Stats is nil until the first reconciliation.
type Player struct {
	ID           string       `json:"id"`
	GameName     string       `json:"game_name"`
	TagLine      string       `json:"tag_line"`
	Role         Role         `json:"role"`
	IsSubstitute bool         `json:"is_substitute"`
	Stats        *PlayerStats `json:"stats,omitempty"`
}

// Team owns its players exclusively.
type Team struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	IsMyTeam bool     `json:"is_my_team"`
	Players  []Player `json:"players"`
}

// BanRecommendation is a transient, per-analysis scored ban candidate.
type BanRecommendation struct {
	ChampionName string   `json:"champion_name"`
	ChampionKey  string   `json:"champion_key"`
	ChampionID   int      `json:"champion_id,omitempty"`
	Score        float64  `json:"score"`
	Reasons      []string `json:"reasons"`
	Players      []string `json:"players"`
}

// PickRecommendation is a transient scored pick candidate for one role.
type PickRecommendation struct {
	ChampionName string  `json:"champion_name"`
	ChampionKey  string  `json:"champion_key"`
	ChampionID   int     `json:"champion_id,omitempty"`
	Winrate      float64 `json:"winrate"`
	Games        int     `json:"games"`
	KDA          float64 `json:"kda"`
	Score        float64 `json:"score"`
	LikelyBanned bool    `json:"likely_banned"`
	Player       string  `json:"player"`
	CounterNote  string  `json:"counter_note,omitempty"`
}

// OneTrick tags a player whose pool is concentrated on one champion.
type OneTrick struct {
	Player      string  `json:"player"`
	Role        Role    `json:"role"`
	Champion    string  `json:"champion"`
	ChampionKey string  `json:"champion_key"`
	Games       int     `json:"games"`
	Pct         float64 `json:"pct"`
	Winrate     float64 `json:"winrate"`
	Tag         string  `json:"tag"`
}

// Round1 rounds to one decimal place, the precision every scraped winrate
// field carries.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places, used for KDA values.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
