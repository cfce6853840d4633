// Package analysis is the deterministic scoring engine: it converts
// reconciled team snapshots into ranked, explainable ban and pick
// recommendations plus one-trick tags. Scoring is pure arithmetic over
// the snapshots; only the optional counter-matchup source does I/O.
package analysis

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"lol-scout/internal/scrape"
)

// CounterSource provides lane matchup data. It is optional: a nil
// source simply disables the counter term in pick scoring.
type CounterSource interface {
	Counters(ctx context.Context, champion, lane string) ([]scrape.CounterStat, error)
}

type Engine struct {
	counters CounterSource
	logger   zerolog.Logger
}

func NewEngine(counters CounterSource, logger zerolog.Logger) *Engine {
	return &Engine{counters: counters, logger: logger}
}

// formatPoints renders mastery points with thousands separators.
func formatPoints(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
