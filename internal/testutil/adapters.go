package testutil

import (
	"context"
	"time"

	"scoreboard-service/internal/dedupe"
	domaingames "scoreboard-service/internal/domain/games"
)

// GoodAdapter registers and returns the provided games on every date.
type GoodAdapter struct {
	Source string
	Games  []domaingames.Game
}

func (a GoodAdapter) Name() string { return a.Source }

func (a GoodAdapter) FetchGames(ctx context.Context, date time.Time, reg *dedupe.Registry) ([]domaingames.Game, error) {
	_ = ctx
	_ = date
	out := make([]domaingames.Game, 0, len(a.Games))
	for _, g := range a.Games {
		key := dedupe.Key(g.HomeTeam, g.AwayTeam, g.Date.Format("2006-01-02"), g.Date.Format("15:04"))
		if !reg.Insert(key) {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

// ErrAdapter always returns the provided error.
type ErrAdapter struct {
	Source string
	Err    error
}

func (a ErrAdapter) Name() string { return a.Source }

func (a ErrAdapter) FetchGames(ctx context.Context, date time.Time, reg *dedupe.Registry) ([]domaingames.Game, error) {
	return nil, a.Err
}

// EmptyAdapter returns no games, no error.
type EmptyAdapter struct {
	Source string
}

func (a EmptyAdapter) Name() string { return a.Source }

func (a EmptyAdapter) FetchGames(ctx context.Context, date time.Time, reg *dedupe.Registry) ([]domaingames.Game, error) {
	return []domaingames.Game{}, nil
}
