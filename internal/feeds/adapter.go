package feeds

import (
	"context"
	"time"

	"scoreboard-service/internal/dedupe"
	domaingames "scoreboard-service/internal/domain/games"
)

// Adapter defines how one upstream feed is fetched and normalized.
//
// FetchGames returns every game the source reports for the given calendar
// date, already deduplicated against the shared registry: an event whose
// synthesized identity key is already registered is discarded at ingestion.
// Failures of individual (sport, league) configurations are logged and
// skipped inside the adapter; an error return is reserved for failures that
// take out the whole adapter.
type Adapter interface {
	Name() string
	FetchGames(ctx context.Context, date time.Time, reg *dedupe.Registry) ([]domaingames.Game, error)
}
