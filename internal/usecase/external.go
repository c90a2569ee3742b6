package usecase

import (
	"context"

	"github.com/gridironlab/playenrich/internal/domain/play"
)

// ExternalGame is one scheduled game as reported by the play-by-play
// provider's scoreboard.
type ExternalGame struct {
	ExternalID string
	Date       string
	HomeTeam   string
	HomeAbbrev string
	AwayTeam   string
	AwayAbbrev string
	Stadium    string
	HomeScore  int
	AwayScore  int
	Status     string
}

// PlayDataClient mediates all access to the play-by-play provider.
// Implementations soft-fail: a fetch error comes back alongside an empty
// result so callers can log and degrade instead of aborting a batch.
type PlayDataClient interface {
	FetchSchedule(ctx context.Context, date string) ([]ExternalGame, error)
	FetchPlays(ctx context.Context, externalGameID string) ([]play.ExternalPlay, error)
	FetchGameInfo(ctx context.Context, externalGameID string) (ExternalGame, bool, error)
}
