package usecase

import (
	"context"
	"fmt"

	"github.com/gridironlab/playenrich/internal/domain/gamemap"
	"github.com/gridironlab/playenrich/internal/domain/play"
	"github.com/gridironlab/playenrich/internal/platform/cache"
	"github.com/gridironlab/playenrich/internal/platform/logging"
)

// matchThreshold is the minimum winning score for a match to be accepted.
const matchThreshold = 0.3

// MatcherService selects the best provider play for one source play using a
// weighted heuristic over field position, sequence proximity and play kind.
// Per-game play and game-info caches are instance state, so the provider is
// hit at most once per game per service lifetime.
type MatcherService struct {
	client    PlayDataClient
	resolver  GameResolver
	logger    *logging.Logger
	playCache *cache.Store
	infoCache *cache.Store
}

func NewMatcherService(client PlayDataClient, resolver GameResolver, logger *logging.Logger) *MatcherService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatcherService{
		client:    client,
		resolver:  resolver,
		logger:    logger,
		playCache: cache.NewStore(0),
		infoCache: cache.NewStore(0),
	}
}

// MatchPlay resolves the source play's game mapping, fetches the game's play
// list and returns the enriched best candidate. sequenceHint is the play's
// approximate position within the game; nil means unknown, in which case a
// candidate's own index is its sequence distance. A logical no-match comes
// back as ErrNoMatch.
func (s *MatcherService) MatchPlay(ctx context.Context, source play.SourcePlay, sequenceHint *int) (play.EnrichedPlay, error) {
	mapping, err := s.resolver.Resolve(ctx, source.GameID, nil)
	if err != nil {
		return play.EnrichedPlay{}, fmt.Errorf("resolve game %s: %w", source.GameID, err)
	}

	candidates, err := s.gamePlays(ctx, mapping.ExternalGameID)
	if err != nil {
		return play.EnrichedPlay{}, fmt.Errorf("fetch plays game=%s: %w", mapping.ExternalGameID, err)
	}
	if len(candidates) == 0 {
		return play.EnrichedPlay{}, fmt.Errorf("%w: provider returned no plays for game %s", ErrNoMatch, mapping.ExternalGameID)
	}

	wantYardLine := play.ExternalYardLine(source.AbsoluteYardLine)

	var best *play.ExternalPlay
	bestScore := 0.0
	for idx := range candidates {
		candidate := candidates[idx]
		// Administrative entries carry no field position to score against.
		if candidate.YardLine == 0 && candidate.Down == 0 {
			continue
		}

		dist := idx
		if sequenceHint != nil {
			dist = absInt(idx - *sequenceHint)
		}

		score := scoreCandidate(wantYardLine, candidate, dist)
		if score > bestScore {
			bestScore = score
			best = &candidates[idx]
		}
	}

	if best == nil || bestScore < matchThreshold {
		s.logger.DebugContext(ctx, "no acceptable play match",
			"game_id", source.GameID,
			"play_id", source.PlayID,
			"best_score", bestScore,
		)
		return play.EnrichedPlay{}, fmt.Errorf("%w: play %d best score %.2f", ErrNoMatch, source.PlayID, bestScore)
	}

	return play.EnrichedPlay{
		GameID:           source.GameID,
		PlayID:           source.PlayID,
		AbsoluteYardLine: source.AbsoluteYardLine,
		Direction:        source.Direction,
		BallLandX:        source.BallLandX,
		BallLandY:        source.BallLandY,
		NumFrames:        source.NumFrames,

		ExternalGameID: mapping.ExternalGameID,
		ExternalPlayID: best.ExternalID,
		Quarter:        best.Quarter,
		Clock:          best.Clock,
		Down:           best.Down,
		Distance:       best.Distance,
		Text:           best.Text,
		Type:           best.Type,
		Scoring:        best.Scoring,
		HomeScore:      best.HomeScore,
		AwayScore:      best.AwayScore,

		HomeTeam: mapping.HomeTeam,
		AwayTeam: mapping.AwayTeam,
		Stadium:  mapping.Stadium,

		MatchConfidence: bestScore,
	}, nil
}

// GameInfo returns the provider's game header for a mapped game, cached per
// external game id.
func (s *MatcherService) GameInfo(ctx context.Context, mapping gamemap.Mapping) (ExternalGame, bool) {
	value, err := s.infoCache.GetOrLoad(ctx, mapping.ExternalGameID, func(ctx context.Context) (any, error) {
		info, ok, err := s.client.FetchGameInfo(ctx, mapping.ExternalGameID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: game info %s", ErrMappingNotFound, mapping.ExternalGameID)
		}
		return info, nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "game info unavailable", "external_game_id", mapping.ExternalGameID, "error", err)
		return ExternalGame{}, false
	}

	info, ok := value.(ExternalGame)
	return info, ok
}

func (s *MatcherService) gamePlays(ctx context.Context, externalGameID string) ([]play.ExternalPlay, error) {
	value, err := s.playCache.GetOrLoad(ctx, externalGameID, func(ctx context.Context) (any, error) {
		plays, err := s.client.FetchPlays(ctx, externalGameID)
		if err != nil {
			// Cache the empty result: a failed game is not refetched for
			// every play in the batch.
			s.logger.WarnContext(ctx, "play list fetch failed", "external_game_id", externalGameID, "error", err)
			return []play.ExternalPlay{}, nil
		}
		return plays, nil
	})
	if err != nil {
		return nil, err
	}

	plays, ok := value.([]play.ExternalPlay)
	if !ok {
		return nil, fmt.Errorf("unexpected cached play list type %T", value)
	}
	return plays, nil
}

// scoreCandidate sums three independently capped components: field-position
// agreement (max 0.6), sequence proximity (max 0.3) and a regular-scrimmage
// bonus (max 0.1).
func scoreCandidate(wantYardLine int, candidate play.ExternalPlay, sequenceDistance int) float64 {
	score := 0.0

	switch diff := absInt(wantYardLine - candidate.YardLine); {
	case diff == 0:
		score += 0.6
	case diff <= 2:
		score += 0.5
	case diff <= 5:
		score += 0.3
	case diff <= 10:
		score += 0.1
	}

	switch {
	case sequenceDistance == 0:
		score += 0.3
	case sequenceDistance <= 2:
		score += 0.2
	case sequenceDistance <= 5:
		score += 0.1
	}

	if candidate.Down > 0 {
		score += 0.1
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
