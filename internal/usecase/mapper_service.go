package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/gridironlab/playenrich/internal/domain/gamemap"
	"github.com/gridironlab/playenrich/internal/platform/logging"
)

// TeamHint carries caller-supplied home/away team names used to disambiguate
// multi-game days. Orientation relative to the provider is not guaranteed.
type TeamHint struct {
	Home string
	Away string
}

// GameResolver resolves a source game id to its provider mapping.
type GameResolver interface {
	Resolve(ctx context.Context, sourceGameID string, hint *TeamHint) (gamemap.Mapping, error)
}

// MapperService resolves tracking-data game ids to provider game ids via
// schedule lookup, with an in-memory cache backed by a persisted store.
type MapperService struct {
	client PlayDataClient
	store  gamemap.Store
	logger *logging.Logger

	mu       sync.RWMutex
	mappings map[string]gamemap.Mapping
}

func NewMapperService(client PlayDataClient, store gamemap.Store, logger *logging.Logger) *MapperService {
	if logger == nil {
		logger = logging.Default()
	}

	mappings := make(map[string]gamemap.Mapping)
	if store != nil {
		loaded, err := store.Load()
		if err != nil {
			// A broken cache file degrades to an empty cache, not a failed start.
			logger.Warn("load mapping cache failed, starting empty", "error", err)
		} else if len(loaded) > 0 {
			mappings = loaded
			logger.Info("loaded cached game mappings", "count", len(loaded))
		}
	}

	return &MapperService{
		client:   client,
		store:    store,
		logger:   logger,
		mappings: mappings,
	}
}

// Resolve maps sourceGameID to the provider's game id. Resolution order:
// cached mapping, team-hint match (home/away swap tolerated), positional
// match by the id's sequence number, then the single-game-day fallback.
// Nothing is cached on failure, so a later attempt with better hints can
// still succeed.
func (s *MapperService) Resolve(ctx context.Context, sourceGameID string, hint *TeamHint) (gamemap.Mapping, error) {
	sourceGameID = strings.TrimSpace(sourceGameID)
	if len(sourceGameID) < 8 {
		return gamemap.Mapping{}, fmt.Errorf("%w: source game id %q is too short", ErrInvalidInput, sourceGameID)
	}

	s.mu.RLock()
	cached, ok := s.mappings[sourceGameID]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	date, sequence := gamemap.ParseSourceGameID(sourceGameID)

	games, err := s.client.FetchSchedule(ctx, date)
	if err != nil {
		s.logger.WarnContext(ctx, "schedule fetch failed", "date", date, "error", err)
		if len(games) == 0 {
			return gamemap.Mapping{}, fmt.Errorf("%w: schedule for date %s: %v", ErrDependencyUnavailable, date, err)
		}
	}
	if len(games) == 0 {
		return gamemap.Mapping{}, fmt.Errorf("%w: no scheduled games for date %s", ErrMappingNotFound, date)
	}

	matched, ok := selectGame(games, sequence, hint)
	if !ok {
		return gamemap.Mapping{}, fmt.Errorf("%w: source game id %s did not match any of %d scheduled games", ErrMappingNotFound, sourceGameID, len(games))
	}

	mapping := gamemap.Mapping{
		SourceGameID:   sourceGameID,
		ExternalGameID: matched.ExternalID,
		Date:           date,
		HomeTeam:       matched.HomeTeam,
		HomeAbbrev:     matched.HomeAbbrev,
		AwayTeam:       matched.AwayTeam,
		AwayAbbrev:     matched.AwayAbbrev,
		Stadium:        matched.Stadium,
	}

	s.mu.Lock()
	s.mappings[sourceGameID] = mapping
	snapshot := make(map[string]gamemap.Mapping, len(s.mappings))
	for key, value := range s.mappings {
		snapshot[key] = value
	}
	s.mu.Unlock()

	if s.store != nil {
		// Write-through: a crash loses at most this one mapping.
		if err := s.store.Save(snapshot); err != nil {
			s.logger.WarnContext(ctx, "persist mapping cache failed", "source_game_id", sourceGameID, "error", err)
		}
	}

	return mapping, nil
}

// Mappings returns a copy of the resolved mappings.
func (s *MapperService) Mappings() map[string]gamemap.Mapping {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]gamemap.Mapping, len(s.mappings))
	for key, value := range s.mappings {
		out[key] = value
	}
	return out
}

func selectGame(games []ExternalGame, sequence int, hint *TeamHint) (ExternalGame, bool) {
	if hint != nil {
		hintHome := NormalizeTeam(hint.Home)
		hintAway := NormalizeTeam(hint.Away)
		for _, game := range games {
			home := NormalizeTeam(game.HomeAbbrev)
			away := NormalizeTeam(game.AwayAbbrev)
			if (home == hintHome && away == hintAway) || (home == hintAway && away == hintHome) {
				return game, true
			}
		}
	}

	if sequence >= 0 && sequence < len(games) {
		return games[sequence], true
	}

	if len(games) == 1 {
		return games[0], true
	}

	return ExternalGame{}, false
}
