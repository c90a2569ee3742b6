package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"github.com/gridironlab/playenrich/internal/domain/play"
	"github.com/gridironlab/playenrich/internal/platform/logging"
)

const defaultBatchWorkers = 4

// PlayMatcher matches one source play against its game's provider plays.
type PlayMatcher interface {
	MatchPlay(ctx context.Context, source play.SourcePlay, sequenceHint *int) (play.EnrichedPlay, error)
}

// BatchResult aggregates one enrichment run. Unmatched plays are simply
// absent from Enriched; the counts are the user-visible summary.
type BatchResult struct {
	Enriched  []play.EnrichedPlay
	Total     int
	Matched   int
	Unmatched int
	Failed    int
}

// EnrichmentService runs play matching over a whole tracking batch. Plays
// are grouped by source game id so each distinct game costs one schedule and
// one summary fetch regardless of play count, and a play's index within its
// group serves as the sequence hint.
type EnrichmentService struct {
	matcher PlayMatcher
	logger  *logging.Logger
	workers int
}

func NewEnrichmentService(matcher PlayMatcher, logger *logging.Logger, workers int) *EnrichmentService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = defaultBatchWorkers
	}
	return &EnrichmentService{
		matcher: matcher,
		logger:  logger,
		workers: workers,
	}
}

// EnrichBatch dedupes rows first-wins, then matches each game's plays on a
// worker pool. Games are independent, so they run concurrently; the provider
// client's rate gate still serializes actual network traffic. One play's or
// one game's failure never aborts the rest of the batch.
func (s *EnrichmentService) EnrichBatch(ctx context.Context, rows []play.SourcePlay) (BatchResult, error) {
	rows = play.DedupeFirstWins(rows)
	result := BatchResult{Total: len(rows)}
	if len(rows) == 0 {
		return result, nil
	}

	groups := groupByGame(rows)

	workerCount := s.workers
	if workerCount > len(groups) {
		workerCount = len(groups)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return BatchResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	enriched := make(chan play.EnrichedPlay, len(rows))
	var matched, unmatched, failed atomic.Int64

	var workers sync.WaitGroup
	for _, group := range groups {
		group := group
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			s.logger.InfoContext(ctx, "matching plays", "game_id", group.gameID, "count", len(group.plays))
			for idx, source := range group.plays {
				hint := idx
				out, err := s.matcher.MatchPlay(ctx, source, &hint)
				if err != nil {
					if isNoMatch(err) {
						unmatched.Add(1)
					} else {
						failed.Add(1)
						s.logger.WarnContext(ctx, "play match errored",
							"game_id", source.GameID,
							"play_id", source.PlayID,
							"error", err,
						)
					}
					continue
				}
				matched.Add(1)
				enriched <- out
			}
		}); err != nil {
			workers.Done()
			return BatchResult{}, fmt.Errorf("submit game to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(enriched)

	result.Enriched = make([]play.EnrichedPlay, 0, matched.Load())
	for row := range enriched {
		result.Enriched = append(result.Enriched, row)
	}

	sort.SliceStable(result.Enriched, func(i, j int) bool {
		if result.Enriched[i].GameID != result.Enriched[j].GameID {
			return result.Enriched[i].GameID < result.Enriched[j].GameID
		}
		return result.Enriched[i].PlayID < result.Enriched[j].PlayID
	})

	result.Matched = int(matched.Load())
	result.Unmatched = int(unmatched.Load())
	result.Failed = int(failed.Load())
	return result, nil
}

type gameGroup struct {
	gameID string
	plays  []play.SourcePlay
}

// groupByGame partitions plays by game id, preserving both first-seen game
// order and in-game play order. In-game order is load-bearing: the group
// index becomes the matcher's sequence hint.
func groupByGame(rows []play.SourcePlay) []gameGroup {
	indexByGame := make(map[string]int, 8)
	groups := make([]gameGroup, 0, 8)
	for _, row := range rows {
		idx, ok := indexByGame[row.GameID]
		if !ok {
			idx = len(groups)
			indexByGame[row.GameID] = idx
			groups = append(groups, gameGroup{gameID: row.GameID})
		}
		groups[idx].plays = append(groups[idx].plays, row)
	}
	return groups
}

func isNoMatch(err error) bool {
	return stderrors.Is(err, ErrNoMatch) || stderrors.Is(err, ErrMappingNotFound)
}
