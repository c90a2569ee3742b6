package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/gridironlab/playenrich/internal/domain/play"
)

// recordingMatcher captures the sequence hints handed to it per game and
// answers from a canned outcome table.
type recordingMatcher struct {
	mu       sync.Mutex
	hints    map[string][]int
	outcomes map[string]error
}

func newRecordingMatcher() *recordingMatcher {
	return &recordingMatcher{
		hints:    make(map[string][]int),
		outcomes: make(map[string]error),
	}
}

func (m *recordingMatcher) MatchPlay(_ context.Context, source play.SourcePlay, sequenceHint *int) (play.EnrichedPlay, error) {
	m.mu.Lock()
	hint := -1
	if sequenceHint != nil {
		hint = *sequenceHint
	}
	m.hints[source.GameID] = append(m.hints[source.GameID], hint)
	err := m.outcomes[source.Key()]
	m.mu.Unlock()

	if err != nil {
		return play.EnrichedPlay{}, err
	}
	return play.EnrichedPlay{
		GameID:          source.GameID,
		PlayID:          source.PlayID,
		MatchConfidence: 0.9,
	}, nil
}

func TestEnrichmentService_EnrichBatch(t *testing.T) {
	t.Parallel()

	matcher := newRecordingMatcher()
	service := NewEnrichmentService(matcher, nil, 2)

	// Two games interleaved in input order.
	rows := []play.SourcePlay{
		{GameID: "2023091000", PlayID: 1},
		{GameID: "2023091001", PlayID: 1},
		{GameID: "2023091000", PlayID: 2},
		{GameID: "2023091001", PlayID: 2},
		{GameID: "2023091000", PlayID: 3},
	}

	result, err := service.EnrichBatch(context.Background(), rows)
	if err != nil {
		t.Fatalf("enrich batch: %v", err)
	}

	if result.Total != 5 || result.Matched != 5 || result.Unmatched != 0 || result.Failed != 0 {
		t.Fatalf("unexpected counts: %+v", result)
	}
	if len(result.Enriched) != 5 {
		t.Fatalf("expected 5 enriched plays, got %d", len(result.Enriched))
	}

	// Hints restart at zero for each game group.
	wantHints := map[string][]int{
		"2023091000": {0, 1, 2},
		"2023091001": {0, 1},
	}
	for gameID, want := range wantHints {
		got := matcher.hints[gameID]
		if len(got) != len(want) {
			t.Fatalf("game %s: got hints %v, want %v", gameID, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("game %s: got hints %v, want %v", gameID, got, want)
			}
		}
	}

	// Output is sorted by (game id, play id) regardless of worker order.
	for i := 1; i < len(result.Enriched); i++ {
		prev, cur := result.Enriched[i-1], result.Enriched[i]
		if prev.GameID > cur.GameID || (prev.GameID == cur.GameID && prev.PlayID > cur.PlayID) {
			t.Fatalf("enriched output not sorted at index %d: %+v before %+v", i, prev, cur)
		}
	}
}

func TestEnrichmentService_CountsUnmatchedAndFailed(t *testing.T) {
	t.Parallel()

	matcher := newRecordingMatcher()
	matcher.outcomes["2023091000:2"] = ErrNoMatch
	matcher.outcomes["2023091000:3"] = ErrMappingNotFound
	matcher.outcomes["2023091000:4"] = errors.New("provider exploded")

	service := NewEnrichmentService(matcher, nil, 1)

	rows := []play.SourcePlay{
		{GameID: "2023091000", PlayID: 1},
		{GameID: "2023091000", PlayID: 2},
		{GameID: "2023091000", PlayID: 3},
		{GameID: "2023091000", PlayID: 4},
	}

	result, err := service.EnrichBatch(context.Background(), rows)
	if err != nil {
		t.Fatalf("enrich batch: %v", err)
	}
	if result.Matched != 1 || result.Unmatched != 2 || result.Failed != 1 {
		t.Fatalf("unexpected counts: %+v", result)
	}
	if len(result.Enriched) != 1 || result.Enriched[0].PlayID != 1 {
		t.Fatalf("unexpected enriched plays: %+v", result.Enriched)
	}
}

func TestEnrichmentService_DedupesBeforeMatching(t *testing.T) {
	t.Parallel()

	matcher := newRecordingMatcher()
	service := NewEnrichmentService(matcher, nil, 1)

	rows := []play.SourcePlay{
		{GameID: "2023091000", PlayID: 1, AbsoluteYardLine: 42},
		{GameID: "2023091000", PlayID: 1, AbsoluteYardLine: 99},
	}

	result, err := service.EnrichBatch(context.Background(), rows)
	if err != nil {
		t.Fatalf("enrich batch: %v", err)
	}
	if result.Total != 1 || result.Matched != 1 {
		t.Fatalf("duplicate row was matched twice: %+v", result)
	}
	if got := matcher.hints["2023091000"]; len(got) != 1 {
		t.Fatalf("expected one matcher call, got %d", len(got))
	}
}

func TestEnrichmentService_EmptyBatch(t *testing.T) {
	t.Parallel()

	service := NewEnrichmentService(newRecordingMatcher(), nil, 4)

	result, err := service.EnrichBatch(context.Background(), nil)
	if err != nil {
		t.Fatalf("enrich batch: %v", err)
	}
	if result.Total != 0 || len(result.Enriched) != 0 {
		t.Fatalf("unexpected result for empty batch: %+v", result)
	}
}
