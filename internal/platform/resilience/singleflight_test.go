package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestSingleFlightCollapsesConcurrentCalls(t *testing.T) {
	t.Parallel()

	var flight SingleFlight
	var executions atomic.Int64
	started := make(chan struct{})
	release := make(chan struct{})

	// Leader occupies the key until released.
	var leader sync.WaitGroup
	leader.Add(1)
	go func() {
		defer leader.Done()
		_, _, _ = flight.Do("key", func() (any, error) {
			executions.Add(1)
			close(started)
			<-release
			return "result", nil
		})
	}()
	<-started

	// Followers arrive while the leader is in flight and share its result.
	var followers sync.WaitGroup
	var shared atomic.Int64
	for i := 0; i < 7; i++ {
		followers.Add(1)
		go func() {
			defer followers.Done()
			value, err, fromFlight := flight.Do("key", func() (any, error) {
				executions.Add(1)
				return "result", nil
			})
			if err != nil || value != "result" {
				t.Errorf("Do = (%v, %v)", value, err)
			}
			if fromFlight {
				shared.Add(1)
			}
		}()
	}

	close(release)
	followers.Wait()
	leader.Wait()

	// A follower that slips in after the leader finishes re-executes, so the
	// execution and shared counts must always mirror each other.
	if executions.Load()+shared.Load() != 8 {
		t.Fatalf("executions=%d shared=%d, want them to sum to 8", executions.Load(), shared.Load())
	}
	if executions.Load() < 1 {
		t.Fatal("expected at least the leader execution")
	}
}

func TestSingleFlightDistinctKeysRunIndependently(t *testing.T) {
	t.Parallel()

	var flight SingleFlight
	var executions atomic.Int64

	for _, key := range []string{"a", "b", "a"} {
		if _, err, _ := flight.Do(key, func() (any, error) {
			executions.Add(1)
			return nil, nil
		}); err != nil {
			t.Fatalf("do %s: %v", key, err)
		}
	}

	// Sequential calls never overlap, so every call executes.
	if got := executions.Load(); got != 3 {
		t.Fatalf("expected 3 executions, got %d", got)
	}
}
