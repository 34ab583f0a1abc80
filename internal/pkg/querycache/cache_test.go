package querycache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestCache(freshFor time.Duration) *Cache {
	return New(freshFor, nil, zerolog.Nop())
}

type listParams struct {
	CourseID string `json:"courseId"`
	Active   bool   `json:"active"`
}

func TestKey_StructurallyEqualParams(t *testing.T) {
	a := Key("students", listParams{CourseID: "c1", Active: true})
	b := Key("students", listParams{CourseID: "c1", Active: true})
	if a != b {
		t.Errorf("equal params produced different keys: %q vs %q", a, b)
	}

	c := Key("students", listParams{CourseID: "c2", Active: true})
	if a == c {
		t.Errorf("different params produced the same key: %q", a)
	}

	if Key("students", nil) != "students" {
		t.Errorf("nil params should key on the tag alone")
	}
}

func TestFetch_CachesEqualKeys(t *testing.T) {
	cache := newTestCache(time.Minute)
	ctx := context.Background()

	var calls int32
	load := func(ctx context.Context) ([]string, error) {
		atomic.AddInt32(&calls, 1)
		return []string{"s1", "s2"}, nil
	}

	key := Key("students", listParams{CourseID: "c1"})
	first, err := Fetch(ctx, cache, key, load)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Fetch(ctx, cache, key, load)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("expected exactly one load for equal keys, got %d", got)
	}
	if len(first) != 2 || len(second) != 2 {
		t.Errorf("expected both reads to see the cached result")
	}
	if cache.Status(key) != StatusSuccess {
		t.Errorf("expected success status, got %s", cache.Status(key))
	}
}

func TestFetch_IndependentKeysLoadIndependently(t *testing.T) {
	cache := newTestCache(time.Minute)
	ctx := context.Background()

	var calls int32
	load := func(ctx context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "data", nil
	}

	if _, err := Fetch(ctx, cache, Key("classByCourse", "c1"), load); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Fetch(ctx, cache, Key("classByCourse", "c2"), load); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("expected one load per distinct key, got %d", got)
	}
}

func TestFetch_SharesInFlightRequest(t *testing.T) {
	cache := newTestCache(time.Minute)
	ctx := context.Background()

	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})
	load := func(ctx context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		close(started)
		<-release
		return "data", nil
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := Fetch(ctx, cache, "students", load); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	}()

	<-started

	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := Fetch(ctx, cache, "students", load); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	}()

	// Give the second caller time to join the in-flight request
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("expected concurrent equal-key fetches to share one call, got %d", got)
	}
}

func TestFetch_ReloadsAfterFreshnessWindow(t *testing.T) {
	cache := newTestCache(20 * time.Millisecond)
	ctx := context.Background()

	var calls int32
	load := func(ctx context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "data", nil
	}

	if _, err := Fetch(ctx, cache, "courses", load); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(40 * time.Millisecond)
	if _, err := Fetch(ctx, cache, "courses", load); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("expected a reload after the freshness window, got %d calls", got)
	}
}

func TestInvalidate_MarksMatchingPrefixesStale(t *testing.T) {
	cache := newTestCache(time.Minute)
	ctx := context.Background()

	load := func(ctx context.Context) (string, error) { return "data", nil }

	parentsKey := Key("parents", nil)
	availableKey := Key("availableStudents", nil)
	coursesKey := Key("courses", listParams{CourseID: "c1"})

	for _, key := range []string{parentsKey, availableKey, coursesKey} {
		if _, err := Fetch(ctx, cache, key, load); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	cache.Invalidate("parents", "availableStudents")

	if !cache.Stale(parentsKey) {
		t.Errorf("expected parents to be stale")
	}
	if !cache.Stale(availableKey) {
		t.Errorf("expected available students to be stale")
	}
	if cache.Stale(coursesKey) {
		t.Errorf("courses must not be invalidated by a parent mutation")
	}

	// A stale key reloads on the next fetch
	var reloads int32
	reload := func(ctx context.Context) (string, error) {
		atomic.AddInt32(&reloads, 1)
		return "fresh", nil
	}
	if _, err := Fetch(ctx, cache, parentsKey, reload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := atomic.LoadInt32(&reloads); got != 1 {
		t.Errorf("expected stale key to reload, got %d calls", got)
	}
	if cache.Stale(parentsKey) {
		t.Errorf("reloaded key must be fresh again")
	}
}

func TestMutate_InvalidatesOnSuccessOnly(t *testing.T) {
	cache := newTestCache(time.Minute)
	ctx := context.Background()

	seed := func(ctx context.Context) ([]string, error) { return []string{"s1", "s2"}, nil }
	if _, err := Fetch(ctx, cache, "availableStudents", seed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Failed mutation: cache untouched, error propagates
	boom := errors.New("backend rejected")
	_, err := Mutate(ctx, cache, func(ctx context.Context) (string, error) {
		return "", boom
	}, "parents", "availableStudents")
	if !errors.Is(err, boom) {
		t.Fatalf("expected mutation error to propagate, got %v", err)
	}
	if cache.Stale("availableStudents") {
		t.Errorf("failed mutation must not invalidate anything")
	}
	if data, ok := cache.Peek("availableStudents"); !ok || len(data.([]string)) != 2 {
		t.Errorf("failed mutation must leave cached data unchanged")
	}

	// Successful mutation: declared prefixes go stale
	_, err = Mutate(ctx, cache, func(ctx context.Context) (string, error) {
		return "ok", nil
	}, "parents", "availableStudents")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cache.Stale("availableStudents") {
		t.Errorf("successful mutation must invalidate declared prefixes")
	}
}

func TestFetch_ErrorPropagates(t *testing.T) {
	cache := newTestCache(time.Minute)
	ctx := context.Background()

	boom := errors.New("network down")
	_, err := Fetch(ctx, cache, "parents", func(ctx context.Context) (string, error) {
		return "", boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fetch error to propagate, got %v", err)
	}
	if cache.Status("parents") != StatusError {
		t.Errorf("expected error status, got %s", cache.Status("parents"))
	}

	// The next read retries rather than serving the error forever
	value, err := Fetch(ctx, cache, "parents", func(ctx context.Context) (string, error) {
		return "recovered", nil
	})
	if err != nil || value != "recovered" {
		t.Errorf("expected recovery on next fetch, got %q, %v", value, err)
	}
}

func TestClear_DropsEverything(t *testing.T) {
	cache := newTestCache(time.Minute)
	ctx := context.Background()

	if _, err := Fetch(ctx, cache, "parents", func(ctx context.Context) (string, error) { return "p", nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cache.Clear()

	if cache.Len() != 0 {
		t.Errorf("expected empty cache after clear, got %d entries", cache.Len())
	}
	if cache.Status("parents") != StatusIdle {
		t.Errorf("cleared keys must be idle")
	}
}
