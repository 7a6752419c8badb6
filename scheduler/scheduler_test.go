package scheduler

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/color-game/colorimetry/datastore"
	"github.com/color-game/colorimetry/models"
)

type fakeRepo struct {
	datastore.ConversionRepository

	mu      sync.Mutex
	cutoffs []time.Time
	err     error
}

func (f *fakeRepo) DeleteOlderThan(cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cutoffs = append(f.cutoffs, cutoff)
	if f.err != nil {
		return 0, f.err
	}
	return 3, nil
}

func (f *fakeRepo) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cutoffs)
}

func TestPruneOnceUsesRetention(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	p := NewPruner(repo, 24*time.Hour, time.Hour)
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

	deleted, err := p.PruneOnce(now)
	if err != nil || deleted != 3 {
		t.Fatalf("PruneOnce = (%d, %v), want (3, nil)", deleted, err)
	}
	if want := now.Add(-24 * time.Hour); !repo.cutoffs[0].Equal(want) {
		t.Errorf("cutoff = %v, want %v", repo.cutoffs[0], want)
	}
}

func TestPruneOnceReportsError(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection reset")
	p := NewPruner(&fakeRepo{err: boom}, time.Hour, time.Hour)
	if _, err := p.PruneOnce(time.Now()); !errors.Is(err, boom) {
		t.Errorf("PruneOnce error = %v, want %v", err, boom)
	}
}

func TestStartPrunesAndStops(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	p := NewPruner(repo, time.Hour, 5*time.Millisecond)
	p.Start()

	deadline := time.Now().Add(2 * time.Second)
	for repo.calls() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	p.Stop()
	p.Stop()

	if repo.calls() < 3 {
		t.Fatalf("pruner ran %d times, want at least 3", repo.calls())
	}
}

func TestPrunerWithMemoryStore(t *testing.T) {
	t.Parallel()

	store := datastore.NewMemoryConversionStore()
	now := time.Now()
	stale := models.NewConversion("#FFF", models.FormatHex, models.FormatRGB, "rgb(255,255,255)", nil)
	stale.CreatedAt = now.Add(-2 * time.Hour)
	fresh := models.NewConversion("#000", models.FormatHex, models.FormatRGB, "rgb(0,0,0)", nil)
	for _, c := range []models.Conversion{stale, fresh} {
		if _, err := store.Create(c); err != nil {
			t.Fatal(err)
		}
	}

	deleted, err := NewPruner(store, time.Hour, time.Hour).PruneOnce(now)
	if err != nil || deleted != 1 {
		t.Fatalf("PruneOnce = (%d, %v), want (1, nil)", deleted, err)
	}
	left, _ := store.GetRecent(10)
	if len(left) != 1 || left[0].ID != fresh.ID {
		t.Errorf("remaining = %+v", left)
	}
}
