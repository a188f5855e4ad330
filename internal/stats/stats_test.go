package stats

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "data", "stats.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestEmptySummary(t *testing.T) {
	store := openTestStore(t)

	sum, err := store.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if sum != (Summary{}) {
		t.Errorf("Summary() = %+v, want zero", sum)
	}
	if sum.WinRate() != 0 {
		t.Errorf("WinRate() = %v, want 0", sum.WinRate())
	}
}

func TestSummaryStreaks(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	outcomes := []bool{true, true, false, true, true, true, false, true}
	for i, won := range outcomes {
		err := store.Record(ctx, Result{Answer: "apple", Won: won, Guesses: 5 + i, IncorrectGuesses: i})
		if err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	sum, err := store.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	want := Summary{Played: 8, Won: 6, CurrentStreak: 1, MaxStreak: 3}
	if sum != want {
		t.Errorf("Summary() = %+v, want %+v", sum, want)
	}
	if sum.WinRate() != 75 {
		t.Errorf("WinRate() = %v, want 75", sum.WinRate())
	}
}

func TestReopenKeepsHistory(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "stats.db")

	store, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := store.Record(ctx, Result{Answer: "grape", Won: true, Guesses: 4}); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	store.Close()

	// Migrations must be idempotent across opens.
	store, err = Open(ctx, path)
	if err != nil {
		t.Fatalf("second Open() error = %v", err)
	}
	defer store.Close()

	sum, err := store.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if sum.Played != 1 || sum.Won != 1 {
		t.Errorf("Summary() = %+v, want one won round", sum)
	}
}
