package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "scores.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("expected an error for an empty path")
	}
}

func TestOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.pillarrun/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".pillarrun", "scores.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}

func TestTopScoresOrdering(t *testing.T) {
	store := openTemp(t)
	for _, run := range []struct{ score, transitions int }{
		{12, 7}, {40, 15}, {3, 3}, {40, 16},
	} {
		if _, err := store.SaveScore(run.score, run.transitions); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	top, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("got %d entries, want 3", len(top))
	}
	if top[0].Score != 40 || top[0].Transitions != 15 {
		t.Errorf("first entry = %+v, want the earlier 40", top[0])
	}
	if top[1].Score != 40 || top[1].Transitions != 16 {
		t.Errorf("second entry = %+v", top[1])
	}
	if top[2].Score != 12 {
		t.Errorf("third entry = %+v", top[2])
	}
	if top[0].CreatedAt.IsZero() || time.Since(top[0].CreatedAt) > 24*time.Hour {
		t.Errorf("unexpected timestamp %v", top[0].CreatedAt)
	}
}

func TestTopScoresDefaultLimit(t *testing.T) {
	store := openTemp(t)
	for i := 0; i < 15; i++ {
		store.SaveScore(i, i)
	}
	top, err := store.TopScores(0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("got %d entries, want the default 10", len(top))
	}
}

func TestHighScore(t *testing.T) {
	store := openTemp(t)
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("empty store high score = %d, want 0", high)
	}

	store.SaveScore(8, 5)
	store.SaveScore(21, 11)
	store.SaveScore(2, 2)
	if high, _ = store.HighScore(); high != 21 {
		t.Errorf("high score = %d, want 21", high)
	}
}

func TestClearScores(t *testing.T) {
	store := openTemp(t)
	store.SaveScore(5, 5)
	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	top, _ := store.TopScores(10)
	if len(top) != 0 {
		t.Errorf("%d entries left after clearing", len(top))
	}
}

func TestReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveScore(33, 20)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()
	if high, _ := store.HighScore(); high != 33 {
		t.Errorf("high score after reopen = %d, want 33", high)
	}
}
