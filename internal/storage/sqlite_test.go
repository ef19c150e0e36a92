package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/n3ptun3-dev/3D-Snake-sub000/internal/sim"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []sim.RunStats{
		{Seed: 1, Score: 100, Level: 2, Apples: 10, DurationMS: 60000, LivesUsed: 3},
		{Seed: 2, Score: 50, Level: 1, Apples: 5, DurationMS: 30000, LivesUsed: 3},
		{Seed: 3, Score: 200, Level: 3, Apples: 20, DurationMS: 90000, LivesUsed: 2},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("TopRuns() returned %d runs, want 3", len(top))
	}
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("TopRuns() order = %d, %d, %d, want 200, 100, 50",
			top[0].Score, top[1].Score, top[2].Score)
	}
	if top[0].Apples != 20 || top[0].Seed != 3 {
		t.Errorf("TopRuns() first entry fields = apples %d seed %d", top[0].Apples, top[0].Seed)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 15; i++ {
		if _, err := store.SaveRun(sim.RunStats{Seed: int64(i), Score: i * 10}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	top, err := store.TopRuns(5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 5 {
		t.Fatalf("TopRuns(5) returned %d runs", len(top))
	}
	if top[0].Score != 140 {
		t.Errorf("best score = %d, want 140", top[0].Score)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	score, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("HighScore() on empty store = %d, want 0", score)
	}

	store.SaveRun(sim.RunStats{Score: 170})
	store.SaveRun(sim.RunStats{Score: 90})

	score, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 170 {
		t.Errorf("HighScore() = %d, want 170", score)
	}
}

func TestStoreRecorderInterface(t *testing.T) {
	store := openTestStore(t)
	var rec sim.Recorder = store
	if err := rec.RecordRun(sim.RunStats{Seed: 42, Score: 130}); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	score, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 130 {
		t.Errorf("HighScore() = %d, want 130", score)
	}
}

func TestStoreCareerStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetCareerStats()
	if err != nil {
		t.Fatalf("GetCareerStats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.HighScore != 0 {
		t.Errorf("empty career stats = %+v", stats)
	}

	store.SaveRun(sim.RunStats{Score: 100, Level: 2, Apples: 10, MaxLength: 13, TopSpeed: 5.2, DurationMS: 60000, PortalsEntered: 3, PassagesCompleted: 1})
	store.SaveRun(sim.RunStats{Score: 300, Level: 4, Apples: 30, MaxLength: 33, TopSpeed: 7.6, DurationMS: 120000, PortalsEntered: 8, PassagesCompleted: 4})

	stats, err = store.GetCareerStats()
	if err != nil {
		t.Fatalf("GetCareerStats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Runs = %d, want 2", stats.Runs)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %f, want 200", stats.AvgScore)
	}
	if stats.TotalApples != 40 {
		t.Errorf("TotalApples = %d, want 40", stats.TotalApples)
	}
	if stats.MaxLevel != 4 || stats.BestLength != 33 {
		t.Errorf("MaxLevel/BestLength = %d/%d", stats.MaxLevel, stats.BestLength)
	}
	if stats.TopSpeed != 7.6 {
		t.Errorf("TopSpeed = %f, want 7.6", stats.TopSpeed)
	}
	if stats.PortalsEntered != 11 || stats.PassagesCompleted != 5 {
		t.Errorf("portal/passage totals = %d/%d", stats.PortalsEntered, stats.PassagesCompleted)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun(sim.RunStats{Score: 100})
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("runs after clear = %d, want 0", len(top))
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		store.SaveRun(sim.RunStats{Seed: int64(i), Score: i})
	}
	recent, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("RecentRuns(3) returned %d", len(recent))
	}
	if recent[0].Seed != 4 {
		t.Errorf("newest run seed = %d, want 4", recent[0].Seed)
	}
}
