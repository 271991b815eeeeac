package storage

import (
	"testing"

	"github.com/hsato/go-mleague-draft/internal/model"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestReplaceAndListObservations(t *testing.T) {
	db := openMemDB(t)

	obs := []model.Observation{
		{GameID: "2025/09/16 1回戦", Player: "東 太郎", Score: 45.3, Rank: 1},
		{GameID: "2025/09/16 1回戦", Player: "南 次郎", Score: 8.1, Rank: 2},
		{GameID: "2025/09/16 1回戦", Player: "西 三郎", Score: -12.4, Rank: 3},
		{GameID: "2025/09/16 1回戦", Player: "北 四郎", Score: -41.0, Rank: 4},
	}
	if err := db.ReplaceObservations(obs); err != nil {
		t.Fatalf("ReplaceObservations: %v", err)
	}

	got, err := db.ListObservations()
	if err != nil {
		t.Fatalf("ListObservations: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 observations, got %d", len(got))
	}
	// Encounter order preserved.
	if got[0].Player != "東 太郎" || got[3].Player != "北 四郎" {
		t.Errorf("unexpected order: %v", got)
	}
	if got[2].Score != -12.4 {
		t.Errorf("score round-trip: got %v", got[2].Score)
	}
}

func TestReplaceObservationsOverwrites(t *testing.T) {
	db := openMemDB(t)

	first := []model.Observation{{GameID: "g1", Player: "a", Score: 1, Rank: 1}}
	second := []model.Observation{
		{GameID: "g2", Player: "b", Score: 2, Rank: 1},
		{GameID: "g3", Player: "c", Score: 3, Rank: 2},
	}
	if err := db.ReplaceObservations(first); err != nil {
		t.Fatalf("first replace: %v", err)
	}
	if err := db.ReplaceObservations(second); err != nil {
		t.Fatalf("second replace: %v", err)
	}

	got, err := db.ListObservations()
	if err != nil {
		t.Fatalf("ListObservations: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 observations after replace, got %d", len(got))
	}
	if got[0].GameID != "g2" {
		t.Errorf("expected g2 first, got %s", got[0].GameID)
	}
}

func TestCountGames(t *testing.T) {
	db := openMemDB(t)

	obs := []model.Observation{
		{GameID: "g1", Player: "a", Score: 1, Rank: 1},
		{GameID: "g1", Player: "b", Score: -1, Rank: 2},
		{GameID: "g2", Player: "a", Score: 2, Rank: 1},
	}
	if err := db.ReplaceObservations(obs); err != nil {
		t.Fatalf("ReplaceObservations: %v", err)
	}
	n, err := db.CountGames()
	if err != nil {
		t.Fatalf("CountGames: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 distinct games, got %d", n)
	}
}

func TestScrapeLog(t *testing.T) {
	db := openMemDB(t)

	if err := db.InsertScrape("https://example.com/results", 12); err != nil {
		t.Fatalf("InsertScrape: %v", err)
	}
	if err := db.InsertScrape("https://example.com/results?page=2", 8); err != nil {
		t.Fatalf("InsertScrape: %v", err)
	}

	runs, err := db.ListScrapes()
	if err != nil {
		t.Fatalf("ListScrapes: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 scrape runs, got %d", len(runs))
	}
	// Newest first.
	if runs[0].RowCount != 8 {
		t.Errorf("expected newest run first, got row_count=%d", runs[0].RowCount)
	}
}
