package storage

import (
	"fmt"
	"time"

	"github.com/hsato/go-mleague-draft/internal/model"
)

// ReplaceObservations swaps the stored observation set for a fresh scrape in
// one transaction. Each run recomputes everything from the full set, so the
// store carries exactly the latest deduplicated snapshot.
func (db *DB) ReplaceObservations(obs []model.Observation) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM observations`); err != nil {
		return fmt.Errorf("clear observations: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO observations(game_id, player, score, rank)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, o := range obs {
		if _, err := stmt.Exec(o.GameID, o.Player, o.Score, o.Rank); err != nil {
			return fmt.Errorf("insert observation %s/%s: %w", o.GameID, o.Player, err)
		}
	}
	return tx.Commit()
}

// ListObservations returns all stored observations in encounter order.
func (db *DB) ListObservations() ([]model.Observation, error) {
	rows, err := db.conn.Query(`
		SELECT game_id, player, score, rank FROM observations ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Observation
	for rows.Next() {
		var o model.Observation
		if err := rows.Scan(&o.GameID, &o.Player, &o.Score, &o.Rank); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// InsertScrape records one fetch of a source page.
func (db *DB) InsertScrape(sourceURL string, rowCount int) error {
	_, err := db.conn.Exec(`
		INSERT INTO scrapes(fetched_at, source_url, row_count) VALUES (?, ?, ?)`,
		time.Now().Format("2006/01/02 15:04:05"), sourceURL, rowCount)
	return err
}

// ListScrapes returns recorded fetches, newest first.
func (db *DB) ListScrapes() ([]model.ScrapeRun, error) {
	rows, err := db.conn.Query(`
		SELECT id, fetched_at, source_url, row_count FROM scrapes ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ScrapeRun
	for rows.Next() {
		var r model.ScrapeRun
		if err := rows.Scan(&r.ID, &r.FetchedAt, &r.SourceURL, &r.RowCount); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// CountGames returns the number of distinct stored game ids.
func (db *DB) CountGames() (int, error) {
	var n int
	err := db.conn.QueryRow(`SELECT COUNT(DISTINCT game_id) FROM observations`).Scan(&n)
	return n, err
}
