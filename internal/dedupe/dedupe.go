// Package dedupe collapses re-scraped duplicate games out of the raw
// observation stream before aggregation.
package dedupe

import (
	"sort"
	"strings"

	"github.com/hsato/go-mleague-draft/internal/model"
)

// Dedupe groups observations by game id in encounter order, splits each group
// into consecutive chunks of four entrants, and keeps each chunk only the
// first time its (game id, sorted player set) key is seen. A later duplicate
// chunk is dropped whole even when its scores differ; the key is the sole
// duplicate signal. Trailing partial chunks are discarded.
//
// Malformed input is truncated, never an error, and Dedupe is idempotent.
func Dedupe(obs []model.Observation) []model.Observation {
	if len(obs) == 0 {
		return nil
	}

	byGame := make(map[string][]model.Observation)
	var order []string
	for _, o := range obs {
		if _, ok := byGame[o.GameID]; !ok {
			order = append(order, o.GameID)
		}
		byGame[o.GameID] = append(byGame[o.GameID], o)
	}

	seen := make(map[string]struct{})
	var out []model.Observation
	for _, gameID := range order {
		rows := byGame[gameID]
		for i := 0; i+model.EntrantsPerGame <= len(rows); i += model.EntrantsPerGame {
			chunk := rows[i : i+model.EntrantsPerGame]
			key := dedupKey(gameID, chunk)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, chunk...)
		}
	}
	return out
}

// Games returns the deduplicated games as rank-sorted entrant groups,
// ordered by game id descending (newest first) for presentation.
func Games(obs []model.Observation) []model.GameResult {
	deduped := Dedupe(obs)

	var games []model.GameResult
	for i := 0; i+model.EntrantsPerGame <= len(deduped); i += model.EntrantsPerGame {
		entrants := make([]model.Observation, model.EntrantsPerGame)
		copy(entrants, deduped[i:i+model.EntrantsPerGame])
		sort.SliceStable(entrants, func(a, b int) bool {
			return entrants[a].Rank < entrants[b].Rank
		})
		games = append(games, model.GameResult{GameID: entrants[0].GameID, Entrants: entrants})
	}
	sort.SliceStable(games, func(a, b int) bool {
		return games[a].GameID > games[b].GameID
	})
	return games
}

func dedupKey(gameID string, chunk []model.Observation) string {
	names := make([]string, len(chunk))
	for i, o := range chunk {
		names[i] = o.Player
	}
	sort.Strings(names)
	return gameID + "\x00" + strings.Join(names, "\x00")
}
