package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsato/go-mleague-draft/internal/model"
)

func game(id string, players ...string) []model.Observation {
	obs := make([]model.Observation, len(players))
	for i, p := range players {
		obs[i] = model.Observation{GameID: id, Player: p, Score: float64(10 - i*5), Rank: i + 1}
	}
	return obs
}

func TestDedupeEmptyInput(t *testing.T) {
	assert.Empty(t, Dedupe(nil))
	assert.Empty(t, Dedupe([]model.Observation{}))
}

func TestDedupeKeepsDistinctGames(t *testing.T) {
	var obs []model.Observation
	obs = append(obs, game("2024/05/01 1回戦", "A", "B", "C", "D")...)
	obs = append(obs, game("2024/05/01 2回戦", "A", "B", "C", "D")...)

	out := Dedupe(obs)
	assert.Len(t, out, 8, "same players in a different round are distinct games")
}

func TestDedupeDropsRescrapedChunk(t *testing.T) {
	first := game("2024/05/01 1回戦", "A", "B", "C", "D")
	// Rescrape of the same page: same game id, same four players, different
	// scores. Must collapse to the first-seen chunk.
	second := game("2024/05/01 1回戦", "D", "C", "B", "A")
	for i := range second {
		second[i].Score = 99
	}

	out := Dedupe(append(append([]model.Observation{}, first...), second...))
	require.Len(t, out, 4)
	assert.Equal(t, first, out, "first-seen chunk wins, later duplicate dropped whole")
}

func TestDedupeTruncatesPartialGroups(t *testing.T) {
	five := game("2024/05/01 1回戦", "A", "B", "C", "D")
	five = append(five, model.Observation{GameID: "2024/05/01 1回戦", Player: "E", Score: 1, Rank: 1})
	assert.Len(t, Dedupe(five), 4, "5 rows yield one complete game, remainder dropped")

	three := game("2024/05/02 1回戦", "A", "B", "C")
	assert.Empty(t, Dedupe(three), "3 rows yield no game")
}

func TestDedupeIdempotent(t *testing.T) {
	var obs []model.Observation
	obs = append(obs, game("2024/05/01 1回戦", "A", "B", "C", "D")...)
	obs = append(obs, game("2024/05/01 1回戦", "A", "B", "C", "D")...)
	obs = append(obs, game("2024/05/02 1回戦", "E", "F", "G", "H")...)
	obs = append(obs, game("2024/05/02 2回戦", "E", "F", "G", "H")[:3]...)

	once := Dedupe(obs)
	twice := Dedupe(once)
	assert.Equal(t, once, twice)
}

func TestGamesSortsEntrantsByRank(t *testing.T) {
	obs := []model.Observation{
		{GameID: "2024/05/01 1回戦", Player: "B", Score: -5, Rank: 2},
		{GameID: "2024/05/01 1回戦", Player: "A", Score: 10, Rank: 1},
		{GameID: "2024/05/01 1回戦", Player: "D", Score: -8, Rank: 4},
		{GameID: "2024/05/01 1回戦", Player: "C", Score: 3, Rank: 3},
	}
	games := Games(obs)
	require.Len(t, games, 1)
	require.Len(t, games[0].Entrants, 4)
	for i, e := range games[0].Entrants {
		assert.Equal(t, i+1, e.Rank)
	}
}

func TestGamesNewestFirst(t *testing.T) {
	var obs []model.Observation
	obs = append(obs, game("2024/05/01 1回戦", "A", "B", "C", "D")...)
	obs = append(obs, game("2024/05/02 1回戦", "A", "B", "C", "D")...)

	games := Games(obs)
	require.Len(t, games, 2)
	assert.Equal(t, "2024/05/02 1回戦", games[0].GameID)
	assert.Equal(t, "2024/05/01 1回戦", games[1].GameID)
}
