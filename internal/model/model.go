// Package model holds the domain types shared by the scraping, aggregation
// and rendering layers: raw score observations pulled from the results site,
// the draft-team configuration, and the derived standings structures.
package model

import "strings"

// Observation is one (game, player, score, rank) row extracted from the
// results site. Immutable once created.
type Observation struct {
	// GameID is "YYYY/MM/DD N回戦": a date prefix plus a round label.
	// Beyond date-prefix extraction it is opaque to the aggregation core.
	GameID string
	Player string
	Score  float64
	Rank   int
}

// DatePrefix returns the date portion of a game id (everything before the
// first space), or the whole id when there is no round label.
func DatePrefix(gameID string) string {
	if i := strings.IndexByte(gameID, ' '); i >= 0 {
		return gameID[:i]
	}
	return gameID
}

// EntrantsPerGame is the fixed number of ranked entrants in a complete game.
const EntrantsPerGame = 4

// DraftTeam is a fantasy grouping of real players under a team name.
// Teams are configured as an ordered slice; the order drives worksheet
// columns, chart datasets and strict-single membership lookup.
type DraftTeam struct {
	Name    string   `json:"name" validate:"required"`
	Members []string `json:"members" validate:"required,min=1"`
}

// MemberOf reports whether the team roster contains the player.
func (t DraftTeam) MemberOf(player string) bool {
	for _, m := range t.Members {
		if m == player {
			return true
		}
	}
	return false
}

// SpecialRules are flat score adjustments applied at aggregation time.
// They never mutate stored observations.
type SpecialRules struct {
	TeamBonus   map[string]float64 `json:"team_bonus"`
	PlayerBonus map[string]float64 `json:"player_bonus"`
}

// MembershipPolicy controls how a player rostered on more than one draft
// team is credited in the time series.
type MembershipPolicy string

const (
	// CreditAllMatches credits the player's score to every team that
	// rosters them.
	CreditAllMatches MembershipPolicy = "credit-all"
	// StrictSingleTeam credits only the first configured team.
	StrictSingleTeam MembershipPolicy = "strict-single"
)

// PlayerStat is the per-player rollup for one pipeline run. Recomputed from
// scratch every run, never updated incrementally.
type PlayerStat struct {
	Name string
	Team string // first configured team rostering the player; "" if none

	TotalScore   float64 // raw sum of observed scores
	DisplayScore float64 // TotalScore + player bonus; used in ranking output
	GameCount    int
	RankSum      int
	// RankCounts[r] is the number of observations with rank r (1..4).
	RankCounts   [EntrantsPerGame + 1]int
	LastDayDelta float64
}

// AvgRank returns RankSum/GameCount, or 0 for a player with no games.
func (s *PlayerStat) AvgRank() float64 {
	if s.GameCount == 0 {
		return 0
	}
	return float64(s.RankSum) / float64(s.GameCount)
}

// TeamStat is the per-team rollup: member raw totals plus the team bonus.
// Player bonuses deliberately do not feed into team totals.
type TeamStat struct {
	Name         string
	TotalScore   float64
	LastDayDelta float64
	Rank         int // 1-based position after sorting, assigned by the projector
}

// SeriesPoint is one step of the cumulative score chart: the pre-season
// sentinel or one completed game.
type SeriesPoint struct {
	Label      string
	Cumulative map[string]float64 // team name → running total, 1-decimal
}

// PreSeasonLabel labels the sentinel first series point.
const PreSeasonLabel = "開幕前"

// GameResult is one complete deduplicated game with its four entrants
// sorted by rank, as laid out on the game-results worksheet.
type GameResult struct {
	GameID   string
	Entrants []Observation // len == EntrantsPerGame, rank ascending
}

// RGB is a team display color with channels in [0,1], matching the
// spreadsheet API's color model.
type RGB struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
}

// ScrapeRun records one persisted fetch of the results site.
type ScrapeRun struct {
	ID        int64
	FetchedAt string
	SourceURL string
	RowCount  int
}
