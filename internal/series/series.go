// Package series builds the cumulative per-team score time series behind the
// standings chart: one point per completed game plus a pre-season sentinel.
package series

import (
	"math"
	"sort"

	"github.com/hsato/go-mleague-draft/internal/model"
)

// Build computes cumulative team scores after each distinct game.
//
// Distinct game ids are ordered by their date prefix, ascending; games that
// share a date but differ in round label keep encounter order, which is how
// the source site lists same-day rounds.
//
// Unlike Aggregate, the team bonus is baked in from the very first point: the
// cumulative map is seeded with each team's bonus and the sentinel 開幕前
// point snapshots those seeds. The policy decides how a player rostered on
// several teams is credited; a player on no team credits nobody.
func Build(obs []model.Observation, teams []model.DraftTeam, rules model.SpecialRules, policy model.MembershipPolicy) []model.SeriesPoint {
	byGame := make(map[string][]model.Observation)
	var order []string
	for _, o := range obs {
		if _, ok := byGame[o.GameID]; !ok {
			order = append(order, o.GameID)
		}
		byGame[o.GameID] = append(byGame[o.GameID], o)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return model.DatePrefix(order[i]) < model.DatePrefix(order[j])
	})

	cumulative := make(map[string]float64, len(teams))
	for _, t := range teams {
		cumulative[t.Name] = rules.TeamBonus[t.Name]
	}

	points := make([]model.SeriesPoint, 0, len(order)+1)
	points = append(points, snapshot(model.PreSeasonLabel, teams, cumulative))

	for _, gameID := range order {
		for _, o := range byGame[gameID] {
			for _, t := range teams {
				if !t.MemberOf(o.Player) {
					continue
				}
				cumulative[t.Name] += o.Score
				if policy == model.StrictSingleTeam {
					break
				}
			}
		}
		points = append(points, snapshot(model.DatePrefix(gameID), teams, cumulative))
	}
	return points
}

func snapshot(label string, teams []model.DraftTeam, cumulative map[string]float64) model.SeriesPoint {
	p := model.SeriesPoint{Label: label, Cumulative: make(map[string]float64, len(teams))}
	for _, t := range teams {
		p.Cumulative[t.Name] = round1(cumulative[t.Name])
	}
	return p
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
