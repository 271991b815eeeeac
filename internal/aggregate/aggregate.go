// Package aggregate turns deduplicated observations into per-player and
// per-team standings under the configured draft teams and special rules.
// Bonus application lives exclusively here and in the series builder;
// renderers consume the computed stats and never recompute bonuses.
package aggregate

import (
	"github.com/hsato/go-mleague-draft/internal/model"
)

// Aggregate computes the full-season player and team rollups.
//
// Player accumulation: TotalScore += score, GameCount++, RankSum += rank per
// observation. Team totals sum each configured member's raw TotalScore and
// then add the team bonus once. The player bonus raises DisplayScore only; it
// never feeds back into team totals.
//
// Last-day delta is the score change attributable to the maximum date prefix
// present in the input; with no observations every delta is 0.
//
// Players appearing in no configured team still get a PlayerStat (with an
// empty Team) but contribute to no team total. Every configured team is
// present in the output even with zero games.
func Aggregate(obs []model.Observation, teams []model.DraftTeam, rules model.SpecialRules) ([]model.PlayerStat, []model.TeamStat) {
	players := make(map[string]*model.PlayerStat)
	var order []string
	get := func(name string) *model.PlayerStat {
		if s, ok := players[name]; ok {
			return s
		}
		s := &model.PlayerStat{Name: name}
		players[name] = s
		order = append(order, name)
		return s
	}

	lastDate := maxDatePrefix(obs)

	for _, o := range obs {
		s := get(o.Player)
		s.TotalScore += o.Score
		s.GameCount++
		s.RankSum += o.Rank
		if o.Rank >= 1 && o.Rank <= model.EntrantsPerGame {
			s.RankCounts[o.Rank]++
		}
		if lastDate != "" && model.DatePrefix(o.GameID) == lastDate {
			s.LastDayDelta += o.Score
		}
	}

	// First configured team wins the display affiliation.
	for _, t := range teams {
		for _, m := range t.Members {
			s := get(m)
			if s.Team == "" {
				s.Team = t.Name
			}
		}
	}

	for _, s := range players {
		s.DisplayScore = s.TotalScore + rules.PlayerBonus[s.Name]
	}

	teamStats := make([]model.TeamStat, 0, len(teams))
	for _, t := range teams {
		ts := model.TeamStat{Name: t.Name}
		for _, m := range t.Members {
			if s, ok := players[m]; ok {
				ts.TotalScore += s.TotalScore
				ts.LastDayDelta += s.LastDayDelta
			}
		}
		ts.TotalScore += rules.TeamBonus[t.Name]
		teamStats = append(teamStats, ts)
	}

	playerStats := make([]model.PlayerStat, 0, len(order))
	for _, name := range order {
		playerStats = append(playerStats, *players[name])
	}
	return playerStats, teamStats
}

// maxDatePrefix returns the lexically greatest date prefix in the input,
// or "" when there are no observations.
func maxDatePrefix(obs []model.Observation) string {
	var max string
	for _, o := range obs {
		if d := model.DatePrefix(o.GameID); d > max {
			max = d
		}
	}
	return max
}

// TeamMembers returns the stats of a team's configured members in roster
// order, including zero-game members. Used by the breakdown worksheet and
// the standings breakdown table.
func TeamMembers(stats []model.PlayerStat, team model.DraftTeam) []model.PlayerStat {
	index := make(map[string]model.PlayerStat, len(stats))
	for _, s := range stats {
		index[s.Name] = s
	}
	out := make([]model.PlayerStat, 0, len(team.Members))
	for _, m := range team.Members {
		if s, ok := index[m]; ok {
			out = append(out, s)
		} else {
			out = append(out, model.PlayerStat{Name: m, Team: team.Name})
		}
	}
	return out
}
