package aggregate

import (
	"sort"

	"github.com/hsato/go-mleague-draft/internal/model"
)

// TeamRanking sorts team stats descending by total score and assigns 1-based
// sequential ranks by sort position. Ties get distinct consecutive ranks, not
// shared ones; the stable sort leaves tied teams in configuration order.
func TeamRanking(teamStats []model.TeamStat) []model.TeamStat {
	out := make([]model.TeamStat, len(teamStats))
	copy(out, teamStats)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalScore > out[j].TotalScore
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// PlayerRanking restricts player stats to the named roster and sorts them
// descending by raw total score. Roster players without a single observed
// game are still listed at zero. The roster is a separate list from draft
// membership, typically the league's official player register.
func PlayerRanking(stats []model.PlayerStat, roster []string) []model.PlayerStat {
	index := make(map[string]model.PlayerStat, len(stats))
	for _, s := range stats {
		index[s.Name] = s
	}

	out := make([]model.PlayerStat, 0, len(roster))
	for _, name := range roster {
		if s, ok := index[name]; ok {
			out = append(out, s)
		} else {
			out = append(out, model.PlayerStat{Name: name})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalScore > out[j].TotalScore
	})
	return out
}
