// Package report renders standings as terminal tables.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/hsato/go-mleague-draft/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// signed formats a score with an explicit sign, one decimal.
func signed(v float64) string {
	return fmt.Sprintf("%+.1f", v)
}

// PrintTeamRanking writes the team standings table.
func PrintTeamRanking(w io.Writer, ranking []model.TeamStat) {
	table := newTable(w)
	table.Header("RANK", "TEAM", "TOTAL", "LAST DAY")

	for _, ts := range ranking {
		table.Append(
			strconv.Itoa(ts.Rank),
			ts.Name,
			signed(ts.TotalScore),
			signed(ts.LastDayDelta),
		)
	}
	table.Render()
}

// PrintTeamBreakdown writes one member-detail table per configured team,
// roster order, with the team total as the final row.
func PrintTeamBreakdown(w io.Writer, teams []model.DraftTeam, members func(model.DraftTeam) []model.PlayerStat, teamStats []model.TeamStat) {
	totals := make(map[string]model.TeamStat, len(teamStats))
	for _, ts := range teamStats {
		totals[ts.Name] = ts
	}

	for _, t := range teams {
		fmt.Fprintf(w, "\n%s\n", t.Name)
		table := newTable(w)
		table.Header("PLAYER", "SCORE", "AVG RANK", "GAMES")
		for _, s := range members(t) {
			avg := "—"
			if s.GameCount > 0 {
				avg = fmt.Sprintf("%.2f", s.AvgRank())
			}
			table.Append(s.Name, signed(s.DisplayScore), avg, strconv.Itoa(s.GameCount))
		}
		table.Append(t.Name+" 合計", signed(totals[t.Name].TotalScore), "", "")
		table.Render()
	}
}

// PrintPlayerRanking writes the league-roster ranking with rank-position
// counts.
func PrintPlayerRanking(w io.Writer, ranking []model.PlayerStat) {
	table := newTable(w)
	table.Header("RANK", "PLAYER", "TEAM", "TOTAL", "1位", "2位", "3位", "4位")

	for i, s := range ranking {
		team := s.Team
		if team == "" {
			team = "—"
		}
		table.Append(
			strconv.Itoa(i+1),
			s.Name,
			team,
			signed(s.TotalScore),
			strconv.Itoa(s.RankCounts[1]),
			strconv.Itoa(s.RankCounts[2]),
			strconv.Itoa(s.RankCounts[3]),
			strconv.Itoa(s.RankCounts[4]),
		)
	}
	table.Render()
}

// PrintSeries writes the cumulative score table, one row per series point.
func PrintSeries(w io.Writer, teams []model.DraftTeam, points []model.SeriesPoint) {
	headers := make([]any, 0, len(teams)+1)
	headers = append(headers, "試合")
	for _, t := range teams {
		headers = append(headers, t.Name)
	}

	table := newTable(w)
	table.Header(headers...)
	for _, p := range points {
		row := make([]any, 0, len(teams)+1)
		row = append(row, p.Label)
		for _, t := range teams {
			row = append(row, fmt.Sprintf("%.1f", p.Cumulative[t.Name]))
		}
		table.Append(row...)
	}
	table.Render()
}

// PrintScrapes lists stored fetches, newest first.
func PrintScrapes(w io.Writer, runs []model.ScrapeRun) {
	fmt.Fprintf(w, "%-20s  %6s  %s\n", "FETCHED", "ROWS", "URL")
	for _, r := range runs {
		fmt.Fprintf(w, "%-20s  %6d  %s\n", r.FetchedAt, r.RowCount, r.SourceURL)
	}
}
