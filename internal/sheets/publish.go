package sheets

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hsato/go-mleague-draft/internal/model"
)

// Worksheet titles, matching the original spreadsheet layout.
const (
	SheetGames   = "試合結果"
	SheetDetails = "チーム別スコア内訳"
	SheetChart   = "スコア推移グラフ用データ"
	SheetRanking = "個人ランキング"
)

// Standings is everything the publisher lays out. All values are
// pre-computed by the aggregation core; the publisher never re-derives
// scores or bonuses.
type Standings struct {
	Teams       []model.DraftTeam
	Colors      map[string]model.RGB
	Games       []model.GameResult // newest first, entrants rank-sorted
	TeamRanking []model.TeamStat   // rank assigned
	TeamStats   []model.TeamStat   // configuration order
	Members     map[string][]model.PlayerStat
	Series      []model.SeriesPoint
	Ranking     []model.PlayerStat // roster ranking, sorted
	Now         time.Time
}

// Publish writes all four worksheets and fits their column widths.
func (c *Client) Publish(ctx context.Context, st Standings) error {
	rows, colors := gamesLayout(st)
	if err := c.writeSheet(ctx, SheetGames, rows, colors); err != nil {
		return err
	}

	rows, colors = breakdownLayout(st)
	if err := c.writeSheet(ctx, SheetDetails, rows, colors); err != nil {
		return err
	}

	rows, colors = chartLayout(st)
	if err := c.writeSheet(ctx, SheetChart, rows, colors); err != nil {
		return err
	}

	rows, colors = rankingLayout(st)
	if err := c.writeSheet(ctx, SheetRanking, rows, colors); err != nil {
		return err
	}

	return c.autoResize(ctx, map[string]int64{
		SheetGames:   5,
		SheetDetails: 5,
		SheetChart:   int64(len(st.Teams)) + 1,
		SheetRanking: 7,
	})
}

func (st Standings) teamColor(team string) (model.RGB, bool) {
	c, ok := st.Colors[team]
	return c, ok
}

// playerTeam is the first configured team rostering the player.
func (st Standings) playerTeam(player string) (string, bool) {
	for _, t := range st.Teams {
		if t.MemberOf(player) {
			return t.Name, true
		}
	}
	return "", false
}

func signedScore(v float64) string {
	return fmt.Sprintf("(%+.1f)", v)
}

// gamesLayout builds the 試合結果 sheet: a legend row, a header, and one
// row per game with entrants in rank order. Legend cells and rostered
// entrant cells get their team's color.
func gamesLayout(st Standings) ([][]interface{}, []cellColor) {
	legend := []interface{}{"凡例:"}
	var colors []cellColor
	for i, t := range st.Teams {
		legend = append(legend, t.Name)
		if c, ok := st.teamColor(t.Name); ok {
			colors = append(colors, cellColor{row: 1, col: i + 2, red: c.Red, green: c.Green, blue: c.Blue})
		}
	}

	rows := [][]interface{}{
		legend,
		{"試合", "1位", "2位", "3位", "4位"},
	}

	for gi, g := range st.Games {
		row := []interface{}{g.GameID}
		rowIdx := gi + 3
		for _, e := range g.Entrants {
			row = append(row, fmt.Sprintf("%s %s", e.Player, signedScore(e.Score)))
			if team, ok := st.playerTeam(e.Player); ok {
				if c, ok := st.teamColor(team); ok {
					colors = append(colors, cellColor{
						row: rowIdx, col: e.Rank + 1,
						red: c.Red, green: c.Green, blue: c.Blue,
					})
				}
			}
		}
		for len(row) < 5 {
			row = append(row, "")
		}
		rows = append(rows, row[:5])
	}
	return rows, colors
}

// breakdownLayout builds the チーム別スコア内訳 sheet: the team ranking
// block followed by per-team member details and a colored total row.
func breakdownLayout(st Standings) ([][]interface{}, []cellColor) {
	rows := [][]interface{}{
		{fmt.Sprintf("最終更新日時: %s", st.Now.Format("2006/01/02 15:04:05"))},
		{},
		{"チーム総合ランキング"},
		{"順位", "チーム名", "合計スコア"},
	}
	var colors []cellColor

	for _, ts := range st.TeamRanking {
		rows = append(rows, []interface{}{fmt.Sprintf("%d位", ts.Rank), ts.Name, round1(ts.TotalScore)})
		if c, ok := st.teamColor(ts.Name); ok {
			colors = append(colors, cellColor{row: len(rows), col: 2, red: c.Red, green: c.Green, blue: c.Blue})
		}
	}
	rows = append(rows, []interface{}{})

	rows = append(rows,
		[]interface{}{"選手別 詳細成績"},
		[]interface{}{"所属チーム", "選手名", "個人合計スコア", "平均順位", "出場回数"},
	)

	totals := make(map[string]float64, len(st.TeamStats))
	for _, ts := range st.TeamStats {
		totals[ts.Name] = ts.TotalScore
	}

	for _, t := range st.Teams {
		for _, s := range st.Members[t.Name] {
			avg := 0.0
			if s.GameCount > 0 {
				avg = round2(s.AvgRank())
			}
			rows = append(rows, []interface{}{t.Name, s.Name, round1(s.DisplayScore), avg, s.GameCount})
		}
		rows = append(rows, []interface{}{fmt.Sprintf("%s 合計", t.Name), "", round1(totals[t.Name]), "", ""})
		if c, ok := st.teamColor(t.Name); ok {
			colors = append(colors, cellColor{row: len(rows), col: 1, colSpan: 5, red: c.Red, green: c.Green, blue: c.Blue})
		}
		rows = append(rows, []interface{}{})
	}
	return rows, colors
}

// chartLayout builds the スコア推移グラフ用データ sheet consumed by the
// spreadsheet's own chart: header plus one row per series point.
func chartLayout(st Standings) ([][]interface{}, []cellColor) {
	header := []interface{}{"試合"}
	for _, t := range st.Teams {
		header = append(header, t.Name)
	}
	rows := [][]interface{}{header}

	for _, p := range st.Series {
		row := []interface{}{p.Label}
		for _, t := range st.Teams {
			row = append(row, p.Cumulative[t.Name])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// rankingLayout builds the 個人ランキング sheet; each rostered player's row
// is colored with their draft team's color.
func rankingLayout(st Standings) ([][]interface{}, []cellColor) {
	rows := [][]interface{}{
		{"順位", "選手名", "合計スコア", "1位", "2位", "3位", "4位"},
	}
	var colors []cellColor

	for i, s := range st.Ranking {
		rows = append(rows, []interface{}{
			fmt.Sprintf("%d位", i+1),
			s.Name,
			round1(s.TotalScore),
			s.RankCounts[1],
			s.RankCounts[2],
			s.RankCounts[3],
			s.RankCounts[4],
		})
		if team, ok := st.playerTeam(s.Name); ok {
			if c, ok := st.teamColor(team); ok {
				colors = append(colors, cellColor{row: len(rows), col: 1, colSpan: 7, red: c.Red, green: c.Green, blue: c.Blue})
			}
		}
	}
	return rows, colors
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
