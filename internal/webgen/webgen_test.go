package webgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsato/go-mleague-draft/internal/model"
)

func testInput() Input {
	return Input{
		Teams: []model.DraftTeam{
			{Name: "チームX", Members: []string{"A", "B"}},
			{Name: "チームY", Members: []string{"C", "D"}},
		},
		Colors: map[string]model.RGB{
			"チームX": {Red: 1, Green: 0, Blue: 0},
		},
		TeamRanking: []model.TeamStat{
			{Name: "チームY", TotalScore: 95.0, Rank: 1},
			{Name: "チームX", TotalScore: 5.0, Rank: 2},
		},
		PlayerStats: []model.PlayerStat{
			{Name: "A", Team: "チームX", TotalScore: 30.0, DisplayScore: 30.0, GameCount: 1, RankSum: 1},
			{Name: "C", Team: "チームY", TotalScore: -5.0, DisplayScore: 45.0, GameCount: 1, RankSum: 3},
			{Name: "外部", TotalScore: 10.0, DisplayScore: 10.0, GameCount: 1, RankSum: 2},
		},
		Series: []model.SeriesPoint{
			{Label: model.PreSeasonLabel, Cumulative: map[string]float64{"チームX": 0, "チームY": 100}},
			{Label: "2024/09/16", Cumulative: map[string]float64{"チームX": 5, "チームY": 95}},
		},
		Now: time.Date(2024, 9, 17, 12, 30, 0, 0, time.UTC),
	}
}

func TestBuildPageTeamCards(t *testing.T) {
	p, err := buildPage(testInput())
	require.NoError(t, err)

	require.Len(t, p.TeamCards, 2)
	assert.Equal(t, "チームY", p.TeamCards[0].Name)
	assert.Equal(t, 1, p.TeamCards[0].Rank)
	assert.Equal(t, "+95.0", p.TeamCards[0].Score)
	assert.Equal(t, "positive", p.TeamCards[0].ScoreClass)
	assert.Equal(t, "C / D", p.TeamCards[0].Members)

	// Configured color for X, white fallback for Y.
	assert.Contains(t, string(p.TeamCards[1].BorderColor), "rgb(255,0,0)")
	assert.Contains(t, string(p.TeamCards[0].BorderColor), "rgb(255,255,255)")
}

func TestBuildPagePlayerRows(t *testing.T) {
	p, err := buildPage(testInput())
	require.NoError(t, err)

	// Unrostered players are excluded, sorted by display score.
	require.Len(t, p.PlayerRows, 2)
	assert.Equal(t, "C", p.PlayerRows[0].Name)
	assert.Equal(t, "+45.0", p.PlayerRows[0].Score)
	assert.Equal(t, 1, p.PlayerRows[0].Rank)
	assert.Equal(t, "3.00", p.PlayerRows[0].AvgRank)
	assert.Equal(t, "A", p.PlayerRows[1].Name)
}

func TestBuildPageChartData(t *testing.T) {
	p, err := buildPage(testInput())
	require.NoError(t, err)

	assert.Equal(t, `["開幕前","2024/09/16"]`, string(p.ChartLabels))
	assert.Contains(t, string(p.ChartDatasets), `"label":"チームX"`)
	assert.Contains(t, string(p.ChartDatasets), `"data":[100,95]`)
	assert.Contains(t, string(p.ChartDatasets), `"borderColor":"rgba(255, 0, 0, 1)"`)
}

func TestBuildPagePlayerOptions(t *testing.T) {
	p, err := buildPage(testInput())
	require.NoError(t, err)

	// The picker lists everyone, including unrostered players, by raw score.
	js := string(p.PlayerOptions)
	assert.Contains(t, js, `{"name":"A","score":30}`)
	assert.Contains(t, js, `{"name":"外部","score":10}`)
	assert.Less(t, strings.Index(js, `"A"`), strings.Index(js, `"外部"`))
	assert.Less(t, strings.Index(js, `"外部"`), strings.Index(js, `"C"`))
}

func TestGenerateWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	err := Generate(path, testInput())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)

	assert.Contains(t, html, "M-League Draft Dashboard")
	assert.Contains(t, html, "2024/09/17 12:30")
	assert.Contains(t, html, "チームY")
	assert.Contains(t, html, "const labels = [")
	assert.Contains(t, html, "historyChart")
}
