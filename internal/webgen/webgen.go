// Package webgen renders the static HTML dashboard: team ranking cards, the
// cumulative score chart, a sample-team picker and the player stats table.
// All numbers arrive pre-computed from the aggregation core.
package webgen

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"math"
	"os"
	"sort"
	"time"

	"github.com/hsato/go-mleague-draft/internal/model"
)

//go:embed dashboard.html.tmpl
var dashboardTmpl string

var tmpl = template.Must(template.New("dashboard").Parse(dashboardTmpl))

// Input is the data fed to the dashboard template.
type Input struct {
	Teams       []model.DraftTeam
	Colors      map[string]model.RGB
	TeamRanking []model.TeamStat   // rank assigned, sorted
	PlayerStats []model.PlayerStat // all observed players
	Series      []model.SeriesPoint
	Now         time.Time
}

type teamCard struct {
	Rank        int
	Name        string
	Score       string
	ScoreClass  string
	BorderColor template.CSS
	Members     string
}

type playerRow struct {
	Rank       int
	Name       string
	Team       string
	Score      string
	ScoreClass string
	Games      int
	AvgRank    string
}

type page struct {
	GeneratedAt   string
	TeamCards     []teamCard
	PlayerRows    []playerRow
	ChartLabels   template.JS
	ChartDatasets template.JS
	PlayerOptions template.JS
}

// Generate writes the dashboard to path.
func Generate(path string, in Input) error {
	p, err := buildPage(in)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, p); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	return f.Close()
}

func buildPage(in Input) (*page, error) {
	p := &page{GeneratedAt: in.Now.Format("2006/01/02 15:04")}

	memberList := func(t model.DraftTeam) string {
		out := ""
		for i, m := range t.Members {
			if i > 0 {
				out += " / "
			}
			out += m
		}
		return out
	}
	teamsByName := make(map[string]model.DraftTeam, len(in.Teams))
	for _, t := range in.Teams {
		teamsByName[t.Name] = t
	}

	for _, ts := range in.TeamRanking {
		r, g, b := colorChannels(in.Colors, ts.Name)
		p.TeamCards = append(p.TeamCards, teamCard{
			Rank:        ts.Rank,
			Name:        ts.Name,
			Score:       fmt.Sprintf("%+.1f", ts.TotalScore),
			ScoreClass:  scoreClass(ts.TotalScore),
			BorderColor: template.CSS(fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)),
			Members:     memberList(teamsByName[ts.Name]),
		})
	}

	// Player table: rostered players only, best score first.
	var rostered []model.PlayerStat
	for _, s := range in.PlayerStats {
		if s.Team != "" {
			rostered = append(rostered, s)
		}
	}
	sort.SliceStable(rostered, func(i, j int) bool {
		return rostered[i].DisplayScore > rostered[j].DisplayScore
	})
	for i, s := range rostered {
		p.PlayerRows = append(p.PlayerRows, playerRow{
			Rank:       i + 1,
			Name:       s.Name,
			Team:       s.Team,
			Score:      fmt.Sprintf("%+.1f", s.DisplayScore),
			ScoreClass: scoreClass(s.DisplayScore),
			Games:      s.GameCount,
			AvgRank:    fmt.Sprintf("%.2f", s.AvgRank()),
		})
	}

	labels := make([]string, len(in.Series))
	for i, pt := range in.Series {
		labels[i] = pt.Label
	}
	labelsJSON, err := json.Marshal(labels)
	if err != nil {
		return nil, fmt.Errorf("marshal chart labels: %w", err)
	}
	p.ChartLabels = template.JS(labelsJSON)

	type dataset struct {
		Label           string    `json:"label"`
		Data            []float64 `json:"data"`
		BorderColor     string    `json:"borderColor"`
		BackgroundColor string    `json:"backgroundColor"`
		BorderWidth     int       `json:"borderWidth"`
		Tension         float64   `json:"tension"`
		PointRadius     int       `json:"pointRadius"`
		PointHoverRad   int       `json:"pointHoverRadius"`
	}
	var datasets []dataset
	for _, t := range in.Teams {
		r, g, b := colorChannels(in.Colors, t.Name)
		data := make([]float64, len(in.Series))
		for i, pt := range in.Series {
			data[i] = pt.Cumulative[t.Name]
		}
		datasets = append(datasets, dataset{
			Label:           t.Name,
			Data:            data,
			BorderColor:     fmt.Sprintf("rgba(%d, %d, %d, 1)", r, g, b),
			BackgroundColor: fmt.Sprintf("rgba(%d, %d, %d, 1)", r, g, b),
			BorderWidth:     2,
			Tension:         0.1,
			PointHoverRad:   5,
		})
	}
	datasetsJSON, err := json.Marshal(datasets)
	if err != nil {
		return nil, fmt.Errorf("marshal chart datasets: %w", err)
	}
	p.ChartDatasets = template.JS(datasetsJSON)

	// Sample-team picker gets every observed player, best score first.
	type option struct {
		Name  string  `json:"name"`
		Score float64 `json:"score"`
	}
	options := make([]option, 0, len(in.PlayerStats))
	for _, s := range in.PlayerStats {
		options = append(options, option{Name: s.Name, Score: round1(s.TotalScore)})
	}
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Score > options[j].Score
	})
	optionsJSON, err := json.Marshal(options)
	if err != nil {
		return nil, fmt.Errorf("marshal player options: %w", err)
	}
	p.PlayerOptions = template.JS(optionsJSON)

	return p, nil
}

func scoreClass(v float64) string {
	if v >= 0 {
		return "positive"
	}
	return "negative"
}

func colorChannels(colors map[string]model.RGB, team string) (int, int, int) {
	c, ok := colors[team]
	if !ok {
		return 255, 255, 255
	}
	return int(c.Red * 255), int(c.Green * 255), int(c.Blue * 255)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
