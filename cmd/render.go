package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hsato/go-mleague-draft/internal/aggregate"
	"github.com/hsato/go-mleague-draft/internal/config"
	"github.com/hsato/go-mleague-draft/internal/model"
	"github.com/hsato/go-mleague-draft/internal/series"
	"github.com/hsato/go-mleague-draft/internal/webgen"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the static HTML dashboard",
	Args:  cobra.NoArgs,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderOut, "out", "", "output file path (default: config output_html)")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	obs, err := db.ListObservations()
	if err != nil {
		return fmt.Errorf("load observations: %w", err)
	}

	out := renderOut
	if out == "" {
		out = cfg.OutputHTML
	}
	if err := renderDashboard(cfg, obs, out); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Wrote %s\n", out)
	return nil
}

// renderDashboard computes standings and writes the dashboard to path.
// Shared with the run pipeline.
func renderDashboard(cfg *config.Config, obs []model.Observation, path string) error {
	playerStats, teamStats := aggregate.Aggregate(obs, cfg.DraftTeams, cfg.SpecialRules)

	return webgen.Generate(path, webgen.Input{
		Teams:       cfg.DraftTeams,
		Colors:      cfg.TeamColors,
		TeamRanking: aggregate.TeamRanking(teamStats),
		PlayerStats: playerStats,
		Series:      series.Build(obs, cfg.DraftTeams, cfg.SpecialRules, cfg.Membership),
		Now:         time.Now(),
	})
}
