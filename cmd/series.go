package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hsato/go-mleague-draft/internal/report"
	"github.com/hsato/go-mleague-draft/internal/series"
)

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Show the cumulative team score per game day",
	Args:  cobra.NoArgs,
	RunE:  runSeries,
}

func runSeries(cmd *cobra.Command, args []string) error {
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

	points := series.Build(obs, cfg.DraftTeams, cfg.SpecialRules, cfg.Membership)
	report.PrintSeries(os.Stdout, cfg.DraftTeams, points)
	return nil
}
