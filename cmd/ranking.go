package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hsato/go-mleague-draft/internal/aggregate"
	"github.com/hsato/go-mleague-draft/internal/report"
)

var rankingCmd = &cobra.Command{
	Use:   "ranking",
	Short: "Show the individual player ranking",
	Args:  cobra.NoArgs,
	RunE:  runRanking,
}

func runRanking(cmd *cobra.Command, args []string) error {
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

	playerStats, _ := aggregate.Aggregate(obs, cfg.DraftTeams, cfg.SpecialRules)
	ranking := aggregate.PlayerRanking(playerStats, cfg.LeaguePlayers)

	report.PrintPlayerRanking(os.Stdout, ranking)
	return nil
}
