package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hsato/go-mleague-draft/internal/aggregate"
	"github.com/hsato/go-mleague-draft/internal/model"
	"github.com/hsato/go-mleague-draft/internal/report"
)

var standingsBreakdown bool

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the draft-team ranking",
	Args:  cobra.NoArgs,
	RunE:  runStandings,
}

func init() {
	standingsCmd.Flags().BoolVar(&standingsBreakdown, "breakdown", false, "also show per-team member scores")
}

func runStandings(cmd *cobra.Command, args []string) error {
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
	if len(obs) == 0 {
		fmt.Fprintln(os.Stdout, "No game results stored yet. Run 'mldraft fetch' first.")
		return nil
	}

	playerStats, teamStats := aggregate.Aggregate(obs, cfg.DraftTeams, cfg.SpecialRules)
	ranking := aggregate.TeamRanking(teamStats)

	report.PrintTeamRanking(os.Stdout, ranking)
	if standingsBreakdown {
		members := func(t model.DraftTeam) []model.PlayerStat {
			return aggregate.TeamMembers(playerStats, t)
		}
		report.PrintTeamBreakdown(os.Stdout, cfg.DraftTeams, members, teamStats)
	}
	return nil
}
