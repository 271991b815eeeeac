package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hsato/go-mleague-draft/internal/aggregate"
	"github.com/hsato/go-mleague-draft/internal/config"
	"github.com/hsato/go-mleague-draft/internal/dedupe"
	"github.com/hsato/go-mleague-draft/internal/model"
	"github.com/hsato/go-mleague-draft/internal/series"
	"github.com/hsato/go-mleague-draft/internal/sheets"
)

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Publish standings to the configured Google Sheets spreadsheet",
	Args:  cobra.NoArgs,
	RunE:  runSheet,
}

func runSheet(cmd *cobra.Command, args []string) error {
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

	if err := publishSheet(cmd.Context(), cfg, obs); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Published 4 worksheets to spreadsheet %s\n", cfg.SpreadsheetID)
	return nil
}

// publishSheet computes the full standings and writes all worksheets.
// Shared with the run pipeline.
func publishSheet(ctx context.Context, cfg *config.Config, obs []model.Observation) error {
	if cfg.SpreadsheetID == "" {
		return fmt.Errorf("no spreadsheet_id configured")
	}
	creds, err := cfg.Credentials()
	if err != nil {
		return err
	}
	client, err := sheets.NewClient(ctx, cfg.SpreadsheetID, creds)
	if err != nil {
		return err
	}
	return client.Publish(ctx, buildStandings(cfg, obs))
}

// buildStandings runs the aggregation core once and collects everything the
// worksheet layouts need.
func buildStandings(cfg *config.Config, obs []model.Observation) sheets.Standings {
	playerStats, teamStats := aggregate.Aggregate(obs, cfg.DraftTeams, cfg.SpecialRules)

	members := make(map[string][]model.PlayerStat, len(cfg.DraftTeams))
	for _, t := range cfg.DraftTeams {
		members[t.Name] = aggregate.TeamMembers(playerStats, t)
	}

	return sheets.Standings{
		Teams:       cfg.DraftTeams,
		Colors:      cfg.TeamColors,
		Games:       dedupe.Games(obs),
		TeamRanking: aggregate.TeamRanking(teamStats),
		TeamStats:   teamStats,
		Members:     members,
		Series:      series.Build(obs, cfg.DraftTeams, cfg.SpecialRules, cfg.Membership),
		Ranking:     aggregate.PlayerRanking(playerStats, cfg.LeaguePlayers),
		Now:         time.Now(),
	}
}
