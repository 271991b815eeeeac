package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsato/go-mleague-draft/internal/export"
)

var (
	runSkipSheet bool
	runSkipHTML  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: fetch, export, sheet, render",
	Long: `Scrapes every configured results URL, stores the deduplicated game
results, then writes the CSV export, publishes the Google Sheets worksheets
and renders the HTML dashboard in one go. Sheets publishing is skipped when
no spreadsheet_id is configured.`,
	Args: cobra.NoArgs,
	RunE: runPipeline,
}

func init() {
	runCmd.Flags().BoolVar(&runSkipSheet, "skip-sheet", false, "do not publish to Google Sheets")
	runCmd.Flags().BoolVar(&runSkipHTML, "skip-html", false, "do not render the HTML dashboard")
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	log.Info().Int("urls", len(cfg.URLs)).Msg("pipeline start")

	if err := doFetch(cmd.Context(), db, cfg.URLs, cfg.SeasonStartYear); err != nil {
		return err
	}

	obs, err := db.ListObservations()
	if err != nil {
		return fmt.Errorf("load observations: %w", err)
	}

	if err := export.WriteCSV(cfg.OutputCSV, obs); err != nil {
		return err
	}
	log.Info().Str("path", cfg.OutputCSV).Int("rows", len(obs)).Msg("csv written")

	if runSkipSheet || cfg.SpreadsheetID == "" {
		log.Info().Msg("sheets publishing skipped")
	} else {
		if err := publishSheet(cmd.Context(), cfg, obs); err != nil {
			return fmt.Errorf("publish sheets: %w", err)
		}
		log.Info().Str("spreadsheet", cfg.SpreadsheetID).Msg("sheets published")
	}

	if runSkipHTML {
		log.Info().Msg("dashboard rendering skipped")
	} else {
		if err := renderDashboard(cfg, obs, cfg.OutputHTML); err != nil {
			return fmt.Errorf("render dashboard: %w", err)
		}
		log.Info().Str("path", cfg.OutputHTML).Msg("dashboard rendered")
	}

	log.Info().Msg("pipeline done")
	return nil
}
