package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hsato/go-mleague-draft/internal/export"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write stored game results to a CSV file",
	Long: `Writes every stored game result as UTF-8 CSV with a BOM so the file
opens cleanly in Excel. Columns: 試合, 選手名, スコア, 順位.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file path (default: config output_csv)")
}

func runExport(cmd *cobra.Command, args []string) error {
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

	out := exportOut
	if out == "" {
		out = cfg.OutputCSV
	}
	if err := export.WriteCSV(out, obs); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Wrote %d rows to %s\n", len(obs), out)
	return nil
}
