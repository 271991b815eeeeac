package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hsato/go-mleague-draft/internal/report"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded scrape runs",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := db.ListScrapes()
	if err != nil {
		return fmt.Errorf("list scrapes: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(os.Stdout, "No scrapes recorded yet. Run 'mldraft fetch' to add one.")
		return nil
	}

	report.PrintScrapes(os.Stdout, runs)

	games, err := db.CountGames()
	if err != nil {
		return fmt.Errorf("count games: %w", err)
	}
	fmt.Fprintf(os.Stdout, "\n%d game(s) currently stored\n", games)
	return nil
}
