package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hsato/go-mleague-draft/internal/dedupe"
	"github.com/hsato/go-mleague-draft/internal/model"
	"github.com/hsato/go-mleague-draft/internal/scrape"
	"github.com/hsato/go-mleague-draft/internal/storage"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Scrape configured result pages and store game results",
	Long: `Fetches every configured results URL, extracts game rows, drops
re-scraped duplicates and replaces the stored result set. A URL that fails
to load is logged and skipped; the remaining URLs are still processed.`,
	Args: cobra.NoArgs,
	RunE: runFetchCmd,
}

func runFetchCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	return doFetch(cmd.Context(), db, cfg.URLs, cfg.SeasonStartYear)
}

// doFetch scrapes every URL, dedupes the combined rows and replaces the
// stored observations. Shared with the run pipeline.
func doFetch(ctx context.Context, db *storage.DB, urls []string, seasonStartYear int) error {
	var all []model.Observation
	fetched := 0
	for _, url := range urls {
		log.Info().Str("url", url).Msg("fetching results page")

		resp, err := scrape.Fetch(ctx, url)
		if err != nil {
			log.Warn().Str("url", url).Err(err).Msg("fetch failed, skipping")
			continue
		}
		obs, err := scrape.Parse(resp.Body, seasonStartYear)
		resp.Body.Close()
		if err != nil {
			log.Warn().Str("url", url).Err(err).Msg("parse failed, skipping")
			continue
		}

		if err := db.InsertScrape(url, len(obs)); err != nil {
			return fmt.Errorf("record scrape: %w", err)
		}
		log.Info().Str("url", url).Int("rows", len(obs)).Msg("scraped")
		all = append(all, obs...)
		fetched++
	}
	if fetched == 0 {
		return fmt.Errorf("no results page could be scraped (%d URL(s) tried)", len(urls))
	}

	deduped := dedupe.Dedupe(all)
	if err := db.ReplaceObservations(deduped); err != nil {
		return fmt.Errorf("store observations: %w", err)
	}
	games, err := db.CountGames()
	if err != nil {
		return fmt.Errorf("count games: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Stored %d rows (%d games) from %d/%d page(s); %d duplicate row(s) dropped\n",
		len(deduped), games, fetched, len(urls), len(all)-len(deduped))
	return nil
}
