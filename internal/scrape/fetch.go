// Package scrape fetches the public league results pages and extracts raw
// (game, player, score, rank) observations from them.
package scrape

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

var httpCli = &http.Client{Timeout: 30 * time.Second}

const ua = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Fetch downloads one results page. Non-200 responses are an error; the
// caller decides whether a failed page aborts the run or is skipped.
func Fetch(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", ua)

	resp, err := httpCli.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("status %d for %s", resp.StatusCode, url)
	}
	return resp, nil
}
