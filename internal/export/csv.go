// Package export writes the deduplicated observation table as a local CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/hsato/go-mleague-draft/internal/model"
)

var header = []string{"試合", "選手名", "スコア", "順位"}

// WriteCSV writes observations sorted by game id to path, with a UTF-8 BOM
// so spreadsheet applications on Windows pick up the encoding.
func WriteCSV(path string, obs []model.Observation) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := Write(f, obs); err != nil {
		return err
	}
	return f.Close()
}

// Write emits the BOM, header and rows to w.
func Write(w io.Writer, obs []model.Observation) error {
	if _, err := w.Write([]byte("\uFEFF")); err != nil {
		return err
	}

	sorted := make([]model.Observation, len(obs))
	copy(sorted, obs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].GameID < sorted[j].GameID
	})

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, o := range sorted {
		row := []string{
			o.GameID,
			o.Player,
			strconv.FormatFloat(o.Score, 'f', -1, 64),
			strconv.Itoa(o.Rank),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
