package scrape

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hsato/go-mleague-draft/internal/model"
)

var nonNumeric = regexp.MustCompile(`[^-0-9.]`)

// Parse extracts observations from a results page.
//
// The page interleaves date blocks (p-gamesResult__date) with game columns
// (p-gamesResult__column); a column belongs to the nearest preceding date.
// Date text is "M/D(曜)"; the season spans the new year, so months up to May
// belong to seasonStartYear+1. Each column carries a round label
// (p-gamesResult__number) and a rank-ordered entrant list; rows whose point
// text does not survive numeric cleanup are dropped silently.
func Parse(r io.Reader, seasonStartYear int) ([]model.Observation, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var obs []model.Observation
	currentDate := "日付不明"

	doc.Find(".p-gamesResult__date, .p-gamesResult__column").Each(func(_ int, sel *goquery.Selection) {
		if sel.HasClass("p-gamesResult__date") {
			currentDate = parseDate(sel.Text(), seasonStartYear)
			return
		}

		number := strings.TrimSpace(sel.Find(".p-gamesResult__number").First().Text())
		if number == "" {
			number = "回戦不明"
		}
		gameID := currentDate + " " + number

		list := sel.Find("ol.p-gamesResult__rank-list").First()
		if list.Length() == 0 {
			return
		}

		list.Find("li").Each(func(i int, item *goquery.Selection) {
			name := strings.TrimSpace(item.Find(".p-gamesResult__name").First().Text())
			point := strings.TrimSpace(item.Find(".p-gamesResult__point").First().Text())
			if name == "" || point == "" {
				return
			}
			score, ok := cleanScore(point)
			if !ok {
				return
			}
			obs = append(obs, model.Observation{
				GameID: gameID,
				Player: name,
				Score:  score,
				Rank:   i + 1,
			})
		})
	})
	return obs, nil
}

// parseDate turns "M/D(曜)" into "YYYY/MM/DD". Months January–May fall on
// the calendar year after the season start. Unparseable text is passed
// through as-is, matching the source site's occasional placeholder blocks.
func parseDate(raw string, seasonStartYear int) string {
	text := strings.TrimSpace(raw)
	if i := strings.IndexRune(text, '('); i >= 0 {
		text = text[:i]
	}
	parts := strings.SplitN(text, "/", 2)
	if len(parts) != 2 {
		return text
	}
	month, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	day, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return text
	}
	year := seasonStartYear
	if month <= 5 {
		year++
	}
	return fmt.Sprintf("%d/%02d/%02d", year, month, day)
}

// cleanScore normalizes a point cell: the site renders minus as '▲', and
// values may carry unit suffixes. Everything but digits, '-' and '.' is
// stripped before parsing.
func cleanScore(raw string) (float64, bool) {
	s := strings.ReplaceAll(raw, "▲", "-")
	s = nonNumeric.ReplaceAllString(s, "")
	if s == "" || s == "-" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
