// Package sheets pushes the computed standings to a Google Sheets
// spreadsheet: game results, team breakdown, chart data and player ranking,
// each on its own worksheet with team-color formatting.
package sheets

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client wraps the Sheets API for one spreadsheet.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetIDs      map[string]int64
}

// NewClient authenticates with service-account JSON credentials and targets
// the given spreadsheet id. Unlike the name-based lookup some client
// libraries offer, the Sheets API addresses spreadsheets by id only.
func NewClient(ctx context.Context, spreadsheetID string, credentialsJSON []byte) (*Client, error) {
	cfg, err := google.JWTConfigFromJSON(credentialsJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}
	svc, err := sheets.NewService(ctx, option.WithTokenSource(cfg.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetIDs:      make(map[string]int64),
	}, nil
}

// ensureSheet returns the numeric sheet id for a worksheet title, creating
// the worksheet when it does not exist yet.
func (c *Client) ensureSheet(ctx context.Context, title string) (int64, error) {
	if id, ok := c.sheetIDs[title]; ok {
		return id, nil
	}

	ss, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("get spreadsheet: %w", err)
	}
	for _, s := range ss.Sheets {
		c.sheetIDs[s.Properties.Title] = s.Properties.SheetId
	}
	if id, ok := c.sheetIDs[title]; ok {
		return id, nil
	}

	resp, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: title},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("add sheet %s: %w", title, err)
	}
	id := resp.Replies[0].AddSheet.Properties.SheetId
	c.sheetIDs[title] = id
	return id, nil
}

// writeSheet clears a worksheet, writes rows starting at A1 with
// USER_ENTERED input, resets formatting and applies the given cell colors.
func (c *Client) writeSheet(ctx context.Context, title string, rows [][]interface{}, colors []cellColor) error {
	sheetID, err := c.ensureSheet(ctx, title)
	if err != nil {
		return err
	}

	if _, err := c.svc.Spreadsheets.Values.Clear(
		c.spreadsheetID, quoteTitle(title), &sheets.ClearValuesRequest{},
	).Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear %s: %w", title, err)
	}

	if _, err := c.svc.Spreadsheets.Values.Update(
		c.spreadsheetID, quoteTitle(title)+"!A1", &sheets.ValueRange{Values: rows},
	).ValueInputOption("USER_ENTERED").Context(ctx).Do(); err != nil {
		return fmt.Errorf("update %s: %w", title, err)
	}

	reqs := []*sheets.Request{resetFormatRequest(sheetID)}
	for _, cc := range colors {
		reqs = append(reqs, cc.request(sheetID))
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: reqs,
	}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("format %s: %w", title, err)
	}
	return nil
}

// autoResize fits column widths on the given worksheets.
func (c *Client) autoResize(ctx context.Context, widths map[string]int64) error {
	var reqs []*sheets.Request
	for title, cols := range widths {
		id, err := c.ensureSheet(ctx, title)
		if err != nil {
			return err
		}
		reqs = append(reqs, &sheets.Request{
			AutoResizeDimensions: &sheets.AutoResizeDimensionsRequest{
				Dimensions: &sheets.DimensionRange{
					SheetId:    id,
					Dimension:  "COLUMNS",
					StartIndex: 0,
					EndIndex:   cols,
				},
			},
		})
	}
	_, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: reqs,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("auto-resize columns: %w", err)
	}
	return nil
}

func quoteTitle(title string) string {
	return "'" + title + "'"
}

// resetFormatRequest clears background and bold over the whole sheet before
// the run's colors are applied, so stale formatting from shrunk data sets
// does not survive.
func resetFormatRequest(sheetID int64) *sheets.Request {
	return &sheets.Request{
		RepeatCell: &sheets.RepeatCellRequest{
			Range: &sheets.GridRange{SheetId: sheetID},
			Cell: &sheets.CellData{
				UserEnteredFormat: &sheets.CellFormat{
					BackgroundColor: &sheets.Color{Red: 1, Green: 1, Blue: 1},
					TextFormat:      &sheets.TextFormat{Bold: false},
				},
			},
			Fields: "userEnteredFormat(backgroundColor,textFormat)",
		},
	}
}

// cellColor is one background-color annotation over a 1-based cell range.
type cellColor struct {
	row, col         int // 1-based start cell
	rowSpan, colSpan int // 0 means 1
	red, green, blue float64
}

func (cc cellColor) request(sheetID int64) *sheets.Request {
	rowSpan, colSpan := cc.rowSpan, cc.colSpan
	if rowSpan == 0 {
		rowSpan = 1
	}
	if colSpan == 0 {
		colSpan = 1
	}
	return &sheets.Request{
		RepeatCell: &sheets.RepeatCellRequest{
			Range: &sheets.GridRange{
				SheetId:          sheetID,
				StartRowIndex:    int64(cc.row - 1),
				EndRowIndex:      int64(cc.row - 1 + rowSpan),
				StartColumnIndex: int64(cc.col - 1),
				EndColumnIndex:   int64(cc.col - 1 + colSpan),
			},
			Cell: &sheets.CellData{
				UserEnteredFormat: &sheets.CellFormat{
					BackgroundColor: &sheets.Color{
						Red:   cc.red,
						Green: cc.green,
						Blue:  cc.blue,
					},
				},
			},
			Fields: "userEnteredFormat.backgroundColor",
		},
	}
}
