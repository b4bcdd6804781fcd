// internals/sheets/client.go
package sheets

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"
)

type Client struct {
	srv           *sheetsv4.Service
	spreadsheetID string
}

// NewClient builds a sheets client from inline service-account JSON when set,
// falling back to a credentials file on disk.
func NewClient(ctx context.Context, serviceAccountJSON, credentialsFile, spreadsheetID string) (*Client, error) {
	var opt option.ClientOption
	if serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		if _, err := os.Stat(credentialsFile); err != nil {
			return nil, fmt.Errorf("service account credentials: %w", err)
		}
		opt = option.WithCredentialsFile(credentialsFile)
	}

	srv, err := sheetsv4.NewService(ctx, opt, option.WithScopes(sheetsv4.SpreadsheetsScope))
	if err != nil {
		return nil, err
	}
	return &Client{srv: srv, spreadsheetID: spreadsheetID}, nil
}

func (c *Client) SpreadsheetID() string { return c.spreadsheetID }

func (c *Client) readAll(ctx context.Context, sheet string) ([][]interface{}, error) {
	resp, err := c.srv.Spreadsheets.Values.Get(c.spreadsheetID, sheet+"!A:Z").
		Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

// clearBelowHeader wipes every data row but keeps row 1 intact.
func (c *Client) clearBelowHeader(ctx context.Context, sheet string) error {
	_, err := c.srv.Spreadsheets.Values.Clear(c.spreadsheetID, sheet+"!A2:Z", &sheetsv4.ClearValuesRequest{}).
		Context(ctx).Do()
	return err
}

func (c *Client) writeRows(ctx context.Context, sheet, startCell string, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}
	vr := &sheetsv4.ValueRange{Values: rows}
	_, err := c.srv.Spreadsheets.Values.Update(c.spreadsheetID, sheet+"!"+startCell, vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	return err
}

func (c *Client) appendRows(ctx context.Context, sheet string, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}
	vr := &sheetsv4.ValueRange{Values: rows}
	_, err := c.srv.Spreadsheets.Values.Append(c.spreadsheetID, sheet+"!A:Z", vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	return err
}

func (c *Client) sheetTitles(ctx context.Context) (map[string]bool, error) {
	ss, err := c.srv.Spreadsheets.Get(c.spreadsheetID).Fields("sheets.properties.title").
		Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	titles := make(map[string]bool, len(ss.Sheets))
	for _, sh := range ss.Sheets {
		if sh.Properties != nil {
			titles[sh.Properties.Title] = true
		}
	}
	return titles, nil
}

func (c *Client) addSheet(ctx context.Context, title string) error {
	req := &sheetsv4.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsv4.Request{{
			AddSheet: &sheetsv4.AddSheetRequest{
				Properties: &sheetsv4.SheetProperties{Title: title},
			},
		}},
	}
	_, err := c.srv.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do()
	return err
}
