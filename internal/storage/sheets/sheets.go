// Package sheets keeps the booking ledger in the first worksheet of a
// Google spreadsheet.
package sheets

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"seatBooker/internal/config"
	"seatBooker/internal/models"
	"seatBooker/internal/storage"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	valueInput    = "RAW"
	insertRows    = "INSERT_ROWS"
	spreadsheetMT = "application/vnd.google-apps.spreadsheet"
)

type Storage struct {
	key  string
	name string
	opts []option.ClientOption

	mu sync.Mutex
	ws *worksheet
}

type worksheet struct {
	srv   *sheets.Service
	id    string
	title string
}

// New returns a ledger that authenticates with the service account file on
// first use.
func New(cfg config.Sheet) *Storage {
	return Open(cfg.Key, cfg.Name,
		option.WithCredentialsFile(cfg.ServiceAccountFile),
		option.WithScopes(sheets.SpreadsheetsScope, drive.DriveReadonlyScope),
	)
}

// Open makes no API calls. The spreadsheet is located by key, or by name
// through a Drive search when key is empty, the first time it is needed.
func Open(key, name string, opts ...option.ClientOption) *Storage {
	return &Storage{key: key, name: name, opts: opts}
}

// Ping resolves the spreadsheet and makes sure the header row exists.
func (s *Storage) Ping(ctx context.Context) error {
	const op = "storage.sheets.Ping"

	if _, err := s.resolve(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// resolve caches the worksheet only after the header check passes, so a
// failed lookup is retried by the next call.
func (s *Storage) resolve(ctx context.Context) (*worksheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ws != nil {
		return s.ws, nil
	}

	// The token source keeps this context for refreshes.
	srv, err := sheets.NewService(context.WithoutCancel(ctx), s.opts...)
	if err != nil {
		return nil, err
	}

	id := s.key
	if id == "" {
		id, err = findByName(ctx, s.name, s.opts...)
		if err != nil {
			return nil, err
		}
	}

	ss, err := srv.Spreadsheets.Get(id).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}

	if len(ss.Sheets) == 0 || ss.Sheets[0].Properties == nil {
		return nil, fmt.Errorf("spreadsheet %s has no worksheets", id)
	}

	ws := &worksheet{
		srv:   srv,
		id:    id,
		title: ss.Sheets[0].Properties.Title,
	}

	if err = ws.ensureHeader(ctx); err != nil {
		return nil, err
	}

	s.ws = ws

	return ws, nil
}

func findByName(ctx context.Context, name string, opts ...option.ClientOption) (string, error) {
	d, err := drive.NewService(context.WithoutCancel(ctx), opts...)
	if err != nil {
		return "", err
	}

	q := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false",
		strings.ReplaceAll(name, "'", `\'`), spreadsheetMT)

	list, err := d.Files.List().Q(q).Fields("files(id, name)").PageSize(1).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to search spreadsheet %q: %w", name, err)
	}

	if len(list.Files) == 0 {
		return "", fmt.Errorf("%q: %w", name, storage.ErrSpreadsheetNotFound)
	}

	return list.Files[0].Id, nil
}

func (w *worksheet) rng(cells string) string {
	return fmt.Sprintf("'%s'!%s", strings.ReplaceAll(w.title, "'", "''"), cells)
}

func (w *worksheet) ensureHeader(ctx context.Context) error {
	resp, err := w.srv.Spreadsheets.Values.Get(w.id, w.rng("A1:E1")).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}

	if len(resp.Values) > 0 {
		return nil
	}

	return w.appendRow(ctx, storage.Header)
}

func (w *worksheet) appendRow(ctx context.Context, cells []string) error {
	row := make([]interface{}, 0, len(cells))
	for _, c := range cells {
		row = append(row, c)
	}

	_, err := w.srv.Spreadsheets.Values.Append(w.id, w.rng("A:E"), &sheets.ValueRange{
		Values: [][]interface{}{row},
	}).ValueInputOption(valueInput).InsertDataOption(insertRows).Context(ctx).Do()

	return err
}

func (s *Storage) AppendBooking(ctx context.Context, row models.BookingRow, ts time.Time) error {
	const op = "storage.sheets.AppendBooking"

	ws, err := s.resolve(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = ws.appendRow(ctx, storage.Record(storage.NewEntry(row, ts))); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) OccupiedSeats(ctx context.Context) ([]int, error) {
	const op = "storage.sheets.OccupiedSeats"

	ws, err := s.resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := ws.srv.Spreadsheets.Values.Get(ws.id, ws.rng("E2:E")).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cells := make([]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		if len(row) == 0 {
			continue
		}
		cells = append(cells, fmt.Sprint(row[0]))
	}

	return storage.ParseSeatCells(cells), nil
}

func (s *Storage) ClearAll(ctx context.Context) error {
	const op = "storage.sheets.ClearAll"

	ws, err := s.resolve(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = ws.srv.Spreadsheets.Values.Clear(ws.id, ws.rng("A2:ZZZ"), &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) Close() error {
	return nil
}
