package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"seatBooker/internal/config"
	"seatBooker/internal/models"
	"seatBooker/internal/storage"

	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB

	mu    sync.Mutex
	ready bool
}

// InitDB does not connect. The bookings table is created on first use.
func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

// Ping connects and creates the bookings table when missing.
func (s *Storage) Ping(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return nil
	}

	if err := s.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err := s.createSchema(ctx); err != nil {
		return err
	}

	s.ready = true

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// The table mirrors the spreadsheet columns. selected_seats stays text so
// comma-joined legacy values survive an import.
func (s *Storage) createSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS bookings (
			id             BIGSERIAL PRIMARY KEY,
			created_at     TIMESTAMP NOT NULL,
			user_code      TEXT NOT NULL DEFAULT '',
			name           TEXT NOT NULL,
			mobile         TEXT NOT NULL,
			selected_seats TEXT NOT NULL
		)`

	if _, err := s.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create bookings table: %w", err)
	}

	return nil
}

func (s *Storage) AppendBooking(ctx context.Context, row models.BookingRow, ts time.Time) error {
	query := `
		INSERT INTO bookings (created_at, user_code, name, mobile, selected_seats)
		VALUES ($1, $2, $3, $4, $5)`

	if err := s.Ping(ctx); err != nil {
		return err
	}

	e := storage.NewEntry(row, ts)

	_, err := s.DB.ExecContext(ctx, query, e.Timestamp, e.UserCode, e.Name, e.Mobile, e.Seats)
	if err != nil {
		return fmt.Errorf("failed to append booking: %w", err)
	}

	return nil
}

func (s *Storage) OccupiedSeats(ctx context.Context) ([]int, error) {
	query := `
		SELECT selected_seats
		FROM bookings
		ORDER BY id ASC`

	if err := s.Ping(ctx); err != nil {
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get booked seats: %w", err)
	}
	defer rows.Close()

	var cells []string
	for rows.Next() {
		var cell string
		if err = rows.Scan(&cell); err != nil {
			return nil, fmt.Errorf("failed to scan booked seats: %w", err)
		}
		cells = append(cells, cell)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return storage.ParseSeatCells(cells), nil
}

func (s *Storage) ClearAll(ctx context.Context) error {
	if err := s.Ping(ctx); err != nil {
		return err
	}

	if _, err := s.DB.ExecContext(ctx, `TRUNCATE TABLE bookings RESTART IDENTITY`); err != nil {
		return fmt.Errorf("failed to clear bookings: %w", err)
	}

	return nil
}
