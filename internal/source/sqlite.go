package source

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/solflow/dcadash/internal/common"
	"github.com/solflow/dcadash/internal/model"
)

const ordersSchema = `
CREATE TABLE IF NOT EXISTS orders (
	id          TEXT PRIMARY KEY,
	user        TEXT NOT NULL,
	input_mint  TEXT NOT NULL,
	output_mint TEXT NOT NULL,
	amount      REAL NOT NULL,
	frequency   TEXT NOT NULL,
	created_at  TIMESTAMP NOT NULL,
	execute_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_orders_execute_at ON orders(execute_at);
`

// SQLiteSource serves orders from a local sqlite database. It doubles as the
// sink for the seed command; the dashboard only ever reads from it.
type SQLiteSource struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteSource opens (creating if necessary) the order database at dbPath.
func NewSQLiteSource(dbPath string) (*SQLiteSource, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("%w: database path is required", common.ErrInvalidConfig)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(ordersSchema); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteSource{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

// Fetch returns every stored order in creation order. The request is
// accepted for interface compatibility; filtering happens client-side.
func (s *SQLiteSource) Fetch(ctx context.Context, _ FilterRequest) ([]model.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user, input_mint, output_mint, amount, frequency, created_at, execute_at
		FROM orders
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDataSource, err)
	}
	defer func() { _ = rows.Close() }()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.User, &o.InputMint, &o.OutputMint, &o.Amount, &o.Frequency, &o.CreatedAt, &o.ExecuteAt); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrDataSource, err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDataSource, err)
	}

	return orders, nil
}

// SaveOrders inserts a batch of orders, replacing any with the same ID.
func (s *SQLiteSource) SaveOrders(ctx context.Context, orders []model.Order) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO orders (
			id, user, input_mint, output_mint, amount, frequency, created_at, execute_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, o := range orders {
		if _, err := stmt.ExecContext(ctx,
			o.ID, o.User, o.InputMint, o.OutputMint, o.Amount, o.Frequency, o.CreatedAt, o.ExecuteAt,
		); err != nil {
			return fmt.Errorf("failed to insert order %s: %w", o.ID, err)
		}
	}

	return tx.Commit()
}

// Count returns the number of stored orders.
func (s *SQLiteSource) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrDataSource, err)
	}
	return count, nil
}
