package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ogulcanaydogan/smartstock/pkg/model"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a journal that lives only as long as the process.
const MemoryPath = ":memory:"

// SQLite implements the Journal interface using an SQLite database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens or creates an SQLite database at the given path.
// MemoryPath (or an empty path) opens a private in-memory database.
func NewSQLite(dbPath string) (*SQLite, error) {
	if dbPath == "" || dbPath == MemoryPath {
		return openMemory()
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// WAL lets the API read history while the generator writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	return finishOpen(db)
}

func openMemory() (*SQLite, error) {
	db, err := sql.Open("sqlite", MemoryPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	return finishOpen(db)
}

func finishOpen(db *sql.DB) (*SQLite, error) {
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) RecordAlert(ctx context.Context, event *model.AlertEvent) error {
	if event.ID == "" {
		event.ID = uuid.Must(uuid.NewV7()).String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO alerts (id, kind, item_name, message, timestamp)
		 VALUES (?, ?, ?, ?, ?)`,
		event.ID, string(event.Kind), event.ItemName, event.Message, event.Timestamp.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

func (s *SQLite) GetAlert(ctx context.Context, id string) (*model.AlertEvent, error) {
	var e model.AlertEvent
	err := s.db.QueryRowContext(ctx,
		`SELECT id, kind, item_name, message, timestamp FROM alerts WHERE id = ?`, id,
	).Scan(&e.ID, &e.Kind, &e.ItemName, &e.Message, &e.Timestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("alert %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return &e, nil
}

func (s *SQLite) QueryAlerts(ctx context.Context, filter model.AlertFilter) ([]model.AlertEvent, error) {
	query := "SELECT id, kind, item_name, message, timestamp FROM alerts"
	where, args := buildWhereClause(filter)
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY timestamp DESC, rowid DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query alerts: %w", err)
	}
	defer rows.Close()

	var events []model.AlertEvent
	for rows.Next() {
		var e model.AlertEvent
		if err := rows.Scan(&e.ID, &e.Kind, &e.ItemName, &e.Message, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan alert row: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *SQLite) AggregateAlerts(ctx context.Context, filter model.AlertFilter) (*model.AlertSummary, error) {
	query := "SELECT COUNT(*) FROM alerts"
	where, args := buildWhereClause(filter)
	if where != "" {
		query += " WHERE " + where
	}

	summary := &model.AlertSummary{}
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&summary.Total); err != nil {
		return nil, fmt.Errorf("aggregate alerts: %w", err)
	}
	if summary.Total == 0 {
		return summary, nil
	}

	first, last, err := s.timeBounds(ctx, where, args)
	if err != nil {
		return nil, err
	}
	summary.First, summary.Last = &first, &last

	byKind, err := s.aggregateByField(ctx, "kind", where, args)
	if err != nil {
		return nil, err
	}
	summary.ByKind = make(map[model.AlertKind]int64, len(byKind))
	for k, n := range byKind {
		summary.ByKind[model.AlertKind(k)] = n
	}

	summary.ByItem, err = s.aggregateByField(ctx, "item_name", where, args)
	if err != nil {
		return nil, err
	}

	return summary, nil
}

// timeBounds reads the oldest and newest timestamps. Scanning MIN/MAX directly
// loses the column's DATETIME affinity, so both rows are selected by order.
func (s *SQLite) timeBounds(ctx context.Context, where string, args []any) (time.Time, time.Time, error) {
	var first, last time.Time
	for _, dir := range []string{"ASC", "DESC"} {
		query := "SELECT timestamp FROM alerts"
		if where != "" {
			query += " WHERE " + where
		}
		query += fmt.Sprintf(" ORDER BY timestamp %s LIMIT 1", dir)

		dst := &first
		if dir == "DESC" {
			dst = &last
		}
		if err := s.db.QueryRowContext(ctx, query, args...).Scan(dst); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("alert time bounds: %w", err)
		}
	}
	return first, last, nil
}

func (s *SQLite) aggregateByField(ctx context.Context, field, where string, args []any) (map[string]int64, error) {
	query := fmt.Sprintf("SELECT %s, COUNT(*) FROM alerts", field)
	if where != "" {
		query += " WHERE " + where
	}
	query += fmt.Sprintf(" GROUP BY %s", field)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("aggregate by %s: %w", field, err)
	}
	defer rows.Close()

	result := make(map[string]int64)
	for rows.Next() {
		var name string
		var count int64
		if err := rows.Scan(&name, &count); err != nil {
			return nil, fmt.Errorf("scan %s aggregate: %w", field, err)
		}
		result[name] = count
	}
	return result, rows.Err()
}

func (s *SQLite) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM alerts"); err != nil {
		return fmt.Errorf("clear alerts: %w", err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// buildWhereClause constructs a SQL WHERE clause from an AlertFilter.
func buildWhereClause(filter model.AlertFilter) (string, []any) {
	var conditions []string
	var args []any

	if filter.Kind != "" {
		conditions = append(conditions, "kind = ?")
		args = append(args, string(filter.Kind))
	}
	if filter.ItemName != "" {
		conditions = append(conditions, "item_name = ?")
		args = append(args, filter.ItemName)
	}
	if !filter.StartTime.IsZero() {
		conditions = append(conditions, "timestamp >= ?")
		args = append(args, filter.StartTime.UTC())
	}
	if !filter.EndTime.IsZero() {
		conditions = append(conditions, "timestamp < ?")
		args = append(args, filter.EndTime.UTC())
	}

	return strings.Join(conditions, " AND "), args
}
