package repositories

import (
	"context"
	"conversion-service/internal/domain"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// SQLite backed store for the conversion audit trail. Rows are append-only;
// nothing in the system updates or deletes them.
type SqliteHistoryRepository struct {
	DB *sql.DB
}

func NewSqliteHistoryRepository(db *sql.DB) *SqliteHistoryRepository {
	return &SqliteHistoryRepository{DB: db}
}

// Record appends a single conversion record.
func (s *SqliteHistoryRepository) Record(ctx context.Context, rec domain.ConversionRecord) error {
	if s.DB == nil {
		return errors.New("history repository: db is nil")
	}

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("record conversion: id must not be empty")
	}
	if strings.TrimSpace(rec.Operation) == "" {
		return errors.New("record conversion: operation must not be empty")
	}

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	const q = `
	INSERT INTO conversion_history (id, operation, input, output, created_at)
	VALUES (?, ?, ?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, rec.ID, rec.Operation, rec.Input, rec.Output, createdAt); err != nil {
		return fmt.Errorf("record conversion op=%q: %w", rec.Operation, err)
	}

	return nil
}

// ListRecent returns up to limit records, newest first.
func (s *SqliteHistoryRepository) ListRecent(ctx context.Context, limit int) ([]domain.ConversionRecord, error) {
	if s.DB == nil {
		return nil, errors.New("history repository: db is nil")
	}

	if limit <= 0 {
		return []domain.ConversionRecord{}, nil
	}

	const q = `
	SELECT id, operation, input, output, created_at
	FROM conversion_history
	ORDER BY created_at DESC, id
	LIMIT ?;
	`

	rows, err := s.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: query conversion_history table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ConversionRecord, 0, limit)
	for rows.Next() {
		var rec domain.ConversionRecord
		if err := rows.Scan(&rec.ID, &rec.Operation, &rec.Input, &rec.Output, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("list history: scan rows: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list history: row iteration: %w", err)
	}

	return out, nil
}
