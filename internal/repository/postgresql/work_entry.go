package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/turniapp/turni-backend-go/internal/domain/timesheet"
	"github.com/turniapp/turni-backend-go/internal/pkg/database"
)

type workEntryRepository struct {
	db *database.DB
}

// NewWorkEntryRepository creates a new work entry repository
func NewWorkEntryRepository(db *database.DB) timesheet.Repository {
	return &workEntryRepository{db: db}
}

// GetByDate retrieves the work entry logged for one calendar day
func (r *workEntryRepository) GetByDate(ctx context.Context, date string) (timesheet.WorkEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, entry_date, payload, created_at, updated_at
		FROM work_entries
		WHERE entry_date = $1
	`

	return scanWorkEntry(q.QueryRow(ctx, query, date))
}

// ListByMonth retrieves all work entries in one calendar month, ordered by date
func (r *workEntryRepository) ListByMonth(ctx context.Context, year, month int) ([]timesheet.WorkEntry, error) {
	q := GetQuerier(ctx, r.db)

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	query := `
		SELECT id, entry_date, payload, created_at, updated_at
		FROM work_entries
		WHERE entry_date >= $1 AND entry_date < $2
		ORDER BY entry_date
	`

	rows, err := q.Query(ctx, query, from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to query work entries: %w", err)
	}
	defer rows.Close()

	var entries []timesheet.WorkEntry
	for rows.Next() {
		entry, err := scanWorkEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Upsert inserts or replaces the entry for its date. The date is the natural
// key; a second save on the same day keeps the original row id.
func (r *workEntryRepository) Upsert(ctx context.Context, entry timesheet.WorkEntry) (timesheet.WorkEntry, error) {
	q := GetQuerier(ctx, r.db)

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		return timesheet.WorkEntry{}, fmt.Errorf("failed to marshal work entry: %w", err)
	}

	query := `
		INSERT INTO work_entries (id, entry_date, payload, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (entry_date)
		DO UPDATE SET payload = $3, updated_at = $4
		RETURNING id, entry_date, payload, created_at, updated_at
	`

	return scanWorkEntry(q.QueryRow(ctx, query, entry.ID, entry.Date, payload, time.Now()))
}

// Delete removes the entry for one date
func (r *workEntryRepository) Delete(ctx context.Context, date string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM work_entries WHERE entry_date = $1`, date)
	if err != nil {
		return fmt.Errorf("failed to delete work entry: %w", err)
	}

	if result.RowsAffected() == 0 {
		return timesheet.ErrWorkEntryNotFound
	}

	return nil
}

func scanWorkEntry(row pgx.Row) (timesheet.WorkEntry, error) {
	var (
		id        string
		date      time.Time
		payload   []byte
		createdAt time.Time
		updatedAt time.Time
	)

	if err := row.Scan(&id, &date, &payload, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.WorkEntry{}, timesheet.ErrWorkEntryNotFound
		}
		return timesheet.WorkEntry{}, fmt.Errorf("failed to scan work entry: %w", err)
	}

	var entry timesheet.WorkEntry
	if err := json.Unmarshal(payload, &entry); err != nil {
		return timesheet.WorkEntry{}, fmt.Errorf("failed to unmarshal work entry payload: %w", err)
	}

	// The row columns win over whatever the payload carried.
	entry.ID = id
	entry.Date = date.Format("2006-01-02")
	entry.CreatedAt = createdAt
	entry.UpdatedAt = updatedAt

	return entry, nil
}
