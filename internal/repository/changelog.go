package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/domain"
)

func (r *Repository) InsertChangeLog(entry *domain.ChangeLogEntry) error {
	query := `
		INSERT INTO change_logs (month_key, target_date, message, action_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{entry.MonthKey, entry.TargetDate, entry.Message, entry.ActionType}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetChangeLogsForMonth(monthKey string) ([]*domain.ChangeLogEntry, error) {
	query := `
		SELECT id, to_char(target_date, 'YYYY-MM-DD'), message, action_type, created_at
		FROM change_logs
		WHERE month_key = $1
		ORDER BY created_at DESC, id DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, monthKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.ChangeLogEntry, 0)
	for rows.Next() {
		entry := &domain.ChangeLogEntry{
			MonthKey: monthKey,
		}
		dst := []any{&entry.ID, &entry.TargetDate, &entry.Message, &entry.ActionType, &entry.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
