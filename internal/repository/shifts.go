package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/domain"
	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/roster"
)

// GetShiftsInRange 查询 [from, to] 日期区间内的全部排班记录（含所有人员）
func (r *Repository) GetShiftsInRange(from, to string) ([]domain.ShiftRecord, error) {
	query := `
		SELECT id, staff_id, to_char(date, 'YYYY-MM-DD'), shift_type
		FROM shifts
		WHERE date BETWEEN $1 AND $2
		ORDER BY date, staff_id, shift_type
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.ShiftRecord, 0)
	for rows.Next() {
		rec := domain.ShiftRecord{}
		if err := rows.Scan(&rec.ID, &rec.StaffID, &rec.Date, &rec.Type); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ApplyShiftDelta 在一个事务中落库引擎计算出的变更：先删后插。
// 插入使用 ON CONFLICT DO NOTHING，与引擎"撞 ID 时静默跳过"的口径一致
func (r *Repository) ApplyShiftDelta(delta roster.Delta) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, rec := range delta.Deletes {
		query := `DELETE FROM shifts WHERE id = $1`
		if _, err := tx.ExecContext(ctx, query, rec.ID); err != nil {
			return err
		}
	}

	for _, rec := range delta.Inserts {
		query := `
			INSERT INTO shifts (id, staff_id, date, shift_type)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING
		`
		if _, err := tx.ExecContext(ctx, query, rec.ID, rec.StaffID, rec.Date, rec.Type); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}
