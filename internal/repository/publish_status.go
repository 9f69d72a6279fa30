package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/domain"
)

// GetPublishStatus 返回某个月的发布状态；不存在记录时返回 sql.ErrNoRows，
// 调用方把"没有记录"视同草稿状态
func (r *Repository) GetPublishStatus(monthKey string) (*domain.PublishStatus, error) {
	query := `
		SELECT is_published, published_by, published_at, original_assignments, version
		FROM publish_status WHERE month_key = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	status := &domain.PublishStatus{
		MonthKey: monthKey,
	}

	var snapshot []byte
	dst := []any{&status.IsPublished, &status.PublishedBy, &status.PublishedAt, &snapshot, &status.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, monthKey).Scan(dst...); err != nil {
		return nil, err
	}

	if snapshot != nil {
		if err := json.Unmarshal(snapshot, &status.Snapshot); err != nil {
			return nil, err
		}
	}

	return status, nil
}

// PublishMonth 将某个月标记为已发布，并冻结传入的排班快照
func (r *Repository) PublishMonth(monthKey string, publishedBy string, snapshot []domain.ShiftRecord) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO publish_status (month_key, is_published, published_by, published_at, original_assignments)
		VALUES ($1, TRUE, $2, now(), $3)
		ON CONFLICT (month_key) DO UPDATE
		SET is_published = TRUE,
			published_by = EXCLUDED.published_by,
			published_at = EXCLUDED.published_at,
			original_assignments = EXCLUDED.original_assignments,
			version = publish_status.version + 1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, monthKey, publishedBy, data); err != nil {
		return err
	}

	return nil
}

// ResetMonth 把某个月重置回草稿：在一个事务中删掉该月的排班记录、
// 变更日志和发布状态（连同快照）
func (r *Repository) ResetMonth(monthKey string, from, to string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `DELETE FROM shifts WHERE date BETWEEN $1 AND $2`
	if _, err := tx.ExecContext(ctx, query, from, to); err != nil {
		return err
	}

	query = `DELETE FROM change_logs WHERE month_key = $1`
	if _, err := tx.ExecContext(ctx, query, monthKey); err != nil {
		return err
	}

	query = `DELETE FROM publish_status WHERE month_key = $1`
	if _, err := tx.ExecContext(ctx, query, monthKey); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}
