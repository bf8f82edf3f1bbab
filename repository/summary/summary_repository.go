package summary

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/satriawidya/bloodlink/model"
)

// SummaryRepository persists the cached dashboard rows and runs the
// aggregate queries that feed them.
type SummaryRepository interface {
	Get(ctx context.Context, facilityID, date string) (*model.DailySummary, error)
	Upsert(ctx context.Context, summary *model.DailySummary) error
	TotalStock(ctx context.Context, facilityID string) (int64, error)
	TotalTransferred(ctx context.Context, facilityID, date string) (int64, error)
	TotalRequests(ctx context.Context, facilityID, date string) (int64, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewSummaryRepository(conn *sqlx.DB) SummaryRepository {
	return &SQL{conn: conn}
}

func (r *SQL) Get(ctx context.Context, facilityID, date string) (*model.DailySummary, error) {
	var s model.DailySummary
	q := "SELECT facility_id, summary_date, total_stock, total_transferred, total_requests, updated_at FROM dashboard_daily_summary WHERE facility_id = ? AND summary_date = ?"
	if err := r.conn.GetContext(ctx, &s, q, facilityID, date); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// Upsert overwrites the row for (facility, date); last writer wins.
func (r *SQL) Upsert(ctx context.Context, summary *model.DailySummary) error {
	q := `INSERT INTO dashboard_daily_summary (facility_id, summary_date, total_stock, total_transferred, total_requests, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE total_stock = VALUES(total_stock), total_transferred = VALUES(total_transferred), total_requests = VALUES(total_requests), updated_at = VALUES(updated_at)`
	_, err := r.conn.ExecContext(ctx, q,
		summary.FacilityID, summary.Date, summary.TotalStock,
		summary.TotalTransferred, summary.TotalRequests, summary.UpdatedAt)
	return err
}

// TotalStock is the current snapshot across all of the facility's blood
// banks, deliberately not scoped to the summary date.
func (r *SQL) TotalStock(ctx context.Context, facilityID string) (int64, error) {
	var total sql.NullInt64
	q := `SELECT COALESCE(SUM(bi.quantity), 0) FROM blood_inventory bi
		JOIN blood_bank bb ON bi.blood_bank_id = bb.id
		WHERE bb.facility_id = ?`
	if err := r.conn.GetContext(ctx, &total, q, facilityID); err != nil {
		return 0, err
	}
	return total.Int64, nil
}

func (r *SQL) TotalTransferred(ctx context.Context, facilityID, date string) (int64, error) {
	var total sql.NullInt64
	q := `SELECT COALESCE(SUM(quantity), 0) FROM blood_distribution
		WHERE dispatched_to_id = ? AND date_delivered IS NOT NULL AND DATE(date_delivered) = ?`
	if err := r.conn.GetContext(ctx, &total, q, facilityID, date); err != nil {
		return 0, err
	}
	return total.Int64, nil
}

func (r *SQL) TotalRequests(ctx context.Context, facilityID, date string) (int64, error) {
	var total sql.NullInt64
	q := "SELECT COUNT(id) FROM blood_request WHERE facility_id = ? AND DATE(created_at) = ?"
	if err := r.conn.GetContext(ctx, &total, q, facilityID, date); err != nil {
		return 0, err
	}
	return total.Int64, nil
}
