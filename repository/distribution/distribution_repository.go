package distribution

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/satriawidya/bloodlink/constant"
	"github.com/satriawidya/bloodlink/model"
)

type DistributionRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, dist *model.Distribution) error
	InsertConsumptionsTx(ctx context.Context, tx *sqlx.Tx, distributionID string, consumptions []model.LotConsumption) error
	GetConsumptionsTx(ctx context.Context, tx *sqlx.Tx, distributionID string) ([]model.LotConsumption, error)
	SumQuantityByRequestTx(ctx context.Context, tx *sqlx.Tx, requestID string) (int64, error)
	GetByID(ctx context.Context, id string) (*model.Distribution, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.Distribution, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id string, status constant.DistributionStatus, dateDispatched, dateDelivered *time.Time) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, id string) error
	ListByFacility(ctx context.Context, facilityID string) ([]model.Distribution, error)
	ListByBloodBank(ctx context.Context, bloodBankID string) ([]model.Distribution, error)
	ListByRequest(ctx context.Context, requestID string) ([]model.Distribution, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewDistributionRepository(conn *sqlx.DB) DistributionRepository {
	return &SQL{conn: conn}
}

const distColumns = "id, request_id, dispatched_from_id, dispatched_to_id, blood_product, blood_type, quantity, status, tracking_number, batch_number, from_stock, date_dispatched, date_delivered, notes, created_by, created_at, updated_at"

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, dist *model.Distribution) error {
	q := "INSERT INTO blood_distribution (id, request_id, dispatched_from_id, dispatched_to_id, blood_product, blood_type, quantity, status, tracking_number, batch_number, from_stock, date_dispatched, notes, created_by) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
	_, err := tx.ExecContext(ctx, q,
		dist.ID, dist.RequestID, dist.DispatchedFromID, dist.DispatchedToID,
		dist.BloodProduct, dist.BloodType, dist.Quantity, dist.Status,
		dist.TrackingNumber, dist.BatchNumber, dist.FromStock,
		dist.DateDispatched, dist.Notes, dist.CreatedBy)
	return err
}

func (r *SQL) InsertConsumptionsTx(ctx context.Context, tx *sqlx.Tx, distributionID string, consumptions []model.LotConsumption) error {
	q := "INSERT INTO distribution_lot (distribution_id, lot_id, quantity) VALUES (?, ?, ?)"
	for _, c := range consumptions {
		if _, err := tx.ExecContext(ctx, q, distributionID, c.LotID, c.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) GetConsumptionsTx(ctx context.Context, tx *sqlx.Tx, distributionID string) ([]model.LotConsumption, error) {
	consumptions := make([]model.LotConsumption, 0)
	q := "SELECT id, distribution_id, lot_id, quantity FROM distribution_lot WHERE distribution_id = ? FOR UPDATE"
	if err := tx.SelectContext(ctx, &consumptions, q, distributionID); err != nil {
		return nil, err
	}
	return consumptions, nil
}

func (r *SQL) SumQuantityByRequestTx(ctx context.Context, tx *sqlx.Tx, requestID string) (int64, error) {
	var total sql.NullInt64
	q := "SELECT COALESCE(SUM(quantity), 0) FROM blood_distribution WHERE request_id = ? AND status != ?"
	if err := tx.GetContext(ctx, &total, q, requestID, constant.DistributionStatusCancelled); err != nil {
		return 0, err
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Int64, nil
}

func (r *SQL) GetByID(ctx context.Context, id string) (*model.Distribution, error) {
	var dist model.Distribution
	q := "SELECT " + distColumns + " FROM blood_distribution WHERE id = ?"
	if err := r.conn.GetContext(ctx, &dist, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &dist, nil
}

func (r *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.Distribution, error) {
	var dist model.Distribution
	q := "SELECT " + distColumns + " FROM blood_distribution WHERE id = ? FOR UPDATE"
	if err := tx.GetContext(ctx, &dist, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &dist, nil
}

func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id string, status constant.DistributionStatus, dateDispatched, dateDelivered *time.Time) error {
	q := "UPDATE blood_distribution SET status = ?, date_dispatched = COALESCE(?, date_dispatched), date_delivered = COALESCE(?, date_delivered) WHERE id = ?"
	_, err := tx.ExecContext(ctx, q, status, dateDispatched, dateDelivered, id)
	return err
}

func (r *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, id string) error {
	_, err := tx.ExecContext(ctx, "DELETE FROM blood_distribution WHERE id = ?", id)
	return err
}

func (r *SQL) ListByFacility(ctx context.Context, facilityID string) ([]model.Distribution, error) {
	return r.list(ctx, "dispatched_to_id = ?", facilityID)
}

func (r *SQL) ListByBloodBank(ctx context.Context, bloodBankID string) ([]model.Distribution, error) {
	return r.list(ctx, "dispatched_from_id = ?", bloodBankID)
}

func (r *SQL) ListByRequest(ctx context.Context, requestID string) ([]model.Distribution, error) {
	return r.list(ctx, "request_id = ?", requestID)
}

func (r *SQL) list(ctx context.Context, where string, arg interface{}) ([]model.Distribution, error) {
	dists := make([]model.Distribution, 0)
	q := "SELECT " + distColumns + " FROM blood_distribution WHERE " + where + " ORDER BY created_at DESC"
	if err := r.conn.SelectContext(ctx, &dists, q, arg); err != nil {
		return nil, err
	}
	return dists, nil
}
