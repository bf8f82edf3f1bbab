package request

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/satriawidya/bloodlink/constant"
	"github.com/satriawidya/bloodlink/model"
)

type RequestRepository interface {
	Insert(ctx context.Context, req *model.BloodRequest) error
	GetByID(ctx context.Context, id string) (*model.BloodRequest, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.BloodRequest, error)
	UpdateStatus(ctx context.Context, id string, status constant.RequestStatus) error
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id string, status constant.RequestStatus) error
	UpdateProcessingStatusTx(ctx context.Context, tx *sqlx.Tx, id string, status constant.ProcessingStatus) error
	ListByFacility(ctx context.Context, facilityID string) ([]model.BloodRequest, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewRequestRepository(conn *sqlx.DB) RequestRepository {
	return &SQL{conn: conn}
}

const requestColumns = "id, facility_id, requester_id, blood_product, blood_type, quantity_requested, status, processing_status, priority, notes, created_at, updated_at"

func (r *SQL) Insert(ctx context.Context, req *model.BloodRequest) error {
	q := "INSERT INTO blood_request (id, facility_id, requester_id, blood_product, blood_type, quantity_requested, status, processing_status, priority, notes) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
	_, err := r.conn.ExecContext(ctx, q,
		req.ID, req.FacilityID, req.RequesterID, req.BloodProduct, req.BloodType,
		req.QuantityRequested, req.Status, req.ProcessingStatus, req.Priority, req.Notes)
	return err
}

func (r *SQL) GetByID(ctx context.Context, id string) (*model.BloodRequest, error) {
	var req model.BloodRequest
	q := "SELECT " + requestColumns + " FROM blood_request WHERE id = ?"
	if err := r.conn.GetContext(ctx, &req, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

// GetForUpdateTx locks the request row for the duration of the transaction
// so concurrent fulfillments against the same request are serialized.
func (r *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.BloodRequest, error) {
	var req model.BloodRequest
	q := "SELECT " + requestColumns + " FROM blood_request WHERE id = ? FOR UPDATE"
	if err := tx.GetContext(ctx, &req, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (r *SQL) UpdateStatus(ctx context.Context, id string, status constant.RequestStatus) error {
	res, err := r.conn.ExecContext(ctx, "UPDATE blood_request SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id string, status constant.RequestStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE blood_request SET status = ? WHERE id = ?", status, id)
	return err
}

func (r *SQL) UpdateProcessingStatusTx(ctx context.Context, tx *sqlx.Tx, id string, status constant.ProcessingStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE blood_request SET processing_status = ? WHERE id = ?", status, id)
	return err
}

func (r *SQL) ListByFacility(ctx context.Context, facilityID string) ([]model.BloodRequest, error) {
	requests := make([]model.BloodRequest, 0)
	q := "SELECT " + requestColumns + " FROM blood_request WHERE facility_id = ? ORDER BY created_at DESC"
	if err := r.conn.SelectContext(ctx, &requests, q, facilityID); err != nil {
		return nil, err
	}
	return requests, nil
}
