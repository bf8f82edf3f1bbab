package inventory

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/satriawidya/bloodlink/constant"
	"github.com/satriawidya/bloodlink/model"
	"github.com/satriawidya/bloodlink/utils/errors"
)

type InventoryRepository interface {
	InsertLot(ctx context.Context, lot *model.InventoryLot) error
	// LockLotsTx returns matching lots with quantity > 0 ordered oldest
	// expiry first, row-locked until the transaction ends.
	LockLotsTx(ctx context.Context, tx *sqlx.Tx, bloodBankID, bloodProduct, bloodType string) ([]model.InventoryLot, error)
	DeductLotTx(ctx context.Context, tx *sqlx.Tx, lotID string, quantity int) error
	RestoreLotTx(ctx context.Context, tx *sqlx.Tx, lotID string, quantity int) error
	ListByBloodBank(ctx context.Context, bloodBankID string) ([]model.InventoryLot, error)
	ListExpiring(ctx context.Context, bloodBankID string, before time.Time) ([]model.InventoryLot, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewInventoryRepository(conn *sqlx.DB) InventoryRepository {
	return &SQL{conn: conn}
}

const lotColumns = "id, blood_bank_id, blood_product, blood_type, quantity, expiry_date, created_at, updated_at"

func (r *SQL) InsertLot(ctx context.Context, lot *model.InventoryLot) error {
	q := "INSERT INTO blood_inventory (id, blood_bank_id, blood_product, blood_type, quantity, expiry_date) VALUES (?, ?, ?, ?, ?, ?)"
	_, err := r.conn.ExecContext(ctx, q,
		lot.ID, lot.BloodBankID, lot.BloodProduct, lot.BloodType, lot.Quantity, lot.ExpiryDate)
	return err
}

func (r *SQL) LockLotsTx(ctx context.Context, tx *sqlx.Tx, bloodBankID, bloodProduct, bloodType string) ([]model.InventoryLot, error) {
	lots := make([]model.InventoryLot, 0)
	q := "SELECT " + lotColumns + " FROM blood_inventory WHERE blood_bank_id = ? AND blood_product = ? AND blood_type = ? AND quantity > 0 ORDER BY expiry_date ASC, created_at ASC FOR UPDATE"
	if err := tx.SelectContext(ctx, &lots, q, bloodBankID, bloodProduct, bloodType); err != nil {
		return nil, err
	}
	return lots, nil
}

// DeductLotTx decrements a lot, guarded so the quantity can never go
// negative even if the caller's view of the lot is out of date.
func (r *SQL) DeductLotTx(ctx context.Context, tx *sqlx.Tx, lotID string, quantity int) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE blood_inventory SET quantity = quantity - ? WHERE id = ? AND quantity >= ?",
		quantity, lotID, quantity)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrInsufficientStock)
	}
	return nil
}

func (r *SQL) RestoreLotTx(ctx context.Context, tx *sqlx.Tx, lotID string, quantity int) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE blood_inventory SET quantity = quantity + ? WHERE id = ?", quantity, lotID)
	return err
}

func (r *SQL) ListByBloodBank(ctx context.Context, bloodBankID string) ([]model.InventoryLot, error) {
	lots := make([]model.InventoryLot, 0)
	q := "SELECT " + lotColumns + " FROM blood_inventory WHERE blood_bank_id = ? ORDER BY expiry_date ASC"
	if err := r.conn.SelectContext(ctx, &lots, q, bloodBankID); err != nil {
		return nil, err
	}
	return lots, nil
}

func (r *SQL) ListExpiring(ctx context.Context, bloodBankID string, before time.Time) ([]model.InventoryLot, error) {
	lots := make([]model.InventoryLot, 0)
	q := "SELECT " + lotColumns + " FROM blood_inventory WHERE blood_bank_id = ? AND quantity > 0 AND expiry_date <= ? ORDER BY expiry_date ASC"
	if err := r.conn.SelectContext(ctx, &lots, q, bloodBankID, before); err != nil {
		return nil, err
	}
	return lots, nil
}
