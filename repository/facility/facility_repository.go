package facility

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/satriawidya/bloodlink/model"
)

type FacilityRepository interface {
	InsertFacility(ctx context.Context, facility *model.Facility) error
	GetFacility(ctx context.Context, id string) (*model.Facility, error)
	ListFacilityIDs(ctx context.Context) ([]string, error)
	InsertBloodBank(ctx context.Context, bank *model.BloodBank) error
	GetBloodBank(ctx context.Context, id string) (*model.BloodBank, error)
	ListBloodBanks(ctx context.Context, facilityID string) ([]model.BloodBank, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewFacilityRepository(conn *sqlx.DB) FacilityRepository {
	return &SQL{conn: conn}
}

func (r *SQL) InsertFacility(ctx context.Context, facility *model.Facility) error {
	q := "INSERT INTO facility (id, name, email, phone, address) VALUES (?, ?, ?, ?, ?)"
	_, err := r.conn.ExecContext(ctx, q,
		facility.ID, facility.Name, facility.Email, facility.Phone, facility.Address)
	return err
}

func (r *SQL) GetFacility(ctx context.Context, id string) (*model.Facility, error) {
	var facility model.Facility
	q := "SELECT id, name, email, phone, address, created_at, updated_at FROM facility WHERE id = ?"
	if err := r.conn.GetContext(ctx, &facility, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &facility, nil
}

func (r *SQL) ListFacilityIDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0)
	if err := r.conn.SelectContext(ctx, &ids, "SELECT id FROM facility"); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *SQL) InsertBloodBank(ctx context.Context, bank *model.BloodBank) error {
	q := "INSERT INTO blood_bank (id, facility_id, name) VALUES (?, ?, ?)"
	_, err := r.conn.ExecContext(ctx, q, bank.ID, bank.FacilityID, bank.Name)
	return err
}

func (r *SQL) GetBloodBank(ctx context.Context, id string) (*model.BloodBank, error) {
	var bank model.BloodBank
	q := "SELECT id, facility_id, name, created_at, updated_at FROM blood_bank WHERE id = ?"
	if err := r.conn.GetContext(ctx, &bank, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &bank, nil
}

func (r *SQL) ListBloodBanks(ctx context.Context, facilityID string) ([]model.BloodBank, error) {
	banks := make([]model.BloodBank, 0)
	q := "SELECT id, facility_id, name, created_at, updated_at FROM blood_bank WHERE facility_id = ? ORDER BY name ASC"
	if err := r.conn.SelectContext(ctx, &banks, q, facilityID); err != nil {
		return nil, err
	}
	return banks, nil
}
