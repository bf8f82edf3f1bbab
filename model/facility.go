package model

import "time"

type Facility struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Address   string    `db:"address" json:"address"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// BloodBank is a facility-owned store of inventory lots.
type BloodBank struct {
	ID         string    `db:"id" json:"id"`
	FacilityID string    `db:"facility_id" json:"facility_id"`
	Name       string    `db:"name" json:"name"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

type CreateFacilityRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
}

type CreateBloodBankRequest struct {
	FacilityID string `json:"facility_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
}
