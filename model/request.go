package model

import (
	"time"

	"github.com/satriawidya/bloodlink/constant"
)

type BloodRequest struct {
	ID                string                    `db:"id" json:"id"`
	FacilityID        string                    `db:"facility_id" json:"facility_id"`
	RequesterID       uint64                    `db:"requester_id" json:"requester_id"`
	BloodProduct      string                    `db:"blood_product" json:"blood_product"`
	BloodType         string                    `db:"blood_type" json:"blood_type"`
	QuantityRequested int                       `db:"quantity_requested" json:"quantity_requested"`
	Status            constant.RequestStatus    `db:"status" json:"status"`
	ProcessingStatus  constant.ProcessingStatus `db:"processing_status" json:"processing_status"`
	Priority          string                    `db:"priority" json:"priority"`
	Notes             *string                   `db:"notes" json:"notes,omitempty"`
	CreatedAt         time.Time                 `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time                 `db:"updated_at" json:"updated_at"`
}

type CreateRequestRequest struct {
	FacilityID   string  `json:"facility_id" validate:"required"`
	BloodProduct string  `json:"blood_product" validate:"required"`
	BloodType    string  `json:"blood_type" validate:"required"`
	Quantity     int     `json:"quantity" validate:"required,gt=0"`
	Priority     string  `json:"priority" validate:"omitempty,oneof=urgent not_urgent"`
	Notes        *string `json:"notes"`
}
