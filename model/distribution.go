package model

import (
	"time"

	"github.com/satriawidya/bloodlink/constant"
)

// Distribution is an immutable snapshot of a shipment. Product, type,
// quantity and destination are copied from the originating request at
// creation time and are never writable by callers.
type Distribution struct {
	ID               string                      `db:"id" json:"id"`
	RequestID        *string                     `db:"request_id" json:"request_id,omitempty"`
	DispatchedFromID string                      `db:"dispatched_from_id" json:"dispatched_from_id"`
	DispatchedToID   string                      `db:"dispatched_to_id" json:"dispatched_to_id"`
	BloodProduct     string                      `db:"blood_product" json:"blood_product"`
	BloodType        string                      `db:"blood_type" json:"blood_type"`
	Quantity         int                         `db:"quantity" json:"quantity"`
	Status           constant.DistributionStatus `db:"status" json:"status"`
	TrackingNumber   string                      `db:"tracking_number" json:"tracking_number"`
	BatchNumber      string                      `db:"batch_number" json:"batch_number"`
	FromStock        bool                        `db:"from_stock" json:"from_stock"`
	DateDispatched   *time.Time                  `db:"date_dispatched" json:"date_dispatched,omitempty"`
	DateDelivered    *time.Time                  `db:"date_delivered" json:"date_delivered,omitempty"`
	Notes            *string                     `db:"notes" json:"notes,omitempty"`
	CreatedBy        uint64                      `db:"created_by" json:"created_by"`
	CreatedAt        time.Time                   `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time                   `db:"updated_at" json:"updated_at"`
}

type FulfillRequest struct {
	Notes *string `json:"notes"`
}

type UpdateDistributionStatusRequest struct {
	Status constant.DistributionStatus `json:"status" validate:"required,oneof=in_transit delivered returned cancelled"`
}

type TrackState struct {
	ID             string                  `db:"id" json:"id"`
	DistributionID string                  `db:"distribution_id" json:"distribution_id"`
	RequestID      *string                 `db:"request_id" json:"request_id,omitempty"`
	Status         constant.TrackingStatus `db:"status" json:"status"`
	Location       *string                 `db:"location" json:"location,omitempty"`
	Notes          *string                 `db:"notes" json:"notes,omitempty"`
	CreatedAt      time.Time               `db:"created_at" json:"created_at"`
}
