package model

import "time"

// InventoryLot is a single dated batch of blood units held by a blood bank.
// Quantity never goes below zero; lots that reach zero stay as history rows.
type InventoryLot struct {
	ID           string    `db:"id" json:"id"`
	BloodBankID  string    `db:"blood_bank_id" json:"blood_bank_id"`
	BloodProduct string    `db:"blood_product" json:"blood_product"`
	BloodType    string    `db:"blood_type" json:"blood_type"`
	Quantity     int       `db:"quantity" json:"quantity"`
	ExpiryDate   time.Time `db:"expiry_date" json:"expiry_date"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type AddLotRequest struct {
	BloodProduct string `json:"blood_product" validate:"required"`
	BloodType    string `json:"blood_type" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
	ExpiryDate   string `json:"expiry_date" validate:"required,datetime=2006-01-02"`
}

// LotConsumption records how many units a distribution took from one lot,
// so returns and deletions can restore stock exactly.
type LotConsumption struct {
	ID             int64  `db:"id" json:"id"`
	DistributionID string `db:"distribution_id" json:"distribution_id"`
	LotID          string `db:"lot_id" json:"lot_id"`
	Quantity       int    `db:"quantity" json:"quantity"`
}
