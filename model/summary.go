package model

import "time"

// DailySummary is the cached dashboard row, one per (facility, day).
type DailySummary struct {
	FacilityID       string    `db:"facility_id" json:"facility_id"`
	Date             string    `db:"summary_date" json:"date"`
	TotalStock       int64     `db:"total_stock" json:"total_stock"`
	TotalTransferred int64     `db:"total_transferred" json:"total_transferred"`
	TotalRequests    int64     `db:"total_requests" json:"total_requests"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

type SummaryMetric struct {
	Value     int64   `json:"value"`
	Change    float64 `json:"change"`
	Direction string  `json:"direction"`
}

type SummaryResponse struct {
	Stock       SummaryMetric `json:"stock"`
	Transferred SummaryMetric `json:"transferred"`
	Requests    SummaryMetric `json:"requests"`
	Stale       bool          `json:"stale"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
