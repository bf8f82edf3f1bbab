package tracking

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/satriawidya/bloodlink/model"
)

type TrackingRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, state *model.TrackState) error
	ListByDistribution(ctx context.Context, distributionID string) ([]model.TrackState, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewTrackingRepository(conn *sqlx.DB) TrackingRepository {
	return &SQL{conn: conn}
}

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, state *model.TrackState) error {
	q := "INSERT INTO track_state (id, distribution_id, request_id, status, location, notes) VALUES (?, ?, ?, ?, ?, ?)"
	_, err := tx.ExecContext(ctx, q,
		state.ID, state.DistributionID, state.RequestID, state.Status, state.Location, state.Notes)
	return err
}

func (r *SQL) ListByDistribution(ctx context.Context, distributionID string) ([]model.TrackState, error) {
	states := make([]model.TrackState, 0)
	q := "SELECT id, distribution_id, request_id, status, location, notes, created_at FROM track_state WHERE distribution_id = ? ORDER BY created_at ASC"
	if err := r.conn.SelectContext(ctx, &states, q, distributionID); err != nil {
		return nil, err
	}
	return states, nil
}
