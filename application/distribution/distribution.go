package distribution

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/satriawidya/bloodlink/cmd/config"
	"github.com/satriawidya/bloodlink/constant"
	"github.com/satriawidya/bloodlink/model"
	distributionrepo "github.com/satriawidya/bloodlink/repository/distribution"
	facilityrepo "github.com/satriawidya/bloodlink/repository/facility"
	inventoryrepo "github.com/satriawidya/bloodlink/repository/inventory"
	requestrepo "github.com/satriawidya/bloodlink/repository/request"
	trackingrepo "github.com/satriawidya/bloodlink/repository/tracking"
	txrepo "github.com/satriawidya/bloodlink/repository/tx"
	"github.com/satriawidya/bloodlink/thirdparty/rabbitmq"
	"github.com/satriawidya/bloodlink/utils/errors"
	"github.com/satriawidya/bloodlink/utils/generator"
	"github.com/satriawidya/bloodlink/utils/logger"
	"go.uber.org/zap"
)

type DistributionApp interface {
	Fulfill(ctx context.Context, requestID, bloodBankID string, userID uint64, req *model.FulfillRequest) (*model.Distribution, error)
	UpdateStatus(ctx context.Context, id string, req *model.UpdateDistributionStatusRequest) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*model.Distribution, error)
	Track(ctx context.Context, id string) ([]model.TrackState, error)
	ListByFacility(ctx context.Context, facilityID string) ([]model.Distribution, error)
	ListByBloodBank(ctx context.Context, bloodBankID string) ([]model.Distribution, error)
}

type distributionAppImpl struct {
	config           *config.Config
	txRepo           txrepo.TxRepository
	requestRepo      requestrepo.RequestRepository
	inventoryRepo    inventoryrepo.InventoryRepository
	distributionRepo distributionrepo.DistributionRepository
	trackingRepo     trackingrepo.TrackingRepository
	facilityRepo     facilityrepo.FacilityRepository
	publisher        *rabbitmq.Publisher
}

func NewDistributionApp(config *config.Config, txRepo txrepo.TxRepository, requestRepo requestrepo.RequestRepository, inventoryRepo inventoryrepo.InventoryRepository, distributionRepo distributionrepo.DistributionRepository, trackingRepo trackingrepo.TrackingRepository, facilityRepo facilityrepo.FacilityRepository, publisher *rabbitmq.Publisher) DistributionApp {
	return &distributionAppImpl{
		config:           config,
		txRepo:           txRepo,
		requestRepo:      requestRepo,
		inventoryRepo:    inventoryRepo,
		distributionRepo: distributionRepo,
		trackingRepo:     trackingRepo,
		facilityRepo:     facilityRepo,
		publisher:        publisher,
	}
}

// allocateLots walks lots oldest expiry first and plans deductions until
// need is covered. Returns covered=false when the lots cannot cover need,
// in which case nothing should be deducted.
func allocateLots(lots []model.InventoryLot, need int) ([]model.LotConsumption, bool) {
	consumptions := make([]model.LotConsumption, 0, len(lots))
	remaining := need
	for _, lot := range lots {
		if remaining == 0 {
			break
		}
		take := lot.Quantity
		if take > remaining {
			take = remaining
		}
		consumptions = append(consumptions, model.LotConsumption{
			LotID:    lot.ID,
			Quantity: take,
		})
		remaining -= take
	}
	if remaining > 0 {
		return nil, false
	}
	return consumptions, true
}

// Fulfill ships a blood request from the given blood bank. Product, type,
// quantity and destination all come from the request itself; the caller
// only supplies optional notes. Stock is deducted oldest expiry first, and
// only when the bank can cover the full outstanding quantity.
func (s *distributionAppImpl) Fulfill(ctx context.Context, requestID, bloodBankID string, userID uint64, req *model.FulfillRequest) (*model.Distribution, error) {
	bank, err := s.facilityRepo.GetBloodBank(ctx, bloodBankID)
	if err != nil {
		logger.Error("[Fulfill] get blood bank", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if bank == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Fulfill] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	bloodRequest, err := s.requestRepo.GetForUpdateTx(ctx, tx, requestID)
	if err != nil {
		logger.Error("[Fulfill] get request", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if bloodRequest == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	// A facility cannot fulfill its own request.
	if bank.FacilityID == bloodRequest.FacilityID {
		return nil, errors.SetCustomError(constant.ErrInvalidOperation)
	}

	if bloodRequest.Status != constant.RequestStatusPending && bloodRequest.Status != constant.RequestStatusApproved {
		return nil, errors.SetCustomError(constant.ErrInvalidState)
	}

	distributed, err := s.distributionRepo.SumQuantityByRequestTx(ctx, tx, requestID)
	if err != nil {
		logger.Error("[Fulfill] sum distributed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	remaining := bloodRequest.QuantityRequested - int(distributed)
	if remaining <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidState)
	}

	lots, err := s.inventoryRepo.LockLotsTx(ctx, tx, bloodBankID, bloodRequest.BloodProduct, bloodRequest.BloodType)
	if err != nil {
		logger.Error("[Fulfill] lock lots", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	consumptions, covered := allocateLots(lots, remaining)
	if covered {
		for _, c := range consumptions {
			if err := s.inventoryRepo.DeductLotTx(ctx, tx, c.LotID, c.Quantity); err != nil {
				if err.Error() == errors.SetCustomError(constant.ErrInsufficientStock).Error() {
					return nil, errors.SetCustomError(constant.ErrInsufficientStock)
				}
				logger.Error("[Fulfill] deduct lot", zap.String("error", err.Error()))
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
		}
	} else {
		logger.Info("[Fulfill] stock does not cover request, shipping without deduction",
			zap.String("request_id", requestID), zap.String("blood_bank_id", bloodBankID), zap.Int("need", remaining))
	}

	now := time.Now()
	dist := &model.Distribution{
		ID:               uuid.NewString(),
		RequestID:        &bloodRequest.ID,
		DispatchedFromID: bloodBankID,
		DispatchedToID:   bloodRequest.FacilityID,
		BloodProduct:     bloodRequest.BloodProduct,
		BloodType:        bloodRequest.BloodType,
		Quantity:         remaining,
		Status:           constant.DistributionStatusPendingReceive,
		TrackingNumber:   generator.TrackingNumber(),
		BatchNumber:      generator.BatchNumber(),
		FromStock:        covered,
		Notes:            req.Notes,
		CreatedBy:        userID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.distributionRepo.InsertTx(ctx, tx, dist); err != nil {
		logger.Error("[Fulfill] insert distribution", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if covered {
		if err := s.distributionRepo.InsertConsumptionsTx(ctx, tx, dist.ID, consumptions); err != nil {
			logger.Error("[Fulfill] insert consumptions", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	state := &model.TrackState{
		ID:             uuid.NewString(),
		DistributionID: dist.ID,
		RequestID:      &bloodRequest.ID,
		Status:         constant.TrackingStatusPendingReceive,
		Notes:          req.Notes,
	}
	if err := s.trackingRepo.InsertTx(ctx, tx, state); err != nil {
		logger.Error("[Fulfill] insert track state", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.requestRepo.UpdateProcessingStatusTx(ctx, tx, requestID, constant.ProcessingStatusInitiated); err != nil {
		logger.Error("[Fulfill] update processing status", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Fulfill] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishRefresh(bank.FacilityID)
	s.publishRefresh(bloodRequest.FacilityID)

	return dist, nil
}

// UpdateStatus moves a shipment along its lifecycle and keeps the tracking
// trail and the originating request in sync. Returned shipments put their
// deducted units back into the source lots.
func (s *distributionAppImpl) UpdateStatus(ctx context.Context, id string, req *model.UpdateDistributionStatusRequest) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateStatus] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	dist, err := s.distributionRepo.GetForUpdateTx(ctx, tx, id)
	if err != nil {
		logger.Error("[UpdateStatus] get distribution", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if dist == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if !validTransition(dist.Status, req.Status) {
		return errors.SetCustomError(constant.ErrInvalidState)
	}

	now := time.Now()
	var dateDispatched, dateDelivered *time.Time
	if req.Status == constant.DistributionStatusInTransit {
		dateDispatched = &now
	}
	if req.Status == constant.DistributionStatusDelivered {
		dateDelivered = &now
	}

	if err := s.distributionRepo.UpdateStatusTx(ctx, tx, id, req.Status, dateDispatched, dateDelivered); err != nil {
		logger.Error("[UpdateStatus] update status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	state := &model.TrackState{
		ID:             uuid.NewString(),
		DistributionID: dist.ID,
		RequestID:      dist.RequestID,
		Status:         trackingStatusFor(req.Status),
	}
	if err := s.trackingRepo.InsertTx(ctx, tx, state); err != nil {
		logger.Error("[UpdateStatus] insert track state", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if req.Status == constant.DistributionStatusReturned || req.Status == constant.DistributionStatusCancelled {
		if err := s.restoreStockTx(ctx, tx, dist); err != nil {
			return err
		}
	}

	if dist.RequestID != nil {
		if err := s.syncRequestTx(ctx, tx, *dist.RequestID, req.Status); err != nil {
			return err
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateStatus] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishRefresh(dist.DispatchedToID)

	return nil
}

// Delete removes a shipment that has not left the blood bank yet and puts
// any deducted units back into stock.
func (s *distributionAppImpl) Delete(ctx context.Context, id string) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Delete] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	dist, err := s.distributionRepo.GetForUpdateTx(ctx, tx, id)
	if err != nil {
		logger.Error("[Delete] get distribution", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if dist == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if dist.Status != constant.DistributionStatusPendingReceive {
		return errors.SetCustomError(constant.ErrInvalidState)
	}

	if err := s.restoreStockTx(ctx, tx, dist); err != nil {
		return err
	}

	if dist.RequestID != nil {
		if err := s.requestRepo.UpdateProcessingStatusTx(ctx, tx, *dist.RequestID, constant.ProcessingStatusNotStarted); err != nil {
			logger.Error("[Delete] reset processing status", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.distributionRepo.DeleteTx(ctx, tx, id); err != nil {
		logger.Error("[Delete] delete distribution", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Delete] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishRefresh(dist.DispatchedToID)

	return nil
}

func (s *distributionAppImpl) Get(ctx context.Context, id string) (*model.Distribution, error) {
	dist, err := s.distributionRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[Get] get distribution", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if dist == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return dist, nil
}

func (s *distributionAppImpl) Track(ctx context.Context, id string) ([]model.TrackState, error) {
	dist, err := s.distributionRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[Track] get distribution", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if dist == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	states, err := s.trackingRepo.ListByDistribution(ctx, id)
	if err != nil {
		logger.Error("[Track] list track states", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return states, nil
}

func (s *distributionAppImpl) ListByFacility(ctx context.Context, facilityID string) ([]model.Distribution, error) {
	dists, err := s.distributionRepo.ListByFacility(ctx, facilityID)
	if err != nil {
		logger.Error("[ListByFacility] list distributions", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return dists, nil
}

func (s *distributionAppImpl) ListByBloodBank(ctx context.Context, bloodBankID string) ([]model.Distribution, error) {
	dists, err := s.distributionRepo.ListByBloodBank(ctx, bloodBankID)
	if err != nil {
		logger.Error("[ListByBloodBank] list distributions", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return dists, nil
}

func (s *distributionAppImpl) restoreStockTx(ctx context.Context, tx *sqlx.Tx, dist *model.Distribution) error {
	if !dist.FromStock {
		return nil
	}
	consumptions, err := s.distributionRepo.GetConsumptionsTx(ctx, tx, dist.ID)
	if err != nil {
		logger.Error("[restoreStock] get consumptions", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	for _, c := range consumptions {
		if err := s.inventoryRepo.RestoreLotTx(ctx, tx, c.LotID, c.Quantity); err != nil {
			logger.Error("[restoreStock] restore lot", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}
	return nil
}

func (s *distributionAppImpl) syncRequestTx(ctx context.Context, tx *sqlx.Tx, requestID string, status constant.DistributionStatus) error {
	switch status {
	case constant.DistributionStatusInTransit:
		err := s.requestRepo.UpdateProcessingStatusTx(ctx, tx, requestID, constant.ProcessingStatusDispatched)
		if err != nil {
			logger.Error("[syncRequest] update processing status", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	case constant.DistributionStatusDelivered:
		if err := s.requestRepo.UpdateProcessingStatusTx(ctx, tx, requestID, constant.ProcessingStatusCompleted); err != nil {
			logger.Error("[syncRequest] update processing status", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if err := s.requestRepo.UpdateStatusTx(ctx, tx, requestID, constant.RequestStatusCompleted); err != nil {
			logger.Error("[syncRequest] update request status", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	case constant.DistributionStatusReturned, constant.DistributionStatusCancelled:
		err := s.requestRepo.UpdateProcessingStatusTx(ctx, tx, requestID, constant.ProcessingStatusNotStarted)
		if err != nil {
			logger.Error("[syncRequest] reset processing status", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}
	return nil
}

func (s *distributionAppImpl) publishRefresh(facilityID string) {
	if s.publisher == nil {
		return
	}
	msg := rabbitmq.DashboardRefreshMessage{
		FacilityID: facilityID,
		Date:       time.Now().Format(constant.DateLayout),
	}
	if err := s.publisher.PublishDashboardRefresh(msg); err != nil {
		logger.Error("[publishRefresh] publish dashboard refresh", zap.String("error", err.Error()))
	}
}

func validTransition(from, to constant.DistributionStatus) bool {
	switch from {
	case constant.DistributionStatusPendingReceive:
		return to == constant.DistributionStatusInTransit || to == constant.DistributionStatusCancelled
	case constant.DistributionStatusInTransit:
		return to == constant.DistributionStatusDelivered || to == constant.DistributionStatusReturned
	default:
		return false
	}
}

func trackingStatusFor(status constant.DistributionStatus) constant.TrackingStatus {
	switch status {
	case constant.DistributionStatusInTransit:
		return constant.TrackingStatusDispatched
	case constant.DistributionStatusDelivered:
		return constant.TrackingStatusReceived
	case constant.DistributionStatusReturned:
		return constant.TrackingStatusReturned
	case constant.DistributionStatusCancelled:
		return constant.TrackingStatusCancelled
	default:
		return constant.TrackingStatusPendingReceive
	}
}
