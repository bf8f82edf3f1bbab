package distribution_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	appdistribution "github.com/satriawidya/bloodlink/application/distribution"
	"github.com/satriawidya/bloodlink/cmd/config"
	"github.com/satriawidya/bloodlink/constant"
	distributionmocks "github.com/satriawidya/bloodlink/mocks/repository/distribution"
	facilitymocks "github.com/satriawidya/bloodlink/mocks/repository/facility"
	inventorymocks "github.com/satriawidya/bloodlink/mocks/repository/inventory"
	requestmocks "github.com/satriawidya/bloodlink/mocks/repository/request"
	trackingmocks "github.com/satriawidya/bloodlink/mocks/repository/tracking"
	txmocks "github.com/satriawidya/bloodlink/mocks/repository/tx"
	"github.com/satriawidya/bloodlink/model"
	cerr "github.com/satriawidya/bloodlink/utils/errors"
	"github.com/stretchr/testify/mock"
)

// Note: distribution.go checks if publisher is nil before publishing,
// so tests can pass a nil publisher without panicking

func pendingRequest(quantity int) *model.BloodRequest {
	return &model.BloodRequest{
		ID:                "req-1",
		FacilityID:        "fac-1",
		RequesterID:       7,
		BloodProduct:      "plasma",
		BloodType:         "A+",
		QuantityRequested: quantity,
		Status:            constant.RequestStatusPending,
		ProcessingStatus:  constant.ProcessingStatusNotStarted,
	}
}

func TestDistributionApp_Fulfill(t *testing.T) {
	type fields struct {
		config           *config.Config
		txRepo           *txmocks.TxRepository
		requestRepo      *requestmocks.RequestRepository
		inventoryRepo    *inventorymocks.InventoryRepository
		distributionRepo *distributionmocks.DistributionRepository
		trackingRepo     *trackingmocks.TrackingRepository
		facilityRepo     *facilitymocks.FacilityRepository
	}
	type args struct {
		ctx         context.Context
		requestID   string
		bloodBankID string
		userID      uint64
	}
	newFields := func(t *testing.T) fields {
		return fields{
			config:           &config.Config{},
			txRepo:           txmocks.NewTxRepository(t),
			requestRepo:      requestmocks.NewRequestRepository(t),
			inventoryRepo:    inventorymocks.NewInventoryRepository(t),
			distributionRepo: distributionmocks.NewDistributionRepository(t),
			trackingRepo:     trackingmocks.NewTrackingRepository(t),
			facilityRepo:     facilitymocks.NewFacilityRepository(t),
		}
	}
	defaultArgs := args{
		ctx:         context.Background(),
		requestID:   "req-1",
		bloodBankID: "bank-1",
		userID:      7,
	}

	tests := []struct {
		name          string
		args          args
		mockCall      func(f fields)
		wantErr       bool
		errCode       constant.ErrorType
		wantFromStock bool
		wantQuantity  int
	}{
		{
			name: "success: deducts oldest lots first across two lots",
			args: defaultArgs,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.facilityRepo.On("GetBloodBank", mock.Anything, "bank-1").
					Return(&model.BloodBank{ID: "bank-1", FacilityID: "fac-2"}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.requestRepo.On("GetForUpdateTx", mock.Anything, tx, "req-1").
					Return(pendingRequest(5), nil).Once()
				f.distributionRepo.On("SumQuantityByRequestTx", mock.Anything, tx, "req-1").
					Return(int64(0), nil).Once()

				f.inventoryRepo.On("LockLotsTx", mock.Anything, tx, "bank-1", "plasma", "A+").
					Return([]model.InventoryLot{
						{ID: "lot-a", Quantity: 3},
						{ID: "lot-b", Quantity: 4},
					}, nil).Once()
				f.inventoryRepo.On("DeductLotTx", mock.Anything, tx, "lot-a", 3).Return(nil).Once()
				f.inventoryRepo.On("DeductLotTx", mock.Anything, tx, "lot-b", 2).Return(nil).Once()

				f.distributionRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(d *model.Distribution) bool {
					return d.FromStock && d.Quantity == 5 &&
						d.DispatchedFromID == "bank-1" && d.DispatchedToID == "fac-1" &&
						d.BloodProduct == "plasma" && d.BloodType == "A+" &&
						d.Status == constant.DistributionStatusPendingReceive &&
						d.TrackingNumber != "" && d.BatchNumber != ""
				})).Return(nil).Once()
				f.distributionRepo.On("InsertConsumptionsTx", mock.Anything, tx, mock.Anything, mock.MatchedBy(func(cs []model.LotConsumption) bool {
					return len(cs) == 2 && cs[0].LotID == "lot-a" && cs[0].Quantity == 3 &&
						cs[1].LotID == "lot-b" && cs[1].Quantity == 2
				})).Return(nil).Once()

				f.trackingRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(s *model.TrackState) bool {
					return s.Status == constant.TrackingStatusPendingReceive
				})).Return(nil).Once()
				f.requestRepo.On("UpdateProcessingStatusTx", mock.Anything, tx, "req-1", constant.ProcessingStatusInitiated).
					Return(nil).Once()
			},
			wantFromStock: true,
			wantQuantity:  5,
		},
		{
			name: "success: insufficient stock ships without deducting anything",
			args: defaultArgs,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.facilityRepo.On("GetBloodBank", mock.Anything, "bank-1").
					Return(&model.BloodBank{ID: "bank-1", FacilityID: "fac-2"}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.requestRepo.On("GetForUpdateTx", mock.Anything, tx, "req-1").
					Return(pendingRequest(5), nil).Once()
				f.distributionRepo.On("SumQuantityByRequestTx", mock.Anything, tx, "req-1").
					Return(int64(0), nil).Once()

				f.inventoryRepo.On("LockLotsTx", mock.Anything, tx, "bank-1", "plasma", "A+").
					Return([]model.InventoryLot{{ID: "lot-a", Quantity: 2}}, nil).Once()

				f.distributionRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(d *model.Distribution) bool {
					return !d.FromStock && d.Quantity == 5
				})).Return(nil).Once()

				f.trackingRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.requestRepo.On("UpdateProcessingStatusTx", mock.Anything, tx, "req-1", constant.ProcessingStatusInitiated).
					Return(nil).Once()
			},
			wantFromStock: false,
			wantQuantity:  5,
		},
		{
			name: "success: second shipment only covers the outstanding quantity",
			args: defaultArgs,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.facilityRepo.On("GetBloodBank", mock.Anything, "bank-1").
					Return(&model.BloodBank{ID: "bank-1", FacilityID: "fac-2"}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.requestRepo.On("GetForUpdateTx", mock.Anything, tx, "req-1").
					Return(pendingRequest(5), nil).Once()
				f.distributionRepo.On("SumQuantityByRequestTx", mock.Anything, tx, "req-1").
					Return(int64(3), nil).Once()

				f.inventoryRepo.On("LockLotsTx", mock.Anything, tx, "bank-1", "plasma", "A+").
					Return([]model.InventoryLot{{ID: "lot-a", Quantity: 10}}, nil).Once()
				f.inventoryRepo.On("DeductLotTx", mock.Anything, tx, "lot-a", 2).Return(nil).Once()

				f.distributionRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(d *model.Distribution) bool {
					return d.FromStock && d.Quantity == 2
				})).Return(nil).Once()
				f.distributionRepo.On("InsertConsumptionsTx", mock.Anything, tx, mock.Anything, mock.Anything).
					Return(nil).Once()

				f.trackingRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.requestRepo.On("UpdateProcessingStatusTx", mock.Anything, tx, "req-1", constant.ProcessingStatusInitiated).
					Return(nil).Once()
			},
			wantFromStock: true,
			wantQuantity:  2,
		},
		{
			name: "error: blood bank not found",
			args: defaultArgs,
			mockCall: func(f fields) {
				f.facilityRepo.On("GetBloodBank", mock.Anything, "bank-1").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: request not found",
			args: defaultArgs,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.facilityRepo.On("GetBloodBank", mock.Anything, "bank-1").
					Return(&model.BloodBank{ID: "bank-1", FacilityID: "fac-2"}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.requestRepo.On("GetForUpdateTx", mock.Anything, tx, "req-1").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: facility cannot fulfill its own request",
			args: defaultArgs,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.facilityRepo.On("GetBloodBank", mock.Anything, "bank-1").
					Return(&model.BloodBank{ID: "bank-1", FacilityID: "fac-1"}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.requestRepo.On("GetForUpdateTx", mock.Anything, tx, "req-1").
					Return(pendingRequest(5), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOperation,
		},
		{
			name: "error: request already completed",
			args: defaultArgs,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				completed := pendingRequest(5)
				completed.Status = constant.RequestStatusCompleted
				f.facilityRepo.On("GetBloodBank", mock.Anything, "bank-1").
					Return(&model.BloodBank{ID: "bank-1", FacilityID: "fac-2"}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.requestRepo.On("GetForUpdateTx", mock.Anything, tx, "req-1").Return(completed, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidState,
		},
		{
			name: "error: request already fully distributed",
			args: defaultArgs,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.facilityRepo.On("GetBloodBank", mock.Anything, "bank-1").
					Return(&model.BloodBank{ID: "bank-1", FacilityID: "fac-2"}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.requestRepo.On("GetForUpdateTx", mock.Anything, tx, "req-1").
					Return(pendingRequest(5), nil).Once()
				f.distributionRepo.On("SumQuantityByRequestTx", mock.Anything, tx, "req-1").
					Return(int64(5), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidState,
		},
		{
			name: "error: begin tx fails",
			args: defaultArgs,
			mockCall: func(f fields) {
				f.facilityRepo.On("GetBloodBank", mock.Anything, "bank-1").
					Return(&model.BloodBank{ID: "bank-1", FacilityID: "fac-2"}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appdistribution.NewDistributionApp(f.config, f.txRepo, f.requestRepo, f.inventoryRepo, f.distributionRepo, f.trackingRepo, f.facilityRepo, nil)

			got, err := app.Fulfill(tt.args.ctx, tt.args.requestID, tt.args.bloodBankID, tt.args.userID, &model.FulfillRequest{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Fulfill() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.FromStock != tt.wantFromStock {
				t.Fatalf("Fulfill() FromStock = %v, want %v", got.FromStock, tt.wantFromStock)
			}
			if got.Quantity != tt.wantQuantity {
				t.Fatalf("Fulfill() Quantity = %d, want %d", got.Quantity, tt.wantQuantity)
			}
			if got.RequestID == nil || *got.RequestID != "req-1" {
				t.Fatalf("Fulfill() RequestID = %v, want req-1", got.RequestID)
			}
		})
	}
}

func TestDistributionApp_UpdateStatus(t *testing.T) {
	type fields struct {
		config           *config.Config
		txRepo           *txmocks.TxRepository
		requestRepo      *requestmocks.RequestRepository
		inventoryRepo    *inventorymocks.InventoryRepository
		distributionRepo *distributionmocks.DistributionRepository
		trackingRepo     *trackingmocks.TrackingRepository
		facilityRepo     *facilitymocks.FacilityRepository
	}
	newFields := func(t *testing.T) fields {
		return fields{
			config:           &config.Config{},
			txRepo:           txmocks.NewTxRepository(t),
			requestRepo:      requestmocks.NewRequestRepository(t),
			inventoryRepo:    inventorymocks.NewInventoryRepository(t),
			distributionRepo: distributionmocks.NewDistributionRepository(t),
			trackingRepo:     trackingmocks.NewTrackingRepository(t),
			facilityRepo:     facilitymocks.NewFacilityRepository(t),
		}
	}
	requestID := "req-1"
	baseDist := func(status constant.DistributionStatus, fromStock bool) *model.Distribution {
		return &model.Distribution{
			ID:               "dist-1",
			RequestID:        &requestID,
			DispatchedFromID: "bank-1",
			DispatchedToID:   "fac-1",
			Status:           status,
			FromStock:        fromStock,
			Quantity:         5,
		}
	}

	tests := []struct {
		name     string
		status   constant.DistributionStatus
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: dispatch shipment",
			status: constant.DistributionStatusInTransit,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.distributionRepo.On("GetForUpdateTx", mock.Anything, tx, "dist-1").
					Return(baseDist(constant.DistributionStatusPendingReceive, true), nil).Once()
				f.distributionRepo.On("UpdateStatusTx", mock.Anything, tx, "dist-1", constant.DistributionStatusInTransit, mock.Anything, mock.Anything).
					Return(nil).Once()

				f.trackingRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(s *model.TrackState) bool {
					return s.Status == constant.TrackingStatusDispatched
				})).Return(nil).Once()
				f.requestRepo.On("UpdateProcessingStatusTx", mock.Anything, tx, "req-1", constant.ProcessingStatusDispatched).
					Return(nil).Once()
			},
		},
		{
			name:   "success: delivery completes the request",
			status: constant.DistributionStatusDelivered,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.distributionRepo.On("GetForUpdateTx", mock.Anything, tx, "dist-1").
					Return(baseDist(constant.DistributionStatusInTransit, true), nil).Once()
				f.distributionRepo.On("UpdateStatusTx", mock.Anything, tx, "dist-1", constant.DistributionStatusDelivered, mock.Anything, mock.Anything).
					Return(nil).Once()

				f.trackingRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(s *model.TrackState) bool {
					return s.Status == constant.TrackingStatusReceived
				})).Return(nil).Once()
				f.requestRepo.On("UpdateProcessingStatusTx", mock.Anything, tx, "req-1", constant.ProcessingStatusCompleted).
					Return(nil).Once()
				f.requestRepo.On("UpdateStatusTx", mock.Anything, tx, "req-1", constant.RequestStatusCompleted).
					Return(nil).Once()
			},
		},
		{
			name:   "success: return restores the deducted lots",
			status: constant.DistributionStatusReturned,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.distributionRepo.On("GetForUpdateTx", mock.Anything, tx, "dist-1").
					Return(baseDist(constant.DistributionStatusInTransit, true), nil).Once()
				f.distributionRepo.On("UpdateStatusTx", mock.Anything, tx, "dist-1", constant.DistributionStatusReturned, mock.Anything, mock.Anything).
					Return(nil).Once()

				f.trackingRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(nil).Once()

				f.distributionRepo.On("GetConsumptionsTx", mock.Anything, tx, "dist-1").
					Return([]model.LotConsumption{
						{LotID: "lot-a", Quantity: 3},
						{LotID: "lot-b", Quantity: 2},
					}, nil).Once()
				f.inventoryRepo.On("RestoreLotTx", mock.Anything, tx, "lot-a", 3).Return(nil).Once()
				f.inventoryRepo.On("RestoreLotTx", mock.Anything, tx, "lot-b", 2).Return(nil).Once()

				f.requestRepo.On("UpdateProcessingStatusTx", mock.Anything, tx, "req-1", constant.ProcessingStatusNotStarted).
					Return(nil).Once()
			},
		},
		{
			name:   "success: cancelling a shipment not from stock restores nothing",
			status: constant.DistributionStatusCancelled,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.distributionRepo.On("GetForUpdateTx", mock.Anything, tx, "dist-1").
					Return(baseDist(constant.DistributionStatusPendingReceive, false), nil).Once()
				f.distributionRepo.On("UpdateStatusTx", mock.Anything, tx, "dist-1", constant.DistributionStatusCancelled, mock.Anything, mock.Anything).
					Return(nil).Once()

				f.trackingRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.requestRepo.On("UpdateProcessingStatusTx", mock.Anything, tx, "req-1", constant.ProcessingStatusNotStarted).
					Return(nil).Once()
			},
		},
		{
			name:   "error: delivered shipment cannot move again",
			status: constant.DistributionStatusInTransit,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.distributionRepo.On("GetForUpdateTx", mock.Anything, tx, "dist-1").
					Return(baseDist(constant.DistributionStatusDelivered, true), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidState,
		},
		{
			name:   "error: distribution not found",
			status: constant.DistributionStatusInTransit,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.distributionRepo.On("GetForUpdateTx", mock.Anything, tx, "dist-1").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appdistribution.NewDistributionApp(f.config, f.txRepo, f.requestRepo, f.inventoryRepo, f.distributionRepo, f.trackingRepo, f.facilityRepo, nil)

			err := app.UpdateStatus(context.Background(), "dist-1", &model.UpdateDistributionStatusRequest{Status: tt.status})
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateStatus() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestDistributionApp_Delete(t *testing.T) {
	type fields struct {
		config           *config.Config
		txRepo           *txmocks.TxRepository
		requestRepo      *requestmocks.RequestRepository
		inventoryRepo    *inventorymocks.InventoryRepository
		distributionRepo *distributionmocks.DistributionRepository
		trackingRepo     *trackingmocks.TrackingRepository
		facilityRepo     *facilitymocks.FacilityRepository
	}
	newFields := func(t *testing.T) fields {
		return fields{
			config:           &config.Config{},
			txRepo:           txmocks.NewTxRepository(t),
			requestRepo:      requestmocks.NewRequestRepository(t),
			inventoryRepo:    inventorymocks.NewInventoryRepository(t),
			distributionRepo: distributionmocks.NewDistributionRepository(t),
			trackingRepo:     trackingmocks.NewTrackingRepository(t),
			facilityRepo:     facilitymocks.NewFacilityRepository(t),
		}
	}
	requestID := "req-1"

	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: deleting a pending shipment restores stock",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.distributionRepo.On("GetForUpdateTx", mock.Anything, tx, "dist-1").
					Return(&model.Distribution{
						ID:             "dist-1",
						RequestID:      &requestID,
						DispatchedToID: "fac-1",
						Status:         constant.DistributionStatusPendingReceive,
						FromStock:      true,
					}, nil).Once()

				f.distributionRepo.On("GetConsumptionsTx", mock.Anything, tx, "dist-1").
					Return([]model.LotConsumption{{LotID: "lot-a", Quantity: 5}}, nil).Once()
				f.inventoryRepo.On("RestoreLotTx", mock.Anything, tx, "lot-a", 5).Return(nil).Once()

				f.requestRepo.On("UpdateProcessingStatusTx", mock.Anything, tx, "req-1", constant.ProcessingStatusNotStarted).
					Return(nil).Once()
				f.distributionRepo.On("DeleteTx", mock.Anything, tx, "dist-1").Return(nil).Once()
			},
		},
		{
			name: "error: dispatched shipment cannot be deleted",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.distributionRepo.On("GetForUpdateTx", mock.Anything, tx, "dist-1").
					Return(&model.Distribution{
						ID:     "dist-1",
						Status: constant.DistributionStatusInTransit,
					}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidState,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appdistribution.NewDistributionApp(f.config, f.txRepo, f.requestRepo, f.inventoryRepo, f.distributionRepo, f.trackingRepo, f.facilityRepo, nil)

			err := app.Delete(context.Background(), "dist-1")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Delete() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}
