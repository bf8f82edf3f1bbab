package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/satriawidya/bloodlink/constant"
	"github.com/satriawidya/bloodlink/model"
	facilityrepo "github.com/satriawidya/bloodlink/repository/facility"
	inventoryrepo "github.com/satriawidya/bloodlink/repository/inventory"
	"github.com/satriawidya/bloodlink/utils/errors"
	"github.com/satriawidya/bloodlink/utils/generator"
	"github.com/satriawidya/bloodlink/utils/logger"
	"go.uber.org/zap"
)

type InventoryApp interface {
	AddLot(ctx context.Context, bloodBankID string, req *model.AddLotRequest) (*model.InventoryLot, error)
	ListByBloodBank(ctx context.Context, bloodBankID string) ([]model.InventoryLot, error)
	ListExpiring(ctx context.Context, bloodBankID string, withinDays int) ([]model.InventoryLot, error)
}

type inventoryAppImpl struct {
	inventoryRepo inventoryrepo.InventoryRepository
	facilityRepo  facilityrepo.FacilityRepository
}

func NewInventoryApp(inventoryRepo inventoryrepo.InventoryRepository, facilityRepo facilityrepo.FacilityRepository) InventoryApp {
	return &inventoryAppImpl{inventoryRepo: inventoryRepo, facilityRepo: facilityRepo}
}

func (s *inventoryAppImpl) AddLot(ctx context.Context, bloodBankID string, req *model.AddLotRequest) (*model.InventoryLot, error) {
	bank, err := s.facilityRepo.GetBloodBank(ctx, bloodBankID)
	if err != nil {
		logger.Error("[AddLot] get blood bank", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if bank == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	var expiry time.Time
	if req.ExpiryDate != "" {
		expiry, err = time.Parse(constant.DateLayout, req.ExpiryDate)
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
	} else {
		expiry = generator.ExpiryDate(req.BloodProduct, time.Now())
	}

	lot := &model.InventoryLot{
		ID:           uuid.NewString(),
		BloodBankID:  bloodBankID,
		BloodProduct: req.BloodProduct,
		BloodType:    req.BloodType,
		Quantity:     req.Quantity,
		ExpiryDate:   expiry,
	}
	if err := s.inventoryRepo.InsertLot(ctx, lot); err != nil {
		logger.Error("[AddLot] insert lot", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return lot, nil
}

func (s *inventoryAppImpl) ListByBloodBank(ctx context.Context, bloodBankID string) ([]model.InventoryLot, error) {
	lots, err := s.inventoryRepo.ListByBloodBank(ctx, bloodBankID)
	if err != nil {
		logger.Error("[ListByBloodBank] list lots", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return lots, nil
}

func (s *inventoryAppImpl) ListExpiring(ctx context.Context, bloodBankID string, withinDays int) ([]model.InventoryLot, error) {
	if withinDays <= 0 {
		withinDays = 7
	}
	before := time.Now().AddDate(0, 0, withinDays)
	lots, err := s.inventoryRepo.ListExpiring(ctx, bloodBankID, before)
	if err != nil {
		logger.Error("[ListExpiring] list lots", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return lots, nil
}
