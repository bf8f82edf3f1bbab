package facility

import (
	"context"

	"github.com/google/uuid"
	"github.com/satriawidya/bloodlink/constant"
	"github.com/satriawidya/bloodlink/model"
	facilityrepo "github.com/satriawidya/bloodlink/repository/facility"
	"github.com/satriawidya/bloodlink/utils/errors"
	"github.com/satriawidya/bloodlink/utils/logger"
	"go.uber.org/zap"
)

type FacilityApp interface {
	CreateFacility(ctx context.Context, req *model.CreateFacilityRequest) (*model.Facility, error)
	GetFacility(ctx context.Context, id string) (*model.Facility, error)
	CreateBloodBank(ctx context.Context, req *model.CreateBloodBankRequest) (*model.BloodBank, error)
	ListBloodBanks(ctx context.Context, facilityID string) ([]model.BloodBank, error)
}

type facilityAppImpl struct {
	facilityRepo facilityrepo.FacilityRepository
}

func NewFacilityApp(facilityRepo facilityrepo.FacilityRepository) FacilityApp {
	return &facilityAppImpl{facilityRepo: facilityRepo}
}

func (s *facilityAppImpl) CreateFacility(ctx context.Context, req *model.CreateFacilityRequest) (*model.Facility, error) {
	facility := &model.Facility{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := s.facilityRepo.InsertFacility(ctx, facility); err != nil {
		logger.Error("[CreateFacility] insert facility", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return facility, nil
}

func (s *facilityAppImpl) GetFacility(ctx context.Context, id string) (*model.Facility, error) {
	facility, err := s.facilityRepo.GetFacility(ctx, id)
	if err != nil {
		logger.Error("[GetFacility] get facility", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if facility == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return facility, nil
}

func (s *facilityAppImpl) CreateBloodBank(ctx context.Context, req *model.CreateBloodBankRequest) (*model.BloodBank, error) {
	facility, err := s.facilityRepo.GetFacility(ctx, req.FacilityID)
	if err != nil {
		logger.Error("[CreateBloodBank] get facility", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if facility == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	bank := &model.BloodBank{
		ID:         uuid.NewString(),
		FacilityID: req.FacilityID,
		Name:       req.Name,
	}
	if err := s.facilityRepo.InsertBloodBank(ctx, bank); err != nil {
		logger.Error("[CreateBloodBank] insert blood bank", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return bank, nil
}

func (s *facilityAppImpl) ListBloodBanks(ctx context.Context, facilityID string) ([]model.BloodBank, error) {
	banks, err := s.facilityRepo.ListBloodBanks(ctx, facilityID)
	if err != nil {
		logger.Error("[ListBloodBanks] list blood banks", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return banks, nil
}
