package request

import (
	"context"

	"github.com/google/uuid"
	"github.com/satriawidya/bloodlink/constant"
	"github.com/satriawidya/bloodlink/model"
	notificationrepo "github.com/satriawidya/bloodlink/repository/notification"
	requestrepo "github.com/satriawidya/bloodlink/repository/request"
	"github.com/satriawidya/bloodlink/utils/errors"
	"github.com/satriawidya/bloodlink/utils/logger"
	"go.uber.org/zap"
)

type RequestApp interface {
	Create(ctx context.Context, userID uint64, req *model.CreateRequestRequest) (*model.BloodRequest, error)
	Get(ctx context.Context, id string) (*model.BloodRequest, error)
	ListByFacility(ctx context.Context, facilityID string) ([]model.BloodRequest, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
}

type requestAppImpl struct {
	requestRepo      requestrepo.RequestRepository
	notificationRepo notificationrepo.NotificationRepository
}

func NewRequestApp(requestRepo requestrepo.RequestRepository, notificationRepo notificationrepo.NotificationRepository) RequestApp {
	return &requestAppImpl{requestRepo: requestRepo, notificationRepo: notificationRepo}
}

func (s *requestAppImpl) Create(ctx context.Context, userID uint64, req *model.CreateRequestRequest) (*model.BloodRequest, error) {
	priority := req.Priority
	if priority == "" {
		priority = "not_urgent"
	}

	bloodRequest := &model.BloodRequest{
		ID:                uuid.NewString(),
		FacilityID:        req.FacilityID,
		RequesterID:       userID,
		BloodProduct:      req.BloodProduct,
		BloodType:         req.BloodType,
		QuantityRequested: req.Quantity,
		Status:            constant.RequestStatusPending,
		ProcessingStatus:  constant.ProcessingStatusNotStarted,
		Priority:          priority,
		Notes:             req.Notes,
	}
	if err := s.requestRepo.Insert(ctx, bloodRequest); err != nil {
		logger.Error("[Create] insert request", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Request confirmation is informational, failure does not fail the create.
	notification := &model.Notification{
		ID:     uuid.NewString(),
		UserID: userID,
		Title:  "Blood request submitted",
		Body:   "Your request for " + req.BloodProduct + " (" + req.BloodType + ") has been submitted.",
	}
	if err := s.notificationRepo.Insert(ctx, notification); err != nil {
		logger.Warn("[Create] insert notification", zap.String("error", err.Error()))
	}

	return bloodRequest, nil
}

func (s *requestAppImpl) Get(ctx context.Context, id string) (*model.BloodRequest, error) {
	bloodRequest, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[Get] get request", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if bloodRequest == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return bloodRequest, nil
}

func (s *requestAppImpl) ListByFacility(ctx context.Context, facilityID string) ([]model.BloodRequest, error) {
	requests, err := s.requestRepo.ListByFacility(ctx, facilityID)
	if err != nil {
		logger.Error("[ListByFacility] list requests", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return requests, nil
}

func (s *requestAppImpl) Approve(ctx context.Context, id string) error {
	return s.transition(ctx, id, constant.RequestStatusApproved)
}

func (s *requestAppImpl) Reject(ctx context.Context, id string) error {
	return s.transition(ctx, id, constant.RequestStatusRejected)
}

func (s *requestAppImpl) Cancel(ctx context.Context, id string) error {
	return s.transition(ctx, id, constant.RequestStatusCancelled)
}

// transition moves a pending request to a terminal review status.
func (s *requestAppImpl) transition(ctx context.Context, id string, status constant.RequestStatus) error {
	bloodRequest, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[transition] get request", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if bloodRequest == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if bloodRequest.Status != constant.RequestStatusPending {
		return errors.SetCustomError(constant.ErrInvalidState)
	}

	if err := s.requestRepo.UpdateStatus(ctx, id, status); err != nil {
		logger.Error("[transition] update status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
