package notification

import (
	"context"

	"github.com/satriawidya/bloodlink/constant"
	"github.com/satriawidya/bloodlink/model"
	notificationrepo "github.com/satriawidya/bloodlink/repository/notification"
	"github.com/satriawidya/bloodlink/utils/errors"
	"github.com/satriawidya/bloodlink/utils/logger"
	"go.uber.org/zap"
)

type NotificationApp interface {
	ListByUser(ctx context.Context, userID uint64) ([]model.Notification, error)
	MarkRead(ctx context.Context, id string, userID uint64) error
}

type notificationAppImpl struct {
	notificationRepo notificationrepo.NotificationRepository
}

func NewNotificationApp(notificationRepo notificationrepo.NotificationRepository) NotificationApp {
	return &notificationAppImpl{notificationRepo: notificationRepo}
}

func (s *notificationAppImpl) ListByUser(ctx context.Context, userID uint64) ([]model.Notification, error) {
	notifications, err := s.notificationRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("[ListByUser] list notifications", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return notifications, nil
}

func (s *notificationAppImpl) MarkRead(ctx context.Context, id string, userID uint64) error {
	if err := s.notificationRepo.MarkRead(ctx, id, userID); err != nil {
		logger.Error("[MarkRead] mark notification read", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
