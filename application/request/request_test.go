package request_test

import (
	"context"
	"errors"
	"testing"

	apprequest "github.com/satriawidya/bloodlink/application/request"
	"github.com/satriawidya/bloodlink/constant"
	notificationmocks "github.com/satriawidya/bloodlink/mocks/repository/notification"
	requestmocks "github.com/satriawidya/bloodlink/mocks/repository/request"
	"github.com/satriawidya/bloodlink/model"
	cerr "github.com/satriawidya/bloodlink/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestRequestApp_Create(t *testing.T) {
	requestRepo := requestmocks.NewRequestRepository(t)
	notificationRepo := notificationmocks.NewNotificationRepository(t)

	requestRepo.On("Insert", mock.Anything, mock.MatchedBy(func(r *model.BloodRequest) bool {
		return r.ID != "" &&
			r.FacilityID == "fac-1" &&
			r.RequesterID == 7 &&
			r.Status == constant.RequestStatusPending &&
			r.ProcessingStatus == constant.ProcessingStatusNotStarted &&
			r.Priority == "not_urgent"
	})).Return(nil).Once()

	notificationRepo.On("Insert", mock.Anything, mock.MatchedBy(func(n *model.Notification) bool {
		return n.UserID == 7
	})).Return(nil).Once()

	app := apprequest.NewRequestApp(requestRepo, notificationRepo)
	got, err := app.Create(context.Background(), 7, &model.CreateRequestRequest{
		FacilityID:   "fac-1",
		BloodProduct: "plasma",
		BloodType:    "A+",
		Quantity:     5,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got.QuantityRequested != 5 {
		t.Fatalf("Create() QuantityRequested = %d, want 5", got.QuantityRequested)
	}
}

func TestRequestApp_Create_notificationFailureIsIgnored(t *testing.T) {
	requestRepo := requestmocks.NewRequestRepository(t)
	notificationRepo := notificationmocks.NewNotificationRepository(t)

	requestRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()
	notificationRepo.On("Insert", mock.Anything, mock.Anything).
		Return(errors.New("db down")).Once()

	app := apprequest.NewRequestApp(requestRepo, notificationRepo)
	if _, err := app.Create(context.Background(), 7, &model.CreateRequestRequest{
		FacilityID:   "fac-1",
		BloodProduct: "plasma",
		BloodType:    "A+",
		Quantity:     5,
	}); err != nil {
		t.Fatalf("Create() error = %v, want nil", err)
	}
}

func TestRequestApp_Approve(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(requestRepo *requestmocks.RequestRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: approve pending request",
			mockCall: func(requestRepo *requestmocks.RequestRepository) {
				requestRepo.On("GetByID", mock.Anything, "req-1").
					Return(&model.BloodRequest{ID: "req-1", Status: constant.RequestStatusPending}, nil).Once()
				requestRepo.On("UpdateStatus", mock.Anything, "req-1", constant.RequestStatusApproved).
					Return(nil).Once()
			},
		},
		{
			name: "error: request not found",
			mockCall: func(requestRepo *requestmocks.RequestRepository) {
				requestRepo.On("GetByID", mock.Anything, "req-1").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: request already rejected",
			mockCall: func(requestRepo *requestmocks.RequestRepository) {
				requestRepo.On("GetByID", mock.Anything, "req-1").
					Return(&model.BloodRequest{ID: "req-1", Status: constant.RequestStatusRejected}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidState,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			requestRepo := requestmocks.NewRequestRepository(t)
			notificationRepo := notificationmocks.NewNotificationRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(requestRepo)
			}
			app := apprequest.NewRequestApp(requestRepo, notificationRepo)

			err := app.Approve(context.Background(), "req-1")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Approve() error = %v, wantErr %v", err, tt.wantErr)
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
