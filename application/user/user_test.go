package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appuser "github.com/satriawidya/bloodlink/application/user"
	"github.com/satriawidya/bloodlink/cmd/config"
	"github.com/satriawidya/bloodlink/constant"
	redismocks "github.com/satriawidya/bloodlink/mocks/repository/redis"
	usermocks "github.com/satriawidya/bloodlink/mocks/repository/user"
	"github.com/satriawidya/bloodlink/model"
	cerr "github.com/satriawidya/bloodlink/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func authConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret",
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
		},
	}
}

func TestUserApp_Register(t *testing.T) {
	type fields struct {
		config    *config.Config
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.Repository
	}
	tests := []struct {
		name     string
		req      *model.RegisterRequest
		mockCall func(f fields)
		want     *model.RegisterResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: register new user",
			req: &model.RegisterRequest{
				Name:     "Test User",
				Email:    "test@example.com",
				Phone:    "081234567890",
				Password: "password123",
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Phone: "081234567890"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return ent.Name == "Test User" &&
							ent.Email == "test@example.com" &&
							ent.PasswordHash != ""
					})).
					Return(&model.UserEntity{
						ID:    1,
						Name:  "Test User",
						Email: "test@example.com",
					}, nil).
					Once()
			},
			want: &model.RegisterResponse{
				Name:  "Test User",
				Email: "test@example.com",
			},
		},
		{
			name: "error: email already exists",
			req: &model.RegisterRequest{
				Name:     "Test User",
				Email:    "taken@example.com",
				Phone:    "081234567890",
				Password: "password123",
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "taken@example.com"}).
					Return(&model.UserEntity{ID: 2}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				config:    authConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appuser.NewUserApp(f.config, f.userRepo, f.redisRepo)

			got, err := app.Register(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
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
			if got.Email != tt.want.Email || got.Name != tt.want.Name {
				t.Fatalf("Register() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	type fields struct {
		config    *config.Config
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.Repository
	}
	tests := []struct {
		name     string
		req      *model.LoginRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: login with email",
			req:  &model.LoginRequest{Identifier: "test@example.com", Password: "password123"},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(&model.UserEntity{
						ID:           1,
						Name:         "Test User",
						Email:        "test@example.com",
						PasswordHash: string(hash),
					}, nil).
					Once()

				f.redisRepo.
					On("SetSession", mock.Anything, mock.Anything, uint64(1), time.Hour).
					Return(nil).
					Once()
			},
		},
		{
			name: "error: wrong password",
			req:  &model.LoginRequest{Identifier: "test@example.com", Password: "wrong"},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(&model.UserEntity{
						ID:           1,
						PasswordHash: string(hash),
					}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: unknown user",
			req:  &model.LoginRequest{Identifier: "nobody@example.com", Password: "password123"},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "nobody@example.com"}).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				config:    authConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appuser.NewUserApp(f.config, f.userRepo, f.redisRepo)

			got, err := app.Login(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
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
			if got.Token == "" {
				t.Fatal("Login() token should not be empty")
			}
		})
	}
}
