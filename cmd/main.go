package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	dashboardapp "github.com/satriawidya/bloodlink/application/dashboard"
	distributionapp "github.com/satriawidya/bloodlink/application/distribution"
	facilityapp "github.com/satriawidya/bloodlink/application/facility"
	inventoryapp "github.com/satriawidya/bloodlink/application/inventory"
	notificationapp "github.com/satriawidya/bloodlink/application/notification"
	requestapp "github.com/satriawidya/bloodlink/application/request"
	userapp "github.com/satriawidya/bloodlink/application/user"
	"github.com/satriawidya/bloodlink/cmd/config"
	redisclient "github.com/satriawidya/bloodlink/cmd/redis"
	_ "github.com/satriawidya/bloodlink/docs"
	distributionRepo "github.com/satriawidya/bloodlink/repository/distribution"
	facilityRepo "github.com/satriawidya/bloodlink/repository/facility"
	inventoryRepo "github.com/satriawidya/bloodlink/repository/inventory"
	notificationRepo "github.com/satriawidya/bloodlink/repository/notification"
	redisRepo "github.com/satriawidya/bloodlink/repository/redis"
	requestRepo "github.com/satriawidya/bloodlink/repository/request"
	summaryRepo "github.com/satriawidya/bloodlink/repository/summary"
	trackingRepo "github.com/satriawidya/bloodlink/repository/tracking"
	txRepo "github.com/satriawidya/bloodlink/repository/tx"
	userRepo "github.com/satriawidya/bloodlink/repository/user"
	"github.com/satriawidya/bloodlink/scheduler"
	"github.com/satriawidya/bloodlink/thirdparty/rabbitmq"
	"github.com/satriawidya/bloodlink/transport"
	"github.com/satriawidya/bloodlink/utils/logger"
	"go.uber.org/zap"
)

// @title BLOODLINK API
// @version 1.0
// @description Blood bank distribution and dashboard API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// RabbitMQ publisher for post-commit dashboard refreshes. The API still
	// works without it, refreshes just wait for the scheduler.
	publisher, err := rabbitmq.NewPublisher(cfg.Rabbit.Host, cfg.Rabbit.Port, cfg.Rabbit.User, cfg.Rabbit.Password)
	if err != nil {
		logger.Warn("err connect rabbitmq, continuing without publisher", zap.Error(err))
		publisher = nil
	} else {
		defer publisher.Close()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	RedisRepo := redisRepo.NewRepository()
	RequestRepo := requestRepo.NewRequestRepository(db)
	InventoryRepo := inventoryRepo.NewInventoryRepository(db)
	DistributionRepo := distributionRepo.NewDistributionRepository(db)
	TrackingRepo := trackingRepo.NewTrackingRepository(db)
	SummaryRepo := summaryRepo.NewSummaryRepository(db)
	FacilityRepo := facilityRepo.NewFacilityRepository(db)
	NotificationRepo := notificationRepo.NewNotificationRepository(db)

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	RequestApp := requestapp.NewRequestApp(RequestRepo, NotificationRepo)
	DistributionApp := distributionapp.NewDistributionApp(cfg, TxRepo, RequestRepo, InventoryRepo, DistributionRepo, TrackingRepo, FacilityRepo, publisher)
	DashboardApp := dashboardapp.NewDashboardApp(cfg, SummaryRepo, FacilityRepo, RedisRepo)
	InventoryApp := inventoryapp.NewInventoryApp(InventoryRepo, FacilityRepo)
	FacilityApp := facilityapp.NewFacilityApp(FacilityRepo)
	NotificationApp := notificationapp.NewNotificationApp(NotificationRepo)

	// Background dashboard refresher
	schedCtx, schedCancel := context.WithCancel(context.Background())
	defer schedCancel()
	go scheduler.New(cfg, DashboardApp, FacilityRepo).Start(schedCtx)

	httpTransport := transport.NewTransport(&transport.RestHandler{
		UserApp:         UserApp,
		RequestApp:      RequestApp,
		DistributionApp: DistributionApp,
		DashboardApp:    DashboardApp,
		InventoryApp:    InventoryApp,
		FacilityApp:     FacilityApp,
		NotificationApp: NotificationApp,
	}, cfg.Internal.APIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
