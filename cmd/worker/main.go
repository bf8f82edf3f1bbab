package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/satriawidya/bloodlink/cmd/config"
	"github.com/satriawidya/bloodlink/thirdparty/rabbitmq"
	"github.com/satriawidya/bloodlink/utils/logger"
	"go.uber.org/zap"
)

// Worker that consumes dashboard refresh messages and calls the internal
// refresh endpoint on the API.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	consumer, err := rabbitmq.NewConsumer(
		cfg.Rabbit.Host, cfg.Rabbit.Port, cfg.Rabbit.User, cfg.Rabbit.Password,
		cfg.Internal.APIURL, cfg.Internal.APIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	logger.Info("Dashboard refresh worker running")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info("Shutting down worker")
}
