package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/jose-valero/miku-logger/internal/infra/config"
	"github.com/jose-valero/miku-logger/internal/infra/logging"
	"github.com/jose-valero/miku-logger/internal/infra/storage"
)

func handler(ctx context.Context) (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	log := logging.New(cfg.LogLevel, "json")

	pool, err := storage.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return "", fmt.Errorf("open: %w", err)
	}
	defer pool.Close()

	if err := storage.Migrate(ctx, pool); err != nil {
		log.Error("migrate", "err", err)
		return "", fmt.Errorf("migrate: %w", err)
	}
	log.Info("migrations applied")
	return "ok", nil
}

func main() {
	slog.SetDefault(logging.New("info", "json"))
	lambda.Start(handler)
}
