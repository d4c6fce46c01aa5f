package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"estimator/internal/config"
	"estimator/internal/mail"
	"estimator/internal/pipeline"
	"estimator/internal/pricing"
)

func main() {
	cfg, err := config.Load()
	must(err)

	log, err := zap.NewProduction()
	must(err)
	defer log.Sync()

	conn, err := mail.NewIMAPConnector(cfg)
	must(err)

	catalog := pricing.LoadCatalog(cfg.PricingPath)
	svc := pipeline.NewEstimateService(catalog)
	intake := mail.NewIntake(cfg, conn, svc, log)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	must(intake.Run(ctx))
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
