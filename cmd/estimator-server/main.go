package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"estimator/internal/config"
	"estimator/internal/pricing"
	"estimator/internal/server"
)

func main() {
	cfg, err := config.Load()
	must(err)

	log, err := zap.NewProduction()
	must(err)
	defer log.Sync()

	catalog := pricing.LoadCatalog(cfg.PricingPath)
	if len(catalog) == 0 {
		log.Warn("pricing catalog is empty; all items will be unpriced", zap.String("path", cfg.PricingPath))
	}

	srv := server.New(cfg, catalog, log)
	log.Info("estimator server listening", zap.Int("port", cfg.Port), zap.Int("catalogEntries", len(catalog)))
	must(srv.Router().Run(fmt.Sprintf(":%d", cfg.Port)))
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
