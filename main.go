package main

import (
	"escrow-engine/internal/config"
	escrow "escrow-engine/internal/escrowService"
	"escrow-engine/internal/events"
	"escrow-engine/internal/ledger"
	"escrow-engine/internal/metrics"
	"escrow-engine/internal/models"
	"escrow-engine/internal/repository"
	"escrow-engine/internal/seed"
	"escrow-engine/internal/server"
	"escrow-engine/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}
	if err := utils.SetLevel(cfg.LogLevel); err != nil {
		utils.Fatal("failed to set log level", map[string]any{"error": err.Error()})
	}
	gin.SetMode(gin.ReleaseMode)

	escrowSvc, err := escrow.NewEscrowService(
		repository.NewMemoryRepo(),
		ledger.New(),
		models.Address(cfg.Owner),
		cfg.FeeBasisPoints,
		escrow.WithEventLog(events.NewLog()),
		escrow.WithMetrics(metrics.New(prometheus.DefaultRegisterer)),
	)
	if err != nil {
		utils.Fatal("failed to create escrow service", map[string]any{"error": err.Error()})
	}

	if err := seedFromFile(escrowSvc, cfg.SeedFile); err != nil {
		utils.Fatal("failed to apply seed file", map[string]any{"error": err.Error(), "path": cfg.SeedFile})
	}

	router := server.SetupRouter(escrowSvc, server.Options{
		CurrencyDecimals: cfg.CurrencyDecimals,
		Limiter:          server.NewClientLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		Metrics:          promhttp.Handler(),
	})

	utils.Info("starting escrow server", map[string]any{
		"addr":     cfg.Addr(),
		"owner":    cfg.Owner,
		"fee_bps":  cfg.FeeBasisPoints,
		"seed":     cfg.SeedFile,
		"rate_rps": cfg.RateLimitRPS,
	})
	if err := router.Run(cfg.Addr()); err != nil {
		utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
	}
}

// seedFromFile applies opening balances and listings through the engine; an empty path is a no-op
func seedFromFile(svc *escrow.EscrowService, path string) error {
	if path == "" {
		return nil
	}
	f, err := seed.Load(path)
	if err != nil {
		return err
	}
	listed, err := f.Apply(svc)
	if err != nil {
		return err
	}
	utils.Info("seed applied", map[string]any{
		"accounts": len(f.Balances),
		"listings": len(listed),
	})
	return nil
}
