package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Overland-East-Bay/intergalactic-planner/internal/adapters/httpapi"
	memdestinationrepo "github.com/Overland-East-Bay/intergalactic-planner/internal/adapters/memory/destinationrepo"
	memidempotency "github.com/Overland-East-Bay/intergalactic-planner/internal/adapters/memory/idempotency"
	"github.com/Overland-East-Bay/intergalactic-planner/internal/app/catalog"
	"github.com/Overland-East-Bay/intergalactic-planner/internal/app/roster"
	platformclock "github.com/Overland-East-Bay/intergalactic-planner/internal/platform/clock"
	"github.com/Overland-East-Bay/intergalactic-planner/internal/platform/config"
	"github.com/Overland-East-Bay/intergalactic-planner/internal/platform/log"
)

func main() {
	ctx := context.Background()

	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		_ = log.Init("info")
		log.Fatalf(ctx, "invalid config: %v", err)
	}
	if err := log.Init(cfg.Log.Level); err != nil {
		log.Warnf(ctx, "%v; using info", err)
	}

	clk := platformclock.NewSystemClock()

	catalogSvc := catalog.NewService(memdestinationrepo.NewRepo())
	rosterSvc := roster.NewService()
	idemStore := memidempotency.NewStore(clk, memidempotency.DefaultTTL)

	api := httpapi.NewServer(catalogSvc, rosterSvc, idemStore)
	handler := httpapi.NewRouter(api)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	// Graceful shutdown
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof(ctx, "api listening on :%s plan=%s", cfg.Server.Port, api.PlanID)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf(ctx, "listen: %v", err)
		}
	}()

	<-sigCtx.Done()
	log.Infof(ctx, "shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf(ctx, "shutdown: %v", err)
	}
}
