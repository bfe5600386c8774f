package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FBenja/fleet-api/internal/adapters/httpapi"
	memdriverrepo "github.com/FBenja/fleet-api/internal/adapters/memory/driverrepo"
	memtriprepo "github.com/FBenja/fleet-api/internal/adapters/memory/triprepo"
	memuserrepo "github.com/FBenja/fleet-api/internal/adapters/memory/userrepo"
	memvehiclerepo "github.com/FBenja/fleet-api/internal/adapters/memory/vehiclerepo"
	postgres "github.com/FBenja/fleet-api/internal/adapters/postgres"
	pgdriverrepo "github.com/FBenja/fleet-api/internal/adapters/postgres/driverrepo"
	pgtriprepo "github.com/FBenja/fleet-api/internal/adapters/postgres/triprepo"
	pguserrepo "github.com/FBenja/fleet-api/internal/adapters/postgres/userrepo"
	pgvehiclerepo "github.com/FBenja/fleet-api/internal/adapters/postgres/vehiclerepo"
	"github.com/FBenja/fleet-api/internal/app/auth"
	"github.com/FBenja/fleet-api/internal/app/drivers"
	"github.com/FBenja/fleet-api/internal/app/trips"
	"github.com/FBenja/fleet-api/internal/app/vehicles"
	"github.com/FBenja/fleet-api/internal/platform/auth/password"
	"github.com/FBenja/fleet-api/internal/platform/auth/token"
	platformclock "github.com/FBenja/fleet-api/internal/platform/clock"
	"github.com/FBenja/fleet-api/internal/platform/config"
	driverrepoport "github.com/FBenja/fleet-api/internal/ports/out/driverrepo"
	triprepoport "github.com/FBenja/fleet-api/internal/ports/out/triprepo"
	userrepoport "github.com/FBenja/fleet-api/internal/ports/out/userrepo"
	vehiclerepoport "github.com/FBenja/fleet-api/internal/ports/out/vehiclerepo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	log := setupLogger(cfg.Env)

	clk := platformclock.NewSystemClock()

	var (
		userRepo    userrepoport.Repository
		vehicleRepo vehiclerepoport.Repository
		driverRepo  driverrepoport.Repository
		tripRepo    triprepoport.Repository
		cleanup     func()
	)

	switch cfg.StorageBackend {
	case "postgres":
		pool, err := postgres.NewPool(context.Background(), cfg.DatabaseURL, postgres.PoolOptions{})
		if err != nil {
			log.Error("postgres setup failed", "error", err)
			os.Exit(1)
		}
		cleanup = pool.Close

		userRepo = pguserrepo.NewRepo(pool)
		vehicleRepo = pgvehiclerepo.NewRepo(pool)
		driverRepo = pgdriverrepo.NewRepo(pool)
		tripRepo = pgtriprepo.NewRepo(pool)
	default:
		userRepo = memuserrepo.NewRepo()
		vehicleRepo = memvehiclerepo.NewRepo()
		driverRepo = memdriverrepo.NewRepo()
		tripRepo = memtriprepo.NewRepo()
	}

	if cleanup != nil {
		defer cleanup()
	}

	tokens := token.NewService(cfg.TokenSecret, cfg.TokenTTL, clk)
	hasher := password.NewHasher(cfg.BcryptCost)

	authSvc := auth.NewService(userRepo, hasher, tokens, clk)
	vehiclesSvc := vehicles.NewService(vehicleRepo, tripRepo, clk)
	driversSvc := drivers.NewService(driverRepo, tripRepo, clk)
	tripsSvc := trips.NewService(tripRepo, vehicleRepo, driverRepo, clk)

	api := httpapi.NewServer(authSvc, vehiclesSvc, driversSvc, tripsSvc, log)
	handler := httpapi.NewRouter(api)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("api listening", "port", cfg.Port, "backend", cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func setupLogger(env string) *slog.Logger {
	if env == "development" {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
