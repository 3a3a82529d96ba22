package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"aidproof/internal/auditlog"
	"aidproof/internal/auditlog/handler"
	"aidproof/internal/auditlog/metrics"
	"aidproof/internal/ledger"
	"aidproof/internal/ledger/dedup"
	"aidproof/internal/platform/config"
	"aidproof/internal/platform/httpserver"
	"aidproof/internal/platform/logger"
	platformredis "aidproof/internal/platform/redis"
	httptransport "aidproof/internal/transport/http"
	"aidproof/pkg/platform/circuit"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	ctx := context.Background()

	store, closeStore, err := buildStore(ctx, cfg)
	if err != nil {
		log.Error("store init failed", "backend", cfg.StoreBackend, "error", err.Error())
		os.Exit(1)
	}
	defer closeStore()

	anchorer, err := buildAnchorer(cfg, log)
	if err != nil {
		log.Error("ledger init failed", "backend", cfg.LedgerBackend, "error", err.Error())
		os.Exit(1)
	}

	service := auditlog.NewService(store, anchorer, log, metrics.New(prometheus.DefaultRegisterer))
	router := httptransport.NewRouter(handler.New(service, log), log)
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting aidproof server",
		"addr", cfg.Addr,
		"store", cfg.StoreBackend,
		"ledger", cfg.LedgerBackend,
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err.Error())
	}
}

func buildStore(ctx context.Context, cfg config.Server) (auditlog.Store, func(), error) {
	switch cfg.StoreBackend {
	case "memory":
		return auditlog.NewInMemoryStore(), func() {}, nil
	case "file":
		fs, err := auditlog.NewFileStore(cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() { _ = fs.Close() }, nil
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		ps, err := auditlog.NewPostgres(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return ps, pool.Close, nil
	default:
		return nil, nil, errors.New("unknown store backend " + cfg.StoreBackend)
	}
}

func buildAnchorer(cfg config.Server, log *slog.Logger) (ledger.Anchorer, error) {
	var backend ledger.Anchorer
	switch cfg.LedgerBackend {
	case "local":
		local, err := ledger.NewLocalLedger(cfg.LocalLedgerDir)
		if err != nil {
			return nil, err
		}
		backend = local
	case "hedera":
		hed, err := ledger.NewHedera(ledger.HederaConfig{
			Network:     cfg.HederaNetwork,
			OperatorID:  cfg.HederaOperatorID,
			OperatorKey: cfg.HederaOperatorKey,
		})
		if err != nil {
			return nil, err
		}
		backend = hed
	default:
		return nil, errors.New("unknown ledger backend " + cfg.LedgerBackend)
	}

	var cache dedup.Cache
	if client, err := platformredis.New(cfg.RedisAddr); err != nil {
		return nil, err
	} else if client != nil {
		cache = dedup.NewRedisCache(client.Client, 0)
	} else {
		cache = dedup.NewInMemoryCache()
	}

	breaker := circuit.New("ledger", circuit.WithFailureThreshold(5), circuit.WithSuccessThreshold(1))
	return ledger.NewResilient(backend, cache, breaker, log, ledger.ResilientConfig{
		Timeout: cfg.AnchorTimeout,
		Retries: cfg.AnchorRetries,
	}), nil
}
