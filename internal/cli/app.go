package cli

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"ml-platform/internal/adapters/primary/http/handlers"
	"ml-platform/internal/adapters/secondary/kserve"
	"ml-platform/internal/adapters/secondary/memory"
	"ml-platform/internal/adapters/secondary/postgres"
	"ml-platform/internal/adapters/secondary/prometheus"
	"ml-platform/internal/adapters/secondary/s3"
	"ml-platform/internal/adapters/secondary/snapshot"
	"ml-platform/internal/adapters/secondary/sqlite"
	"ml-platform/internal/config"
	"ml-platform/internal/core/ports/output"
	"ml-platform/internal/core/services"
)

// app is the wired process: store, services and router, plus whatever
// must be released on shutdown.
type app struct {
	store   *memory.Store
	router  *gin.Engine
	closers []func()
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// newApp wires every adapter enabled in cfg. Optional integrations that
// fail to initialize are logged and skipped.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{}

	var recorder ports.MetricsRecorder = ports.NoopRecorder{}
	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		r := prometheus.NewRecorder()
		recorder = r
		metricsHandler = r.Handler()
		log.Info("prometheus metrics enabled")
	}

	writers := a.snapshotWriters(ctx, cfg)

	store, err := memory.NewSeededStore(
		memory.WithSnapshotWriters(writers...),
		memory.WithRecorder(recorder),
	)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("seed store: %w", err)
	}
	a.store = store

	// KServe Client (Optional - based on config)
	var kserveClient ports.KServeClient
	if cfg.Kubernetes.Enabled {
		client, err := kserve.NewKServeClient(&cfg.Kubernetes)
		if err != nil {
			log.Warnf("KServe client init failed (continuing with local deployments): %v", err)
		} else {
			kserveClient = client
			log.Info("KServe client initialized")
		}
	} else {
		log.Info("KServe integration disabled")
	}

	h := handlers.New(
		services.NewProjectService(store),
		services.NewExperimentService(store, services.NewMetricSampler(cfg.Simulator.Seed), recorder),
		services.NewModelService(store, kserveClient, recorder),
		services.NewStatsService(store),
	)

	router, err := handlers.NewRouter(h, metricsHandler)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.router = router

	return a, nil
}

func (a *app) snapshotWriters(ctx context.Context, cfg *config.Config) []ports.SnapshotWriter {
	var writers []ports.SnapshotWriter

	if cfg.Snapshot.FilePath != "" {
		writers = append(writers, snapshot.NewFileWriter(cfg.Snapshot.FilePath))
		log.WithField("path", cfg.Snapshot.FilePath).Info("file snapshot sink enabled")
	}

	if cfg.Snapshot.SQLitePath != "" {
		w, err := sqlite.NewSnapshotWriter(cfg.Snapshot.SQLitePath)
		if err != nil {
			log.WithError(err).Warn("sqlite snapshot sink disabled")
		} else {
			writers = append(writers, w)
			a.closers = append(a.closers, func() { _ = w.Close() })
			log.WithField("path", cfg.Snapshot.SQLitePath).Info("sqlite snapshot sink enabled")
		}
	}

	if cfg.Database.Enabled {
		pool, err := postgres.NewPool(ctx, &cfg.Database)
		if err != nil {
			log.WithError(err).Warn("postgres snapshot sink disabled")
		} else {
			a.closers = append(a.closers, pool.Close)
			w, err := postgres.NewSnapshotRepository(ctx, pool)
			if err != nil {
				log.WithError(err).Warn("postgres snapshot sink disabled")
			} else {
				writers = append(writers, w)
				log.Info("postgres snapshot sink enabled")
			}
		}
	}

	if cfg.S3.Enabled {
		w, err := s3.NewSnapshotWriter(ctx, &cfg.S3)
		if err != nil {
			log.WithError(err).Warn("s3 snapshot sink disabled")
		} else {
			writers = append(writers, w)
			log.WithField("bucket", cfg.S3.Bucket).Info("s3 snapshot sink enabled")
		}
	}

	return writers
}
