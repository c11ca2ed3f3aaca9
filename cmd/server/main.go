// Package main provides the planner API server entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/conspirant/kcet-planner-go/internal/backup"
	"github.com/conspirant/kcet-planner-go/internal/buildinfo"
	"github.com/conspirant/kcet-planner-go/internal/catalog"
	"github.com/conspirant/kcet-planner-go/internal/config"
	"github.com/conspirant/kcet-planner-go/internal/cutoff"
	"github.com/conspirant/kcet-planner-go/internal/logger"
	"github.com/conspirant/kcet-planner-go/internal/metrics"
	"github.com/conspirant/kcet-planner-go/internal/payment"
	"github.com/conspirant/kcet-planner-go/internal/sentry"
	"github.com/conspirant/kcet-planner-go/internal/server"
	"github.com/conspirant/kcet-planner-go/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewWithOptions(cfg.LogLevel, logger.Options{
		BetterStackToken:    cfg.BetterStackToken,
		BetterStackEndpoint: cfg.BetterStackEndpoint,
	})
	log.WithField("version", buildinfo.Version).Infof("Starting KCET planner server")

	if err := sentry.Initialize(sentry.Config{
		Token:       cfg.SentryToken,
		Host:        cfg.SentryHost,
		Environment: "production",
	}); err != nil {
		log.WithError(err).Warnf("Failed to initialize error tracking")
	}

	db, err := storage.New(cfg.SQLitePath())
	if err != nil {
		log.WithError(err).Errorf("Failed to connect to database")
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()
	log.WithField("path", cfg.SQLitePath()).Infof("Database connected")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewBuildInfoCollector())
	m := metrics.New(registry)
	log.Infof("Metrics initialized")

	cat := catalog.New()
	log.WithField("colleges", len(cat.Colleges())).
		WithField("branches", len(cat.Branches())).
		Infof("Catalog loaded")

	var objectStore *backup.Client
	if cfg.HasObjectStore() {
		objectStore, err = backup.New(context.Background(), backup.Config{
			Endpoint:    cfg.CutoffObjectEndpoint,
			AccessKeyID: cfg.CutoffObjectAccessKey,
			SecretKey:   cfg.CutoffObjectSecretKey,
			BucketName:  cfg.CutoffObjectBucket,
		})
		if err != nil {
			log.WithError(err).Warnf("Failed to create object store client")
			objectStore = nil
		}
	}

	dataset := loadDataset(cfg, objectStore, log)

	evaluator := cutoff.NewChanceEvaluator(cfg.RandomSeed)
	analyzer := cutoff.NewAnalyzer(dataset, evaluator)

	var orders server.OrderService
	if cfg.HasRazorpay() {
		orders = payment.New(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
		log.Infof("Payment provider configured")
	} else {
		log.Infof("Razorpay credentials not set, payment endpoints disabled")
	}

	var mirror server.SnapshotMirror
	if cfg.SnapshotBackupEnabled && objectStore != nil {
		mirror = backup.NewMirror(objectStore, "snapshots", log)
		log.Infof("Snapshot backup enabled")
	}

	srv := server.New(server.Config{
		PDFPricePaise:       int64(cfg.PDFPricePaise),
		AnalyticsPricePaise: int64(cfg.AnalyticsPricePaise),
		MetricsUsername:     cfg.MetricsUsername,
		MetricsPassword:     cfg.MetricsPassword,
	}, cat, dataset, analyzer, db, orders, mirror, m, log)

	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(securityHeadersMiddleware())
	router.Use(loggingMiddleware(log, m))
	if sentry.IsEnabled() {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	srv.Routes(router, registry)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.WithField("port", cfg.Port).Infof("Server starting")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Infof("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Errorf("Server error")
	}

	sentry.Flush(2 * time.Second)
	if err := db.Close(); err != nil {
		log.WithError(err).Errorf("Failed to close database")
	}
	log.Infof("Server stopped")
}

// loadDataset reads the cutoff dataset from the object store when
// configured, otherwise from the local path. Any failure degrades to an
// empty dataset: the planner still serves option management without
// historical data.
func loadDataset(cfg *config.Config, store *backup.Client, log *logger.Logger) *cutoff.Dataset {
	var (
		dataset *cutoff.Dataset
		err     error
	)
	if store != nil {
		loadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		dataset, err = cutoff.LoadObject(loadCtx, store, cfg.CutoffObjectKey)
		if err != nil {
			log.WithError(err).WithField("key", cfg.CutoffObjectKey).
				Warnf("Failed to fetch cutoff dataset from object store")
		}
	} else {
		dataset, err = cutoff.LoadFile(cfg.CutoffDataPath)
		if err != nil {
			log.WithError(err).WithField("path", cfg.CutoffDataPath).
				Warnf("Failed to load cutoff dataset, analysis will report no matches")
		}
	}
	if dataset == nil {
		dataset = cutoff.NewDataset(nil, cutoff.Metadata{})
	}
	log.WithField("records", dataset.Len()).Infof("Cutoff dataset loaded")
	return dataset
}
