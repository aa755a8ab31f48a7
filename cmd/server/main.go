// Package main provides the campus assistant server entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/campusflow/campus-assistant-go/internal/auth"
	"github.com/campusflow/campus-assistant-go/internal/bot"
	"github.com/campusflow/campus-assistant-go/internal/buildinfo"
	"github.com/campusflow/campus-assistant-go/internal/config"
	"github.com/campusflow/campus-assistant-go/internal/emotion"
	"github.com/campusflow/campus-assistant-go/internal/genai"
	"github.com/campusflow/campus-assistant-go/internal/httpapi"
	"github.com/campusflow/campus-assistant-go/internal/knowledge"
	"github.com/campusflow/campus-assistant-go/internal/logger"
	"github.com/campusflow/campus-assistant-go/internal/metrics"
	"github.com/campusflow/campus-assistant-go/internal/modules/greeting"
	"github.com/campusflow/campus-assistant-go/internal/modules/info"
	"github.com/campusflow/campus-assistant-go/internal/modules/notes"
	"github.com/campusflow/campus-assistant-go/internal/modules/pyq"
	"github.com/campusflow/campus-assistant-go/internal/modules/wellbeing"
	"github.com/campusflow/campus-assistant-go/internal/objstore"
	"github.com/campusflow/campus-assistant-go/internal/ratelimit"
	"github.com/campusflow/campus-assistant-go/internal/reply"
	"github.com/campusflow/campus-assistant-go/internal/retrieval"
	"github.com/campusflow/campus-assistant-go/internal/sentry"
	"github.com/campusflow/campus-assistant-go/internal/snapshot"
	"github.com/campusflow/campus-assistant-go/internal/storage"
	"github.com/campusflow/campus-assistant-go/internal/warmup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewWithShipping(cfg.LogLevel, logger.ShippingConfig{
		Token:    cfg.BetterStackToken,
		Endpoint: cfg.BetterStackEndpoint,
	})
	log.WithField("version", buildinfo.Version).
		WithField("commit", buildinfo.Commit).
		Info("Starting campus assistant server")

	release := cfg.SentryRelease
	if release == "" {
		release = buildinfo.Version
	}
	if err := sentry.Initialize(sentry.Config{
		DSN:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
		Release:     release,
		SampleRate:  cfg.SentrySampleRate,
	}); err != nil {
		log.WithError(err).Warn("Failed to initialize Sentry, error reporting disabled")
	}
	defer sentry.Flush(2 * time.Second)

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		log.WithError(err).Error("Failed to open document store")
		os.Exit(1)
	}
	log.WithField("dir", store.Dir()).Info("Document store opened")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewBuildInfoCollector())
	m := metrics.New(registry)
	store.SetMetricsRecorder(m)
	log.Info("Metrics initialized")

	// Restore the data dir from the latest snapshot on a fresh
	// deployment, before warmup reads anything.
	var snapshotMgr *snapshot.Manager
	if cfg.BackupEnabled {
		client, err := objstore.New(context.Background(), objstore.Config{
			Endpoint:    cfg.BackupEndpoint,
			AccessKeyID: cfg.BackupAccessKeyID,
			SecretKey:   cfg.BackupSecretAccessKey,
			Bucket:      cfg.BackupBucketName,
		})
		if err != nil {
			log.WithError(err).Error("Failed to create object storage client")
			os.Exit(1)
		}
		snapshotMgr = snapshot.New(client, cfg.DataDir, snapshot.Config{
			Prefix:   cfg.BackupPrefix,
			Interval: cfg.BackupInterval,
		}, log, m)

		restored, err := snapshotMgr.RestoreIfEmpty(context.Background())
		if err != nil {
			log.WithError(err).Warn("Snapshot restore failed, starting with local data")
		} else if restored {
			log.Info("Data directory restored from snapshot")
		}
	}

	authSvc := auth.New(store, cfg.AuthSalt)
	idx := knowledge.NewIndex(log)

	stats, err := warmup.Run(context.Background(), store, authSvc, idx, log, warmup.Options{Metrics: m})
	if err != nil {
		log.WithError(err).Error("Warmup failed")
		os.Exit(1)
	}
	log.WithField("knowledge_entries", stats.Knowledge.Load()).Info("Warmup complete")

	engine := retrieval.NewEngine(store, cfg.Pipeline, log)

	templates, err := store.Templates(context.Background())
	if err != nil {
		log.WithError(err).Warn("Loading reply templates failed, using built-in pools")
		templates = nil
	}
	synth := reply.NewSynthesizer(nil, templates)
	detector := emotion.NewDetector()

	botRegistry := bot.NewRegistry()
	botRegistry.Register(wellbeing.NewHandler(detector, synth, cfg.Pipeline.EmotionMinConfidence, log, m))
	botRegistry.Register(greeting.NewHandler(synth))
	botRegistry.Register(notes.NewHandler(engine, log, m))
	botRegistry.Register(pyq.NewHandler(engine, log, m))
	botRegistry.Register(info.NewHandler(engine, idx, store, log, m))

	responder, err := genai.NewResponderFromConfig(context.Background(), cfg, m, log)
	if err != nil {
		log.WithError(err).Warn("Failed to create AI responder, fallback disabled")
		responder = nil
	}
	if responder != nil {
		defer func() { _ = responder.Close() }()
		log.WithField("provider", responder.Provider().String()).Info("AI fallback enabled")
	} else {
		log.Info("No AI provider configured, fallback disabled")
	}

	aiLimiter := ratelimit.NewAIRateLimiter(cfg.AIRatePerHour, 10*time.Minute, m)
	defer aiLimiter.Stop()
	sessionLimiter := ratelimit.NewPerKeyLimiter(ratelimit.PerKeyLimiterConfig{
		MaxTokens:     cfg.Pipeline.SessionRateBurst,
		RefillRate:    cfg.Pipeline.SessionRateRefill,
		CleanupPeriod: 10 * time.Minute,
	})
	defer sessionLimiter.Stop()
	sessionLimiter.OnDrop(func() { m.RecordRateLimiterDrop("session") })

	processor := bot.NewProcessor(bot.ProcessorConfig{
		Registry:        botRegistry,
		Engine:          engine,
		Knowledge:       idx,
		Store:           store,
		Synthesizer:     synth,
		Responder:       responder,
		AILimiter:       aiLimiter,
		SessionLimiter:  sessionLimiter,
		Logger:          log,
		Metrics:         m,
		ChatTimeout:     cfg.Pipeline.ChatTimeout,
		MaxHistoryTurns: cfg.AIMaxHistoryTurns,
	})

	apiHandler := httpapi.NewHandler(httpapi.HandlerConfig{
		Processor: processor,
		Auth:      authSvc,
		Store:     store,
		Knowledge: idx,
		Logger:    log,
		Metrics:   m,
		Config: httpapi.Config{
			MetricsUsername: cfg.MetricsUsername,
			MetricsPassword: cfg.MetricsPassword,
			GlobalRateRPS:   cfg.Pipeline.GlobalRateRPS,
		},
	})

	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if sentry.IsEnabled() {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(httpapi.RequestID())
	router.Use(httpapi.SecurityHeaders())
	router.Use(httpapi.RequestLogger(log))

	apiHandler.Routes(router, registry)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  config.ChatHTTPRead,
		WriteTimeout: config.ChatHTTPWrite,
		IdleTimeout:  config.ChatHTTPIdle,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup

	if snapshotMgr != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.WithField("panic", r).Error("Panic in snapshot goroutine")
				}
			}()
			snapshotMgr.Run(ctx)
		}()
	}

	go func() {
		log.WithField("port", cfg.Port).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Failed to start server")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	cancel()

	goDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(goDone)
	}()
	select {
	case <-goDone:
		log.Info("All background goroutines stopped")
	case <-time.After(5 * time.Second):
		log.Warn("Timeout waiting for goroutines to stop")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	// Final backup so a redeploy picks up the freshest catalogs.
	if snapshotMgr != nil {
		backupCtx, backupCancel := context.WithTimeout(context.Background(), 30*time.Second)
		if _, err := snapshotMgr.Backup(backupCtx); err != nil {
			log.WithError(err).Warn("Final snapshot backup failed")
		}
		backupCancel()
	}

	if err := log.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Failed to flush shipped logs")
	}

	log.Info("Server stopped")
}
