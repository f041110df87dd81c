// cmd/assistant-server/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"police-assistant/internal/assistant"
	"police-assistant/internal/assistant/composer"
	"police-assistant/internal/assistant/memory"
	"police-assistant/internal/assistant/search"
	"police-assistant/internal/common/aws"
	"police-assistant/internal/common/config"
	"police-assistant/internal/common/database"
	"police-assistant/internal/common/logger"
	"police-assistant/internal/common/observability"
	"police-assistant/internal/notify"
	"police-assistant/internal/records"
	"police-assistant/internal/server"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting assistant server...",
		zap.String("storeBackend", cfg.Stores.Backend),
		zap.String("searchProvider", cfg.Search.Provider),
	)

	obs := observability.New("assistant-server")
	defer obs.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Record stores ---
	var caseStore composer.RecordStore
	var complaintStore records.ComplaintStore
	var caseSearch records.CaseSearcher

	switch cfg.Stores.Backend {
	case "postgres":
		var pg *database.PostgresClient
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "PostgreSQL initialization")
		if err != nil {
			zapLog.Fatal("postgres unavailable", zap.Error(err))
		}
		defer pg.Close()

		store := records.NewPostgresStore(pg.DB)
		caseStore, complaintStore, caseSearch = store, store, store

	default:
		store := records.NewMemoryStore()
		caseStore, complaintStore, caseSearch = store, store, store
	}

	if cfg.Stores.CaseSearch == "elasticsearch" {
		var es *database.ElasticsearchClient
		err = retryWithBackoff(func() error {
			var err error
			es, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
			if err != nil {
				return err
			}
			return es.Ping()
		}, 5, 2*time.Second, zapLog, "Elasticsearch initialization")
		if err != nil {
			zapLog.Fatal("elasticsearch unavailable", zap.Error(err))
		}
		caseSearch = records.NewElasticsearchCaseSearch(es.Client, cfg.Database.Elasticsearch.CaseIndex)
	}

	// --- Session memory ---
	sessions := memory.NewStore(memory.Limits{
		History:         cfg.Assistant.HistoryLimit,
		RelevantHistory: cfg.Assistant.RelevantHistoryLimit,
		SnippetLength:   cfg.Assistant.SnippetLength,
	})

	var snapshots *memory.SnapshotStore
	if cfg.Stores.SnapshotSessions {
		var rdb *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			rdb, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return rdb.Ping(ctx)
		}, 5, 2*time.Second, zapLog, "Redis initialization")
		if err != nil {
			zapLog.Fatal("redis unavailable", zap.Error(err))
		}
		defer rdb.Close()
		snapshots = memory.NewSnapshotStore(rdb, time.Duration(cfg.Stores.SnapshotTTL)*time.Second)
	}

	// --- Search provider ---
	var provider search.Provider
	if cfg.Search.Provider == "http" {
		provider = search.NewHTTPProvider(cfg.Search, log)
	} else {
		provider = search.NewFixtureProvider(config.GetDuration(cfg.Search.FixtureLatency), cfg.Search.MaxResults)
	}

	// --- Complaint acknowledgements ---
	var notifier notify.Notifier = notify.NopNotifier{}
	if cfg.Notifications.SMS.Enabled || cfg.Notifications.Email.Enabled {
		snsClient, err := aws.NewSNSClient(ctx, cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Fatal("sns client init failed", zap.Error(err))
		}
		sesClient, err := aws.NewSESClient(ctx, cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Fatal("ses client init failed", zap.Error(err))
		}
		notifier = notify.NewAWSNotifier(snsClient, sesClient, cfg.Notifications, log)
	}

	svc := assistant.NewService(assistant.Options{
		Sessions:   sessions,
		Snapshots:  snapshots,
		Composer:   composer.New(caseStore, provider, log),
		Complaints: complaintStore,
		Notifier:   notifier,
		Obs:        obs,
		Logger:     log,
	})

	srv := server.New(svc, caseSearch, cfg.Server, log)

	if err := srv.ListenAndServe(ctx); err != nil {
		zapLog.Fatal("server exited", zap.Error(err))
	}
	zapLog.Info("Shutdown complete")
}
