package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sheikh-saqib/statement-ledger-service/internal/config"
	"github.com/sheikh-saqib/statement-ledger-service/internal/events/kafka"
	"github.com/sheikh-saqib/statement-ledger-service/internal/interfaces"
	"github.com/sheikh-saqib/statement-ledger-service/internal/ledger"
	"github.com/sheikh-saqib/statement-ledger-service/internal/server"
	"github.com/sheikh-saqib/statement-ledger-service/internal/storage/memory"
	"github.com/sheikh-saqib/statement-ledger-service/internal/storage/postgres"
	"github.com/sheikh-saqib/statement-ledger-service/internal/users"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env vars")
	}
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	var (
		statementStore interfaces.StatementStore
		userStore      interfaces.UserStore
	)
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("failed to open database", zap.Error(err))
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			logger.Fatal("failed to reach database", zap.Error(err))
		}

		pgUsers := postgres.NewPostgresUserStore(db)
		pgStatements := postgres.NewPostgresStatementStore(db)
		if err := pgUsers.Migrate(ctx); err != nil {
			logger.Fatal("failed to migrate users table", zap.Error(err))
		}
		if err := pgStatements.Migrate(ctx); err != nil {
			logger.Fatal("failed to migrate statements table", zap.Error(err))
		}
		statementStore, userStore = pgStatements, pgUsers
		logger.Info("using postgres storage")
	} else {
		statementStore = memory.NewMemoryStatementStore()
		userStore = memory.NewMemoryUserStore()
		logger.Info("DATABASE_URL not set, using in-memory storage")
	}

	var publisher interfaces.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := kafka.NewPublisher(cfg.KafkaBrokers)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		logger.Info("publishing ledger events", zap.Strings("brokers", cfg.KafkaBrokers))
	}

	ledgerService := ledger.NewLedger(statementStore, userStore, publisher, logger)
	userService := users.NewService(userStore, []byte(cfg.JWTSecret), cfg.TokenTTL)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: server.New(ledgerService, userService, []byte(cfg.JWTSecret), logger),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("statement ledger service starting", zap.String("addr", cfg.HTTPAddr))
		errCh <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		logger.Info("shutting down gracefully")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	case err := <-errCh:
		logger.Fatal("server stopped", zap.Error(err))
	}
}
