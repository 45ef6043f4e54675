package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Rakhulsr/go-category-admin/app/cmd"
	"github.com/Rakhulsr/go-category-admin/app/configs"
	"github.com/Rakhulsr/go-category-admin/app/models/migrations"
	"github.com/Rakhulsr/go-category-admin/app/routes"
	"github.com/Rakhulsr/go-category-admin/app/utils/metrics"
	"go.uber.org/zap"
)

func main() {

	env := configs.LoadEnv()

	logger, err := configs.NewLogger(env)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if len(os.Args) > 1 {
		cmd.RunCli(env, logger)
		return
	}

	db, err := configs.OpenConnection(env, logger)
	if err != nil {
		logger.Fatal("DB connection failed", zap.Error(err))
	}
	if err := migrations.AutoMigrate(db); err != nil {
		logger.Fatal("Migration failed", zap.Error(err))
	}

	keys, err := configs.LoadSessionKeys(env, logger)
	if err != nil {
		logger.Fatal("Session keys invalid", zap.Error(err))
	}

	router := routes.NewRouter(routes.Dependencies{
		DB:      db,
		Env:     env,
		Keys:    keys,
		Logger:  logger,
		Metrics: metrics.NewCollector("category_admin"),
	})

	server := &http.Server{
		Addr:              env.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
	logger.Info("Server stopped")
}
