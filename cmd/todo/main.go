package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"todoapi/internal/auth"
	"todoapi/internal/config"
	"todoapi/internal/db"
	httpx "todoapi/internal/http"
	"todoapi/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config")
	}

	log := logging.New(cfg.LogLevel, cfg.IsDevelopment(), os.Stdout)

	gdb, err := db.Connect(cfg.DatabaseURL, logging.Gorm(log))
	if err != nil {
		log.WithError(err).Fatal("database connect")
	}
	if err := db.AutoMigrateAndIndexes(gdb); err != nil {
		log.WithError(err).Fatal("database migrate")
	}

	tokens := auth.NewTokens(cfg.JWTSecret)
	r := httpx.NewRouter(cfg, gdb, tokens, log)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{
			"addr": cfg.HTTPAddr,
			"env":  cfg.Env,
			"routes": []string{
				"GET /",
				"POST /signup",
				"POST /login",
				"POST /todos (protected)",
				"GET /todos (protected)",
				"PUT /todos/{id} (protected)",
				"DELETE /todos/{id} (protected)",
			},
		}).Info("todo api listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("listen")
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.WithField("signal", sig.String()).Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown")
	}
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
