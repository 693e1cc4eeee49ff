package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dawood1123/Lumina-study-app/internal/config"
	"github.com/dawood1123/Lumina-study-app/internal/container"
	"github.com/dawood1123/Lumina-study-app/internal/router"
)

func main() {
	cfg := config.Load()
	config.InitLogger(cfg.LogLevel, cfg.LogFormat)
	log := config.Log

	ctx := context.Background()
	c := container.New(ctx, cfg)

	handler := router.New(router.RouterConfig{
		SessionHandler: c.SessionContainer.Handler,
		QuizHandler:    c.QuizContainer.Handler,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", srv.Addr).WithField("model", cfg.GeminiModel).Info("Study assistant listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.WithField("signal", sig.String()).Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("HTTP server shutdown error")
	}
}
