package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gauravmishra2744/DHARMAVERSE/internal/config"
	"github.com/gauravmishra2744/DHARMAVERSE/internal/httpx"
	"github.com/gauravmishra2744/DHARMAVERSE/ledger"
	"github.com/gauravmishra2744/DHARMAVERSE/payment"
	"github.com/gauravmishra2744/DHARMAVERSE/store"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Str("service", "dharmaverse-commerce").Logger()
	cfg := config.Load()

	ctx := context.Background()

	st, cleanup, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer cleanup()

	svc, err := ledger.New(ctx, st, ledger.WithLogger(log))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load ledger state")
	}

	gateway := payment.NewBreaker(payment.NewSimulator(cfg.PaymentLatency))

	handler := &httpx.Handler{Ledger: svc, Gateway: gateway, Log: log}
	router := httpx.NewRouter(handler, log)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("store", cfg.StoreBackend).Msg("commerce server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

func openStore(ctx context.Context, cfg config.Config, log zerolog.Logger) (store.Store, func(), error) {
	switch cfg.StoreBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, err
		}
		log.Info().Str("addr", cfg.RedisAddr).Msg("connected to redis")
		return store.NewRedis(client, cfg.RedisNamespace), func() { _ = client.Close() }, nil
	case "mongo":
		db, err := store.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("uri", cfg.MongoURI).Msg("connected to mongodb")
		return store.NewMongo(db), func() { _ = db.Client().Disconnect(ctx) }, nil
	default:
		return store.NewMemory(), func() {}, nil
	}
}
