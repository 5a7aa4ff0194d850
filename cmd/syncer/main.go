package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/apparelshop/catalog-syncer/cmd/syncer/config"
	"github.com/apparelshop/catalog-syncer/internal/fetcher"
	"github.com/apparelshop/catalog-syncer/internal/handler"
	"github.com/apparelshop/catalog-syncer/internal/imagesync"
	"github.com/apparelshop/catalog-syncer/internal/platform/objstore"
	"github.com/apparelshop/catalog-syncer/internal/platform/rabbitmq"
	"github.com/apparelshop/catalog-syncer/internal/platform/storage"
	"github.com/apparelshop/catalog-syncer/internal/reconciler"
	"github.com/apparelshop/catalog-syncer/internal/syncer"
	"github.com/caarlos0/env/v6"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const (
	// UserAgent is user agent header value used when fetching sheet exports.
	UserAgent = "catalog-syncer/0.0.1"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}

	store, err := objstore.New(ctx, objstore.Config{
		Endpoint:     cfg.S3.Endpoint,
		Region:       cfg.S3.Region,
		Bucket:       cfg.S3.Bucket,
		AccessKey:    cfg.S3.AccessKey,
		SecretKey:    cfg.S3.SecretKey,
		UsePathStyle: cfg.S3.PathStyle,
	})
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open S3 connection")
	}

	pg := storage.NewPostgres(pgDB)

	syn := syncer.NewSyncer(
		fetcher.NewFetcher(&http.Client{Timeout: cfg.HTTPTimeout}, UserAgent),
		store,
		pg,
		reconciler.NewReconciler(pg),
		imagesync.NewEngine(store),
	)

	han := handler.NewHandler(conn, syn, &logger)

	// start consuming and handling messages
	err = han.Start(ctx, cfg.RabbitMQ.Queue)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming")
	}

	logger.Info().Msg("catalog syncer up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	// wait for consumer to finish
	<-conn.Done()

	// close connections
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := pgDB.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close Postgres connection")
		}
	}()

	go func() {
		defer wg.Done()
		if err := amqpConnection.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}()

	wg.Wait()

	logger.Info().Msg("graceful shutdown successful")
}
