package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/apparelshop/catalog-syncer/internal/platform/models"
	"github.com/apparelshop/catalog-syncer/internal/platform/rabbitmq"
	"github.com/apparelshop/catalog-syncer/internal/syncer"
	"github.com/apparelshop/catalog-syncer/pkg/v1/commander"
	"github.com/rs/zerolog"
)

// Syncer runs full catalog synchronization.
type Syncer interface {
	SyncAll(ctx context.Context, cmd syncer.Command) (*models.SyncResult, error)
}

// RMQHandler handles RMQ messages.
type RMQHandler struct {
	rmq    *rabbitmq.RabbitMQ
	syncer Syncer
	logger *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(rmq *rabbitmq.RabbitMQ, syncer Syncer, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		rmq:    rmq,
		syncer: syncer,
		logger: logger,
	}
}

// Start starts consuming and handling synchronization commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.rmq.Consume(ctx, queue, func(ctx context.Context, message []byte) error {
		cmd, err := decodeMessage(message)
		if err != nil {
			return err
		}

		h.logger.Debug().
			Str("actorName", cmd.ActorName).
			Msg("synchronization started")

		result, err := h.syncer.SyncAll(ctx, toSyncerCommand(cmd))
		if err != nil {
			return fmt.Errorf("synchronization failed: %w", err)
		}

		if result.Rejected {
			h.logger.Warn().
				Str("actorName", cmd.ActorName).
				Interface("sheetErrors", result.SheetErrors).
				Interface("imageErrors", result.ImageErrors).
				Msg("synchronization rejected")
			return nil
		}

		h.logger.Info().
			Str("actorName", cmd.ActorName).
			Interface("reports", result.Reports).
			Interface("images", result.Images).
			Msg("synchronization finished")

		return nil
	})
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

func decodeMessage(msg []byte) (*commander.SyncCommand, error) {
	var cmd commander.SyncCommand
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode sync command: %w", err)
	}

	return &cmd, err
}

func toSyncerCommand(cmd *commander.SyncCommand) syncer.Command {
	sheetURLs := make(map[models.Category]string, len(cmd.SheetURLs))
	for name, url := range cmd.SheetURLs {
		sheetURLs[models.Category(name)] = url
	}

	archiveKeys := make(map[models.Category]string, len(cmd.ArchiveKeys))
	for name, key := range cmd.ArchiveKeys {
		archiveKeys[models.Category(name)] = key
	}

	return syncer.Command{
		ActorID:     cmd.ActorID,
		ActorName:   cmd.ActorName,
		SheetURLs:   sheetURLs,
		ArchiveKeys: archiveKeys,
	}
}
