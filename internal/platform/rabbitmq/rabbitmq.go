// Package rabbitmq is a thin wrapper around an amqp channel used for
// publishing and consuming synchronization commands.
package rabbitmq

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// HandlerFunc handles one consumed message body.
type HandlerFunc func(ctx context.Context, message []byte) error

// RabbitMQ publishes and consumes amqp messages on a single channel.
type RabbitMQ struct {
	channel  *amqp.Channel
	exchange string
	running  chan struct{}
}

// NewRabbitMQ opens a channel on connection and returns new RabbitMQ
// publishing to exchange. Synchronization runs are heavy, so the channel
// prefetches one message at a time.
func NewRabbitMQ(connection *amqp.Connection, exchange string) (*RabbitMQ, error) {
	channel, err := connection.Channel()
	if err != nil {
		return nil, fmt.Errorf("can't open channel: %w", err)
	}
	if err := channel.Qos(1, 0, false); err != nil {
		return nil, fmt.Errorf("can't set channel prefetch: %w", err)
	}

	return &RabbitMQ{
		channel:  channel,
		exchange: exchange,
	}, nil
}

// Publish publishes message to routing key as JSON payload.
func (mq *RabbitMQ) Publish(ctx context.Context, routingKey string, message []byte) error {
	return mq.channel.PublishWithContext(
		ctx,
		mq.exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        message,
		},
	)
}

// Consume consumes messages from queue and passes their bodies to handler.
// Consuming runs in background until context is cancelled or the deliveries
// channel closes; handler and settlement errors are reported on the returned
// channel. Messages failing the handler are rejected without requeue, so a
// malformed command is dropped instead of being redelivered forever.
func (mq *RabbitMQ) Consume(ctx context.Context, queue string, handler HandlerFunc) (<-chan error, error) {
	consumerID, err := uuid.NewUUID()
	if err != nil {
		return nil, fmt.Errorf("can't create consumer ID: %w", err)
	}

	deliveries, err := mq.channel.Consume(
		queue,
		"catalog-syncer-"+consumerID.String(),
		false, // auto acknowledge
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("can't start consuming: %w", err)
	}

	errs := make(chan error)
	mq.running = make(chan struct{})
	go func() {
		defer close(mq.running)
		mq.handleDeliveries(ctx, deliveries, errs, handler)
	}()

	return errs, nil
}

// Done returns channel which is closed when consuming finishes.
func (mq *RabbitMQ) Done() chan struct{} {
	return mq.running
}

func (mq *RabbitMQ) handleDeliveries(
	ctx context.Context,
	deliveries <-chan amqp.Delivery,
	errs chan error,
	handler HandlerFunc,
) {
	for delivery := range deliveries {
		if err := handler(ctx, delivery.Body); err != nil {
			if sendError(ctx, err, errs) != nil {
				return
			}
			if mq.settle(ctx, &delivery, false, errs) != nil {
				return
			}
			continue
		}

		if mq.settle(ctx, &delivery, true, errs) != nil {
			return
		}

		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

// settle acks or rejects delivery. Settlement failures are pushed to errs
// and only a cancelled context stops the consuming loop.
func (mq *RabbitMQ) settle(ctx context.Context, delivery *amqp.Delivery, ok bool, errs chan error) error {
	var err error
	if ok {
		err = delivery.Ack(false)
	} else {
		err = delivery.Nack(false, false)
	}
	if err != nil {
		return sendError(ctx, fmt.Errorf("can't settle message: %w", err), errs)
	}

	return nil
}

func sendError(ctx context.Context, err error, errs chan error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case errs <- err:
	}

	return nil
}
