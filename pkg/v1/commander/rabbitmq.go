package commander

import "context"

//go:generate mockery --name RabbitMQPublisher --filename rabbitmqpublisher.go

// RabbitMQPublisher publishes messages to a routing key.
type RabbitMQPublisher interface {
	Publish(context.Context, string, []byte) error
}

// RabbitMQSender sends command messages to a fixed routing key.
type RabbitMQSender struct {
	publisher  RabbitMQPublisher
	routingKey string
}

// NewRabbitMQSender returns new RabbitMQSender publishing messages to routingKey.
func NewRabbitMQSender(publisher RabbitMQPublisher, routingKey string) RabbitMQSender {
	return RabbitMQSender{
		publisher:  publisher,
		routingKey: routingKey,
	}
}

// Send publishes msg to the sender's routing key.
func (s RabbitMQSender) Send(ctx context.Context, msg []byte) error {
	return s.publisher.Publish(ctx, s.routingKey, msg)
}
