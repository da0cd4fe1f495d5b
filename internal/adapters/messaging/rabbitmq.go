package messaging

import (
	"context"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/clynicx/portal-service/internal/config"
)

// publishChannel is the part of *amqp.Channel the broker uses.
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQBroker publishes profile events to a durable queue on the
// default exchange.
type RabbitMQBroker struct {
	conn      *amqp.Connection
	ch        publishChannel
	queueName string
	cb        *gobreaker.CircuitBreaker
}

func NewRabbitMQBroker(amqpURL, queueName string, logger *zap.Logger) (*RabbitMQBroker, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue %q: %w", queueName, err)
	}

	logger.Info("connected to broker", zap.String("queue", queueName))
	return &RabbitMQBroker{
		conn:      conn,
		ch:        ch,
		queueName: queueName,
		cb:        config.NewCircuitBreaker(config.BreakerRabbitMQ, logger),
	}, nil
}

// Close releases the channel and the connection, reporting both failures.
func (b *RabbitMQBroker) Close() error {
	var errs []error
	if b.ch != nil {
		errs = append(errs, b.ch.Close())
	}
	if b.conn != nil {
		errs = append(errs, b.conn.Close())
	}
	return errors.Join(errs...)
}
