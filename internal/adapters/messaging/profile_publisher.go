package messaging

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/clynicx/portal-service/internal/core/ports"
)

var _ ports.ProfileEventPublisher = (*RabbitMQBroker)(nil)

func (b *RabbitMQBroker) PublishProfileCreated(ctx context.Context, evt ports.ProfileCreatedEvent) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err = b.cb.Execute(func() (interface{}, error) {
		return nil, b.ch.PublishWithContext(ctx, "", b.queueName, false, false, amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Type:         ports.ProfileCreatedEventType,
			MessageId:    evt.UserID,
			Body:         body,
		})
	})
	return err
}
