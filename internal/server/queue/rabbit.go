package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tunedeck/internal/common"
	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitPublisher implements Publisher over an AMQP 0.9.1 connection.
// Every failure, including a publish timeout, is wrapped in
// common.ErrDispatch: a failed publish has no persisted side effect, so
// the caller can safely retry.
type RabbitPublisher struct {
	conn    *amqp.Connection
	timeout time.Duration
}

// NewRabbitPublisher constructs a publisher over an established connection.
// timeout bounds each individual publish.
func NewRabbitPublisher(conn *amqp.Connection, timeout time.Duration) *RabbitPublisher {
	return &RabbitPublisher{conn: conn, timeout: timeout}
}

// Publish declares the durable queue and sends body as a persistent message.
func (p *RabbitPublisher) Publish(ctx context.Context, queueName string, body []byte) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("%w: channel: %v", common.ErrDispatch, err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("%w: queue declare: %v", common.ErrDispatch, err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = ch.PublishWithContext(ctx, "", queueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("%w: publish: %v", common.ErrDispatch, err)
	}

	return nil
}
