// Package queue provides the durable job-queue interface used for
// asynchronous export dispatch, plus its RabbitMQ implementation.
package queue

import "context"

// Publisher publishes serialized jobs to a named durable queue.
// Delivery to the consumer is at-least-once; the publisher only observes
// whether the publish itself was accepted by the broker.
type Publisher interface {
	Publish(ctx context.Context, queueName string, body []byte) error
}
