// Package rabbitmq publishes and consumes store domain events over AMQP.
package rabbitmq

import (
	"context"
	"fmt"
	"sync"
	"time"

	"toko-admin/internal/services"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	amqp "github.com/streadway/amqp"
)

// DefaultQueue receives every store event.
const DefaultQueue = "store_events"

// Channel is the subset of *amqp.Channel the client needs.
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Close() error
}

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel Channel
	queue   string
	mu      sync.Mutex // amqp channels are not safe for concurrent publishing
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL   string
	Queue string
}

// NewClient connects to RabbitMQ, opens a channel and declares the event
// queue.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	client, err := NewClientWithChannel(ch, cfg.Queue)
	if err != nil {
		conn.Close()
		return nil, err
	}
	client.conn = conn
	return client, nil
}

// NewClientWithChannel wraps an already open channel and declares queue on
// it. An empty queue means DefaultQueue.
func NewClientWithChannel(ch Channel, queue string) (*Client, error) {
	if queue == "" {
		queue = DefaultQueue
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to declare %s: %w", queue, err)
	}
	logrus.WithField("queue", queue).Info("RabbitMQ client ready")
	return &Client{channel: ch, queue: queue}, nil
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors while closing RabbitMQ client: %v", errs)
	}
	return nil
}

// PublishEvent publishes event as a persistent JSON message.
func (c *Client) PublishEvent(ctx context.Context, event services.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	err = c.channel.Publish("", c.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Type:         event.Type,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}

	logrus.WithFields(logrus.Fields{
		"event":    event.Type,
		"store_id": event.StoreID,
	}).Debug("event published")
	return nil
}

// ConsumeEvents delivers every event of the queue to handler until the
// channel closes. Messages are acked when handler succeeds; undecodable
// messages are dropped and failed ones requeued once.
func (c *Client) ConsumeEvents(handler func(services.Event) error) error {
	msgs, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	logrus.WithField("queue", c.queue).Info("waiting for store events")
	go func() {
		for msg := range msgs {
			handleDelivery(msg, handler)
		}
	}()
	return nil
}

func handleDelivery(msg amqp.Delivery, handler func(services.Event) error) {
	entry := logrus.WithField("delivery_tag", msg.DeliveryTag)

	var event services.Event
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		entry.WithError(err).Warn("dropping undecodable event")
		if err := msg.Nack(false, false); err != nil {
			entry.WithError(err).Error("nack failed")
		}
		return
	}

	if err := handler(event); err != nil {
		entry.WithError(err).WithField("event", event.Type).Error("event handler failed")
		if err := msg.Nack(false, !msg.Redelivered); err != nil {
			entry.WithError(err).Error("nack failed")
		}
		return
	}
	if err := msg.Ack(false); err != nil {
		entry.WithError(err).Error("ack failed")
	}
}

// LogEvent is the handler `serve` runs for consumed events.
func LogEvent(event services.Event) error {
	logrus.WithFields(logrus.Fields{
		"event":       event.Type,
		"store_id":    event.StoreID,
		"resource_id": event.ResourceID,
		"user_id":     event.UserID,
		"occurred_at": event.OccurredAt,
	}).Info("store event")
	return nil
}
