package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/streadway/amqp"
	"go.uber.org/zap"
)

const accountQueue = "account_events"

// Client publishes account lifecycle events to RabbitMQ so downstream
// consumers (notification workers, analytics) can react without coupling
// to the request path.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	log     *zap.Logger
}

// NewClient connects to RabbitMQ and declares the account event queue.
func NewClient(url string, log *zap.Logger) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		accountQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare %s: %w", accountQueue, err)
	}

	return &Client{
		conn:    conn,
		channel: ch,
		log:     log.With(zap.String("component", "rabbitmq")),
	}, nil
}

// Close closes the channel and connection.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			return fmt.Errorf("close channel: %w", err)
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			return fmt.Errorf("close connection: %w", err)
		}
	}
	return nil
}

// PublishAccountEvent publishes one event to the account queue. A nil
// client is a no-op so the broker stays optional at runtime.
func (c *Client) PublishAccountEvent(event string, payload map[string]any) error {
	if c == nil {
		return nil
	}

	body, err := json.Marshal(map[string]any{
		"event":   event,
		"payload": payload,
	})
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event, err)
	}

	err = c.channel.Publish(
		"",           // default exchange
		accountQueue, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("publish %s event: %w", event, err)
	}

	c.log.Debug("Account event published", zap.String("event", event))
	return nil
}
