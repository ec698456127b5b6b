/**
 * @description
 * Topic-based consumer for the real-time report channel. The dashboard
 * subscribes to partial-report updates pushed by the backend; each binding
 * maps a routing key to a handler that merges the payload into the current
 * snapshot. A disconnect is reported through the status callback and treated
 * as a non-fatal indicator — the client keeps rendering the last snapshot.
 */

package reportstream

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Consumer holds one AMQP connection and channel for report updates.
type Consumer struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	onStatus func(connected bool)
}

func sanitizeURL(raw string) (string, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.Trim(clean, "\"'")
	if !strings.HasSuffix(clean, "/") {
		clean += "/"
	}
	parsed, err := url.Parse(clean)
	if err != nil {
		return "", err
	}
	if parsed.Scheme != "amqp" && parsed.Scheme != "amqps" {
		return "", fmt.Errorf("invalid AMQP scheme: %s", parsed.Scheme)
	}
	return clean, nil
}

// NewConsumer dials the broker. onStatus may be nil; when set it receives
// true once consuming starts and false when the delivery stream closes.
func NewConsumer(amqpURL string, onStatus func(connected bool)) (*Consumer, error) {
	cleanURL, err := sanitizeURL(amqpURL)
	if err != nil {
		return nil, err
	}

	conn, err := amqp.Dial(cleanURL)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	return &Consumer{conn: conn, ch: ch, onStatus: onStatus}, nil
}

// ConsumeWithBindings declares the topic exchange and queue, binds each
// routing key to its handler, and consumes in the background. A handler
// returning false re-queues the delivery.
func (c *Consumer) ConsumeWithBindings(exchange, queueName string, bindings map[string]func([]byte) bool) error {
	if len(bindings) == 0 {
		return fmt.Errorf("no bindings provided")
	}

	if err := c.ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return err
	}

	q, err := c.ch.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return err
	}

	handlers := make(map[string]func([]byte) bool)
	for routingKey, handler := range bindings {
		if handler == nil {
			continue
		}
		handlers[routingKey] = handler
		if err := c.ch.QueueBind(q.Name, routingKey, exchange, false, nil); err != nil {
			return err
		}
	}

	msgs, err := c.ch.Consume(q.Name, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	c.setStatus(true)

	go func() {
		for d := range msgs {
			handler, ok := handlers[d.RoutingKey]
			if !ok {
				log.Printf("level=warn component=report_stream msg=\"no handler for routing key; dropping\" routing_key=%s", d.RoutingKey)
				d.Ack(false)
				continue
			}
			if handler(d.Body) {
				d.Ack(false)
			} else {
				log.Printf("level=warn component=report_stream msg=\"handler failed; re-queuing\" routing_key=%s", d.RoutingKey)
				d.Nack(false, true)
			}
		}
		// Delivery stream closed: surface as a status change, not an error.
		c.setStatus(false)
	}()

	return nil
}

func (c *Consumer) setStatus(connected bool) {
	if c.onStatus != nil {
		c.onStatus(connected)
	}
}

// Close tears down the channel and connection.
func (c *Consumer) Close() {
	if c.ch != nil {
		c.ch.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
