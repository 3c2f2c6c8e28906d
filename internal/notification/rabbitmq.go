package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stpnv0/VaccineBooker/internal/domain"
	"github.com/stpnv0/VaccineBooker/internal/metrics"
	"github.com/stpnv0/VaccineBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	exchangeType   = "direct"
	routingKey     = "notification.mail"
	publishTimeout = 5 * time.Second
	dialAttempts   = 5
)

// SetupRabbit connects to the broker and declares the notification exchange.
func SetupRabbit(url, exchange string, log logger.Logger) (*amqp.Connection, *amqp.Channel, error) {
	var (
		conn *amqp.Connection
		err  error
	)
	for i := 0; i < dialAttempts; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}
		log.Warn("failed to connect to rabbitmq",
			logger.Int("attempt", i+1),
			logger.String("error", err.Error()),
		)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(
		exchange,     // name
		exchangeType, // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("declare exchange: %w", err)
	}

	return conn, ch, nil
}

// RabbitPublisher implements the notification queue on top of a RabbitMQ exchange.
type RabbitPublisher struct {
	ch       *amqp.Channel
	exchange string
	logger   logger.Logger
}

func NewRabbitPublisher(ch *amqp.Channel, exchange string, log logger.Logger) *RabbitPublisher {
	return &RabbitPublisher{ch: ch, exchange: exchange, logger: log}
}

func (p *RabbitPublisher) Enqueue(ctx context.Context, n domain.Notification) {
	body, err := encodeNotification(n)
	if err != nil {
		p.fail(n, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err = p.ch.PublishWithContext(ctx,
		p.exchange, // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	); err != nil {
		p.fail(n, err)
	}
}

func (p *RabbitPublisher) fail(n domain.Notification, err error) {
	metrics.IncNotification(string(n.Kind), "dropped")
	p.logger.Error("failed to publish notification",
		logger.String("kind", string(n.Kind)),
		logger.String("to", n.To),
		logger.String("error", err.Error()),
	)
}

// RabbitConsumer reads notifications from a durable queue and mails them.
type RabbitConsumer struct {
	ch       *amqp.Channel
	exchange string
	queue    string
	mailer   ports.Mailer
	logger   logger.Logger
}

func NewRabbitConsumer(ch *amqp.Channel, exchange, queue string, mailer ports.Mailer, log logger.Logger) *RabbitConsumer {
	return &RabbitConsumer{
		ch:       ch,
		exchange: exchange,
		queue:    queue,
		mailer:   mailer,
		logger:   log,
	}
}

// Run consumes until ctx is cancelled or the channel closes.
func (c *RabbitConsumer) Run(ctx context.Context) error {
	q, err := c.ch.QueueDeclare(
		c.queue, // name
		true,    // durable
		false,   // delete when unused
		false,   // exclusive
		false,   // no-wait
		nil,     // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err = c.ch.QueueBind(q.Name, routingKey, c.exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	msgs, err := c.ch.Consume(
		q.Name, // queue
		"",     // consumer tag
		false,  // auto-ack
		false,  // exclusive
		false,  // no-local
		false,  // no-wait
		nil,    // args
	)
	if err != nil {
		return fmt.Errorf("start consume: %w", err)
	}

	c.logger.Info("notification consumer started", logger.String("queue", q.Name))

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("notification consumer stopped")
			return nil
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("notification channel closed")
			}
			if err := c.handle(context.WithoutCancel(ctx), d.Body); err != nil {
				c.logger.Error("malformed notification dropped", logger.String("error", err.Error()))
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

// handle only fails for messages that can never be delivered.
func (c *RabbitConsumer) handle(ctx context.Context, body []byte) error {
	n, err := decodeNotification(body)
	if err != nil {
		return err
	}
	deliver(ctx, c.mailer, n, c.logger)
	return nil
}

func encodeNotification(n domain.Notification) ([]byte, error) {
	body, err := json.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("marshal notification: %w", err)
	}
	return body, nil
}

func decodeNotification(body []byte) (domain.Notification, error) {
	var n domain.Notification
	if err := json.Unmarshal(body, &n); err != nil {
		return n, fmt.Errorf("unmarshal notification: %w", err)
	}
	if n.To == "" {
		return n, fmt.Errorf("notification without recipient")
	}
	return n, nil
}
