package bm

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"delivery-track/internal/config"
	"delivery-track/internal/dashboard-service/core/ports"
	"delivery-track/internal/mylogger"
)

const (
	reconnectDelay = 2 * time.Second
	maxReconnects  = 5
)

// RabbitMQ is a thin broker adapter over a single connection and channel.
// Exchanges are declared lazily as fanout and remembered, so publish and
// consume never race on declaration.
type RabbitMQ struct {
	cfg   *config.RabbitMqconfig
	mylog mylogger.Logger

	mu        sync.Mutex
	conn      *amqp.Connection
	channel   *amqp.Channel
	exchanges map[string]bool
	closed    bool
}

func New(cfg *config.RabbitMqconfig, mylog mylogger.Logger) (*RabbitMQ, error) {
	rmq := &RabbitMQ{
		cfg:       cfg,
		mylog:     mylog,
		exchanges: make(map[string]bool),
	}
	if err := rmq.connect(); err != nil {
		return nil, err
	}
	return rmq, nil
}

func (r *RabbitMQ) connect() error {
	url := fmt.Sprintf("amqp://%s:%s@%s:%d/%s",
		r.cfg.User, r.cfg.Password, r.cfg.Host, r.cfg.Port, r.cfg.VHost)

	var err error
	for attempt := 1; attempt <= maxReconnects; attempt++ {
		r.conn, err = amqp.Dial(url)
		if err == nil {
			break
		}
		r.mylog.Action("rabbitmq_connect").Warn("broker unreachable, retrying",
			"attempt", attempt, "err", err.Error())
		time.Sleep(reconnectDelay)
	}
	if err != nil {
		return fmt.Errorf("connect to rabbitmq: %w", err)
	}

	r.channel, err = r.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}

	r.mylog.Action("rabbitmq_connect").Info("connected to broker",
		"host", r.cfg.Host, "port", r.cfg.Port)
	return nil
}

func (r *RabbitMQ) ensureExchange(name string) error {
	if r.exchanges[name] {
		return nil
	}
	err := r.channel.ExchangeDeclare(name, "fanout", true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare exchange %s: %w", name, err)
	}
	r.exchanges[name] = true
	return nil
}

func (r *RabbitMQ) PublishJSON(ctx context.Context, exchange, routingKey string, msg any) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return fmt.Errorf("broker closed")
	}
	if err := r.ensureExchange(exchange); err != nil {
		return err
	}

	return r.channel.PublishWithContext(ctx, exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Transient,
		Timestamp:    time.Now(),
		Body:         body,
	})
}

// Consume binds an exclusive queue to the exchange and returns the delivery
// stream. The queue name is left to the broker when queueName is empty, which
// gives every instance its own copy of each event.
func (r *RabbitMQ) Consume(ctx context.Context, queueName, bindingKey string, opts ports.ConsumeOptions) (<-chan amqp.Delivery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, fmt.Errorf("broker closed")
	}
	if err := r.ensureExchange(bindingKey); err != nil {
		return nil, err
	}

	if opts.Prefetch > 0 {
		if err := r.channel.Qos(opts.Prefetch, 0, false); err != nil {
			return nil, fmt.Errorf("set prefetch: %w", err)
		}
	}

	queue, err := r.channel.QueueDeclare(queueName, opts.QueueDurable, true, queueName == "", false, nil)
	if err != nil {
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err := r.channel.QueueBind(queue.Name, "", bindingKey, false, nil); err != nil {
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	deliveries, err := r.channel.ConsumeWithContext(ctx, queue.Name, "", opts.AutoAck, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("start consumer: %w", err)
	}
	return deliveries, nil
}

func (r *RabbitMQ) IsAlive() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.closed && r.conn != nil && !r.conn.IsClosed()
}

func (r *RabbitMQ) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
