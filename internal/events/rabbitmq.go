// Package events publishes offer notifications so downstream deal-alert
// consumers can react to newly observed discounts.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"pricewatch/internal/domain"
	"pricewatch/internal/normalize"
)

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(cfg.Exchange, "direct", true, false, false, false, nil)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

// OfferMessage is the wire shape of one observed discount.
type OfferMessage struct {
	Supermarket     string     `json:"supermarket"`
	ProductID       string     `json:"product_id"`
	Name            string     `json:"name"`
	Price           float64    `json:"price"`
	OriginalPrice   *float64   `json:"original_price,omitempty"`
	DiscountPercent float64    `json:"discount_percent,omitempty"`
	DiscountType    *string    `json:"discount_type,omitempty"`
	DiscountEnd     *time.Time `json:"discount_end,omitempty"`
	ObservedAt      time.Time  `json:"observed_at"`
}

// PublishOffer emits one discounted product record.
func (r *RabbitMQ) PublishOffer(ctx context.Context, rec *domain.ProductRecord) error {
	msg := OfferMessage{
		Supermarket:     rec.SupermarketCode,
		ProductID:       rec.ProductID,
		Name:            rec.Name,
		Price:           rec.Price,
		OriginalPrice:   rec.OriginalPrice,
		DiscountPercent: normalize.DiscountPercent(rec),
		DiscountType:    rec.DiscountType,
		DiscountEnd:     rec.DiscountEnd,
		ObservedAt:      time.Now().UTC(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published offer",
		"supermarket", rec.SupermarketCode,
		"product_id", rec.ProductID,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
