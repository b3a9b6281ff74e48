package reminderevents

import (
	"context"
	"encoding/json"
	"time"

	e "billmind/internal/core/domain/errors"
	"billmind/internal/core/domain/logging"
	"billmind/internal/core/domain/reminder"
	"billmind/internal/rabbitmq"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

const (
	RoutingKeyCreated = "reminder.created"
	RoutingKeyPaid    = "reminder.paid"
)

type eventBody struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Task      string    `json:"task"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	DueAt     time.Time `json:"due_at"`
	IsPaid    bool      `json:"is_paid"`
	CreatedAt time.Time `json:"created_at"`
}

// RabbitMQ publishes reminder lifecycle events to a topic exchange for
// external consumers (push notifications, analytics).
type RabbitMQ struct {
	log      logging.Logger
	channel  *rabbitmq.Channel
	exchange string
}

func NewRabbitMQ(log logging.Logger, channel *rabbitmq.Channel, exchange string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	return &RabbitMQ{log: log, channel: channel, exchange: exchange}
}

func (p *RabbitMQ) PublishCreated(ctx context.Context, rem reminder.Reminder) error {
	return p.publish(ctx, RoutingKeyCreated, rem)
}

func (p *RabbitMQ) PublishPaid(ctx context.Context, rem reminder.Reminder) error {
	return p.publish(ctx, RoutingKeyPaid, rem)
}

func (p *RabbitMQ) publish(ctx context.Context, routingKey string, rem reminder.Reminder) error {
	body, err := json.Marshal(eventBody{
		ID:        int64(rem.ID),
		UserID:    rem.UserID.String(),
		Task:      rem.Task,
		Date:      rem.Date.String(),
		Time:      rem.Time.String(),
		DueAt:     rem.DueAt,
		IsPaid:    rem.IsPaid,
		CreatedAt: rem.CreatedAt,
	})
	if err != nil {
		return err
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp091.Publishing{
		ContentType: "application/json",
		MessageId:   uuid.NewString(),
		Body:        body,
	})
	if err != nil {
		logging.Error(ctx, p.log, err, logging.Entry("routingKey", routingKey))
		return err
	}

	p.log.Info(
		ctx,
		"Reminder event has been published.",
		logging.Entry("exchange", p.exchange),
		logging.Entry("routingKey", routingKey),
		logging.Entry("reminderID", rem.ID),
	)
	return nil
}
