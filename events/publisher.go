// Package events publishes domain events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ecoskip/models"

	"github.com/segmentio/kafka-go"
)

// Publisher sends one JSON-encoded event to topic.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload any) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes to any topic through a single kafka-go writer.
type KafkaPublisher struct {
	writer messageWriter
}

// NewKafkaPublisher returns a publisher for brokers. The writer carries no default
// topic; every message names its own.
func NewKafkaPublisher(brokers []string) *KafkaPublisher {
	return &KafkaPublisher{writer: &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		WriteTimeout:           5 * time.Second,
	}}
}

// New returns a Kafka publisher, or a no-op one when no brokers are configured.
func New(brokers []string) Publisher {
	if len(brokers) == 0 {
		return NoopPublisher{}
	}
	return NewKafkaPublisher(brokers)
}

func (p *KafkaPublisher) Publish(ctx context.Context, topic, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", topic, err)
	}
	msg := kafka.Message{Topic: topic, Key: []byte(key), Value: value, Time: time.Now().UTC()}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s event: %w", topic, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, string, any) error { return nil }
func (NoopPublisher) Close() error                                       { return nil }

// BookingCreated is emitted after a booking is persisted.
type BookingCreated struct {
	BookingID      string       `json:"bookingId"`
	UserID         string       `json:"userId"`
	SkipID         int          `json:"skipId"`
	Postcode       string       `json:"postcode"`
	PermitRequired bool         `json:"permitRequired"`
	DeliveryDate   *time.Time   `json:"deliveryDate"`
	CollectionDate *time.Time   `json:"collectionDate"`
	TotalAmount    models.Money `json:"totalAmount"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// NewBookingCreated builds the event for b.
func NewBookingCreated(b *models.Booking) BookingCreated {
	ev := BookingCreated{
		BookingID:      b.BookingID,
		UserID:         b.UserID,
		Postcode:       b.Address.Postcode,
		PermitRequired: b.PermitRequired,
		DeliveryDate:   b.DeliveryDate,
		CollectionDate: b.CollectionDate,
		TotalAmount:    b.TotalAmount,
		CreatedAt:      b.CreatedAt,
	}
	if b.SelectedSkip != nil {
		ev.SkipID = b.SelectedSkip.ID
	}
	return ev
}
