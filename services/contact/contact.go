// Package contact records contact form submissions.
package contact

import (
	"context"
	"fmt"
	"time"

	"ecoskip/events"
	"ecoskip/models"
	"ecoskip/utils"

	"go.uber.org/zap"
)

type ContactService interface {
	Submit(ctx context.Context, msg models.ContactSubmission) error
}

type DefaultContactService struct {
	Events  events.Publisher
	Topic   string
	NowFunc func() time.Time
}

func NewContactService(pub events.Publisher, topic string) *DefaultContactService {
	return &DefaultContactService{Events: pub, Topic: topic, NowFunc: time.Now}
}

// Submit stamps, logs and publishes the submission. Nothing is stored.
func (s *DefaultContactService) Submit(ctx context.Context, msg models.ContactSubmission) error {
	msg.Timestamp = s.NowFunc().UTC()

	utils.GetLogger().Info("Contact form submission",
		zap.String("name", msg.Name),
		zap.String("email", msg.Email),
		zap.String("phone", msg.Phone),
		zap.String("subject", msg.Subject),
		zap.String("message", msg.Message),
		zap.Time("timestamp", msg.Timestamp),
	)

	if err := s.Events.Publish(ctx, s.Topic, msg.Email, msg); err != nil {
		return fmt.Errorf("failed to forward contact message: %w", err)
	}
	return nil
}
