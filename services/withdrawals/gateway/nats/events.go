package nats

import (
	"encoding/json"
	"fmt"

	"github.com/kasule/wagepay/internal/pkg/models"
)

// Publisher is the subset of the NATS client the event publisher needs
type Publisher interface {
	Publish(subject string, data []byte) error
}

// EventPublisher publishes withdrawal lifecycle events to NATS
type EventPublisher struct {
	client Publisher
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(client Publisher) *EventPublisher {
	return &EventPublisher{client: client}
}

// PublishWithdrawalEvent publishes a withdrawal event to the given subject
func (p *EventPublisher) PublishWithdrawalEvent(subject string, event *models.WithdrawalEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal withdrawal event: %w", err)
	}

	if err := p.client.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish withdrawal event: %w", err)
	}

	return nil
}
