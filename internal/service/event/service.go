package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aorbo/booking-api/internal/model"
	"github.com/aorbo/booking-api/internal/repository"
)

// Service records domain events in the outbox table. A separate worker
// publishes them to the broker, so emitting never blocks a booking on
// broker availability.
type Service struct {
	outboxRepo repository.OutboxRepository
}

func NewService(outboxRepo repository.OutboxRepository) *Service {
	return &Service{outboxRepo: outboxRepo}
}

func (s *Service) Emit(ctx context.Context, eventType string, payload interface{}) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	event := &model.OutboxEvent{
		EventType: eventType,
		Payload:   payloadJSON,
	}

	if err := s.outboxRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("failed to create outbox event: %w", err)
	}
	return nil
}
