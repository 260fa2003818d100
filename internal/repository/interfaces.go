package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aorbo/booking-api/internal/model"
)

type ProviderRepository interface {
	Create(ctx context.Context, provider *model.Provider) error
	Get(ctx context.Context, id uuid.UUID) (*model.Provider, error)
	List(ctx context.Context, specialization string) ([]*model.Provider, error)
	Update(ctx context.Context, provider *model.Provider) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BookingRepository is the booking ledger. Create must be atomic with
// respect to the slot key: concurrent inserts for the same
// (provider, date, slot) resolve to exactly one success and
// ErrDuplicateSlot for the rest.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	Get(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	ListBookedSlots(ctx context.Context, providerID uuid.UUID, date string) ([]string, error)
	CountBooked(ctx context.Context, providerID uuid.UUID, date string) (int, error)
	MarkCancelled(ctx context.Context, id uuid.UUID) error
	ListForRequester(ctx context.Context, requesterID string) ([]*model.Booking, error)
}

type HomeVisitRepository interface {
	Create(ctx context.Context, req *model.HomeVisitRequest) error
	Get(ctx context.Context, id uuid.UUID) (*model.HomeVisitRequest, error)
	ListForRequester(ctx context.Context, requesterID string) ([]*model.HomeVisitRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.HomeVisitStatus) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *model.OutboxEvent) error
	GetPendingEvents(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OutboxStatus, errMsg *string) error
	DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error)
}
