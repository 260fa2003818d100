package scheduling

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/aorbo/booking-api/internal/model"
	"github.com/aorbo/booking-api/internal/repository"
	"github.com/aorbo/booking-api/internal/schedule"
	"github.com/aorbo/booking-api/pkg/errors"
	"github.com/aorbo/booking-api/pkg/logger"
	"github.com/aorbo/booking-api/pkg/metrics"
)

// EventEmitter records booking lifecycle events.
type EventEmitter interface {
	Emit(ctx context.Context, eventType string, payload interface{}) error
}

// ProviderSource resolves provider records. In production this is the
// cache-backed provider service.
type ProviderSource interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Provider, error)
}

// Service orchestrates availability queries and reservations. All
// booking mutations go through the ledger repository; the storage-level
// uniqueness constraint on (provider, date, slot) is the only conflict
// control.
type Service struct {
	providers ProviderSource
	ledger    repository.BookingRepository
	events    EventEmitter
	metrics   *metrics.Metrics
	logger    *logger.Logger
}

func NewService(
	providers ProviderSource,
	ledger repository.BookingRepository,
	events EventEmitter,
	m *metrics.Metrics,
	l *logger.Logger,
) *Service {
	return &Service{
		providers: providers,
		ledger:    ledger,
		events:    events,
		metrics:   m,
		logger:    l,
	}
}

// AvailableSlots returns the free slots for a provider on a date.
// "Provider does not work that day" and "provider hours unparsable" are
// ordinary outcomes reported through Reason, not errors; only unknown
// providers, malformed input and storage faults return an error.
func (s *Service) AvailableSlots(ctx context.Context, providerID, date string, granularityMinutes int) (*model.SlotsResponse, error) {
	pid, err := uuid.Parse(providerID)
	if err != nil {
		return nil, errors.BadRequest("invalid provider id", err)
	}

	day, err := schedule.ParseDate(date)
	if err != nil {
		return nil, errors.BadRequest("invalid date, expected YYYY-MM-DD", err)
	}

	provider, err := s.providers.Get(ctx, pid)
	if stderrors.Is(err, repository.ErrNotFound) {
		return nil, errors.UnknownProvider(err)
	}
	if err != nil {
		return nil, errors.Internal(fmt.Errorf("failed to load provider: %w", err))
	}

	granularity := granularityMinutes
	if granularity == 0 {
		granularity = provider.Granularity()
	}

	resp := &model.SlotsResponse{
		ProviderID:  providerID,
		Date:        date,
		SlotMinutes: granularity,
		Slots:       []string{},
	}

	dayCode := day.DayCode()
	if !provider.AvailableOn(dayCode) {
		resp.Reason = fmt.Sprintf("Provider not available on %s", dayCode)
		s.countSlotQuery("not_available")
		return resp, nil
	}

	window, ok := schedule.ParseWindow(provider.Hours)
	if !ok {
		resp.Reason = "Provider hours format invalid"
		s.countSlotQuery("invalid_window")
		return resp, nil
	}

	all, err := schedule.Slots(window, granularity)
	if err != nil {
		return nil, errors.BadRequest("invalid slot granularity", err)
	}

	booked, err := s.ledger.ListBookedSlots(ctx, pid, date)
	if err != nil {
		return nil, errors.Internal(fmt.Errorf("failed to load booked slots: %w", err))
	}

	bookedSet := make(map[string]struct{}, len(booked))
	for _, slot := range booked {
		bookedSet[slot] = struct{}{}
	}
	for _, slot := range all {
		if _, taken := bookedSet[slot]; !taken {
			resp.Slots = append(resp.Slots, slot)
		}
	}

	s.countSlotQuery("ok")
	return resp, nil
}

// Book validates a reservation request against the provider's schedule
// and then performs a single atomic insert into the ledger. The serial
// number is a count read taken before the insert; under concurrent
// bookings for the same provider and day two bookings can share a
// serial while still holding distinct slot keys.
func (s *Service) Book(ctx context.Context, req *model.BookSlotRequest) (*model.Booking, error) {
	if err := validateBookRequest(req); err != nil {
		return nil, err
	}

	pid, err := uuid.Parse(req.ProviderID)
	if err != nil {
		return nil, errors.BadRequest("invalid provider id", err)
	}

	day, err := schedule.ParseDate(req.Date)
	if err != nil {
		return nil, errors.BadRequest("invalid date, expected YYYY-MM-DD", err)
	}

	provider, err := s.providers.Get(ctx, pid)
	if stderrors.Is(err, repository.ErrNotFound) {
		return nil, errors.UnknownProvider(err)
	}
	if err != nil {
		return nil, errors.Internal(fmt.Errorf("failed to load provider: %w", err))
	}

	dayCode := day.DayCode()
	if !provider.AvailableOn(dayCode) {
		return nil, errors.NotAvailableDay(dayCode)
	}

	window, ok := schedule.ParseWindow(provider.Hours)
	if !ok {
		return nil, errors.InvalidWindow()
	}

	granularity := provider.Granularity()
	all, err := schedule.Slots(window, granularity)
	if err != nil {
		return nil, errors.BadRequest("invalid slot granularity", err)
	}
	if !containsSlot(all, req.Slot) {
		return nil, errors.SlotNotOffered(req.Slot)
	}

	count, err := s.ledger.CountBooked(ctx, pid, req.Date)
	if err != nil {
		return nil, errors.Internal(fmt.Errorf("failed to compute serial number: %w", err))
	}

	booking := &model.Booking{
		ProviderID:     pid,
		Specialization: provider.Specialization,
		RequesterID:    req.RequesterID,
		PatientName:    req.PatientName,
		PatientPhone:   req.PatientPhone,
		Date:           req.Date,
		Slot:           req.Slot,
		SlotMinutes:    granularity,
		SerialNo:       count + 1,
		Status:         model.BookingStatusBooked,
	}

	if err := s.ledger.Create(ctx, booking); err != nil {
		if stderrors.Is(err, repository.ErrDuplicateSlot) {
			if s.metrics != nil {
				s.metrics.BookingConflicts.Inc()
			}
			return nil, errors.SlotConflict()
		}
		return nil, errors.Internal(fmt.Errorf("failed to create booking: %w", err))
	}

	if s.metrics != nil {
		s.metrics.BookingsTotal.Inc()
	}
	s.emit(ctx, model.EventBookingCreated, booking)

	return booking, nil
}

// Cancel transitions a booking to cancelled. Cancelling an already
// cancelled booking returns it unchanged so clients can retry safely;
// the slot key stays occupied either way.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	booking, err := s.ledger.Get(ctx, id)
	if stderrors.Is(err, repository.ErrNotFound) {
		return nil, errors.NotFound("booking", err)
	}
	if err != nil {
		return nil, errors.Internal(fmt.Errorf("failed to load booking: %w", err))
	}

	if booking.Status == model.BookingStatusCancelled {
		return booking, nil
	}

	if err := s.ledger.MarkCancelled(ctx, id); err != nil {
		return nil, errors.Internal(fmt.Errorf("failed to cancel booking: %w", err))
	}
	booking.Status = model.BookingStatusCancelled

	if s.metrics != nil {
		s.metrics.Cancellations.Inc()
	}
	s.emit(ctx, model.EventBookingCancelled, booking)

	return booking, nil
}

func (s *Service) ListBookings(ctx context.Context, requesterID string) ([]*model.Booking, error) {
	if requesterID == "" {
		return nil, errors.MissingField("requester_id")
	}

	bookings, err := s.ledger.ListForRequester(ctx, requesterID)
	if err != nil {
		return nil, errors.Internal(fmt.Errorf("failed to list bookings: %w", err))
	}
	return bookings, nil
}

func validateBookRequest(req *model.BookSlotRequest) error {
	fields := []struct {
		name  string
		value string
	}{
		{"provider_id", req.ProviderID},
		{"date", req.Date},
		{"slot", req.Slot},
		{"patient_name", req.PatientName},
		{"patient_phone", req.PatientPhone},
		{"requester_id", req.RequesterID},
	}
	for _, f := range fields {
		if f.value == "" {
			return errors.MissingField(f.name)
		}
	}
	return nil
}

func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

// Event emission is best effort: a booking that cannot be announced is
// still a booking.
func (s *Service) emit(ctx context.Context, eventType string, booking *model.Booking) {
	if s.events == nil {
		return
	}
	if err := s.events.Emit(ctx, eventType, booking); err != nil && s.logger != nil {
		s.logger.Error(err, "failed to emit booking event",
			"event_type", eventType, "booking_id", booking.ID.String())
	}
}

func (s *Service) countSlotQuery(outcome string) {
	if s.metrics != nil {
		s.metrics.SlotQueries.WithLabelValues(outcome).Inc()
	}
}
