package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/aorbo/booking-api/internal/model"
	"github.com/aorbo/booking-api/internal/repository"
)

// The bookings table carries UNIQUE (provider_id, date, slot). That
// constraint, not any read in this package, is what prevents double
// booking under concurrency.

func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	query := `
		INSERT INTO bookings (
			id, provider_id, specialization, requester_id,
			patient_name, patient_phone, date, slot,
			slot_minutes, serial_no, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	booking.ID = uuid.New()
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		booking.ID,
		booking.ProviderID,
		booking.Specialization,
		booking.RequesterID,
		booking.PatientName,
		booking.PatientPhone,
		booking.Date,
		booking.Slot,
		booking.SlotMinutes,
		booking.SerialNo,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return repository.ErrDuplicateSlot
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *bookingRepository) Get(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	query := `
		SELECT id, provider_id, specialization, requester_id,
			   patient_name, patient_phone, date, slot,
			   slot_minutes, serial_no, status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`
	var booking model.Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

func (r *bookingRepository) ListBookedSlots(ctx context.Context, providerID uuid.UUID, date string) ([]string, error) {
	query := `
		SELECT slot FROM bookings
		WHERE provider_id = $1 AND date = $2 AND status = $3
	`
	var slots []string
	err := r.db.SelectContext(ctx, &slots, query, providerID, date, model.BookingStatusBooked)
	if err != nil {
		return nil, fmt.Errorf("failed to list booked slots: %w", err)
	}
	return slots, nil
}

// CountBooked feeds the per-day serial number. The count is read before
// the reservation insert and is not atomic with it, so two concurrent
// bookings for the same provider and day can receive equal serials.
func (r *bookingRepository) CountBooked(ctx context.Context, providerID uuid.UUID, date string) (int, error) {
	query := `
		SELECT COUNT(*) FROM bookings
		WHERE provider_id = $1 AND date = $2 AND status = $3
	`
	var count int
	err := r.db.GetContext(ctx, &count, query, providerID, date, model.BookingStatusBooked)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}

func (r *bookingRepository) MarkCancelled(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE bookings
		SET status = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := r.db.ExecContext(ctx, query, model.BookingStatusCancelled, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *bookingRepository) ListForRequester(ctx context.Context, requesterID string) ([]*model.Booking, error) {
	query := `
		SELECT id, provider_id, specialization, requester_id,
			   patient_name, patient_phone, date, slot,
			   slot_minutes, serial_no, status, created_at, updated_at
		FROM bookings
		WHERE requester_id = $1
		ORDER BY created_at DESC
	`
	var bookings []*model.Booking
	err := r.db.SelectContext(ctx, &bookings, query, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}
