package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aorbo/booking-api/internal/model"
	"github.com/aorbo/booking-api/internal/repository"
)

func (r *homeVisitRepository) Create(ctx context.Context, req *model.HomeVisitRequest) error {
	query := `
		INSERT INTO home_visit_requests (
			id, requester_id, patient_name, patient_phone, service_type,
			preferred_date, preferred_slot, city, area, address, notes,
			booking_id, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	req.ID = uuid.New()
	req.CreatedAt = time.Now()
	req.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		req.ID,
		req.RequesterID,
		req.PatientName,
		req.PatientPhone,
		req.ServiceType,
		req.PreferredDate,
		req.PreferredSlot,
		req.City,
		req.Area,
		req.Address,
		req.Notes,
		req.BookingID,
		req.Status,
		req.CreatedAt,
		req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create home visit request: %w", err)
	}
	return nil
}

func (r *homeVisitRepository) Get(ctx context.Context, id uuid.UUID) (*model.HomeVisitRequest, error) {
	query := `
		SELECT id, requester_id, patient_name, patient_phone, service_type,
			   preferred_date, preferred_slot, city, area, address, notes,
			   booking_id, status, created_at, updated_at
		FROM home_visit_requests
		WHERE id = $1
	`
	var req model.HomeVisitRequest
	err := r.db.GetContext(ctx, &req, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get home visit request: %w", err)
	}
	return &req, nil
}

func (r *homeVisitRepository) ListForRequester(ctx context.Context, requesterID string) ([]*model.HomeVisitRequest, error) {
	query := `
		SELECT id, requester_id, patient_name, patient_phone, service_type,
			   preferred_date, preferred_slot, city, area, address, notes,
			   booking_id, status, created_at, updated_at
		FROM home_visit_requests
		WHERE requester_id = $1
		ORDER BY created_at DESC
	`
	var reqs []*model.HomeVisitRequest
	err := r.db.SelectContext(ctx, &reqs, query, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list home visit requests: %w", err)
	}
	return reqs, nil
}

func (r *homeVisitRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.HomeVisitStatus) error {
	query := `
		UPDATE home_visit_requests
		SET status = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update home visit request: %w", err)
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
