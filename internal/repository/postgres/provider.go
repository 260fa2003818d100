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

func (r *providerRepository) Create(ctx context.Context, provider *model.Provider) error {
	query := `
		INSERT INTO providers (
			id, name, specialization, chamber, location,
			available_days, hours, slot_minutes, phone, email, fee,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	provider.ID = uuid.New()
	provider.CreatedAt = time.Now()
	provider.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		provider.ID,
		provider.Name,
		provider.Specialization,
		provider.Chamber,
		provider.Location,
		provider.AvailableDays,
		provider.Hours,
		provider.SlotMinutes,
		provider.Phone,
		provider.Email,
		provider.Fee,
		provider.CreatedAt,
		provider.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}
	return nil
}

func (r *providerRepository) Get(ctx context.Context, id uuid.UUID) (*model.Provider, error) {
	query := `
		SELECT id, name, specialization, chamber, location,
			   available_days, hours, slot_minutes, phone, email, fee,
			   created_at, updated_at
		FROM providers
		WHERE id = $1
	`
	var provider model.Provider
	err := r.db.GetContext(ctx, &provider, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}
	return &provider, nil
}

func (r *providerRepository) List(ctx context.Context, specialization string) ([]*model.Provider, error) {
	query := `
		SELECT id, name, specialization, chamber, location,
			   available_days, hours, slot_minutes, phone, email, fee,
			   created_at, updated_at
		FROM providers
	`
	args := []interface{}{}
	if specialization != "" {
		query += " WHERE specialization ILIKE '%' || $1 || '%'"
		args = append(args, specialization)
	}
	query += " ORDER BY created_at DESC"

	var providers []*model.Provider
	err := r.db.SelectContext(ctx, &providers, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	return providers, nil
}

func (r *providerRepository) Update(ctx context.Context, provider *model.Provider) error {
	query := `
		UPDATE providers
		SET name = $1, specialization = $2, chamber = $3, location = $4,
			available_days = $5, hours = $6, slot_minutes = $7,
			phone = $8, email = $9, fee = $10, updated_at = $11
		WHERE id = $12
	`
	provider.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		provider.Name,
		provider.Specialization,
		provider.Chamber,
		provider.Location,
		provider.AvailableDays,
		provider.Hours,
		provider.SlotMinutes,
		provider.Phone,
		provider.Email,
		provider.Fee,
		provider.UpdatedAt,
		provider.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update provider: %w", err)
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

func (r *providerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM providers WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete provider: %w", err)
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
