package homevisit

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aorbo/booking-api/internal/model"
	"github.com/aorbo/booking-api/internal/repository"
	"github.com/aorbo/booking-api/internal/schedule"
	"github.com/aorbo/booking-api/pkg/errors"
)

// Service manages home visit requests. These carry no slot uniqueness
// semantics; the preferred date and slot are advisory.
type Service struct {
	repo repository.HomeVisitRepository
}

func NewService(repo repository.HomeVisitRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req *model.CreateHomeVisitRequest) (*model.HomeVisitRequest, error) {
	if _, err := schedule.ParseDate(req.PreferredDate); err != nil {
		return nil, errors.BadRequest("invalid preferred date, expected YYYY-MM-DD", err)
	}
	if req.PreferredDate < time.Now().Format("2006-01-02") {
		return nil, errors.BadRequest("cannot request a home visit in the past", nil)
	}

	visit := &model.HomeVisitRequest{
		RequesterID:   req.RequesterID,
		PatientName:   req.PatientName,
		PatientPhone:  req.PatientPhone,
		ServiceType:   req.ServiceType,
		PreferredDate: req.PreferredDate,
		PreferredSlot: req.PreferredSlot,
		City:          req.City,
		Area:          req.Area,
		Address:       req.Address,
		Notes:         req.Notes,
		Status:        model.HomeVisitStatusPending,
	}

	if req.BookingID != "" {
		bookingID, err := uuid.Parse(req.BookingID)
		if err != nil {
			return nil, errors.BadRequest("invalid booking id", err)
		}
		visit.BookingID = &bookingID
	}

	if err := s.repo.Create(ctx, visit); err != nil {
		return nil, errors.Internal(fmt.Errorf("failed to create home visit request: %w", err))
	}
	return visit, nil
}

func (s *Service) ListForRequester(ctx context.Context, requesterID string) ([]*model.HomeVisitRequest, error) {
	if requesterID == "" {
		return nil, errors.MissingField("requester_id")
	}

	visits, err := s.repo.ListForRequester(ctx, requesterID)
	if err != nil {
		return nil, errors.Internal(fmt.Errorf("failed to list home visit requests: %w", err))
	}
	return visits, nil
}

// Cancel rejects cancellation of completed visits and is a no-op for
// already cancelled ones.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*model.HomeVisitRequest, error) {
	visit, err := s.repo.Get(ctx, id)
	if stderrors.Is(err, repository.ErrNotFound) {
		return nil, errors.NotFound("home visit request", err)
	}
	if err != nil {
		return nil, errors.Internal(fmt.Errorf("failed to load home visit request: %w", err))
	}

	switch visit.Status {
	case model.HomeVisitStatusCompleted:
		return nil, errors.BadRequest("completed requests cannot be cancelled", nil)
	case model.HomeVisitStatusCancelled:
		return visit, nil
	}

	if err := s.repo.UpdateStatus(ctx, id, model.HomeVisitStatusCancelled); err != nil {
		return nil, errors.Internal(fmt.Errorf("failed to cancel home visit request: %w", err))
	}
	visit.Status = model.HomeVisitStatusCancelled
	return visit, nil
}
