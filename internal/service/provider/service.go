package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/aorbo/booking-api/internal/model"
	"github.com/aorbo/booking-api/internal/repository"
)

const (
	cacheTTL     = 5 * time.Minute
	cacheCleanup = 10 * time.Minute
)

// Service manages provider records. Reads go through a small in-process
// cache since provider rows change rarely but are loaded on every
// availability query and booking attempt.
type Service struct {
	repo  repository.ProviderRepository
	cache *gocache.Cache
}

func NewService(repo repository.ProviderRepository) *Service {
	return &Service{
		repo:  repo,
		cache: gocache.New(cacheTTL, cacheCleanup),
	}
}

func (s *Service) Create(ctx context.Context, req *model.CreateProviderRequest) (*model.Provider, error) {
	provider := &model.Provider{
		Name:           req.Name,
		Specialization: req.Specialization,
		Chamber:        req.Chamber,
		Location:       req.Location,
		AvailableDays:  req.AvailableDays,
		Hours:          req.Hours,
		SlotMinutes:    req.SlotMinutes,
		Phone:          req.Phone,
		Email:          req.Email,
		Fee:            req.Fee,
	}
	if provider.SlotMinutes == 0 {
		provider.SlotMinutes = model.DefaultSlotMinutes
	}

	if err := s.repo.Create(ctx, provider); err != nil {
		return nil, fmt.Errorf("failed to create provider: %w", err)
	}
	return provider, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Provider, error) {
	if cached, found := s.cache.Get(id.String()); found {
		return cached.(*model.Provider), nil
	}

	provider, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(id.String(), provider, gocache.DefaultExpiration)
	return provider, nil
}

func (s *Service) List(ctx context.Context, specialization string) ([]*model.Provider, error) {
	providers, err := s.repo.List(ctx, specialization)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	return providers, nil
}

func (s *Service) Update(ctx context.Context, provider *model.Provider) error {
	if err := s.repo.Update(ctx, provider); err != nil {
		return err
	}
	s.cache.Delete(provider.ID.String())
	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(id.String())
	return nil
}
