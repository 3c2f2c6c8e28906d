package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/VaccineBooker/internal/domain"
	"github.com/stpnv0/VaccineBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type VaccineService struct {
	repo   ports.VaccineRepo
	cache  ports.VaccineCache
	logger logger.Logger
	now    func() time.Time
}

func NewVaccineService(repo ports.VaccineRepo, cache ports.VaccineCache, logger logger.Logger) *VaccineService {
	return &VaccineService{
		repo:   repo,
		cache:  cache,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *VaccineService) Create(ctx context.Context, input domain.CreateVaccineInput) (*domain.Vaccine, error) {
	now := s.now()
	vaccine := &domain.Vaccine{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(input.Name),
		Description:    input.Description,
		Dosage:         input.Dosage,
		Availability:   domain.CalendarDate(input.Availability),
		Location:       input.Location,
		AvailableSlots: domain.DefaultAvailableSlots,
		Price:          input.Price,
		AgeGroups:      slices.Clone(input.AgeGroups),
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if input.AvailableSlots != nil {
		vaccine.AvailableSlots = *input.AvailableSlots
	}
	if input.IsActive != nil {
		vaccine.IsActive = *input.IsActive
	}
	if len(vaccine.AgeGroups) == 0 {
		vaccine.AgeGroups = []domain.AgeGroup{domain.AgeGroupAll}
	}
	// Новая вакцина без мест сразу неактивна
	vaccine.EnforceCapacity(0)

	if err := vaccine.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, vaccine); err != nil {
		return nil, fmt.Errorf("create vaccine: %w", err)
	}

	s.logger.Info("vaccine created",
		logger.String("vaccine_id", vaccine.ID),
		logger.String("name", vaccine.Name),
		logger.Int("slots", vaccine.AvailableSlots),
	)
	s.invalidate(ctx)

	return vaccine, nil
}

func (s *VaccineService) GetByID(ctx context.Context, id string) (*domain.Vaccine, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *VaccineService) Update(ctx context.Context, id string, input domain.UpdateVaccineInput) (*domain.Vaccine, error) {
	now := s.now()
	vaccine, err := s.repo.Update(ctx, id, func(v *domain.Vaccine) error {
		input.Apply(v)
		if err := v.Validate(); err != nil {
			return err
		}
		v.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update vaccine: %w", err)
	}

	s.logger.Info("vaccine updated",
		logger.String("vaccine_id", id),
		logger.Int("slots", vaccine.AvailableSlots),
		logger.Any("active", vaccine.IsActive),
	)
	s.invalidate(ctx)

	return vaccine, nil
}

// Delete removes the vaccine. Its bookings keep their snapshot and lose the reference.
func (s *VaccineService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete vaccine: %w", err)
	}

	s.logger.Info("vaccine deleted", logger.String("vaccine_id", id))
	s.invalidate(ctx)

	return nil
}

// ListPublic returns active vaccines through the catalog cache.
func (s *VaccineService) ListPublic(ctx context.Context, q domain.VaccineQuery) ([]*domain.Vaccine, error) {
	q.ActiveOnly = true
	if err := q.Normalize(); err != nil {
		return nil, err
	}

	return s.cache.GetOrLoad(ctx, q, func(ctx context.Context) ([]*domain.Vaccine, error) {
		return s.repo.List(ctx, q)
	})
}

// ListAll is the admin view: inactive vaccines included, cache bypassed.
func (s *VaccineService) ListAll(ctx context.Context, q domain.VaccineQuery) ([]*domain.Vaccine, error) {
	q.ActiveOnly = false
	if err := q.Normalize(); err != nil {
		return nil, err
	}

	return s.repo.List(ctx, q)
}

func (s *VaccineService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("failed to invalidate vaccine cache",
			logger.String("error", err.Error()),
		)
	}
}
