package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/salao-digital/salon-scheduler/internal/domain"
	serviceRepo "github.com/salao-digital/salon-scheduler/internal/infra/storage/service"
)

// Service manages the catalog of offered services
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService creates the catalog service
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Create adds a service to the catalog
func (s *Service) Create(ctx context.Context, name string, durationMinutes int) (*domain.Service, error) {
	if err := validateService(name, durationMinutes); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.serviceRepo.Create(ctx, &domain.Service{
		ID:              uuid.New(),
		Name:            strings.TrimSpace(name),
		DurationMinutes: durationMinutes,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created service id=%s name=%s", created.ID, created.Name)
	return created, nil
}

// GetByID returns one service
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return svc, nil
}

// List returns the whole catalog
func (s *Service) List(ctx context.Context) ([]*domain.Service, error) {
	services, err := s.serviceRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return services, nil
}

// Update changes name and/or duration. Appointments booked earlier keep the
// snapshot they were created with.
func (s *Service) Update(ctx context.Context, id uuid.UUID, name *string, durationMinutes *int) (*domain.Service, error) {
	if name == nil && durationMinutes == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if name != nil && strings.TrimSpace(*name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if durationMinutes != nil && *durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}

	updated, err := s.serviceRepo.Update(ctx, id, name, durationMinutes)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated service id=%s", id)
	return updated, nil
}

// Delete removes a service from the catalog
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Delete: service id=%s not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted service id=%s", id)
	return nil
}

func validateService(name string, durationMinutes int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if durationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}
	return nil
}
