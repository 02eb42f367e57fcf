package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/salao-digital/salon-scheduler/internal/domain"
	clientRepo "github.com/salao-digital/salon-scheduler/internal/infra/storage/client"
)

// Service manages the client registry
type Service struct {
	clientRepo ClientRepository
	logger     Logger
}

// NewService creates the registry service
func NewService(clientRepo ClientRepository, logger Logger) *Service {
	return &Service{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Create adds a client to the registry. Tier defaults to regular.
func (s *Service) Create(ctx context.Context, name string, phone, notes *string, tier domain.ClientTier) (*domain.Client, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if tier == "" {
		tier = domain.TierRegular
	}
	if tier != domain.TierRegular && tier != domain.TierVIP {
		s.logger.Warn("Create: invalid tier %q", tier)
		return nil, fmt.Errorf("%w: %q", ErrInvalidTier, tier)
	}

	created, err := s.clientRepo.Create(ctx, &domain.Client{
		ID:    uuid.New(),
		Name:  strings.TrimSpace(name),
		Phone: phone,
		Notes: notes,
		Tier:  tier,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created client id=%s name=%s", created.ID, created.Name)
	return created, nil
}

// GetByID returns one client
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	c, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("GetByID: client id=%s not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByID: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return c, nil
}

// List returns the whole registry
func (s *Service) List(ctx context.Context) ([]*domain.Client, error) {
	clients, err := s.clientRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return clients, nil
}

// Update changes the mutable fields of a client
func (s *Service) Update(ctx context.Context, id uuid.UUID, name *string, phone, notes *string, tier *domain.ClientTier) (*domain.Client, error) {
	if name == nil && phone == nil && notes == nil && tier == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if name != nil && strings.TrimSpace(*name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if tier != nil && *tier != domain.TierRegular && *tier != domain.TierVIP {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTier, *tier)
	}

	updated, err := s.clientRepo.Update(ctx, id, name, phone, notes, tier)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Update: client id=%s not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("Update: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated client id=%s", id)
	return updated, nil
}

// Delete removes a client. Past appointments keep the client's name: the
// schedule stores it denormalized.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Delete: client id=%s not found", id)
			return ErrClientNotFound
		}
		s.logger.Error("Delete: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted client id=%s", id)
	return nil
}
