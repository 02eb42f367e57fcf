package clients

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salao-digital/salon-scheduler/internal/domain"
	clientRepo "github.com/salao-digital/salon-scheduler/internal/infra/storage/client"
	"github.com/salao-digital/salon-scheduler/pkg/ptr"
)

type fakeRepo struct {
	createFn  func(ctx context.Context, c *domain.Client) (*domain.Client, error)
	getByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	getAllFn  func(ctx context.Context) ([]*domain.Client, error)
	updateFn  func(ctx context.Context, id uuid.UUID, name *string, phone, notes *string, tier *domain.ClientTier) (*domain.Client, error)
	deleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeRepo) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	return f.createFn(ctx, c)
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeRepo) GetAll(ctx context.Context) ([]*domain.Client, error) {
	return f.getAllFn(ctx)
}

func (f *fakeRepo) Update(ctx context.Context, id uuid.UUID, name *string, phone, notes *string, tier *domain.ClientTier) (*domain.Client, error) {
	return f.updateFn(ctx, id, name, phone, notes, tier)
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return f.deleteFn(ctx, id)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestService_Create(t *testing.T) {
	passthrough := &fakeRepo{
		createFn: func(ctx context.Context, c *domain.Client) (*domain.Client, error) {
			return c, nil
		},
	}

	t.Run("empty tier defaults to regular", func(t *testing.T) {
		svc := NewService(passthrough, noopLogger{})
		created, err := svc.Create(context.Background(), "Maria Silva", ptr.Ptr("11999990000"), nil, "")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.Equal(t, domain.TierRegular, created.Tier)
	})

	t.Run("vip tier is kept", func(t *testing.T) {
		svc := NewService(passthrough, noopLogger{})
		created, err := svc.Create(context.Background(), "Ana Souza", nil, ptr.Ptr("prefere tarde"), domain.TierVIP)
		require.NoError(t, err)
		assert.Equal(t, domain.TierVIP, created.Tier)
	})

	t.Run("unknown tier is rejected", func(t *testing.T) {
		svc := NewService(passthrough, noopLogger{})
		_, err := svc.Create(context.Background(), "Maria Silva", nil, nil, domain.ClientTier("platinum"))
		assert.ErrorIs(t, err, ErrInvalidTier)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		svc := NewService(passthrough, noopLogger{})
		_, err := svc.Create(context.Background(), "   ", nil, nil, domain.TierRegular)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Update(t *testing.T) {
	id := uuid.New()

	t.Run("tier change passes through", func(t *testing.T) {
		repo := &fakeRepo{
			updateFn: func(ctx context.Context, gotID uuid.UUID, name *string, phone, notes *string, tier *domain.ClientTier) (*domain.Client, error) {
				assert.Equal(t, id, gotID)
				require.NotNil(t, tier)
				return &domain.Client{ID: gotID, Name: "Maria Silva", Tier: *tier}, nil
			},
		}

		svc := NewService(repo, noopLogger{})
		updated, err := svc.Update(context.Background(), id, nil, nil, nil, ptr.Ptr(domain.TierVIP))
		require.NoError(t, err)
		assert.Equal(t, domain.TierVIP, updated.Tier)
	})

	t.Run("no fields set is rejected", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, noopLogger{})
		_, err := svc.Update(context.Background(), id, nil, nil, nil, nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown client maps to not found", func(t *testing.T) {
		repo := &fakeRepo{
			updateFn: func(ctx context.Context, gotID uuid.UUID, name *string, phone, notes *string, tier *domain.ClientTier) (*domain.Client, error) {
				return nil, clientRepo.ErrClientNotFound
			},
		}

		svc := NewService(repo, noopLogger{})
		_, err := svc.Update(context.Background(), id, ptr.Ptr("Outro Nome"), nil, nil, nil)
		assert.ErrorIs(t, err, ErrClientNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("unknown client maps to not found", func(t *testing.T) {
		repo := &fakeRepo{
			deleteFn: func(ctx context.Context, id uuid.UUID) error {
				return clientRepo.ErrClientNotFound
			},
		}

		svc := NewService(repo, noopLogger{})
		err := svc.Delete(context.Background(), uuid.New())
		assert.ErrorIs(t, err, ErrClientNotFound)
	})
}
