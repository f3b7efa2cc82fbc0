package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/gym-console/internal/domain/alerts"
	"github.com/magabrotheeeer/gym-console/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) ListActiveMembers(ctx context.Context) ([]*models.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Member), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}
func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	return m.Called(key, value, expiration).Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestAlertsService_Digest(t *testing.T) {
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	cacheKey := "alerts:digest:2024-03-15"
	expired := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	members := []*models.Member{
		{UID: "uid-1", SubscriptionExpirationDate: &expired, CertificatePresent: true,
			CertificateExpirationDate: &expired},
		{UID: "uid-2", PaymentStatus: alerts.PaymentStatusPending},
	}

	t.Run("cache miss aggregates and caches", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)
		svc := NewAlertsService(repo, cache, newNoopLogger())

		cache.On("Get", cacheKey, mock.Anything).Return(false, nil).Once()
		repo.On("ListActiveMembers", mock.Anything).Return(members, nil).Once()
		cache.On("Set", cacheKey, mock.Anything, time.Minute).Return(nil).Once()

		got, err := svc.Digest(context.Background(), today)
		require.NoError(t, err)
		// просроченный абонемент, отсутствие справки у второго клиента
		// и ожидающая оплата; просроченная справка не считается истекающей
		require.Len(t, got, 3)
		assert.Equal(t, alerts.BucketExpiredSubscriptions, got[0].Type)
		assert.Equal(t, alerts.BucketMissingCertificates, got[1].Type)
		assert.Equal(t, alerts.BucketPendingPayments, got[2].Type)

		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)
		svc := NewAlertsService(repo, cache, newNoopLogger())

		cache.On("Get", cacheKey, mock.Anything).Return(true, nil).Once()

		_, err := svc.Digest(context.Background(), today)
		require.NoError(t, err)

		repo.AssertNotCalled(t, "ListActiveMembers", mock.Anything)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)
		svc := NewAlertsService(repo, cache, newNoopLogger())

		cache.On("Get", cacheKey, mock.Anything).Return(false, nil).Once()
		repo.On("ListActiveMembers", mock.Anything).Return(nil, errors.New("db down")).Once()

		_, err := svc.Digest(context.Background(), today)
		assert.Error(t, err)
	})

	t.Run("cache read error falls through to repository", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)
		svc := NewAlertsService(repo, cache, newNoopLogger())

		cache.On("Get", cacheKey, mock.Anything).Return(false, errors.New("redis down")).Once()
		repo.On("ListActiveMembers", mock.Anything).Return(members, nil).Once()
		cache.On("Set", cacheKey, mock.Anything, time.Minute).Return(nil).Once()

		_, err := svc.Digest(context.Background(), today)
		require.NoError(t, err)

		repo.AssertExpectations(t)
	})
}
