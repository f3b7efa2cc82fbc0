// Package services содержит бизнес-логику сводки уведомлений для стойки
// администратора: агрегация по активным карточкам с коротким кешированием.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/gym-console/internal/domain/alerts"
	"github.com/magabrotheeeer/gym-console/internal/models"
)

// MemberRepository определяет доступ к активным карточкам клиентов.
type MemberRepository interface {
	ListActiveMembers(ctx context.Context) ([]*models.Member, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
}

// AlertsService реализует построение сводки уведомлений.
type AlertsService struct {
	repo  MemberRepository
	cache Cache
	log   *slog.Logger
}

// NewAlertsService создает новый экземпляр AlertsService.
func NewAlertsService(repo MemberRepository, cache Cache, log *slog.Logger) *AlertsService {
	return &AlertsService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// cacheTTL короткий: сводка пересчитывается при каждом платеже или
// правке карточки, но в пределах минуты допустимо отдавать снимок.
const cacheTTL = time.Minute

// Digest возвращает корзины уведомлений по активным клиентам на дату.
// Корзины с нулевым числом совпадений в сводку не попадают.
func (s *AlertsService) Digest(ctx context.Context, today time.Time) ([]alerts.Bucket, error) {
	var cached []alerts.Bucket
	cacheKey := fmt.Sprintf("alerts:digest:%s", today.Format("2006-01-02"))
	found, err := s.cache.Get(cacheKey, &cached)
	if err == nil && found {
		return cached, nil
	}
	if err != nil {
		s.log.Warn("failed to read alerts cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	members, err := s.repo.ListActiveMembers(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := make([]models.Member, 0, len(members))
	for _, m := range members {
		snapshot = append(snapshot, *m)
	}

	buckets := alerts.Aggregate(snapshot, today)
	if err := s.cache.Set(cacheKey, buckets, cacheTTL); err != nil {
		s.log.Warn("failed to cache alerts digest", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return buckets, nil
}
