// Package services содержит бизнес-логику работы с карточками клиентов,
// включая кеширование.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/gym-console/internal/models"
)

// MemberRepository определяет методы для работы с карточками клиентов в хранилище.
type MemberRepository interface {
	// CreateMember добавляет новую карточку и возвращает её UID.
	CreateMember(ctx context.Context, m models.Member) (string, error)
	// ReadMember возвращает карточку по UID.
	ReadMember(ctx context.Context, uid string) (*models.Member, error)
	// UpdateMember обновляет карточку по UID.
	UpdateMember(ctx context.Context, m models.Member, uid string) (int, error)
	// ListMembers возвращает карточки в заданном состоянии с пагинацией.
	ListMembers(ctx context.Context, state string, limit, offset int) ([]*models.Member, error)
	// ArchiveMember переводит карточку в состояние archived.
	ArchiveMember(ctx context.Context, uid string) (int, error)
	// RemoveMember удаляет карточку по UID.
	RemoveMember(ctx context.Context, uid string) (int, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// MemberService реализует бизнес-логику работы с карточками клиентов.
type MemberService struct {
	repo  MemberRepository
	cache Cache
	log   *slog.Logger
}

// NewMemberService создает новый экземпляр MemberService.
func NewMemberService(repo MemberRepository, cache Cache, log *slog.Logger) *MemberService {
	return &MemberService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создает новую карточку клиента и возвращает её UID.
func (s *MemberService) Create(ctx context.Context, req models.DummyMember) (string, error) {
	member, err := memberFromRequest(req)
	if err != nil {
		return "", err
	}
	member.UID = uuid.New().String()
	member.State = models.MemberStateActive

	uid, err := s.repo.CreateMember(ctx, member)
	if err != nil {
		return "", err
	}
	s.log.Info("created new member", slog.String("uid", uid))

	cacheKey := fmt.Sprintf("member:%s", uid)
	if err := s.cache.Set(cacheKey, member, time.Hour); err != nil {
		s.log.Warn("failed to cache member", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return uid, nil
}

// Read возвращает карточку по UID, используя кеш или репозиторий.
func (s *MemberService) Read(ctx context.Context, uid string) (*models.Member, error) {
	var result *models.Member
	cacheKey := fmt.Sprintf("member:%s", uid)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		return nil, err
	}
	if found {
		return result, nil
	}
	result, err = s.repo.ReadMember(ctx, uid)
	if err != nil {
		return nil, err
	}

	if result != nil {
		if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
			s.log.Warn("failed to add to cache", slog.String("key", cacheKey),
				slog.Any("err", err))
		}
	}
	return result, nil
}

// Update обновляет карточку и обновляет кеш.
func (s *MemberService) Update(ctx context.Context, req models.DummyMember, uid string) (int, error) {
	member, err := memberFromRequest(req)
	if err != nil {
		return 0, err
	}

	res, err := s.repo.UpdateMember(ctx, member, uid)
	if err != nil {
		return 0, err
	}
	s.log.Info("updated member in storage", slog.String("uid", uid))

	cacheKey := fmt.Sprintf("member:%s", uid)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return res, nil
}

// List возвращает карточки клиентов в заданном состоянии.
func (s *MemberService) List(ctx context.Context, state string, limit, offset int) ([]*models.Member, error) {
	if state == "" {
		state = models.MemberStateActive
	}
	return s.repo.ListMembers(ctx, state, limit, offset)
}

// Archive переводит карточку клиента в архив и инвалидирует кеш.
func (s *MemberService) Archive(ctx context.Context, uid string) (int, error) {
	cacheKey := fmt.Sprintf("member:%s", uid)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return s.repo.ArchiveMember(ctx, uid)
}

// Remove удаляет карточку клиента и инвалидирует кеш.
func (s *MemberService) Remove(ctx context.Context, uid string) (int, error) {
	cacheKey := fmt.Sprintf("member:%s", uid)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return s.repo.RemoveMember(ctx, uid)
}

func memberFromRequest(req models.DummyMember) (models.Member, error) {
	member := models.Member{
		Name:               req.Name,
		Surname:            req.Surname,
		CertificatePresent: req.CertificatePresent,
		MonthlyFeeCents:    req.MonthlyFeeCents,
		PaymentStatus:      req.PaymentStatus,
	}

	if req.SubscriptionExpirationDate != "" {
		d, err := time.Parse("02-01-2006", req.SubscriptionExpirationDate)
		if err != nil {
			return models.Member{}, fmt.Errorf("invalid subscription expiration date: %w", err)
		}
		member.SubscriptionExpirationDate = &d
	}
	if req.CertificateExpirationDate != "" {
		d, err := time.Parse("02-01-2006", req.CertificateExpirationDate)
		if err != nil {
			return models.Member{}, fmt.Errorf("invalid certificate expiration date: %w", err)
		}
		member.CertificateExpirationDate = &d
	}
	return member, nil
}
