// Package services содержит бизнес-логику приёма платежей: начисление
// месяцев через движок allocation и согласованное применение результата
// к записи платежа и карточке клиента.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/gym-console/internal/domain/allocation"
	"github.com/magabrotheeeer/gym-console/internal/lib/dates"
	"github.com/magabrotheeeer/gym-console/internal/lib/sl"
	"github.com/magabrotheeeer/gym-console/internal/models"
)

// ErrPartialFailure возвращается, когда запись платежа создана,
// а патч карточки применить не удалось даже после повтора.
// Данные требуют ручной сверки, автоматический откат невозможен.
var ErrPartialFailure = errors.New("payment recorded but member update failed")

// MemberRepository определяет доступ к карточкам клиентов.
type MemberRepository interface {
	ReadMember(ctx context.Context, uid string) (*models.Member, error)
	ApplySubscriptionPatch(ctx context.Context, uid string, patch models.SubscriptionPatch) (int, error)
}

// PaymentRepository определяет доступ к записям платежей.
type PaymentRepository interface {
	CreatePayment(ctx context.Context, p models.Payment) (int, error)
	ListPaymentsByMember(ctx context.Context, memberUID string, limit, offset int) ([]*models.Payment, error)
	RemovePayment(ctx context.Context, id int) (int, error)
}

// Cache описывает инвалидацию закешированных карточек.
type Cache interface {
	Invalidate(key string) error
}

// RegisterResult — итог приёма платежа для подтверждения на стойке.
type RegisterResult struct {
	PaymentID      int
	Months         int
	ExpirationDate *time.Time
	Message        string
}

// PaymentService реализует приём и историю платежей.
type PaymentService struct {
	members  MemberRepository
	payments PaymentRepository
	cache    Cache
	log      *slog.Logger
}

// NewPaymentService создает новый экземпляр PaymentService.
func NewPaymentService(members MemberRepository, payments PaymentRepository, cache Cache, log *slog.Logger) *PaymentService {
	return &PaymentService{
		members:  members,
		payments: payments,
		cache:    cache,
		log:      log,
	}
}

// Register принимает платёж: читает карточку, вычисляет эффект через
// движок начисления, создаёт запись платежа (всегда, включая задатки)
// и применяет патч абонемента. Запись платежа и патч должны применяться
// как одно логическое изменение; при сбое патча он повторяется один раз,
// затем возвращается ErrPartialFailure со строкой сверки в логе.
//
// Вызывающая сторона обязана сериализовать приём платежей по одному
// клиенту: два одновременных платежа посчитают базовую дату от одного
// и того же снимка карточки.
func (s *PaymentService) Register(ctx context.Context, req models.DummyPayment, today time.Time) (*RegisterResult, error) {
	member, err := s.members.ReadMember(ctx, req.MemberUID)
	if err != nil {
		return nil, err
	}

	payment, err := paymentFromRequest(req, today)
	if err != nil {
		return nil, err
	}

	res, err := allocation.Allocate(payment, *member, today)
	if err != nil {
		return nil, err
	}

	paymentID, err := s.payments.CreatePayment(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	s.log.Info("payment recorded",
		slog.Int("id", paymentID),
		slog.String("member_uid", req.MemberUID),
		slog.Int("months", res.Months))

	if res.Months > 0 || res.EnrollmentFeeDeltaCents > 0 {
		patch := models.SubscriptionPatch{
			ExpirationDate:          res.ExpirationDate,
			LastPaidMonth:           res.LastPaidMonth,
			EnrollmentFeeDeltaCents: res.EnrollmentFeeDeltaCents,
		}
		if err := s.applyPatch(ctx, req.MemberUID, patch); err != nil {
			s.log.Error("reconciliation required: payment persisted without member update",
				slog.Int("payment_id", paymentID),
				slog.String("member_uid", req.MemberUID),
				sl.Err(err))
			return nil, fmt.Errorf("%w: payment id %d", ErrPartialFailure, paymentID)
		}

		cacheKey := fmt.Sprintf("member:%s", req.MemberUID)
		if err := s.cache.Invalidate(cacheKey); err != nil {
			s.log.Warn("failed to invalidate cache", slog.String("key", cacheKey), slog.Any("err", err))
		}
	}

	return &RegisterResult{
		PaymentID:      paymentID,
		Months:         res.Months,
		ExpirationDate: res.ExpirationDate,
		Message:        res.Message,
	}, nil
}

// applyPatch применяет патч карточки, повторяя запрос один раз при сбое.
func (s *PaymentService) applyPatch(ctx context.Context, uid string, patch models.SubscriptionPatch) error {
	count, err := s.members.ApplySubscriptionPatch(ctx, uid, patch)
	if err == nil && count > 0 {
		return nil
	}
	if err != nil {
		s.log.Warn("subscription patch failed, retrying once", sl.Err(err))
	}

	count, err = s.members.ApplySubscriptionPatch(ctx, uid, patch)
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("member %s not found while applying patch", uid)
	}
	return nil
}

// List возвращает платежи клиента с пагинацией.
func (s *PaymentService) List(ctx context.Context, memberUID string, limit, offset int) ([]*models.Payment, error) {
	return s.payments.ListPaymentsByMember(ctx, memberUID, limit, offset)
}

// Remove удаляет запись платежа. Карточка клиента не трогается:
// удаление платежа — операция чистки истории, а не отмена продления.
func (s *PaymentService) Remove(ctx context.Context, id int) (int, error) {
	return s.payments.RemovePayment(ctx, id)
}

func paymentFromRequest(req models.DummyPayment, today time.Time) (models.Payment, error) {
	payment := models.Payment{
		MemberUID:   req.MemberUID,
		AmountCents: req.AmountCents,
		PaymentType: req.PaymentType,
		PaymentDate: dates.Midnight(today),
	}

	if req.PaymentDate != "" {
		d, err := time.Parse("02-01-2006", req.PaymentDate)
		if err != nil {
			return models.Payment{}, fmt.Errorf("invalid payment date: %w", err)
		}
		payment.PaymentDate = d
	}
	if req.ReferenceMonth != 0 {
		month := time.Month(req.ReferenceMonth)
		payment.ReferenceMonth = &month
	}
	return payment, nil
}
