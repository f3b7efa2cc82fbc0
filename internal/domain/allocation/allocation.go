// Package allocation реализует правила превращения платежа в продление
// абонемента: сколько месяцев покрывает сумма и какой будет новая дата
// окончания. Функции чистые: текущий день передаётся явным параметром,
// результат — типизированный патч, который применяет слой хранения.
package allocation

import (
	"errors"
	"fmt"
	"time"

	"github.com/magabrotheeeer/gym-console/internal/lib/dates"
	"github.com/magabrotheeeer/gym-console/internal/models"
)

// ErrInvalidAmount возвращается для неположительной суммы платежа.
var ErrInvalidAmount = errors.New("payment amount must be positive")

// ErrUnknownPaymentType возвращается для неизвестного типа платежа.
var ErrUnknownPaymentType = errors.New("unknown payment type")

// Result — вычисленный эффект платежа. ExpirationDate и LastPaidMonth
// равны nil, если продления не произошло (частичный взнос).
// EnrollmentFeeDeltaCents добавляется к накопленному вступительному взносу.
type Result struct {
	Months                  int         // Сколько целых месяцев покрыла сумма
	ExpirationDate          *time.Time  // Новая дата окончания абонемента
	LastPaidMonth           *time.Month // Месяц новой даты окончания
	EnrollmentFeeDeltaCents int         // Прибавка к вступительному взносу
	Message                 string      // Текст для подтверждения на стойке
}

// Allocate вычисляет эффект платежа для карточки клиента.
//
// Месячный взнос: целые месяцы считаются делением суммы на действующий
// тариф, остаток сгорает. Если абонемент ещё действует, месяцы
// прибавляются к текущей дате окончания; просроченный или новый абонемент
// стартует от конца текущего месяца — остаток месяца идёт в подарок.
// Сумма меньше тарифа фиксируется как задаток и даты не меняет.
//
// Вступительный/годовой взнос продлевает абонемент на 12 месяцев от даты
// окончания (или от сегодняшнего дня, если её нет) и целиком копится
// в EnrollmentFeeCents.
func Allocate(p models.Payment, m models.Member, today time.Time) (Result, error) {
	if p.AmountCents <= 0 {
		return Result{}, fmt.Errorf("allocate payment: %w", ErrInvalidAmount)
	}
	today = dates.Midnight(today)

	switch p.PaymentType {
	case models.PaymentTypeMonthly:
		return allocateMonthly(p, m, today), nil
	case models.PaymentTypeEnrollment:
		return allocateEnrollment(p, m, today), nil
	default:
		return Result{}, fmt.Errorf("allocate payment: %w: %q", ErrUnknownPaymentType, p.PaymentType)
	}
}

func allocateMonthly(p models.Payment, m models.Member, today time.Time) Result {
	fee := m.EffectiveMonthlyFeeCents()
	months := p.AmountCents / fee

	if months == 0 {
		return Result{
			Months:         0,
			ExpirationDate: m.SubscriptionExpirationDate,
			LastPaidMonth:  m.LastPaidMonth,
			Message: fmt.Sprintf("deposit of %d.%02d recorded, subscription unchanged",
				p.AmountCents/100, p.AmountCents%100),
		}
	}

	var base time.Time
	if m.SubscriptionExpirationDate != nil && dates.IsBefore(today, *m.SubscriptionExpirationDate) {
		// Абонемент ещё действует — месяцы наращиваются поверх оплаченного срока.
		base = *m.SubscriptionExpirationDate
	} else {
		// Просроченный или новый абонемент: остаток текущего месяца в подарок.
		base = dates.EndOfMonth(today)
	}

	expiration := dates.EndOfMonth(dates.AddMonths(base, months))
	lastPaid := expiration.Month()

	return Result{
		Months:         months,
		ExpirationDate: &expiration,
		LastPaidMonth:  &lastPaid,
		Message: fmt.Sprintf("%d month(s) added, subscription valid until %s",
			months, expiration.Format("02-01-2006")),
	}
}

func allocateEnrollment(p models.Payment, m models.Member, today time.Time) Result {
	base := today
	if m.SubscriptionExpirationDate != nil {
		base = *m.SubscriptionExpirationDate
	}

	expiration := dates.EndOfMonth(dates.AddMonths(base, 12))
	lastPaid := expiration.Month()

	return Result{
		Months:                  12,
		ExpirationDate:          &expiration,
		LastPaidMonth:           &lastPaid,
		EnrollmentFeeDeltaCents: p.AmountCents,
		Message: fmt.Sprintf("annual fee recorded, subscription valid until %s",
			expiration.Format("02-01-2006")),
	}
}
