// Package status классифицирует карточку клиента по снимку данных
// и явно переданному текущему дню: состояние медицинской справки
// и абонемента плюс признак «скоро истекает». Функции чистые и тотальные:
// отсутствующие даты обрабатываются правилами, а не ошибками, и любой
// вызов с теми же данными даёт тот же результат.
package status

import (
	"time"

	"github.com/magabrotheeeer/gym-console/internal/lib/dates"
	"github.com/magabrotheeeer/gym-console/internal/models"
)

// CertificateStatus — состояние медицинской справки.
type CertificateStatus string

// SubscriptionStatus — состояние абонемента.
type SubscriptionStatus string

const (
	CertificateMissing CertificateStatus = "missing"
	CertificateExpired CertificateStatus = "expired"
	CertificateValid   CertificateStatus = "valid"

	SubscriptionInactive SubscriptionStatus = "inactive"
	SubscriptionExpired  SubscriptionStatus = "expired"
	SubscriptionActive   SubscriptionStatus = "active"
)

// ExpiringSoonHorizonDays — горизонт предупреждения «скоро истекает».
const ExpiringSoonHorizonDays = 30

// Certificate возвращает состояние справки клиента. Справка без
// зафиксированного срока действия считается отсутствующей: одной отметки
// о сдаче недостаточно.
func Certificate(m models.Member, today time.Time) CertificateStatus {
	if !m.CertificatePresent || m.CertificateExpirationDate == nil {
		return CertificateMissing
	}
	if dates.IsBefore(*m.CertificateExpirationDate, today) {
		return CertificateExpired
	}
	return CertificateValid
}

// CertificateExpiringSoon сообщает, истекает ли справка в ближайшие
// ExpiringSoonHorizonDays дней (включая сегодняшний).
func CertificateExpiringSoon(m models.Member, today time.Time) bool {
	return expiringSoon(m.CertificateExpirationDate, today)
}

// Subscription возвращает состояние абонемента клиента.
func Subscription(m models.Member, today time.Time) SubscriptionStatus {
	if m.SubscriptionExpirationDate == nil {
		return SubscriptionInactive
	}
	if dates.IsBefore(*m.SubscriptionExpirationDate, today) {
		return SubscriptionExpired
	}
	return SubscriptionActive
}

// SubscriptionExpiringSoon сообщает, истекает ли абонемент в ближайшие
// ExpiringSoonHorizonDays дней (включая сегодняшний).
func SubscriptionExpiringSoon(m models.Member, today time.Time) bool {
	return expiringSoon(m.SubscriptionExpirationDate, today)
}

func expiringSoon(expiration *time.Time, today time.Time) bool {
	if expiration == nil {
		return false
	}
	if dates.IsBefore(*expiration, today) {
		return false
	}
	return dates.DaysBetween(today, *expiration) <= ExpiringSoonHorizonDays
}
