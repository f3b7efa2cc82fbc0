// Package models содержит доменные структуры административной консоли зала:
// клиенты (члены клуба), платежи, события календаря и посещаемость персонала.
// Все даты хранятся в time.Time с точностью до календарного дня.
package models

import "time"

// Возможные состояния карточки клиента.
const (
	MemberStateActive   = "active"
	MemberStateArchived = "archived"
)

// DefaultMonthlyFeeCents — месячный взнос по умолчанию (60.00),
// применяется, если у клиента не задан индивидуальный тариф.
const DefaultMonthlyFeeCents = 6000

// Member представляет карточку клиента клуба.
// SubscriptionExpirationDate может быть nil — абонемент ещё не оплачивался.
// Дата окончания абонемента двигается только вперёд: через начисление
// платежа либо явное редактирование карточки.
type Member struct {
	UID                        string      // Уникальный идентификатор клиента
	Name                       string      // Имя
	Surname                    string      // Фамилия
	SubscriptionExpirationDate *time.Time  // Дата окончания абонемента
	LastPaidMonth              *time.Month // Последний оплаченный месяц (1-12)
	CertificatePresent         bool        // Медицинская справка сдана
	CertificateExpirationDate  *time.Time  // Срок действия справки
	MonthlyFeeCents            int         // Месячный взнос в копейках
	EnrollmentFeeCents         int         // Накопленная сумма вступительных взносов
	PaymentStatus              string      // Отметка статуса оплаты, например "Pending"
	State                      string      // active или archived
}

// DummyMember используется для приёма данных карточки из JSON-запроса,
// прежде чем конвертировать их в Member. Даты приходят строками
// в формате 02-01-2006, чтобы их можно было валидировать и парсить вручную.
type DummyMember struct {
	Name                       string `json:"name" validate:"required"`    // Имя (обязательно)
	Surname                    string `json:"surname" validate:"required"` // Фамилия (обязательно)
	SubscriptionExpirationDate string `json:"subscription_expiration_date,omitempty" validate:"omitempty,datetime=02-01-2006"`
	CertificatePresent         bool   `json:"certificate_present"`
	CertificateExpirationDate  string `json:"certificate_expiration_date,omitempty" validate:"omitempty,datetime=02-01-2006"`
	MonthlyFeeCents            int    `json:"monthly_fee_cents" validate:"omitempty,gte=0"`
	PaymentStatus              string `json:"payment_status,omitempty"`
}

// EffectiveMonthlyFeeCents возвращает действующий месячный тариф клиента:
// индивидуальный, если он задан и больше нуля, иначе тариф по умолчанию.
func (m Member) EffectiveMonthlyFeeCents() int {
	if m.MonthlyFeeCents > 0 {
		return m.MonthlyFeeCents
	}
	return DefaultMonthlyFeeCents
}

// SubscriptionPatch — частичное обновление абонементной части карточки,
// вычисленное движком начисления и применяемое слоем хранения одним запросом.
type SubscriptionPatch struct {
	ExpirationDate          *time.Time
	LastPaidMonth           *time.Month
	EnrollmentFeeDeltaCents int
}
