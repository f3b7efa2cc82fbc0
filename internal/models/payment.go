package models

import "time"

// Типы платежей. Месячный взнос продлевает абонемент,
// вступительный/годовой взнос продлевает его на год и копится отдельно.
const (
	PaymentTypeMonthly    = "monthly"
	PaymentTypeEnrollment = "enrollment"
)

// Payment представляет зафиксированный платёж наличными на стойке.
// Запись неизменяема: её можно только создать или удалить.
type Payment struct {
	ID             int         // Идентификатор записи
	MemberUID      string      // Клиент, внёсший платёж
	AmountCents    int         // Сумма в копейках (> 0)
	PaymentType    string      // monthly или enrollment
	ReferenceMonth *time.Month // Месяц, за который внесён платёж (только для monthly)
	PaymentDate    time.Time   // Дата платежа
}

// DummyPayment используется для приёма платежа из JSON-запроса.
// Дата платежа опциональна: по умолчанию берётся день приёма.
type DummyPayment struct {
	MemberUID      string `json:"member_uid" validate:"required,uuid"`
	AmountCents    int    `json:"amount_cents" validate:"required,gt=0"`
	PaymentType    string `json:"payment_type" validate:"required,oneof=monthly enrollment"`
	ReferenceMonth int    `json:"reference_month,omitempty" validate:"omitempty,gte=1,lte=12"`
	PaymentDate    string `json:"payment_date,omitempty" validate:"omitempty,datetime=02-01-2006"`
}
