// Package alerts собирает сводку предупреждений для значка меню консоли:
// просроченные абонементы, истекающие и отсутствующие справки, ожидающие
// оплаты. Агрегация чистая и детерминированная — порядок корзин фиксирован
// и не зависит от порядка клиентов на входе.
package alerts

import (
	"fmt"
	"time"

	"github.com/magabrotheeeer/gym-console/internal/domain/status"
	"github.com/magabrotheeeer/gym-console/internal/models"
)

// BucketType — тип корзины предупреждений.
type BucketType string

const (
	BucketExpiredSubscriptions BucketType = "expired_subscriptions"
	BucketExpiringCertificates BucketType = "expiring_certificates"
	BucketMissingCertificates  BucketType = "missing_certificates"
	BucketPendingPayments      BucketType = "pending_payments"
)

// PaymentStatusPending — значение отметки статуса оплаты,
// попадающее в корзину ожидающих оплат.
const PaymentStatusPending = "Pending"

// Bucket — одна корзина сводки с количеством попавших в неё клиентов.
type Bucket struct {
	Type    BucketType `json:"type"`
	Count   int        `json:"count"`
	Message string     `json:"message"`
}

// Aggregate сканирует клиентов и возвращает непустые корзины в фиксированном
// порядке: просроченные абонементы, истекающие справки, отсутствующие
// справки, ожидающие оплаты. Корзины с нулевым количеством не возвращаются.
func Aggregate(members []models.Member, today time.Time) []Bucket {
	var expired, expiring, missing, pending int

	for _, m := range members {
		if status.Subscription(m, today) == status.SubscriptionExpired {
			expired++
		}
		if status.CertificateExpiringSoon(m, today) {
			expiring++
		}
		if status.Certificate(m, today) == status.CertificateMissing {
			missing++
		}
		if m.PaymentStatus == PaymentStatusPending {
			pending++
		}
	}

	var buckets []Bucket
	if expired > 0 {
		buckets = append(buckets, Bucket{
			Type:    BucketExpiredSubscriptions,
			Count:   expired,
			Message: fmt.Sprintf("%d expired subscription(s)", expired),
		})
	}
	if expiring > 0 {
		buckets = append(buckets, Bucket{
			Type:    BucketExpiringCertificates,
			Count:   expiring,
			Message: fmt.Sprintf("%d certificate(s) expiring within %d days", expiring, status.ExpiringSoonHorizonDays),
		})
	}
	if missing > 0 {
		buckets = append(buckets, Bucket{
			Type:    BucketMissingCertificates,
			Count:   missing,
			Message: fmt.Sprintf("%d missing certificate(s)", missing),
		})
	}
	if pending > 0 {
		buckets = append(buckets, Bucket{
			Type:    BucketPendingPayments,
			Count:   pending,
			Message: fmt.Sprintf("%d pending payment(s)", pending),
		})
	}
	return buckets
}
