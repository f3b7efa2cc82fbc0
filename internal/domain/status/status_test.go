package status

import (
	"testing"
	"time"

	"github.com/magabrotheeeer/gym-console/internal/models"
)

var today = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestCertificate_TableTests(t *testing.T) {
	tests := []struct {
		name   string
		member models.Member
		want   CertificateStatus
	}{
		{
			name:   "справка не сдана",
			member: models.Member{CertificatePresent: false},
			want:   CertificateMissing,
		},
		{
			name:   "справка сдана, но срок действия не зафиксирован",
			member: models.Member{CertificatePresent: true},
			want:   CertificateMissing,
		},
		{
			name: "дата без отметки о сдаче",
			member: models.Member{
				CertificatePresent:        false,
				CertificateExpirationDate: datePtr(2025, 1, 1),
			},
			want: CertificateMissing,
		},
		{
			name: "срок истёк вчера",
			member: models.Member{
				CertificatePresent:        true,
				CertificateExpirationDate: datePtr(2024, 3, 14),
			},
			want: CertificateExpired,
		},
		{
			name: "срок истекает сегодня — ещё действует",
			member: models.Member{
				CertificatePresent:        true,
				CertificateExpirationDate: datePtr(2024, 3, 15),
			},
			want: CertificateValid,
		},
		{
			name: "срок в будущем",
			member: models.Member{
				CertificatePresent:        true,
				CertificateExpirationDate: datePtr(2024, 9, 1),
			},
			want: CertificateValid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Certificate(tt.member, today); got != tt.want {
				t.Errorf("Certificate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSubscription_TableTests(t *testing.T) {
	tests := []struct {
		name   string
		member models.Member
		want   SubscriptionStatus
	}{
		{"дата окончания не задана", models.Member{}, SubscriptionInactive},
		{"окончание в прошлом", models.Member{SubscriptionExpirationDate: datePtr(2024, 2, 29)}, SubscriptionExpired},
		{"окончание сегодня", models.Member{SubscriptionExpirationDate: datePtr(2024, 3, 15)}, SubscriptionActive},
		{"окончание в будущем", models.Member{SubscriptionExpirationDate: datePtr(2024, 6, 30)}, SubscriptionActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Subscription(tt.member, today); got != tt.want {
				t.Errorf("Subscription() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpiringSoon(t *testing.T) {
	tests := []struct {
		name       string
		expiration *time.Time
		want       bool
	}{
		{"нет даты", nil, false},
		{"уже истёк", datePtr(2024, 3, 14), false},
		{"истекает сегодня", datePtr(2024, 3, 15), true},
		{"ровно на границе горизонта", datePtr(2024, 4, 14), true},
		{"сразу за горизонтом", datePtr(2024, 4, 15), false},
		{"далеко в будущем", datePtr(2025, 1, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			member := models.Member{
				CertificatePresent:         true,
				CertificateExpirationDate:  tt.expiration,
				SubscriptionExpirationDate: tt.expiration,
			}
			if got := CertificateExpiringSoon(member, today); got != tt.want {
				t.Errorf("CertificateExpiringSoon() = %v, want %v", got, tt.want)
			}
			if got := SubscriptionExpiringSoon(member, today); got != tt.want {
				t.Errorf("SubscriptionExpiringSoon() = %v, want %v", got, tt.want)
			}
		})
	}
}
