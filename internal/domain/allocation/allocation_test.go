package allocation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/gym-console/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestAllocate_Monthly(t *testing.T) {
	tests := []struct {
		name           string
		member         models.Member
		amountCents    int
		today          time.Time
		wantMonths     int
		wantExpiration *time.Time
	}{
		{
			name:           "новый абонемент стартует от конца текущего месяца",
			member:         models.Member{MonthlyFeeCents: 6000},
			amountCents:    6000,
			today:          date(2024, 3, 15),
			wantMonths:     1,
			wantExpiration: datePtr(2024, 4, 30),
		},
		{
			name: "действующий абонемент наращивается поверх оплаченного срока",
			member: models.Member{
				MonthlyFeeCents:            6000,
				SubscriptionExpirationDate: datePtr(2024, 6, 30),
			},
			amountCents:    12000,
			today:          date(2024, 5, 1),
			wantMonths:     2,
			wantExpiration: datePtr(2024, 8, 31),
		},
		{
			name: "просроченный абонемент перезапускается от конца месяца",
			member: models.Member{
				MonthlyFeeCents:            6000,
				SubscriptionExpirationDate: datePtr(2024, 1, 31),
			},
			amountCents:    6000,
			today:          date(2024, 3, 15),
			wantMonths:     1,
			wantExpiration: datePtr(2024, 4, 30),
		},
		{
			name: "окончание ровно сегодня считается просроченным",
			member: models.Member{
				MonthlyFeeCents:            6000,
				SubscriptionExpirationDate: datePtr(2024, 3, 15),
			},
			amountCents:    6000,
			today:          date(2024, 3, 15),
			wantMonths:     1,
			wantExpiration: datePtr(2024, 4, 30),
		},
		{
			name:           "нулевой тариф заменяется тарифом по умолчанию",
			member:         models.Member{},
			amountCents:    models.DefaultMonthlyFeeCents * 2,
			today:          date(2024, 3, 15),
			wantMonths:     2,
			wantExpiration: datePtr(2024, 5, 31),
		},
		{
			name:           "переплата сверх целых месяцев сгорает",
			member:         models.Member{MonthlyFeeCents: 6000},
			amountCents:    9500,
			today:          date(2024, 3, 15),
			wantMonths:     1,
			wantExpiration: datePtr(2024, 4, 30),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Allocate(models.Payment{
				AmountCents: tt.amountCents,
				PaymentType: models.PaymentTypeMonthly,
			}, tt.member, tt.today)
			require.NoError(t, err)

			assert.Equal(t, tt.wantMonths, res.Months)
			require.NotNil(t, res.ExpirationDate)
			assert.True(t, res.ExpirationDate.Equal(*tt.wantExpiration),
				"expiration = %v, want %v", res.ExpirationDate, tt.wantExpiration)
			require.NotNil(t, res.LastPaidMonth)
			assert.Equal(t, tt.wantExpiration.Month(), *res.LastPaidMonth)
			assert.Zero(t, res.EnrollmentFeeDeltaCents)
		})
	}
}

func TestAllocate_MonthsIsFloorOfAmountOverFee(t *testing.T) {
	today := date(2024, 3, 15)
	for _, fee := range []int{1500, 4500, 6000, 7550} {
		member := models.Member{MonthlyFeeCents: fee}
		for _, amount := range []int{1, fee - 1, fee, fee + 1, fee * 3, fee*3 + fee/2} {
			res, err := Allocate(models.Payment{
				AmountCents: amount,
				PaymentType: models.PaymentTypeMonthly,
			}, member, today)
			require.NoError(t, err)
			assert.Equal(t, amount/fee, res.Months, "fee=%d amount=%d", fee, amount)
		}
	}
}

func TestAllocate_DepositLeavesExpirationUntouched(t *testing.T) {
	member := models.Member{
		MonthlyFeeCents:            6000,
		SubscriptionExpirationDate: datePtr(2024, 6, 30),
	}

	res, err := Allocate(models.Payment{
		AmountCents: 2500,
		PaymentType: models.PaymentTypeMonthly,
	}, member, date(2024, 5, 1))
	require.NoError(t, err)

	assert.Zero(t, res.Months)
	require.NotNil(t, res.ExpirationDate)
	assert.True(t, res.ExpirationDate.Equal(date(2024, 6, 30)))
	assert.Contains(t, res.Message, "deposit")
}

func TestAllocate_ExpirationIsMonotonic(t *testing.T) {
	member := models.Member{MonthlyFeeCents: 6000}
	today := date(2024, 3, 15)

	var prev *time.Time
	for range 6 {
		res, err := Allocate(models.Payment{
			AmountCents: 6000,
			PaymentType: models.PaymentTypeMonthly,
		}, member, today)
		require.NoError(t, err)
		require.NotNil(t, res.ExpirationDate)

		if prev != nil {
			assert.False(t, res.ExpirationDate.Before(*prev),
				"expiration decreased: %v -> %v", prev, res.ExpirationDate)
		}
		prev = res.ExpirationDate
		member.SubscriptionExpirationDate = res.ExpirationDate
		member.LastPaidMonth = res.LastPaidMonth
	}
}

func TestAllocate_Enrollment(t *testing.T) {
	tests := []struct {
		name           string
		member         models.Member
		today          time.Time
		wantExpiration time.Time
	}{
		{
			name:           "без даты окончания базой служит сегодняшний день",
			member:         models.Member{},
			today:          date(2024, 3, 15),
			wantExpiration: date(2025, 3, 31),
		},
		{
			name: "с датой окончания базой служит она, даже просроченная",
			member: models.Member{
				SubscriptionExpirationDate: datePtr(2024, 1, 31),
			},
			today:          date(2024, 3, 15),
			wantExpiration: date(2025, 1, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Allocate(models.Payment{
				AmountCents: 15000,
				PaymentType: models.PaymentTypeEnrollment,
			}, tt.member, tt.today)
			require.NoError(t, err)

			assert.Equal(t, 12, res.Months)
			require.NotNil(t, res.ExpirationDate)
			assert.True(t, res.ExpirationDate.Equal(tt.wantExpiration),
				"expiration = %v, want %v", res.ExpirationDate, tt.wantExpiration)
			assert.Equal(t, 15000, res.EnrollmentFeeDeltaCents)
		})
	}
}

func TestAllocate_RejectsInvalidInput(t *testing.T) {
	member := models.Member{MonthlyFeeCents: 6000}
	today := date(2024, 3, 15)

	_, err := Allocate(models.Payment{AmountCents: 0, PaymentType: models.PaymentTypeMonthly}, member, today)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = Allocate(models.Payment{AmountCents: -100, PaymentType: models.PaymentTypeMonthly}, member, today)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = Allocate(models.Payment{AmountCents: 6000, PaymentType: "cash"}, member, today)
	assert.ErrorIs(t, err, ErrUnknownPaymentType)
}
