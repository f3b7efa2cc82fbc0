package reminders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/gym-console/internal/models"
)

var today = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestDue(t *testing.T) {
	events := []models.Event{
		{ID: 1, Title: "оплата аренды", ReminderDate: datePtr(2024, 1, 10)},
		{ID: 2, Title: "уже отправлено", ReminderDate: datePtr(2024, 1, 10), ReminderSent: true},
		{ID: 3, Title: "напоминание на завтра", ReminderDate: datePtr(2024, 1, 11)},
		{ID: 4, Title: "напоминание в прошлом", ReminderDate: datePtr(2024, 1, 9)},
		{ID: 5, Title: "без напоминания"},
	}

	due := Due(events, today)

	require.Len(t, due, 1)
	assert.Equal(t, 1, due[0].ID)
}

func TestDue_TimeOfDayIsIgnored(t *testing.T) {
	reminder := time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)
	events := []models.Event{{ID: 7, Title: "встреча", ReminderDate: &reminder}}

	now := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	assert.Len(t, Due(events, now), 1)
}

func TestDue_RestartableWithoutCursor(t *testing.T) {
	events := []models.Event{
		{ID: 1, Title: "оплата аренды", ReminderDate: datePtr(2024, 1, 10)},
	}

	first := Due(events, today)
	second := Due(events, today)
	assert.Equal(t, first, second)

	// после подтверждения событие больше не попадает в выборку
	events[0].ReminderSent = true
	assert.Empty(t, Due(events, today))
}
