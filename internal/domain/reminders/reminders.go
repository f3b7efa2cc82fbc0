// Package reminders отбирает события календаря, по которым сегодня пора
// отправить напоминание. Выборка чистая и перезапускаемая: внутреннего
// курсора нет, повторный вызов с теми же данными даёт тот же результат.
package reminders

import (
	"time"

	"github.com/magabrotheeeer/gym-console/internal/lib/dates"
	"github.com/magabrotheeeer/gym-console/internal/models"
)

// Due возвращает события, у которых дата напоминания совпадает
// с сегодняшним днём и напоминание ещё не отправлялось.
func Due(events []models.Event, today time.Time) []models.Event {
	var due []models.Event
	for _, e := range events {
		if e.ReminderDate == nil || e.ReminderSent {
			continue
		}
		if dates.DaysBetween(*e.ReminderDate, today) == 0 {
			due = append(due, e)
		}
	}
	return due
}
