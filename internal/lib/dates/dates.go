// Package dates содержит календарную арифметику с точностью до дня.
// Временная зона не конвертируется: дата трактуется как календарный день,
// а не момент времени.
package dates

import (
	"time"
)

// Midnight обнуляет время суток, оставляя календарный день.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfMonth возвращает последний день месяца переданной даты.
// Идемпотентна: EndOfMonth(EndOfMonth(d)) == EndOfMonth(d).
func EndOfMonth(t time.Time) time.Time {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}

// AddMonths прибавляет n календарных месяцев, ограничивая день числом дней
// в целевом месяце: 31 января + 1 месяц = 28/29 февраля, а не 2-3 марта.
// Стандартный AddDate переносит переполнение в следующий месяц, что ломает
// расчёт окончания абонемента.
func AddMonths(t time.Time, n int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, n, 0)
	day := t.Day()
	if last := EndOfMonth(firstOfTarget).Day(); day > last {
		day = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, t.Location())
}

// IsBefore сообщает, что день a строго раньше дня b.
func IsBefore(a, b time.Time) bool {
	return utcDay(a).Before(utcDay(b))
}

// IsSameOrAfter сообщает, что день a совпадает с днём b или позже него.
func IsSameOrAfter(a, b time.Time) bool {
	return !IsBefore(a, b)
}

// DaysBetween возвращает число календарных дней от a до b
// (отрицательное, если b раньше a).
func DaysBetween(a, b time.Time) int {
	return int(utcDay(b).Sub(utcDay(a)).Hours() / 24)
}

// utcDay пересобирает дату в UTC-полночь, чтобы разница дней
// не зависела от перевода часов.
func utcDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
