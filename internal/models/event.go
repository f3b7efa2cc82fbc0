package models

import "time"

// Event представляет событие календаря консоли с опциональным
// одноразовым напоминанием. Напоминание считается ожидающим,
// пока ReminderSent не выставлен в true.
//
// Инвариант: при любом изменении ReminderDate относительно прежнего
// значения (установка, очистка, перенос) флаг ReminderSent сбрасывается
// в false — напоминание становится ожидающим заново.
type Event struct {
	ID           int        // Идентификатор события
	Title        string     // Заголовок (обязателен, непустой)
	StartDate    time.Time  // Начало
	EndDate      time.Time  // Окончание
	AllDay       bool       // Событие на весь день
	ReminderDate *time.Time // Дата напоминания, nil — без напоминания
	ReminderSent bool       // Напоминание уже отправлено
}

// DummyEvent используется для приёма события из JSON-запроса.
type DummyEvent struct {
	Title        string `json:"title" validate:"required"`
	StartDate    string `json:"start_date" validate:"required,datetime=02-01-2006"`
	EndDate      string `json:"end_date,omitempty" validate:"omitempty,datetime=02-01-2006"`
	AllDay       bool   `json:"all_day"`
	ReminderDate string `json:"reminder_date,omitempty" validate:"omitempty,datetime=02-01-2006"`
}

// ReminderInfo — сообщение, публикуемое планировщиком в очередь
// напоминаний и потребляемое сервисом отправки почты.
type ReminderInfo struct {
	EventID   int       `json:"event_id"`
	Title     string    `json:"title"`
	StartDate time.Time `json:"start_date"`
	AllDay    bool      `json:"all_day"`
}
