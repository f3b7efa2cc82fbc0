// Package services содержит бизнес-логику событий календаря и их
// напоминаний, включая сброс флага отправки при изменении даты напоминания.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/gym-console/internal/lib/dates"
	"github.com/magabrotheeeer/gym-console/internal/models"
	"github.com/magabrotheeeer/gym-console/internal/storage/repository"
)

// EventRepository определяет методы для работы с событиями в хранилище.
type EventRepository interface {
	CreateEvent(ctx context.Context, e models.Event) (int, error)
	ReadEvent(ctx context.Context, id int) (*models.Event, error)
	UpdateEvent(ctx context.Context, e models.Event, id int) (int, error)
	ListEvents(ctx context.Context, from, to time.Time) ([]*models.Event, error)
	MarkReminderSent(ctx context.Context, id int) (int, error)
	RemoveEvent(ctx context.Context, id int) (int, error)
}

// EventService реализует бизнес-логику календаря консоли.
type EventService struct {
	repo EventRepository
	log  *slog.Logger
}

// NewEventService создает новый экземпляр EventService.
func NewEventService(repo EventRepository, log *slog.Logger) *EventService {
	return &EventService{
		repo: repo,
		log:  log,
	}
}

// Create создает событие календаря и возвращает его ID.
func (s *EventService) Create(ctx context.Context, req models.DummyEvent) (int, error) {
	event, err := eventFromRequest(req)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.CreateEvent(ctx, event)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new event", slog.Int("id", id))
	return id, nil
}

// Update обновляет событие. Если дата напоминания изменилась относительно
// прежнего значения (установлена, очищена или перенесена), флаг отправки
// сбрасывается — напоминание снова становится ожидающим. При неизменной
// дате флаг сохраняется, чтобы редактирование заголовка не вызвало
// повторной отправки.
func (s *EventService) Update(ctx context.Context, req models.DummyEvent, id int) (int, error) {
	existing, err := s.repo.ReadEvent(ctx, id)
	if err != nil {
		return 0, err
	}

	event, err := eventFromRequest(req)
	if err != nil {
		return 0, err
	}
	if sameReminderDate(existing.ReminderDate, event.ReminderDate) {
		event.ReminderSent = existing.ReminderSent
	}

	res, err := s.repo.UpdateEvent(ctx, event, id)
	if err != nil {
		return 0, err
	}
	s.log.Info("updated event", slog.Int("id", id))
	return res, nil
}

// ListRange возвращает события, пересекающиеся с диапазоном дат.
func (s *EventService) ListRange(ctx context.Context, from, to time.Time) ([]*models.Event, error) {
	return s.repo.ListEvents(ctx, from, to)
}

// Acknowledge отмечает напоминание события отправленным.
// Переход терминальный: обратного пути нет, пока дату напоминания
// не отредактируют.
func (s *EventService) Acknowledge(ctx context.Context, id int) (int, error) {
	count, err := s.repo.MarkReminderSent(ctx, id)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, fmt.Errorf("event %d: %w", id, repository.ErrNotFound)
	}
	return count, nil
}

// Remove удаляет событие календаря.
func (s *EventService) Remove(ctx context.Context, id int) (int, error) {
	return s.repo.RemoveEvent(ctx, id)
}

func eventFromRequest(req models.DummyEvent) (models.Event, error) {
	start, err := time.Parse("02-01-2006", req.StartDate)
	if err != nil {
		return models.Event{}, fmt.Errorf("invalid start date: %w", err)
	}

	event := models.Event{
		Title:     req.Title,
		StartDate: start,
		EndDate:   start,
		AllDay:    req.AllDay,
	}

	if req.EndDate != "" {
		end, err := time.Parse("02-01-2006", req.EndDate)
		if err != nil {
			return models.Event{}, fmt.Errorf("invalid end date: %w", err)
		}
		if end.Before(start) {
			return models.Event{}, fmt.Errorf("end date must not be earlier than start date")
		}
		event.EndDate = end
	}
	if req.ReminderDate != "" {
		reminder, err := time.Parse("02-01-2006", req.ReminderDate)
		if err != nil {
			return models.Event{}, fmt.Errorf("invalid reminder date: %w", err)
		}
		event.ReminderDate = &reminder
	}
	return event, nil
}

func sameReminderDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return dates.DaysBetween(*a, *b) == 0
}
