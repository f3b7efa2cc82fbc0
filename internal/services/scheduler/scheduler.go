// Package services содержит планировщик напоминаний: периодический обход
// ожидающих напоминаний, публикация сообщений в очередь и отметка отправки.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/gym-console/internal/domain/reminders"
	"github.com/magabrotheeeer/gym-console/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/gym-console/internal/lib/sl"
	"github.com/magabrotheeeer/gym-console/internal/models"
)

// ReminderRepository определяет доступ к напоминаниям событий.
type ReminderRepository interface {
	ListPendingReminders(ctx context.Context) ([]*models.Event, error)
	MarkReminderSent(ctx context.Context, id int) (int, error)
}

// SchedulerService публикует напоминания, наступившие сегодня.
type SchedulerService struct {
	repo     ReminderRepository
	log      *slog.Logger
	interval time.Duration
}

// NewSchedulerService создает новый экземпляр SchedulerService.
func NewSchedulerService(repo ReminderRepository, log *slog.Logger, interval time.Duration) *SchedulerService {
	return &SchedulerService{
		repo:     repo,
		log:      log,
		interval: interval,
	}
}

// FindDueReminders запускает цикл сканирования: первый проход сразу,
// далее по тикеру. Блокируется до отмены контекста.
func (s *SchedulerService) FindDueReminders(ctx context.Context, channel *amqp.Channel) {
	s.runFindDueReminders(ctx, channel)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runFindDueReminders(ctx, channel)
		}
	}
}

// runFindDueReminders делает один проход сканирования. Сначала публикация,
// затем отметка отправки: при падении между шагами напоминание уйдёт
// повторно, но не потеряется.
func (s *SchedulerService) runFindDueReminders(ctx context.Context, channel *amqp.Channel) {
	s.log.Info("starting scan for due reminders")
	pending, err := s.repo.ListPendingReminders(ctx)
	if err != nil {
		s.log.Error("failed to list pending reminders", sl.Err(err))
		return
	}

	events := make([]models.Event, 0, len(pending))
	for _, e := range pending {
		events = append(events, *e)
	}

	due := reminders.Due(events, time.Now())
	if len(due) == 0 {
		s.log.Info("no due reminders found")
		return
	}
	s.log.Info("found due reminders", "count", len(due))

	for _, event := range due {
		info := models.ReminderInfo{
			EventID:   event.ID,
			Title:     event.Title,
			StartDate: event.StartDate,
			AllDay:    event.AllDay,
		}
		if err := rabbitmq.PublishMessage(channel, "notifications", "reminder", info); err != nil {
			s.log.Error("failed to publish reminder", sl.Err(err))
			continue
		}
		if _, err := s.repo.MarkReminderSent(ctx, event.ID); err != nil {
			s.log.Error("failed to mark reminder as sent",
				slog.Int("event_id", event.ID), sl.Err(err))
		}
	}
}
