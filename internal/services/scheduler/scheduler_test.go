package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/gym-console/internal/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListPendingReminders(ctx context.Context) ([]*models.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Event), args.Error(1)
}

func (m *MockRepository) MarkReminderSent(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestSchedulerService_runFindDueReminders(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1)
	notDueEvent := &models.Event{
		ID:           42,
		Title:        "rent due",
		StartDate:    time.Now().AddDate(0, 0, 2),
		ReminderDate: &yesterday,
	}

	tests := []struct {
		name       string
		setupMocks func(r *MockRepository)
	}{
		{
			name: "no pending reminders",
			setupMocks: func(r *MockRepository) {
				r.On("ListPendingReminders", mock.Anything).Return([]*models.Event{}, nil).Once()
			},
		},
		{
			// дата напоминания вчерашняя: событие остаётся ожидающим,
			// публикации и отметки не происходит
			name: "pending but not due today",
			setupMocks: func(r *MockRepository) {
				r.On("ListPendingReminders", mock.Anything).Return([]*models.Event{notDueEvent}, nil).Once()
			},
		},
		{
			name: "repository error",
			setupMocks: func(r *MockRepository) {
				r.On("ListPendingReminders", mock.Anything).Return(nil, errors.New("db down")).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			svc := NewSchedulerService(repo, newNoopLogger(), time.Hour)

			tt.setupMocks(repo)

			svc.runFindDueReminders(context.Background(), nil)

			repo.AssertExpectations(t)
			repo.AssertNotCalled(t, "MarkReminderSent", mock.Anything, mock.Anything)
		})
	}
}
