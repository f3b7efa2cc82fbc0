// Package services содержит бизнес-логику табеля посещаемости персонала.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/gym-console/internal/lib/dates"
	"github.com/magabrotheeeer/gym-console/internal/models"
)

// AttendanceRepository определяет методы для работы с табелем в хранилище.
type AttendanceRepository interface {
	UpsertAttendance(ctx context.Context, rec models.AttendanceRecord) (int, error)
	ListAttendance(ctx context.Context, technicianUID string, from, to time.Time) ([]*models.AttendanceRecord, error)
}

// AttendanceService реализует бизнес-логику табеля.
type AttendanceService struct {
	repo AttendanceRepository
	log  *slog.Logger
}

// NewAttendanceService создает новый экземпляр AttendanceService.
func NewAttendanceService(repo AttendanceRepository, log *slog.Logger) *AttendanceService {
	return &AttendanceService{
		repo: repo,
		log:  log,
	}
}

// Upsert записывает отметку за день, заменяя существующую за ту же дату.
// Для статуса absent часы принудительно обнуляются.
func (s *AttendanceService) Upsert(ctx context.Context, req models.DummyAttendance) (int, error) {
	day, err := time.Parse("02-01-2006", req.WorkDate)
	if err != nil {
		return 0, fmt.Errorf("invalid work date: %w", err)
	}

	rec := models.AttendanceRecord{
		TechnicianUID: req.TechnicianUID,
		WorkDate:      dates.Midnight(day),
		Status:        req.Status,
		HoursWorked:   req.HoursWorked,
	}
	if rec.Status == models.AttendanceStatusAbsent {
		rec.HoursWorked = 0
	}

	id, err := s.repo.UpsertAttendance(ctx, rec)
	if err != nil {
		return 0, err
	}
	s.log.Info("recorded attendance",
		slog.String("technician_uid", req.TechnicianUID),
		slog.String("status", req.Status))
	return id, nil
}

// List возвращает отметки сотрудника за диапазон дат.
func (s *AttendanceService) List(ctx context.Context, technicianUID string, from, to time.Time) ([]*models.AttendanceRecord, error) {
	return s.repo.ListAttendance(ctx, technicianUID, from, to)
}
