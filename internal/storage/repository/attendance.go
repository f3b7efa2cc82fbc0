package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/gym-console/internal/models"
)

// UpsertAttendance вставляет или заменяет дневную запись посещаемости
// техника: на пару (техник, дата) в таблице есть не более одной строки.
func (s *Storage) UpsertAttendance(ctx context.Context, rec models.AttendanceRecord) (int, error) {
	const op = "storage.UpsertAttendance"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO attendance (technician_uid, work_date, status, hours_worked)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (technician_uid, work_date)
			  DO UPDATE SET status = EXCLUDED.status, hours_worked = EXCLUDED.hours_worked
			  RETURNING id`
	var id int
	err := s.DB.QueryRowContext(ctx, query,
		rec.TechnicianUID, rec.WorkDate, rec.Status, rec.HoursWorked).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// ListAttendance возвращает записи посещаемости техника за период.
func (s *Storage) ListAttendance(ctx context.Context, technicianUID string, from, to time.Time) ([]*models.AttendanceRecord, error) {
	const op = "storage.ListAttendance"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, technician_uid, work_date, status, hours_worked
			  FROM attendance
			  WHERE technician_uid = $1 AND work_date BETWEEN $2 AND $3
			  ORDER BY work_date`
	rows, err := s.DB.QueryContext(ctx, query, technicianUID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var records []*models.AttendanceRecord
	for rows.Next() {
		var rec models.AttendanceRecord
		if err := rows.Scan(&rec.ID, &rec.TechnicianUID, &rec.WorkDate,
			&rec.Status, &rec.HoursWorked); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return records, nil
}
