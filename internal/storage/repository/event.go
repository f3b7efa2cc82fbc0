package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/magabrotheeeer/gym-console/internal/models"
)

// CreateEvent вставляет событие календаря и возвращает его ID.
func (s *Storage) CreateEvent(ctx context.Context, e models.Event) (int, error) {
	const op = "storage.CreateEvent"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO events (title, start_date, end_date, all_day,
				  reminder_date, reminder_sent)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		e.Title, e.StartDate, e.EndDate, e.AllDay,
		nullTime(e.ReminderDate), e.ReminderSent).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadEvent возвращает событие по ID.
func (s *Storage) ReadEvent(ctx context.Context, id int) (*models.Event, error) {
	const op = "storage.ReadEvent"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, start_date, end_date, all_day, reminder_date, reminder_sent
			  FROM events WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	e, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return e, nil
}

// UpdateEvent обновляет событие, включая поля напоминания,
// и возвращает количество изменённых строк.
func (s *Storage) UpdateEvent(ctx context.Context, e models.Event, id int) (int, error) {
	const op = "storage.UpdateEvent"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE events
			  SET title = $1, start_date = $2, end_date = $3, all_day = $4,
				  reminder_date = $5, reminder_sent = $6
			  WHERE id = $7`
	result, err := s.DB.ExecContext(ctx, query,
		e.Title, e.StartDate, e.EndDate, e.AllDay,
		nullTime(e.ReminderDate), e.ReminderSent, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListEvents возвращает события, пересекающиеся с диапазоном дат.
func (s *Storage) ListEvents(ctx context.Context, from, to time.Time) ([]*models.Event, error) {
	const op = "storage.ListEvents"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, start_date, end_date, all_day, reminder_date, reminder_sent
			  FROM events
			  WHERE start_date <= $2 AND end_date >= $1
			  ORDER BY start_date, id`
	rows, err := s.DB.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var events []*models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return events, nil
}

// ListPendingReminders возвращает события с назначенным
// и ещё не отправленным напоминанием.
func (s *Storage) ListPendingReminders(ctx context.Context) ([]*models.Event, error) {
	const op = "storage.ListPendingReminders"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, start_date, end_date, all_day, reminder_date, reminder_sent
			  FROM events
			  WHERE reminder_date IS NOT NULL AND reminder_sent = FALSE
			  ORDER BY reminder_date, id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var events []*models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return events, nil
}

// MarkReminderSent выставляет флаг отправки напоминания.
// Единственный переход состояния напоминания; обратного пути нет,
// пока дату напоминания не отредактируют.
func (s *Storage) MarkReminderSent(ctx context.Context, id int) (int, error) {
	const op = "storage.MarkReminderSent"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE events SET reminder_sent = TRUE WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveEvent удаляет событие и возвращает количество удалённых строк.
func (s *Storage) RemoveEvent(ctx context.Context, id int) (int, error) {
	const op = "storage.RemoveEvent"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM events WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

func scanEvent(row rowScanner) (*models.Event, error) {
	var e models.Event
	var reminderDate sql.NullTime

	if err := row.Scan(&e.ID, &e.Title, &e.StartDate, &e.EndDate, &e.AllDay,
		&reminderDate, &e.ReminderSent); err != nil {
		return nil, err
	}
	if reminderDate.Valid {
		t := reminderDate.Time
		e.ReminderDate = &t
	}
	return &e, nil
}
