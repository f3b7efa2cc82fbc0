package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/magabrotheeeer/gym-console/internal/models"
)

// CreatePayment вставляет запись платежа и возвращает её ID.
// Запись создаётся всегда, в том числе для задатков без продления.
func (s *Storage) CreatePayment(ctx context.Context, p models.Payment) (int, error) {
	const op = "storage.CreatePayment"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO payments (member_uid, amount_cents, payment_type,
				  reference_month, payment_date)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		p.MemberUID, p.AmountCents, p.PaymentType,
		nullMonth(p.ReferenceMonth), p.PaymentDate).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListPaymentsByMember возвращает платежи клиента, новые первыми.
func (s *Storage) ListPaymentsByMember(ctx context.Context, memberUID string, limit, offset int) ([]*models.Payment, error) {
	const op = "storage.ListPaymentsByMember"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, member_uid, amount_cents, payment_type, reference_month, payment_date
			  FROM payments WHERE member_uid = $1
			  ORDER BY payment_date DESC, id DESC
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, memberUID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var payments []*models.Payment
	for rows.Next() {
		var p models.Payment
		var refMonth sql.NullInt64
		if err := rows.Scan(&p.ID, &p.MemberUID, &p.AmountCents, &p.PaymentType,
			&refMonth, &p.PaymentDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if refMonth.Valid {
			month := time.Month(refMonth.Int64)
			p.ReferenceMonth = &month
		}
		payments = append(payments, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return payments, nil
}

// RemovePayment удаляет запись платежа и возвращает количество удалённых строк.
func (s *Storage) RemovePayment(ctx context.Context, id int) (int, error) {
	const op = "storage.RemovePayment"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM payments WHERE id = $1`
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
