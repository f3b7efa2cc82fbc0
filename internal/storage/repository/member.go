package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/magabrotheeeer/gym-console/internal/models"
)

// CreateMember вставляет новую карточку клиента и возвращает её UID.
func (s *Storage) CreateMember(ctx context.Context, m models.Member) (string, error) {
	const op = "storage.CreateMember"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO members (uid, name, surname, subscription_expiration_date,
				  last_paid_month, certificate_present, certificate_expiration_date,
				  monthly_fee_cents, enrollment_fee_cents, payment_status, state)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  RETURNING uid`
	var uid string
	err := s.DB.QueryRowContext(ctx, query,
		m.UID, m.Name, m.Surname, nullTime(m.SubscriptionExpirationDate),
		nullMonth(m.LastPaidMonth), m.CertificatePresent, nullTime(m.CertificateExpirationDate),
		m.MonthlyFeeCents, m.EnrollmentFeeCents, m.PaymentStatus, m.State).Scan(&uid)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return uid, nil
}

// ReadMember возвращает карточку клиента по UID.
func (s *Storage) ReadMember(ctx context.Context, uid string) (*models.Member, error) {
	const op = "storage.ReadMember"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, name, surname, subscription_expiration_date, last_paid_month,
				certificate_present, certificate_expiration_date, monthly_fee_cents,
				enrollment_fee_cents, payment_status, state
			  FROM members WHERE uid = $1`
	row := s.DB.QueryRowContext(ctx, query, uid)

	m, err := scanMember(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return m, nil
}

// UpdateMember обновляет карточку клиента и возвращает количество изменённых строк.
func (s *Storage) UpdateMember(ctx context.Context, m models.Member, uid string) (int, error) {
	const op = "storage.UpdateMember"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE members
			  SET name = $1, surname = $2, subscription_expiration_date = $3,
				  certificate_present = $4, certificate_expiration_date = $5,
				  monthly_fee_cents = $6, payment_status = $7
			  WHERE uid = $8`
	result, err := s.DB.ExecContext(ctx, query,
		m.Name, m.Surname, nullTime(m.SubscriptionExpirationDate),
		m.CertificatePresent, nullTime(m.CertificateExpirationDate),
		m.MonthlyFeeCents, m.PaymentStatus, uid)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ApplySubscriptionPatch применяет вычисленный движком начисления патч:
// новую дату окончания, последний оплаченный месяц и прибавку
// к накопленному вступительному взносу — одним запросом.
func (s *Storage) ApplySubscriptionPatch(ctx context.Context, uid string, patch models.SubscriptionPatch) (int, error) {
	const op = "storage.ApplySubscriptionPatch"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE members
			  SET subscription_expiration_date = COALESCE($1, subscription_expiration_date),
				  last_paid_month = COALESCE($2, last_paid_month),
				  enrollment_fee_cents = enrollment_fee_cents + $3
			  WHERE uid = $4`
	result, err := s.DB.ExecContext(ctx, query,
		nullTime(patch.ExpirationDate), nullMonth(patch.LastPaidMonth),
		patch.EnrollmentFeeDeltaCents, uid)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListMembers возвращает карточки клиентов в заданном состоянии с пагинацией.
func (s *Storage) ListMembers(ctx context.Context, state string, limit, offset int) ([]*models.Member, error) {
	const op = "storage.ListMembers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, name, surname, subscription_expiration_date, last_paid_month,
				certificate_present, certificate_expiration_date, monthly_fee_cents,
				enrollment_fee_cents, payment_status, state
			  FROM members WHERE state = $1
			  ORDER BY surname, name
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, state, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var members []*models.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return members, nil
}

// ListActiveMembers возвращает все активные карточки без пагинации —
// выборка для сводки предупреждений.
func (s *Storage) ListActiveMembers(ctx context.Context) ([]*models.Member, error) {
	const op = "storage.ListActiveMembers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, name, surname, subscription_expiration_date, last_paid_month,
				certificate_present, certificate_expiration_date, monthly_fee_cents,
				enrollment_fee_cents, payment_status, state
			  FROM members WHERE state = $1`
	rows, err := s.DB.QueryContext(ctx, query, models.MemberStateActive)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var members []*models.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return members, nil
}

// ArchiveMember переводит карточку в состояние archived.
func (s *Storage) ArchiveMember(ctx context.Context, uid string) (int, error) {
	const op = "storage.ArchiveMember"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE members SET state = $1 WHERE uid = $2`
	result, err := s.DB.ExecContext(ctx, query, models.MemberStateArchived, uid)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveMember удаляет карточку клиента и возвращает количество удалённых строк.
// Платежи клиента не каскадируются — история остаётся для сверки.
func (s *Storage) RemoveMember(ctx context.Context, uid string) (int, error) {
	const op = "storage.RemoveMember"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM members WHERE uid = $1`
	result, err := s.DB.ExecContext(ctx, query, uid)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (*models.Member, error) {
	var m models.Member
	var subExpiration, certExpiration sql.NullTime
	var lastPaidMonth sql.NullInt64

	if err := row.Scan(&m.UID, &m.Name, &m.Surname, &subExpiration, &lastPaidMonth,
		&m.CertificatePresent, &certExpiration, &m.MonthlyFeeCents,
		&m.EnrollmentFeeCents, &m.PaymentStatus, &m.State); err != nil {
		return nil, err
	}
	if subExpiration.Valid {
		t := subExpiration.Time
		m.SubscriptionExpirationDate = &t
	}
	if certExpiration.Valid {
		t := certExpiration.Time
		m.CertificateExpirationDate = &t
	}
	if lastPaidMonth.Valid {
		month := time.Month(lastPaidMonth.Int64)
		m.LastPaidMonth = &month
	}
	return &m, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullMonth(m *time.Month) sql.NullInt64 {
	if m == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*m), Valid: true}
}
