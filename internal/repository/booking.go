package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/VaccineBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, user_id, vaccine_id, booking_date, status,
	user_name, user_email, user_phone, vaccine_name, vaccine_location,
	notes, doses, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) (bool, error) {
	doses, err := marshalDoses(b.Doses)
	if err != nil {
		return false, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, storageErr("begin tx", err)
	}
	defer tx.Rollback()

	// Блокируем вакцину до конца транзакции
	var (
		slots  int
		active bool
	)
	lockQuery := `SELECT name, location, available_slots, is_active
				  FROM vaccines WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, b.VaccineID).Scan(
		&b.VaccineInfo.Name, &b.VaccineInfo.Location, &slots, &active,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, fmt.Errorf("%w: vaccine %s does not exist", domain.ErrInvalidReference, b.VaccineID)
		}
		return false, storageErr("lock vaccine", err)
	}
	if !active {
		return false, domain.ErrVaccineInactive
	}

	var taken int
	countQuery := `SELECT COUNT(*) FROM bookings WHERE vaccine_id = $1 AND status <> $2`
	if err = tx.QueryRowContext(ctx, countQuery, b.VaccineID, domain.BookingStatusCancelled).Scan(&taken); err != nil {
		return false, storageErr("count bookings", err)
	}
	if taken >= slots {
		return false, domain.ErrNoAvailableSlots
	}

	insertQuery := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = tx.ExecContext(
		ctx, insertQuery,
		b.ID, nullString(b.UserID), b.VaccineID, b.BookingDate, b.Status,
		b.UserInfo.Name, b.UserInfo.Email, b.UserInfo.Phone,
		b.VaccineInfo.Name, b.VaccineInfo.Location,
		b.Notes, doses, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, fmt.Errorf("%w: booking %s already exists", domain.ErrInvalidRequest, b.ID)
		}
		return false, storageErr("insert booking", err)
	}

	filled := taken+1 >= slots
	if filled {
		// Последнее место: закрываем активные брони и выключаем вакцину
		completeQuery := `UPDATE bookings SET status = $3, updated_at = $4
						  WHERE vaccine_id = $1 AND status = ANY($2)`
		if _, err = tx.ExecContext(
			ctx, completeQuery, b.VaccineID,
			pq.Array(domain.ActiveStatuses), domain.BookingStatusCompleted, b.UpdatedAt,
		); err != nil {
			return false, storageErr("complete bookings", err)
		}

		deactivateQuery := `UPDATE vaccines SET is_active = FALSE, updated_at = $2 WHERE id = $1`
		if _, err = tx.ExecContext(ctx, deactivateQuery, b.VaccineID, b.UpdatedAt); err != nil {
			return false, storageErr("deactivate vaccine", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return false, storageErr("commit", err)
	}

	if filled {
		b.Status = domain.BookingStatusCompleted
	}

	return filled, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, storageErr("get booking", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, storageErr("scan booking", err)
	}

	return b, nil
}

func (r *BookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
			  WHERE ($1 = '' OR position(lower($1) IN lower(user_email)) > 0)
			    AND ($2 = '' OR status = $2)
			  ORDER BY created_at DESC`

	return r.list(ctx, "list bookings", query, filter.UserEmail, string(filter.Status))
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	return r.list(ctx, "list bookings by user", query, userID)
}

func (r *BookingRepository) ListWithOpenDoses(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
			  WHERE status <> $1
			    AND EXISTS (
			        SELECT 1 FROM jsonb_array_elements(doses) d
			        WHERE NOT COALESCE((d->>'completed')::boolean, FALSE)
			    )
			  ORDER BY created_at`

	return r.list(ctx, "list open doses", query, domain.BookingStatusCancelled)
}

func (r *BookingRepository) Update(
	ctx context.Context,
	id string,
	apply func(b *domain.Booking) error,
) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storageErr("begin tx", err)
	}
	defer tx.Rollback()

	selectQuery := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`
	b, err := scanBooking(tx.QueryRowContext(ctx, selectQuery, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, storageErr("lock booking", err)
	}

	if err = apply(b); err != nil {
		return nil, err
	}

	doses, err := marshalDoses(b.Doses)
	if err != nil {
		return nil, err
	}

	updateQuery := `UPDATE bookings
					SET status = $2, booking_date = $3, notes = $4, doses = $5, updated_at = $6
					WHERE id = $1`
	if _, err = tx.ExecContext(
		ctx, updateQuery, b.ID, b.Status, b.BookingDate, b.Notes, doses, b.UpdatedAt,
	); err != nil {
		return nil, storageErr("update booking", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, storageErr("commit", err)
	}

	return b, nil
}

// Cancel is a single guarded UPDATE. A booking that is already cancelled is
// returned as is.
func (r *BookingRepository) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	query := `UPDATE bookings SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = ANY($2)
			  RETURNING ` + bookingColumns

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query, id,
		pq.Array(domain.ActiveStatuses), domain.BookingStatusCancelled,
	)
	if err != nil {
		return nil, storageErr("cancel booking", err)
	}

	b, err := scanBooking(row)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, storageErr("scan booking", err)
	}

	// Ничего не обновили: либо брони нет, либо она уже в конечном статусе
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.BookingStatusCancelled {
		return current, nil
	}

	return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current.Status, domain.BookingStatusCancelled)
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return storageErr("delete booking", err)
	}

	return expectAffected(res, domain.ErrBookingNotFound)
}

// MarkReminderSent stores the reminder marker on one dose without touching updated_at.
func (r *BookingRepository) MarkReminderSent(ctx context.Context, id string, doseIndex int, scheduled time.Time) error {
	query := `UPDATE bookings
			  SET doses = jsonb_set(doses, ARRAY[$2::text, 'reminder_sent_for'], to_jsonb($3::text))
			  WHERE id = $1 AND jsonb_array_length(doses) > $4`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, strconv.Itoa(doseIndex), domain.CalendarDate(scheduled).Format(time.RFC3339), doseIndex,
	)
	if err != nil {
		return storageErr("mark reminder sent", err)
	}

	return expectAffected(res, domain.ErrBookingNotFound)
}

func (r *BookingRepository) list(ctx context.Context, op, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, storageErr(op, err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, storageErr("scan booking", err)
		}
		res = append(res, b)
	}
	if err = rows.Err(); err != nil {
		return nil, storageErr(op, err)
	}

	return res, nil
}

func scanBooking(s scanner) (*domain.Booking, error) {
	var (
		b         domain.Booking
		userID    sql.NullString
		vaccineID sql.NullString
		doses     []byte
	)
	if err := s.Scan(
		&b.ID, &userID, &vaccineID, &b.BookingDate, &b.Status,
		&b.UserInfo.Name, &b.UserInfo.Email, &b.UserInfo.Phone,
		&b.VaccineInfo.Name, &b.VaccineInfo.Location,
		&b.Notes, &doses, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}

	b.UserID = userID.String
	b.VaccineID = vaccineID.String
	if len(doses) > 0 {
		if err := json.Unmarshal(doses, &b.Doses); err != nil {
			return nil, fmt.Errorf("decode doses: %w", err)
		}
	}
	if len(b.Doses) == 0 {
		b.Doses = nil
	}

	return &b, nil
}

func marshalDoses(doses []domain.Dose) ([]byte, error) {
	if doses == nil {
		doses = []domain.Dose{}
	}
	data, err := json.Marshal(doses)
	if err != nil {
		return nil, fmt.Errorf("encode doses: %w", err)
	}
	return data, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
