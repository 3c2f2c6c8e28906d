package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/stpnv0/VaccineBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const vaccineColumns = `id, name, description, dosage, availability, location,
	available_slots, price, age_groups, is_active, created_at, updated_at`

var vaccineSortColumns = map[domain.SortField]string{
	domain.SortByName:           "name",
	domain.SortByPrice:          "price",
	domain.SortByAvailability:   "availability",
	domain.SortByAvailableSlots: "available_slots",
	domain.SortByLocation:       "location",
	domain.SortByCreatedAt:      "created_at",
}

type VaccineRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVaccineRepo(db *dbpg.DB) *VaccineRepository {
	return &VaccineRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *VaccineRepository) Create(ctx context.Context, v *domain.Vaccine) error {
	query := `INSERT INTO vaccines (` + vaccineColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		v.ID, v.Name, v.Description, v.Dosage, v.Availability, v.Location,
		v.AvailableSlots, v.Price, pq.Array(ageGroupStrings(v.AgeGroups)), v.IsActive,
		v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrVaccineNameTaken
		}
		return storageErr("insert vaccine", err)
	}

	return nil
}

func (r *VaccineRepository) GetByID(ctx context.Context, id string) (*domain.Vaccine, error) {
	query := `SELECT ` + vaccineColumns + ` FROM vaccines WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, storageErr("get vaccine", err)
	}

	v, err := scanVaccine(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVaccineNotFound
		}
		return nil, storageErr("scan vaccine", err)
	}

	return v, nil
}

// Update блокирует строку вакцины до конца транзакции, поэтому не
// пересекается с созданием брони, которое берёт ту же блокировку.
func (r *VaccineRepository) Update(
	ctx context.Context,
	id string,
	apply func(v *domain.Vaccine) error,
) (*domain.Vaccine, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storageErr("begin tx", err)
	}
	defer tx.Rollback()

	selectQuery := `SELECT ` + vaccineColumns + ` FROM vaccines WHERE id = $1 FOR UPDATE`
	v, err := scanVaccine(tx.QueryRowContext(ctx, selectQuery, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVaccineNotFound
		}
		return nil, storageErr("lock vaccine", err)
	}

	if err = apply(v); err != nil {
		return nil, err
	}
	v.ID = id

	var taken int
	countQuery := `SELECT COUNT(*) FROM bookings WHERE vaccine_id = $1 AND status <> $2`
	if err = tx.QueryRowContext(ctx, countQuery, id, domain.BookingStatusCancelled).Scan(&taken); err != nil {
		return nil, storageErr("count bookings", err)
	}
	v.EnforceCapacity(taken)

	updateQuery := `UPDATE vaccines
					SET name = $2, description = $3, dosage = $4, availability = $5,
					    location = $6, available_slots = $7, price = $8, age_groups = $9,
					    is_active = $10, updated_at = $11
					WHERE id = $1`
	if _, err = tx.ExecContext(
		ctx, updateQuery,
		v.ID, v.Name, v.Description, v.Dosage, v.Availability, v.Location,
		v.AvailableSlots, v.Price, pq.Array(ageGroupStrings(v.AgeGroups)), v.IsActive,
		v.UpdatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrVaccineNameTaken
		}
		return nil, storageErr("update vaccine", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, storageErr("commit", err)
	}

	return v, nil
}

func (r *VaccineRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM vaccines WHERE id = $1`, id)
	if err != nil {
		return storageErr("delete vaccine", err)
	}

	return expectAffected(res, domain.ErrVaccineNotFound)
}

// List filters in SQL. The sort column comes from a fixed whitelist.
func (r *VaccineRepository) List(ctx context.Context, q domain.VaccineQuery) ([]*domain.Vaccine, error) {
	column, ok := vaccineSortColumns[q.SortBy]
	if !ok {
		column = "name"
	}
	direction := "ASC"
	if q.SortOrder == domain.SortDesc {
		direction = "DESC"
	}

	query := fmt.Sprintf(`SELECT %s FROM vaccines
			  WHERE (NOT $1 OR is_active)
			    AND ($2 = '' OR $2 = ANY(age_groups) OR 'all' = ANY(age_groups))
			    AND ($3 = ''
			         OR position($3 IN lower(name)) > 0
			         OR position($3 IN lower(description)) > 0
			         OR position($3 IN lower(location)) > 0)
			  ORDER BY %s %s, name %s, id %s`,
		vaccineColumns, column, direction, direction, direction)

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		q.ActiveOnly, string(q.AgeGroup), strings.ToLower(q.Search),
	)
	if err != nil {
		return nil, storageErr("list vaccines", err)
	}
	defer rows.Close()

	var res []*domain.Vaccine
	for rows.Next() {
		v, err := scanVaccine(rows)
		if err != nil {
			return nil, storageErr("scan vaccine", err)
		}
		res = append(res, v)
	}
	if err = rows.Err(); err != nil {
		return nil, storageErr("list vaccines", err)
	}

	return res, nil
}

func scanVaccine(s scanner) (*domain.Vaccine, error) {
	var v domain.Vaccine
	var groups []string
	if err := s.Scan(
		&v.ID, &v.Name, &v.Description, &v.Dosage, &v.Availability, &v.Location,
		&v.AvailableSlots, &v.Price, pq.Array(&groups), &v.IsActive,
		&v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}

	v.Availability = domain.CalendarDate(v.Availability)
	v.AgeGroups = make([]domain.AgeGroup, 0, len(groups))
	for _, g := range groups {
		v.AgeGroups = append(v.AgeGroups, domain.AgeGroup(g))
	}

	return &v, nil
}

func ageGroupStrings(groups []domain.AgeGroup) []string {
	res := make([]string, 0, len(groups))
	for _, g := range groups {
		res = append(res, string(g))
	}
	return res
}

func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr("rows affected", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
