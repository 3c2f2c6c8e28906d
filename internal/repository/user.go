package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stpnv0/VaccineBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const userColumns = `id, name, email, phone, role, telegram_chat_id, created_at`

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (` + userColumns + `)
 			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		user.ID, user.Name, user.Email, user.Phone, user.Role, user.TelegramChatID, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return storageErr("insert user", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`
	return r.getOne(ctx, query, email)
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, storageErr("list users", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, storageErr("scan user", err)
		}
		res = append(res, u)
	}
	if err = rows.Err(); err != nil {
		return nil, storageErr("list users", err)
	}

	return res, nil
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg string) (*domain.User, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, storageErr("get user", err)
	}

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, storageErr("scan user", err)
	}

	return u, nil
}

func scanUser(s scanner) (*domain.User, error) {
	var u domain.User
	if err := s.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.TelegramChatID, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
