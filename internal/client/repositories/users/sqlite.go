package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/dmitrijs2005/heartrisk/internal/client/models"
	"github.com/dmitrijs2005/heartrisk/internal/common"
	"github.com/dmitrijs2005/heartrisk/internal/dbx"
)

const table = "users"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	query, args, err := psql.Insert(table).
		Columns("email", "password", "age", "sex").
		Values(user.Email, user.Password, user.Age, user.Sex).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return 0, fmt.Errorf("user %s: %w", user.Email, common.ErrAlreadyExists)
		}
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read user id: %w", err)
	}
	user.ID = id
	return id, nil
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query, args, err := psql.Select("id", "email", "password", "age", "sex").
		From(table).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	var u models.User
	if err := r.db.GetContext(ctx, &u, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

func (r *SQLiteRepository) GetProfile(ctx context.Context, id int64) (*models.Profile, error) {
	query, args, err := psql.Select("age", "sex").
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	var p models.Profile
	if err := r.db.GetContext(ctx, &p, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile[%d]: %w", id, err)
	}
	return &p, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete user[%d]: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete user[%d]: %w", id, err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
