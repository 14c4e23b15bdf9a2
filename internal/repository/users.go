package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/libris-works/library-service/internal/errs"
	"github.com/libris-works/library-service/internal/model"
	"github.com/pkg/errors"
)

func (r *repository) GetUser(ctx context.Context, username string) (model.User, error) {
	query, args, err := qb.Select("id", "username", "first_name", "last_name", "email",
		"role", "is_active", "penalty_count", "language", "created_at").
		From(usersTableName).
		Where(sq.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) ActiveReservationCount(ctx context.Context, username string) (int, error) {
	q := `
	select count(*) from reservations
	where username = $1 and status in ($2, $3, $4)
`
	var count int
	err := r.db.QueryRowContext(ctx, q, username,
		model.StatusActive, model.StatusExtended, model.StatusOverdue).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) DeleteUser(ctx context.Context, username string) error {
	query, args, err := qb.Delete(usersTableName).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
