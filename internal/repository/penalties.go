package repository

import (
	"context"
	"fmt"

	"github.com/libris-works/library-service/internal/errs"
	"github.com/libris-works/library-service/internal/model"
)

func (r *repository) GetUserPenalties(ctx context.Context, username string) ([]model.Penalty, error) {
	q := `select * from get_user_penalties($1)`
	var items []model.Penalty
	if err := r.db.SelectContext(ctx, &items, q, username); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) GetAllPenalties(ctx context.Context) ([]model.Penalty, error) {
	query, args, err := qb.Select(
		"p.id", "p.reservation_uid", "p.username", "p.amount", "p.reason",
		"p.status", "p.created_at",
		"b.title as book_title", "b.author as book_author",
		"r.due_date", "r.return_date").
		From(penaltiesTableName + " p").
		LeftJoin(fmt.Sprintf("%s r on r.reservation_uid = p.reservation_uid", reservationsTableName)).
		LeftJoin(fmt.Sprintf("%s b on b.id = r.book_id", booksTableName)).
		OrderBy("p.created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Penalty
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) GetAllOverdue(ctx context.Context) ([]model.BorrowedBook, error) {
	q := `select * from get_all_overdue_books()`
	var items []model.BorrowedBook
	if err := r.db.SelectContext(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}

// ProcessOverdue flips expired reservations to OVERDUE and accrues pending
// penalties inside the routine. Returns the number of reservations touched.
func (r *repository) ProcessOverdue(ctx context.Context) (int, error) {
	q := `select process_overdue_books()`
	var processed int
	if err := r.db.GetContext(ctx, &processed, q); err != nil {
		return 0, err
	}
	return processed, nil
}

func (r *repository) PayPenalty(ctx context.Context, id int) error {
	return r.resolvePenalty(ctx, "pay_penalty", id)
}

func (r *repository) WaivePenalty(ctx context.Context, id int) error {
	return r.resolvePenalty(ctx, "waive_penalty", id)
}

func (r *repository) resolvePenalty(ctx context.Context, fn string, id int) error {
	var found bool
	if err := r.db.GetContext(ctx, &found, fmt.Sprintf(`select %s($1)`, fn), id); err != nil {
		return err
	}
	if !found {
		return errs.ErrNotFound
	}
	return nil
}
