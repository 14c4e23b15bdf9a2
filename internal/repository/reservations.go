package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/libris-works/library-service/internal/errs"
	"github.com/libris-works/library-service/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var reservationColumns = []string{
	"r.id", "r.reservation_uid", "r.username", "r.book_id", "r.status",
	"r.reservation_date", "r.due_date", "r.return_date", "r.extended", "r.reminder_sent",
	"b.title as book_title", "b.author as book_author",
}

func (r *repository) Eligibility(ctx context.Context, username string) (model.Eligibility, error) {
	q := `select * from can_user_reserve_books($1)`
	var el model.Eligibility
	if err := r.db.GetContext(ctx, &el, q, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Eligibility{}, errs.ErrNoData
		}
		return model.Eligibility{}, err
	}
	return el, nil
}

// CreateReservation delegates to the reserve_book routine, which inserts the
// row and decrements available_copies in one transaction.
func (r *repository) CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.ReservationDetails, error) {
	q := `select * from reserve_book($1, $2, $3, $4)`
	var res model.ReservationDetails
	err := r.db.GetContext(ctx, &res, q, uuid.New(), req.Username, req.BookID, req.DueDate.Format(time.DateOnly))
	if err != nil {
		r.log.Error("CreateReservation", zap.String("q", q), zap.Error(err))
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.RaiseException {
			if strings.Contains(pgErr.Message, "no copies") {
				return model.ReservationDetails{}, errs.ErrNoCopies
			}
			return model.ReservationDetails{}, errs.ErrNotFound
		}
		return model.ReservationDetails{}, err
	}
	return res, nil
}

func (r *repository) GetReservations(ctx context.Context, username string) ([]model.ReservationDetails, error) {
	query, args, err := qb.Select(reservationColumns...).
		From(reservationsTableName + " r").
		Join(fmt.Sprintf("%s b on b.id = r.book_id", booksTableName)).
		Where(sq.Eq{"r.username": username}).
		OrderBy("r.reservation_date desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.ReservationDetails
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) GetReservation(ctx context.Context, reservationUid string) (model.ReservationDetails, error) {
	query, args, err := qb.Select(reservationColumns...).
		From(reservationsTableName + " r").
		Join(fmt.Sprintf("%s b on b.id = r.book_id", booksTableName)).
		Where(sq.Eq{"r.reservation_uid": reservationUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.ReservationDetails{}, err
	}
	var res model.ReservationDetails
	if err := r.db.GetContext(ctx, &res, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ReservationDetails{}, errs.ErrNotFound
		}
		return model.ReservationDetails{}, err
	}
	return res, nil
}

// ExtendReservation pushes due_date one week out. The extended guard lives in
// the predicate so a racing second extension loses.
func (r *repository) ExtendReservation(ctx context.Context, reservationUid string) (model.ReservationDetails, error) {
	q := fmt.Sprintf(`update %s
	set due_date = due_date + interval '7 days',
	    extended = true,
	    status = '%s'
	where reservation_uid = $1 and extended = false and status = '%s'
	returning reservation_uid`, reservationsTableName, model.StatusExtended, model.StatusActive)

	var uid string
	if err := r.db.QueryRowContext(ctx, q, reservationUid).Scan(&uid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ReservationDetails{}, errs.ErrAlreadyExtended
		}
		return model.ReservationDetails{}, err
	}
	return r.GetReservation(ctx, uid)
}

func (r *repository) GetAllBorrowed(ctx context.Context) ([]model.BorrowedBook, error) {
	q := `select * from get_all_borrowed_books()`
	var items []model.BorrowedBook
	if err := r.db.SelectContext(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}

// MarkReturned is the only return path. The routine stamps return_date,
// restores available_copies and flips the status.
func (r *repository) MarkReturned(ctx context.Context, reservationUid string) (model.ReservationDetails, error) {
	q := `select mark_book_returned($1)`
	var found bool
	if err := r.db.GetContext(ctx, &found, q, reservationUid); err != nil {
		return model.ReservationDetails{}, err
	}
	if !found {
		return model.ReservationDetails{}, errs.ErrNotFound
	}
	return r.GetReservation(ctx, reservationUid)
}
