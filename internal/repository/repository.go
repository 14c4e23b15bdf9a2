package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/libris-works/library-service/internal/model"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	SearchBooks(ctx context.Context, column, search string) ([]model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int) error

	GetUser(ctx context.Context, username string) (model.User, error)
	ActiveReservationCount(ctx context.Context, username string) (int, error)
	DeleteUser(ctx context.Context, username string) error

	Eligibility(ctx context.Context, username string) (model.Eligibility, error)
	CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.ReservationDetails, error)
	GetReservations(ctx context.Context, username string) ([]model.ReservationDetails, error)
	GetReservation(ctx context.Context, reservationUid string) (model.ReservationDetails, error)
	ExtendReservation(ctx context.Context, reservationUid string) (model.ReservationDetails, error)
	GetAllBorrowed(ctx context.Context) ([]model.BorrowedBook, error)
	MarkReturned(ctx context.Context, reservationUid string) (model.ReservationDetails, error)

	GetUserPenalties(ctx context.Context, username string) ([]model.Penalty, error)
	GetAllPenalties(ctx context.Context) ([]model.Penalty, error)
	GetAllOverdue(ctx context.Context) ([]model.BorrowedBook, error)
	ProcessOverdue(ctx context.Context) (int, error)
	PayPenalty(ctx context.Context, id int) error
	WaivePenalty(ctx context.Context, id int) error

	GetStats(ctx context.Context) ([]model.ActivityStats, error)
	ApplyEvent(ctx context.Context, ev model.ReservationEvent) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName        = `books`
	usersTableName        = `users`
	reservationsTableName = `reservations`
	penaltiesTableName    = `penalties`
	statsTableName        = `activity_stats`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
