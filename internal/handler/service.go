package handler

import (
	"context"

	"github.com/libris-works/library-service/internal/model"
	"github.com/libris-works/library-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LibraryService interface {
	GetAllBooks(ctx context.Context) ([]model.Book, error)
	GetBooksByTitle(ctx context.Context, search string) ([]model.Book, error)
	GetBooksByAuthor(ctx context.Context, search string) ([]model.Book, error)
	GetBooksByCategory(ctx context.Context, search string) ([]model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int) error

	Eligibility(ctx context.Context) (model.Eligibility, error)
	CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.ReservationDetails, error)
	GetReservations(ctx context.Context) ([]model.ReservationDetails, error)
	ExtendReservation(ctx context.Context, reservationUid string) (model.ReservationDetails, error)
	GetAllBorrowed(ctx context.Context) ([]model.BorrowedBook, error)
	MarkReturned(ctx context.Context, reservationUid string) (model.ReservationDetails, error)

	GetUserPenalties(ctx context.Context) ([]model.Penalty, error)
	GetAllPenalties(ctx context.Context) ([]model.Penalty, error)
	GetAllOverdue(ctx context.Context) ([]model.BorrowedBook, error)
	ProcessOverdue(ctx context.Context) (model.OverdueProcessed, error)
	PayPenalty(ctx context.Context, id int) error
	WaivePenalty(ctx context.Context, id int) error

	GetProfile(ctx context.Context) (model.User, error)
	DeleteProfile(ctx context.Context) error
	GetStats(ctx context.Context) ([]model.ActivityStats, error)
}

var _ LibraryService = (*service.Service)(nil)
