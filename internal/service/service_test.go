package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/libris-works/library-service/internal/errs"
	"github.com/libris-works/library-service/internal/model"
	"github.com/libris-works/library-service/internal/service"
	"github.com/libris-works/library-service/pkg/auth"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	repo_mocks "github.com/libris-works/library-service/internal/repository/mocks"
)

func newService(t *testing.T) (*service.Service, *repo_mocks.MockRepository) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	repo := repo_mocks.NewMockRepository(c)
	return service.NewService(repo, zap.NewExample().Named("test")), repo
}

func authedCtx(username string) context.Context {
	return auth.SetAuthContext(context.Background(), username, "")
}

func strPtr(s string) *string { return &s }

func TestService_CreateReservation(t *testing.T) {
	t.Parallel()
	req := model.CreateReservationRequest{
		BookID:  1,
		DueDate: model.Date{Time: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
	}

	t.Run("unauthenticated performs no calls", func(t *testing.T) {
		t.Parallel()
		svc, _ := newService(t)
		_, err := svc.CreateReservation(context.Background(), req)
		require.ErrorIs(t, err, errs.ErrNotAuthenticated)
	})

	t.Run("ineligible user causes no write", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		ctx := authedCtx("maria")
		repo.EXPECT().
			Eligibility(ctx, "maria").
			Return(model.Eligibility{
				CanReserve:        false,
				OverdueBookCount:  2,
				RestrictionReason: strPtr("user has 2 overdue book(s)"),
			}, nil)

		_, err := svc.CreateReservation(ctx, req)
		require.ErrorIs(t, err, errs.ErrNotEligible)
		require.Contains(t, err.Error(), "user has 2 overdue book(s)")
	})

	t.Run("no available copies causes no write", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		ctx := authedCtx("maria")
		repo.EXPECT().
			Eligibility(ctx, "maria").
			Return(model.Eligibility{CanReserve: true}, nil)
		repo.EXPECT().
			GetBook(ctx, 1).
			Return(model.Book{ID: 1, AvailableCopies: 0}, nil)

		_, err := svc.CreateReservation(ctx, req)
		require.ErrorIs(t, err, errs.ErrNoCopies)
	})

	t.Run("eligible with copies inserts", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		ctx := authedCtx("maria")
		want := model.ReservationDetails{
			Reservation: model.Reservation{
				ReservationUid: "4a6c3f5e-0000-0000-0000-000000000001",
				Username:       "maria",
				BookID:         1,
				Status:         model.StatusActive,
			},
			BookTitle:  "The Go Programming Language",
			BookAuthor: "Donovan, Kernighan",
		}
		repo.EXPECT().
			Eligibility(ctx, "maria").
			Return(model.Eligibility{CanReserve: true}, nil)
		repo.EXPECT().
			GetBook(ctx, 1).
			Return(model.Book{ID: 1, AvailableCopies: 3}, nil)
		authedReq := req
		authedReq.Username = "maria"
		repo.EXPECT().
			CreateReservation(ctx, authedReq).
			Return(want, nil)

		got, err := svc.CreateReservation(ctx, req)
		require.NoError(t, err)
		require.Equal(t, want, got)
	})
}

func TestService_Eligibility(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t)
	ctx := authedCtx("maria")
	repo.EXPECT().
		Eligibility(ctx, "maria").
		Return(model.Eligibility{
			CanReserve:        false,
			OverdueBookCount:  2,
			RestrictionReason: strPtr("overdue books must be returned first"),
		}, nil)

	el, err := svc.Eligibility(ctx)
	require.NoError(t, err)
	require.False(t, el.CanReserve)
	require.Equal(t, 2, el.OverdueBookCount)
}

func TestService_ExtendReservation(t *testing.T) {
	t.Parallel()
	const uid = "11111111-2222-3333-4444-555555555555"

	t.Run("second extension is rejected", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		ctx := authedCtx("maria")
		repo.EXPECT().
			GetReservation(ctx, uid).
			Return(model.ReservationDetails{
				Reservation: model.Reservation{
					ReservationUid: uid,
					Username:       "maria",
					Status:         model.StatusExtended,
					Extended:       true,
				},
			}, nil)

		_, err := svc.ExtendReservation(ctx, uid)
		require.ErrorIs(t, err, errs.ErrAlreadyExtended)
	})

	t.Run("someone else's reservation reads as not found", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		ctx := authedCtx("maria")
		repo.EXPECT().
			GetReservation(ctx, uid).
			Return(model.ReservationDetails{
				Reservation: model.Reservation{ReservationUid: uid, Username: "boris"},
			}, nil)

		_, err := svc.ExtendReservation(ctx, uid)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("first extension adds seven days", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		ctx := authedCtx("maria")
		due := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().
			GetReservation(ctx, uid).
			Return(model.ReservationDetails{
				Reservation: model.Reservation{
					ReservationUid: uid,
					Username:       "maria",
					Status:         model.StatusActive,
					DueDate:        due,
				},
			}, nil)
		repo.EXPECT().
			ExtendReservation(ctx, uid).
			Return(model.ReservationDetails{
				Reservation: model.Reservation{
					ReservationUid: uid,
					Username:       "maria",
					Status:         model.StatusExtended,
					DueDate:        due.AddDate(0, 0, 7),
					Extended:       true,
				},
				BookTitle: "The Go Programming Language",
			}, nil)

		got, err := svc.ExtendReservation(ctx, uid)
		require.NoError(t, err)
		require.True(t, got.Extended)
		require.Equal(t, due.AddDate(0, 0, 7), got.DueDate)
	})
}

func TestService_LibrarianGate(t *testing.T) {
	t.Parallel()
	const uid = "11111111-2222-3333-4444-555555555555"

	t.Run("unauthenticated", func(t *testing.T) {
		t.Parallel()
		svc, _ := newService(t)
		_, err := svc.MarkReturned(context.Background(), uid)
		require.ErrorIs(t, err, errs.ErrNotAuthenticated)
	})

	t.Run("customer cannot mark returned", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		ctx := authedCtx("maria")
		repo.EXPECT().
			GetUser(ctx, "maria").
			Return(model.User{Username: "maria", Role: model.RoleCustomer}, nil)

		_, err := svc.MarkReturned(ctx, uid)
		require.ErrorIs(t, err, errs.ErrNotLibrarian)
		require.EqualError(t, err, "only librarians can mark books as returned")
	})

	t.Run("librarian proceeds", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		ctx := authedCtx("irina")
		repo.EXPECT().
			GetUser(ctx, "irina").
			Return(model.User{Username: "irina", Role: model.RoleLibrarian}, nil)
		repo.EXPECT().
			MarkReturned(ctx, uid).
			Return(model.ReservationDetails{
				Reservation: model.Reservation{ReservationUid: uid, Status: model.StatusReturned},
			}, nil)

		got, err := svc.MarkReturned(ctx, uid)
		require.NoError(t, err)
		require.Equal(t, model.StatusReturned, got.Status)
	})

	t.Run("same gate guards overdue processing", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		ctx := authedCtx("maria")
		repo.EXPECT().
			GetUser(ctx, "maria").
			Return(model.User{Username: "maria", Role: model.RoleCustomer}, nil)

		_, err := svc.ProcessOverdue(ctx)
		require.ErrorIs(t, err, errs.ErrNotLibrarian)
		require.EqualError(t, err, "only librarians can process overdue books")
	})
}

func TestService_Books_Search(t *testing.T) {
	t.Parallel()

	t.Run("blank author search returns empty without a query", func(t *testing.T) {
		t.Parallel()
		svc, _ := newService(t)
		books, err := svc.GetBooksByAuthor(context.Background(), "   ")
		require.NoError(t, err)
		require.NotNil(t, books)
		require.Empty(t, books)
	})

	t.Run("blank category search returns empty without a query", func(t *testing.T) {
		t.Parallel()
		svc, _ := newService(t)
		books, err := svc.GetBooksByCategory(context.Background(), "")
		require.NoError(t, err)
		require.Empty(t, books)
	})

	t.Run("blank title search browses the full catalog", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		all := []model.Book{{ID: 1, Title: "Dune"}, {ID: 2, Title: "Neuromancer"}}
		repo.EXPECT().ListBooks(gomock.Any()).Return(all, nil)

		books, err := svc.GetBooksByTitle(context.Background(), "   ")
		require.NoError(t, err)
		require.Equal(t, all, books)
	})

	t.Run("non-blank search hits the matching column", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().
			SearchBooks(gomock.Any(), "author", "gibson").
			Return([]model.Book{{ID: 2, Title: "Neuromancer"}}, nil)

		books, err := svc.GetBooksByAuthor(context.Background(), "gibson")
		require.NoError(t, err)
		require.Len(t, books, 1)
	})
}

func TestService_CreateBook_Validation(t *testing.T) {
	t.Parallel()

	librarian := func(repo *repo_mocks.MockRepository, ctx context.Context) {
		repo.EXPECT().
			GetUser(ctx, "irina").
			Return(model.User{Username: "irina", Role: model.RoleLibrarian}, nil)
	}
	valid := model.CreateBookRequest{
		Title:           "Dune",
		Author:          "Frank Herbert",
		Category:        "Science Fiction",
		ISBN:            "9780441013593",
		Publisher:       "Ace",
		PublicationYear: 1965,
		TotalCopies:     4,
		AvailableCopies: 4,
	}

	t.Run("missing author never reaches the repository", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		ctx := authedCtx("irina")
		librarian(repo, ctx)

		req := valid
		req.Author = ""
		_, err := svc.CreateBook(ctx, req)
		require.ErrorIs(t, err, errs.ErrMissingFields)
		require.EqualError(t, err, "Missing required fields.")
	})

	t.Run("available above total never reaches the repository", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		ctx := authedCtx("irina")
		librarian(repo, ctx)

		req := valid
		req.AvailableCopies = 5
		_, err := svc.CreateBook(ctx, req)
		require.ErrorIs(t, err, errs.ErrMissingFields)
	})

	t.Run("bad image url never reaches the repository", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		ctx := authedCtx("irina")
		librarian(repo, ctx)

		req := valid
		req.Image = strPtr("invalid-url")
		_, err := svc.CreateBook(ctx, req)
		require.ErrorIs(t, err, errs.ErrInvalidImageURL)
		require.EqualError(t, err, "Image must be a valid URL.")
	})

	t.Run("customer gets the role error before validation", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		ctx := authedCtx("maria")
		repo.EXPECT().
			GetUser(ctx, "maria").
			Return(model.User{Username: "maria", Role: model.RoleCustomer}, nil)

		_, err := svc.CreateBook(ctx, valid)
		require.ErrorIs(t, err, errs.ErrNotLibrarian)
	})

	t.Run("valid request inserts", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		ctx := authedCtx("irina")
		librarian(repo, ctx)

		req := valid
		req.Image = strPtr("https://covers.example.org/dune.jpg")
		repo.EXPECT().
			CreateBook(ctx, req).
			Return(model.Book{ID: 7, Title: "Dune"}, nil)

		book, err := svc.CreateBook(ctx, req)
		require.NoError(t, err)
		require.Equal(t, 7, book.ID)
	})
}

func TestService_DeleteProfile(t *testing.T) {
	t.Parallel()

	t.Run("active reservations block deletion", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		ctx := authedCtx("maria")
		repo.EXPECT().ActiveReservationCount(ctx, "maria").Return(2, nil)

		err := svc.DeleteProfile(ctx)
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("clean account deletes", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		ctx := authedCtx("maria")
		repo.EXPECT().ActiveReservationCount(ctx, "maria").Return(0, nil)
		repo.EXPECT().DeleteUser(ctx, "maria").Return(nil)

		require.NoError(t, svc.DeleteProfile(ctx))
	})
}
