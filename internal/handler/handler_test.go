package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/libris-works/library-service/internal/errs"
	"github.com/libris-works/library-service/internal/handler"
	"github.com/libris-works/library-service/internal/model"
	"github.com/libris-works/library-service/pkg/validate"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/libris-works/library-service/internal/handler/mocks"
)

func newEcho(t *testing.T) (*echo.Echo, *service_mocks.MockLibraryService) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	svc := service_mocks.NewMockLibraryService(c)
	log := zap.NewExample().Named("test")
	h := handler.New(svc, nil, log)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.GET("/books", h.GetBooks)
	e.POST("/books", h.CreateBook)
	e.GET("/reservations/eligibility", h.Eligibility)
	e.POST("/reservations", h.CreateReservation)
	e.POST("/reservations/:reservationUid/extend", h.ExtendReservation)
	e.POST("/reservations/:reservationUid/return", h.MarkReturned)
	e.GET("/borrowed", h.GetAllBorrowed)
	e.DELETE("/users/me", h.DeleteProfile)
	return e, svc
}

func TestHandler_GetBooks(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	neuromancer := []model.Book{
		{
			ID:              2,
			Title:           "Neuromancer",
			Author:          "William Gibson",
			Category:        "Science Fiction",
			ISBN:            "9780441569595",
			Publisher:       "Ace",
			PublicationYear: 1984,
			TotalCopies:     2,
			AvailableCopies: 1,
		},
	}
	neuromancerJSON := `[{"bookId":2,"title":"Neuromancer","author":"William Gibson","category":"Science Fiction","isbn":"9780441569595","publisher":"Ace","publicationYear":1984,"totalCopies":2,"availableCopies":1,"createdAt":"0001-01-01T00:00:00Z"}]`

	var tests = []struct {
		name         string
		query        string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:  "no params browses all",
			query: "",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					GetAllBooks(context.Background()).
					Return(neuromancer, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: neuromancerJSON,
			},
		},
		{
			name:  "title param routes to title search",
			query: "?title=neuro",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					GetBooksByTitle(context.Background(), "neuro").
					Return(neuromancer, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: neuromancerJSON,
			},
		},
		{
			name:  "author param routes to author search",
			query: "?author=gibson",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					GetBooksByAuthor(context.Background(), "gibson").
					Return(neuromancer, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: neuromancerJSON,
			},
		},
		{
			name:  "blank category param still routes to category search",
			query: "?category=",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					GetBooksByCategory(context.Background(), "").
					Return([]model.Book{}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[]`,
			},
		},
		{
			name:  "err. internal",
			query: "",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					GetAllBooks(context.Background()).
					Return(nil, fmt.Errorf("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc := newEcho(t)

			r := httptest.NewRequest(http.MethodGet, "/books"+tt.query, http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateBook(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	reqBody := `{"title":"Dune","author":"Frank Herbert","category":"Science Fiction","isbn":"9780441013593","publisher":"Ace","publicationYear":1965,"totalCopies":4,"availableCopies":4}`
	reqModel := model.CreateBookRequest{
		Title:           "Dune",
		Author:          "Frank Herbert",
		Category:        "Science Fiction",
		ISBN:            "9780441013593",
		Publisher:       "Ace",
		PublicationYear: 1965,
		TotalCopies:     4,
		AvailableCopies: 4,
	}

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: reqBody,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateBook(context.Background(), reqModel).
					Return(model.Book{
						ID:              7,
						Title:           reqModel.Title,
						Author:          reqModel.Author,
						Category:        reqModel.Category,
						ISBN:            reqModel.ISBN,
						Publisher:       reqModel.Publisher,
						PublicationYear: reqModel.PublicationYear,
						TotalCopies:     reqModel.TotalCopies,
						AvailableCopies: reqModel.AvailableCopies,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"bookId":7,"title":"Dune","author":"Frank Herbert","category":"Science Fiction","isbn":"9780441013593","publisher":"Ace","publicationYear":1965,"totalCopies":4,"availableCopies":4,"createdAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name: "err. missing fields",
			body: `{"title":"Dune"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateBook(context.Background(), model.CreateBookRequest{Title: "Dune"}).
					Return(model.Book{}, errs.ErrMissingFields)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Missing required fields."}`,
			},
		},
		{
			name: "err. bad image url",
			body: reqBody,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateBook(context.Background(), reqModel).
					Return(model.Book{}, errs.ErrInvalidImageURL)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Image must be a valid URL."}`,
			},
		},
		{
			name: "err. customer forbidden",
			body: reqBody,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateBook(context.Background(), reqModel).
					Return(model.Book{}, fmt.Errorf("%w %s", errs.ErrNotLibrarian, "create books"))
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"only librarians can create books"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc := newEcho(t)

			r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Eligibility(t *testing.T) {
	t.Parallel()
	e, svc := newEcho(t)

	reason := "user has 2 overdue book(s)"
	svc.EXPECT().
		Eligibility(context.Background()).
		Return(model.Eligibility{
			CanReserve:        false,
			OverdueBookCount:  2,
			RestrictionReason: &reason,
		}, nil)

	r := httptest.NewRequest(http.MethodGet, "/reservations/eligibility", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`{"canReserve":false,"overdueBookCount":2,"restrictionReason":"user has 2 overdue book(s)"}`,
		strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_CreateReservation(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	reqModel := model.CreateReservationRequest{
		BookID:  1,
		DueDate: model.Date{Time: time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)},
	}

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"bookId":1,"dueDate":"2026-09-08"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateReservation(context.Background(), reqModel).
					Return(model.ReservationDetails{
						Reservation: model.Reservation{
							ReservationUid:  "8d9f3a2e-1111-4222-8333-444455556666",
							Username:        "maria",
							BookID:          1,
							Status:          model.StatusActive,
							ReservationDate: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
							DueDate:         time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
						},
						BookTitle:  "Dune",
						BookAuthor: "Frank Herbert",
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"reservationUid":"8d9f3a2e-1111-4222-8333-444455556666","username":"maria","bookId":1,"status":"ACTIVE","reservationDate":"2026-08-29T00:00:00Z","dueDate":"2026-09-08T00:00:00Z","extended":false,"reminderSent":false,"bookTitle":"Dune","bookAuthor":"Frank Herbert"}`,
			},
		},
		{
			name:         "err. missing dueDate",
			body:         `{"bookId":1}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'CreateReservationRequest.DueDate' Error:Field validation for 'DueDate' failed on the 'required' tag"}`,
			},
		},
		{
			name:         "err. missing bookId",
			body:         `{"dueDate":"2026-09-08"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'CreateReservationRequest.BookID' Error:Field validation for 'BookID' failed on the 'required' tag"}`,
			},
		},
		{
			name: "err. ineligible",
			body: `{"bookId":1,"dueDate":"2026-09-08"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateReservation(context.Background(), reqModel).
					Return(model.ReservationDetails{},
						fmt.Errorf("%w: %s", errs.ErrNotEligible, "user has 2 overdue book(s)"))
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"reservation not allowed: user has 2 overdue book(s)"}`,
			},
		},
		{
			name: "err. no copies",
			body: `{"bookId":1,"dueDate":"2026-09-08"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateReservation(context.Background(), reqModel).
					Return(model.ReservationDetails{}, errs.ErrNoCopies)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"no copies available"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc := newEcho(t)

			r := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ExtendReservation(t *testing.T) {
	t.Parallel()
	const uid = "8d9f3a2e-1111-4222-8333-444455556666"

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		e, svc := newEcho(t)
		svc.EXPECT().
			ExtendReservation(context.Background(), uid).
			Return(model.ReservationDetails{
				Reservation: model.Reservation{
					ReservationUid:  uid,
					Username:        "maria",
					BookID:          1,
					Status:          model.StatusExtended,
					ReservationDate: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
					DueDate:         time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
					Extended:        true,
				},
				BookTitle:  "Dune",
				BookAuthor: "Frank Herbert",
			}, nil)

		r := httptest.NewRequest(http.MethodPost, "/reservations/"+uid+"/extend", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t,
			`{"reservationUid":"`+uid+`","username":"maria","bookId":1,"status":"EXTENDED","reservationDate":"2026-08-29T00:00:00Z","dueDate":"2026-09-15T00:00:00Z","extended":true,"reminderSent":false,"bookTitle":"Dune","bookAuthor":"Frank Herbert"}`,
			strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("err. already extended", func(t *testing.T) {
		t.Parallel()
		e, svc := newEcho(t)
		svc.EXPECT().
			ExtendReservation(context.Background(), uid).
			Return(model.ReservationDetails{}, errs.ErrAlreadyExtended)

		r := httptest.NewRequest(http.MethodPost, "/reservations/"+uid+"/extend", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusConflict, w.Code)
		require.Equal(t, `{"message":"reservation already extended"}`, strings.Trim(w.Body.String(), "\n"))
	})
}

func TestHandler_MarkReturned(t *testing.T) {
	t.Parallel()
	const uid = "8d9f3a2e-1111-4222-8333-444455556666"

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		e, svc := newEcho(t)
		returned := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
		svc.EXPECT().
			MarkReturned(context.Background(), uid).
			Return(model.ReservationDetails{
				Reservation: model.Reservation{
					ReservationUid:  uid,
					Username:        "maria",
					BookID:          1,
					Status:          model.StatusReturned,
					ReservationDate: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
					DueDate:         time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
					ReturnDate:      &returned,
				},
				BookTitle:  "Dune",
				BookAuthor: "Frank Herbert",
			}, nil)

		r := httptest.NewRequest(http.MethodPost, "/reservations/"+uid+"/return", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t,
			`{"reservationUid":"`+uid+`","username":"maria","bookId":1,"status":"RETURNED","reservationDate":"2026-08-20T00:00:00Z","dueDate":"2026-09-08T00:00:00Z","returnDate":"2026-08-29T00:00:00Z","extended":false,"reminderSent":false,"bookTitle":"Dune","bookAuthor":"Frank Herbert"}`,
			strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("err. customer forbidden", func(t *testing.T) {
		t.Parallel()
		e, svc := newEcho(t)
		svc.EXPECT().
			MarkReturned(context.Background(), uid).
			Return(model.ReservationDetails{},
				fmt.Errorf("%w %s", errs.ErrNotLibrarian, "mark books as returned"))

		r := httptest.NewRequest(http.MethodPost, "/reservations/"+uid+"/return", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusForbidden, w.Code)
		require.Equal(t, `{"message":"only librarians can mark books as returned"}`, strings.Trim(w.Body.String(), "\n"))
	})
}

func TestHandler_GetAllBorrowed(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		e, svc := newEcho(t)
		svc.EXPECT().
			GetAllBorrowed(context.Background()).
			Return([]model.BorrowedBook{
				{
					ReservationUid: "8d9f3a2e-1111-4222-8333-444455556666",
					Username:       "maria",
					FirstName:      "Maria",
					LastName:       "Petrova",
					Email:          "maria@example.com",
					BookID:         1,
					BookTitle:      "Dune",
					BookAuthor:     "Frank Herbert",
					Status:         model.StatusOverdue,
					DueDate:        time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
				},
			}, nil)

		r := httptest.NewRequest(http.MethodGet, "/borrowed", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t,
			`[{"reservationUid":"8d9f3a2e-1111-4222-8333-444455556666","username":"maria","firstName":"Maria","lastName":"Petrova","email":"maria@example.com","bookId":1,"bookTitle":"Dune","bookAuthor":"Frank Herbert","status":"OVERDUE","dueDate":"2026-08-01T00:00:00Z"}]`,
			strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("err. unauthenticated", func(t *testing.T) {
		t.Parallel()
		e, svc := newEcho(t)
		svc.EXPECT().
			GetAllBorrowed(context.Background()).
			Return(nil, errs.ErrNotAuthenticated)

		r := httptest.NewRequest(http.MethodGet, "/borrowed", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, `{"message":"not authenticated"}`, strings.Trim(w.Body.String(), "\n"))
	})
}

func TestHandler_DeleteProfile(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		e, svc := newEcho(t)
		svc.EXPECT().DeleteProfile(context.Background()).Return(nil)

		r := httptest.NewRequest(http.MethodDelete, "/users/me", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, `{"success":true}`, strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("err. active reservations", func(t *testing.T) {
		t.Parallel()
		e, svc := newEcho(t)
		svc.EXPECT().
			DeleteProfile(context.Background()).
			Return(fmt.Errorf("%w: user has active reservations", errs.ErrConflict))

		r := httptest.NewRequest(http.MethodDelete, "/users/me", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusConflict, w.Code)
		require.Equal(t, `{"message":"conflict: user has active reservations"}`, strings.Trim(w.Body.String(), "\n"))
	})
}
