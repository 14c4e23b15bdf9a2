package handler

import (
	"net/http"

	"github.com/IBM/sarama"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/libris-works/library-service/internal/errs"
	mw "github.com/libris-works/library-service/pkg/middleware"
	"github.com/libris-works/library-service/pkg/validate"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	svc      LibraryService
	enqueuer Enqueuer
	log      *zap.Logger
}

func New(svc LibraryService, producer sarama.SyncProducer, log *zap.Logger) *Handler {
	h := &Handler{
		svc:      svc,
		enqueuer: NewEnqueuer(producer),
		log:      log,
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig()),
		middleware.RequestID(),
		mw.NewRateLimiter(apiRPS),
	)

	api.GET("/books", h.GetBooks)
	api.GET("/books/:bookId", h.GetBook)

	authed := api.Group("", mw.JwtAuthentication)

	authed.POST("/books", h.CreateBook)
	authed.PATCH("/books/:bookId", h.UpdateBook)
	authed.DELETE("/books/:bookId", h.DeleteBook)

	authed.GET("/reservations", h.GetReservations)
	authed.POST("/reservations", h.CreateReservation)
	authed.GET("/reservations/eligibility", h.Eligibility)
	authed.POST("/reservations/:reservationUid/extend", h.ExtendReservation)
	authed.POST("/reservations/:reservationUid/return", h.MarkReturned)
	authed.GET("/borrowed", h.GetAllBorrowed)

	authed.GET("/penalties", h.GetUserPenalties)
	authed.GET("/penalties/all", h.GetAllPenalties)
	authed.POST("/penalties/:penaltyId/pay", h.PayPenalty)
	authed.POST("/penalties/:penaltyId/waive", h.WaivePenalty)
	authed.GET("/overdue", h.GetAllOverdue)
	authed.POST("/overdue/process", h.ProcessOverdue)

	authed.GET("/stats", h.GetStats)
	authed.GET("/overview", h.Overview)
	authed.GET("/me", h.GetProfile)
	authed.DELETE("/users/me", h.DeleteProfile)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps service sentinels onto statuses so every route reports
// failures the same way.
func httpError(err error) *echo.HTTPError {
	var code int
	switch {
	case errors.Is(err, errs.ErrNotAuthenticated):
		code = http.StatusUnauthorized
	case errors.Is(err, errs.ErrNotLibrarian):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrMissingFields), errors.Is(err, errs.ErrInvalidImageURL):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrNotEligible), errors.Is(err, errs.ErrNoCopies),
		errors.Is(err, errs.ErrAlreadyExtended), errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	default:
		code = http.StatusInternalServerError
	}
	return echo.NewHTTPError(code, err.Error())
}
