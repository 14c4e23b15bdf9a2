package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/libris-works/library-service/internal/model"
	"github.com/libris-works/library-service/pkg/auth"
	"golang.org/x/sync/errgroup"
)

func (h *Handler) GetUserPenalties(c echo.Context) error {
	penalties, err := h.svc.GetUserPenalties(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, penalties)
}

func (h *Handler) GetAllPenalties(c echo.Context) error {
	penalties, err := h.svc.GetAllPenalties(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, penalties)
}

func (h *Handler) GetAllOverdue(c echo.Context) error {
	overdue, err := h.svc.GetAllOverdue(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, overdue)
}

func (h *Handler) ProcessOverdue(c echo.Context) error {
	res, err := h.svc.ProcessOverdue(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	if id, ok := auth.FromContext(c.Request().Context()); ok {
		h.enqueue(model.ReservationEvent{
			Type:     model.EventOverdueProcessed,
			Username: id.Username,
			Overdue:  res.Processed,
			At:       time.Now().UTC(),
		})
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) PayPenalty(c echo.Context) error {
	return h.resolvePenalty(c, h.svc.PayPenalty)
}

func (h *Handler) WaivePenalty(c echo.Context) error {
	return h.resolvePenalty(c, h.svc.WaivePenalty)
}

func (h *Handler) resolvePenalty(c echo.Context, fn func(ctx context.Context, id int) error) error {
	id, err := strconv.Atoi(c.Param("penaltyId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid penaltyId")
	}
	if err := fn(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

// Overview aggregates the librarian dashboard in one round trip.
func (h *Handler) Overview(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		overdue   []model.BorrowedBook
		penalties []model.Penalty
		stats     []model.ActivityStats
	)
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		var err error
		overdue, err = h.svc.GetAllOverdue(ctx)
		return err
	})
	gg.Go(func() error {
		var err error
		penalties, err = h.svc.GetAllPenalties(ctx)
		return err
	})
	gg.Go(func() error {
		var err error
		stats, err = h.svc.GetStats(ctx)
		return err
	})
	if err := gg.Wait(); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"overdue":   overdue,
		"penalties": penalties,
		"stats":     stats,
	})
}
