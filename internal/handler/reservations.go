package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/libris-works/library-service/internal/model"
	"go.uber.org/zap"
)

func (h *Handler) Eligibility(c echo.Context) error {
	el, err := h.svc.Eligibility(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, el)
}

func (h *Handler) CreateReservation(c echo.Context) error {
	var req model.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	rsv, err := h.svc.CreateReservation(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}

	h.enqueue(model.ReservationEvent{
		Type:           model.EventReserved,
		Username:       rsv.Username,
		ReservationUid: rsv.ReservationUid,
		At:             time.Now().UTC(),
	})
	return c.JSON(http.StatusCreated, rsv)
}

func (h *Handler) GetReservations(c echo.Context) error {
	rsv, err := h.svc.GetReservations(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rsv)
}

func (h *Handler) ExtendReservation(c echo.Context) error {
	reservationUid := c.Param("reservationUid")
	if reservationUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reservationUid is empty")
	}
	rsv, err := h.svc.ExtendReservation(c.Request().Context(), reservationUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rsv)
}

func (h *Handler) GetAllBorrowed(c echo.Context) error {
	borrowed, err := h.svc.GetAllBorrowed(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, borrowed)
}

func (h *Handler) MarkReturned(c echo.Context) error {
	reservationUid := c.Param("reservationUid")
	if reservationUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reservationUid is empty")
	}
	rsv, err := h.svc.MarkReturned(c.Request().Context(), reservationUid)
	if err != nil {
		return httpError(err)
	}

	h.enqueue(model.ReservationEvent{
		Type:           model.EventReturned,
		Username:       rsv.Username,
		ReservationUid: rsv.ReservationUid,
		At:             time.Now().UTC(),
	})
	return c.JSON(http.StatusOK, rsv)
}

// enqueue publishes a lifecycle event; delivery failures never fail the
// user action.
func (h *Handler) enqueue(ev model.ReservationEvent) {
	if err := h.enqueuer.Enqueue(ev); err != nil {
		h.log.Warn("enqueue reservation event",
			zap.String("type", string(ev.Type)), zap.Error(err))
	}
}
