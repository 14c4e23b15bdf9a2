package service

import (
	"context"
	"fmt"

	"github.com/libris-works/library-service/internal/errs"
	"github.com/libris-works/library-service/internal/model"
)

func (s *Service) Eligibility(ctx context.Context) (model.Eligibility, error) {
	username, err := s.caller(ctx)
	if err != nil {
		return model.Eligibility{}, err
	}
	return s.repo.Eligibility(ctx, username)
}

// CreateReservation sequences eligibility, a fresh availability read and the
// insert; any failed step short-circuits with no write. The last-copy race is
// settled by the reserve_book routine, not here.
func (s *Service) CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.ReservationDetails, error) {
	username, err := s.caller(ctx)
	if err != nil {
		return model.ReservationDetails{}, err
	}
	req.Username = username

	el, err := s.repo.Eligibility(ctx, username)
	if err != nil {
		return model.ReservationDetails{}, err
	}
	if !el.CanReserve {
		reason := "user is restricted from reserving books"
		if el.RestrictionReason != nil && *el.RestrictionReason != "" {
			reason = *el.RestrictionReason
		}
		return model.ReservationDetails{}, fmt.Errorf("%w: %s", errs.ErrNotEligible, reason)
	}

	book, err := s.repo.GetBook(ctx, req.BookID)
	if err != nil {
		return model.ReservationDetails{}, err
	}
	if book.AvailableCopies <= 0 {
		return model.ReservationDetails{}, errs.ErrNoCopies
	}

	return s.repo.CreateReservation(ctx, req)
}

func (s *Service) GetReservations(ctx context.Context) ([]model.ReservationDetails, error) {
	username, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.GetReservations(ctx, username)
}

// ExtendReservation grants the single permitted extension (+7 days).
func (s *Service) ExtendReservation(ctx context.Context, reservationUid string) (model.ReservationDetails, error) {
	username, err := s.caller(ctx)
	if err != nil {
		return model.ReservationDetails{}, err
	}
	rsv, err := s.repo.GetReservation(ctx, reservationUid)
	if err != nil {
		return model.ReservationDetails{}, err
	}
	if rsv.Username != username {
		return model.ReservationDetails{}, errs.ErrNotFound
	}
	if rsv.Extended {
		return model.ReservationDetails{}, errs.ErrAlreadyExtended
	}
	if rsv.Status != model.StatusActive {
		return model.ReservationDetails{}, fmt.Errorf("%w: cannot extend a %s reservation", errs.ErrConflict, rsv.Status)
	}
	return s.repo.ExtendReservation(ctx, reservationUid)
}

func (s *Service) GetAllBorrowed(ctx context.Context) ([]model.BorrowedBook, error) {
	if _, err := s.requireLibrarian(ctx, "view borrowed books"); err != nil {
		return nil, err
	}
	return s.repo.GetAllBorrowed(ctx)
}

func (s *Service) MarkReturned(ctx context.Context, reservationUid string) (model.ReservationDetails, error) {
	if _, err := s.requireLibrarian(ctx, "mark books as returned"); err != nil {
		return model.ReservationDetails{}, err
	}
	return s.repo.MarkReturned(ctx, reservationUid)
}
