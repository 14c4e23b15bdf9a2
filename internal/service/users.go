package service

import (
	"context"
	"fmt"

	"github.com/libris-works/library-service/internal/errs"
	"github.com/libris-works/library-service/internal/model"
)

func (s *Service) GetProfile(ctx context.Context) (model.User, error) {
	username, err := s.caller(ctx)
	if err != nil {
		return model.User{}, err
	}
	return s.repo.GetUser(ctx, username)
}

// DeleteProfile removes the caller's account. Accounts holding active
// reservations stay until the books come back.
func (s *Service) DeleteProfile(ctx context.Context) error {
	username, err := s.caller(ctx)
	if err != nil {
		return err
	}
	active, err := s.repo.ActiveReservationCount(ctx, username)
	if err != nil {
		return err
	}
	if active > 0 {
		return fmt.Errorf("%w: user has active reservations", errs.ErrConflict)
	}
	return s.repo.DeleteUser(ctx, username)
}

func (s *Service) GetStats(ctx context.Context) ([]model.ActivityStats, error) {
	if _, err := s.requireLibrarian(ctx, "view activity stats"); err != nil {
		return nil, err
	}
	return s.repo.GetStats(ctx)
}
