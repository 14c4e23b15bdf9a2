package service

import (
	"context"

	"github.com/libris-works/library-service/internal/model"
)

func (s *Service) GetUserPenalties(ctx context.Context) ([]model.Penalty, error) {
	username, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.GetUserPenalties(ctx, username)
}

func (s *Service) GetAllPenalties(ctx context.Context) ([]model.Penalty, error) {
	if _, err := s.requireLibrarian(ctx, "view all penalties"); err != nil {
		return nil, err
	}
	return s.repo.GetAllPenalties(ctx)
}

func (s *Service) GetAllOverdue(ctx context.Context) ([]model.BorrowedBook, error) {
	if _, err := s.requireLibrarian(ctx, "view overdue books"); err != nil {
		return nil, err
	}
	return s.repo.GetAllOverdue(ctx)
}

func (s *Service) ProcessOverdue(ctx context.Context) (model.OverdueProcessed, error) {
	if _, err := s.requireLibrarian(ctx, "process overdue books"); err != nil {
		return model.OverdueProcessed{}, err
	}
	processed, err := s.repo.ProcessOverdue(ctx)
	if err != nil {
		return model.OverdueProcessed{}, err
	}
	return model.OverdueProcessed{Processed: processed}, nil
}

func (s *Service) PayPenalty(ctx context.Context, id int) error {
	if _, err := s.requireLibrarian(ctx, "resolve penalties"); err != nil {
		return err
	}
	return s.repo.PayPenalty(ctx, id)
}

func (s *Service) WaivePenalty(ctx context.Context, id int) error {
	if _, err := s.requireLibrarian(ctx, "resolve penalties"); err != nil {
		return err
	}
	return s.repo.WaivePenalty(ctx, id)
}
