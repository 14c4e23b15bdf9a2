package service

import (
	"context"
	"fmt"

	"github.com/libris-works/library-service/internal/errs"
	"github.com/libris-works/library-service/internal/model"
	"github.com/libris-works/library-service/internal/repository"
	"github.com/libris-works/library-service/pkg/auth"
	"go.uber.org/zap"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

// caller resolves the authenticated username from the request context.
func (s *Service) caller(ctx context.Context) (string, error) {
	id, ok := auth.FromContext(ctx)
	if !ok || id.Username == "" {
		return "", errs.ErrNotAuthenticated
	}
	return id.Username, nil
}

// requireLibrarian is the single role gate shared by every librarian-only
// operation: unauthenticated, wrong role, or ok with the profile. The users
// row is authoritative, not the token claim.
func (s *Service) requireLibrarian(ctx context.Context, action string) (model.User, error) {
	username, err := s.caller(ctx)
	if err != nil {
		return model.User{}, err
	}
	user, err := s.repo.GetUser(ctx, username)
	if err != nil {
		return model.User{}, err
	}
	if user.Role != model.RoleLibrarian {
		return model.User{}, fmt.Errorf("%w %s", errs.ErrNotLibrarian, action)
	}
	return user, nil
}
