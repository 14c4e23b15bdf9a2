package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/libris-works/library-service/internal/errs"
	"github.com/libris-works/library-service/internal/model"
)

var imageURLRe = regexp.MustCompile(`^https?://.+\..+`)

func (s *Service) GetAllBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}

// GetBooksByTitle treats a blank search as browse-all: the title box doubles
// as the catalog view.
func (s *Service) GetBooksByTitle(ctx context.Context, search string) ([]model.Book, error) {
	if strings.TrimSpace(search) == "" {
		return s.repo.ListBooks(ctx)
	}
	return s.repo.SearchBooks(ctx, "title", search)
}

// GetBooksByAuthor returns an empty result for a blank search without
// touching the database. Same for category below.
func (s *Service) GetBooksByAuthor(ctx context.Context, search string) ([]model.Book, error) {
	if strings.TrimSpace(search) == "" {
		return []model.Book{}, nil
	}
	return s.repo.SearchBooks(ctx, "author", search)
}

func (s *Service) GetBooksByCategory(ctx context.Context, search string) ([]model.Book, error) {
	if strings.TrimSpace(search) == "" {
		return []model.Book{}, nil
	}
	return s.repo.SearchBooks(ctx, "category", search)
}

func (s *Service) GetBook(ctx context.Context, id int) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

// CreateBook validates before any I/O: a bad request never reaches the
// repository.
func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	if _, err := s.requireLibrarian(ctx, "create books"); err != nil {
		return model.Book{}, err
	}
	if err := validateCreateBook(req); err != nil {
		return model.Book{}, err
	}
	return s.repo.CreateBook(ctx, req)
}

func validateCreateBook(req model.CreateBookRequest) error {
	required := []string{req.Title, req.Author, req.Category, req.ISBN, req.Publisher}
	for _, f := range required {
		if strings.TrimSpace(f) == "" {
			return errs.ErrMissingFields
		}
	}
	if req.PublicationYear == 0 || req.TotalCopies <= 0 {
		return errs.ErrMissingFields
	}
	if req.AvailableCopies < 0 || req.AvailableCopies > req.TotalCopies {
		return errs.ErrMissingFields
	}
	if req.Image != nil && !imageURLRe.MatchString(*req.Image) {
		return errs.ErrInvalidImageURL
	}
	return nil
}

func (s *Service) UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error) {
	if _, err := s.requireLibrarian(ctx, "update books"); err != nil {
		return model.Book{}, err
	}
	if req.Image != nil && !imageURLRe.MatchString(*req.Image) {
		return model.Book{}, errs.ErrInvalidImageURL
	}
	return s.repo.UpdateBook(ctx, id, req)
}

func (s *Service) DeleteBook(ctx context.Context, id int) error {
	if _, err := s.requireLibrarian(ctx, "delete books"); err != nil {
		return err
	}
	return s.repo.DeleteBook(ctx, id)
}
