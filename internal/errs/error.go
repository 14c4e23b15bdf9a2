package errs

import (
	"errors"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotLibrarian     = errors.New("only librarians can")
	ErrMissingFields    = errors.New("Missing required fields.")
	ErrInvalidImageURL  = errors.New("Image must be a valid URL.")
	ErrNotEligible      = errors.New("reservation not allowed")
	ErrNoCopies         = errors.New("no copies available")
	ErrAlreadyExtended  = errors.New("reservation already extended")
	ErrConflict         = errors.New("conflict")
	ErrNoData           = errors.New("no data returned")
)
