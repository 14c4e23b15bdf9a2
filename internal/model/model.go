package model

import (
	"strings"
	"time"
)

type Role string

const (
	RoleCustomer  Role = "CUSTOMER"
	RoleLibrarian Role = "LIBRARIAN"
)

type User struct {
	ID           int       `json:"-" db:"id"`
	Username     string    `json:"username" db:"username"`
	FirstName    string    `json:"firstName" db:"first_name"`
	LastName     string    `json:"lastName" db:"last_name"`
	Email        string    `json:"email" db:"email"`
	Role         Role      `json:"role" db:"role"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	PenaltyCount int       `json:"penaltyCount" db:"penalty_count"`
	Language     *string   `json:"language,omitempty" db:"language"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Book struct {
	ID              int       `json:"bookId" db:"id"`
	Title           string    `json:"title" db:"title"`
	Author          string    `json:"author" db:"author"`
	Category        string    `json:"category" db:"category"`
	ISBN            string    `json:"isbn" db:"isbn"`
	Publisher       string    `json:"publisher" db:"publisher"`
	PublicationYear int       `json:"publicationYear" db:"publication_year"`
	Image           *string   `json:"image,omitempty" db:"image"`
	TotalCopies     int       `json:"totalCopies" db:"total_copies"`
	AvailableCopies int       `json:"availableCopies" db:"available_copies"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

type CreateBookRequest struct {
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	Category        string  `json:"category"`
	ISBN            string  `json:"isbn"`
	Publisher       string  `json:"publisher"`
	PublicationYear int     `json:"publicationYear"`
	Image           *string `json:"image,omitempty"`
	TotalCopies     int     `json:"totalCopies"`
	AvailableCopies int     `json:"availableCopies"`
}

// UpdateBookRequest carries a partial update: nil fields stay untouched.
type UpdateBookRequest struct {
	Title           *string `json:"title,omitempty"`
	Author          *string `json:"author,omitempty"`
	Category        *string `json:"category,omitempty"`
	ISBN            *string `json:"isbn,omitempty"`
	Publisher       *string `json:"publisher,omitempty"`
	PublicationYear *int    `json:"publicationYear,omitempty"`
	Image           *string `json:"image,omitempty"`
	TotalCopies     *int    `json:"totalCopies,omitempty"`
	AvailableCopies *int    `json:"availableCopies,omitempty"`
}

type BookSearch struct {
	Title    string `query:"title"`
	Author   string `query:"author"`
	Category string `query:"category"`
}

type ReservationStatus string

const (
	StatusActive   ReservationStatus = "ACTIVE"
	StatusExtended ReservationStatus = "EXTENDED"
	StatusReturned ReservationStatus = "RETURNED"
	StatusOverdue  ReservationStatus = "OVERDUE"
	StatusCanceled ReservationStatus = "CANCELLED"
)

type Reservation struct {
	ID              int               `json:"-" db:"id"`
	ReservationUid  string            `json:"reservationUid" db:"reservation_uid"`
	Username        string            `json:"username" db:"username"`
	BookID          int               `json:"bookId" db:"book_id"`
	Status          ReservationStatus `json:"status" db:"status"`
	ReservationDate time.Time         `json:"reservationDate" db:"reservation_date"`
	DueDate         time.Time         `json:"dueDate" db:"due_date"`
	ReturnDate      *time.Time        `json:"returnDate,omitempty" db:"return_date"`
	Extended        bool              `json:"extended" db:"extended"`
	ReminderSent    bool              `json:"reminderSent" db:"reminder_sent"`
}

// ReservationDetails is a reservation joined with book display fields.
type ReservationDetails struct {
	Reservation
	BookTitle  string `json:"bookTitle" db:"book_title"`
	BookAuthor string `json:"bookAuthor" db:"book_author"`
}

// Username is resolved from the auth context after binding, so it carries no
// validate tag.
type CreateReservationRequest struct {
	BookID   int    `json:"bookId" validate:"required"`
	DueDate  Date   `json:"dueDate" validate:"required"`
	Username string `json:"-"`
}

// BorrowedBook is one row of the get_all_borrowed_books routine.
type BorrowedBook struct {
	ReservationUid string            `json:"reservationUid" db:"reservation_uid"`
	Username       string            `json:"username" db:"username"`
	FirstName      string            `json:"firstName" db:"first_name"`
	LastName       string            `json:"lastName" db:"last_name"`
	Email          string            `json:"email" db:"email"`
	BookID         int               `json:"bookId" db:"book_id"`
	BookTitle      string            `json:"bookTitle" db:"book_title"`
	BookAuthor     string            `json:"bookAuthor" db:"book_author"`
	Status         ReservationStatus `json:"status" db:"status"`
	DueDate        time.Time         `json:"dueDate" db:"due_date"`
}

type PenaltyStatus string

const (
	PenaltyPending PenaltyStatus = "PENDING"
	PenaltyPaid    PenaltyStatus = "PAID"
	PenaltyWaived  PenaltyStatus = "WAIVED"
)

type Penalty struct {
	ID             int           `json:"penaltyId" db:"id"`
	ReservationUid *string       `json:"reservationUid,omitempty" db:"reservation_uid"`
	Username       string        `json:"username" db:"username"`
	Amount         float64       `json:"amount" db:"amount"`
	Reason         string        `json:"reason" db:"reason"`
	Status         PenaltyStatus `json:"status" db:"status"`
	CreatedAt      time.Time     `json:"createdAt" db:"created_at"`
	BookTitle      *string       `json:"bookTitle,omitempty" db:"book_title"`
	BookAuthor     *string       `json:"bookAuthor,omitempty" db:"book_author"`
	DueDate        *time.Time    `json:"dueDate,omitempty" db:"due_date"`
	ReturnDate     *time.Time    `json:"returnDate,omitempty" db:"return_date"`
}

// Eligibility is the can_user_reserve_books verdict. Derived, never persisted.
type Eligibility struct {
	CanReserve        bool    `json:"canReserve" db:"can_reserve"`
	OverdueBookCount  int     `json:"overdueBookCount" db:"overdue_book_count"`
	RestrictionReason *string `json:"restrictionReason,omitempty" db:"restriction_reason"`
}

type OverdueProcessed struct {
	Processed int `json:"processed" db:"processed"`
}

type ActivityStats struct {
	Username      string    `json:"username" db:"username"`
	CountReserved int       `json:"countReserved" db:"cnt_reserved"`
	CountReturned int       `json:"countReturned" db:"cnt_returned"`
	CountOverdue  int       `json:"countOverdue" db:"cnt_overdue"`
	LastUpdated   time.Time `json:"lastUpdated" db:"last_updated"`
}

type EventType string

const (
	EventReserved         EventType = "reserved"
	EventReturned         EventType = "returned"
	EventOverdueProcessed EventType = "overdue_processed"
)

type ReservationEvent struct {
	Type           EventType `json:"type"`
	Username       string    `json:"username"`
	ReservationUid string    `json:"reservationUid,omitempty"`
	Overdue        int       `json:"overdue,omitempty"`
	At             time.Time `json:"at"`
}

type Date struct {
	time.Time `json:",inline"`
}

func (d *Date) UnmarshalJSON(b []byte) (err error) {
	s := strings.Trim(string(b), "\"")
	date, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = date
	return
}
