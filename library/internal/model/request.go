package model

import (
	"time"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
	ExpiresIn   int    `json:"expires_in"`
}

type AddBookRequest struct {
	BookID string `json:"book_id"`
	Name   string `json:"book_name"`
}

type BorrowRequest struct {
	StudentID   string `json:"student_id"`
	BookID      string `json:"book_id"`
	LibrarianID string `json:"librarian_id"`
}

type BorrowResponse struct {
	StudentID          string `json:"student_id"`
	StudentName        string `json:"student_name"`
	BorrowedBooksCount int    `json:"borrowed_books_count"`
	BorrowedBook       Loan   `json:"borrowed_book"`
}

// LoanRef addresses the loan of book BookID held by StudentID.
type LoanRef struct {
	StudentID string `json:"student_id"`
	BookID    string `json:"book_id"`
}

type ReturnResponse struct {
	Message       string `json:"message"`
	StudentID     string `json:"student_id"`
	BookID        string `json:"book_id"`
	RemainingFine int    `json:"remaining_fine"`
	WasMissing    bool   `json:"was_missing"`
}

type IssuedBook struct {
	BookID         string `json:"book_id"`
	BookName       string `json:"book_name"`
	BorrowedByID   string `json:"borrowed_by_id"`
	BorrowedByName string `json:"borrowed_by_name"`
	DueDate        Date   `json:"due_date"`
}

type MissingBook struct {
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	BookID      string `json:"book_id"`
	Fine        int    `json:"fine"`
	DueDate     Date   `json:"due_date"`
}

type OverdueLoan struct {
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	BookID      string `json:"book_id"`
	BookName    string `json:"book_name"`
	Status      Status `json:"status"`
	Fine        int    `json:"fine"`
}

type BookEnquiry struct {
	Book
	Message string `json:"message"`
}

type StudentBooks struct {
	StudentID     string `json:"student_id"`
	StudentName   string `json:"student_name"`
	BookCount     int    `json:"book_count"`
	BorrowedBooks []Loan `json:"borrowed_books"`
}

type FineEntry struct {
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	BookID      string `json:"book_id"`
	BookName    string `json:"book_name"`
	Status      Status `json:"status"`
	Fine        int    `json:"fine"`
	WasMissing  bool   `json:"was_missing"`
}

type StudentFines struct {
	StudentID   string      `json:"student_id"`
	StudentName string      `json:"student_name"`
	Fines       []FineEntry `json:"fines"`
}

type PayFineRequest struct {
	StudentID string `json:"-" param:"studentId"`
	Amount    int    `json:"amount"`
}

type Payment struct {
	Message       string `json:"message"`
	StudentID     string `json:"student_id"`
	StudentName   string `json:"student_name"`
	PaidAmount    int    `json:"paid_amount"`
	RemainingFine int    `json:"remaining_fine"`
}

type Member struct {
	StudentID string `json:"student_id"`
	Name      string `json:"student_name"`
}

type RegisterRequest struct {
	StudentID string `json:"student_id"`
	Name      string `json:"student_name"`
	Password  string `json:"password"`
}

type RegisterResponse struct {
	Message string     `json:"message"`
	Student Registered `json:"student"`
}

type Registered struct {
	StudentID     string `json:"student_id"`
	Name          string `json:"student_name"`
	BorrowedBooks []Loan `json:"borrowed_books"`
	Fine          int    `json:"fine"`
	Password      string `json:"password"`
}

type RemoveMemberRequest struct {
	StudentID string `json:"-" param:"studentId"`
	Password  string `json:"password"`
}

type RemoveMemberResponse struct {
	Message string `json:"message"`
	Fine    int    `json:"fine"`
}

type AddLibrarianRequest struct {
	LibrarianID string `json:"librarian_id"`
	Name        string `json:"librarian_name"`
}

type PresenceRequest struct {
	StudentID string `json:"student_id" validate:"required"`
}

type Presence struct {
	StudentID   string     `json:"student_id"`
	StudentName string     `json:"student_name"`
	InTime      *time.Time `json:"in_time"`
	OutTime     *time.Time `json:"out_time"`
}

type Message struct {
	Message string `json:"message"`
}
