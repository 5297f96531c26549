package handler

import (
	"context"

	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/library/internal/service"
	"github.com/Astemirdum/library-management/pkg/auth"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var _ LibraryService = (*service.Service)(nil)

type LibraryService interface {
	Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error)

	AvailableBooks(ctx context.Context) ([]model.Book, error)
	BookEnquiry(ctx context.Context, bookID string) (model.BookEnquiry, error)
	AddBook(ctx context.Context, id auth.Identity, req model.AddBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id auth.Identity, bookID string) (model.Book, error)
	IssuedBooks(ctx context.Context, id auth.Identity) ([]model.IssuedBook, error)
	MissingBooks(ctx context.Context, id auth.Identity) ([]model.MissingBook, error)
	StudentBooks(ctx context.Context, id auth.Identity, studentID string) (model.StudentBooks, error)
	AllStudentBooks(ctx context.Context, id auth.Identity) ([]model.StudentBooks, error)

	Borrow(ctx context.Context, id auth.Identity, req model.BorrowRequest) (model.BorrowResponse, error)
	ReturnBook(ctx context.Context, id auth.Identity, ref model.LoanRef) (model.ReturnResponse, error)
	MarkMissing(ctx context.Context, id auth.Identity, ref model.LoanRef) (model.MissingBook, error)
	SweepOverdue(ctx context.Context, id auth.Identity) ([]model.OverdueLoan, error)

	ListFines(ctx context.Context, id auth.Identity, studentID string) (model.StudentFines, error)
	StudentsWithFines(ctx context.Context, id auth.Identity) ([]model.StudentFines, error)
	PayFine(ctx context.Context, id auth.Identity, studentID string, amount int) (model.Payment, error)

	ListMembers(ctx context.Context, id auth.Identity) ([]model.Member, error)
	Register(ctx context.Context, id auth.Identity, req model.RegisterRequest) (model.RegisterResponse, error)
	RemoveMember(ctx context.Context, id auth.Identity, req model.RemoveMemberRequest) (model.RemoveMemberResponse, error)

	ListLibrarians(ctx context.Context, id auth.Identity) ([]model.Librarian, error)
	AddLibrarian(ctx context.Context, id auth.Identity, req model.AddLibrarianRequest) (model.Librarian, error)
	RemoveLibrarian(ctx context.Context, id auth.Identity, librarianID string) (model.Librarian, error)

	Enter(ctx context.Context, studentID string) (model.Presence, error)
	Exit(ctx context.Context, studentID string) (model.Presence, error)
	PresentStudents(ctx context.Context, id auth.Identity) ([]model.Presence, error)
}
