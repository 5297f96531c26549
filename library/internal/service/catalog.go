package service

import (
	"context"
	"fmt"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/library/internal/repository"
	"github.com/Astemirdum/library-management/pkg/auth"
)

func (s *Service) AvailableBooks(ctx context.Context) ([]model.Book, error) {
	books := make([]model.Book, 0)
	err := s.repo.View(ctx, func(tx repository.Tx) error {
		for _, b := range tx.Books() {
			if b.IsAvailable() {
				books = append(books, b)
			}
		}
		return nil
	})
	return books, err
}

func (s *Service) BookEnquiry(ctx context.Context, bookID string) (model.BookEnquiry, error) {
	var res model.BookEnquiry
	err := s.repo.View(ctx, func(tx repository.Tx) error {
		b, ok := tx.Book(bookID)
		if !ok {
			return errs.NotFound("book %s not found", bookID)
		}
		state := "is available"
		if !b.IsAvailable() {
			state = "is NOT available"
		}
		res = model.BookEnquiry{
			Book:    b,
			Message: fmt.Sprintf("Book %s - %s %s", b.BookID, b.Name, state),
		}
		return nil
	})
	return res, err
}

func (s *Service) AddBook(ctx context.Context, id auth.Identity, req model.AddBookRequest) (model.Book, error) {
	if err := authorize(id, auth.ActionManageBooks, ""); err != nil {
		return model.Book{}, err
	}
	if req.BookID == "" || req.Name == "" {
		return model.Book{}, errs.InvalidArgument("book_id and book_name are required")
	}
	book := model.Book{BookID: req.BookID, Name: req.Name, Available: model.AvailabilityYes}
	err := s.repo.Update(ctx, func(tx repository.Tx) error {
		if _, ok := tx.Book(req.BookID); ok {
			return errs.Conflict("book %s already exists", req.BookID)
		}
		tx.PutBook(book)
		return nil
	})
	if err != nil {
		return model.Book{}, err
	}
	return book, nil
}

// DeleteBook refuses books that are out on loan, so a re-added id
// never collides with an active loan record.
func (s *Service) DeleteBook(ctx context.Context, id auth.Identity, bookID string) (model.Book, error) {
	if err := authorize(id, auth.ActionManageBooks, ""); err != nil {
		return model.Book{}, err
	}
	if bookID == "" {
		return model.Book{}, errs.InvalidArgument("book_id is required")
	}
	var book model.Book
	err := s.repo.Update(ctx, func(tx repository.Tx) error {
		b, ok := tx.Book(bookID)
		if !ok {
			return errs.NotFound("book %s not found", bookID)
		}
		if !b.IsAvailable() {
			return errs.Conflict("book %s is currently issued", bookID)
		}
		tx.DeleteBook(bookID)
		book = b
		return nil
	})
	return book, err
}

func (s *Service) IssuedBooks(ctx context.Context, id auth.Identity) ([]model.IssuedBook, error) {
	if err := authorize(id, auth.ActionViewIssued, ""); err != nil {
		return nil, err
	}
	issued := make([]model.IssuedBook, 0)
	err := s.repo.View(ctx, func(tx repository.Tx) error {
		for _, st := range tx.Students() {
			for _, l := range st.Loans {
				if l.Status != model.StatusBorrowed {
					continue
				}
				issued = append(issued, model.IssuedBook{
					BookID:         l.BookID,
					BookName:       l.BookName,
					BorrowedByID:   st.StudentID,
					BorrowedByName: st.Name,
					DueDate:        l.DueDate,
				})
			}
		}
		return nil
	})
	return issued, err
}

func (s *Service) MissingBooks(ctx context.Context, id auth.Identity) ([]model.MissingBook, error) {
	if err := authorize(id, auth.ActionViewIssued, ""); err != nil {
		return nil, err
	}
	missing := make([]model.MissingBook, 0)
	err := s.repo.View(ctx, func(tx repository.Tx) error {
		for _, st := range tx.Students() {
			for _, l := range st.Loans {
				if l.Status == model.StatusMissing {
					missing = append(missing, missingBook(st, l))
				}
			}
		}
		return nil
	})
	return missing, err
}

func missingBook(st model.Student, l model.Loan) model.MissingBook {
	return model.MissingBook{
		StudentID:   st.StudentID,
		StudentName: st.Name,
		BookID:      l.BookID,
		Fine:        l.Fine,
		DueDate:     l.DueDate,
	}
}

func (s *Service) StudentBooks(ctx context.Context, id auth.Identity, studentID string) (model.StudentBooks, error) {
	if err := authorize(id, auth.ActionViewStudentLoans, studentID); err != nil {
		return model.StudentBooks{}, err
	}
	var res model.StudentBooks
	err := s.repo.View(ctx, func(tx repository.Tx) error {
		st, ok := tx.Student(studentID)
		if !ok {
			return errs.NotFound("student %s not found", studentID)
		}
		res = studentBooks(st)
		return nil
	})
	return res, err
}

func (s *Service) AllStudentBooks(ctx context.Context, id auth.Identity) ([]model.StudentBooks, error) {
	if err := authorize(id, auth.ActionViewAllLoans, ""); err != nil {
		return nil, err
	}
	var res []model.StudentBooks
	err := s.repo.View(ctx, func(tx repository.Tx) error {
		students := tx.Students()
		res = make([]model.StudentBooks, 0, len(students))
		for _, st := range students {
			res = append(res, studentBooks(st))
		}
		return nil
	})
	return res, err
}

// studentBooks counts every record, finished ones included.
func studentBooks(st model.Student) model.StudentBooks {
	loans := st.Loans
	if loans == nil {
		loans = []model.Loan{}
	}
	return model.StudentBooks{
		StudentID:     st.StudentID,
		StudentName:   st.Name,
		BookCount:     len(loans),
		BorrowedBooks: loans,
	}
}
