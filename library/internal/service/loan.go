package service

import (
	"context"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/library/internal/repository"
	"github.com/Astemirdum/library-management/pkg/auth"
	"go.uber.org/zap"
)

func (s *Service) Borrow(ctx context.Context, id auth.Identity, req model.BorrowRequest) (model.BorrowResponse, error) {
	if err := authorize(id, auth.ActionBorrow, ""); err != nil {
		return model.BorrowResponse{}, err
	}
	if req.StudentID == "" || req.BookID == "" || req.LibrarianID == "" {
		return model.BorrowResponse{}, errs.InvalidArgument("student_id, book_id and librarian_id are required")
	}

	var res model.BorrowResponse
	err := s.repo.Update(ctx, func(tx repository.Tx) error {
		st, ok := tx.Student(req.StudentID)
		if !ok {
			return errs.NotFound("student %s not found", req.StudentID)
		}
		book, ok := tx.Book(req.BookID)
		if !ok {
			return errs.NotFound("book %s not found", req.BookID)
		}
		if _, ok = tx.Librarian(req.LibrarianID); !ok {
			return errs.NotFound("librarian %s not found", req.LibrarianID)
		}
		if !book.IsAvailable() {
			return errs.Conflict("book %s not available", req.BookID)
		}
		if !st.Inside() {
			return errs.PreconditionFailed("student must be inside the library to borrow a book")
		}
		if st.ActiveLoans() >= model.MaxActiveLoans {
			return errs.LimitExceeded("borrowing limit reached (max %d books allowed)", model.MaxActiveLoans)
		}

		issued := s.today()
		loan := model.Loan{
			BookID:    book.BookID,
			BookName:  book.Name,
			IssuedBy:  req.LibrarianID,
			IssueDate: issued,
			DueDate:   issued.AddDays(model.LoanPeriodDays),
			Status:    model.StatusBorrowed,
		}
		st.Loans = append(st.Loans, loan)
		book.Available = model.AvailabilityNo
		tx.PutStudent(st)
		tx.PutBook(book)

		res = model.BorrowResponse{
			StudentID:          st.StudentID,
			StudentName:        st.Name,
			BorrowedBooksCount: st.ActiveLoans(),
			BorrowedBook:       loan,
		}
		return nil
	})
	if err != nil {
		return model.BorrowResponse{}, err
	}
	s.publish(id, model.EventBookBorrowed, req.StudentID, req.BookID, 0)
	return res, nil
}

// ReturnBook closes the active loan of the book. A missing book returned late
// is charged ReturnedLostFine minus what was already paid towards MissingFine.
func (s *Service) ReturnBook(ctx context.Context, id auth.Identity, ref model.LoanRef) (model.ReturnResponse, error) {
	if err := authorize(id, auth.ActionReturn, ref.StudentID); err != nil {
		return model.ReturnResponse{}, err
	}
	if ref.StudentID == "" || ref.BookID == "" {
		return model.ReturnResponse{}, errs.InvalidArgument("student_id and book_id are required")
	}

	var res model.ReturnResponse
	err := s.repo.Update(ctx, func(tx repository.Tx) error {
		st, ok := tx.Student(ref.StudentID)
		if !ok {
			return errs.NotFound("student %s not found", ref.StudentID)
		}
		i := findLoan(st, ref.BookID)
		if i < 0 {
			return errs.NotFound("book %s not found in student's borrowed list", ref.BookID)
		}
		loan := &st.Loans[i]

		res = model.ReturnResponse{StudentID: st.StudentID, BookID: loan.BookID}
		switch loan.Status {
		case model.StatusBorrowed:
			loan.Fine = 0
			res.Message = "Book returned successfully"
		case model.StatusMissing:
			paid := model.MissingFine - loan.Fine
			loan.Fine = max(model.ReturnedLostFine-paid, 0)
			loan.WasMissing = true
			res.Message = "Missing book returned with reduced fine"
		default:
			return errs.Conflict("book %s already returned", ref.BookID)
		}
		loan.Status = model.StatusReturned
		res.RemainingFine = loan.Fine
		res.WasMissing = loan.WasMissing
		tx.PutStudent(st)

		if book, ok := tx.Book(ref.BookID); ok {
			book.Available = model.AvailabilityYes
			tx.PutBook(book)
		}
		return nil
	})
	if err != nil {
		return model.ReturnResponse{}, err
	}
	s.publish(id, model.EventBookReturned, ref.StudentID, ref.BookID, res.RemainingFine)
	return res, nil
}

func (s *Service) MarkMissing(ctx context.Context, id auth.Identity, ref model.LoanRef) (model.MissingBook, error) {
	if err := authorize(id, auth.ActionMarkMissing, ""); err != nil {
		return model.MissingBook{}, err
	}
	if ref.StudentID == "" || ref.BookID == "" {
		return model.MissingBook{}, errs.InvalidArgument("student_id and book_id are required")
	}

	var res model.MissingBook
	err := s.repo.Update(ctx, func(tx repository.Tx) error {
		st, ok := tx.Student(ref.StudentID)
		if !ok {
			return errs.NotFound("student %s not found", ref.StudentID)
		}
		i := findLoan(st, ref.BookID)
		if i < 0 {
			return errs.NotFound("book %s not found in student's borrowed list", ref.BookID)
		}
		if st.Loans[i].Status != model.StatusBorrowed {
			return errs.Conflict("book %s is %s, not borrowed", ref.BookID, st.Loans[i].Status)
		}
		markMissing(tx, &st.Loans[i])
		tx.PutStudent(st)
		res = missingBook(st, st.Loans[i])
		return nil
	})
	if err != nil {
		return model.MissingBook{}, err
	}
	s.publish(id, model.EventBookMarkedMissing, ref.StudentID, ref.BookID, res.Fine)
	return res, nil
}

// SweepOverdue marks every borrowed loan older than OverdueAfterDays as missing.
// Loans that are already missing are left alone, so a second run is a no-op.
func (s *Service) SweepOverdue(ctx context.Context, id auth.Identity) ([]model.OverdueLoan, error) {
	if err := authorize(id, auth.ActionSweepOverdue, ""); err != nil {
		return nil, err
	}

	today := s.today()
	overdue := make([]model.OverdueLoan, 0)
	err := s.repo.Update(ctx, func(tx repository.Tx) error {
		for _, st := range tx.Students() {
			changed := false
			for i := range st.Loans {
				l := &st.Loans[i]
				if l.Status != model.StatusBorrowed || today.DaysSince(l.IssueDate) <= model.OverdueAfterDays {
					continue
				}
				markMissing(tx, l)
				changed = true
				overdue = append(overdue, model.OverdueLoan{
					StudentID:   st.StudentID,
					StudentName: st.Name,
					BookID:      l.BookID,
					BookName:    l.BookName,
					Status:      l.Status,
					Fine:        l.Fine,
				})
			}
			if changed {
				tx.PutStudent(st)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(overdue) > 0 {
		s.log.Info("overdue sweep", zap.Int("missing", len(overdue)), zap.String("by", id.Subject))
	}
	for _, o := range overdue {
		s.publish(id, model.EventBookOverdue, o.StudentID, o.BookID, o.Fine)
	}
	return overdue, nil
}

func markMissing(tx repository.Tx, l *model.Loan) {
	l.Status = model.StatusMissing
	l.Fine = model.MissingFine
	if book, ok := tx.Book(l.BookID); ok {
		book.Available = model.AvailabilityNo
		tx.PutBook(book)
	}
}
