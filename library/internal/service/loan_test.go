package service_test

import (
	"context"
	"testing"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/library/internal/service"
	"github.com/Astemirdum/library-management/pkg/auth"
	"github.com/stretchr/testify/require"
)

func TestService_BorrowScenario(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	require.Equal(t, model.AvailabilityYes, f.book(t, "B101").Available)

	_, err := f.svc.Enter(ctx, "S001")
	require.NoError(t, err)
	res, err := f.svc.Borrow(ctx, staff, model.BorrowRequest{StudentID: "S001", BookID: "B101", LibrarianID: "L001"})
	require.NoError(t, err)

	require.Equal(t, "S001", res.StudentID)
	require.Equal(t, "Mounika", res.StudentName)
	require.Equal(t, 1, res.BorrowedBooksCount)
	loan := res.BorrowedBook
	require.Equal(t, "Python Basics", loan.BookName)
	require.Equal(t, "L001", loan.IssuedBy)
	require.Equal(t, model.StatusBorrowed, loan.Status)
	require.Zero(t, loan.Fine)
	require.Equal(t, model.NewDate(start), loan.IssueDate)
	require.Equal(t, loan.IssueDate.AddDays(7), loan.DueDate)

	enq, err := f.svc.BookEnquiry(ctx, "B101")
	require.NoError(t, err)
	require.Equal(t, model.AvailabilityNo, enq.Available)
	require.Equal(t, "Book B101 - Python Basics is NOT available", enq.Message)

	available, err := f.svc.AvailableBooks(ctx)
	require.NoError(t, err)
	require.Len(t, available, 9)
	for _, b := range available {
		require.NotEqual(t, "B101", b.BookID)
	}

	issued, err := f.svc.IssuedBooks(ctx, staff)
	require.NoError(t, err)
	require.Equal(t, []model.IssuedBook{{
		BookID:         "B101",
		BookName:       "Python Basics",
		BorrowedByID:   "S001",
		BorrowedByName: "Mounika",
		DueDate:        loan.DueDate,
	}}, issued)
}

func TestService_BorrowRejected(t *testing.T) {
	t.Parallel()
	type setup func(t *testing.T, f *fixture)
	inside := func(id string) setup {
		return func(t *testing.T, f *fixture) {
			_, err := f.svc.Enter(context.Background(), id)
			require.NoError(t, err)
		}
	}
	tests := []struct {
		name     string
		setup    setup
		caller   auth.Identity
		req      model.BorrowRequest
		wantKind errs.Kind
	}{
		{
			name:     "anonymous",
			caller:   anonymous,
			req:      model.BorrowRequest{StudentID: "S001", BookID: "B101", LibrarianID: "L001"},
			wantKind: errs.KindUnauthorized,
		},
		{
			name:     "student caller",
			setup:    inside("S001"),
			caller:   mounika,
			req:      model.BorrowRequest{StudentID: "S001", BookID: "B101", LibrarianID: "L001"},
			wantKind: errs.KindForbidden,
		},
		{
			name:     "missing field",
			caller:   staff,
			req:      model.BorrowRequest{StudentID: "S001", BookID: "B101"},
			wantKind: errs.KindInvalidArgument,
		},
		{
			name:     "unknown student",
			caller:   staff,
			req:      model.BorrowRequest{StudentID: "S404", BookID: "B101", LibrarianID: "L001"},
			wantKind: errs.KindNotFound,
		},
		{
			name:     "unknown book",
			setup:    inside("S001"),
			caller:   staff,
			req:      model.BorrowRequest{StudentID: "S001", BookID: "B404", LibrarianID: "L001"},
			wantKind: errs.KindNotFound,
		},
		{
			name:     "unknown librarian",
			setup:    inside("S001"),
			caller:   staff,
			req:      model.BorrowRequest{StudentID: "S001", BookID: "B101", LibrarianID: "L404"},
			wantKind: errs.KindNotFound,
		},
		{
			name: "book unavailable for staff",
			setup: func(t *testing.T, f *fixture) {
				f.borrow(t, "S002", "B101")
				inside("S001")(t, f)
			},
			caller:   staff,
			req:      model.BorrowRequest{StudentID: "S001", BookID: "B101", LibrarianID: "L001"},
			wantKind: errs.KindConflict,
		},
		{
			name: "book unavailable for admin",
			setup: func(t *testing.T, f *fixture) {
				f.borrow(t, "S002", "B101")
				inside("S001")(t, f)
			},
			caller:   admin,
			req:      model.BorrowRequest{StudentID: "S001", BookID: "B101", LibrarianID: "L001"},
			wantKind: errs.KindConflict,
		},
		{
			name:     "never entered",
			caller:   staff,
			req:      model.BorrowRequest{StudentID: "S001", BookID: "B101", LibrarianID: "L001"},
			wantKind: errs.KindPreconditionFailed,
		},
		{
			name: "already left",
			setup: func(t *testing.T, f *fixture) {
				inside("S001")(t, f)
				_, err := f.svc.Exit(context.Background(), "S001")
				require.NoError(t, err)
			},
			caller:   staff,
			req:      model.BorrowRequest{StudentID: "S001", BookID: "B101", LibrarianID: "L001"},
			wantKind: errs.KindPreconditionFailed,
		},
		{
			name: "three active loans",
			setup: func(t *testing.T, f *fixture) {
				f.borrow(t, "S001", "B101")
				f.borrow(t, "S001", "B102")
				f.borrow(t, "S001", "B103")
			},
			caller:   admin,
			req:      model.BorrowRequest{StudentID: "S001", BookID: "B104", LibrarianID: "L001"},
			wantKind: errs.KindLimitExceeded,
		},
		{
			name: "missing loans count towards the limit",
			setup: func(t *testing.T, f *fixture) {
				f.borrow(t, "S001", "B101")
				f.borrow(t, "S001", "B102")
				f.borrow(t, "S001", "B103")
				_, err := f.svc.MarkMissing(context.Background(), staff, model.LoanRef{StudentID: "S001", BookID: "B102"})
				require.NoError(t, err)
			},
			caller:   staff,
			req:      model.BorrowRequest{StudentID: "S001", BookID: "B104", LibrarianID: "L001"},
			wantKind: errs.KindLimitExceeded,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)
			if tt.setup != nil {
				tt.setup(t, f)
			}
			_, err := f.svc.Borrow(context.Background(), tt.caller, tt.req)
			requireKind(t, err, tt.wantKind)
		})
	}
}

func TestService_BorrowAfterReturnAppendsRecord(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	ref := model.LoanRef{StudentID: "S001", BookID: "B101"}

	f.borrow(t, "S001", "B101")
	_, err := f.svc.ReturnBook(ctx, staff, ref)
	require.NoError(t, err)
	res := f.borrow(t, "S001", "B101")
	require.Equal(t, 1, res.BorrowedBooksCount)

	books, err := f.svc.StudentBooks(ctx, mounika, "S001")
	require.NoError(t, err)
	require.Equal(t, 2, books.BookCount)
	require.Equal(t, model.StatusReturned, books.BorrowedBooks[0].Status)
	require.Equal(t, model.StatusBorrowed, books.BorrowedBooks[1].Status)

	// the active record wins over the finished one
	ret, err := f.svc.ReturnBook(ctx, staff, ref)
	require.NoError(t, err)
	require.Equal(t, "Book returned successfully", ret.Message)
	require.Equal(t, model.AvailabilityYes, f.book(t, "B101").Available)
}

func TestService_ReturnBook(t *testing.T) {
	t.Parallel()
	ref := model.LoanRef{StudentID: "S001", BookID: "B101"}
	tests := []struct {
		name          string
		setup         func(t *testing.T, f *fixture)
		caller        auth.Identity
		ref           model.LoanRef
		wantKind      errs.Kind
		wantRemaining int
		wantMissing   bool
	}{
		{
			name:   "borrowed by staff",
			setup:  func(t *testing.T, f *fixture) { f.borrow(t, "S001", "B101") },
			caller: staff,
			ref:    ref,
		},
		{
			name:   "borrowed by the student",
			setup:  func(t *testing.T, f *fixture) { f.borrow(t, "S001", "B101") },
			caller: mounika,
			ref:    ref,
		},
		{
			name: "missing with full fine",
			setup: func(t *testing.T, f *fixture) {
				f.borrow(t, "S001", "B101")
				_, err := f.svc.MarkMissing(context.Background(), staff, ref)
				require.NoError(t, err)
			},
			caller:        staff,
			ref:           ref,
			wantRemaining: 250,
			wantMissing:   true,
		},
		{
			name: "missing partially paid",
			setup: func(t *testing.T, f *fixture) {
				f.borrow(t, "S001", "B101")
				_, err := f.svc.MarkMissing(context.Background(), staff, ref)
				require.NoError(t, err)
				_, err = f.svc.PayFine(context.Background(), staff, "S001", 300)
				require.NoError(t, err)
			},
			caller:        admin,
			ref:           ref,
			wantRemaining: 0,
			wantMissing:   true,
		},
		{
			name: "missing with small payment",
			setup: func(t *testing.T, f *fixture) {
				f.borrow(t, "S001", "B101")
				_, err := f.svc.MarkMissing(context.Background(), staff, ref)
				require.NoError(t, err)
				_, err = f.svc.PayFine(context.Background(), staff, "S001", 100)
				require.NoError(t, err)
			},
			caller:        staff,
			ref:           ref,
			wantRemaining: 150,
			wantMissing:   true,
		},
		{
			name: "already returned",
			setup: func(t *testing.T, f *fixture) {
				f.borrow(t, "S001", "B101")
				_, err := f.svc.ReturnBook(context.Background(), staff, ref)
				require.NoError(t, err)
			},
			caller:   staff,
			ref:      ref,
			wantKind: errs.KindConflict,
		},
		{
			name:     "never borrowed",
			caller:   staff,
			ref:      ref,
			wantKind: errs.KindNotFound,
		},
		{
			name:     "unknown student",
			caller:   staff,
			ref:      model.LoanRef{StudentID: "S404", BookID: "B101"},
			wantKind: errs.KindNotFound,
		},
		{
			name:     "another student",
			setup:    func(t *testing.T, f *fixture) { f.borrow(t, "S001", "B101") },
			caller:   ravi,
			ref:      ref,
			wantKind: errs.KindForbidden,
		},
		{
			name:     "anonymous",
			caller:   anonymous,
			ref:      ref,
			wantKind: errs.KindUnauthorized,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)
			if tt.setup != nil {
				tt.setup(t, f)
			}
			res, err := f.svc.ReturnBook(context.Background(), tt.caller, tt.ref)
			if tt.wantKind != "" {
				requireKind(t, err, tt.wantKind)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantRemaining, res.RemainingFine)
			require.Equal(t, tt.wantMissing, res.WasMissing)
			require.Equal(t, model.AvailabilityYes, f.book(t, tt.ref.BookID).Available)

			books, err := f.svc.StudentBooks(context.Background(), staff, tt.ref.StudentID)
			require.NoError(t, err)
			last := books.BorrowedBooks[len(books.BorrowedBooks)-1]
			require.Equal(t, model.StatusReturned, last.Status)
			require.Equal(t, tt.wantRemaining, last.Fine)
		})
	}
}

func TestService_MarkMissing(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	ref := model.LoanRef{StudentID: "S001", BookID: "B101"}

	_, err := f.svc.MarkMissing(ctx, staff, ref)
	requireKind(t, err, errs.KindNotFound)

	f.borrow(t, "S001", "B101")
	_, err = f.svc.MarkMissing(ctx, mounika, ref)
	requireKind(t, err, errs.KindForbidden)

	res, err := f.svc.MarkMissing(ctx, staff, ref)
	require.NoError(t, err)
	require.Equal(t, model.MissingFine, res.Fine)
	require.Equal(t, "Mounika", res.StudentName)
	require.Equal(t, model.AvailabilityNo, f.book(t, "B101").Available)

	_, err = f.svc.MarkMissing(ctx, staff, ref)
	requireKind(t, err, errs.KindConflict)

	missing, err := f.svc.MissingBooks(ctx, admin)
	require.NoError(t, err)
	require.Equal(t, []model.MissingBook{res}, missing)
}

func TestService_SweepOverdue(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	f.borrow(t, "S001", "B101")
	f.advance(2)
	f.borrow(t, "S002", "B102")

	_, err := f.svc.SweepOverdue(ctx, mounika)
	requireKind(t, err, errs.KindForbidden)

	// S001 is 15 days out, not overdue yet
	f.advance(13)
	res, err := f.svc.SweepOverdue(ctx, staff)
	require.NoError(t, err)
	require.Empty(t, res)

	f.advance(1)
	res, err = f.svc.SweepOverdue(ctx, staff)
	require.NoError(t, err)
	require.Equal(t, []model.OverdueLoan{{
		StudentID:   "S001",
		StudentName: "Mounika",
		BookID:      "B101",
		BookName:    "Python Basics",
		Status:      model.StatusMissing,
		Fine:        model.MissingFine,
	}}, res)
	require.Equal(t, model.AvailabilityNo, f.book(t, "B101").Available)

	again, err := f.svc.SweepOverdue(ctx, service.SystemIdentity)
	require.NoError(t, err)
	require.Empty(t, again)

	f.advance(2)
	res, err = f.svc.SweepOverdue(ctx, admin)
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Equal(t, "S002", res[0].StudentID)

	fines, err := f.svc.StudentsWithFines(ctx, staff)
	require.NoError(t, err)
	require.Len(t, fines, 2)
}

func TestService_Books(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.AddBook(ctx, staff, model.AddBookRequest{BookID: "B111", Name: "Compilers"})
	requireKind(t, err, errs.KindForbidden)
	_, err = f.svc.AddBook(ctx, admin, model.AddBookRequest{BookID: "B111"})
	requireKind(t, err, errs.KindInvalidArgument)
	_, err = f.svc.AddBook(ctx, admin, model.AddBookRequest{BookID: "B101", Name: "Dup"})
	requireKind(t, err, errs.KindConflict)

	book, err := f.svc.AddBook(ctx, admin, model.AddBookRequest{BookID: "B111", Name: "Compilers"})
	require.NoError(t, err)
	require.Equal(t, model.Book{BookID: "B111", Name: "Compilers", Available: model.AvailabilityYes}, book)

	_, err = f.svc.DeleteBook(ctx, admin, "B404")
	requireKind(t, err, errs.KindNotFound)

	f.borrow(t, "S001", "B101")
	_, err = f.svc.DeleteBook(ctx, admin, "B101")
	requireKind(t, err, errs.KindConflict)

	deleted, err := f.svc.DeleteBook(ctx, admin, "B111")
	require.NoError(t, err)
	require.Equal(t, "Compilers", deleted.Name)
	_, err = f.svc.BookEnquiry(ctx, "B111")
	requireKind(t, err, errs.KindNotFound)
}

func TestService_AllStudentBooks(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	f.borrow(t, "S003", "B105")

	_, err := f.svc.StudentBooks(ctx, ravi, "S003")
	requireKind(t, err, errs.KindForbidden)
	_, err = f.svc.AllStudentBooks(ctx, ravi)
	requireKind(t, err, errs.KindForbidden)

	all, err := f.svc.AllStudentBooks(ctx, staff)
	require.NoError(t, err)
	require.Len(t, all, 10)
	require.Equal(t, "S003", all[2].StudentID)
	require.Equal(t, 1, all[2].BookCount)
	require.Empty(t, all[0].BorrowedBooks)
	require.NotNil(t, all[0].BorrowedBooks)
}
