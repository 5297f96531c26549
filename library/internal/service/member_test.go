package service_test

import (
	"context"
	"testing"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/pkg/auth"
	"github.com/stretchr/testify/require"
)

func TestService_Register(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	req := model.RegisterRequest{StudentID: "S011", Name: "Kiran", Password: "Kiran123"}

	_, err := f.svc.Register(ctx, staff, req)
	requireKind(t, err, errs.KindForbidden)
	_, err = f.svc.Register(ctx, admin, model.RegisterRequest{StudentID: "S011", Name: "Kiran"})
	requireKind(t, err, errs.KindInvalidArgument)
	_, err = f.svc.Register(ctx, admin, model.RegisterRequest{StudentID: "S001", Name: "Other", Password: "x"})
	requireKind(t, err, errs.KindConflict)
	_, err = f.svc.Register(ctx, admin, model.RegisterRequest{StudentID: "staff", Name: "Shadow", Password: "x"})
	requireKind(t, err, errs.KindConflict)
	require.EqualError(t, err, "staff is a reserved username")

	res, err := f.svc.Register(ctx, admin, req)
	require.NoError(t, err)
	require.Equal(t, "Student Kiran registered successfully", res.Message)
	require.Equal(t, "S011", res.Student.StudentID)
	require.Equal(t, "********", res.Student.Password)
	require.Empty(t, res.Student.BorrowedBooks)

	login, err := f.svc.Login(ctx, model.LoginRequest{Username: "S011", Password: "Kiran123"})
	require.NoError(t, err)
	require.Equal(t, "student", login.Role)

	members, err := f.svc.ListMembers(ctx, mounika)
	require.NoError(t, err)
	require.Len(t, members, 11)
	require.Equal(t, model.Member{StudentID: "S011", Name: "Kiran"}, members[10])

	_, err = f.svc.ListMembers(ctx, anonymous)
	requireKind(t, err, errs.KindUnauthorized)
	require.Contains(t, f.events.types(), model.EventStudentRegistered)
}

func TestService_RemoveMember(t *testing.T) {
	t.Parallel()
	withFine := func(t *testing.T, f *fixture) {
		f.setLoans(t, "S001", model.Loan{BookID: "B101", Fine: 50, Status: model.StatusReturned})
	}
	tests := []struct {
		name     string
		setup    func(t *testing.T, f *fixture)
		caller   auth.Identity
		req      model.RemoveMemberRequest
		wantKind errs.Kind
		wantMsg  string
	}{
		{
			name:    "self with correct password",
			caller:  mounika,
			req:     model.RemoveMemberRequest{StudentID: "S001", Password: "Mounika123"},
			wantMsg: "Student S001 membership declined successfully (no pending fine)",
		},
		{
			name:     "self with wrong password",
			caller:   mounika,
			req:      model.RemoveMemberRequest{StudentID: "S001", Password: "nope"},
			wantKind: errs.KindForbidden,
		},
		{
			name:     "self with fine and correct password",
			setup:    withFine,
			caller:   mounika,
			req:      model.RemoveMemberRequest{StudentID: "S001", Password: "Mounika123"},
			wantKind: errs.KindPreconditionFailed,
		},
		{
			name:     "self with fine and wrong password",
			setup:    withFine,
			caller:   mounika,
			req:      model.RemoveMemberRequest{StudentID: "S001", Password: "nope"},
			wantKind: errs.KindPreconditionFailed,
		},
		{
			name:    "admin",
			caller:  admin,
			req:     model.RemoveMemberRequest{StudentID: "S001"},
			wantMsg: "Student S001 membership declined by admin (no pending fine)",
		},
		{
			name:     "admin with fine",
			setup:    withFine,
			caller:   admin,
			req:      model.RemoveMemberRequest{StudentID: "S001"},
			wantKind: errs.KindPreconditionFailed,
		},
		{
			name:     "admin unknown student",
			caller:   admin,
			req:      model.RemoveMemberRequest{StudentID: "S404"},
			wantKind: errs.KindNotFound,
		},
		{
			name:     "staff",
			caller:   staff,
			req:      model.RemoveMemberRequest{StudentID: "S001"},
			wantKind: errs.KindForbidden,
		},
		{
			name:     "another student",
			caller:   ravi,
			req:      model.RemoveMemberRequest{StudentID: "S001", Password: "Mounika123"},
			wantKind: errs.KindForbidden,
		},
		{
			name:     "no id",
			caller:   admin,
			req:      model.RemoveMemberRequest{},
			wantKind: errs.KindInvalidArgument,
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
			res, err := f.svc.RemoveMember(context.Background(), tt.caller, tt.req)
			if tt.wantKind != "" {
				requireKind(t, err, tt.wantKind)
				_, err = f.svc.StudentBooks(context.Background(), admin, "S001")
				require.NoError(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantMsg, res.Message)
			require.Zero(t, res.Fine)

			_, err = f.svc.StudentBooks(context.Background(), admin, tt.req.StudentID)
			requireKind(t, err, errs.KindNotFound)
		})
	}
}

func TestService_Librarians(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	list, err := f.svc.ListLibrarians(ctx, mounika)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, model.Librarian{LibrarianID: "L001", Name: "Ramesh", Role: "staff"}, list[0])

	_, err = f.svc.AddLibrarian(ctx, staff, model.AddLibrarianRequest{LibrarianID: "L004", Name: "Lakshmi"})
	requireKind(t, err, errs.KindForbidden)
	_, err = f.svc.AddLibrarian(ctx, admin, model.AddLibrarianRequest{LibrarianID: "L004"})
	requireKind(t, err, errs.KindInvalidArgument)
	_, err = f.svc.AddLibrarian(ctx, admin, model.AddLibrarianRequest{LibrarianID: "L001", Name: "Dup"})
	requireKind(t, err, errs.KindConflict)

	added, err := f.svc.AddLibrarian(ctx, admin, model.AddLibrarianRequest{LibrarianID: "L004", Name: "Lakshmi"})
	require.NoError(t, err)
	require.Equal(t, "staff", added.Role)

	removed, err := f.svc.RemoveLibrarian(ctx, admin, "L002")
	require.NoError(t, err)
	require.Equal(t, "Suresh", removed.Name)
	_, err = f.svc.RemoveLibrarian(ctx, admin, "L002")
	requireKind(t, err, errs.KindNotFound)

	// a removed librarian can no longer issue books
	_, err = f.svc.Enter(ctx, "S001")
	require.NoError(t, err)
	_, err = f.svc.Borrow(ctx, staff, model.BorrowRequest{StudentID: "S001", BookID: "B101", LibrarianID: "L002"})
	requireKind(t, err, errs.KindNotFound)
}
