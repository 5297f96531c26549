package auth_test

import (
	"testing"

	"github.com/Astemirdum/library-management/pkg/auth"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	t.Parallel()
	var (
		admin   = auth.Identity{Subject: "admin", Role: auth.RoleAdmin}
		staff   = auth.Identity{Subject: "staff", Role: auth.RoleStaff}
		student = auth.Identity{Subject: "S001", Role: auth.RoleStudent}
	)

	tests := []struct {
		name   string
		id     auth.Identity
		action auth.Action
		owner  string
		want   bool
	}{
		{name: "staff borrows", id: staff, action: auth.ActionBorrow, want: true},
		{name: "student cannot borrow", id: student, action: auth.ActionBorrow, owner: "S001", want: false},
		{name: "anonymous denied", id: auth.Anonymous, action: auth.ActionViewMembers, want: false},
		{name: "zero identity denied", id: auth.Identity{}, action: auth.ActionViewMembers, want: false},
		{name: "student returns own book", id: student, action: auth.ActionReturn, owner: "S001", want: true},
		{name: "student cannot return for other", id: student, action: auth.ActionReturn, owner: "S002", want: false},
		{name: "student without owner", id: student, action: auth.ActionReturn, want: false},
		{name: "staff views any fines", id: staff, action: auth.ActionViewFines, owner: "S002", want: true},
		{name: "staff cannot add books", id: staff, action: auth.ActionManageBooks, want: false},
		{name: "admin adds books", id: admin, action: auth.ActionManageBooks, want: true},
		{name: "admin registers", id: admin, action: auth.ActionRegisterMember, want: true},
		{name: "staff cannot register", id: staff, action: auth.ActionRegisterMember, want: false},
		{name: "staff cannot remove member", id: staff, action: auth.ActionRemoveMember, owner: "S001", want: false},
		{name: "student removes self", id: student, action: auth.ActionRemoveMember, owner: "S001", want: true},
		{name: "student lists members", id: student, action: auth.ActionViewMembers, want: true},
		{name: "student cannot list presence", id: student, action: auth.ActionViewPresence, want: false},
		{name: "unknown action", id: admin, action: auth.Action("nope"), want: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, auth.Authorize(tt.id, tt.action, tt.owner))
		})
	}
}
