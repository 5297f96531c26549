package auth

import (
	"context"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleStaff     Role = "staff"
	RoleStudent   Role = "student"
	RoleAnonymous Role = "anonymous"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleStudent:
		return true
	}
	return false
}

// Identity is the resolved caller of a request.
// Subject is the username for admin/staff and the student id for students.
type Identity struct {
	Subject string `json:"subject"`
	Role    Role   `json:"role"`
}

var Anonymous = Identity{Role: RoleAnonymous}

func (i Identity) IsAnonymous() bool {
	return i.Role == "" || i.Role == RoleAnonymous
}

type authKey int

const identityKey authKey = iota + 1

func SetAuthContext(ctx context.Context, userName string, role Role) context.Context {
	return context.WithValue(ctx, identityKey, Identity{Subject: userName, Role: role})
}

// FromContext returns Anonymous when no identity was stored.
func FromContext(ctx context.Context) Identity {
	id, ok := ctx.Value(identityKey).(Identity)
	if !ok {
		return Anonymous
	}
	return id
}
