package auth

type Action string

const (
	ActionBorrow           Action = "loan:borrow"
	ActionReturn           Action = "loan:return"
	ActionMarkMissing      Action = "loan:mark-missing"
	ActionSweepOverdue     Action = "loan:sweep-overdue"
	ActionViewIssued       Action = "loan:view-issued"
	ActionViewStudentLoans Action = "loan:view-student"
	ActionViewAllLoans     Action = "loan:view-all"
	ActionManageBooks      Action = "book:manage"
	ActionViewFines        Action = "fine:view"
	ActionViewAllFines     Action = "fine:view-all"
	ActionPayFine          Action = "fine:pay"
	ActionViewMembers      Action = "member:view"
	ActionRegisterMember   Action = "member:register"
	ActionRemoveMember     Action = "member:remove"
	ActionViewLibrarians   Action = "librarian:view"
	ActionManageLibrarians Action = "librarian:manage"
	ActionViewPresence     Action = "presence:view"
)

type rule struct {
	roles     []Role
	ownerRole Role
}

var rules = map[Action]rule{
	ActionBorrow:           {roles: []Role{RoleAdmin, RoleStaff}},
	ActionReturn:           {roles: []Role{RoleAdmin, RoleStaff}, ownerRole: RoleStudent},
	ActionMarkMissing:      {roles: []Role{RoleAdmin, RoleStaff}},
	ActionSweepOverdue:     {roles: []Role{RoleAdmin, RoleStaff}},
	ActionViewIssued:       {roles: []Role{RoleAdmin, RoleStaff}},
	ActionViewStudentLoans: {roles: []Role{RoleAdmin, RoleStaff}, ownerRole: RoleStudent},
	ActionViewAllLoans:     {roles: []Role{RoleAdmin, RoleStaff}},
	ActionManageBooks:      {roles: []Role{RoleAdmin}},
	ActionViewFines:        {roles: []Role{RoleAdmin, RoleStaff}, ownerRole: RoleStudent},
	ActionViewAllFines:     {roles: []Role{RoleAdmin, RoleStaff}},
	ActionPayFine:          {roles: []Role{RoleAdmin, RoleStaff}},
	ActionViewMembers:      {roles: []Role{RoleAdmin, RoleStaff, RoleStudent}},
	ActionRegisterMember:   {roles: []Role{RoleAdmin}},
	ActionRemoveMember:     {roles: []Role{RoleAdmin}, ownerRole: RoleStudent},
	ActionViewLibrarians:   {roles: []Role{RoleAdmin, RoleStaff, RoleStudent}},
	ActionManageLibrarians: {roles: []Role{RoleAdmin}},
	ActionViewPresence:     {roles: []Role{RoleAdmin, RoleStaff}},
}

// Authorize reports whether id may perform action on a resource owned by owner.
// owner is a student id, or empty when the resource has no owner.
// Unknown actions are denied.
func Authorize(id Identity, action Action, owner string) bool {
	if id.IsAnonymous() {
		return false
	}
	r, ok := rules[action]
	if !ok {
		return false
	}
	for _, role := range r.roles {
		if id.Role == role {
			return true
		}
	}
	return r.ownerRole != "" && owner != "" &&
		id.Role == r.ownerRole && id.Subject == owner
}
