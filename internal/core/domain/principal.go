package domain

import "strings"

// AuthorityAdmin is the single authority string that grants unconditional access.
const AuthorityAdmin = "ROLE_ADMIN"

// AuthorityFor derives the authority tag for a role name. An employee without
// a role carries no authority at all.
func AuthorityFor(roleName string) string {
	if roleName == "" {
		return ""
	}
	return "ROLE_" + strings.ToUpper(roleName)
}

// Principal is the authenticated identity for the duration of one request.
// It is minted by the auth middleware from a verified token and passed
// explicitly into every service call; there is no ambient session state.
type Principal struct {
	EmployeeID int64  `json:"id"`
	Username   string `json:"username"`
	Name       string `json:"name"`
	Role       string `json:"role"`
}

// Authority returns the principal's single derived authority.
func (p Principal) Authority() string {
	return AuthorityFor(p.Role)
}

// IsAdmin reports whether the principal carries the admin authority.
// There is no hierarchy among other roles; they are all equivalent here.
func (p Principal) IsAdmin() bool {
	return p.Authority() == AuthorityAdmin
}

// CanView reports whether the principal may read the employee record with
// the given id: admins may read any record, everyone else only their own.
func (p Principal) CanView(targetID int64) bool {
	return p.IsAdmin() || p.EmployeeID == targetID
}

// CanEdit applies the same self-or-admin rule to writes.
func (p Principal) CanEdit(targetID int64) bool {
	return p.IsAdmin() || p.EmployeeID == targetID
}

// CanList reports whether the principal may list all employee records.
func (p Principal) CanList() bool {
	return p.IsAdmin()
}

// CanDelete reports whether the principal may delete employee records.
func (p Principal) CanDelete() bool {
	return p.IsAdmin()
}
