package domain

// Role names seeded by default. Name uniqueness is expected but not enforced
// by the store; decisions only ever compare against the admin authority.
const (
	RoleNameAdmin   = "admin"
	DefaultRoleName = "USER"
)

// Role is a named job function referenced by zero or more employees.
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
