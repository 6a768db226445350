package domain

// Employee is a payroll record that doubles as a login account.
// The password hash is never serialized in any outward-facing representation.
type Employee struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}
