package user

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Role         Role
	EmployeeID   *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

// CanProcessPayroll reports whether the role may trigger payroll runs and
// generate statutory returns.
func (r Role) CanProcessPayroll() bool {
	return r == RoleAdmin || r == RoleHR
}
