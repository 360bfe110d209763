package domain

import "time"

// Role controls which dashboard a user sees and which booking fields they
// may mutate.
type Role string

const (
	RoleUser    Role = "user"
	RoleCashier Role = "cashier"
	RoleAdmin   Role = "admin"
)

// IsValid reports whether the role is in the enumerated set.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleCashier, RoleAdmin:
		return true
	}
	return false
}

// User represents a customer profile or staff account.
type User struct {
	ID        string
	FullName  string
	Phone     string
	Role      Role
	CreatedAt time.Time
}
