package user

import (
	"time"

	"github.com/google/uuid"
)

// Role decides which parts of the application a user can reach.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleSales     Role = "sales"
	RoleInventory Role = "inventory"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSales, RoleInventory:
		return true
	}
	return false
}

// User represents a user in the system.
// @Description User information
// @Description with id, email, role, first_name, last_name, created_at, and updated_at
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
