package model

import (
	"errors"

	"github.com/google/uuid"
)

// User roles relevant to this service
const (
	RoleRenter   = "renter"
	RoleLandlord = "landlord"
)

// User mirrors the externally managed users table. Read-only here; identity
// is injected by the upstream gateway and trusted as-is.
type User struct {
	ID        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

func (u *User) IsRenter() bool {
	return u.Role == RoleRenter
}

var ErrUserNotFound = errors.New("user not found")
