package models

import "time"

// Staff roles.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// IsValidRole checks if the provided role string is a known role.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleStaff:
		return true
	default:
		return false
	}
}

// StaffAccount represents a staff login. The password hash is part of the
// persisted shape, so services expose accounts to the API layer through
// DTOs that omit it.
type StaffAccount struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
