package karte

// ===============================
// Staff roles
// ===============================

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// DefaultRole is given to every profile created through sign-up.
const DefaultRole = RoleStaff

// IsAdmin only drives what the API exposes; it is not a permission system.
func IsAdmin(role string) bool {
	return Role(role) == RoleAdmin
}
