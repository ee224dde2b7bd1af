// Package entity contains the core business objects of the project.
package entity

// Role represents the application role of an account.
type Role string

const (
	// RoleCustomer is the default role for every new account.
	RoleCustomer Role = "customer"
	// RoleSeller indicates an account that sells products.
	RoleSeller Role = "seller"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
	// RoleDelivery indicates a courier account.
	RoleDelivery Role = "delivery"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleSeller, RoleAdmin, RoleDelivery:
		return true
	default:
		return false
	}
}

// RequiresApproval reports whether the role is gated by an approval status.
func (r Role) RequiresApproval() bool {
	return r == RoleSeller || r == RoleDelivery
}
