package backoffice

// Role is the user's role as known to the backend
type Role = string

const (
	// RoleAdmin can reach the admin console and manage every user
	RoleAdmin Role = "ADMIN"
	// RoleStaff is a back-office operator without user management rights
	RoleStaff Role = "STAFF"
	// RoleCustomer is a self-service account
	RoleCustomer Role = "CUSTOMER"
)

// IsValidRole checks if the role is one of the predefined valid roles
func IsValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleCustomer:
		return true
	default:
		return false
	}
}

// RoleIsAtLeast checks if the role meets the minimum required level
func RoleIsAtLeast(r, minRole Role) bool {
	roleHierarchy := map[Role]int{
		RoleCustomer: 0,
		RoleStaff:    1,
		RoleAdmin:    2,
	}

	currentLevel, exists := roleHierarchy[r]
	if !exists {
		return false
	}

	minLevel, exists := roleHierarchy[minRole]
	if !exists {
		return false
	}

	return currentLevel >= minLevel
}

// AllRoles returns all predefined roles in hierarchical order
func AllRoles() []Role {
	return []Role{
		RoleCustomer,
		RoleStaff,
		RoleAdmin,
	}
}

// ParseRole safely parses a string into a Role
func ParseRole(roleStr string) (Role, bool) {
	role := Role(roleStr)
	return role, IsValidRole(role)
}

// RoleInSet reports membership of role in the given set. An empty set
// matches any valid role, mirroring routes without a role restriction.
func RoleInSet(role Role, set []Role) bool {
	if len(set) == 0 {
		return IsValidRole(role)
	}
	for _, allowed := range set {
		if role == allowed {
			return true
		}
	}
	return false
}
