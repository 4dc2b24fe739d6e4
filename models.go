package backoffice

import (
	"time"

	"github.com/google/uuid"
)

// User is the administered resource, mirroring the backend representation
type User struct {
	ID                 string     `json:"id,omitempty"`
	Name               string     `json:"name,omitempty"`
	Surnames           string     `json:"surnames,omitempty"`
	Email              string     `json:"email,omitempty"`
	Telephone          string     `json:"telephone,omitempty"`
	Role               Role       `json:"role,omitempty"`
	EmailVerified      bool       `json:"emailVerified,omitempty"`
	EmailNotifications bool       `json:"emailNotifications,omitempty"`
	CreationDate       *time.Time `json:"creationDate,omitempty"`
}

// UUID parses the opaque backend identifier
func (u *User) UUID() (uuid.UUID, error) {
	return uuid.Parse(u.ID)
}

// RegisterPayload is the self-service signup request
type RegisterPayload struct {
	Name      string `json:"name"`
	Surnames  string `json:"surnames"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	Password  string `json:"password"`
	Role      Role   `json:"role,omitempty"`
}

// LoginResult carries the resolved user plus the opaque session token
// returned by the authentication endpoints
type LoginResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Principal is the authenticated user's identity as known to this client.
// It is created on login, replaced on profile update, and cleared on
// logout; the zero value is never stored (absence is a nil *Principal).
type Principal struct {
	User      User
	IssuedAt  *time.Time
	ExpiresAt *time.Time
}

// ID returns the principal's backend identifier
func (p *Principal) ID() string {
	return p.User.ID
}

// Role returns the principal's global role
func (p *Principal) Role() Role {
	return p.User.Role
}

// HasRole checks if the principal carries a specific role
func (p *Principal) HasRole(role Role) bool {
	return p.User.Role == role
}

// IsAtLeast checks if the principal's role meets the minimum required level
func (p *Principal) IsAtLeast(minRole Role) bool {
	return RoleIsAtLeast(p.User.Role, minRole)
}
