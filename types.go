package backoffice

import (
	"context"
	"fmt"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// ResourceClient is the remote collection API this core drives. The
// concrete implementation is Client; controllers depend on the interface so
// screens and tests can substitute doubles.
type ResourceClient interface {
	Register(ctx context.Context, payload RegisterPayload) (*LoginResult, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Profile(ctx context.Context) (*User, error)
	ListUsers(ctx context.Context, query Query) (*Page[User], error)
	GetUser(ctx context.Context, id string) (*User, error)
	UpdateUser(ctx context.Context, user User) (*User, error)
	UpdateProfile(ctx context.Context, user User, currentPassword string) (*LoginResult, error)
	DeleteUser(ctx context.Context, id string) error
}

// CredentialStore persists the opaque session token between runs
type CredentialStore interface {
	SaveToken(token string) error
	LoadToken() (string, error)
	DeleteToken() error
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] BACKOFFICE "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] BACKOFFICE "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] BACKOFFICE "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] BACKOFFICE "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
