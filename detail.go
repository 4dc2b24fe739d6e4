package backoffice

import (
	"context"
)

// DetailController fetches one user by id and submits validated edits.
// Unresolved ids surface through the OnNotFound callback so the screen can
// redirect back to the listing instead of showing an error dialog.
type DetailController struct {
	client     ResourceClient
	logger     Logger
	onNotFound func(id string)
}

// DetailOption configures a DetailController
type DetailOption func(*DetailController)

// WithDetailLogger overrides the controller logger
func WithDetailLogger(logger Logger) DetailOption {
	return func(d *DetailController) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// OnNotFound registers the redirect-to-listing signal for unresolved ids
func OnNotFound(fn func(id string)) DetailOption {
	return func(d *DetailController) {
		d.onNotFound = fn
	}
}

// NewDetailController returns a DetailController over the given client
func NewDetailController(client ResourceClient, opts ...DetailOption) *DetailController {
	controller := &DetailController{
		client: client,
		logger: defLogger{},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(controller)
		}
	}

	return controller
}

// LoadOne fetches a user by id. A not-found result fires the OnNotFound
// signal and still returns the error for callers that inspect it.
func (d *DetailController) LoadOne(ctx context.Context, id string) (*User, error) {
	user, err := d.client.GetUser(ctx, id)
	if err != nil {
		if IsNotFound(err) {
			d.logger.Debug("user %s not found, redirecting to listing", id)
			if d.onNotFound != nil {
				d.onNotFound(id)
			}
		}
		return nil, err
	}

	return user, nil
}

// Validate runs the edit schema and returns every offending field at once,
// nil when the payload is valid
func (d *DetailController) Validate(user User) map[string]string {
	return FieldErrors(user.Validate())
}

// Submit validates the payload and, when clean, sends the full update to
// the backend. Validation failures never reach the wire.
func (d *DetailController) Submit(ctx context.Context, user User) (*User, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}

	updated, err := d.client.UpdateUser(ctx, user)
	if err != nil {
		d.logger.Error("update user %s failed: %v", user.ID, err)
		return nil, err
	}

	return updated, nil
}

// ProfileController edits the session's own account. Successful updates
// push the refreshed principal and token into the session store.
type ProfileController struct {
	session *SessionStore
	logger  Logger
}

// NewProfileController returns a ProfileController bound to the session
func NewProfileController(session *SessionStore, opts ...func(*ProfileController)) *ProfileController {
	controller := &ProfileController{
		session: session,
		logger:  defLogger{},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(controller)
		}
	}

	return controller
}

// WithProfileLogger overrides the controller logger
func WithProfileLogger(logger Logger) func(*ProfileController) {
	return func(p *ProfileController) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Current returns the session's own user, nil when signed out
func (p *ProfileController) Current() *User {
	principal := p.session.CurrentPrincipal()
	if principal == nil {
		return nil
	}
	user := principal.User
	return &user
}

// Validate runs the profile schema including the current password
// requirement, returning every offending field at once
func (p *ProfileController) Validate(update ProfileUpdate) map[string]string {
	return FieldErrors(update.Validate())
}

// Submit validates and applies the profile update through the session
// store, which swaps in the refreshed principal and token atomically.
func (p *ProfileController) Submit(ctx context.Context, update ProfileUpdate) (*Principal, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	principal, err := p.session.UpdateProfile(ctx, update.User, update.CurrentPassword)
	if err != nil {
		p.logger.Error("profile update failed: %v", err)
		return nil, err
	}

	return principal, nil
}
