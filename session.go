package backoffice

import (
	"context"
	"sync"
	"time"
)

// SessionStore is the single source of truth for the authenticated
// Principal. Every screen reads it; only its own operations write it. The
// Principal pointer is replaced whole under the lock, so observers see
// either the previous or the new value, never an intermediate one.
type SessionStore struct {
	mu          sync.RWMutex
	client      ResourceClient
	creds       CredentialStore
	logger      Logger
	now         func() time.Time
	principal   *Principal
	token       string
	resolving   bool
	subscribers map[int]func(*Principal)
	nextSubID   int
}

// SessionOption configures a SessionStore
type SessionOption func(*SessionStore)

// WithCredentialStore persists the session token between runs
func WithCredentialStore(creds CredentialStore) SessionOption {
	return func(s *SessionStore) {
		if creds != nil {
			s.creds = creds
		}
	}
}

// WithSessionLogger overrides the store logger
func WithSessionLogger(logger Logger) SessionOption {
	return func(s *SessionStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSessionClock injects a custom clock (useful for tests)
func WithSessionClock(clock func() time.Time) SessionOption {
	return func(s *SessionStore) {
		if clock != nil {
			s.now = clock
		}
	}
}

// NewSessionStore returns a SessionStore backed by the given client
func NewSessionStore(client ResourceClient, opts ...SessionOption) *SessionStore {
	store := &SessionStore{
		client:      client,
		creds:       noopCredentialStore{},
		logger:      defLogger{},
		now:         time.Now,
		subscribers: map[int]func(*Principal){},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(store)
		}
	}

	return store
}

// CurrentPrincipal returns the authenticated principal, nil when signed
// out. The returned value is replaced, never mutated, so callers may hold
// onto it.
func (s *SessionStore) CurrentPrincipal() *Principal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principal
}

// Token returns the opaque session token, empty when signed out. Wire this
// as the client's TokenSource.
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Resolving reports whether a persisted token is being exchanged for a
// Principal. The route guard answers pending decisions while this is true.
func (s *SessionStore) Resolving() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolving
}

// Subscribe registers an observer notified after every principal
// replacement. It returns an unsubscribe function.
func (s *SessionStore) Subscribe(fn func(*Principal)) func() {
	if fn == nil {
		return func() {}
	}

	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Login authenticates against the backend and establishes the session. On
// failure the stored state is left unchanged.
func (s *SessionStore) Login(ctx context.Context, email, password string) (*Principal, error) {
	result, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.logger.Debug("login rejected for %s: %v", email, err)
		return nil, err
	}

	principal := s.establish(result)
	s.logger.Info("session established for %s role=%s", principal.User.Email, principal.Role())
	return principal, nil
}

// Register signs up a new account and, like the login flow, establishes
// the session with the returned token.
func (s *SessionStore) Register(ctx context.Context, payload RegisterPayload) (*Principal, error) {
	result, err := s.client.Register(ctx, payload)
	if err != nil {
		return nil, err
	}

	principal := s.establish(result)
	s.logger.Info("registered %s role=%s", principal.User.Email, principal.Role())
	return principal, nil
}

// UpdateProfile replaces the principal's own fields after the backend
// re-authenticates the current password. The refreshed token and user are
// swapped in together; on failure the session is untouched.
func (s *SessionStore) UpdateProfile(ctx context.Context, user User, currentPassword string) (*Principal, error) {
	if s.CurrentPrincipal() == nil {
		return nil, ErrNotAuthenticated
	}

	result, err := s.client.UpdateProfile(ctx, user, currentPassword)
	if err != nil {
		return nil, err
	}

	principal := s.establish(result)
	s.logger.Info("profile updated for %s", principal.User.Email)
	return principal, nil
}

// Logout clears the session unconditionally. It never fails and calling it
// on a cleared session is a no-op.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	s.principal = nil
	s.token = ""
	s.resolving = false
	s.mu.Unlock()

	if err := s.creds.DeleteToken(); err != nil {
		s.logger.Warn("unable to delete persisted token: %v", err)
	}

	s.notify(nil)
}

// Restore re-derives the Principal from a persisted token. Expired tokens
// are discarded silently. While the profile fetch is in flight the session
// reports Resolving, which the guard turns into pending decisions.
func (s *SessionStore) Restore(ctx context.Context) (*Principal, error) {
	token, err := s.creds.LoadToken()
	if err != nil || token == "" {
		return nil, nil
	}

	claims, err := ClaimsFromToken(token)
	if err != nil {
		s.logger.Warn("discarding undecodable persisted token: %v", err)
		s.clearPersisted()
		return nil, nil
	}

	if claims.Expired(s.now()) {
		s.logger.Debug("discarding expired persisted token for %s", claims.Identifier())
		s.clearPersisted()
		return nil, nil
	}

	s.mu.Lock()
	s.token = token
	s.resolving = true
	s.mu.Unlock()

	user, err := s.client.Profile(ctx)
	if err != nil {
		s.mu.Lock()
		s.resolving = false
		s.token = ""
		s.mu.Unlock()

		if IsInvalidCredentials(err) {
			// Token no longer honored by the backend
			s.clearPersisted()
			return nil, nil
		}
		return nil, err
	}

	principal := &Principal{
		User:      *user,
		IssuedAt:  claims.Issued(),
		ExpiresAt: claims.Expires(),
	}

	s.mu.Lock()
	s.principal = principal
	s.resolving = false
	s.mu.Unlock()

	s.notify(principal)
	return principal, nil
}

func (s *SessionStore) establish(result *LoginResult) *Principal {
	principal := &Principal{User: result.User}
	if claims, err := ClaimsFromToken(result.Token); err == nil {
		principal.IssuedAt = claims.Issued()
		principal.ExpiresAt = claims.Expires()
	}

	s.mu.Lock()
	s.principal = principal
	s.token = result.Token
	s.resolving = false
	s.mu.Unlock()

	if err := s.creds.SaveToken(result.Token); err != nil {
		s.logger.Warn("unable to persist session token: %v", err)
	}

	s.notify(principal)
	return principal
}

func (s *SessionStore) clearPersisted() {
	if err := s.creds.DeleteToken(); err != nil {
		s.logger.Warn("unable to delete persisted token: %v", err)
	}
}

func (s *SessionStore) notify(principal *Principal) {
	s.mu.RLock()
	observers := make([]func(*Principal), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		observers = append(observers, fn)
	}
	s.mu.RUnlock()

	for _, fn := range observers {
		fn(principal)
	}
}

type noopCredentialStore struct{}

func (noopCredentialStore) SaveToken(string) error   { return nil }
func (noopCredentialStore) LoadToken() (string, error) { return "", nil }
func (noopCredentialStore) DeleteToken() error       { return nil }

// MemoryCredentialStore keeps the token in memory only. Useful for tests
// and for callers that do not want sessions to outlive the process.
type MemoryCredentialStore struct {
	mu    sync.Mutex
	value string
}

func (m *MemoryCredentialStore) SaveToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = token
	return nil
}

func (m *MemoryCredentialStore) LoadToken() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, nil
}

func (m *MemoryCredentialStore) DeleteToken() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = ""
	return nil
}
