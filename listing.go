package backoffice

import (
	"context"
	"sync"

	"github.com/goliatone/go-errors"
)

const (
	// FilterRole constrains the listing to one role; values must belong to
	// the role enumeration
	FilterRole = "role"
	// FilterGeneral is the free-text filter matched by the backend against
	// name, email, and role
	FilterGeneral = "general"
)

// Fetcher loads one page of a resource collection
type Fetcher[T any] func(ctx context.Context, query Query) (*Page[T], error)

// Remover deletes one resource by id
type Remover func(ctx context.Context, id string) error

// ListingController owns the query state for one listing screen and keeps
// the displayed page consistent with the most recently issued request.
// Overlapping loads are resolved by tagging each request with the query
// generation that issued it; responses whose tag no longer matches are
// discarded, so a slow early response can never overwrite a newer one.
type ListingController[T any] struct {
	mu         sync.Mutex
	fetch      Fetcher[T]
	remove     Remover
	logger     Logger
	query      Query
	page       *Page[T]
	loading    bool
	lastErr    error
	generation uint64
	closed     bool
	selfID     func() string
	onChange   func(*Page[T])
	onError    func(error)
}

// ListingOption configures a ListingController
type ListingOption[T any] func(*ListingController[T])

// WithInitialQuery overrides the starting query state
func WithInitialQuery[T any](query Query) ListingOption[T] {
	return func(l *ListingController[T]) {
		if query.Filters == nil {
			query.Filters = map[string]any{}
		}
		l.query = query
	}
}

// WithListingLogger overrides the controller logger
func WithListingLogger[T any](logger Logger) ListingOption[T] {
	return func(l *ListingController[T]) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithRemover enables Delete on the controller
func WithRemover[T any](remove Remover) ListingOption[T] {
	return func(l *ListingController[T]) {
		l.remove = remove
	}
}

// WithSelfID guards Delete against removing the session's own account.
// The admin table hides those controls; the controller enforces it.
func WithSelfID[T any](selfID func() string) ListingOption[T] {
	return func(l *ListingController[T]) {
		l.selfID = selfID
	}
}

// OnChange registers a callback invoked with every applied page so the
// screen can re-render
func OnChange[T any](fn func(*Page[T])) ListingOption[T] {
	return func(l *ListingController[T]) {
		l.onChange = fn
	}
}

// OnError registers a callback invoked when a load or delete fails
func OnError[T any](fn func(error)) ListingOption[T] {
	return func(l *ListingController[T]) {
		l.onError = fn
	}
}

// NewListingController returns a controller over the given fetch function
func NewListingController[T any](fetch Fetcher[T], opts ...ListingOption[T]) *ListingController[T] {
	controller := &ListingController[T]{
		fetch:  fetch,
		logger: defLogger{},
		query:  NewQuery(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(controller)
		}
	}

	return controller
}

// NewUserListing wires a ListingController to the users collection
func NewUserListing(client ResourceClient, opts ...ListingOption[User]) *ListingController[User] {
	base := []ListingOption[User]{
		WithRemover[User](client.DeleteUser),
	}
	return NewListingController(client.ListUsers, append(base, opts...)...)
}

// Query returns the current composed query state
func (l *ListingController[T]) Query() Query {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.query
}

// Result returns the last applied page, nil before the first load
func (l *ListingController[T]) Result() *Page[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.page
}

// Loading reports whether the most recent request is still in flight
func (l *ListingController[T]) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Err returns the failure of the most recent request, nil on success
func (l *ListingController[T]) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

// Close detaches the controller from its screen. In-flight requests are
// left to complete but their results are silently dropped.
func (l *ListingController[T]) Close() {
	l.mu.Lock()
	l.closed = true
	l.loading = false
	l.mu.Unlock()
}

// Load merges the update over the current query state (unspecified fields
// retained), issues a fetch, and applies the result unless a newer load
// superseded it meanwhile.
func (l *ListingController[T]) Load(ctx context.Context, update QueryUpdate) error {
	if err := validateRoleFilter(update.Filters); err != nil {
		return err
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.query = l.query.Merge(update)
	l.generation++
	generation := l.generation
	query := l.query
	l.loading = true
	l.mu.Unlock()

	page, err := l.fetch(ctx, query)

	l.mu.Lock()
	if l.closed || generation != l.generation {
		// Superseded or torn down, discard
		l.mu.Unlock()
		l.logger.Debug("discarding stale response for page=%d", query.Page)
		return nil
	}

	if err != nil {
		// Keep the last good page visible
		l.loading = false
		l.lastErr = err
		onError := l.onError
		l.mu.Unlock()

		l.logger.Error("listing load failed: %v", err)
		if onError != nil {
			onError(err)
		}
		return err
	}

	l.page = page
	l.loading = false
	l.lastErr = nil
	onChange := l.onChange
	l.mu.Unlock()

	if onChange != nil {
		onChange(page)
	}
	return nil
}

// ChangePage loads the given page, preserving size, filters, and sort
func (l *ListingController[T]) ChangePage(ctx context.Context, page int) error {
	return l.Load(ctx, PageOf(page))
}

// ChangeSize sets a new page size. The page always resets to the first
// one, otherwise the current page could fall out of range.
func (l *ListingController[T]) ChangeSize(ctx context.Context, size int) error {
	if size <= 0 {
		return errors.New("page size must be positive", errors.CategoryValidation).
			WithCode(errors.CodeBadRequest)
	}
	page := 0
	return l.Load(ctx, QueryUpdate{Page: &page, Size: &size})
}

// ChangeSort toggles direction when field is already the active sort
// field, otherwise starts ascending on the new field. Either way the page
// resets to the first one.
func (l *ListingController[T]) ChangeSort(ctx context.Context, field string) error {
	l.mu.Lock()
	direction := DirectionAsc
	if l.query.Sort != nil && l.query.Sort.Field == field && l.query.Sort.Direction == DirectionAsc {
		direction = DirectionDesc
	}
	l.mu.Unlock()

	page := 0
	return l.Load(ctx, QueryUpdate{
		Page: &page,
		Sort: &OrderBy{Field: field, Direction: direction},
	})
}

// ChangeFilter merges filter values; an empty value removes its key. The
// page resets to the first one.
func (l *ListingController[T]) ChangeFilter(ctx context.Context, filters map[string]any) error {
	page := 0
	return l.Load(ctx, QueryUpdate{Page: &page, Filters: filters})
}

// Delete removes a resource and reloads the listing with the current
// query so page boundaries and totals stay server authoritative. The
// deleted row is never spliced out locally.
func (l *ListingController[T]) Delete(ctx context.Context, id string) error {
	if l.remove == nil {
		return errors.New("listing has no remover configured", errors.CategoryOperation).
			WithCode(errors.CodeBadRequest)
	}

	if l.selfID != nil && l.selfID() == id {
		return errors.New("cannot delete your own account", errors.CategoryValidation).
			WithCode(errors.CodeBadRequest)
	}

	if err := l.remove(ctx, id); err != nil {
		l.mu.Lock()
		l.lastErr = err
		onError := l.onError
		l.mu.Unlock()

		l.logger.Error("delete %s failed: %v", id, err)
		if onError != nil {
			onError(err)
		}
		return err
	}

	return l.Load(ctx, QueryUpdate{})
}

func validateRoleFilter(filters map[string]any) error {
	value, ok := filters[FilterRole]
	if !ok || isEmptyFilterValue(value) {
		return nil
	}

	role, ok := value.(string)
	if !ok || !IsValidRole(Role(role)) {
		return errors.New("invalid role filter value", errors.CategoryValidation).
			WithCode(errors.CodeBadRequest).
			WithMetadata(map[string]any{"role": value})
	}

	return nil
}
