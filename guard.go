package backoffice

import (
	"github.com/goliatone/go-errors"
)

// Decision is the admission-control outcome for one navigation
type Decision string

const (
	// DecisionPending means the session is still resolving; render a
	// placeholder, finalize nothing
	DecisionPending Decision = "pending"
	// DecisionAllow admits the navigation
	DecisionAllow Decision = "allow"
	// DecisionRedirectLogin sends an anonymous visitor to the login route
	DecisionRedirectLogin Decision = "redirect-login"
	// DecisionRedirectHome sends an authenticated but unpermitted
	// principal to the safe landing route, never back to login
	DecisionRedirectHome Decision = "redirect-home"
)

// GuardState is the observable state behind a Decision
type GuardState string

const (
	GuardPending               GuardState = "pending"
	GuardAllowed               GuardState = "allowed"
	GuardDeniedUnauthenticated GuardState = "denied-unauthenticated"
	GuardDeniedForbidden       GuardState = "denied-forbidden"
)

// State maps a decision back to its guard state
func (d Decision) State() GuardState {
	switch d {
	case DecisionAllow:
		return GuardAllowed
	case DecisionRedirectLogin:
		return GuardDeniedUnauthenticated
	case DecisionRedirectHome:
		return GuardDeniedForbidden
	default:
		return GuardPending
	}
}

// Route is one guarded destination. An empty AllowedRoles set means any
// authenticated principal may enter; Public routes skip the guard
// entirely.
type Route struct {
	Name         string
	Path         string
	AllowedRoles []Role
	Public       bool
}

// Decide is the pure admission decision for a single navigation. Nothing
// is retained between calls; every navigation is evaluated fresh against
// the current principal.
func Decide(route Route, principal *Principal, resolving bool) Decision {
	if route.Public {
		return DecisionAllow
	}

	if resolving {
		return DecisionPending
	}

	if principal == nil {
		return DecisionRedirectLogin
	}

	if !RoleInSet(principal.Role(), route.AllowedRoles) {
		return DecisionRedirectHome
	}

	return DecisionAllow
}

// Navigator binds a route table to a session store and resolves redirect
// targets so screens only deal in route names.
type Navigator struct {
	store      *SessionStore
	logger     Logger
	routes     map[string]Route
	loginRoute string
	homeRoute  string
}

// NavigatorOption configures a Navigator
type NavigatorOption func(*Navigator)

// WithLoginRoute overrides the route anonymous visitors are sent to
func WithLoginRoute(name string) NavigatorOption {
	return func(n *Navigator) {
		if name != "" {
			n.loginRoute = name
		}
	}
}

// WithHomeRoute overrides the safe landing route for denied principals
func WithHomeRoute(name string) NavigatorOption {
	return func(n *Navigator) {
		if name != "" {
			n.homeRoute = name
		}
	}
}

// WithNavigatorLogger overrides the navigator logger
func WithNavigatorLogger(logger Logger) NavigatorOption {
	return func(n *Navigator) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// NewNavigator returns a Navigator reading session state from the store
func NewNavigator(store *SessionStore, opts ...NavigatorOption) *Navigator {
	navigator := &Navigator{
		store:      store,
		logger:     defLogger{},
		routes:     map[string]Route{},
		loginRoute: "login",
		homeRoute:  "home",
	}

	for _, opt := range opts {
		if opt != nil {
			opt(navigator)
		}
	}

	return navigator
}

// Register adds routes to the table, replacing same-named entries
func (n *Navigator) Register(routes ...Route) *Navigator {
	for _, route := range routes {
		n.routes[route.Name] = route
	}
	return n
}

// Lookup returns a registered route by name
func (n *Navigator) Lookup(name string) (Route, bool) {
	route, ok := n.routes[name]
	return route, ok
}

// Navigate evaluates the guard for the named route and resolves the route
// the caller should actually render: the requested one when allowed or
// pending, the login or home route on denial.
func (n *Navigator) Navigate(name string) (Route, Decision, error) {
	requested, ok := n.routes[name]
	if !ok {
		return Route{}, DecisionRedirectHome, errors.New("unknown route: "+name, errors.CategoryNotFound).
			WithCode(errors.CodeNotFound)
	}

	decision := Decide(requested, n.store.CurrentPrincipal(), n.store.Resolving())

	switch decision {
	case DecisionRedirectLogin:
		n.logger.Debug("navigation to %s denied: unauthenticated", name)
		return n.routes[n.loginRoute], decision, nil
	case DecisionRedirectHome:
		n.logger.Debug("navigation to %s denied: role not allowed", name)
		return n.routes[n.homeRoute], decision, nil
	default:
		return requested, decision, nil
	}
}
