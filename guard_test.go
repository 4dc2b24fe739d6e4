package backoffice_test

import (
	"context"
	"testing"
	"time"

	"github.com/goliatone/go-backoffice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDecide(t *testing.T) {
	adminRoute := backoffice.Route{
		Name:         "admin.users",
		Path:         "/admin/users",
		AllowedRoles: []backoffice.Role{backoffice.RoleAdmin},
	}
	accountRoute := backoffice.Route{Name: "account", Path: "/account"}
	loginRoute := backoffice.Route{Name: "login", Path: "/login", Public: true}

	admin := &backoffice.Principal{User: backoffice.User{ID: "u-1", Role: backoffice.RoleAdmin}}
	customer := &backoffice.Principal{User: backoffice.User{ID: "u-2", Role: backoffice.RoleCustomer}}

	tests := []struct {
		name      string
		route     backoffice.Route
		principal *backoffice.Principal
		resolving bool
		expected  backoffice.Decision
	}{
		{"admin reaches admin route", adminRoute, admin, false, backoffice.DecisionAllow},
		{"customer is sent home, not to login", adminRoute, customer, false, backoffice.DecisionRedirectHome},
		{"anonymous is sent to login", adminRoute, nil, false, backoffice.DecisionRedirectLogin},
		{"resolving session is pending", adminRoute, nil, true, backoffice.DecisionPending},
		{"unrestricted route admits any authenticated principal", accountRoute, customer, false, backoffice.DecisionAllow},
		{"unrestricted route still requires authentication", accountRoute, nil, false, backoffice.DecisionRedirectLogin},
		{"public route skips the guard", loginRoute, nil, false, backoffice.DecisionAllow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := backoffice.Decide(tt.route, tt.principal, tt.resolving)
			assert.Equal(t, tt.expected, decision)
		})
	}
}

func TestDecisionState(t *testing.T) {
	assert.Equal(t, backoffice.GuardAllowed, backoffice.DecisionAllow.State())
	assert.Equal(t, backoffice.GuardDeniedUnauthenticated, backoffice.DecisionRedirectLogin.State())
	assert.Equal(t, backoffice.GuardDeniedForbidden, backoffice.DecisionRedirectHome.State())
	assert.Equal(t, backoffice.GuardPending, backoffice.DecisionPending.State())
}

func newTestNavigator(store *backoffice.SessionStore) *backoffice.Navigator {
	return backoffice.NewNavigator(store).Register(
		backoffice.Route{Name: "login", Path: "/login", Public: true},
		backoffice.Route{Name: "home", Path: "/home", Public: true},
		backoffice.Route{Name: "account", Path: "/account"},
		backoffice.Route{
			Name:         "admin.users",
			Path:         "/admin/users",
			AllowedRoles: []backoffice.Role{backoffice.RoleAdmin},
		},
	)
}

func TestNavigatorRedirects(t *testing.T) {
	client := &MockResourceClient{}
	store := backoffice.NewSessionStore(client)
	navigator := newTestNavigator(store)

	t.Run("anonymous lands on login", func(t *testing.T) {
		route, decision, err := navigator.Navigate("admin.users")
		require.NoError(t, err)
		assert.Equal(t, backoffice.DecisionRedirectLogin, decision)
		assert.Equal(t, "/login", route.Path)
	})

	token := makeToken(t, "cliente@example.com", backoffice.RoleCustomer, time.Now().Add(time.Hour))
	client.On("Login", mock.Anything, mock.Anything, mock.Anything).Return(&backoffice.LoginResult{
		User:  backoffice.User{ID: "u-2", Role: backoffice.RoleCustomer},
		Token: token,
	}, nil)
	_, err := store.Login(context.Background(), "cliente@example.com", "secret")
	require.NoError(t, err)

	t.Run("forbidden role lands on home", func(t *testing.T) {
		route, decision, err := navigator.Navigate("admin.users")
		require.NoError(t, err)
		assert.Equal(t, backoffice.DecisionRedirectHome, decision)
		assert.Equal(t, "/home", route.Path)
	})

	t.Run("authenticated principal reaches unrestricted route", func(t *testing.T) {
		route, decision, err := navigator.Navigate("account")
		require.NoError(t, err)
		assert.Equal(t, backoffice.DecisionAllow, decision)
		assert.Equal(t, "/account", route.Path)
	})

	t.Run("unknown route errors", func(t *testing.T) {
		_, _, err := navigator.Navigate("nope")
		assert.Error(t, err)
		assert.True(t, backoffice.IsNotFound(err))
	})
}

func TestNavigatorDecisionsAreRecomputedFresh(t *testing.T) {
	client := &MockResourceClient{}
	store := backoffice.NewSessionStore(client)
	navigator := newTestNavigator(store)

	_, decision, err := navigator.Navigate("admin.users")
	require.NoError(t, err)
	assert.Equal(t, backoffice.DecisionRedirectLogin, decision)

	token := makeToken(t, "admin@example.com", backoffice.RoleAdmin, time.Now().Add(time.Hour))
	client.On("Login", mock.Anything, mock.Anything, mock.Anything).Return(&backoffice.LoginResult{
		User:  backoffice.User{ID: "u-1", Role: backoffice.RoleAdmin},
		Token: token,
	}, nil)
	_, err = store.Login(context.Background(), "admin@example.com", "secret")
	require.NoError(t, err)

	route, decision, err := navigator.Navigate("admin.users")
	require.NoError(t, err)
	assert.Equal(t, backoffice.DecisionAllow, decision)
	assert.Equal(t, "/admin/users", route.Path)

	store.Logout()

	_, decision, err = navigator.Navigate("admin.users")
	require.NoError(t, err)
	assert.Equal(t, backoffice.DecisionRedirectLogin, decision)
}
