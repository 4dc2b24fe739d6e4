package backoffice_test

import (
	"context"

	"github.com/goliatone/go-backoffice"
	"github.com/stretchr/testify/mock"
)

// MockResourceClient implements backoffice.ResourceClient
type MockResourceClient struct {
	mock.Mock
}

var _ backoffice.ResourceClient = (*MockResourceClient)(nil)

func (m *MockResourceClient) Register(ctx context.Context, payload backoffice.RegisterPayload) (*backoffice.LoginResult, error) {
	args := m.Called(ctx, payload)
	var result *backoffice.LoginResult
	if v := args.Get(0); v != nil {
		result = v.(*backoffice.LoginResult)
	}
	return result, args.Error(1)
}

func (m *MockResourceClient) Login(ctx context.Context, email, password string) (*backoffice.LoginResult, error) {
	args := m.Called(ctx, email, password)
	var result *backoffice.LoginResult
	if v := args.Get(0); v != nil {
		result = v.(*backoffice.LoginResult)
	}
	return result, args.Error(1)
}

func (m *MockResourceClient) Profile(ctx context.Context) (*backoffice.User, error) {
	args := m.Called(ctx)
	var user *backoffice.User
	if v := args.Get(0); v != nil {
		user = v.(*backoffice.User)
	}
	return user, args.Error(1)
}

func (m *MockResourceClient) ListUsers(ctx context.Context, query backoffice.Query) (*backoffice.Page[backoffice.User], error) {
	args := m.Called(ctx, query)
	var page *backoffice.Page[backoffice.User]
	if v := args.Get(0); v != nil {
		page = v.(*backoffice.Page[backoffice.User])
	}
	return page, args.Error(1)
}

func (m *MockResourceClient) GetUser(ctx context.Context, id string) (*backoffice.User, error) {
	args := m.Called(ctx, id)
	var user *backoffice.User
	if v := args.Get(0); v != nil {
		user = v.(*backoffice.User)
	}
	return user, args.Error(1)
}

func (m *MockResourceClient) UpdateUser(ctx context.Context, user backoffice.User) (*backoffice.User, error) {
	args := m.Called(ctx, user)
	var updated *backoffice.User
	if v := args.Get(0); v != nil {
		updated = v.(*backoffice.User)
	}
	return updated, args.Error(1)
}

func (m *MockResourceClient) UpdateProfile(ctx context.Context, user backoffice.User, currentPassword string) (*backoffice.LoginResult, error) {
	args := m.Called(ctx, user, currentPassword)
	var result *backoffice.LoginResult
	if v := args.Get(0); v != nil {
		result = v.(*backoffice.LoginResult)
	}
	return result, args.Error(1)
}

func (m *MockResourceClient) DeleteUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
