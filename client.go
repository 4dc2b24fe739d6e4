package backoffice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-errors"
)

const defaultRequestTimeout = time.Second * 15

// TokenSource supplies the opaque session token attached to authenticated
// requests. An empty string means no session.
type TokenSource func() string

// Client is the stateless HTTP implementation of ResourceClient
type Client struct {
	baseURL string
	http    *http.Client
	logger  Logger
	token   TokenSource
}

var _ ResourceClient = (*Client)(nil)

// ClientOption configures a Client
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying http.Client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

// WithClientLogger overrides the client logger
func WithClientLogger(logger Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTokenSource attaches a session token provider. Requests carry a
// bearer Authorization header whenever the source returns a token.
func WithTokenSource(source TokenSource) ClientOption {
	return func(c *Client) {
		if source != nil {
			c.token = source
		}
	}
}

// NewClient returns a Client against the given API base URL
func NewClient(baseURL string, opts ...ClientOption) *Client {
	client := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: defaultRequestTimeout},
		logger:  defLogger{},
		token:   func() string { return "" },
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client
}

// authResponse is the wire shape of the authentication endpoints
type authResponse struct {
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
	User    User   `json:"user"`
}

// pageResponse is the wire shape of paginated collections
type pageResponse struct {
	Content       []User `json:"content"`
	TotalElements int    `json:"totalElements"`
	TotalPages    int    `json:"totalPages"`
	Page          int    `json:"page"`
	Size          int    `json:"size"`
}

// apiError is the backend error envelope
type apiError struct {
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func (c *Client) Register(ctx context.Context, payload RegisterPayload) (*LoginResult, error) {
	if payload.Role == "" {
		payload.Role = RoleCustomer
	}

	response := &authResponse{}
	if err := c.do(ctx, http.MethodPost, "/users/auth/register", nil, payload, response); err != nil {
		return nil, err
	}

	return &LoginResult{User: response.User, Token: response.Token}, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	response := &authResponse{}
	if err := c.do(ctx, http.MethodPost, "/users/auth/login", nil, payload, response); err != nil {
		return nil, err
	}

	return &LoginResult{User: response.User, Token: response.Token}, nil
}

func (c *Client) Profile(ctx context.Context) (*User, error) {
	user := &User{}
	if err := c.do(ctx, http.MethodGet, "/users/profile", nil, nil, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Client) ListUsers(ctx context.Context, query Query) (*Page[User], error) {
	response := &pageResponse{}
	if err := c.do(ctx, http.MethodGet, "/users/admin/users", query.Values(), nil, response); err != nil {
		return nil, err
	}

	return &Page[User]{
		Content:       response.Content,
		TotalElements: response.TotalElements,
		TotalPages:    response.TotalPages,
		Query:         query,
	}, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	user := &User{}
	if err := c.do(ctx, http.MethodGet, "/users/admin/"+url.PathEscape(id), nil, nil, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Client) UpdateUser(ctx context.Context, user User) (*User, error) {
	updated := &User{}
	path := "/users/admin/update/" + url.PathEscape(user.ID)
	if err := c.do(ctx, http.MethodPut, path, nil, user, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Client) UpdateProfile(ctx context.Context, user User, currentPassword string) (*LoginResult, error) {
	params := url.Values{}
	params.Set("currentPassword", currentPassword)

	response := &authResponse{}
	if err := c.do(ctx, http.MethodPost, "/users/profile/update", params, user, response); err != nil {
		return nil, err
	}

	return &LoginResult{User: response.User, Token: response.Token}, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/admin/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, errors.CategoryInternal, "unable to encode request body")
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "unable to build request")
	}

	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	if token := c.token(); token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := c.http.Do(request)
	if err != nil {
		c.logger.Error("request failed: %s %s: %v", method, path, err)
		return remoteFailure(err, method, path)
	}
	defer response.Body.Close()

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(response.Body).Decode(out); err != nil {
			return errors.Wrap(err, errors.CategoryInternal, "unable to decode response body")
		}
		return nil
	}

	return c.mapErrorResponse(method, path, response)
}

func (c *Client) mapErrorResponse(method, path string, response *http.Response) error {
	payload := apiError{}
	if raw, err := io.ReadAll(io.LimitReader(response.Body, 1<<16)); err == nil && len(raw) > 0 {
		// Best effort decode, error bodies are not guaranteed to be JSON
		_ = json.Unmarshal(raw, &payload)
	}

	c.logger.Debug("api error: %s %s status=%d message=%q", method, path, response.StatusCode, payload.Message)

	switch response.StatusCode {
	case http.StatusUnauthorized:
		return cloneWithMessage(ErrInvalidCredentials, payload.Message)
	case http.StatusForbidden:
		return cloneWithMessage(ErrNotAuthorized, payload.Message)
	case http.StatusNotFound:
		return cloneWithMessage(ErrUserNotFound, payload.Message)
	case http.StatusConflict:
		return conflictError(payload.Message)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return validationError(payload)
	default:
		clone := cloneWithMessage(ErrRemoteUnavailable, payload.Message)
		var richErr *errors.Error
		if errors.As(clone, &richErr) {
			return richErr.WithMetadata(map[string]any{"status": response.StatusCode})
		}
		return clone
	}
}

// conflictError distinguishes the backend's duplicate email and duplicate
// telephone responses by message text, the envelope has no machine code
func conflictError(message string) error {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "email"):
		return cloneWithMessage(ErrDuplicateEmail, message)
	case strings.Contains(lower, "tel"):
		return cloneWithMessage(ErrDuplicateTelephone, message)
	default:
		return errors.New(nonEmpty(message, "duplicate resource"), errors.CategoryConflict).
			WithCode(errors.CodeConflict)
	}
}

func validationError(payload apiError) error {
	err := errors.New(nonEmpty(payload.Message, "validation failed"), errors.CategoryValidation).
		WithCode(errors.CodeBadRequest)
	if len(payload.Errors) > 0 {
		fields := make(map[string]any, len(payload.Errors))
		for field, message := range payload.Errors {
			fields[field] = message
		}
		return err.WithMetadata(map[string]any{"fields": fields})
	}
	return err
}

func remoteFailure(err error, method, path string) error {
	clone := ErrRemoteUnavailable.Clone()
	if clone == nil {
		return ErrRemoteUnavailable
	}
	clone.Message = fmt.Sprintf("request failed: %s %s", method, path)
	clone.Source = err
	return clone
}

func cloneWithMessage(base *errors.Error, message string) error {
	clone := base.Clone()
	if clone == nil {
		return base
	}
	if message != "" {
		clone.Message = message
	}
	clone.Source = base
	return clone
}

func nonEmpty(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
