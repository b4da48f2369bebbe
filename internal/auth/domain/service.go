package domain

import "context"

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	// Filled in by the transport layer, never bound from the body.
	UserAgent string `json:"-"`
	IPAddress string `json:"-"`
}

// LoginResult carries the raw session token back to the transport layer.
// The token itself is never persisted.
type LoginResult struct {
	User    *User
	Token   string
	Session *Session
}

type Service interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, rawToken string) error

	// Authenticate resolves a raw session token to its user. Expired and
	// revoked sessions are rejected.
	Authenticate(ctx context.Context, rawToken string) (*User, *Session, error)
}
