package domain

import (
	"context"
	"errors"
)

var (
	ErrEmailRequired  = errors.New("email is required")
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrInvalidRole    = errors.New("role must be editor or owner")
	ErrAlreadyInvited = errors.New("this email has already been invited")
	ErrMemberNotFound = errors.New("team member not found")
)

type InviteRequest struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

type Service interface {
	Invite(ctx context.Context, userID int64, req InviteRequest) (*TeamMember, error)
	List(ctx context.Context, userID int64) ([]TeamMember, error)
	Remove(ctx context.Context, userID, memberID int64) error
}

type Repository interface {
	Create(ctx context.Context, member *TeamMember) error
	ListByOwner(ctx context.Context, userID int64) ([]TeamMember, error)
	Delete(ctx context.Context, userID, memberID int64) error
}
