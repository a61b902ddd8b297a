package http

import (
	"time"

	"github.com/google/uuid"
)

// ErrorCode classifies an error response.
type ErrorCode string

const (
	BADREQUEST    ErrorCode = "BAD_REQUEST"
	UNAUTHORIZED  ErrorCode = "UNAUTHORIZED"
	NOTFOUND      ErrorCode = "NOT_FOUND"
	CONFLICT      ErrorCode = "CONFLICT"
	INTERNALERROR ErrorCode = "INTERNAL_ERROR"
)

// Error is the error detail of an ErrorResp.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResp is the body of every non-2xx response.
type ErrorResp struct {
	Error Error `json:"error"`
}

// CredentialsReq is the body of the register and login requests.
type CredentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is the public view of an account. The password hash is never exposed.
type User struct {
	Id                uuid.UUID  `json:"id"`
	Email             string     `json:"email"`
	AccessFailedCount int        `json:"access_failed_count"`
	LockoutEnd        *time.Time `json:"lockout_end,omitempty"`
	Deactivated       bool       `json:"deactivated"`
	DeactivatedAt     *time.Time `json:"deactivated_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// ListUsersResp is the body of the list users response.
type ListUsersResp struct {
	Items []User `json:"items"`
}

// LoginResp is the body of a successful login.
type LoginResp struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        User      `json:"user"`
}

// AssignRoleReq is the body of the assign role request.
type AssignRoleReq struct {
	Name string `json:"name"`
}

// Role is a role attached to a user.
type Role struct {
	Id     uuid.UUID  `json:"id"`
	Name   string     `json:"name"`
	UserId *uuid.UUID `json:"user_id,omitempty"`
}

// ListRolesResp is the body of the list roles response.
type ListRolesResp struct {
	Items []Role `json:"items"`
}
