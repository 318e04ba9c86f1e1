package domain

import (
	"errors"
	"time"
)

// RoleUser is the fixed role assigned to every account at registration.
const RoleUser = "user"

var ErrUsernameTaken = errors.New("username is already taken")
var ErrEmailTaken = errors.New("email is already in use")
var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrUserNotFound = errors.New("user not found")

// ErrUserVanished signals that credentials verified but the user record was
// gone by the time the projection lookup ran. Internally distinct from
// ErrInvalidCredentials; both render identically to callers.
var ErrUserVanished = errors.New("user no longer exists")

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
