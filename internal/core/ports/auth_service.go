package ports

import "context"

// AuthResult is the projection returned after a successful registration or
// login. It never carries the password hash.
type AuthResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// AuthService defines the registration and login use cases.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
}
