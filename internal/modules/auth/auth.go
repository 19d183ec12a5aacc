package auth

import (
	"context"

	"github.com/dgrijalva/jwt-go"

	"github.com/stocklane/stocklane-backend/internal/modules/user"
)

// Service defines the interface for authentication-related business logic.
type Service interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// Claims are the JWT claims carried by an access token.
type Claims struct {
	jwt.StandardClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

// Identity is the authenticated caller attached to a request context.
type Identity struct {
	UserID string
	Email  string
	Role   user.Role
}
