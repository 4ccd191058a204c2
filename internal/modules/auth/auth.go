package auth

import (
	"context"
	"errors"

	"github.com/dgrijalva/jwt-go"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AdminSubject is the token subject granted to operators.
const AdminSubject = "admin"

// Service defines the interface for operator authentication.
type Service interface {
	Login(ctx context.Context, password string) (string, error)
	Verify(token string) (*jwt.StandardClaims, error)
}
