package ports

import (
	"context"
	"time"

	"github.com/agrovia/farm-management/internal/core/domain"
)

// SignupInput carries the public registration payload. There is deliberately
// no role field: self-registration always produces a client account.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
	Country  string
	State    string
}

// AuthService implements credential verification, token issuance, and sign-out.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token together
	// with the authenticated user. Unknown email and wrong password both
	// return domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes the token with the given ID until its natural expiry.
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}
