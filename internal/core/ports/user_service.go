package ports

import (
	"context"

	"github.com/agrovia/farm-management/internal/core/domain"
)

// CreateUserInput is the admin-only user creation payload. This is the only
// path through which an admin role can be assigned.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Phone    string
	Address  string
	Country  string
	State    string
}

// UpdateUserInput carries an admin user update. Empty fields are left unchanged.
type UpdateUserInput struct {
	ID      string
	Name    string
	Role    string
	Phone   string
	Address string
	Country string
	State   string
}

// UpdateProfileInput carries a user's own profile update. Role and email are
// not updatable through this path.
type UpdateProfileInput struct {
	UserID  string
	Name    string
	Phone   string
	Address string
	Country string
	State   string
}

// UserService covers profile self-service and admin user management.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error)

	ListUsers(ctx context.Context) ([]*domain.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}
