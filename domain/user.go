package domain

import (
	"context"
	"time"
)

// User represents a user entity in the system.
// Users are registered by the account module; comments only read them.
type User struct {
	ID        int64     // Unique identifier
	Name      string    // Display name
	Username  string    // Login username (unique)
	Avatar    string    // Avatar URL
	Token     string    // Opaque session token issued at login
	CreatedAt time.Time // Account creation timestamp
	UpdatedAt time.Time // Last profile update timestamp
}

// UserSummary is the identity projection embedded in comment results.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
}

// Summary projects the user onto the fields a comment reader may see.
func (u User) Summary() *UserSummary {
	return &UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Avatar:   u.Avatar,
	}
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// GetByIDs retrieves the users that exist among ids, in no particular order.
	GetByIDs(ctx context.Context, ids []int64) ([]User, error)

	// GetByToken retrieves the user owning the stored session token.
	// Returns ErrNotFound if no user holds it.
	GetByToken(ctx context.Context, token string) (User, error)
}

// TokenResolver turns the bearer token a caller presents into a user id.
type TokenResolver interface {
	// ResolveUserID returns ErrUnauthorized for an empty or unknown token.
	ResolveUserID(ctx context.Context, token string) (int64, error)
}
