package auth

import (
	"context"

	"github.com/worktrail-hq/attendance-backend-go/internal/domain/user"
)

// AuthService defines authentication business logic.
type AuthService interface {
	// Register creates a new user account with the default role.
	Register(ctx context.Context, req RegisterRequest) (user.UserResponse, error)

	// Login verifies credentials and issues access + refresh tokens.
	Login(ctx context.Context, req LoginRequest, session SessionTrackingRequest) (TokenResponse, error)

	// Refresh rotates a valid refresh token into a new token pair.
	Refresh(ctx context.Context, req RefreshTokenRequest, session SessionTrackingRequest) (TokenResponse, error)

	// Logout revokes the given refresh token.
	Logout(ctx context.Context, req RefreshTokenRequest) error
}
