package user

import "context"

// UserService defines user directory and profile business logic.
type UserService interface {
	// Profile returns the caller's own account.
	Profile(ctx context.Context) (UserResponse, error)

	// List returns the full employee directory (admin).
	List(ctx context.Context) ([]UserResponse, error)

	// ListApprovers returns users eligible to receive OT requests.
	ListApprovers(ctx context.Context) ([]UserResponse, error)
}
