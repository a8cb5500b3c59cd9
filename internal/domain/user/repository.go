package user

import "context"

// UserRepository defines data access methods for users.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)

	// List returns all users, for the admin employee directory.
	List(ctx context.Context) ([]User, error)

	// ListApprovers returns users eligible to receive OT requests.
	ListApprovers(ctx context.Context) ([]User, error)
}
