package auth

import "context"

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByGoogleID(ctx context.Context, googleID string) (User, error)
	Create(ctx context.Context, user User) (User, error)

	// LinkGoogleID attaches a Google account to an existing user.
	LinkGoogleID(ctx context.Context, id, googleID string) error
}
