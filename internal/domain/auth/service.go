package auth

import "context"

type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) (AuthResponse, error)
	Signin(ctx context.Context, req SigninRequest) (AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (AuthResponse, error)
	Me(ctx context.Context, userID string) (UserResponse, error)

	// GoogleRedirectURL returns the consent URL plus the state to store in a cookie.
	GoogleRedirectURL(ctx context.Context) (url string, state string, err error)

	// GoogleCallback exchanges the authorization code, provisioning the user on first sign-in.
	GoogleCallback(ctx context.Context, code string) (AuthResponse, error)
}
