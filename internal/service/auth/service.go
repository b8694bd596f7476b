package auth

import (
	"context"
	"errors"

	"github.com/Core-Staff/core-staff/internal/domain/auth"
	"github.com/Core-Staff/core-staff/internal/pkg/jwt"
	"github.com/Core-Staff/core-staff/internal/pkg/oauth"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo   auth.UserRepository
	jwtService jwt.Service
	google     oauth.GoogleService
}

func NewAuthService(userRepo auth.UserRepository, jwtService jwt.Service, google oauth.GoogleService) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		google:     google,
	}
}

// Signup implements auth.AuthService.
func (s *AuthServiceImpl) Signup(ctx context.Context, req auth.SignupRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return auth.AuthResponse{}, auth.ErrUserExists
	} else if !errors.Is(err, auth.ErrUserNotFound) {
		return auth.AuthResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.AuthResponse{}, err
	}
	passwordHash := string(hash)

	user, err := s.userRepo.Create(ctx, auth.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: &passwordHash,
	})
	if err != nil {
		return auth.AuthResponse{}, err
	}

	return s.issueTokens(user)
}

// Signin implements auth.AuthService.
func (s *AuthServiceImpl) Signin(ctx context.Context, req auth.SigninRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.AuthResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, err
	}

	// A Google-only account has no password to check against.
	if user.PasswordHash == nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.AuthResponse, error) {
	userID, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.AuthResponse{}, auth.ErrInvalidToken
		}
		return auth.AuthResponse{}, err
	}

	return s.issueTokens(user)
}

// Me implements auth.AuthService.
func (s *AuthServiceImpl) Me(ctx context.Context, userID string) (auth.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.UserResponse{}, err
	}
	return auth.ToUserResponse(user), nil
}

// GoogleRedirectURL implements auth.AuthService.
func (s *AuthServiceImpl) GoogleRedirectURL(ctx context.Context) (string, string, error) {
	state := s.google.GenerateState()
	if state == "" {
		return "", "", auth.ErrInvalidOAuthState
	}
	return s.google.RedirectURL(state), state, nil
}

// GoogleCallback implements auth.AuthService. Matches by Google ID first,
// then by email for accounts created with a password, creating the user on
// first sign-in.
func (s *AuthServiceImpl) GoogleCallback(ctx context.Context, code string) (auth.AuthResponse, error) {
	token, err := s.google.Exchange(ctx, code)
	if err != nil {
		return auth.AuthResponse{}, err
	}

	profile, err := s.google.FetchProfile(ctx, token)
	if err != nil {
		return auth.AuthResponse{}, err
	}
	if profile.Email == "" || !profile.VerifiedEmail {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByGoogleID(ctx, profile.GoogleID)
	if err == nil {
		return s.issueTokens(user)
	}
	if !errors.Is(err, auth.ErrUserNotFound) {
		return auth.AuthResponse{}, err
	}

	user, err = s.userRepo.GetByEmail(ctx, profile.Email)
	if err == nil {
		if linkErr := s.userRepo.LinkGoogleID(ctx, user.ID, profile.GoogleID); linkErr != nil {
			return auth.AuthResponse{}, linkErr
		}
		return s.issueTokens(user)
	}
	if !errors.Is(err, auth.ErrUserNotFound) {
		return auth.AuthResponse{}, err
	}

	googleID := profile.GoogleID
	user, err = s.userRepo.Create(ctx, auth.User{
		ID:       uuid.NewString(),
		Email:    profile.Email,
		GoogleID: &googleID,
	})
	if err != nil {
		return auth.AuthResponse{}, err
	}

	return s.issueTokens(user)
}

func (s *AuthServiceImpl) issueTokens(user auth.User) (auth.AuthResponse, error) {
	accessToken, _, err := s.jwtService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return auth.AuthResponse{}, err
	}
	refreshToken, _, err := s.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		return auth.AuthResponse{}, err
	}

	return auth.AuthResponse{
		User:         auth.ToUserResponse(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
