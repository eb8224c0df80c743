package auth

import (
	"context"
	"errors"
	"fmt"

	jwxjwt "github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/tipl/employee-monitoring/internal/domain/auth"
	"github.com/tipl/employee-monitoring/internal/domain/user"
	"github.com/tipl/employee-monitoring/internal/pkg/database"
	"github.com/tipl/employee-monitoring/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db         *database.DB
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(db *database.DB, userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		db:         db,
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, string, int64, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, "", 0, err
	}

	u, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Same error as a bad password so login cannot probe for accounts.
			return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to resolve user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	return a.issueTokens(u)
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, string, int64, error) {
	userID, err := a.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwxjwt.ErrTokenExpired()) {
			return auth.LoginResponse{}, "", 0, auth.ErrTokenExpired
		}
		return auth.LoginResponse{}, "", 0, auth.ErrInvalidToken
	}

	u, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, "", 0, auth.ErrUserNotFound
		}
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to resolve user: %w", err)
	}

	// Rotate: the presented token is dead regardless of what happens next.
	a.jwtService.RevokeToken(refreshToken)

	return a.issueTokens(u)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		a.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context) (auth.UserResponse, error) {
	session, err := auth.SessionFromContext(ctx)
	if err != nil {
		return auth.UserResponse{}, err
	}

	u, err := a.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.UserResponse{}, auth.ErrUserNotFound
		}
		return auth.UserResponse{}, fmt.Errorf("failed to resolve user: %w", err)
	}

	return mapUserToResponse(u), nil
}

func (a *AuthServiceImpl) issueTokens(u user.User) (auth.LoginResponse, string, int64, error) {
	accessToken, accessExpiresAt, err := a.jwtService.GenerateAccessToken(u.ID, u.Name, u.Role, u.EmployeeID)
	if err != nil {
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := a.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	resp := auth.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   accessExpiresAt,
		User:        mapUserToResponse(u),
	}

	return resp, refreshToken, refreshExpiresAt, nil
}

func mapUserToResponse(u user.User) auth.UserResponse {
	return auth.UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       string(u.Role),
		EmployeeID: u.EmployeeID,
	}
}
