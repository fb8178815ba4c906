package auth

import (
	"context"
	"errors"
	"fmt"

	jwxjwt "github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/vetanhr/payroll-backend-go/internal/domain/auth"
	"github.com/vetanhr/payroll-backend-go/internal/domain/user"
	"github.com/vetanhr/payroll-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo user.UserRepository
	jwt      jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		jwt:      jwtService,
	}
}

// Login verifies the credentials and issues an access token plus a refresh
// token. The refresh token and its expiry are returned separately so the
// handler can set it as an HttpOnly cookie.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, string, int64, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, "", 0, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to look up user: %w", err)
	}

	if !u.IsActive {
		return auth.LoginResponse{}, "", 0, user.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	accessToken, accessExp, err := s.jwt.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwt.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	resp := auth.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   accessExp,
		User: auth.UserResponse{
			ID:         u.ID,
			Email:      u.Email,
			FullName:   u.FullName,
			Role:       string(u.Role),
			EmployeeID: u.EmployeeID,
		},
	}
	return resp, refreshToken, refreshExp, nil
}

// Refresh exchanges a valid refresh token for a fresh access token.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	if s.jwt.IsTokenRevoked(refreshToken) {
		return auth.RefreshResponse{}, auth.ErrRefreshTokenRevoked
	}

	claims, err := s.parseRefreshToken(refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, err
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.RefreshResponse{}, auth.ErrInvalidToken
		}
		return auth.RefreshResponse{}, fmt.Errorf("failed to look up user: %w", err)
	}
	if !u.IsActive {
		return auth.RefreshResponse{}, user.ErrUserInactive
	}

	accessToken, expiresAt, err := s.jwt.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.RefreshResponse{AccessToken: accessToken, ExpiresAt: expiresAt}, nil
}

// Logout revokes the refresh token so it can no longer mint access tokens.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return auth.ErrInvalidToken
	}
	s.jwt.RevokeToken(refreshToken)
	return nil
}

func (s *AuthServiceImpl) parseRefreshToken(tokenString string) (map[string]interface{}, error) {
	token, err := s.jwt.JWTAuth().Decode(tokenString)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	if err := jwxjwt.Validate(token); err != nil {
		if errors.Is(err, jwxjwt.ErrTokenExpired()) {
			return nil, auth.ErrTokenExpired
		}
		return nil, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(context.Background())
	if err != nil {
		return nil, auth.ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return nil, auth.ErrInvalidToken
	}
	return claims, nil
}
