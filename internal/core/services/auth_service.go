package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/wisnuad/internship_mgmt_app/internal/apperrors"
	portsrepo "github.com/wisnuad/internship_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/wisnuad/internship_mgmt_app/internal/core/ports/services"
	"github.com/wisnuad/internship_mgmt_app/internal/dto"
	"github.com/wisnuad/internship_mgmt_app/internal/middleware"
	"github.com/wisnuad/internship_mgmt_app/internal/utils"
)

// authService verifies credentials and issues access tokens.
type authService struct {
	userRepo    portsrepo.UserReader
	jwtSecret   string
	tokenExpiry time.Duration
	issuer      string
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo portsrepo.UserReader, jwtSecret string, tokenExpiry time.Duration, issuer string) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:    userRepo,
		jwtSecret:   jwtSecret,
		tokenExpiry: tokenExpiry,
		issuer:      issuer,
	}
}

// Ensure authService implements the portssvc.AuthSvcFacade interface
var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies the credentials and returns a signed JWT carrying the
// user's role claim. Unknown email and wrong password are reported
// identically so the endpoint does not leak which accounts exist.
// Implements portssvc.AuthSvcFacade
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, passwordHash, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
		}
		logger.Error("Failed to find user by email", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to verify credentials: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, passwordHash) {
		logger.Warn("Login attempt with wrong password", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}

	token, err := utils.GenerateJWT(user.UserID, string(user.Role), s.jwtSecret, s.tokenExpiry, s.issuer)
	if err != nil {
		logger.Error("Failed to generate JWT", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	return &dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	}, nil
}
