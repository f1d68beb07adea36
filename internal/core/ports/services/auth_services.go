package services

import (
	"context"

	"github.com/wisnuad/internship_mgmt_app/internal/dto"
)

// AuthSvcFacade issues access tokens for verified credentials.
type AuthSvcFacade interface {
	// Login verifies the credentials and returns a signed JWT with the user's
	// role claim.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
