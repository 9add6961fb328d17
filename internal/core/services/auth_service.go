package services

import (
	"context"
	"log/slog"

	"github.com/homefolio/expense_tracker_app/internal/apperrors"
	"github.com/homefolio/expense_tracker_app/internal/core/domain"
	portssvc "github.com/homefolio/expense_tracker_app/internal/core/ports/services"
	"github.com/homefolio/expense_tracker_app/internal/utils"
)

// authService implements the AuthSvcFacade interface. It validates the
// shared household credentials against pre-computed bcrypt hashes and
// issues the application's static bearer credential.
type authService struct {
	BaseService
	appToken        string
	hashedPassword  string
	hashedUsernames []string
}

// NewAuthService creates a new auth service
func NewAuthService(appToken, hashedPassword string, hashedUsernames []string) portssvc.AuthSvcFacade {
	return &authService{
		appToken:        appToken,
		hashedPassword:  hashedPassword,
		hashedUsernames: hashedUsernames,
	}
}

// Ensure authService implements the AuthSvcFacade interface
var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login checks the username against the hashed username set and the
// password against the shared password hash. bcrypt verification is the
// deliberate cost factor here; both checks run before deciding so a
// rejected username costs the same as a rejected password.
func (s *authService) Login(ctx context.Context, username, password string) (*domain.Credential, error) {
	userOK := utils.CheckAnyPasswordHash(username, s.hashedUsernames)
	passOK := utils.CheckPasswordHash(password, s.hashedPassword)
	if !userOK || !passOK {
		s.LogInfo(ctx, "Login rejected", slog.String("username", username))
		return nil, apperrors.ErrUnauthorized
	}

	s.LogInfo(ctx, "Login succeeded", slog.String("username", username))
	return &domain.Credential{
		Token: s.appToken,
		User:  username,
		// ExpiresAt stays zero: the shared token never expires.
	}, nil
}
