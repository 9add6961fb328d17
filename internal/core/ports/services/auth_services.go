package services

import (
	"context"

	"github.com/homefolio/expense_tracker_app/internal/core/domain"
)

// AuthSvcFacade validates the shared household credentials and issues
// the application bearer credential.
type AuthSvcFacade interface {
	// Login checks username and password against the configured bcrypt
	// hashes. Returns apperrors.ErrUnauthorized when either check fails.
	Login(ctx context.Context, username, password string) (*domain.Credential, error)
}
