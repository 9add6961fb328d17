package services_test

import (
	"context"
	"testing"

	"github.com/homefolio/expense_tracker_app/internal/apperrors"
	"github.com/homefolio/expense_tracker_app/internal/core/services"
	"github.com/homefolio/expense_tracker_app/internal/utils"
	"github.com/stretchr/testify/require"
)

const testAppToken = "test-app-token"

func TestAuthService_Login(t *testing.T) {
	hashedPassword, err := utils.HashPassword("household-secret")
	require.NoError(t, err)
	hashedAaditya, err := utils.HashPassword("aaditya")
	require.NoError(t, err)
	hashedArchana, err := utils.HashPassword("archana")
	require.NoError(t, err)

	service := services.NewAuthService(testAppToken, hashedPassword, []string{hashedAaditya, hashedArchana})
	ctx := context.Background()

	t.Run("valid credentials issue the shared token", func(t *testing.T) {
		cred, err := service.Login(ctx, "archana", "household-secret")
		require.NoError(t, err)
		require.Equal(t, testAppToken, cred.Token)
		require.Equal(t, "archana", cred.User)
		require.True(t, cred.ExpiresAt.IsZero())
	})

	t.Run("unknown username is rejected", func(t *testing.T) {
		cred, err := service.Login(ctx, "mallory", "household-secret")
		require.Nil(t, cred)
		require.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		cred, err := service.Login(ctx, "aaditya", "guess")
		require.Nil(t, cred)
		require.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("empty credentials are rejected", func(t *testing.T) {
		cred, err := service.Login(ctx, "", "")
		require.Nil(t, cred)
		require.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}
