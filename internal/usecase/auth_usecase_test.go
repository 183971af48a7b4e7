package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuchikomi/pkg/errors"
)

func TestRegisterAndLogin(t *testing.T) {
	userRepo := newMemUserRepo()
	uc := NewAuthUseCase(userRepo, newFakeAuthClient())
	ctx := context.Background()

	result, err := uc.Register(ctx, RegisterInput{
		Email:    "aya@example.com",
		Password: "correct-horse",
		Name:     "Aya",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "user", result.User.Role)

	// Duplicate email is rejected before touching the identity provider.
	_, err = uc.Register(ctx, RegisterInput{
		Email:    "aya@example.com",
		Password: "other",
		Name:     "Imposter",
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	login, err := uc.Login(ctx, "aya@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, login.User.ID)

	_, err = uc.Login(ctx, "nobody@example.com", "whatever")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestLogoutRevokesTokens(t *testing.T) {
	authClient := newFakeAuthClient()
	uc := NewAuthUseCase(newMemUserRepo(), authClient)

	require.NoError(t, uc.Logout(context.Background(), "uid-1"))
	assert.Equal(t, []string{"uid-1"}, authClient.revoked)
}
