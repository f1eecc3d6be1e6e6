package service_test

import (
	"context"
	"testing"
	"time"

	"moviehub/internal/config"
	"moviehub/internal/models"
	"moviehub/internal/repository"
	"moviehub/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) service.AuthService {
	userRepo := repository.NewUserRepository(db)
	return service.NewAuthService(
		service.NewUserService(userRepo),
		userRepo,
		repository.NewRefreshTokenRepository(db),
		&config.Config{
			JWTSecret:       "test-secret-that-is-long-enough!",
			AccessTokenTTL:  time.Minute,
			RefreshTokenTTL: time.Hour,
		},
	)
}

func registerUser(t *testing.T, svc service.AuthService, username, password string) *models.UserProfile {
	t.Helper()
	user := &models.UserProfile{
		FirstName: "Test",
		Username:  username,
		Email:     username + "@example.com",
		Age:       25,
	}
	created, err := svc.Register(context.Background(), user, password)
	require.NoError(t, err)
	return created
}

func TestAuthService_LoginAndValidate(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	registerUser(t, svc, "alice", "correct-horse")

	access, refresh, user, err := svc.Login(ctx, "alice", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	require.NotNil(t, user)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	registerUser(t, svc, "bob", "right-password")

	_, _, _, err := svc.Login(ctx, "bob", "wrong-password")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, _, _, err = svc.Login(ctx, "nobody", "whatever")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthService_RefreshAccessToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	user := registerUser(t, svc, "carol", "pass-phrase")

	_, refresh, _, err := svc.Login(ctx, "carol", "pass-phrase")
	require.NoError(t, err)

	access, err := svc.RefreshAccessToken(ctx, refresh)
	require.NoError(t, err)
	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	_, err = svc.RefreshAccessToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.ValidateToken("garbage.token.value")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}
