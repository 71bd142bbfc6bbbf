package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"staffdesk/internal/config"
	"staffdesk/internal/domain"
)

func newTestAuthService(t *testing.T, users ...*domain.User) AuthService {
	t.Helper()
	return NewAuthService(newFakeUserRepo(users...), config.JWTConfig{
		Secret:             "test-secret-not-for-production",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 24 * time.Hour,
		Issuer:             "staffdesk",
	})
}

func testUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           uuid.New(),
		Email:        "admin@staffdesk.in",
		PasswordHash: string(hash),
		FullName:     "Admin",
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
}

func TestLogin(t *testing.T) {
	user := testUser(t, "correct horse")
	svc := newTestAuthService(t, user)

	pair, err := svc.Login(context.Background(), LoginInput{Email: user.Email, Password: "correct horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	user := testUser(t, "correct horse")
	svc := newTestAuthService(t, user)

	_, err := svc.Login(context.Background(), LoginInput{Email: user.Email, Password: "battery staple"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), LoginInput{Email: "nobody@staffdesk.in", Password: "whatever"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	user := testUser(t, "correct horse")
	user.IsActive = false
	svc := newTestAuthService(t, user)

	_, err := svc.Login(context.Background(), LoginInput{Email: user.Email, Password: "correct horse"})
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestRefreshToken(t *testing.T) {
	user := testUser(t, "correct horse")
	svc := newTestAuthService(t, user)

	pair, err := svc.Login(context.Background(), LoginInput{Email: user.Email, Password: "correct horse"})
	require.NoError(t, err)

	fresh, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	user := testUser(t, "correct horse")
	svc := newTestAuthService(t, user)

	pair, err := svc.Login(context.Background(), LoginInput{Email: user.Email, Password: "correct horse"})
	require.NoError(t, err)

	// An access token must not pass as a refresh token: audiences differ.
	_, err = svc.RefreshToken(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestValidateToken_RejectsRefreshToken(t *testing.T) {
	user := testUser(t, "correct horse")
	svc := newTestAuthService(t, user)

	pair, err := svc.Login(context.Background(), LoginInput{Email: user.Email, Password: "correct horse"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.RefreshToken)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}
