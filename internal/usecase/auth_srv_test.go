package usecase

import (
	"context"
	"testing"

	"tour-booking/internal/dto/request"
	"tour-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		JWT:   utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
		Admin: utils.AdminConfig{Email: "admin@example.com", Password: "admin-pass"},
	}
}

func signupRequest() *request.SignupRequest {
	return &request.SignupRequest{
		Name:      "Hong Gildong",
		Email:     "hong@example.com",
		Password:  "secret1",
		Role:      "traveler",
		BirthYear: 1995,
		Gender:    "male",
	}
}

func TestSignup(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewAuthService(repo, testConfig(), zap.NewNop())
	ctx := context.Background()

	user, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, user.ID)
	assert.NotEqual(t, "secret1", user.Password)
	assert.True(t, utils.CheckPasswordHash("secret1", user.Password))

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Signup(ctx, signupRequest())
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("duplicate email different case", func(t *testing.T) {
		req := signupRequest()
		req.Email = "HONG@example.com"
		_, err := svc.Signup(ctx, req)
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestSignupValidation(t *testing.T) {
	svc := NewAuthService(newTestRepo(t), testConfig(), zap.NewNop())
	ctx := context.Background()

	t.Run("short password", func(t *testing.T) {
		req := signupRequest()
		req.Password = "short"
		_, err := svc.Signup(ctx, req)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("admin role rejected", func(t *testing.T) {
		req := signupRequest()
		req.Role = "admin"
		_, err := svc.Signup(ctx, req)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestLogin(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewAuthService(repo, testConfig(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		result, err := svc.Login(ctx, &request.LoginRequest{Email: "hong@example.com", Password: "secret1"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "traveler", result.User.Role)

		claims, err := utils.ParseToken(testConfig().JWT, result.Token)
		require.NoError(t, err)
		assert.Equal(t, "1", claims.UserID)
		assert.Equal(t, "traveler", claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &request.LoginRequest{Email: "hong@example.com", Password: "wrong-1"})
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, &request.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestCreateAdmin(t *testing.T) {
	repo := newTestRepo(t)
	config := testConfig()
	svc := NewAuthService(repo, config, zap.NewNop())
	ctx := context.Background()

	admin, err := svc.CreateAdmin(ctx)
	require.NoError(t, err)
	assert.Equal(t, config.Admin.Email, admin.Email)
	assert.Equal(t, "admin", string(admin.Role))

	login, err := svc.Login(ctx, &request.LoginRequest{Email: config.Admin.Email, Password: config.Admin.Password})
	require.NoError(t, err)
	assert.Equal(t, "admin", login.User.Role)

	_, err = svc.CreateAdmin(ctx)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestListUsersStripsPasswords(t *testing.T) {
	repo := newTestRepo(t)
	auth := NewAuthService(repo, testConfig(), zap.NewNop())
	users := NewUserService(repo, zap.NewNop())
	ctx := context.Background()

	_, err := auth.Signup(ctx, signupRequest())
	require.NoError(t, err)

	result, err := users.ListAll(ctx, &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, result.Users, 1)
	assert.Empty(t, result.Users[0].Password)
	assert.Equal(t, int64(1), result.Pagination.Total)
}
