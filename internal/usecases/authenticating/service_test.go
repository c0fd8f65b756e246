package authenticating

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/fundedrank/fundedrank-api/infrastructure/repository/mocks"
	"github.com/fundedrank/fundedrank-api/internal/config"
	"github.com/fundedrank/fundedrank-api/internal/domain"
)

const testSecret = "test-secret"

func newTestService(t *testing.T) (*gomock.Controller, *mocks.MockUserRepository, Authenticator) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	cfg := &config.Config{Auth: config.Auth{Secret: testSecret}}

	return ctrl, userRepo, NewService(userRepo, cfg)
}

func signToken(t *testing.T, secret string, claims jwt.Claims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestValidateToken(t *testing.T) {
	ctrl, _, service := newTestService(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		token    string
		validate func(t *testing.T, claims *domain.Claims, err error)
	}{
		{
			name: "valid token maps claims",
			token: signToken(t, testSecret, jwt.MapClaims{
				"sub":   "auth0|abc123",
				"name":  "Jan Kowalski",
				"email": "jan@example.com",
				"role":  "moderator",
				"exp":   time.Now().Add(time.Hour).Unix(),
			}),
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				require.NoError(t, err)
				assert.Equal(t, "auth0|abc123", claims.ExternalID)
				assert.Equal(t, "Jan Kowalski", claims.Name)
				assert.Equal(t, "jan@example.com", claims.Email)
				assert.Equal(t, domain.RoleModerator, claims.Role)
			},
		},
		{
			name: "unknown role degrades to member",
			token: signToken(t, testSecret, jwt.MapClaims{
				"sub":  "auth0|abc123",
				"role": "superuser",
				"exp":  time.Now().Add(time.Hour).Unix(),
			}),
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.RoleMember, claims.Role)
			},
		},
		{
			name: "missing role degrades to member",
			token: signToken(t, testSecret, jwt.MapClaims{
				"sub": "auth0|abc123",
				"exp": time.Now().Add(time.Hour).Unix(),
			}),
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.RoleMember, claims.Role)
			},
		},
		{
			name: "wrong secret is rejected",
			token: signToken(t, "other-secret", jwt.MapClaims{
				"sub": "auth0|abc123",
				"exp": time.Now().Add(time.Hour).Unix(),
			}),
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Nil(t, claims)
			},
		},
		{
			name: "expired token is rejected",
			token: signToken(t, testSecret, jwt.MapClaims{
				"sub": "auth0|abc123",
				"exp": time.Now().Add(-time.Hour).Unix(),
			}),
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Nil(t, claims)
			},
		},
		{
			name: "empty subject is rejected",
			token: signToken(t, testSecret, jwt.MapClaims{
				"name": "No Subject",
				"exp":  time.Now().Add(time.Hour).Unix(),
			}),
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Nil(t, claims)
			},
		},
		{
			name:  "garbage is rejected",
			token: "not-a-token",
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Nil(t, claims)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			tt.validate(t, claims, err)
		})
	}
}

func TestValidateToken_RejectsUnsignedToken(t *testing.T) {
	ctrl, _, service := newTestService(t)
	defer ctrl.Finish()

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "auth0|abc123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := service.ValidateToken(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestValidateServiceToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("cron-token"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("known token", func(t *testing.T) {
		ctrl, userRepo, service := newTestService(t)
		defer ctrl.Finish()

		userRepo.EXPECT().
			ListServiceTokenHashes(gomock.Any()).
			Return([]string{string(hash)}, nil)

		assert.NoError(t, service.ValidateServiceToken(context.Background(), "cron-token"))
	})

	t.Run("unknown token", func(t *testing.T) {
		ctrl, userRepo, service := newTestService(t)
		defer ctrl.Finish()

		userRepo.EXPECT().
			ListServiceTokenHashes(gomock.Any()).
			Return([]string{string(hash)}, nil)

		assert.ErrorIs(t,
			service.ValidateServiceToken(context.Background(), "wrong-token"),
			ErrInvalidServiceToken,
		)
	})

	t.Run("empty token skips the repository", func(t *testing.T) {
		ctrl, _, service := newTestService(t)
		defer ctrl.Finish()

		assert.ErrorIs(t,
			service.ValidateServiceToken(context.Background(), ""),
			ErrInvalidServiceToken,
		)
	})
}

func TestSyncUser(t *testing.T) {
	ctrl, userRepo, service := newTestService(t)
	defer ctrl.Finish()

	claims := &domain.Claims{ExternalID: "auth0|abc123", Name: "Jan Kowalski", Role: domain.RoleMember}
	stored := &domain.User{ID: 42, ExternalID: "auth0|abc123", Name: "Jan Kowalski", Role: domain.RoleMember}

	userRepo.EXPECT().
		UpsertFromClaims(gomock.Any(), claims).
		Return(stored, nil)

	user, err := service.SyncUser(context.Background(), claims)
	require.NoError(t, err)
	assert.Equal(t, stored, user)
}
