// Package authenticating validates credentials issued elsewhere: the
// identity provider's bearer tokens for users and bcrypt-hashed
// service tokens for machine access. No credential is ever created
// here.
package authenticating

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/fundedrank/fundedrank-api/infrastructure/repository"
	"github.com/fundedrank/fundedrank-api/internal/config"
	"github.com/fundedrank/fundedrank-api/internal/domain"
)

var (
	ErrInvalidToken        = errors.New("invalid token")
	ErrInvalidServiceToken = errors.New("unknown service token")
)

type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	ValidateServiceToken(ctx context.Context, token string) error
	SyncUser(ctx context.Context, claims *domain.Claims) (*domain.User, error)
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

type providerClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// ValidateToken checks the signature and expiry of an identity-provider
// token and maps its payload onto domain claims. Unknown roles
// degrade to member rather than failing.
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	parsed := &providerClaims{}

	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}
	if !token.Valid || parsed.Subject == "" {
		return nil, ErrInvalidToken
	}

	role := domain.Role(parsed.Role)
	switch role {
	case domain.RoleAdmin, domain.RoleModerator, domain.RoleMember:
	default:
		role = domain.RoleMember
	}

	return &domain.Claims{
		ExternalID:       parsed.Subject,
		Name:             parsed.Name,
		Email:            parsed.Email,
		Role:             role,
		RegisteredClaims: parsed.RegisteredClaims,
	}, nil
}

// ValidateServiceToken compares the presented token against the stored
// bcrypt hashes.
func (s *Service) ValidateServiceToken(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidServiceToken
	}

	hashes, err := s.userRepo.ListServiceTokenHashes(ctx)
	if err != nil {
		return err
	}

	for _, hash := range hashes {
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)) == nil {
			return nil
		}
	}

	return ErrInvalidServiceToken
}

// SyncUser mirrors the identity-provider profile into the local users
// table, returning the stored row.
func (s *Service) SyncUser(ctx context.Context, claims *domain.Claims) (*domain.User, error) {
	return s.userRepo.UpsertFromClaims(ctx, claims)
}
