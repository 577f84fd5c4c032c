package service

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/citizengeo/sites/internal/config"
	"github.com/citizengeo/sites/internal/domain"
	"github.com/citizengeo/sites/internal/usecase"
)

var tracer = otel.Tracer("auth")

// AuthService resolves an optional bearer credential into an acting
// identity. Token issuance belongs to the surrounding platform; this
// module only verifies and dereferences.
type AuthService struct {
	config config.Auth
	users  usecase.UserRepository
}

func NewAuthService(
	conf config.Auth,
	users usecase.UserRepository,
) *AuthService {
	return &AuthService{
		config: conf,
		users:  users,
	}
}

type siteClaims struct {
	IDRole int `json:"id_role"`
	jwt.RegisteredClaims
}

// AuthJwt verifies the token signature and claims, then looks up the
// referenced user.
func (s *AuthService) AuthJwt(ctx context.Context, token string) (*domain.Identity, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.AuthJwt")
	defer span.End()

	var claims siteClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.config.JwtSecret), nil
	})
	if err != nil {
		span.RecordError(errors.Wrap(err, "jwt validation failed"))
		return nil, err
	}

	if s.config.Issuer != "" && claims.Issuer != s.config.Issuer {
		err := fmt.Errorf("jwt issuer mismatch: expected %s, got %s", s.config.Issuer, claims.Issuer)
		span.RecordError(err)
		return nil, err
	}

	if claims.IDRole == 0 {
		err := fmt.Errorf("jwt carries no role identifier")
		span.RecordError(err)
		return nil, err
	}

	user, err := s.users.Get(ctx, claims.IDRole)
	if err != nil {
		span.RecordError(errors.Wrap(err, "AuthService.AuthJwt: user lookup failed"))
		return nil, err
	}

	return &domain.Identity{
		IDRole:   user.IDRole,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}
