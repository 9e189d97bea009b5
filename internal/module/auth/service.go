package auth

import (
	"context"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/simp-lee/jwt"

	"github.com/storalia/bodega/internal/domain"
)

// Service defines the authentication operations. There is no self-service
// registration; operator accounts are created by administrators through the
// user module.
type Service interface {
	Login(ctx context.Context, email, password string) (*TokenResponse, error)
}

// authService implements Service.
type authService struct {
	jwtSvc      jwt.Service
	userRepo    domain.UserRepository
	tokenExpiry time.Duration
}

// NewService creates a new auth Service.
func NewService(jwtSvc jwt.Service, userRepo domain.UserRepository, tokenExpiry time.Duration) Service {
	return &authService{
		jwtSvc:      jwtSvc,
		userRepo:    userRepo,
		tokenExpiry: tokenExpiry,
	}
}

// Login authenticates an active user by email and password and returns a JWT
// token. Deactivated accounts cannot log in: GetByEmail only sees active rows.
func (s *authService) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Don't reveal whether the user exists; always return unauthorized.
		if domain.IsNotFound(err) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.jwtSvc.GenerateToken(
		strconv.FormatUint(uint64(user.ID), 10),
		[]string{user.Role},
		s.tokenExpiry,
	)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to generate token", err)
	}

	parsedToken, parseErr := s.jwtSvc.ParseToken(token)
	if parseErr != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to parse generated token", parseErr)
	}

	return &TokenResponse{
		Token:     token,
		ExpiresAt: parsedToken.ExpiresAt.Unix(),
	}, nil
}
