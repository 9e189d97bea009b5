package user

import (
	"context"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/storalia/bodega/internal/domain"
	"github.com/storalia/bodega/internal/pkg"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt input limit
)

// userService implements domain.UserService.
type userService struct {
	repo domain.UserRepository
}

// NewUserService creates a new UserService with the given repository.
func NewUserService(repo domain.UserRepository) domain.UserService {
	return &userService{repo: repo}
}

// CreateUser validates input, hashes the password, and persists a new active
// user. The email uniqueness constraint covers inactive accounts too.
func (s *userService) CreateUser(ctx context.Context, u *domain.User, password string) (*domain.User, error) {
	normalize(u)
	if err := validateUser(u); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to hash password", err)
	}
	u.PasswordHash = string(hash)
	u.MarkActive()

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// GetUser retrieves a user by ID regardless of lifecycle state.
func (s *userService) GetUser(ctx context.Context, id uint) (*domain.User, error) {
	return s.repo.GetByID(ctx, id, true)
}

// ListUsers returns a paginated list of users.
func (s *userService) ListUsers(ctx context.Context, spec domain.QuerySpec, sel domain.ActiveSelector) (*domain.PagedResult[domain.User], error) {
	return s.repo.List(ctx, spec, sel)
}

// UpdateUser loads the existing user (active or not) and applies changes.
// A non-empty newPassword replaces the stored hash; an empty one keeps it.
func (s *userService) UpdateUser(ctx context.Context, id uint, u *domain.User, newPassword string) (*domain.User, error) {
	normalize(u)
	if err := validateUser(u); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id, true)
	if err != nil {
		return nil, err
	}

	existing.FullName = u.FullName
	existing.Email = u.Email
	existing.Role = u.Role
	existing.NationalID = u.NationalID
	existing.Phone = u.Phone
	existing.PhotoPath = u.PhotoPath

	if newPassword != "" {
		if err := validatePassword(newPassword); err != nil {
			return nil, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, domain.NewAppError(domain.CodeInternal, "failed to hash password", err)
		}
		existing.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeactivateUser marks a user inactive, stamping the resolved actor.
func (s *userService) DeactivateUser(ctx context.Context, id uint, actor domain.Identity) error {
	stamp := domain.AuditStamp{At: time.Now().UTC(), By: pkg.ResolveActor(actor)}
	return s.repo.Deactivate(ctx, id, stamp)
}

// ReactivateUser marks a user active again.
func (s *userService) ReactivateUser(ctx context.Context, id uint) error {
	return s.repo.Reactivate(ctx, id)
}

func normalize(u *domain.User) {
	u.FullName = strings.TrimSpace(u.FullName)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Role = domain.NormalizeRole(u.Role)
	u.NationalID = strings.TrimSpace(u.NationalID)
	u.Phone = strings.TrimSpace(u.Phone)
	u.PhotoPath = strings.TrimSpace(u.PhotoPath)
}

func validateUser(u *domain.User) error {
	if u.FullName == "" {
		return domain.NewAppError(domain.CodeValidation, "full_name is required", nil)
	}
	if utf8.RuneCountInString(u.FullName) > 100 {
		return domain.NewAppError(domain.CodeValidation, "full_name must be at most 100 characters", nil)
	}
	if u.Email == "" {
		return domain.NewAppError(domain.CodeValidation, "email is required", nil)
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return domain.NewAppError(domain.CodeValidation, "email must be a valid email address", nil)
	}
	if u.Role == "" {
		return domain.NewAppError(domain.CodeValidation, "role must be Administrator or Employee", nil)
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return domain.NewAppError(domain.CodeValidation, "password must be at least 8 characters", nil)
	}
	if len(password) > maxPasswordLength {
		return domain.NewAppError(domain.CodeValidation, "password must be at most 72 bytes", nil)
	}
	return nil
}
