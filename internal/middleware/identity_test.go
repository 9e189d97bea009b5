package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"

	"github.com/storalia/bodega/internal/domain"
)

// fakeJWTService implements jwt.Service for testing.
type fakeJWTService struct {
	parsed   *jwt.Token
	parseErr error
}

func (f *fakeJWTService) GenerateToken(string, []string, time.Duration) (string, error) {
	return "", nil
}
func (f *fakeJWTService) ValidateToken(string) (*jwt.Token, error) { return nil, nil }
func (f *fakeJWTService) ValidateAndParse(string) (*jwt.Token, error) {
	if f.parseErr != nil {
		return nil, f.parseErr
	}
	return f.parsed, nil
}
func (f *fakeJWTService) RefreshToken(string) (string, error)                      { return "", nil }
func (f *fakeJWTService) RefreshTokenExtend(string, time.Duration) (string, error) { return "", nil }
func (f *fakeJWTService) RevokeToken(string) error                                 { return nil }
func (f *fakeJWTService) IsTokenRevoked(string) bool                               { return false }
func (f *fakeJWTService) ParseToken(string) (*jwt.Token, error)                    { return nil, nil }
func (f *fakeJWTService) RevokeAllUserTokens(string) error                         { return nil }
func (f *fakeJWTService) Close()                                                   {}

// fakeUserRepo implements domain.UserRepository for testing.
type fakeUserRepo struct {
	user   *domain.User
	getErr error
}

func (f *fakeUserRepo) Create(context.Context, *domain.User) error { return nil }

func (f *fakeUserRepo) GetByID(context.Context, uint, bool) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.user, nil
}

func (f *fakeUserRepo) GetByEmail(context.Context, string) (*domain.User, error) { return nil, nil }

func (f *fakeUserRepo) List(context.Context, domain.QuerySpec, domain.ActiveSelector) (*domain.PagedResult[domain.User], error) {
	return nil, nil
}

func (f *fakeUserRepo) Update(context.Context, *domain.User) error { return nil }

func (f *fakeUserRepo) Deactivate(context.Context, uint, domain.AuditStamp) error { return nil }

func (f *fakeUserRepo) Reactivate(context.Context, uint) error { return nil }

func setupIdentityRouter(jwtSvc jwt.Service, users domain.UserRepository) *gin.Engine {
	r := gin.New()
	r.Use(Identity(jwtSvc, users))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, IdentityFromContext(c))
	})
	return r
}

func whoami(t *testing.T, r *gin.Engine, authHeader string) domain.Identity {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var id domain.Identity
	if err := json.Unmarshal(w.Body.Bytes(), &id); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return id
}

func TestIdentity_ResolvesOperator(t *testing.T) {
	user := &domain.User{FullName: "Alice", Email: "alice@example.com", Role: domain.RoleAdministrator}
	user.ID = 42
	r := setupIdentityRouter(
		&fakeJWTService{parsed: &jwt.Token{UserID: "42"}},
		&fakeUserRepo{user: user},
	)

	id := whoami(t, r, "Bearer some-token")
	if id.Name != "Alice" || id.Email != "alice@example.com" || id.Role != domain.RoleAdministrator {
		t.Errorf("identity = %+v", id)
	}
}

func TestIdentity_NoHeaderIsAnonymous(t *testing.T) {
	r := setupIdentityRouter(&fakeJWTService{}, &fakeUserRepo{})

	id := whoami(t, r, "")
	if id != (domain.Identity{}) {
		t.Errorf("expected anonymous identity, got %+v", id)
	}
}

func TestIdentity_InvalidTokenIsAnonymous(t *testing.T) {
	r := setupIdentityRouter(
		&fakeJWTService{parseErr: errors.New("bad token")},
		&fakeUserRepo{},
	)

	id := whoami(t, r, "Bearer bad-token")
	if id != (domain.Identity{}) {
		t.Errorf("expected anonymous identity, got %+v", id)
	}
}

func TestIdentity_UnknownUserIsAnonymous(t *testing.T) {
	r := setupIdentityRouter(
		&fakeJWTService{parsed: &jwt.Token{UserID: "42"}},
		&fakeUserRepo{getErr: domain.ErrNotFound},
	)

	id := whoami(t, r, "Bearer some-token")
	if id != (domain.Identity{}) {
		t.Errorf("expected anonymous identity, got %+v", id)
	}
}

func TestIdentity_MalformedSubjectIsAnonymous(t *testing.T) {
	r := setupIdentityRouter(
		&fakeJWTService{parsed: &jwt.Token{UserID: "not-a-number"}},
		&fakeUserRepo{},
	)

	id := whoami(t, r, "Bearer some-token")
	if id != (domain.Identity{}) {
		t.Errorf("expected anonymous identity, got %+v", id)
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"Bearer  abc ", "abc"},
		{"Basic abc", ""},
		{"Bearer", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := bearerToken(tt.header); got != tt.want {
			t.Errorf("bearerToken(%q) = %q; want %q", tt.header, got, tt.want)
		}
	}
}
