package client

import (
	"context"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/storalia/bodega/internal/domain"
	"github.com/storalia/bodega/internal/pkg"
)

// clientService implements domain.ClientService.
type clientService struct {
	repo domain.ClientRepository
}

// NewClientService creates a new ClientService with the given repository.
func NewClientService(repo domain.ClientRepository) domain.ClientService {
	return &clientService{repo: repo}
}

// CreateClient validates input and persists a new active client.
func (s *clientService) CreateClient(ctx context.Context, cl *domain.Client) (*domain.Client, error) {
	normalize(cl)
	if err := validateClient(cl); err != nil {
		return nil, err
	}

	cl.MarkActive()

	if err := s.repo.Create(ctx, cl); err != nil {
		return nil, err
	}
	return cl, nil
}

// GetClient retrieves a client by ID regardless of lifecycle state.
func (s *clientService) GetClient(ctx context.Context, id uint) (*domain.Client, error) {
	return s.repo.GetByID(ctx, id, true)
}

// ListClients returns a paginated list of clients.
func (s *clientService) ListClients(ctx context.Context, spec domain.QuerySpec, sel domain.ActiveSelector) (*domain.PagedResult[domain.Client], error) {
	return s.repo.List(ctx, spec, sel)
}

// UpdateClient loads the existing client (active or not), applies changes,
// and persists them.
func (s *clientService) UpdateClient(ctx context.Context, id uint, cl *domain.Client) (*domain.Client, error) {
	normalize(cl)
	if err := validateClient(cl); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id, true)
	if err != nil {
		return nil, err
	}

	existing.Name = cl.Name
	existing.Identification = cl.Identification
	existing.Phone = cl.Phone
	existing.SecondaryPhone = cl.SecondaryPhone
	existing.Email = cl.Email
	existing.LegalRepresentative = cl.LegalRepresentative
	existing.Activity = cl.Activity

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeactivateClient marks a client inactive, stamping the resolved actor.
func (s *clientService) DeactivateClient(ctx context.Context, id uint, actor domain.Identity) error {
	stamp := domain.AuditStamp{At: time.Now().UTC(), By: pkg.ResolveActor(actor)}
	return s.repo.Deactivate(ctx, id, stamp)
}

// ReactivateClient marks a client active again.
func (s *clientService) ReactivateClient(ctx context.Context, id uint) error {
	return s.repo.Reactivate(ctx, id)
}

func normalize(cl *domain.Client) {
	cl.Name = strings.TrimSpace(cl.Name)
	cl.Identification = strings.TrimSpace(cl.Identification)
	cl.Phone = strings.TrimSpace(cl.Phone)
	cl.SecondaryPhone = strings.TrimSpace(cl.SecondaryPhone)
	cl.Email = strings.TrimSpace(cl.Email)
	cl.LegalRepresentative = strings.TrimSpace(cl.LegalRepresentative)
	cl.Activity = strings.TrimSpace(cl.Activity)
}

func validateClient(cl *domain.Client) error {
	if cl.Name == "" {
		return domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	if utf8.RuneCountInString(cl.Name) > 100 {
		return domain.NewAppError(domain.CodeValidation, "name must be at most 100 characters", nil)
	}
	if cl.Identification == "" {
		return domain.NewAppError(domain.CodeValidation, "identification is required", nil)
	}
	if cl.Email != "" {
		if _, err := mail.ParseAddress(cl.Email); err != nil {
			return domain.NewAppError(domain.CodeValidation, "email must be a valid email address", nil)
		}
	}
	return nil
}
