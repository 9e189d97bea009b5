package rental

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/storalia/bodega/internal/domain"
	"github.com/storalia/bodega/internal/pkg"
)

var maxIncreasePercent = decimal.New(100, 0)

// rentalService implements domain.RentalService. It checks client and
// warehouse references against their repositories and derives RentPrice from
// the pricing inputs on every create and update.
type rentalService struct {
	repo       domain.RentalRepository
	clients    domain.ClientRepository
	warehouses domain.WarehouseRepository
}

// NewRentalService creates a new RentalService with the given repositories.
func NewRentalService(repo domain.RentalRepository, clients domain.ClientRepository, warehouses domain.WarehouseRepository) domain.RentalService {
	return &rentalService{repo: repo, clients: clients, warehouses: warehouses}
}

// CreateRental validates input, checks the referenced client and warehouse
// exist and are active, derives the rent price, and persists the rental.
func (s *rentalService) CreateRental(ctx context.Context, rt *domain.Rental) (*domain.Rental, error) {
	normalize(rt)
	if err := validateRental(rt); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, rt); err != nil {
		return nil, err
	}

	rt.RentPrice = pkg.ComputeRentPrice(pricingInputs(rt))
	rt.MarkActive()

	if err := s.repo.Create(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

// GetRental retrieves a rental by ID regardless of lifecycle state.
func (s *rentalService) GetRental(ctx context.Context, id uint) (*domain.Rental, error) {
	return s.repo.GetByID(ctx, id, true)
}

// ListRentals returns a paginated list of rentals.
func (s *rentalService) ListRentals(ctx context.Context, spec domain.QuerySpec, sel domain.ActiveSelector) (*domain.PagedResult[domain.Rental], error) {
	return s.repo.List(ctx, spec, sel)
}

// UpdateRental loads the existing rental (active or not), applies changes,
// re-derives the rent price, and persists them.
func (s *rentalService) UpdateRental(ctx context.Context, id uint, rt *domain.Rental) (*domain.Rental, error) {
	normalize(rt)
	if err := validateRental(rt); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, rt); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id, true)
	if err != nil {
		return nil, err
	}

	existing.ClientID = rt.ClientID
	existing.WarehouseID = rt.WarehouseID
	existing.StartDate = rt.StartDate
	existing.EndDate = rt.EndDate
	existing.AutoRenew = rt.AutoRenew
	existing.AreaM2 = rt.AreaM2
	existing.PricePerM2 = rt.PricePerM2
	existing.AnnualIncreasePercent = rt.AnnualIncreasePercent
	existing.Notes = rt.Notes
	existing.ContractFilePath = rt.ContractFilePath
	existing.RentPrice = pkg.ComputeRentPrice(pricingInputs(existing))

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeactivateRental marks a rental inactive, stamping the resolved actor.
func (s *rentalService) DeactivateRental(ctx context.Context, id uint, actor domain.Identity) error {
	stamp := domain.AuditStamp{At: time.Now().UTC(), By: pkg.ResolveActor(actor)}
	return s.repo.Deactivate(ctx, id, stamp)
}

// ReactivateRental marks a rental active again.
func (s *rentalService) ReactivateRental(ctx context.Context, id uint) error {
	return s.repo.Reactivate(ctx, id)
}

// checkReferences verifies the rental points at an active client and an
// active warehouse.
func (s *rentalService) checkReferences(ctx context.Context, rt *domain.Rental) error {
	if _, err := s.clients.GetByID(ctx, rt.ClientID, false); err != nil {
		if domain.IsNotFound(err) {
			return domain.NewAppError(domain.CodeValidation, "client not found or inactive", err)
		}
		return err
	}
	if _, err := s.warehouses.GetByID(ctx, rt.WarehouseID, false); err != nil {
		if domain.IsNotFound(err) {
			return domain.NewAppError(domain.CodeValidation, "warehouse not found or inactive", err)
		}
		return err
	}
	return nil
}

func pricingInputs(rt *domain.Rental) pkg.RentPricingInputs {
	return pkg.RentPricingInputs{
		AreaM2:                rt.AreaM2,
		PricePerM2:            rt.PricePerM2,
		AnnualIncreasePercent: rt.AnnualIncreasePercent,
	}
}

func normalize(rt *domain.Rental) {
	rt.Notes = strings.TrimSpace(rt.Notes)
	rt.ContractFilePath = strings.TrimSpace(rt.ContractFilePath)
	rt.StartDate = rt.StartDate.Truncate(24 * time.Hour)
	rt.EndDate = rt.EndDate.Truncate(24 * time.Hour)
}

func validateRental(rt *domain.Rental) error {
	if rt.ClientID == 0 {
		return domain.NewAppError(domain.CodeValidation, "client_id is required", nil)
	}
	if rt.WarehouseID == 0 {
		return domain.NewAppError(domain.CodeValidation, "warehouse_id is required", nil)
	}
	if rt.StartDate.IsZero() || rt.EndDate.IsZero() {
		return domain.NewAppError(domain.CodeValidation, "start_date and end_date are required", nil)
	}
	if rt.EndDate.Before(rt.StartDate) {
		return domain.NewAppError(domain.CodeValidation, "end_date must not be before start_date", nil)
	}
	if rt.AreaM2.IsNegative() {
		return domain.NewAppError(domain.CodeValidation, "area_m2 must not be negative", nil)
	}
	if rt.PricePerM2.IsNegative() {
		return domain.NewAppError(domain.CodeValidation, "price_per_m2 must not be negative", nil)
	}
	if rt.AnnualIncreasePercent.Valid {
		pct := rt.AnnualIncreasePercent.Decimal
		if pct.IsNegative() || pct.GreaterThan(maxIncreasePercent) {
			return domain.NewAppError(domain.CodeValidation, "annual_increase_percent must be between 0 and 100", nil)
		}
	}
	return nil
}
