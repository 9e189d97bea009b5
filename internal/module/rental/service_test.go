package rental

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/storalia/bodega/internal/domain"
)

// fakeRentalRepo implements domain.RentalRepository for testing.
type fakeRentalRepo struct {
	created    *domain.Rental
	updated    *domain.Rental
	existing   *domain.Rental
	getErr     error
	lastStamp  domain.AuditStamp
	lastDeacID uint
}

func (f *fakeRentalRepo) Create(_ context.Context, rt *domain.Rental) error {
	f.created = rt
	rt.ID = 1
	return nil
}

func (f *fakeRentalRepo) GetByID(_ context.Context, _ uint, _ bool) (*domain.Rental, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.existing, nil
}

func (f *fakeRentalRepo) List(_ context.Context, _ domain.QuerySpec, _ domain.ActiveSelector) (*domain.PagedResult[domain.Rental], error) {
	return domain.NewPagedResult[domain.Rental](nil, 0, 1, 10), nil
}

func (f *fakeRentalRepo) Update(_ context.Context, rt *domain.Rental) error {
	f.updated = rt
	return nil
}

func (f *fakeRentalRepo) Deactivate(_ context.Context, id uint, stamp domain.AuditStamp) error {
	f.lastDeacID = id
	f.lastStamp = stamp
	return nil
}

func (f *fakeRentalRepo) Reactivate(_ context.Context, _ uint) error { return nil }

// fakeClientRepo only serves reference checks; everything else is unused.
type fakeClientRepo struct {
	getErr error
}

func (f *fakeClientRepo) Create(_ context.Context, _ *domain.Client) error { return nil }

func (f *fakeClientRepo) GetByID(_ context.Context, _ uint, _ bool) (*domain.Client, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &domain.Client{}, nil
}

func (f *fakeClientRepo) List(_ context.Context, _ domain.QuerySpec, _ domain.ActiveSelector) (*domain.PagedResult[domain.Client], error) {
	return domain.NewPagedResult[domain.Client](nil, 0, 1, 10), nil
}

func (f *fakeClientRepo) Update(_ context.Context, _ *domain.Client) error { return nil }

func (f *fakeClientRepo) Deactivate(_ context.Context, _ uint, _ domain.AuditStamp) error {
	return nil
}

func (f *fakeClientRepo) Reactivate(_ context.Context, _ uint) error { return nil }

type fakeWarehouseRepo struct {
	getErr error
}

func (f *fakeWarehouseRepo) Create(_ context.Context, _ *domain.Warehouse) error { return nil }

func (f *fakeWarehouseRepo) GetByID(_ context.Context, _ uint, _ bool) (*domain.Warehouse, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &domain.Warehouse{}, nil
}

func (f *fakeWarehouseRepo) List(_ context.Context, _ domain.QuerySpec, _ domain.ActiveSelector) (*domain.PagedResult[domain.Warehouse], error) {
	return domain.NewPagedResult[domain.Warehouse](nil, 0, 1, 10), nil
}

func (f *fakeWarehouseRepo) Update(_ context.Context, _ *domain.Warehouse) error { return nil }

func (f *fakeWarehouseRepo) Deactivate(_ context.Context, _ uint, _ domain.AuditStamp) error {
	return nil
}

func (f *fakeWarehouseRepo) Reactivate(_ context.Context, _ uint) error { return nil }

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func validRental(t *testing.T) *domain.Rental {
	t.Helper()
	return &domain.Rental{
		ClientID:    1,
		WarehouseID: 2,
		StartDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		AreaM2:      dec(t, "100"),
		PricePerM2:  dec(t, "10"),
	}
}

func TestCreateRental_DerivesRentPrice(t *testing.T) {
	repo := &fakeRentalRepo{}
	svc := NewRentalService(repo, &fakeClientRepo{}, &fakeWarehouseRepo{})

	rt := validRental(t)
	rt.AnnualIncreasePercent = decimal.NullDecimal{Decimal: dec(t, "10"), Valid: true}

	got, err := svc.CreateRental(context.Background(), rt)
	if err != nil {
		t.Fatalf("CreateRental: %v", err)
	}
	if !got.RentPrice.Equal(dec(t, "1100")) {
		t.Errorf("RentPrice = %s; want 1100", got.RentPrice)
	}
	if !got.Active() {
		t.Error("new rental should be active")
	}
	if repo.created == nil {
		t.Error("repository Create was not called")
	}
}

func TestCreateRental_NoIncreaseKeepsBasePrice(t *testing.T) {
	svc := NewRentalService(&fakeRentalRepo{}, &fakeClientRepo{}, &fakeWarehouseRepo{})

	got, err := svc.CreateRental(context.Background(), validRental(t))
	if err != nil {
		t.Fatalf("CreateRental: %v", err)
	}
	if !got.RentPrice.Equal(dec(t, "1000")) {
		t.Errorf("RentPrice = %s; want 1000", got.RentPrice)
	}
}

func TestCreateRental_TruncatesDates(t *testing.T) {
	svc := NewRentalService(&fakeRentalRepo{}, &fakeClientRepo{}, &fakeWarehouseRepo{})

	rt := validRental(t)
	rt.StartDate = time.Date(2026, 1, 1, 15, 30, 45, 0, time.UTC)

	got, err := svc.CreateRental(context.Background(), rt)
	if err != nil {
		t.Fatalf("CreateRental: %v", err)
	}
	want := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.StartDate.Equal(want) {
		t.Errorf("StartDate = %v; want %v", got.StartDate, want)
	}
}

func TestCreateRental_Validation(t *testing.T) {
	svc := NewRentalService(&fakeRentalRepo{}, &fakeClientRepo{}, &fakeWarehouseRepo{})
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(rt *domain.Rental)
	}{
		{"missing client", func(rt *domain.Rental) { rt.ClientID = 0 }},
		{"missing warehouse", func(rt *domain.Rental) { rt.WarehouseID = 0 }},
		{"missing start date", func(rt *domain.Rental) { rt.StartDate = time.Time{} }},
		{"missing end date", func(rt *domain.Rental) { rt.EndDate = time.Time{} }},
		{"end before start", func(rt *domain.Rental) {
			rt.EndDate = rt.StartDate.AddDate(0, 0, -1)
		}},
		{"negative area", func(rt *domain.Rental) { rt.AreaM2 = decimal.New(-1, 0) }},
		{"negative price per m2", func(rt *domain.Rental) { rt.PricePerM2 = decimal.New(-5, 0) }},
		{"increase below zero", func(rt *domain.Rental) {
			rt.AnnualIncreasePercent = decimal.NullDecimal{Decimal: decimal.New(-1, 0), Valid: true}
		}},
		{"increase above hundred", func(rt *domain.Rental) {
			rt.AnnualIncreasePercent = decimal.NullDecimal{Decimal: decimal.New(101, 0), Valid: true}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := validRental(t)
			tt.mutate(rt)
			_, err := svc.CreateRental(ctx, rt)
			if !domain.IsValidation(err) {
				t.Errorf("got %v; want validation error", err)
			}
		})
	}
}

func TestCreateRental_SameDayAllowed(t *testing.T) {
	svc := NewRentalService(&fakeRentalRepo{}, &fakeClientRepo{}, &fakeWarehouseRepo{})

	rt := validRental(t)
	rt.EndDate = rt.StartDate

	if _, err := svc.CreateRental(context.Background(), rt); err != nil {
		t.Errorf("same start and end date should be allowed: %v", err)
	}
}

func TestCreateRental_InactiveClientRejected(t *testing.T) {
	svc := NewRentalService(&fakeRentalRepo{}, &fakeClientRepo{getErr: domain.ErrNotFound}, &fakeWarehouseRepo{})

	_, err := svc.CreateRental(context.Background(), validRental(t))
	if !domain.IsValidation(err) {
		t.Errorf("got %v; want validation error", err)
	}
}

func TestCreateRental_InactiveWarehouseRejected(t *testing.T) {
	svc := NewRentalService(&fakeRentalRepo{}, &fakeClientRepo{}, &fakeWarehouseRepo{getErr: domain.ErrNotFound})

	_, err := svc.CreateRental(context.Background(), validRental(t))
	if !domain.IsValidation(err) {
		t.Errorf("got %v; want validation error", err)
	}
}

func TestUpdateRental_RederivesRentPrice(t *testing.T) {
	existing := validRental(t)
	existing.ID = 7
	existing.RentPrice = dec(t, "1000")
	repo := &fakeRentalRepo{existing: existing}
	svc := NewRentalService(repo, &fakeClientRepo{}, &fakeWarehouseRepo{})

	changed := validRental(t)
	changed.AreaM2 = dec(t, "33.33")
	changed.PricePerM2 = dec(t, "15.5")

	got, err := svc.UpdateRental(context.Background(), 7, changed)
	if err != nil {
		t.Fatalf("UpdateRental: %v", err)
	}
	if !got.RentPrice.Equal(dec(t, "516.62")) {
		t.Errorf("RentPrice = %s; want 516.62", got.RentPrice)
	}
	if repo.updated == nil {
		t.Error("repository Update was not called")
	}
}

func TestUpdateRental_NotFound(t *testing.T) {
	repo := &fakeRentalRepo{getErr: domain.ErrNotFound}
	svc := NewRentalService(repo, &fakeClientRepo{}, &fakeWarehouseRepo{})

	_, err := svc.UpdateRental(context.Background(), 99, validRental(t))
	if !domain.IsNotFound(err) {
		t.Errorf("got %v; want not-found", err)
	}
}

func TestDeactivateRental_StampsActor(t *testing.T) {
	repo := &fakeRentalRepo{}
	svc := NewRentalService(repo, &fakeClientRepo{}, &fakeWarehouseRepo{})

	if err := svc.DeactivateRental(context.Background(), 9, domain.Identity{Name: "Carol"}); err != nil {
		t.Fatalf("DeactivateRental: %v", err)
	}
	if repo.lastDeacID != 9 {
		t.Errorf("deactivated id = %d; want 9", repo.lastDeacID)
	}
	if repo.lastStamp.By != "Carol" {
		t.Errorf("stamp actor = %q; want Carol", repo.lastStamp.By)
	}
}
