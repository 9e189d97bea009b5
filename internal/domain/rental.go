package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Rental represents a rental contract binding a client to a warehouse for a
// period. RentPrice is derived from AreaM2, PricePerM2 and the optional
// annual increase by the pricing rule; the service recomputes it whenever any
// of those inputs changes, and never accepts it from callers.
type Rental struct {
	BaseModel
	SoftDelete
	ClientID              uint                `gorm:"not null;index" json:"client_id"`
	WarehouseID           uint                `gorm:"not null;index" json:"warehouse_id"`
	StartDate             time.Time           `gorm:"type:date;not null" json:"start_date"`
	EndDate               time.Time           `gorm:"type:date;not null" json:"end_date"`
	AutoRenew             bool                `json:"auto_renew"`
	AreaM2                decimal.Decimal     `gorm:"type:decimal(10,2)" json:"area_m2"`
	PricePerM2            decimal.Decimal     `gorm:"type:decimal(10,2)" json:"price_per_m2"`
	AnnualIncreasePercent decimal.NullDecimal `gorm:"type:decimal(5,2)" json:"annual_increase_percent"`
	RentPrice             decimal.Decimal     `gorm:"type:decimal(10,2)" json:"rent_price"`
	Notes                 string              `json:"notes"`
	ContractFilePath      string              `gorm:"size:300" json:"contract_file_path"`
}

// RentalListConfig drives the listing engine for rentals.
var RentalListConfig = ListConfig{
	SortFields: map[string]string{
		"start_date": "start_date",
		"end_date":   "end_date",
		"rent_price": "rent_price",
		"id":         "id",
	},
	DefaultSortKey:     "start_date",
	TieBreakColumn:     "id",
	SearchColumns:      []string{"notes"},
	ExactFilterColumns: []string{"client_id", "warehouse_id", "auto_renew"},
	LikeFilterColumns:  []string{"notes"},
}

// RentalRepository defines the data access interface for rentals.
type RentalRepository interface {
	Create(ctx context.Context, r *Rental) error
	GetByID(ctx context.Context, id uint, ignoreActiveFilter bool) (*Rental, error)
	List(ctx context.Context, spec QuerySpec, sel ActiveSelector) (*PagedResult[Rental], error)
	Update(ctx context.Context, r *Rental) error
	Deactivate(ctx context.Context, id uint, stamp AuditStamp) error
	Reactivate(ctx context.Context, id uint) error
}

// RentalService defines the business logic interface for rentals.
type RentalService interface {
	CreateRental(ctx context.Context, r *Rental) (*Rental, error)
	GetRental(ctx context.Context, id uint) (*Rental, error)
	ListRentals(ctx context.Context, spec QuerySpec, sel ActiveSelector) (*PagedResult[Rental], error)
	UpdateRental(ctx context.Context, id uint, r *Rental) (*Rental, error)
	DeactivateRental(ctx context.Context, id uint, actor Identity) error
	ReactivateRental(ctx context.Context, id uint) error
}
