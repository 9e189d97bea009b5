package rental

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/storalia/bodega/internal/domain"
)

// RentalRequest represents the input for creating or updating a rental.
// RentPrice is intentionally absent: it is always derived server-side.
type RentalRequest struct {
	ClientID              uint             `json:"client_id" binding:"required"`
	WarehouseID           uint             `json:"warehouse_id" binding:"required"`
	StartDate             time.Time        `json:"start_date" binding:"required"`
	EndDate               time.Time        `json:"end_date" binding:"required"`
	AutoRenew             bool             `json:"auto_renew"`
	AreaM2                decimal.Decimal  `json:"area_m2"`
	PricePerM2            decimal.Decimal  `json:"price_per_m2"`
	AnnualIncreasePercent *decimal.Decimal `json:"annual_increase_percent"`
	Notes                 string           `json:"notes" binding:"max=1000"`
	ContractFilePath      string           `json:"contract_file_path" binding:"max=300"`
}

func (r *RentalRequest) toEntity() *domain.Rental {
	var increase decimal.NullDecimal
	if r.AnnualIncreasePercent != nil {
		increase = decimal.NullDecimal{Decimal: *r.AnnualIncreasePercent, Valid: true}
	}
	return &domain.Rental{
		ClientID:              r.ClientID,
		WarehouseID:           r.WarehouseID,
		StartDate:             r.StartDate,
		EndDate:               r.EndDate,
		AutoRenew:             r.AutoRenew,
		AreaM2:                r.AreaM2,
		PricePerM2:            r.PricePerM2,
		AnnualIncreasePercent: increase,
		Notes:                 r.Notes,
		ContractFilePath:      r.ContractFilePath,
	}
}
