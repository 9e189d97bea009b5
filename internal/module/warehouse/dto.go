package warehouse

import (
	"github.com/shopspring/decimal"

	"github.com/storalia/bodega/internal/domain"
)

// WarehouseRequest represents the input for creating or updating a warehouse.
// Price is never accepted from callers; it is derived.
type WarehouseRequest struct {
	Name       string          `json:"name" form:"name" binding:"required,max=100"`
	Location   string          `json:"location" form:"location" binding:"required,max=150"`
	Complex    string          `json:"complex" form:"complex" binding:"max=100"`
	Status     string          `json:"status" form:"status" binding:"omitempty,oneof=Available Occupied Reserved"`
	AreaM2     decimal.Decimal `json:"area_m2" form:"area_m2"`
	PricePerM2 decimal.Decimal `json:"price_per_m2" form:"price_per_m2"`
}

func (r *WarehouseRequest) toEntity() *domain.Warehouse {
	return &domain.Warehouse{
		Name:       r.Name,
		Location:   r.Location,
		Complex:    r.Complex,
		Status:     r.Status,
		AreaM2:     r.AreaM2,
		PricePerM2: r.PricePerM2,
	}
}
