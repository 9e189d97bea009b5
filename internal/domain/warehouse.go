package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Warehouse statuses.
const (
	WarehouseAvailable = "Available"
	WarehouseOccupied  = "Occupied"
	WarehouseReserved  = "Reserved"
)

// WarehouseStatuses lists the accepted status values.
var WarehouseStatuses = []string{WarehouseAvailable, WarehouseOccupied, WarehouseReserved}

// Warehouse represents a rentable storage unit.
// Price is derived from AreaM2 × PricePerM2 and recomputed by the service
// whenever either input changes; it is never accepted from callers.
type Warehouse struct {
	BaseModel
	SoftDelete
	Name       string          `gorm:"size:100;not null" json:"name"`
	Location   string          `gorm:"size:150;not null" json:"location"`
	Complex    string          `gorm:"size:100" json:"complex"`
	Status     string          `gorm:"size:50" json:"status"`
	AreaM2     decimal.Decimal `gorm:"type:decimal(10,2)" json:"area_m2"`
	PricePerM2 decimal.Decimal `gorm:"type:decimal(10,2)" json:"price_per_m2"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
}

// WarehouseListConfig drives the listing engine for warehouses.
// Sort keys mirror the original admin screens (area, pm2, precio, complejo,
// estado) with name as the stable tie-breaker.
var WarehouseListConfig = ListConfig{
	SortFields: map[string]string{
		"name":    "name",
		"area":    "area_m2",
		"pm2":     "price_per_m2",
		"price":   "price",
		"complex": "complex",
		"status":  "status",
	},
	DefaultSortKey:     "name",
	TieBreakColumn:     "name",
	SearchColumns:      []string{"name", "location", "complex"},
	ExactFilterColumns: []string{"status"},
	LikeFilterColumns:  []string{"name", "location", "complex"},
}

// WarehouseRepository defines the data access interface for warehouses.
type WarehouseRepository interface {
	Create(ctx context.Context, w *Warehouse) error
	GetByID(ctx context.Context, id uint, ignoreActiveFilter bool) (*Warehouse, error)
	List(ctx context.Context, spec QuerySpec, sel ActiveSelector) (*PagedResult[Warehouse], error)
	Update(ctx context.Context, w *Warehouse) error
	Deactivate(ctx context.Context, id uint, stamp AuditStamp) error
	Reactivate(ctx context.Context, id uint) error
}

// WarehouseService defines the business logic interface for warehouses.
type WarehouseService interface {
	CreateWarehouse(ctx context.Context, w *Warehouse) (*Warehouse, error)
	GetWarehouse(ctx context.Context, id uint) (*Warehouse, error)
	ListWarehouses(ctx context.Context, spec QuerySpec, sel ActiveSelector) (*PagedResult[Warehouse], error)
	UpdateWarehouse(ctx context.Context, id uint, w *Warehouse) (*Warehouse, error)
	DeactivateWarehouse(ctx context.Context, id uint, actor Identity) error
	ReactivateWarehouse(ctx context.Context, id uint) error
}
