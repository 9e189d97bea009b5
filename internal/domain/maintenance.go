package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MaintenanceRecord represents maintenance work performed on a warehouse.
type MaintenanceRecord struct {
	BaseModel
	SoftDelete
	WarehouseID   uint            `gorm:"not null;index" json:"warehouse_id"`
	Date          time.Time       `gorm:"type:date;not null" json:"date"`
	Type          string          `gorm:"size:50;not null" json:"type"`
	Cost          decimal.Decimal `gorm:"type:decimal(10,2)" json:"cost"`
	Company       string          `gorm:"size:100;not null" json:"company"`
	AdminComments string          `json:"admin_comments"`
}

// MaintenanceListConfig drives the listing engine for maintenance records.
var MaintenanceListConfig = ListConfig{
	SortFields: map[string]string{
		"date":    "date",
		"cost":    "cost",
		"type":    "type",
		"company": "company",
	},
	DefaultSortKey:     "date",
	TieBreakColumn:     "id",
	SearchColumns:      []string{"type", "company"},
	ExactFilterColumns: []string{"warehouse_id"},
	LikeFilterColumns:  []string{"type", "company"},
}

// MaintenanceRepository defines the data access interface for maintenance records.
type MaintenanceRepository interface {
	Create(ctx context.Context, m *MaintenanceRecord) error
	GetByID(ctx context.Context, id uint, ignoreActiveFilter bool) (*MaintenanceRecord, error)
	List(ctx context.Context, spec QuerySpec, sel ActiveSelector) (*PagedResult[MaintenanceRecord], error)
	Update(ctx context.Context, m *MaintenanceRecord) error
	Deactivate(ctx context.Context, id uint, stamp AuditStamp) error
	Reactivate(ctx context.Context, id uint) error
}

// MaintenanceService defines the business logic interface for maintenance records.
type MaintenanceService interface {
	CreateRecord(ctx context.Context, m *MaintenanceRecord) (*MaintenanceRecord, error)
	GetRecord(ctx context.Context, id uint) (*MaintenanceRecord, error)
	ListRecords(ctx context.Context, spec QuerySpec, sel ActiveSelector) (*PagedResult[MaintenanceRecord], error)
	UpdateRecord(ctx context.Context, id uint, m *MaintenanceRecord) (*MaintenanceRecord, error)
	DeactivateRecord(ctx context.Context, id uint, actor Identity) error
	ReactivateRecord(ctx context.Context, id uint) error
}
