package maintenance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/storalia/bodega/internal/domain"
)

// MaintenanceRequest represents the input for creating or updating a
// maintenance record.
type MaintenanceRequest struct {
	WarehouseID   uint            `json:"warehouse_id" binding:"required"`
	Date          time.Time       `json:"date" binding:"required"`
	Type          string          `json:"type" binding:"required,max=50"`
	Cost          decimal.Decimal `json:"cost"`
	Company       string          `json:"company" binding:"required,max=100"`
	AdminComments string          `json:"admin_comments" binding:"max=1000"`
}

func (r *MaintenanceRequest) toEntity() *domain.MaintenanceRecord {
	return &domain.MaintenanceRecord{
		WarehouseID:   r.WarehouseID,
		Date:          r.Date,
		Type:          r.Type,
		Cost:          r.Cost,
		Company:       r.Company,
		AdminComments: r.AdminComments,
	}
}
