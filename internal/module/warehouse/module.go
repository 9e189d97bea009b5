package warehouse

import "github.com/gin-gonic/gin"

// WarehouseModule implements the app.Module interface for the warehouse domain.
type WarehouseModule struct {
	handler *WarehouseHandler
}

// NewModule creates a new WarehouseModule with the given handler.
// Panics if h is nil.
func NewModule(h *WarehouseHandler) *WarehouseModule {
	if h == nil {
		panic("warehouse.NewModule: handler must not be nil")
	}
	return &WarehouseModule{handler: h}
}

// RegisterRoutes registers warehouse API routes.
func (m *WarehouseModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/warehouses", m.handler.Create)
	api.GET("/warehouses/:id", m.handler.Get)
	api.GET("/warehouses", m.handler.List)
	api.PUT("/warehouses/:id", m.handler.Update)
	api.POST("/warehouses/:id/deactivate", m.handler.Deactivate)
	api.POST("/warehouses/:id/reactivate", m.handler.Reactivate)
}
