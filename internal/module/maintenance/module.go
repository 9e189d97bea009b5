package maintenance

import "github.com/gin-gonic/gin"

// MaintenanceModule implements the app.Module interface for the maintenance domain.
type MaintenanceModule struct {
	handler *MaintenanceHandler
}

// NewModule creates a new MaintenanceModule with the given handler.
// Panics if h is nil.
func NewModule(h *MaintenanceHandler) *MaintenanceModule {
	if h == nil {
		panic("maintenance.NewModule: handler must not be nil")
	}
	return &MaintenanceModule{handler: h}
}

// RegisterRoutes registers maintenance API routes.
func (m *MaintenanceModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/maintenance", m.handler.Create)
	api.GET("/maintenance/:id", m.handler.Get)
	api.GET("/maintenance", m.handler.List)
	api.PUT("/maintenance/:id", m.handler.Update)
	api.POST("/maintenance/:id/deactivate", m.handler.Deactivate)
	api.POST("/maintenance/:id/reactivate", m.handler.Reactivate)
}
