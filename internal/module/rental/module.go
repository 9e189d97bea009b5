package rental

import "github.com/gin-gonic/gin"

// RentalModule implements the app.Module interface for the rental domain.
type RentalModule struct {
	handler *RentalHandler
}

// NewModule creates a new RentalModule with the given handler.
// Panics if h is nil.
func NewModule(h *RentalHandler) *RentalModule {
	if h == nil {
		panic("rental.NewModule: handler must not be nil")
	}
	return &RentalModule{handler: h}
}

// RegisterRoutes registers rental API routes.
func (m *RentalModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/rentals", m.handler.Create)
	api.GET("/rentals/:id", m.handler.Get)
	api.GET("/rentals", m.handler.List)
	api.PUT("/rentals/:id", m.handler.Update)
	api.POST("/rentals/:id/deactivate", m.handler.Deactivate)
	api.POST("/rentals/:id/reactivate", m.handler.Reactivate)
}
