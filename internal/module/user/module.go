package user

import "github.com/gin-gonic/gin"

// UserModule implements the app.Module interface for the user domain.
type UserModule struct {
	handler *UserHandler
}

// NewModule creates a new UserModule with the given handler.
// Panics if h is nil.
func NewModule(h *UserHandler) *UserModule {
	if h == nil {
		panic("user.NewModule: handler must not be nil")
	}
	return &UserModule{handler: h}
}

// RegisterRoutes registers user API routes.
func (m *UserModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/users", m.handler.Create)
	api.GET("/users/:id", m.handler.Get)
	api.GET("/users", m.handler.List)
	api.PUT("/users/:id", m.handler.Update)
	api.POST("/users/:id/deactivate", m.handler.Deactivate)
	api.POST("/users/:id/reactivate", m.handler.Reactivate)
}
