package client

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/storalia/bodega/internal/domain"
	"github.com/storalia/bodega/internal/middleware"
	"github.com/storalia/bodega/internal/pkg"
)

// ClientHandler handles REST API requests for the client resource.
type ClientHandler struct {
	svc domain.ClientService
}

// NewClientHandler creates a new ClientHandler with the given service.
func NewClientHandler(svc domain.ClientService) *ClientHandler {
	return &ClientHandler{svc: svc}
}

// Create handles POST /api/v1/clients.
func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	cl, err := h.svc.CreateClient(c.Request.Context(), req.toEntity())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    cl,
	})
}

// Get handles GET /api/v1/clients/:id.
func (h *ClientHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	cl, err := h.svc.GetClient(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, cl)
}

// List handles GET /api/v1/clients.
func (h *ClientHandler) List(c *gin.Context) {
	spec := pkg.ParseQuerySpec(c)
	sel := pkg.ParseActiveSelector(c)

	result, err := h.svc.ListClients(c.Request.Context(), spec, sel)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/clients/:id.
func (h *ClientHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req ClientRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	cl, err := h.svc.UpdateClient(c.Request.Context(), id, req.toEntity())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, cl)
}

// Deactivate handles POST /api/v1/clients/:id/deactivate.
func (h *ClientHandler) Deactivate(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeactivateClient(c.Request.Context(), id, middleware.IdentityFromContext(c)); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// Reactivate handles POST /api/v1/clients/:id/reactivate.
func (h *ClientHandler) Reactivate(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.ReactivateClient(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// parseID extracts and validates the :id path parameter.
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, domain.NewAppError(domain.CodeValidation, "invalid id", nil)
	}
	return uint(id), nil
}
