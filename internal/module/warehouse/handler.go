package warehouse

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/storalia/bodega/internal/domain"
	"github.com/storalia/bodega/internal/middleware"
	"github.com/storalia/bodega/internal/pkg"
)

// WarehouseHandler handles REST API requests for the warehouse resource.
type WarehouseHandler struct {
	svc domain.WarehouseService
}

// NewWarehouseHandler creates a new WarehouseHandler with the given service.
func NewWarehouseHandler(svc domain.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{svc: svc}
}

// Create handles POST /api/v1/warehouses.
func (h *WarehouseHandler) Create(c *gin.Context) {
	var req WarehouseRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	w, err := h.svc.CreateWarehouse(c.Request.Context(), req.toEntity())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    w,
	})
}

// Get handles GET /api/v1/warehouses/:id.
func (h *WarehouseHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	w, err := h.svc.GetWarehouse(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, w)
}

// List handles GET /api/v1/warehouses.
func (h *WarehouseHandler) List(c *gin.Context) {
	spec := pkg.ParseQuerySpec(c)
	sel := pkg.ParseActiveSelector(c)

	result, err := h.svc.ListWarehouses(c.Request.Context(), spec, sel)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/warehouses/:id.
func (h *WarehouseHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req WarehouseRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	w, err := h.svc.UpdateWarehouse(c.Request.Context(), id, req.toEntity())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, w)
}

// Deactivate handles POST /api/v1/warehouses/:id/deactivate.
func (h *WarehouseHandler) Deactivate(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeactivateWarehouse(c.Request.Context(), id, middleware.IdentityFromContext(c)); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// Reactivate handles POST /api/v1/warehouses/:id/reactivate.
func (h *WarehouseHandler) Reactivate(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.ReactivateWarehouse(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// parseID extracts and validates the :id path parameter.
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

var errInvalidID = domain.NewAppError(domain.CodeValidation, "invalid id", nil)
