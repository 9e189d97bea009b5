package maintenance

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/storalia/bodega/internal/domain"
	"github.com/storalia/bodega/internal/middleware"
	"github.com/storalia/bodega/internal/pkg"
)

// MaintenanceHandler handles REST API requests for the maintenance resource.
type MaintenanceHandler struct {
	svc domain.MaintenanceService
}

// NewMaintenanceHandler creates a new MaintenanceHandler with the given service.
func NewMaintenanceHandler(svc domain.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{svc: svc}
}

// Create handles POST /api/v1/maintenance.
func (h *MaintenanceHandler) Create(c *gin.Context) {
	var req MaintenanceRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	m, err := h.svc.CreateRecord(c.Request.Context(), req.toEntity())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    m,
	})
}

// Get handles GET /api/v1/maintenance/:id.
func (h *MaintenanceHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	m, err := h.svc.GetRecord(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, m)
}

// List handles GET /api/v1/maintenance.
func (h *MaintenanceHandler) List(c *gin.Context) {
	spec := pkg.ParseQuerySpec(c)
	sel := pkg.ParseActiveSelector(c)

	result, err := h.svc.ListRecords(c.Request.Context(), spec, sel)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/maintenance/:id.
func (h *MaintenanceHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req MaintenanceRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	m, err := h.svc.UpdateRecord(c.Request.Context(), id, req.toEntity())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, m)
}

// Deactivate handles POST /api/v1/maintenance/:id/deactivate.
func (h *MaintenanceHandler) Deactivate(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeactivateRecord(c.Request.Context(), id, middleware.IdentityFromContext(c)); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// Reactivate handles POST /api/v1/maintenance/:id/reactivate.
func (h *MaintenanceHandler) Reactivate(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.ReactivateRecord(c.Request.Context(), id); err != nil {
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
