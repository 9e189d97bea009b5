package rental

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/storalia/bodega/internal/domain"
	"github.com/storalia/bodega/internal/middleware"
	"github.com/storalia/bodega/internal/pkg"
)

// RentalHandler handles REST API requests for the rental resource.
type RentalHandler struct {
	svc domain.RentalService
}

// NewRentalHandler creates a new RentalHandler with the given service.
func NewRentalHandler(svc domain.RentalService) *RentalHandler {
	return &RentalHandler{svc: svc}
}

// Create handles POST /api/v1/rentals.
func (h *RentalHandler) Create(c *gin.Context) {
	var req RentalRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	rt, err := h.svc.CreateRental(c.Request.Context(), req.toEntity())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    rt,
	})
}

// Get handles GET /api/v1/rentals/:id.
func (h *RentalHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	rt, err := h.svc.GetRental(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, rt)
}

// List handles GET /api/v1/rentals.
func (h *RentalHandler) List(c *gin.Context) {
	spec := pkg.ParseQuerySpec(c)
	sel := pkg.ParseActiveSelector(c)

	result, err := h.svc.ListRentals(c.Request.Context(), spec, sel)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/rentals/:id.
func (h *RentalHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req RentalRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	rt, err := h.svc.UpdateRental(c.Request.Context(), id, req.toEntity())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, rt)
}

// Deactivate handles POST /api/v1/rentals/:id/deactivate.
func (h *RentalHandler) Deactivate(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeactivateRental(c.Request.Context(), id, middleware.IdentityFromContext(c)); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// Reactivate handles POST /api/v1/rentals/:id/reactivate.
func (h *RentalHandler) Reactivate(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.ReactivateRental(c.Request.Context(), id); err != nil {
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
