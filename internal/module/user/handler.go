package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/storalia/bodega/internal/domain"
	"github.com/storalia/bodega/internal/middleware"
	"github.com/storalia/bodega/internal/pkg"
)

// UserHandler handles REST API requests for the user resource.
type UserHandler struct {
	svc domain.UserService
}

// NewUserHandler creates a new UserHandler with the given service.
func NewUserHandler(svc domain.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Create handles POST /api/v1/users.
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	u, err := h.svc.CreateUser(c.Request.Context(), req.toEntity(), req.Password)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    u,
	})
}

// Get handles GET /api/v1/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	u, err := h.svc.GetUser(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, u)
}

// List handles GET /api/v1/users.
func (h *UserHandler) List(c *gin.Context) {
	spec := pkg.ParseQuerySpec(c)
	sel := pkg.ParseActiveSelector(c)

	result, err := h.svc.ListUsers(c.Request.Context(), spec, sel)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/users/:id.
func (h *UserHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateUserRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	u, err := h.svc.UpdateUser(c.Request.Context(), id, req.toEntity(), req.Password)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, u)
}

// Deactivate handles POST /api/v1/users/:id/deactivate.
func (h *UserHandler) Deactivate(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeactivateUser(c.Request.Context(), id, middleware.IdentityFromContext(c)); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// Reactivate handles POST /api/v1/users/:id/reactivate.
func (h *UserHandler) Reactivate(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.ReactivateUser(c.Request.Context(), id); err != nil {
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
