package handler

import (
	"errors"
	"net/http"

	"creator-portal-backend/internal/domains/location/model"
	"creator-portal-backend/internal/domains/location/service"
	"creator-portal-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type LocationHandler struct {
	service service.ServiceInterface
}

func NewLocationHandler(svc service.ServiceInterface) *LocationHandler {
	return &LocationHandler{service: svc}
}

// List handles GET /api/v1/locations
// Active registry entries, predefined trước
func (h *LocationHandler) List(c *gin.Context) {
	entries, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		respondLocationError(c, err)
		return
	}
	if entries == nil {
		entries = []model.LocationEntry{}
	}
	response.Success(c, http.StatusOK, entries)
}

// ListPredefined handles GET /api/v1/locations/predefined
func (h *LocationHandler) ListPredefined(c *gin.Context) {
	entries, err := h.service.ListPredefined(c.Request.Context())
	if err != nil {
		respondLocationError(c, err)
		return
	}
	if entries == nil {
		entries = []model.LocationEntry{}
	}
	response.Success(c, http.StatusOK, entries)
}

// ListDistinct handles GET /api/v1/locations/distinct
// Union registry với locations đang dùng trên creators (cho filter dropdown)
func (h *LocationHandler) ListDistinct(c *gin.Context) {
	names, err := h.service.ListDistinct(c.Request.Context())
	if err != nil {
		respondLocationError(c, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	response.Success(c, http.StatusOK, names)
}

// Create handles POST /api/v1/admin/locations
func (h *LocationHandler) Create(c *gin.Context) {
	var req model.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	entry, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondLocationError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, entry)
}

// EnsureCustom handles POST /api/v1/admin/locations/custom
// Idempotent find-or-create: gọi lại với cùng tên (bất kể casing)
// trả về cùng một entry
func (h *LocationHandler) EnsureCustom(c *gin.Context) {
	var req model.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondLocationError(c, err)
		return
	}

	entry, err := h.service.EnsureLocation(c.Request.Context(), req.Name)
	if err != nil {
		respondLocationError(c, err)
		return
	}

	response.Success(c, http.StatusOK, entry)
}

// Update handles PUT /api/v1/admin/locations/:id
func (h *LocationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", "invalid location id")
		return
	}

	var req model.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	entry, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondLocationError(c, err)
		return
	}

	response.Success(c, http.StatusOK, entry)
}

// Delete handles DELETE /api/v1/admin/locations/:id
// Soft delete; predefined entries bị chặn ở service
func (h *LocationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", "invalid location id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondLocationError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "location deactivated"})
}

func respondLocationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrLocationNotFound):
		response.ErrorResponse(c, http.StatusNotFound, "LOCATION_NOT_FOUND", err.Error())
	case errors.Is(err, model.ErrLocationExists):
		response.ErrorResponse(c, http.StatusConflict, "LOCATION_EXISTS", err.Error())
	default:
		var ve validation.Errors
		if errors.As(err, &ve) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", ve)
			return
		}
		response.ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
