package handler

import (
	"errors"
	"net/http"

	"creator-portal-backend/internal/domains/creator/model"
	"creator-portal-backend/internal/domains/creator/service"
	"creator-portal-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type CreatorHandler struct {
	service service.ServiceInterface
}

func NewCreatorHandler(svc service.ServiceInterface) *CreatorHandler {
	return &CreatorHandler{service: svc}
}

// List handles GET /api/v1/creators
// Public directory browsing: search, filter, sort, paginate
func (h *CreatorHandler) List(c *gin.Context) {
	var req model.ListCreatorsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_QUERY", err.Error())
		return
	}

	resp, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, resp.Creators, &response.Meta{
		Page:  resp.Page,
		Limit: resp.Limit,
		Total: resp.Total,
	})
}

// GetByID handles GET /api/v1/creators/:id
func (h *CreatorHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", "invalid creator id")
		return
	}

	creator, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, creator)
}

// Create handles POST /api/v1/admin/creators
func (h *CreatorHandler) Create(c *gin.Context) {
	var req model.CreateCreatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	creator, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, creator)
}

// Update handles PUT /api/v1/admin/creators/:id
func (h *CreatorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", "invalid creator id")
		return
	}

	var req model.UpdateCreatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	creator, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, creator)
}

// Delete handles DELETE /api/v1/admin/creators/:id
func (h *CreatorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", "invalid creator id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "creator deleted"})
}

// Stats handles GET /api/v1/admin/creators/stats
func (h *CreatorHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// Export handles GET /api/v1/admin/creators/export?format=csv|xlsx
func (h *CreatorHandler) Export(c *gin.Context) {
	switch c.DefaultQuery("format", "csv") {
	case "csv":
		data, err := h.service.ExportCSV(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="creators_export.csv"`)
		c.Data(http.StatusOK, "text/csv", data)
	case "xlsx":
		data, err := h.service.ExportXLSX(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="creators_export.xlsx"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	default:
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv or xlsx")
	}
}

// respondServiceError map service errors sang HTTP status + code
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrCreatorNotFound):
		response.ErrorResponse(c, http.StatusNotFound, "CREATOR_NOT_FOUND", err.Error())
	case errors.Is(err, model.ErrMediaNotFound):
		response.ErrorResponse(c, http.StatusNotFound, "MEDIA_NOT_FOUND", err.Error())
	case errors.Is(err, model.ErrDuplicateMediaID):
		response.ErrorResponse(c, http.StatusConflict, "DUPLICATE_MEDIA", err.Error())
	case errors.Is(err, model.ErrInvalidFileType),
		errors.Is(err, model.ErrFileTooLarge),
		errors.Is(err, model.ErrEmptyFile):
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_FILE", err.Error())
	default:
		var ve validation.Errors
		if errors.As(err, &ve) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", ve)
			return
		}
		response.ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
