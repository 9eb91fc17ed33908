package handler

import (
	"net/http"

	"creator-portal-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Import handles POST /api/v1/admin/creators/import
// Multipart upload field: "file". Response là import summary với
// per-row errors; gate/parse failures trả 400 không xử lý row nào.
func (h *CreatorHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "MISSING_FILE", "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_FILE", "cannot open uploaded file")
		return
	}
	defer file.Close()

	summary, err := h.service.Import(
		c.Request.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// Summary có envelope riêng (message/success/created/errors/data)
	c.JSON(http.StatusOK, summary)
}

// Template handles GET /api/v1/admin/creators/import/template
// Trả CSV mẫu download được, không đụng tới live data
func (h *CreatorHandler) Template(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="creators_template.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(h.service.Template()))
}
