package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"creator-portal-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxMediaUpload chặn body quá khổ trước khi đọc hết vào memory
const maxMediaUpload = 50 * 1024 * 1024 // 50MB, đủ cho short-form video

// UploadAvatar handles POST /api/v1/admin/creators/:id/avatar
// Multipart field: "avatar"
func (h *CreatorHandler) UploadAvatar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", "invalid creator id")
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "MISSING_FILE", "avatar file is required")
		return
	}

	data, contentType, err := readUpload(fileHeader)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_FILE", err.Error())
		return
	}

	creator, err := h.service.UploadAvatar(c.Request.Context(), id, fileHeader.Filename, data, contentType)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, creator)
}

// AddMedia handles POST /api/v1/admin/creators/:id/media
// Multipart fields: "file" + optional "caption"
func (h *CreatorHandler) AddMedia(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", "invalid creator id")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "MISSING_FILE", "media file is required")
		return
	}

	data, contentType, err := readUpload(fileHeader)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_FILE", err.Error())
		return
	}

	caption := c.PostForm("caption")

	creator, err := h.service.AddMedia(c.Request.Context(), id, fileHeader.Filename, data, contentType, caption)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, creator)
}

// RemoveMedia handles DELETE /api/v1/admin/creators/:id/media/*mediaId
// Media ID là storage object key nên chứa slashes -> wildcard param
func (h *CreatorHandler) RemoveMedia(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", "invalid creator id")
		return
	}

	mediaID := strings.TrimPrefix(c.Param("mediaId"), "/")
	if mediaID == "" {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_MEDIA_ID", "media id is required")
		return
	}

	if err := h.service.RemoveMedia(c.Request.Context(), id, mediaID); err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "media removed"})
}

// readUpload đọc multipart file vào memory với size guard
func readUpload(fileHeader *multipart.FileHeader) ([]byte, string, error) {
	if fileHeader.Size > maxMediaUpload {
		return nil, "", errors.New("file exceeds the 50MB upload limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxMediaUpload+1))
	if err != nil {
		return nil, "", err
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return data, contentType, nil
}
