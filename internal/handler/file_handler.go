package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"coboard-api/internal/response"
	"coboard-api/internal/service"
)

// nullField is the sentinel clients send for an absent multipart field
const nullField = "null"

// FileHandler handles file upload and download requests
type FileHandler struct {
	fileService service.FileService
}

// NewFileHandler creates a new FileHandler
func NewFileHandler(fileService service.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// Upload godoc
// @Summary      Upload a file
// @Description  Stores a file and its metadata. Owner fields use the literal string "null" when absent. The stored object is named {file_id}_{owner}_{filename}.
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "File content"
// @Param        s_owner formData string true "Registered owner ID or null"
// @Param        a_owner formData string true "Anonymous owner ID or null"
// @Param        post_id formData string true "Post ID or null"
// @Success      201 {object} response.SuccessResponse{data=dto.UploadFileResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /file [post]
func (h *FileHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "File is required")
		return
	}

	sOwner := formValue(c, "s_owner")
	aOwner := formValue(c, "a_owner")

	var postID *uint
	if raw := c.PostForm("post_id"); raw != "" && raw != nullField {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid post ID")
			return
		}
		id := uint(parsed)
		postID = &id
	}

	content, err := fileHeader.Open()
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Failed to read file")
		return
	}
	defer content.Close()

	result, err := h.fileService.Upload(c.Request.Context(), fileHeader.Filename, content, sOwner, aOwner, postID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, result)
}

// Download godoc
// @Summary      Download a file
// @Description  Streams a stored file. The Content-Disposition filename uses RFC 5987 encoding so non-ASCII names survive.
// @Tags         files
// @Produce      application/octet-stream
// @Param        file_id path int true "File ID"
// @Success      200 {file} binary
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /file/{file_id} [get]
func (h *FileHandler) Download(c *gin.Context) {
	fileID, err := strconv.ParseUint(c.Param("file_id"), 10, 32)
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid file ID")
		return
	}

	result, err := h.fileService.Download(c.Request.Context(), uint(fileID))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	defer result.Content.Close()

	headers := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(result.Filename)),
	}
	c.DataFromReader(http.StatusOK, result.Size, result.MimeType, result.Content, headers)
}

// formValue reads a multipart field, mapping empty and the "null" sentinel
// to nil
func formValue(c *gin.Context, field string) *string {
	raw := c.PostForm(field)
	if raw == "" || raw == nullField {
		return nil
	}
	return &raw
}
