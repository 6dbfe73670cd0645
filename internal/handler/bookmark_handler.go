package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coboard-api/internal/dto"
	"coboard-api/internal/response"
	"coboard-api/internal/service"
)

// BookmarkHandler handles bookmark requests
type BookmarkHandler struct {
	bookmarkService service.BookmarkService
}

// NewBookmarkHandler creates a new BookmarkHandler
func NewBookmarkHandler(bookmarkService service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarkService: bookmarkService}
}

// CreateBookmark godoc
// @Summary      Bookmark a forum
// @Description  Bookmarks a forum for a user. The status field selects the user kind: "se" for registered users, anything else for anonymous.
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Param        board path string true "Board name"
// @Param        forum_slug path string true "Forum slug"
// @Param        request body dto.CreateBookmarkRequest true "Bookmark to create"
// @Success      201 {object} response.SuccessResponse{data=dto.BookmarkResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /coboard/{board}/{forum_slug} [post]
func (h *BookmarkHandler) CreateBookmark(c *gin.Context) {
	slug := c.Param("forum_slug")

	var req dto.CreateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.bookmarkService.CreateBookmark(c.Request.Context(), slug, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, result)
}

// DeleteBookmark godoc
// @Summary      Remove a bookmark
// @Description  Removes a user's bookmark from a forum. Status and user ID come as query parameters.
// @Tags         bookmarks
// @Produce      json
// @Param        board path string true "Board name"
// @Param        forum_slug path string true "Forum slug"
// @Param        status query string true "User kind: se or anonymous"
// @Param        user_id query string true "User ID"
// @Success      200 {object} response.SuccessResponse{data=dto.MessageResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /coboard/{board}/{forum_slug} [delete]
func (h *BookmarkHandler) DeleteBookmark(c *gin.Context) {
	slug := c.Param("forum_slug")

	status := c.Query("status")
	userID := c.Query("user_id")
	if status == "" || userID == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "status and user_id are required")
		return
	}

	if err := h.bookmarkService.DeleteBookmark(c.Request.Context(), slug, status, userID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.MessageResponse{Message: "Bookmark deleted successfully"})
}
