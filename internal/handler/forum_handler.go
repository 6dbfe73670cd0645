// Package handler provides HTTP request handlers for the API.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coboard-api/internal/dto"
	"coboard-api/internal/response"
	"coboard-api/internal/service"
)

// ForumHandler handles board, forum and access requests
type ForumHandler struct {
	forumService service.ForumService
}

// NewForumHandler creates a new ForumHandler
func NewForumHandler(forumService service.ForumService) *ForumHandler {
	return &ForumHandler{forumService: forumService}
}

// GetBoard godoc
// @Summary      List a board's forums
// @Description  Returns the board's forums newest first with contributor counts, plus tags, tag links and access grants
// @Tags         forums
// @Produce      json
// @Param        board path string true "Board name"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse}
// @Failure      500 {object} response.ErrorResponse
// @Router       /coboard/{board} [get]
func (h *ForumHandler) GetBoard(c *gin.Context) {
	board := c.Param("board")

	result, err := h.forumService.GetBoard(c.Request.Context(), board)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// CreateForum godoc
// @Summary      Create a forum
// @Description  Creates a forum on a board together with its tag links in one transaction
// @Tags         forums
// @Accept       json
// @Produce      json
// @Param        board path string true "Board name"
// @Param        request body dto.CreateForumRequest true "Forum to create"
// @Success      201 {object} response.SuccessResponse{data=dto.ForumResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /coboard/{board} [post]
func (h *ForumHandler) CreateForum(c *gin.Context) {
	board := c.Param("board")

	var req dto.CreateForumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.forumService.CreateForum(c.Request.Context(), board, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, result)
}

// GetForum godoc
// @Summary      Get a forum with its content
// @Description  Returns the forum with its topics, posts, comments, files, tags, bookmarks and access grants
// @Tags         forums
// @Produce      json
// @Param        board path string true "Board name"
// @Param        forum_slug path string true "Forum slug"
// @Success      200 {object} response.SuccessResponse{data=dto.ForumDetailResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /coboard/{board}/{forum_slug} [get]
func (h *ForumHandler) GetForum(c *gin.Context) {
	board := c.Param("board")
	slug := c.Param("forum_slug")

	result, err := h.forumService.GetForumDetail(c.Request.Context(), board, slug)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// UpdateForum godoc
// @Summary      Update a forum's settings
// @Description  Updates forum attributes and attaches any new tags. Tag links are only ever added.
// @Tags         forums
// @Accept       json
// @Produce      json
// @Param        board path string true "Board name"
// @Param        forum_slug path string true "Forum slug"
// @Param        request body dto.CreateForumRequest true "New forum settings"
// @Success      200 {object} response.SuccessResponse{data=dto.ForumDetailResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /coboard/{board}/{forum_slug}/setting [put]
func (h *ForumHandler) UpdateForum(c *gin.Context) {
	board := c.Param("board")
	slug := c.Param("forum_slug")

	var req dto.CreateForumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.forumService.UpdateForum(c.Request.Context(), board, slug, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// DeleteForum godoc
// @Summary      Delete a forum
// @Description  Deletes a forum and its tag links, topic links, bookmarks and access grants. Only the creator may delete.
// @Tags         forums
// @Produce      json
// @Param        sid path string true "Creator's student ID"
// @Param        forum_id path int true "Forum ID"
// @Success      200 {object} response.SuccessResponse{data=dto.MessageResponse}
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /user/{sid}/{forum_id} [delete]
func (h *ForumHandler) DeleteForum(c *gin.Context) {
	sid := c.Param("sid")

	forumID, err := strconv.ParseUint(c.Param("forum_id"), 10, 32)
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid forum ID")
		return
	}

	if err := h.forumService.DeleteForum(c.Request.Context(), sid, uint(forumID)); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.MessageResponse{Message: "Forum deleted successfully"})
}

// CreateAccess godoc
// @Summary      Grant forum access
// @Description  Grants a registered user access to a forum
// @Tags         access
// @Produce      json
// @Param        board path string true "Board name"
// @Param        forum_slug path string true "Forum slug"
// @Param        user_id query string true "Registered user ID"
// @Success      201 {object} response.SuccessResponse{data=dto.AccessResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /coboard/{board}/{forum_slug}/setting [post]
func (h *ForumHandler) CreateAccess(c *gin.Context) {
	slug := c.Param("forum_slug")

	userID := c.Query("user_id")
	if userID == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "user_id is required")
		return
	}

	result, err := h.forumService.CreateAccess(c.Request.Context(), slug, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, result)
}

// DeleteAccess godoc
// @Summary      Revoke all forum access
// @Description  Removes every access grant on a forum
// @Tags         access
// @Produce      json
// @Param        board path string true "Board name"
// @Param        forum_slug path string true "Forum slug"
// @Success      200 {object} response.SuccessResponse{data=dto.MessageResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /coboard/{board}/{forum_slug}/setting [delete]
func (h *ForumHandler) DeleteAccess(c *gin.Context) {
	slug := c.Param("forum_slug")

	removed, err := h.forumService.DeleteAllAccess(c.Request.Context(), slug)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	message := "Access deleted successfully"
	if removed == 0 {
		message = "No access records found for this forum"
	}
	response.SendSuccess(c, http.StatusOK, dto.MessageResponse{Message: message})
}
