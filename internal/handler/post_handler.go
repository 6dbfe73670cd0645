package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coboard-api/internal/dto"
	"coboard-api/internal/response"
	"coboard-api/internal/service"
)

// PostHandler handles topic, post, comment and like requests
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// CreateTopic godoc
// @Summary      Open a topic
// @Description  Creates a topic in a forum and refreshes the forum's last_updated
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        board path string true "Board name"
// @Param        forum_slug path string true "Forum slug"
// @Param        request body dto.CreateTopicRequest true "Topic to create"
// @Success      201 {object} response.SuccessResponse{data=dto.TopicResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /coboard/{board}/{forum_slug}/topic [post]
func (h *PostHandler) CreateTopic(c *gin.Context) {
	board := c.Param("board")
	slug := c.Param("forum_slug")

	var req dto.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.postService.CreateTopic(c.Request.Context(), board, slug, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, result)
}

// CreatePost godoc
// @Summary      Add a post to a topic
// @Description  Creates a post under the topic given by the topic_id query parameter. Exactly one creator of either user kind must be set.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        board path string true "Board name"
// @Param        forum_slug path string true "Forum slug"
// @Param        topic_id query int true "Topic ID"
// @Param        request body dto.CreatePostRequest true "Post to create"
// @Success      201 {object} response.SuccessResponse{data=dto.PostResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /coboard/{board}/{forum_slug}/post [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	board := c.Param("board")
	slug := c.Param("forum_slug")

	topicID, err := strconv.ParseUint(c.Query("topic_id"), 10, 32)
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid topic ID")
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.postService.CreatePost(c.Request.Context(), board, slug, uint(topicID), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, result)
}

// AddComment godoc
// @Summary      Comment on a post
// @Description  Creates a comment on the post given by the post_id query parameter. Exactly one creator of either user kind must be set.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        board path string true "Board name"
// @Param        forum_slug path string true "Forum slug"
// @Param        post_id query int true "Post ID"
// @Param        request body dto.CreateCommentRequest true "Comment to create"
// @Success      201 {object} response.SuccessResponse{data=dto.CommentResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /coboard/{board}/{forum_slug}/comment [post]
func (h *PostHandler) AddComment(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Query("post_id"), 10, 32)
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid post ID")
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.postService.AddComment(c.Request.Context(), uint(postID), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, result)
}

// UpdateLike godoc
// @Summary      Like a post or comment
// @Description  Adds one like to the given post or comment and returns the new count. Likes are not idempotent.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        board path string true "Board name"
// @Param        forum_slug path string true "Forum slug"
// @Param        request body dto.UpdateLikeRequest true "Item to like"
// @Success      200 {object} response.SuccessResponse{data=dto.LikeResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /coboard/{board}/{forum_slug}/like [put]
func (h *PostHandler) UpdateLike(c *gin.Context) {
	var req dto.UpdateLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.postService.UpdateLike(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}
