package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coboard-api/internal/dto"
	"coboard-api/internal/response"
	"coboard-api/internal/service"
)

// UserHandler handles user requests across both user kinds
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers godoc
// @Summary      List all users
// @Description  Returns every registered and anonymous user
// @Tags         users
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.UserListResponse}
// @Failure      500 {object} response.ErrorResponse
// @Router       / [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	result, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// Signup godoc
// @Summary      Register an anonymous user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body dto.SignupRequest true "User to create"
// @Success      201 {object} response.SuccessResponse{data=dto.AnonymousUserResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /signup [post]
func (h *UserHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.userService.Signup(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, result)
}

// GetUser godoc
// @Summary      Get a user profile
// @Description  Returns the user's profile with bookmarked forums, created forums (registered users only) and uploaded files. The ID is looked up in both user tables, registered first.
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} response.SuccessResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /user/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id := c.Param("id")

	seProfile, anonProfile, err := h.userService.GetUserProfile(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if seProfile != nil {
		response.SendSuccess(c, http.StatusOK, seProfile)
		return
	}
	response.SendSuccess(c, http.StatusOK, anonProfile)
}

// UpdateUser godoc
// @Summary      Update a user
// @Description  Updates username, password and profile image. For anonymous users the username replaces the account ID.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID"
// @Param        request body dto.UpdateUserRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /user/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	seUser, anonUser, err := h.userService.UpdateUser(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if seUser != nil {
		response.SendSuccess(c, http.StatusOK, seUser)
		return
	}
	response.SendSuccess(c, http.StatusOK, anonUser)
}
