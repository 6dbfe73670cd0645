package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coboard-api/internal/dto"
	"coboard-api/internal/response"
	"coboard-api/internal/service"
)

// MailHandler handles password recovery mail requests
type MailHandler struct {
	mailService service.MailService
}

// NewMailHandler creates a new MailHandler
func NewMailHandler(mailService service.MailService) *MailHandler {
	return &MailHandler{mailService: mailService}
}

// SendMail godoc
// @Summary      Send a password recovery mail
// @Tags         mail
// @Accept       json
// @Produce      json
// @Param        request body dto.SendMailRequest true "Receiver and password"
// @Success      200 {object} response.SuccessResponse{data=dto.MessageResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /sendmail [post]
func (h *MailHandler) SendMail(c *gin.Context) {
	var req dto.SendMailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	if err := h.mailService.SendPasswordRecovery(c.Request.Context(), &req); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.MessageResponse{Message: "Email sent successfully!"})
}
