package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"coboard-api/internal/dto"
	"coboard-api/internal/response"
)

// MockMailService is a mock implementation of MailService
type MockMailService struct {
	SendPasswordRecoveryFunc func(ctx context.Context, req *dto.SendMailRequest) error
}

func (m *MockMailService) SendPasswordRecovery(ctx context.Context, req *dto.SendMailRequest) error {
	if m.SendPasswordRecoveryFunc != nil {
		return m.SendPasswordRecoveryFunc(ctx, req)
	}
	return nil
}

func TestMailHandler_SendMail(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockService    func(*MockMailService)
		expectedStatus int
	}{
		{
			name:           "mail sent",
			requestBody:    dto.SendMailRequest{ReceiverEmail: "g@example.com", PW: "secret"},
			mockService:    func(m *MockMailService) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid receiver address",
			requestBody:    map[string]string{"receiver_email": "not-a-mail", "pw": "secret"},
			mockService:    func(m *MockMailService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "mailer failure",
			requestBody: dto.SendMailRequest{ReceiverEmail: "g@example.com", PW: "secret"},
			mockService: func(m *MockMailService) {
				m.SendPasswordRecoveryFunc = func(ctx context.Context, req *dto.SendMailRequest) error {
					return response.NewAppError(response.ErrCodeInternal, "Failed to send mail", "")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockMailService{}
			tt.mockService(mockService)
			handler := NewMailHandler(mockService)

			router := setupTestRouter()
			router.POST("/sendmail", handler.SendMail)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/sendmail", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("SendMail() status = %v, want %v", w.Code, tt.expectedStatus)
			}
		})
	}
}
