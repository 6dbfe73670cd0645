package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"coboard-api/internal/dto"
	"coboard-api/internal/response"
)

// setupTestRouter creates a bare gin engine in test mode
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func strPtr(s string) *string { return &s }

// MockForumService is a mock implementation of ForumService
type MockForumService struct {
	GetBoardFunc        func(ctx context.Context, board string) (*dto.BoardResponse, error)
	CreateForumFunc     func(ctx context.Context, board string, req *dto.CreateForumRequest) (*dto.ForumResponse, error)
	GetForumDetailFunc  func(ctx context.Context, board, slug string) (*dto.ForumDetailResponse, error)
	UpdateForumFunc     func(ctx context.Context, board, slug string, req *dto.CreateForumRequest) (*dto.ForumDetailResponse, error)
	DeleteForumFunc     func(ctx context.Context, sid string, forumID uint) error
	CreateAccessFunc    func(ctx context.Context, slug, userID string) (*dto.AccessResponse, error)
	DeleteAllAccessFunc func(ctx context.Context, slug string) (int64, error)
}

func (m *MockForumService) GetBoard(ctx context.Context, board string) (*dto.BoardResponse, error) {
	if m.GetBoardFunc != nil {
		return m.GetBoardFunc(ctx, board)
	}
	return &dto.BoardResponse{}, nil
}

func (m *MockForumService) CreateForum(ctx context.Context, board string, req *dto.CreateForumRequest) (*dto.ForumResponse, error) {
	if m.CreateForumFunc != nil {
		return m.CreateForumFunc(ctx, board, req)
	}
	return &dto.ForumResponse{}, nil
}

func (m *MockForumService) GetForumDetail(ctx context.Context, board, slug string) (*dto.ForumDetailResponse, error) {
	if m.GetForumDetailFunc != nil {
		return m.GetForumDetailFunc(ctx, board, slug)
	}
	return &dto.ForumDetailResponse{}, nil
}

func (m *MockForumService) UpdateForum(ctx context.Context, board, slug string, req *dto.CreateForumRequest) (*dto.ForumDetailResponse, error) {
	if m.UpdateForumFunc != nil {
		return m.UpdateForumFunc(ctx, board, slug, req)
	}
	return &dto.ForumDetailResponse{}, nil
}

func (m *MockForumService) DeleteForum(ctx context.Context, sid string, forumID uint) error {
	if m.DeleteForumFunc != nil {
		return m.DeleteForumFunc(ctx, sid, forumID)
	}
	return nil
}

func (m *MockForumService) CreateAccess(ctx context.Context, slug, userID string) (*dto.AccessResponse, error) {
	if m.CreateAccessFunc != nil {
		return m.CreateAccessFunc(ctx, slug, userID)
	}
	return &dto.AccessResponse{}, nil
}

func (m *MockForumService) DeleteAllAccess(ctx context.Context, slug string) (int64, error) {
	if m.DeleteAllAccessFunc != nil {
		return m.DeleteAllAccessFunc(ctx, slug)
	}
	return 0, nil
}

func TestForumHandler_GetBoard(t *testing.T) {
	tests := []struct {
		name           string
		mockService    func(*MockForumService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "board with one forum",
			mockService: func(m *MockForumService) {
				m.GetBoardFunc = func(ctx context.Context, board string) (*dto.BoardResponse, error) {
					return &dto.BoardResponse{
						Forums: []dto.ForumWithContributors{
							{
								ForumResponse:     dto.ForumResponse{ForumID: 1, ForumName: "Gophers", Board: board},
								TotalContributors: 2,
							},
						},
						Tags:     []dto.TagResponse{},
						ForumTag: []dto.ForumTagResponse{},
						Access:   []dto.AccessResponse{},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp response.SuccessResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("Failed to unmarshal response: %v", err)
				}
				if !resp.Success {
					t.Error("expected success envelope")
				}
			},
		},
		{
			name: "service failure",
			mockService: func(m *MockForumService) {
				m.GetBoardFunc = func(ctx context.Context, board string) (*dto.BoardResponse, error) {
					return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch forums", "")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockForumService{}
			tt.mockService(mockService)
			handler := NewForumHandler(mockService)

			router := setupTestRouter()
			router.GET("/coboard/:board", handler.GetBoard)

			req := httptest.NewRequest(http.MethodGet, "/coboard/coboard", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("GetBoard() status = %v, want %v", w.Code, tt.expectedStatus)
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestForumHandler_CreateForum(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockService    func(*MockForumService)
		expectedStatus int
	}{
		{
			name: "forum created",
			requestBody: dto.CreateForumRequest{
				ForumName: "Gophers",
				CreatorID: "2020123456",
				Board:     "coboard",
				Slug:      strPtr("gophers"),
			},
			mockService: func(m *MockForumService) {
				m.CreateForumFunc = func(ctx context.Context, board string, req *dto.CreateForumRequest) (*dto.ForumResponse, error) {
					return &dto.ForumResponse{ForumID: 1, ForumName: req.ForumName, Board: board}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "malformed body",
			requestBody:    "not json",
			mockService:    func(m *MockForumService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "board mismatch",
			requestBody: dto.CreateForumRequest{
				ForumName: "Gophers",
				CreatorID: "2020123456",
				Board:     "other",
			},
			mockService: func(m *MockForumService) {
				m.CreateForumFunc = func(ctx context.Context, board string, req *dto.CreateForumRequest) (*dto.ForumResponse, error) {
					return nil, response.NewAppError(response.ErrCodeValidation, "Board in URL doesn't match board in forum data", "")
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate name",
			requestBody: dto.CreateForumRequest{
				ForumName: "Gophers",
				CreatorID: "2020123456",
				Board:     "coboard",
			},
			mockService: func(m *MockForumService) {
				m.CreateForumFunc = func(ctx context.Context, board string, req *dto.CreateForumRequest) (*dto.ForumResponse, error) {
					return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Forum already exists", "")
				}
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockForumService{}
			tt.mockService(mockService)
			handler := NewForumHandler(mockService)

			router := setupTestRouter()
			router.POST("/coboard/:board", handler.CreateForum)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/coboard/coboard", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("CreateForum() status = %v, want %v", w.Code, tt.expectedStatus)
			}
		})
	}
}

func TestForumHandler_DeleteForum(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		mockService    func(*MockForumService)
		expectedStatus int
	}{
		{
			name: "deleted by creator",
			path: "/user/2020123456/7",
			mockService: func(m *MockForumService) {
				m.DeleteForumFunc = func(ctx context.Context, sid string, forumID uint) error {
					if sid != "2020123456" || forumID != 7 {
						t.Errorf("DeleteForum called with sid=%s forumID=%d", sid, forumID)
					}
					return nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "non-numeric forum id",
			path:           "/user/2020123456/abc",
			mockService:    func(m *MockForumService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "not the creator",
			path: "/user/2019000000/7",
			mockService: func(m *MockForumService) {
				m.DeleteForumFunc = func(ctx context.Context, sid string, forumID uint) error {
					return response.NewAppError(response.ErrCodeForbidden, "Only the creator can delete this forum", "")
				}
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "forum missing",
			path: "/user/2020123456/999",
			mockService: func(m *MockForumService) {
				m.DeleteForumFunc = func(ctx context.Context, sid string, forumID uint) error {
					return response.NewAppError(response.ErrCodeNotFound, "Forum not found", "")
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockForumService{}
			tt.mockService(mockService)
			handler := NewForumHandler(mockService)

			router := setupTestRouter()
			router.DELETE("/user/:sid/:forum_id", handler.DeleteForum)

			req := httptest.NewRequest(http.MethodDelete, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("DeleteForum() status = %v, want %v", w.Code, tt.expectedStatus)
			}
		})
	}
}

func TestForumHandler_CreateAccess(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		mockService    func(*MockForumService)
		expectedStatus int
	}{
		{
			name:  "access granted",
			query: "?user_id=2020123456",
			mockService: func(m *MockForumService) {
				m.CreateAccessFunc = func(ctx context.Context, slug, userID string) (*dto.AccessResponse, error) {
					return &dto.AccessResponse{ForumID: 1, UserID: userID}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing user_id",
			query:          "",
			mockService:    func(m *MockForumService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "unknown user",
			query: "?user_id=nobody",
			mockService: func(m *MockForumService) {
				m.CreateAccessFunc = func(ctx context.Context, slug, userID string) (*dto.AccessResponse, error) {
					return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockForumService{}
			tt.mockService(mockService)
			handler := NewForumHandler(mockService)

			router := setupTestRouter()
			router.POST("/coboard/:board/:forum_slug/setting", handler.CreateAccess)

			req := httptest.NewRequest(http.MethodPost, "/coboard/coboard/gophers/setting"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("CreateAccess() status = %v, want %v", w.Code, tt.expectedStatus)
			}
		})
	}
}

func TestForumHandler_DeleteAccess_MessageVariants(t *testing.T) {
	tests := []struct {
		name        string
		removed     int64
		wantMessage string
	}{
		{name: "grants removed", removed: 3, wantMessage: "Access deleted successfully"},
		{name: "nothing to remove", removed: 0, wantMessage: "No access records found for this forum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockForumService{
				DeleteAllAccessFunc: func(ctx context.Context, slug string) (int64, error) {
					return tt.removed, nil
				},
			}
			handler := NewForumHandler(mockService)

			router := setupTestRouter()
			router.DELETE("/coboard/:board/:forum_slug/setting", handler.DeleteAccess)

			req := httptest.NewRequest(http.MethodDelete, "/coboard/coboard/gophers/setting", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("DeleteAccess() status = %v, want %v", w.Code, http.StatusOK)
			}

			var resp struct {
				Success bool                `json:"success"`
				Data    dto.MessageResponse `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to unmarshal response: %v", err)
			}
			if resp.Data.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", resp.Data.Message, tt.wantMessage)
			}
		})
	}
}
