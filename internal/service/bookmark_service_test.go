package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"coboard-api/internal/domain"
	"coboard-api/internal/dto"
	"coboard-api/internal/response"
)

func slugFinder() *MockForumRepository {
	return &MockForumRepository{
		FindBySlugFunc: func(ctx context.Context, slug string) (*domain.Forum, error) {
			return &domain.Forum{ForumID: 1, Slug: slug}, nil
		},
	}
}

func TestBookmarkService_CreateBookmark_Registered(t *testing.T) {
	userRepo := &MockUserRepository{
		FindSEByIDFunc: func(ctx context.Context, sid string) (*domain.SEUser, error) {
			return &domain.SEUser{SID: sid}, nil
		},
	}
	var sMark *domain.SBookmark
	bookmarkRepo := &MockBookmarkRepository{
		CreateSBookmarkFunc: func(ctx context.Context, mark *domain.SBookmark) error {
			sMark = mark
			return nil
		},
	}
	svc := NewBookmarkService(slugFinder(), userRepo, bookmarkRepo, zap.NewNop())

	resp, err := svc.CreateBookmark(context.Background(), "gophers", &dto.CreateBookmarkRequest{
		UserID: "2020123456",
		Status: "se",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, resp.ForumID)
	require.NotNil(t, sMark, "status se must go to the registered bookmark table")
	assert.Equal(t, "2020123456", sMark.UserID)
}

func TestBookmarkService_CreateBookmark_Anonymous(t *testing.T) {
	userRepo := &MockUserRepository{
		FindAnonymousByIDFunc: func(ctx context.Context, aid string) (*domain.AnonymousUser, error) {
			return &domain.AnonymousUser{AID: aid}, nil
		},
	}
	var aMark *domain.ABookmark
	bookmarkRepo := &MockBookmarkRepository{
		CreateABookmarkFunc: func(ctx context.Context, mark *domain.ABookmark) error {
			aMark = mark
			return nil
		},
	}
	svc := NewBookmarkService(slugFinder(), userRepo, bookmarkRepo, zap.NewNop())

	// Any status other than "se" selects the anonymous table
	resp, err := svc.CreateBookmark(context.Background(), "gophers", &dto.CreateBookmarkRequest{
		UserID: "guest42",
		Status: "anonymous",
	})
	require.NoError(t, err)
	assert.Equal(t, "guest42", resp.UserID)
	require.NotNil(t, aMark)
}

func TestBookmarkService_CreateBookmark_UnknownUser(t *testing.T) {
	svc := NewBookmarkService(slugFinder(), &MockUserRepository{}, &MockBookmarkRepository{}, zap.NewNop())

	_, err := svc.CreateBookmark(context.Background(), "gophers", &dto.CreateBookmarkRequest{
		UserID: "nobody",
		Status: "se",
	})
	assertAppErrorCode(t, err, response.ErrCodeNotFound)
}

func TestBookmarkService_CreateBookmark_ForumNotFound(t *testing.T) {
	svc := NewBookmarkService(&MockForumRepository{}, &MockUserRepository{}, &MockBookmarkRepository{}, zap.NewNop())

	_, err := svc.CreateBookmark(context.Background(), "missing", &dto.CreateBookmarkRequest{
		UserID: "2020123456",
		Status: "se",
	})
	assertAppErrorCode(t, err, response.ErrCodeNotFound)
}

func TestBookmarkService_DeleteBookmark(t *testing.T) {
	var deletedS, deletedA bool
	bookmarkRepo := &MockBookmarkRepository{
		DeleteSBookmarkFunc: func(ctx context.Context, forumID uint, userID string) error {
			deletedS = true
			return nil
		},
		DeleteABookmarkFunc: func(ctx context.Context, forumID uint, userID string) error {
			deletedA = true
			return nil
		},
	}
	svc := NewBookmarkService(slugFinder(), &MockUserRepository{}, bookmarkRepo, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.DeleteBookmark(ctx, "gophers", "se", "2020123456"))
	assert.True(t, deletedS)
	assert.False(t, deletedA)

	require.NoError(t, svc.DeleteBookmark(ctx, "gophers", "anonymous", "guest42"))
	assert.True(t, deletedA)
}

func TestBookmarkService_DeleteBookmark_NotFound(t *testing.T) {
	bookmarkRepo := &MockBookmarkRepository{
		DeleteSBookmarkFunc: func(ctx context.Context, forumID uint, userID string) error {
			return gorm.ErrRecordNotFound
		},
	}
	svc := NewBookmarkService(slugFinder(), &MockUserRepository{}, bookmarkRepo, zap.NewNop())

	err := svc.DeleteBookmark(context.Background(), "gophers", "se", "2020123456")
	assertAppErrorCode(t, err, response.ErrCodeNotFound)
}
