package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"coboard-api/internal/domain"
	"coboard-api/internal/dto"
	"coboard-api/internal/repository"
	"coboard-api/internal/response"
)

// BookmarkService defines the interface for bookmark business logic
type BookmarkService interface {
	CreateBookmark(ctx context.Context, slug string, req *dto.CreateBookmarkRequest) (*dto.BookmarkResponse, error)
	DeleteBookmark(ctx context.Context, slug, status, userID string) error
}

// bookmarkServiceImpl is the implementation of BookmarkService
type bookmarkServiceImpl struct {
	forumRepo    repository.ForumRepository
	userRepo     repository.UserRepository
	bookmarkRepo repository.BookmarkRepository
	logger       *zap.Logger
}

// NewBookmarkService creates a new instance of BookmarkService
func NewBookmarkService(
	forumRepo repository.ForumRepository,
	userRepo repository.UserRepository,
	bookmarkRepo repository.BookmarkRepository,
	logger *zap.Logger,
) BookmarkService {
	return &bookmarkServiceImpl{
		forumRepo:    forumRepo,
		userRepo:     userRepo,
		bookmarkRepo: bookmarkRepo,
		logger:       logger,
	}
}

// CreateBookmark bookmarks a forum for a user. The status field selects the
// user table: "se" for registered users, anything else for anonymous.
func (s *bookmarkServiceImpl) CreateBookmark(ctx context.Context, slug string, req *dto.CreateBookmarkRequest) (*dto.BookmarkResponse, error) {
	forum, err := s.forumRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Forum not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch forum", err.Error())
	}

	identity, err := domain.IdentityFromKind(req.Status, req.UserID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid bookmark user", err.Error())
	}

	if identity.IsRegistered() {
		user, err := s.userRepo.FindSEByID(ctx, req.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
		}

		mark := &domain.SBookmark{ForumID: forum.ForumID, UserID: user.SID}
		if err := s.bookmarkRepo.CreateSBookmark(ctx, mark); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create bookmark", err.Error())
		}
		return &dto.BookmarkResponse{ForumID: mark.ForumID, UserID: mark.UserID}, nil
	}

	user, err := s.userRepo.FindAnonymousByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	mark := &domain.ABookmark{ForumID: forum.ForumID, UserID: user.AID}
	if err := s.bookmarkRepo.CreateABookmark(ctx, mark); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create bookmark", err.Error())
	}
	return &dto.BookmarkResponse{ForumID: mark.ForumID, UserID: mark.UserID}, nil
}

// DeleteBookmark removes a user's bookmark from a forum
func (s *bookmarkServiceImpl) DeleteBookmark(ctx context.Context, slug, status, userID string) error {
	forum, err := s.forumRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Forum not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch forum", err.Error())
	}

	identity, err := domain.IdentityFromKind(status, userID)
	if err != nil {
		return response.NewAppError(response.ErrCodeValidation, "Invalid bookmark user", err.Error())
	}

	if identity.IsRegistered() {
		err = s.bookmarkRepo.DeleteSBookmark(ctx, forum.ForumID, userID)
	} else {
		err = s.bookmarkRepo.DeleteABookmark(ctx, forum.ForumID, userID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Bookmark not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete bookmark", err.Error())
	}

	s.logger.Info("Bookmark deleted",
		zap.Uint("forum_id", forum.ForumID),
		zap.String("user_id", userID),
		zap.String("status", status),
	)
	return nil
}
