package repository

import (
	"context"

	"gorm.io/gorm"

	"coboard-api/internal/domain"
)

// BookmarkRepository defines the interface for bookmark data access across
// both bookmark tables
type BookmarkRepository interface {
	CreateSBookmark(ctx context.Context, mark *domain.SBookmark) error
	CreateABookmark(ctx context.Context, mark *domain.ABookmark) error
	DeleteSBookmark(ctx context.Context, forumID uint, userID string) error
	DeleteABookmark(ctx context.Context, forumID uint, userID string) error
	FindSBookmarksByForum(ctx context.Context, forumID uint) ([]domain.SBookmark, error)
	FindABookmarksByForum(ctx context.Context, forumID uint) ([]domain.ABookmark, error)
	FindForumsBookmarkedBySE(ctx context.Context, sid string) ([]domain.Forum, error)
	FindForumsBookmarkedByAnonymous(ctx context.Context, aid string) ([]domain.Forum, error)
}

// bookmarkRepositoryImpl is the GORM implementation of BookmarkRepository
type bookmarkRepositoryImpl struct {
	db *gorm.DB
}

// NewBookmarkRepository creates a new instance of BookmarkRepository
func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepositoryImpl{db: db}
}

// CreateSBookmark creates a bookmark for a registered user
func (r *bookmarkRepositoryImpl) CreateSBookmark(ctx context.Context, mark *domain.SBookmark) error {
	if err := r.db.WithContext(ctx).Create(mark).Error; err != nil {
		return err
	}
	return nil
}

// CreateABookmark creates a bookmark for an anonymous user
func (r *bookmarkRepositoryImpl) CreateABookmark(ctx context.Context, mark *domain.ABookmark) error {
	if err := r.db.WithContext(ctx).Create(mark).Error; err != nil {
		return err
	}
	return nil
}

// DeleteSBookmark deletes a registered user's bookmark. Returns
// gorm.ErrRecordNotFound when the bookmark does not exist.
func (r *bookmarkRepositoryImpl) DeleteSBookmark(ctx context.Context, forumID uint, userID string) error {
	result := r.db.WithContext(ctx).
		Where("forum_id = ? AND user_id = ?", forumID, userID).
		Delete(&domain.SBookmark{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteABookmark deletes an anonymous user's bookmark. Returns
// gorm.ErrRecordNotFound when the bookmark does not exist.
func (r *bookmarkRepositoryImpl) DeleteABookmark(ctx context.Context, forumID uint, userID string) error {
	result := r.db.WithContext(ctx).
		Where("forum_id = ? AND user_id = ?", forumID, userID).
		Delete(&domain.ABookmark{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindSBookmarksByForum finds all registered-user bookmarks on a forum
func (r *bookmarkRepositoryImpl) FindSBookmarksByForum(ctx context.Context, forumID uint) ([]domain.SBookmark, error) {
	var marks []domain.SBookmark
	if err := r.db.WithContext(ctx).
		Where("forum_id = ?", forumID).
		Find(&marks).Error; err != nil {
		return nil, err
	}
	return marks, nil
}

// FindABookmarksByForum finds all anonymous-user bookmarks on a forum
func (r *bookmarkRepositoryImpl) FindABookmarksByForum(ctx context.Context, forumID uint) ([]domain.ABookmark, error) {
	var marks []domain.ABookmark
	if err := r.db.WithContext(ctx).
		Where("forum_id = ?", forumID).
		Find(&marks).Error; err != nil {
		return nil, err
	}
	return marks, nil
}

// FindForumsBookmarkedBySE finds the forums a registered user bookmarked
func (r *bookmarkRepositoryImpl) FindForumsBookmarkedBySE(ctx context.Context, sid string) ([]domain.Forum, error) {
	var forums []domain.Forum
	if err := r.db.WithContext(ctx).
		Joins("JOIN sbookmark ON sbookmark.forum_id = forum.forum_id").
		Where("sbookmark.user_id = ?", sid).
		Find(&forums).Error; err != nil {
		return nil, err
	}
	return forums, nil
}

// FindForumsBookmarkedByAnonymous finds the forums an anonymous user bookmarked
func (r *bookmarkRepositoryImpl) FindForumsBookmarkedByAnonymous(ctx context.Context, aid string) ([]domain.Forum, error) {
	var forums []domain.Forum
	if err := r.db.WithContext(ctx).
		Joins("JOIN abookmark ON abookmark.forum_id = forum.forum_id").
		Where("abookmark.user_id = ?", aid).
		Find(&forums).Error; err != nil {
		return nil, err
	}
	return forums, nil
}
