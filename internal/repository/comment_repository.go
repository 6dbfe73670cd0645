package repository

import (
	"context"

	"gorm.io/gorm"

	"coboard-api/internal/domain"
)

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	CreateOnPost(ctx context.Context, postID uint, comment *domain.Comment) error
	FindByID(ctx context.Context, id uint) (*domain.Comment, error)
	FindByPostID(ctx context.Context, postID uint) ([]domain.Comment, error)
	IncrementHeart(ctx context.Context, commentID uint) (int, error)
}

// commentRepositoryImpl is the GORM implementation of CommentRepository
type commentRepositoryImpl struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepositoryImpl{db: db}
}

// CreateOnPost creates a comment and links it to the post in one transaction
func (r *commentRepositoryImpl) CreateOnPost(ctx context.Context, postID uint, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}

		link := domain.PostComment{PostID: postID, CommentID: comment.CommentID}
		return tx.Create(&link).Error
	})
}

// FindByID finds a comment by its ID
func (r *commentRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Comment, error) {
	var comment domain.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindByPostID finds all comments linked to a post
func (r *commentRepositoryImpl) FindByPostID(ctx context.Context, postID uint) ([]domain.Comment, error) {
	var comments []domain.Comment
	if err := r.db.WithContext(ctx).
		Joins("JOIN post_comment ON post_comment.comment_id = comment.comment_id").
		Where("post_comment.post_id = ?", postID).
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// IncrementHeart adds one like to a comment and returns the new count
func (r *commentRepositoryImpl) IncrementHeart(ctx context.Context, commentID uint) (int, error) {
	var heart int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var comment domain.Comment
		if err := tx.First(&comment, commentID).Error; err != nil {
			return err
		}

		if err := tx.Model(&domain.Comment{}).
			Where("comment_id = ?", commentID).
			UpdateColumn("comment_heart", gorm.Expr("comment_heart + 1")).Error; err != nil {
			return err
		}

		return tx.Model(&domain.Comment{}).
			Select("comment_heart").
			Where("comment_id = ?", commentID).
			Take(&heart).Error
	})
	if err != nil {
		return 0, err
	}
	return heart, nil
}
