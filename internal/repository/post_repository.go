package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"coboard-api/internal/domain"
)

// PostRepository defines the interface for post data access
type PostRepository interface {
	CreateInTopic(ctx context.Context, forumID, topicID uint, post *domain.Post) error
	FindByID(ctx context.Context, id uint) (*domain.Post, error)
	FindByTopicID(ctx context.Context, topicID uint) ([]domain.Post, error)
	IncrementHeart(ctx context.Context, postID uint) (int, error)
}

// postRepositoryImpl is the GORM implementation of PostRepository
type postRepositoryImpl struct {
	db *gorm.DB
}

// NewPostRepository creates a new instance of PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepositoryImpl{db: db}
}

// CreateInTopic creates a post, links it to the topic and refreshes the
// owning forum's last_updated, all in one transaction.
func (r *postRepositoryImpl) CreateInTopic(ctx context.Context, forumID, topicID uint, post *domain.Post) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}

		link := domain.TopicPost{TopicID: topicID, PostID: post.PostID}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}

		return tx.Model(&domain.Forum{}).
			Where("forum_id = ?", forumID).
			UpdateColumn("last_updated", time.Now().UTC()).Error
	})
}

// FindByID finds a post by its ID
func (r *postRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Post, error) {
	var post domain.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// FindByTopicID finds all posts linked to a topic
func (r *postRepositoryImpl) FindByTopicID(ctx context.Context, topicID uint) ([]domain.Post, error) {
	var posts []domain.Post
	if err := r.db.WithContext(ctx).
		Joins("JOIN topic_post ON topic_post.post_id = post.post_id").
		Where("topic_post.topic_id = ?", topicID).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// IncrementHeart adds one like to a post and returns the new count. Likes
// are not idempotent; every call counts.
func (r *postRepositoryImpl) IncrementHeart(ctx context.Context, postID uint) (int, error) {
	var heart int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post domain.Post
		if err := tx.First(&post, postID).Error; err != nil {
			return err
		}

		if err := tx.Model(&domain.Post{}).
			Where("post_id = ?", postID).
			UpdateColumn("heart", gorm.Expr("heart + 1")).Error; err != nil {
			return err
		}

		return tx.Model(&domain.Post{}).
			Select("heart").
			Where("post_id = ?", postID).
			Take(&heart).Error
	})
	if err != nil {
		return 0, err
	}
	return heart, nil
}
