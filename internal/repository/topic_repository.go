package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"coboard-api/internal/domain"
)

// TopicRepository defines the interface for topic data access
type TopicRepository interface {
	CreateInForum(ctx context.Context, forumID uint, topic *domain.Topic) error
	FindByID(ctx context.Context, id uint) (*domain.Topic, error)
	FindByForumID(ctx context.Context, forumID uint) ([]domain.Topic, error)
}

// topicRepositoryImpl is the GORM implementation of TopicRepository
type topicRepositoryImpl struct {
	db *gorm.DB
}

// NewTopicRepository creates a new instance of TopicRepository
func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepositoryImpl{db: db}
}

// CreateInForum creates a topic, links it to the forum and refreshes the
// forum's last_updated, all in one transaction.
func (r *topicRepositoryImpl) CreateInForum(ctx context.Context, forumID uint, topic *domain.Topic) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(topic).Error; err != nil {
			return err
		}

		link := domain.ForumTopic{ForumID: forumID, TopicID: topic.TopicID}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}

		return tx.Model(&domain.Forum{}).
			Where("forum_id = ?", forumID).
			UpdateColumn("last_updated", time.Now().UTC()).Error
	})
}

// FindByID finds a topic by its ID
func (r *topicRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Topic, error) {
	var topic domain.Topic
	if err := r.db.WithContext(ctx).First(&topic, id).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

// FindByForumID finds all topics linked to a forum
func (r *topicRepositoryImpl) FindByForumID(ctx context.Context, forumID uint) ([]domain.Topic, error) {
	var topics []domain.Topic
	if err := r.db.WithContext(ctx).
		Joins("JOIN forum_topic ON forum_topic.topic_id = topic.topic_id").
		Where("forum_topic.forum_id = ?", forumID).
		Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}
