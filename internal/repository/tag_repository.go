package repository

import (
	"context"

	"gorm.io/gorm"

	"coboard-api/internal/domain"
)

// TagRepository defines the interface for tag data access
type TagRepository interface {
	Create(ctx context.Context, tag *domain.Tag) error
	FindByID(ctx context.Context, id uint) (*domain.Tag, error)
	FindByBoard(ctx context.Context, board string) ([]domain.Tag, error)
	FindByForumID(ctx context.Context, forumID uint) ([]domain.Tag, error)
	FindLinksByForumIDs(ctx context.Context, forumIDs []uint) ([]domain.ForumTag, error)
}

// tagRepositoryImpl is the GORM implementation of TagRepository
type tagRepositoryImpl struct {
	db *gorm.DB
}

// NewTagRepository creates a new instance of TagRepository
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepositoryImpl{db: db}
}

// Create creates a new tag
func (r *tagRepositoryImpl) Create(ctx context.Context, tag *domain.Tag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a tag by its ID
func (r *tagRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Tag, error) {
	var tag domain.Tag
	if err := r.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindByBoard finds all tags on a board, most used first
func (r *tagRepositoryImpl) FindByBoard(ctx context.Context, board string) ([]domain.Tag, error) {
	var tags []domain.Tag
	if err := r.db.WithContext(ctx).
		Where("board = ?", board).
		Order(`"use" DESC`).
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// FindByForumID finds all tags linked to a forum
func (r *tagRepositoryImpl) FindByForumID(ctx context.Context, forumID uint) ([]domain.Tag, error) {
	var tags []domain.Tag
	if err := r.db.WithContext(ctx).
		Joins("JOIN forum_tag ON forum_tag.tag_id = tag.tag_id").
		Where("forum_tag.forum_id = ?", forumID).
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// FindLinksByForumIDs finds the forum-tag links for a set of forums
func (r *tagRepositoryImpl) FindLinksByForumIDs(ctx context.Context, forumIDs []uint) ([]domain.ForumTag, error) {
	if len(forumIDs) == 0 {
		return []domain.ForumTag{}, nil
	}

	var links []domain.ForumTag
	if err := r.db.WithContext(ctx).
		Where("forum_id IN ?", forumIDs).
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}
