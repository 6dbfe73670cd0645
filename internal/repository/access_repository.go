package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"coboard-api/internal/domain"
)

// AccessRepository defines the interface for access grant data access
type AccessRepository interface {
	Create(ctx context.Context, grant *domain.Access) error
	DeleteAllForForum(ctx context.Context, forumID uint) (int64, error)
	FindByForumID(ctx context.Context, forumID uint) ([]domain.Access, error)
	FindByForumIDs(ctx context.Context, forumIDs []uint) ([]domain.Access, error)
}

// accessRepositoryImpl is the GORM implementation of AccessRepository
type accessRepositoryImpl struct {
	db *gorm.DB
}

// NewAccessRepository creates a new instance of AccessRepository
func NewAccessRepository(db *gorm.DB) AccessRepository {
	return &accessRepositoryImpl{db: db}
}

// Create grants a registered user access to a forum and refreshes the
// forum's last_updated in the same transaction
func (r *accessRepositoryImpl) Create(ctx context.Context, grant *domain.Access) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(grant).Error; err != nil {
			return err
		}

		return tx.Model(&domain.Forum{}).
			Where("forum_id = ?", grant.ForumID).
			UpdateColumn("last_updated", time.Now().UTC()).Error
	})
}

// DeleteAllForForum removes every access grant on a forum and returns how
// many were removed. The forum's last_updated is refreshed only when at
// least one grant existed.
func (r *accessRepositoryImpl) DeleteAllForForum(ctx context.Context, forumID uint) (int64, error) {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("forum_id = ?", forumID).Delete(&domain.Access{})
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected

		if removed == 0 {
			return nil
		}

		return tx.Model(&domain.Forum{}).
			Where("forum_id = ?", forumID).
			UpdateColumn("last_updated", time.Now().UTC()).Error
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// FindByForumID finds all access grants on a forum
func (r *accessRepositoryImpl) FindByForumID(ctx context.Context, forumID uint) ([]domain.Access, error) {
	var grants []domain.Access
	if err := r.db.WithContext(ctx).
		Where("forum_id = ?", forumID).
		Find(&grants).Error; err != nil {
		return nil, err
	}
	return grants, nil
}

// FindByForumIDs finds the access grants for a set of forums
func (r *accessRepositoryImpl) FindByForumIDs(ctx context.Context, forumIDs []uint) ([]domain.Access, error) {
	if len(forumIDs) == 0 {
		return []domain.Access{}, nil
	}

	var grants []domain.Access
	if err := r.db.WithContext(ctx).
		Where("forum_id IN ?", forumIDs).
		Find(&grants).Error; err != nil {
		return nil, err
	}
	return grants, nil
}
