package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"coboard-api/internal/domain"
)

// ErrTagNotFound is returned when a forum references a tag that does not exist
var ErrTagNotFound = errors.New("tag not found")

// ForumRepository defines the interface for forum data access
type ForumRepository interface {
	CreateWithTags(ctx context.Context, forum *domain.Forum, tagIDs []uint) error
	FindByID(ctx context.Context, id uint) (*domain.Forum, error)
	FindByBoard(ctx context.Context, board string) ([]domain.Forum, error)
	FindByBoardSlug(ctx context.Context, board, slug string) (*domain.Forum, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Forum, error)
	FindByCreator(ctx context.Context, creatorID string) ([]domain.Forum, error)
	Update(ctx context.Context, forum *domain.Forum) error
	AttachTags(ctx context.Context, forumID uint, tagIDs []uint) error
	DeleteCascade(ctx context.Context, forumID uint) error
}

// forumRepositoryImpl is the GORM implementation of ForumRepository
type forumRepositoryImpl struct {
	db *gorm.DB
}

// NewForumRepository creates a new instance of ForumRepository
func NewForumRepository(db *gorm.DB) ForumRepository {
	return &forumRepositoryImpl{db: db}
}

// CreateWithTags creates a forum and its tag links in a single transaction.
// Every referenced tag must exist; a missing tag rolls the whole creation
// back. Each linked tag has its use count incremented.
func (r *forumRepositoryImpl) CreateWithTags(ctx context.Context, forum *domain.Forum, tagIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(forum).Error; err != nil {
			return err
		}

		for _, tagID := range tagIDs {
			var tag domain.Tag
			if err := tx.First(&tag, tagID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrTagNotFound
				}
				return err
			}

			link := domain.ForumTag{ForumID: forum.ForumID, TagID: tag.TagID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}

			if err := tx.Model(&domain.Tag{}).
				Where("tag_id = ?", tag.TagID).
				UpdateColumn("use", gorm.Expr("use + 1")).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// FindByID finds a forum by its ID
func (r *forumRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Forum, error) {
	var forum domain.Forum
	if err := r.db.WithContext(ctx).First(&forum, id).Error; err != nil {
		return nil, err
	}
	return &forum, nil
}

// FindByBoard finds all forums on a board, newest first
func (r *forumRepositoryImpl) FindByBoard(ctx context.Context, board string) ([]domain.Forum, error) {
	var forums []domain.Forum
	if err := r.db.WithContext(ctx).
		Where("board = ?", board).
		Order("forum_id DESC").
		Find(&forums).Error; err != nil {
		return nil, err
	}
	return forums, nil
}

// FindByBoardSlug finds a forum by board and slug
func (r *forumRepositoryImpl) FindByBoardSlug(ctx context.Context, board, slug string) (*domain.Forum, error) {
	var forum domain.Forum
	if err := r.db.WithContext(ctx).
		Where("board = ? AND slug = ?", board, slug).
		First(&forum).Error; err != nil {
		return nil, err
	}
	return &forum, nil
}

// FindBySlug finds a forum by slug alone
func (r *forumRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*domain.Forum, error) {
	var forum domain.Forum
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&forum).Error; err != nil {
		return nil, err
	}
	return &forum, nil
}

// FindByCreator finds all forums created by a registered user
func (r *forumRepositoryImpl) FindByCreator(ctx context.Context, creatorID string) ([]domain.Forum, error) {
	var forums []domain.Forum
	if err := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Find(&forums).Error; err != nil {
		return nil, err
	}
	return forums, nil
}

// Update saves all forum columns
func (r *forumRepositoryImpl) Update(ctx context.Context, forum *domain.Forum) error {
	if err := r.db.WithContext(ctx).Save(forum).Error; err != nil {
		return err
	}
	return nil
}

// AttachTags links tags to a forum that are not linked yet, incrementing
// each newly linked tag's use count. Already linked tags are skipped and
// links are never removed.
func (r *forumRepositoryImpl) AttachTags(ctx context.Context, forumID uint, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []domain.ForumTag
		if err := tx.Where("forum_id = ?", forumID).Find(&existing).Error; err != nil {
			return err
		}

		linked := make(map[uint]bool, len(existing))
		for _, link := range existing {
			linked[link.TagID] = true
		}

		for _, tagID := range tagIDs {
			if linked[tagID] {
				continue
			}

			var tag domain.Tag
			if err := tx.First(&tag, tagID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					// Unknown tags are skipped on update rather than
					// failing the whole request.
					continue
				}
				return err
			}

			link := domain.ForumTag{ForumID: forumID, TagID: tagID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}

			if err := tx.Model(&domain.Tag{}).
				Where("tag_id = ?", tagID).
				UpdateColumn("use", gorm.Expr("use + 1")).Error; err != nil {
				return err
			}

			linked[tagID] = true
		}

		return nil
	})
}

// DeleteCascade deletes a forum and its dependent rows in one transaction:
// tag links, topic links, bookmarks of both kinds and access grants. Topics,
// posts, comments and files are left in place and become unreachable through
// the forum.
func (r *forumRepositoryImpl) DeleteCascade(ctx context.Context, forumID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("forum_id = ?", forumID).Delete(&domain.ForumTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("forum_id = ?", forumID).Delete(&domain.ForumTopic{}).Error; err != nil {
			return err
		}
		if err := tx.Where("forum_id = ?", forumID).Delete(&domain.SBookmark{}).Error; err != nil {
			return err
		}
		if err := tx.Where("forum_id = ?", forumID).Delete(&domain.ABookmark{}).Error; err != nil {
			return err
		}
		if err := tx.Where("forum_id = ?", forumID).Delete(&domain.Access{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&domain.Forum{}, forumID).Error; err != nil {
			return err
		}
		return nil
	})
}
