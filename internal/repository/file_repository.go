package repository

import (
	"context"

	"gorm.io/gorm"

	"coboard-api/internal/domain"
)

// FileRepository defines the interface for file metadata access
type FileRepository interface {
	Create(ctx context.Context, file *domain.File) error
	UpdatePath(ctx context.Context, fileID uint, path string) error
	FindByID(ctx context.Context, id uint) (*domain.File, error)
	FindBySOwner(ctx context.Context, sid string) ([]domain.File, error)
	FindByAOwner(ctx context.Context, aid string) ([]domain.File, error)
	FindByPostID(ctx context.Context, postID uint) ([]domain.File, error)
}

// fileRepositoryImpl is the GORM implementation of FileRepository
type fileRepositoryImpl struct {
	db *gorm.DB
}

// NewFileRepository creates a new instance of FileRepository
func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepositoryImpl{db: db}
}

// Create creates a new file record
func (r *fileRepositoryImpl) Create(ctx context.Context, file *domain.File) error {
	if err := r.db.WithContext(ctx).Create(file).Error; err != nil {
		return err
	}
	return nil
}

// UpdatePath sets the storage path of a file record after the stored object
// got its final name
func (r *fileRepositoryImpl) UpdatePath(ctx context.Context, fileID uint, path string) error {
	return r.db.WithContext(ctx).
		Model(&domain.File{}).
		Where("file_id = ?", fileID).
		UpdateColumn("path", path).Error
}

// FindByID finds a file record by its ID
func (r *fileRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.File, error) {
	var file domain.File
	if err := r.db.WithContext(ctx).First(&file, id).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

// FindBySOwner finds all files uploaded by a registered user
func (r *fileRepositoryImpl) FindBySOwner(ctx context.Context, sid string) ([]domain.File, error) {
	var files []domain.File
	if err := r.db.WithContext(ctx).
		Where("s_owner = ?", sid).
		Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

// FindByAOwner finds all files uploaded by an anonymous user
func (r *fileRepositoryImpl) FindByAOwner(ctx context.Context, aid string) ([]domain.File, error) {
	var files []domain.File
	if err := r.db.WithContext(ctx).
		Where("a_owner = ?", aid).
		Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

// FindByPostID finds all files attached to a post
func (r *fileRepositoryImpl) FindByPostID(ctx context.Context, postID uint) ([]domain.File, error) {
	var files []domain.File
	if err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}
