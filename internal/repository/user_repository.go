package repository

import (
	"context"

	"gorm.io/gorm"

	"coboard-api/internal/domain"
)

// UserRepository defines the interface for user data access across both
// user tables
type UserRepository interface {
	FindAllSE(ctx context.Context) ([]domain.SEUser, error)
	FindAllAnonymous(ctx context.Context) ([]domain.AnonymousUser, error)
	FindSEByID(ctx context.Context, sid string) (*domain.SEUser, error)
	FindAnonymousByID(ctx context.Context, aid string) (*domain.AnonymousUser, error)
	CreateAnonymous(ctx context.Context, user *domain.AnonymousUser) error
	UpdateSE(ctx context.Context, user *domain.SEUser) error
	UpdateAnonymous(ctx context.Context, currentAID string, user *domain.AnonymousUser) error
}

// userRepositoryImpl is the GORM implementation of UserRepository
type userRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepositoryImpl{db: db}
}

// FindAllSE returns every registered user
func (r *userRepositoryImpl) FindAllSE(ctx context.Context) ([]domain.SEUser, error) {
	var users []domain.SEUser
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindAllAnonymous returns every anonymous user
func (r *userRepositoryImpl) FindAllAnonymous(ctx context.Context) ([]domain.AnonymousUser, error) {
	var users []domain.AnonymousUser
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindSEByID finds a registered user by student ID
func (r *userRepositoryImpl) FindSEByID(ctx context.Context, sid string) (*domain.SEUser, error) {
	var user domain.SEUser
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindAnonymousByID finds an anonymous user by ID
func (r *userRepositoryImpl) FindAnonymousByID(ctx context.Context, aid string) (*domain.AnonymousUser, error) {
	var user domain.AnonymousUser
	if err := r.db.WithContext(ctx).Where("aid = ?", aid).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateAnonymous creates a new anonymous user
func (r *userRepositoryImpl) CreateAnonymous(ctx context.Context, user *domain.AnonymousUser) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return err
	}
	return nil
}

// UpdateSE saves all columns of a registered user
func (r *userRepositoryImpl) UpdateSE(ctx context.Context, user *domain.SEUser) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return err
	}
	return nil
}

// UpdateAnonymous updates an anonymous user addressed by its current ID.
// The update may change the aid itself, so the row is matched on
// currentAID rather than on the struct's key.
func (r *userRepositoryImpl) UpdateAnonymous(ctx context.Context, currentAID string, user *domain.AnonymousUser) error {
	result := r.db.WithContext(ctx).
		Model(&domain.AnonymousUser{}).
		Where("aid = ?", currentAID).
		Updates(map[string]interface{}{
			"aid":      user.AID,
			"apw":      user.APW,
			"aprofile": user.AProfile,
			"mail":     user.Mail,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
