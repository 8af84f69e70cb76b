package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/weiawesome/wes-social/internal/domain"
)

// GormLikeRepository implements LikeRepository using GORM.
type GormLikeRepository struct {
	db *gorm.DB
}

// NewGormLikeRepository creates a new GORM-backed like repository.
func NewGormLikeRepository(db *gorm.DB) *GormLikeRepository {
	return &GormLikeRepository{db: db}
}

// Create inserts a like. A second like for the same (account, post) pair
// fails with ErrDuplicate from the unique index.
func (r *GormLikeRepository) Create(ctx context.Context, like *domain.Like) error {
	model := domain.LikeModel{
		ID:        newID(),
		AccountID: like.AccountID,
		PostID:    like.PostID,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return handleError(err)
	}
	*like = *model.ToDomain()
	return nil
}

func (r *GormLikeRepository) GetByID(ctx context.Context, id string) (*domain.Like, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	var model domain.LikeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, handleError(err)
	}
	return model.ToDomain(), nil
}

// Exists checks if accountID already likes postID.
func (r *GormLikeRepository) Exists(ctx context.Context, accountID, postID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.LikeModel{}).
		Where("account_id = ? AND post_id = ?", accountID, postID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormLikeRepository) List(ctx context.Context) ([]*domain.Like, error) {
	var models []domain.LikeModel
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&models).Error; err != nil {
		return nil, err
	}
	likes := make([]*domain.Like, 0, len(models))
	for i := range models {
		likes = append(likes, models[i].ToDomain())
	}
	return likes, nil
}

func (r *GormLikeRepository) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return deleteByID(ctx, r.db, &domain.LikeModel{}, id)
}

// deleteByID hard deletes one row and reports ErrNotFound when nothing matched.
func deleteByID(ctx context.Context, db *gorm.DB, model interface{}, id string) error {
	result := db.WithContext(ctx).Delete(model, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ LikeRepository = (*GormLikeRepository)(nil)
