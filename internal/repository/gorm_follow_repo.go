package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/weiawesome/wes-social/internal/domain"
)

// GormFollowRepository implements FollowRepository using GORM.
type GormFollowRepository struct {
	db *gorm.DB
}

// NewGormFollowRepository creates a new GORM-backed follow repository.
func NewGormFollowRepository(db *gorm.DB) *GormFollowRepository {
	return &GormFollowRepository{db: db}
}

// Create creates a follow relationship between two accounts.
func (r *GormFollowRepository) Create(ctx context.Context, follow *domain.Follow) error {
	model := domain.FollowModel{
		ID:         newID(),
		FollowerID: follow.FollowerID,
		FolloweeID: follow.FolloweeID,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return handleError(err)
	}
	*follow = *model.ToDomain()
	return nil
}

func (r *GormFollowRepository) GetByID(ctx context.Context, id string) (*domain.Follow, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	var model domain.FollowModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, handleError(err)
	}
	return model.ToDomain(), nil
}

// Exists checks if followerID follows followeeID.
func (r *GormFollowRepository) Exists(ctx context.Context, followerID, followeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.FollowModel{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormFollowRepository) List(ctx context.Context) ([]*domain.Follow, error) {
	var models []domain.FollowModel
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&models).Error; err != nil {
		return nil, err
	}
	follows := make([]*domain.Follow, 0, len(models))
	for i := range models {
		follows = append(follows, models[i].ToDomain())
	}
	return follows, nil
}

// Delete hard deletes a follow relationship.
func (r *GormFollowRepository) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return deleteByID(ctx, r.db, &domain.FollowModel{}, id)
}

// GetFollowersCount returns the number of accounts following accountID.
func (r *GormFollowRepository) GetFollowersCount(ctx context.Context, accountID string) (int64, error) {
	return r.count(ctx, "followee_id = ?", accountID)
}

// GetFollowingCount returns the number of accounts accountID follows.
func (r *GormFollowRepository) GetFollowingCount(ctx context.Context, accountID string) (int64, error) {
	return r.count(ctx, "follower_id = ?", accountID)
}

func (r *GormFollowRepository) count(ctx context.Context, cond string, accountID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.FollowModel{}).
		Where(cond, accountID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure interface is satisfied at compile time.
var _ FollowRepository = (*GormFollowRepository)(nil)
