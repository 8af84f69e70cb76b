package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/weiawesome/wes-social/internal/domain"
)

// GormPostRepository implements PostRepository using GORM.
type GormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GORM-based post repository.
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

func (r *GormPostRepository) Create(ctx context.Context, post *domain.Post) error {
	if err := validateID(post.AccountID); err != nil {
		return err
	}
	model := domain.PostModel{
		ID:        newID(),
		AccountID: post.AccountID,
		Content:   post.Content,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return handleError(err)
	}
	*post = *model.ToDomain()
	return nil
}

func (r *GormPostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	var model domain.PostModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, handleError(err)
	}
	return model.ToDomain(), nil
}

func (r *GormPostRepository) List(ctx context.Context) ([]*domain.Post, error) {
	return r.find(r.db.WithContext(ctx))
}

// ListByAccount returns the posts authored by accountID, oldest first.
func (r *GormPostRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Post, error) {
	if err := validateID(accountID); err != nil {
		return nil, err
	}
	return r.find(r.db.WithContext(ctx).Where("account_id = ?", accountID))
}

func (r *GormPostRepository) find(q *gorm.DB) ([]*domain.Post, error) {
	var models []domain.PostModel
	if err := q.Order("created_at, id").Find(&models).Error; err != nil {
		return nil, err
	}
	posts := make([]*domain.Post, 0, len(models))
	for i := range models {
		posts = append(posts, models[i].ToDomain())
	}
	return posts, nil
}

func (r *GormPostRepository) CountByAccount(ctx context.Context, accountID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.PostModel{}).
		Where("account_id = ?", accountID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormPostRepository) UpdateContent(ctx context.Context, id, content string) (*domain.Post, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	result := r.db.WithContext(ctx).Model(&domain.PostModel{}).
		Where("id = ?", id).
		Update("content", content)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes a post with its likes and replies.
func (r *GormPostRepository) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&domain.LikeModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&domain.ReplyModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.PostModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

var _ PostRepository = (*GormPostRepository)(nil)
