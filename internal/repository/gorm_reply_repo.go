package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/weiawesome/wes-social/internal/domain"
)

// GormReplyRepository implements ReplyRepository using GORM.
type GormReplyRepository struct {
	db *gorm.DB
}

func NewGormReplyRepository(db *gorm.DB) *GormReplyRepository {
	return &GormReplyRepository{db: db}
}

func (r *GormReplyRepository) Create(ctx context.Context, reply *domain.Reply) error {
	model := domain.ReplyModel{
		ID:        newID(),
		AccountID: reply.AccountID,
		PostID:    reply.PostID,
		Content:   reply.Content,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return handleError(err)
	}
	*reply = *model.ToDomain()
	return nil
}

func (r *GormReplyRepository) GetByID(ctx context.Context, id string) (*domain.Reply, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	var model domain.ReplyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, handleError(err)
	}
	return model.ToDomain(), nil
}

func (r *GormReplyRepository) List(ctx context.Context) ([]*domain.Reply, error) {
	var models []domain.ReplyModel
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&models).Error; err != nil {
		return nil, err
	}
	replies := make([]*domain.Reply, 0, len(models))
	for i := range models {
		replies = append(replies, models[i].ToDomain())
	}
	return replies, nil
}

func (r *GormReplyRepository) UpdateContent(ctx context.Context, id, content string) (*domain.Reply, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	result := r.db.WithContext(ctx).Model(&domain.ReplyModel{}).
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

func (r *GormReplyRepository) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return deleteByID(ctx, r.db, &domain.ReplyModel{}, id)
}

var _ ReplyRepository = (*GormReplyRepository)(nil)
