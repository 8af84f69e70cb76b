package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/weiawesome/wes-social/internal/domain"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GORM-based account repository.
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// Create creates a new account and assigns its id.
func (r *GormAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	account.ID = newID()

	model := domain.AccountToModel(account)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return handleError(err)
	}

	// Update the domain object with generated timestamps
	account.CreatedAt = model.CreatedAt
	account.UpdatedAt = model.UpdatedAt
	return nil
}

// GetByID retrieves an account by ID.
func (r *GormAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	var model domain.AccountModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, handleError(err)
	}
	return model.ToDomain(), nil
}

// GetByEmail retrieves an account by email.
func (r *GormAccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var model domain.AccountModel
	if err := r.db.WithContext(ctx).First(&model, "email = ?", email).Error; err != nil {
		return nil, handleError(err)
	}
	return model.ToDomain(), nil
}

// List returns all accounts in creation order.
func (r *GormAccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	var models []domain.AccountModel
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&models).Error; err != nil {
		return nil, err
	}
	accounts := make([]*domain.Account, 0, len(models))
	for i := range models {
		accounts = append(accounts, models[i].ToDomain())
	}
	return accounts, nil
}

// Update persists name, username and password hash.
func (r *GormAccountRepository) Update(ctx context.Context, account *domain.Account) error {
	if err := validateID(account.ID); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(&domain.AccountModel{}).
		Where("id = ?", account.ID).
		Updates(map[string]interface{}{
			"name":          account.Name,
			"username":      account.Username,
			"password_hash": account.PasswordHash,
		})
	if result.Error != nil {
		return handleError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	var updated domain.AccountModel
	if err := r.db.WithContext(ctx).First(&updated, "id = ?", account.ID).Error; err != nil {
		return handleError(err)
	}
	account.UpdatedAt = updated.UpdatedAt
	return nil
}

// Delete removes an account and everything it owns in one transaction:
// its posts, likes given or received on its posts, replies written or
// received on its posts, and follows in either direction.
func (r *GormAccountRepository) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model domain.AccountModel
		if err := tx.First(&model, "id = ?", id).Error; err != nil {
			return handleError(err)
		}

		ownPosts := tx.Model(&domain.PostModel{}).Select("id").Where("account_id = ?", id)

		if err := tx.Where("account_id = ? OR post_id IN (?)", id, ownPosts).
			Delete(&domain.LikeModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("account_id = ? OR post_id IN (?)", id, ownPosts).
			Delete(&domain.ReplyModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? OR followee_id = ?", id, id).
			Delete(&domain.FollowModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("account_id = ?", id).Delete(&domain.PostModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.AccountModel{}, "id = ?", id).Error
	})
}

// Ensure interface is satisfied at compile time.
var _ AccountRepository = (*GormAccountRepository)(nil)
