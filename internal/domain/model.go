package domain

import "time"

// AccountModel is the GORM model for accounts table.
type AccountModel struct {
	ID           string    `gorm:"type:varchar(36);primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for AccountModel.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToDomain converts AccountModel to domain Account.
func (m *AccountModel) ToDomain() *Account {
	return &Account{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// AccountToModel converts domain Account to AccountModel.
func AccountToModel(a *Account) *AccountModel {
	return &AccountModel{
		ID:           a.ID,
		Email:        a.Email,
		Name:         a.Name,
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// PostModel is the GORM model for posts table.
type PostModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	AccountID string    `gorm:"type:varchar(36);index;not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Account *AccountModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (m *PostModel) ToDomain() *Post {
	return &Post{
		ID:        m.ID,
		AccountID: m.AccountID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// LikeModel is the GORM model for likes table.
// An account can like a post at most once.
type LikeModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	AccountID string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_like_account_post"`
	PostID    string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_like_account_post;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Account *AccountModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	Post    *PostModel    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

func (LikeModel) TableName() string {
	return "likes"
}

func (m *LikeModel) ToDomain() *Like {
	return &Like{
		ID:        m.ID,
		AccountID: m.AccountID,
		PostID:    m.PostID,
		CreatedAt: m.CreatedAt,
	}
}

// FollowModel is the GORM model for follows table.
// Rows are hard deleted so the same pair can be followed again later.
type FollowModel struct {
	ID         string    `gorm:"type:varchar(36);primaryKey"`
	FollowerID string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_follow_pair"`
	FolloweeID string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_follow_pair;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`

	Follower *AccountModel `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Followee *AccountModel `gorm:"foreignKey:FolloweeID;constraint:OnDelete:CASCADE"`
}

func (FollowModel) TableName() string {
	return "follows"
}

func (m *FollowModel) ToDomain() *Follow {
	return &Follow{
		ID:         m.ID,
		FollowerID: m.FollowerID,
		FolloweeID: m.FolloweeID,
		CreatedAt:  m.CreatedAt,
	}
}

// ReplyModel is the GORM model for replies table.
type ReplyModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	AccountID string    `gorm:"type:varchar(36);index;not null"`
	PostID    string    `gorm:"type:varchar(36);index;not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Account *AccountModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	Post    *PostModel    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

func (ReplyModel) TableName() string {
	return "replies"
}

func (m *ReplyModel) ToDomain() *Reply {
	return &Reply{
		ID:        m.ID,
		AccountID: m.AccountID,
		PostID:    m.PostID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// Models lists every model for auto-migration, parents first.
func Models() []interface{} {
	return []interface{}{
		&AccountModel{},
		&PostModel{},
		&LikeModel{},
		&FollowModel{},
		&ReplyModel{},
	}
}
