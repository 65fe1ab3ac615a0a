package users

import (
	"context"
	"errors"
	"fmt"
	"insomnia-blog/app/server/models"
	"insomnia-blog/app/server/password"

	"gorm.io/gorm"
)

// ErrUnauthorized 表示认证失败。用户不存在、密码不匹配、用户被禁用都映射到同一个错误，
// 不向调用方区分原因，避免用户名枚举
var ErrUnauthorized = errors.New("unauthorized")

type Store struct {
	db     *gorm.DB
	hasher password.Hasher
}

func NewStore(db *gorm.DB, hasher password.Hasher) *Store {
	return &Store{
		db:     db,
		hasher: hasher,
	}
}

// Authenticate 校验用户名密码，成功时返回用户 ID
func (s *Store) Authenticate(ctx context.Context, username string, plaintext string) (uint, error) {
	// 只查未被禁用的用户：被禁用的用户即使密码正确也不能通过
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "username = ? AND is_disabled = ?", username, false).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUnauthorized
		}
		return 0, fmt.Errorf("failed to find user: %w", err)
	}

	// 提取密码 hash 并进行校验。校验本身出错也按认证失败处理，不对外暴露细节
	if match, err := s.hasher.Verify(plaintext, user.PasswordHash); err != nil || !match {
		return 0, ErrUnauthorized
	}

	return user.ID, nil
}
