package users

import (
	"context"
	"fmt"
	"insomnia-blog/app/server/config"
	"insomnia-blog/app/server/models"

	"gorm.io/gorm/clause"
)

// Reconcile 让用户表与期望集合对齐：集合里的用户插入或刷新并重新启用，
// 不在集合里的用户只禁用不删除。整个过程是幂等的，重跑会收敛到同一个状态，
// 所以中途失败可以直接靠重启重试
func (s *Store) Reconcile(ctx context.Context, desired []config.SeedUser) error {
	// 空集合（或者没有配置）是无操作，不是“禁用所有人”
	if len(desired) == 0 {
		return nil
	}

	// 先散列所有明文密码，再批量 upsert
	records := make([]models.User, 0, len(desired))
	usernames := make([]string, 0, len(desired))
	for _, d := range desired {
		hash, err := s.hasher.Hash(d.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password for user %s: %w", d.Username, err)
		}

		records = append(records, models.User{
			Username:     d.Username,
			Name:         d.Name,
			Email:        d.Email,
			Link:         d.Link,
			PasswordHash: hash,
			IsDisabled:   false, // 重新出现在集合里的用户自动解除禁用
		})
		usernames = append(usernames, d.Username)
	}

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"password_hash", "name", "email", "link", "is_disabled",
		}),
	}).Create(&records).Error; err != nil {
		return fmt.Errorf("failed to upsert users: %w", err)
	}

	// 禁用不在期望集合里的用户（差集），数据行和已发布文章保留
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("username NOT IN ?", usernames).
		Update("is_disabled", true).Error; err != nil {
		return fmt.Errorf("failed to disable absent users: %w", err)
	}

	return nil
}
