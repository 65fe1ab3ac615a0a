package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	// 基础信息
	Username string `gorm:"column:username;uniqueIndex"` // 用户名，全局唯一，创建后不再变更
	Name     string `gorm:"column:name"`                 // 显示名称
	Email    string `gorm:"column:email"`                // 联系邮箱
	Link     string `gorm:"column:link"`                 // 个人主页链接

	// 登录认证相关
	PasswordHash string `gorm:"column:password_hash"` // 密码，使用 argon2id 储存
	IsDisabled   bool   `gorm:"column:is_disabled"`   // 是否被禁用：被禁用的用户不能再发布文章，但已有文章保留
}
