package models

import "gorm.io/gorm"

type Article struct {
	gorm.Model

	// 文章基础信息
	ArticleURL string `gorm:"column:article_url;uniqueIndex"` // 文章地址（ slug ），全局唯一，创建后不再变更
	Title      string `gorm:"column:title"`                   // 标题
	Content    string `gorm:"column:content"`                 // 正文
	ImageURL   string `gorm:"column:image_url"`               // 头图地址

	// 作者
	UserID uint `gorm:"column:user_id;index"` // 作者的用户 ID

	// 连接模型时使用
	User User `gorm:"foreignKey:UserID"` // 作者
}
