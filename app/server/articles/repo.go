package articles

import (
	"context"
	"errors"
	"fmt"
	"insomnia-blog/app/server/models"
	"time"

	"gorm.io/gorm"
)

var (
	// ErrDuplicateURL 表示文章地址已被占用，调用方可以换一个地址重试。
	// 调用方给定的地址和随机生成的地址撞车时表现一致，这里不做自动重试
	ErrDuplicateURL = errors.New("article with the same url already exists")

	// ErrNotFound 表示指定地址下没有文章
	ErrNotFound = errors.New("article not found")
)

type Repo struct {
	db      *gorm.DB
	newSlug func() string // 随机地址来源，测试里可以换成固定实现
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{
		db:      db,
		newSlug: randomSlug,
	}
}

type CreateParams struct {
	URL      string // 为空时自动生成
	Title    string
	Content  string
	ImageURL string
	AuthorID uint
}

// Create 插入一篇文章并返回实际存储的地址。地址唯一性靠存储层的唯一索引保证，
// 不做“先查后插”：查和插之间有竞争窗口
func (r *Repo) Create(ctx context.Context, p CreateParams) (string, error) {
	url := p.URL
	if url == "" {
		url = r.newSlug()
	}

	article := models.Article{
		ArticleURL: url,
		Title:      p.Title,
		Content:    p.Content,
		ImageURL:   p.ImageURL,
		UserID:     p.AuthorID,
	}

	if err := r.db.WithContext(ctx).Create(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", ErrDuplicateURL
		}
		return "", fmt.Errorf("failed to create article: %w", err)
	}

	return url, nil
}

type ListItem struct {
	Title      string
	Author     string
	ArticleURL string
	ImageURL   string
	CreatedAt  time.Time
}

// List 返回文章列表（连同作者显示名称），不保证排序
func (r *Repo) List(ctx context.Context, offset int, limit int) ([]ListItem, error) {
	var items []ListItem
	if err := r.db.WithContext(ctx).Model(&models.Article{}).
		Select("articles.title, users.name AS author, articles.article_url, articles.image_url, articles.created_at").
		Joins("JOIN users ON users.id = articles.user_id").
		Limit(limit).Offset(offset).
		Scan(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	return items, nil
}

type FullArticle struct {
	Title       string
	Content     string
	AuthorName  string
	AuthorEmail string
	ArticleURL  string
	ImageURL    string
	AuthorLink  string
	CreatedAt   time.Time
}

// Get 按地址返回单篇文章（连同作者信息）
func (r *Repo) Get(ctx context.Context, url string) (*FullArticle, error) {
	var article FullArticle
	result := r.db.WithContext(ctx).Model(&models.Article{}).
		Select("articles.title, articles.content, users.name AS author_name, users.email AS author_email, articles.article_url, articles.image_url, users.link AS author_link, articles.created_at").
		Joins("JOIN users ON users.id = articles.user_id").
		Where("articles.article_url = ?", url).
		Limit(1).
		Scan(&article)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return &article, nil
}
