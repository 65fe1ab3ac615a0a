package articles

import (
	"context"
	"fmt"
	"insomnia-blog/app/server/users"
)

// ValidationError 表示某个必填字段为空，对应 400
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %s should not be empty", e.Field)
}

// Authenticator 是投稿时用来校验凭据的能力，由 users.Store 提供
type Authenticator interface {
	Authenticate(ctx context.Context, username string, plaintext string) (uint, error)
}

type Submitter struct {
	auth Authenticator
	repo *Repo
}

func NewSubmitter(auth Authenticator, repo *Repo) *Submitter {
	return &Submitter{
		auth: auth,
		repo: repo,
	}
}

type SubmitParams struct {
	Title    string
	Content  string
	URL      string // 可选，为空时自动生成
	ImageURL string
	Username string
	Password string
}

// Submit 按顺序做校验 -> 认证 -> 创建，在第一个失败处短路。
// 认证成功之前不会碰文章表
func (s *Submitter) Submit(ctx context.Context, p SubmitParams) (string, error) {
	if p.Title == "" {
		return "", &ValidationError{Field: "title"}
	}
	if p.Content == "" {
		return "", &ValidationError{Field: "content"}
	}

	// 凭据字段为空按认证失败处理而不是校验失败，
	// 不暴露是哪个凭据字段有问题，这个检查顺序要保持在 image_url 之前
	if p.Username == "" || p.Password == "" {
		return "", users.ErrUnauthorized
	}

	if p.ImageURL == "" {
		return "", &ValidationError{Field: "image_url"}
	}

	authorID, err := s.auth.Authenticate(ctx, p.Username, p.Password)
	if err != nil {
		return "", err
	}

	return s.repo.Create(ctx, CreateParams{
		URL:      p.URL,
		Title:    p.Title,
		Content:  p.Content,
		ImageURL: p.ImageURL,
		AuthorID: authorID,
	})
}
