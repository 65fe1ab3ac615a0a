package articles

import (
	"context"
	"insomnia-blog/app/server/models"
	"insomnia-blog/app/server/users"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeAuth struct {
	id     uint
	err    error
	called bool
}

func (f *fakeAuth) Authenticate(ctx context.Context, username string, plaintext string) (uint, error) {
	f.called = true
	if f.err != nil {
		return 0, f.err
	}
	return f.id, nil
}

func countArticles(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&models.Article{}).Count(&count).Error)
	return count
}

func validParams() SubmitParams {
	return SubmitParams{
		Title:    "Hello",
		Content:  "World",
		ImageURL: "https://img.example.com/1.png",
		Username: "alice",
		Password: "pw-alice",
	}
}

func TestSubmit_ValidationOrder(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*SubmitParams)
		wantField string // 为空表示期望 ErrUnauthorized
	}{
		{
			name:      "empty title",
			mutate:    func(p *SubmitParams) { p.Title = "" },
			wantField: "title",
		},
		{
			name:      "empty content",
			mutate:    func(p *SubmitParams) { p.Content = "" },
			wantField: "content",
		},
		{
			name:   "empty username",
			mutate: func(p *SubmitParams) { p.Username = "" },
		},
		{
			name:   "empty password",
			mutate: func(p *SubmitParams) { p.Password = "" },
		},
		{
			// 凭据为空时优先按认证失败处理，不暴露 image_url 也有问题
			name: "empty credentials win over empty image_url",
			mutate: func(p *SubmitParams) {
				p.Username = ""
				p.ImageURL = ""
			},
		},
		{
			name:      "empty image_url",
			mutate:    func(p *SubmitParams) { p.ImageURL = "" },
			wantField: "image_url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			auth := &fakeAuth{id: 1}
			submitter := NewSubmitter(auth, NewRepo(db))

			params := validParams()
			tt.mutate(&params)

			_, err := submitter.Submit(context.Background(), params)
			if tt.wantField != "" {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.wantField, vErr.Field)
			} else {
				assert.ErrorIs(t, err, users.ErrUnauthorized)
				// 凭据字段为空时根本不应该走到认证
				assert.False(t, auth.called)
			}

			// 失败路径不碰文章表
			assert.Zero(t, countArticles(t, db))
		})
	}
}

func TestSubmit_AuthFailureBeforeCreate(t *testing.T) {
	db := newTestDB(t)
	auth := &fakeAuth{err: users.ErrUnauthorized}
	submitter := NewSubmitter(auth, NewRepo(db))

	_, err := submitter.Submit(context.Background(), validParams())
	assert.ErrorIs(t, err, users.ErrUnauthorized)
	assert.True(t, auth.called)
	assert.Zero(t, countArticles(t, db))
}

func TestSubmit_Success(t *testing.T) {
	db := newTestDB(t)
	authorID := createAuthor(t, db)
	submitter := NewSubmitter(&fakeAuth{id: authorID}, NewRepo(db))

	params := validParams()
	params.URL = "my-post"

	url, err := submitter.Submit(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, "my-post", url)
	assert.EqualValues(t, 1, countArticles(t, db))
}

func TestSubmit_GeneratesURLWhenAbsent(t *testing.T) {
	db := newTestDB(t)
	authorID := createAuthor(t, db)
	submitter := NewSubmitter(&fakeAuth{id: authorID}, NewRepo(db))

	url, err := submitter.Submit(context.Background(), validParams())
	require.NoError(t, err)
	assert.Regexp(t, slugPattern, url)
}

func TestSubmit_DuplicateURL(t *testing.T) {
	db := newTestDB(t)
	authorID := createAuthor(t, db)
	submitter := NewSubmitter(&fakeAuth{id: authorID}, NewRepo(db))

	params := validParams()
	params.URL = "taken"

	_, err := submitter.Submit(context.Background(), params)
	require.NoError(t, err)

	_, err = submitter.Submit(context.Background(), params)
	assert.ErrorIs(t, err, ErrDuplicateURL)
}
