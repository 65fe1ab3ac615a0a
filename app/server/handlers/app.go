package handlers

import (
	"insomnia-blog/app/server/articles"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type App struct {
	l        *zap.Logger         // 日志
	rdb      *redis.Client       // Redis ，为 nil 时不启用缓存
	articles *articles.Repo      // 文章存储
	submit   *articles.Submitter // 投稿流程
}

func NewApp(l *zap.Logger, rdb *redis.Client, a *articles.Repo, s *articles.Submitter) *App {
	return &App{
		l:        l,
		rdb:      rdb,
		articles: a,
		submit:   s,
	}
}
