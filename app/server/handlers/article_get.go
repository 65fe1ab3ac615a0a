package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"insomnia-blog/app/server/articles"
	"insomnia-blog/app/server/constants"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type ArticleDetail struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
	ArticleURL  string `json:"article_url"`
	ImageURL    string `json:"image_url"`
	AuthorLink  string `json:"author_link"`
	CreatedAt   string `json:"created_at"` // RFC3339
}

func (a *App) ArticleGet(c echo.Context) error {
	rctx := c.Request().Context()

	url := c.Param("url")

	// 查询缓存。文章不可变更，命中就直接返回
	cacheKey := fmt.Sprintf(constants.CacheKeyArticleDetail, url)
	if a.rdb != nil {
		if cacheBytes, err := a.rdb.Get(rctx, cacheKey).Bytes(); err != nil {
			if !errors.Is(err, redis.Nil) {
				a.l.Error("failed to query cache for article detail", zap.String("url", url), zap.Error(err))
			}
		} else {
			return c.JSONBlob(http.StatusOK, cacheBytes)
		}
	}

	// 查询数据库
	article, err := a.articles.Get(rctx, url)
	if err != nil {
		if errors.Is(err, articles.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to get article", zap.String("url", url), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	res := ArticleDetail{
		Title:       article.Title,
		Content:     article.Content,
		AuthorName:  article.AuthorName,
		AuthorEmail: article.AuthorEmail,
		ArticleURL:  article.ArticleURL,
		ImageURL:    article.ImageURL,
		AuthorLink:  article.AuthorLink,
		CreatedAt:   article.CreatedAt.UTC().Format(time.RFC3339),
	}

	// 格式化并加入缓存，方便下一次查询
	if a.rdb != nil {
		if cacheBytes, err := json.Marshal(&res); err != nil {
			a.l.Error("failed to marshal article detail", zap.String("url", url), zap.Error(err))
		} else {
			a.rdb.Set(rctx, cacheKey, cacheBytes, constants.CacheExpireArticleDetail)
		}
	}

	return c.JSON(http.StatusOK, &res)
}
