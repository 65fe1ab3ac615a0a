package handlers

import (
	"errors"
	"insomnia-blog/app/server/articles"
	"insomnia-blog/app/server/users"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ArticleUploadRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	ArticleURL string `json:"article_url"`
	ImageURL   string `json:"image_url"`
	Username   string `json:"username"`
	Password   string `json:"password"`
}

func (a *App) ArticleUpload(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req ArticleUploadRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	url, err := a.submit.Submit(rctx, articles.SubmitParams{
		Title:    req.Title,
		Content:  req.Content,
		URL:      req.ArticleURL,
		ImageURL: req.ImageURL,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		var vErr *articles.ValidationError
		switch {
		case errors.As(err, &vErr):
			return a.erm(c, http.StatusBadRequest, vErr.Error())
		case errors.Is(err, users.ErrUnauthorized):
			return a.er(c, http.StatusUnauthorized)
		case errors.Is(err, articles.ErrDuplicateURL):
			return a.erm(c, http.StatusBadRequest, err.Error())
		default:
			// 内部细节只进日志，不外泄
			a.l.Error("failed to upload article", zap.String("username", req.Username), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	// 返回实际存储的地址（调用方给定的或自动生成的）
	return c.String(http.StatusOK, url)
}
