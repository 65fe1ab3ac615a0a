package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ArticleListItem struct {
	Title      string `json:"title"`
	Author     string `json:"author"`
	ArticleURL string `json:"article_url"`
	ImageURL   string `json:"image_url"`
	CreatedAt  string `json:"created_at"` // RFC3339
}

func (a *App) ArticleList(c echo.Context) error {
	rctx := c.Request().Context()

	offset, limit := a.parsePagination(c)

	items, err := a.articles.List(rctx, offset, limit)
	if err != nil {
		a.l.Error("failed to list articles", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	res := []ArticleListItem{}
	for _, item := range items {
		res = append(res, ArticleListItem{
			Title:      item.Title,
			Author:     item.Author,
			ArticleURL: item.ArticleURL,
			ImageURL:   item.ImageURL,
			CreatedAt:  item.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, res)
}
