package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// parsePagination 解析 offset/limit 查询参数。
// limit 默认是 1 ，这是沿用下来的既定行为，前端依赖它，不要随手改大。
// 解析不了的值按没传处理
func (a *App) parsePagination(c echo.Context) (offset int, limit int) {
	offset, limit = 0, 1

	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	return offset, limit
}
