package constants

import "time"

const (
	CacheKeyArticleDetail = "blog:article:detail:%s" // %s -> article url
)

const (
	// 文章创建后不可变更，缓存不需要主动失效，过期时间只用来控制内存占用
	CacheExpireArticleDetail = 12 * time.Hour
)
