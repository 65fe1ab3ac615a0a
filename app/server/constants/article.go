package constants

const (
	ArticleURLLength = 16 // 随机生成的文章地址长度（字母数字）
)
