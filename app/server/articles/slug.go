package articles

import (
	"crypto/rand"
	"insomnia-blog/app/server/constants"
	"io"
)

const slugCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// randomSlug 生成固定长度的字母数字文章地址。不做存在性预检：
// 地址空间足够大，撞上唯一索引再处理
func randomSlug() string {
	buf := make([]byte, constants.ArticleURLLength)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		// crypto/rand 读不出来说明系统已经出了大问题
		panic(err)
	}

	for i := range buf {
		buf[i] = slugCharset[int(buf[i])%len(slugCharset)]
	}

	return string(buf)
}
