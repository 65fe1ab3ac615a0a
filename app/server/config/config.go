package config

type Config struct {
	System struct {
		IsProd                bool   // 是否为生产环境
		Listen                string // 监听地址
		DBConnectionString    string // Postgres 数据库的连接字符串
		RedisConnectionString string // Redis 数据库的连接字符串，为空时不启用缓存
	}
	Users []SeedUser // 启动时的期望用户集合，为空时不做任何变更
}

// SeedUser 是外部配置（ USERS 环境变量， JSON 数组）里的一条用户记录，
// 密码为明文，只在启动对账时使用，落库前会被散列
type SeedUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Link     string `json:"link"`
}
