package inits

import (
	"encoding/json"
	"fmt"
	"insomnia-blog/app/server/config"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

func Config() (cfg *config.Config, err error) {
	// 本地开发时从 .env 读取，文件不存在也没关系
	_ = godotenv.Load()

	cfg = &config.Config{}

	// 手动配置映射，如果这里有什么自动映射工具就好了， viper 好像处理这种基于环境变量的配置也不是很方便
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":3000" // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	// Redis 是可选的：没有配置就不启用缓存
	if redisconn, exist := os.LookupEnv("REDIS_CONN"); exist {
		cfg.System.RedisConnectionString = redisconn
	}

	// 期望用户集合，没有配置是合法的（不做任何变更）
	if usersJson, exist := os.LookupEnv("USERS"); exist && usersJson != "" {
		if err = json.Unmarshal([]byte(usersJson), &cfg.Users); err != nil {
			return nil, fmt.Errorf("failed to parse USERS environment variable: %w", err)
		}
	}

	return cfg, nil
}
