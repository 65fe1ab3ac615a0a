package main

import (
	"context"
	"fmt"
	"insomnia-blog/app/server/articles"
	"insomnia-blog/app/server/handlers"
	"insomnia-blog/app/server/inits"
	"insomnia-blog/app/server/password"
	"insomnia-blog/app/server/users"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化数据库连接
	db, err := inits.DB(cfg.System.DBConnectionString)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化 redis 连接（可选）
	var rdb *redis.Client
	if cfg.System.RedisConnectionString != "" {
		if rdb, err = inits.Redis(cfg.System.RedisConnectionString); err != nil {
			l.Fatal("error initializing Redis connection", zap.Error(err))
		}
	}

	// 准备核心组件
	userStore := users.NewStore(db, password.Argon2id{})
	articleRepo := articles.NewRepo(db)
	submitter := articles.NewSubmitter(userStore, articleRepo)

	// 对账用户目录：失败时不能带着未对账的用户表开始服务
	if err := userStore.Reconcile(context.Background(), cfg.Users); err != nil {
		l.Fatal("error reconciling user directory", zap.Error(err))
	}

	// 准备 handler app
	handlerApp := handlers.NewApp(l, rdb, articleRepo, submitter)

	// 准备 echo 服务
	e := echo.New()
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())

	// 绑定 echo 服务
	e.GET("/health", handlerApp.HealthCheck)
	api := e.Group("/api")
	api.GET("/article", handlerApp.ArticleList)
	api.GET("/article/:url", handlerApp.ArticleGet)
	api.POST("/article", handlerApp.ArticleUpload)

	// 启动 echo 服务
	if err := e.Start(cfg.System.Listen); err != nil {
		l.Fatal("shutting down the server", zap.Error(err))
	}
}
