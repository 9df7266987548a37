package main

import (
	"context"
	"os"
	"time"

	"github.com/Slade66/reactive-sheet/internal/config"
	"github.com/Slade66/reactive-sheet/internal/logging"
	"github.com/Slade66/reactive-sheet/internal/queue"
	"github.com/Slade66/reactive-sheet/internal/status"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// initRedis 初始化 Redis 连接
func initRedis(cfg config.Config, log zerolog.Logger) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("❌ API 无法连接到 Redis")
	}
	log.Info().Str("addr", cfg.RedisAddr).Msg("✅ API 成功连接到 Redis!")
	return rdb
}

func main() {
	cfg := config.Load()
	log := logging.New(os.Stdout, cfg.LogLevel).With().Str("service", "api").Logger()

	rdb := initRedis(cfg, log)
	defer rdb.Close()

	gin.SetMode(gin.ReleaseMode)
	router := newRouter(&server{
		queue:    queue.NewPublisher(rdb),
		statuses: status.NewManager(rdb),
		log:      log,
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("🚀 API 服务已启动")
	if err := router.Run(cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("❌ API 服务退出")
	}
}
