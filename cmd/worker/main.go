package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Slade66/reactive-sheet/internal/config"
	"github.com/Slade66/reactive-sheet/internal/logging"
	"github.com/Slade66/reactive-sheet/internal/queue"
	"github.com/Slade66/reactive-sheet/internal/report"
	"github.com/Slade66/reactive-sheet/internal/sheet"
	"github.com/Slade66/reactive-sheet/internal/status"
	"github.com/Slade66/reactive-sheet/internal/uploader"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// statusWriteTimeout 是每次写入观察者状态的超时时间
const statusWriteTimeout = 3 * time.Second

// updateConsumer 是 Worker 需要的队列读取端
type updateConsumer interface {
	Read(ctx context.Context, block time.Duration) (*queue.Message, error)
	Ack(ctx context.Context, id string) error
}

// initRedis 初始化 Redis 连接
func initRedis(cfg config.Config, log zerolog.Logger) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("❌ Worker 无法连接到 Redis")
	}
	log.Info().Str("addr", cfg.RedisAddr).Msg("✅ Worker 成功连接到 Redis!")
	return rdb
}

// processOne 读取并应用一条更新。
// 解析失败的消息直接 ACK 跳过，应用失败的消息不 ACK，留在 pending 列表中等待处理。
func processOne(ctx context.Context, consumer updateConsumer, s *sheet.Sheet, log zerolog.Logger) error {
	msg, err := consumer.Read(ctx, 0)
	if err != nil {
		if errors.Is(err, queue.ErrBadPayload) && msg != nil {
			log.Warn().Err(err).Str("message_id", msg.ID).Msg("‼️ 无法解析更新 payload，已跳过")
			return consumer.Ack(ctx, msg.ID)
		}
		return fmt.Errorf("从 Redis Stream 读取更新失败: %w", err)
	}

	log.Info().Str("update_id", msg.Update.ID.String()).Str("message_id", msg.ID).Msg("👍 接收到新更新")

	if err := s.Apply(msg.Update); err != nil {
		log.Error().Err(err).Str("update_id", msg.Update.ID.String()).Msg("🔥 更新应用失败")
		return nil
	}

	if err := consumer.Ack(ctx, msg.ID); err != nil {
		log.Error().Err(err).Str("message_id", msg.ID).Msg("‼️ 关键错误: 无法 ACK 更新")
	}
	return nil
}

// processUpdates 是 Worker 的主循环，持续处理更新
func processUpdates(ctx context.Context, consumer updateConsumer, s *sheet.Sheet, log zerolog.Logger) {
	for {
		if err := processOne(ctx, consumer, s, log); err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Error().Err(err).Msg("❌ 5秒后重试...")
			time.Sleep(5 * time.Second)
		}
	}
}

// main 是程序的总入口
func main() {
	cfg := config.Load()
	log := logging.New(os.Stdout, cfg.LogLevel).With().Str("service", "worker").Logger()

	policy, err := cfg.Policy()
	if err != nil {
		log.Fatal().Err(err).Msg("❌ 配置无效")
	}

	rdb := initRedis(cfg, log)
	defer rdb.Close()
	ctx := context.Background()

	// 观察者报告同时写日志和 Redis
	sink := report.Multi(
		report.NewLogSink(log),
		status.NewSink(status.NewManager(rdb), statusWriteTimeout),
	)
	opts := []sheet.Option{sheet.WithNotifyPolicy(policy), sheet.WithLogger(log)}

	// OBS 配置完整时才启用快照归档
	if cfg.OBS.Enabled() {
		obsUploader, err := uploader.NewObsUploader(cfg.OBS.Endpoint, cfg.OBS.AK, cfg.OBS.SK, cfg.OBS.Bucket)
		if err != nil {
			log.Fatal().Err(err).Msg("❌ 初始化 OBS Uploader 失败")
		}
		defer obsUploader.Close()
		opts = append(opts, sheet.WithArchive(obsUploader, cfg.OBS.Prefix))
		log.Info().Str("bucket", cfg.OBS.Bucket).Msg("✅ OBS Uploader 初始化成功。")
	}

	s := sheet.New(sink, opts...)

	consumerName, err := os.Hostname()
	if err != nil {
		consumerName = fmt.Sprintf("worker-%d", time.Now().Unix())
		log.Warn().Err(err).Str("consumer", consumerName).Msg("⚠️ 无法获取主机名，使用默认消费者名称")
	}
	consumer := queue.NewConsumer(rdb, consumerName)

	// 确保消费者组存在
	created, err := consumer.EnsureGroup(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ 无法创建消费者组")
	}
	if created {
		log.Info().Str("group", queue.GroupName).Str("stream", queue.StreamName).Msg("成功创建消费者组")
	}

	log.Info().Str("consumer", consumerName).Str("policy", policy.String()).Msg("▶️ Worker 开始监听更新...")
	processUpdates(ctx, consumer, s, log)
}
