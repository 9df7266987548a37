// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"github.com/Slade66/reactive-sheet/internal/observer"
)

// OBSConfig 是快照归档所需的 OBS 配置
type OBSConfig struct {
	Endpoint string
	AK       string
	SK       string
	Bucket   string
	Prefix   string
}

// Enabled 只有四项凭据都提供时才启用归档
func (c OBSConfig) Enabled() bool {
	return c.Endpoint != "" && c.AK != "" && c.SK != "" && c.Bucket != ""
}

// Config 汇总了 API 和 Worker 共用的配置
type Config struct {
	RedisAddr     string
	RedisPassword string
	HTTPAddr      string
	LogLevel      string
	NotifyPolicy  string
	OBS           OBSConfig
}

// Load 从环境变量读取配置，未设置的项使用默认值
func Load() Config {
	return Config{
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		NotifyPolicy:  getenv("NOTIFY_POLICY", observer.FailFast.String()),
		OBS: OBSConfig{
			Endpoint: os.Getenv("OBS_ENDPOINT"),
			AK:       os.Getenv("OBS_AK"),
			SK:       os.Getenv("OBS_SK"),
			Bucket:   os.Getenv("OBS_BUCKET"),
			Prefix:   getenv("OBS_PREFIX", "sheets"),
		},
	}
}

// Policy 把 NOTIFY_POLICY 解析为通知策略
func (c Config) Policy() (observer.NotifyPolicy, error) {
	switch c.NotifyPolicy {
	case observer.FailFast.String(), "":
		return observer.FailFast, nil
	case observer.CollectErrors.String():
		return observer.CollectErrors, nil
	default:
		return observer.FailFast, fmt.Errorf("未知的通知策略: %q", c.NotifyPolicy)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
