package status

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/Slade66/reactive-sheet/internal/report"
	"github.com/redis/go-redis/v9"
)

// keyPrefix 是观察者状态在 Redis 中的键名前缀
const keyPrefix = "observer:status:"

// StatusInfo 定义了观察者最近一次更新的状态，用于JSON序列化
type StatusInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Total     string `json:"total,omitempty"`
	ObjectKey string `json:"object_key,omitempty"`
	UpdatedAt string `json:"updated_at"`
	Updates   int64  `json:"updates"`
}

// Manager 结构体封装了与Redis的交互
type Manager struct {
	rdb redis.Cmdable
}

// NewManager 创建一个新的状态管理器实例
func NewManager(rdb redis.Cmdable) *Manager {
	return &Manager{rdb: rdb}
}

// observerKey 返回一个观察者状态在Redis中的键名
func observerKey(observerID string) string {
	return keyPrefix + observerID
}

// RecordReport 把一次观察者报告写入对应的 Hash，并累加更新次数
func (m *Manager) RecordReport(ctx context.Context, r report.Report) error {
	key := observerKey(r.ObserverID.String())
	fields, err := reportFields(r)
	if err != nil {
		return err
	}

	// HSet 和 HIncrBy 放在同一个事务里，保证计数和内容一致
	_, err = m.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, fields)
		pipe.HIncrBy(ctx, key, "updates", 1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("写入观察者状态 %s 失败: %w", key, err)
	}
	return nil
}

// GetAllObservers 获取所有观察者的状态信息
func (m *Manager) GetAllObservers(ctx context.Context) ([]StatusInfo, error) {
	observers := make([]StatusInfo, 0)

	iter := m.rdb.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		// HGetAll 以 map[string]string 的形式返回哈希表的所有字段和值
		data, err := m.rdb.HGetAll(ctx, key).Result()
		if err != nil {
			return nil, fmt.Errorf("无法读取观察者状态 key '%s': %w", key, err)
		}
		observers = append(observers, statusFromHash(data))
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return observers, nil
}

// reportFields 把报告转换为要写入 Hash 的字段，空字段不写入
func reportFields(r report.Report) (map[string]interface{}, error) {
	status := StatusInfo{
		ID:        r.ObserverID.String(),
		Name:      r.Observer,
		Kind:      string(r.Kind),
		ObjectKey: r.ObjectKey,
		UpdatedAt: r.At.UTC().Format(time.RFC3339),
	}
	if r.Kind == report.KindTotal {
		status.Total = strconv.FormatFloat(r.Total, 'f', -1, 64)
	}

	// 使用 json 标签来控制键名
	data, err := json.Marshal(status)
	if err != nil {
		return nil, err
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	// updates 由 HIncrBy 维护
	delete(fields, "updates")
	for k, v := range fields {
		if vs, ok := v.(string); ok && vs == "" {
			delete(fields, k)
		}
	}
	return fields, nil
}

func statusFromHash(data map[string]string) StatusInfo {
	updates, _ := strconv.ParseInt(data["updates"], 10, 64)
	return StatusInfo{
		ID:        data["id"],
		Name:      data["name"],
		Kind:      data["kind"],
		Total:     data["total"],
		ObjectKey: data["object_key"],
		UpdatedAt: data["updated_at"],
		Updates:   updates,
	}
}
