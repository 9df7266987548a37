// internal/queue/stream.go
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Slade66/reactive-sheet/pkg/update"
	"github.com/redis/go-redis/v9"
)

const (
	// 数值更新所在的 Redis Stream 的键名
	StreamName = "sheet_updates"
	// 消费者组的名称
	GroupName = "sheet-group"
	// 消息中保存 JSON 的字段名
	payloadField = "payload"
)

// ErrBadPayload 表示消息无法解析为 ValuesUpdate
var ErrBadPayload = errors.New("bad update payload")

// Message 是从 Stream 中读到的一条更新
type Message struct {
	ID     string
	Update *update.ValuesUpdate
}

// Publisher 把更新投递到 Redis Stream
type Publisher struct {
	rdb redis.Cmdable
}

// NewPublisher 创建一个新的投递者
func NewPublisher(rdb redis.Cmdable) *Publisher {
	return &Publisher{rdb: rdb}
}

// Enqueue 把更新序列化后追加到 Stream
func (p *Publisher) Enqueue(ctx context.Context, u *update.ValuesUpdate) error {
	payload, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return p.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamName,
		Values: map[string]interface{}{payloadField: payload},
	}).Err()
}

// Consumer 以消费者组的方式逐条读取更新
type Consumer struct {
	rdb  redis.Cmdable
	name string
}

// NewConsumer 创建一个新的消费者
func NewConsumer(rdb redis.Cmdable, name string) *Consumer {
	return &Consumer{rdb: rdb, name: name}
}

// EnsureGroup 确保消费者组存在，如果不存在则创建。返回值表示是否新建。
func (c *Consumer) EnsureGroup(ctx context.Context) (bool, error) {
	err := c.rdb.XGroupCreateMkStream(ctx, StreamName, GroupName, "$").Err()
	if err != nil {
		if strings.Contains(err.Error(), "BUSYGROUP") {
			return false, nil
		}
		return false, fmt.Errorf("无法创建消费者组: %w", err)
	}
	return true, nil
}

// Read 阻塞读取一条从未被消费过的消息，block 为 0 时一直阻塞。
// 无法解析的消息会连同 ID 一起返回 ErrBadPayload，调用方可以直接 Ack 跳过。
func (c *Consumer) Read(ctx context.Context, block time.Duration) (*Message, error) {
	streams, err := c.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    GroupName,
		Consumer: c.name,
		Streams:  []string{StreamName, ">"}, // ">" 表示只接收从未被消费过的新消息
		Count:    1,
		Block:    block,
	}).Result()
	if err != nil {
		return nil, err
	}
	if len(streams) == 0 || len(streams[0].Messages) == 0 {
		return nil, redis.Nil
	}

	msg := streams[0].Messages[0]
	u, err := Decode(msg.Values)
	if err != nil {
		return &Message{ID: msg.ID}, err
	}
	return &Message{ID: msg.ID, Update: u}, nil
}

// Ack 确认消息已被处理
func (c *Consumer) Ack(ctx context.Context, id string) error {
	return c.rdb.XAck(ctx, StreamName, GroupName, id).Err()
}

// Decode 从 Stream 消息的字段中解析出 ValuesUpdate
func Decode(values map[string]interface{}) (*update.ValuesUpdate, error) {
	raw, ok := values[payloadField].(string)
	if !ok {
		return nil, fmt.Errorf("%w: missing %q field", ErrBadPayload, payloadField)
	}

	var u update.ValuesUpdate
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if u.Values == nil {
		u.Values = []float64{}
	}
	return &u, nil
}
