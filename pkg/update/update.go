package update

import (
	"time"

	"github.com/google/uuid"
)

// ValuesUpdate 定义了一次数值替换请求，它将作为消息在 Redis Stream 中传递。
type ValuesUpdate struct {
	// 更新的唯一标识符，由 API 服务在接收请求时生成。
	ID uuid.UUID `json:"id"`

	// 替换后的完整数值序列，允许为空。
	Values []float64 `json:"values"`

	// 请求来源，仅用于日志，例如 "api" 或 "cli"。
	Source string `json:"source,omitempty"`

	// API 接收请求的时间。
	SubmittedAt time.Time `json:"submitted_at"`
}

// New 创建一个新的更新请求
func New(values []float64, source string) *ValuesUpdate {
	if values == nil {
		values = []float64{}
	}
	return &ValuesUpdate{
		ID:          uuid.New(),
		Values:      values,
		Source:      source,
		SubmittedAt: time.Now().UTC(),
	}
}
