package status

import (
	"context"
	"time"

	"github.com/Slade66/reactive-sheet/internal/report"
)

// Sink 把观察者报告写入 Redis。
// 观察者的 Update 没有 context，所以每次写入使用独立的超时。
type Sink struct {
	manager *Manager
	timeout time.Duration
}

// NewSink 创建一个基于 Manager 的 report.Sink
func NewSink(m *Manager, timeout time.Duration) *Sink {
	return &Sink{manager: m, timeout: timeout}
}

// Publish 实现了 report.Sink 接口
func (s *Sink) Publish(r report.Report) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	return s.manager.RecordReport(ctx, r)
}
