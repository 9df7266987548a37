// internal/report/recorder.go
package report

import (
	"sync"
)

// Recorder 在内存中按到达顺序保存报告
type Recorder struct {
	mu      sync.Mutex
	reports []Report
}

// NewRecorder 创建一个空的 Recorder
func NewRecorder() *Recorder {
	return &Recorder{
		reports: make([]Report, 0),
	}
}

// Publish 实现了 Sink 接口
func (r *Recorder) Publish(rep Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, rep)
	return nil
}

// Reports 返回已记录报告的副本
func (r *Recorder) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	return out
}

// Kinds 返回已记录报告的类型序列，便于断言顺序
func (r *Recorder) Kinds() []Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]Kind, 0, len(r.reports))
	for _, rep := range r.reports {
		kinds = append(kinds, rep.Kind)
	}
	return kinds
}

// Reset 清空已记录的报告
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = r.reports[:0]
}
