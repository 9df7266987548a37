// internal/report/report.go
package report

import (
	"time"

	"github.com/google/uuid"
)

// Kind 区分观察者产生的报告类型
type Kind string

const (
	KindTotal   Kind = "total"
	KindRender  Kind = "render"
	KindArchive Kind = "archive"
)

// Report 是观察者在一次更新后对外输出的结果
type Report struct {
	ObserverID uuid.UUID `json:"observer_id"`
	Observer   string    `json:"observer"`
	Kind       Kind      `json:"kind"`
	Total      float64   `json:"total,omitempty"`
	Chart      string    `json:"chart,omitempty"`
	Values     []float64 `json:"values,omitempty"`
	ObjectKey  string    `json:"object_key,omitempty"`
	At         time.Time `json:"at"`
}

// Sink 接收观察者的报告，代替直接打印到控制台
type Sink interface {
	Publish(r Report) error
}

// SinkFunc 将普通函数适配为 Sink
type SinkFunc func(r Report) error

// Publish 实现了 Sink 接口
func (f SinkFunc) Publish(r Report) error {
	return f(r)
}

// Discard 丢弃所有报告
var Discard Sink = SinkFunc(func(Report) error { return nil })

// Multi 按顺序把报告发送给每个 Sink，遇到第一个错误即返回
func Multi(sinks ...Sink) Sink {
	return SinkFunc(func(r Report) error {
		for _, s := range sinks {
			if err := s.Publish(r); err != nil {
				return err
			}
		}
		return nil
	})
}
