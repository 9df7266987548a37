// internal/observer/total.go
package observer

import (
	"time"

	"github.com/Slade66/reactive-sheet/internal/report"
	"github.com/google/uuid"
)

// TotalObserver 是一个具体的观察者，每次更新时重新计算所有值的总和
type TotalObserver struct {
	id     uuid.UUID
	name   string
	source ValueSource
	sink   report.Sink
	total  float64
}

// NewTotalObserver 创建一个新的求和观察者
func NewTotalObserver(name string, source ValueSource, sink report.Sink) *TotalObserver {
	return &TotalObserver{
		id:     observerID(report.KindTotal, name),
		name:   name,
		source: source,
		sink:   sink,
	}
}

// ID 返回观察者的唯一标识
func (t *TotalObserver) ID() uuid.UUID { return t.id }

// Name 返回观察者的名称
func (t *TotalObserver) Name() string { return t.name }

// Total 返回最近一次更新算出的总和，首次更新前为 0
func (t *TotalObserver) Total() float64 { return t.total }

// Update 实现了 Observer 接口。总和每次从头计算，不依赖上一次的结果。
func (t *TotalObserver) Update() error {
	values := t.source.Values()

	var sum float64
	for _, v := range values {
		sum += v
	}
	t.total = sum

	return t.sink.Publish(report.Report{
		ObserverID: t.id,
		Observer:   t.name,
		Kind:       report.KindTotal,
		Total:      t.total,
		At:         time.Now().UTC(),
	})
}
