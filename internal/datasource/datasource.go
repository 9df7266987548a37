// internal/datasource/datasource.go
package datasource

import (
	"github.com/Slade66/reactive-sheet/internal/observer"
)

// DataSource 是持有一组数值的主题，替换数值时通知所有观察者
type DataSource struct {
	observer.Subject

	values   []float64
	revision uint64
}

// Option 用于配置 DataSource
type Option func(*DataSource)

// WithNotifyPolicy 设置观察者更新失败时的处理策略
func WithNotifyPolicy(p observer.NotifyPolicy) Option {
	return func(d *DataSource) {
		d.SetPolicy(p)
	}
}

// New 创建一个空的 DataSource
func New(opts ...Option) *DataSource {
	d := &DataSource{
		values: make([]float64, 0),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Values 返回当前数值的副本，调用它不会触发任何通知
func (d *DataSource) Values() []float64 {
	values := make([]float64, len(d.values))
	copy(values, d.values)
	return values
}

// Revision 返回数值被替换的次数
func (d *DataSource) Revision() uint64 {
	return d.revision
}

// SetValues 替换全部数值，然后按注册顺序通知每个观察者。
// 这是唯一的修改入口。即使通知失败，新数值也已经生效，错误原样返回给调用方。
func (d *DataSource) SetValues(values []float64) error {
	next := make([]float64, len(values))
	copy(next, values)
	d.values = next
	d.revision++

	return d.NotifyObservers()
}
