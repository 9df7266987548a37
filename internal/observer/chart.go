// internal/observer/chart.go
package observer

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Slade66/reactive-sheet/internal/report"
	"github.com/google/uuid"
)

// ChartObserver 是一个具体的观察者，每次更新时把数据重绘成文本柱状图。
// 它不缓存任何派生数值。
type ChartObserver struct {
	id       uuid.UUID
	name     string
	source   ValueSource
	sink     report.Sink
	barWidth int
}

// NewChartObserver 创建一个新的柱状图观察者
func NewChartObserver(name string, source ValueSource, sink report.Sink) *ChartObserver {
	return &ChartObserver{
		id:       observerID(report.KindRender, name),
		name:     name,
		source:   source,
		sink:     sink,
		barWidth: 50, // 最长柱子的字符宽度
	}
}

// ID 返回观察者的唯一标识
func (c *ChartObserver) ID() uuid.UUID { return c.id }

// Name 返回观察者的名称
func (c *ChartObserver) Name() string { return c.name }

// Update 实现了 Observer 接口
func (c *ChartObserver) Update() error {
	values := c.source.Values()
	return c.sink.Publish(report.Report{
		ObserverID: c.id,
		Observer:   c.name,
		Kind:       report.KindRender,
		Chart:      c.render(values),
		Values:     values,
		At:         time.Now().UTC(),
	})
}

// render 按有限值中的最大绝对值缩放，为每个值画一行柱子。
// ±Inf 画满整行，NaN 画空柱。
func (c *ChartObserver) render(values []float64) string {
	var maxAbs float64
	for _, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}

	var b strings.Builder
	for i, v := range values {
		filled := c.barLength(v, maxAbs)
		mark := "="
		if v < 0 {
			mark = "-"
		}
		bar := strings.Repeat(mark, filled) + strings.Repeat(" ", c.barWidth-filled)
		fmt.Fprintf(&b, "%3d [%s] %.2f\n", i, bar, v)
	}
	return b.String()
}

// barLength 返回柱子的字符数，结果总在 [0, barWidth] 之内
func (c *ChartObserver) barLength(v, maxAbs float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 0):
		return c.barWidth
	case maxAbs == 0:
		return 0
	}
	filled := int(math.Abs(v) / maxAbs * float64(c.barWidth))
	return max(0, min(filled, c.barWidth))
}
