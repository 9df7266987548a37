// internal/sheet/sheet.go
package sheet

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Slade66/reactive-sheet/internal/datasource"
	"github.com/Slade66/reactive-sheet/internal/observer"
	"github.com/Slade66/reactive-sheet/internal/report"
	"github.com/Slade66/reactive-sheet/pkg/update"
	"github.com/rs/zerolog"
)

// ErrNilUpdate 表示传给 Apply 的更新为 nil
var ErrNilUpdate = errors.New("nil values update")

// Sheet 结构体把数据源和它的标准观察者组装在一起。
// 注册顺序固定为：柱状图、求和，以及可选的归档。
// 数据源本身不是并发安全的，Sheet 用互斥锁串行化所有访问。
type Sheet struct {
	mu      sync.Mutex
	source  *datasource.DataSource
	chart   *observer.ChartObserver
	total   *observer.TotalObserver
	archive *observer.ArchiveObserver
	log     zerolog.Logger
}

type options struct {
	policy        observer.NotifyPolicy
	putter        observer.Putter
	archivePrefix string
	log           zerolog.Logger
}

// Option 用于配置 Sheet
type Option func(*options)

// WithNotifyPolicy 设置数据源的通知策略
func WithNotifyPolicy(p observer.NotifyPolicy) Option {
	return func(o *options) { o.policy = p }
}

// WithArchive 启用快照归档观察者
func WithArchive(putter observer.Putter, prefix string) Option {
	return func(o *options) {
		o.putter = putter
		o.archivePrefix = prefix
	}
}

// WithLogger 设置 Sheet 使用的 logger
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// New 创建一个新的 Sheet，所有观察者的报告都发送到 sink
func New(sink report.Sink, opts ...Option) *Sheet {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	source := datasource.New(datasource.WithNotifyPolicy(o.policy))
	s := &Sheet{
		source: source,
		chart:  observer.NewChartObserver("bar-chart", source, sink),
		total:  observer.NewTotalObserver("sheet-total", source, sink),
		log:    o.log.With().Str("component", "sheet").Logger(),
	}
	source.AddObserver(s.chart)
	source.AddObserver(s.total)

	if o.putter != nil {
		s.archive = observer.NewArchiveObserver("archive", source, o.putter, o.archivePrefix, sink)
		source.AddObserver(s.archive)
	}
	return s
}

// Apply 用更新中的数值替换数据源，并同步通知所有观察者
func (s *Sheet) Apply(u *update.ValuesUpdate) error {
	if u == nil {
		return ErrNilUpdate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.source.SetValues(u.Values)
	if err != nil {
		s.log.Error().Err(err).
			Str("update_id", u.ID.String()).
			Uint64("revision", s.source.Revision()).
			Msg("🔥 通知观察者失败")
		return fmt.Errorf("应用更新 %s 失败: %w", u.ID, err)
	}

	s.log.Info().
		Str("update_id", u.ID.String()).
		Str("source", u.Source).
		Int("values", len(u.Values)).
		Uint64("revision", s.source.Revision()).
		Float64("total", s.total.Total()).
		Msg("✅ 更新已应用")
	return nil
}

// DetachChart 取消柱状图观察者的注册，之后的更新不再重绘
func (s *Sheet) DetachChart() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source.RemoveObserver(s.chart)
}

// Values 返回当前数值的副本
func (s *Sheet) Values() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source.Values()
}

// Total 返回求和观察者最近一次计算的结果
func (s *Sheet) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total.Total()
}

// Revision 返回数据源被替换的次数
func (s *Sheet) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source.Revision()
}

// Observers 返回当前注册的观察者数量
func (s *Sheet) Observers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source.Len()
}
