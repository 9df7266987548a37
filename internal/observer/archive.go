// internal/observer/archive.go
package observer

import (
	"encoding/json"
	"fmt"
	"path"
	"time"

	"github.com/Slade66/reactive-sheet/internal/report"
	"github.com/google/uuid"
)

// ArchiveObserver 每次更新时把当前数据快照写入对象存储。
// 对象键固定为 <prefix>/latest.json，重复通知只会覆盖同一个对象。
type ArchiveObserver struct {
	id     uuid.UUID
	name   string
	source ValueSource
	putter Putter
	sink   report.Sink
	key    string
}

// NewArchiveObserver 创建一个新的快照归档观察者
func NewArchiveObserver(name string, source ValueSource, putter Putter, prefix string, sink report.Sink) *ArchiveObserver {
	return &ArchiveObserver{
		id:     observerID(report.KindArchive, name),
		name:   name,
		source: source,
		putter: putter,
		sink:   sink,
		key:    path.Join(prefix, "latest.json"),
	}
}

// ID 返回观察者的唯一标识
func (a *ArchiveObserver) ID() uuid.UUID { return a.id }

// Name 返回观察者的名称
func (a *ArchiveObserver) Name() string { return a.name }

// Key 返回快照的对象键
func (a *ArchiveObserver) Key() string { return a.key }

// Update 实现了 Observer 接口
func (a *ArchiveObserver) Update() error {
	values := a.source.Values()

	body, err := json.Marshal(struct {
		Values []float64 `json:"values"`
	}{Values: values})
	if err != nil {
		return fmt.Errorf("序列化快照失败: %w", err)
	}

	if err := a.putter.PutObject(a.key, body); err != nil {
		return fmt.Errorf("上传快照 %s 失败: %w", a.key, err)
	}

	return a.sink.Publish(report.Report{
		ObserverID: a.id,
		Observer:   a.name,
		Kind:       report.KindArchive,
		ObjectKey:  a.key,
		At:         time.Now().UTC(),
	})
}
