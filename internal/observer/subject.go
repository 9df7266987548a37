// internal/observer/subject.go
package observer

import (
	"slices"

	"github.com/hashicorp/go-multierror"
)

// NotifyPolicy 决定某个观察者更新失败时如何处理剩余的观察者
type NotifyPolicy int

const (
	// FailFast 遇到第一个错误立即中止本轮通知并返回该错误
	FailFast NotifyPolicy = iota
	// CollectErrors 继续通知所有观察者，最后汇总返回全部错误
	CollectErrors
)

func (p NotifyPolicy) String() string {
	switch p {
	case FailFast:
		return "fail-fast"
	case CollectErrors:
		return "collect"
	default:
		return "unknown"
	}
}

// Subject 维护一个有序的观察者列表，零值即可使用。
// 它只持有观察者的引用，观察者销毁前应先调用 RemoveObserver。
// Subject 不是并发安全的，调用方需要自行串行化访问。
type Subject struct {
	observers []Observer
	policy    NotifyPolicy
}

// SetPolicy 设置通知失败时的处理策略
func (s *Subject) SetPolicy(p NotifyPolicy) {
	s.policy = p
}

// Policy 返回当前的通知策略
func (s *Subject) Policy() NotifyPolicy {
	return s.policy
}

// AddObserver 实现了 Observable 接口，按注册顺序追加观察者，不做去重
func (s *Subject) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// RemoveObserver 实现了 Observable 接口，移除第一个匹配的注册项。
// 观察者未注册时返回 ErrObserverNotFound，列表保持不变。
// slices.Delete 会清零移出的尾部元素，底层数组不再引用已移除的观察者。
func (s *Subject) RemoveObserver(o Observer) error {
	i := slices.Index(s.observers, o)
	if i < 0 {
		return ErrObserverNotFound
	}
	s.observers = slices.Delete(s.observers, i, i+1)
	return nil
}

// NotifyObservers 实现了 Observable 接口，按注册顺序同步调用每个观察者的 Update。
// 遍历的是调用时刻的快照，Update 中对注册表的修改只影响下一轮通知。
func (s *Subject) NotifyObservers() error {
	observers := s.Observers()

	var result *multierror.Error
	for i, obs := range observers {
		if err := obs.Update(); err != nil {
			updateErr := &UpdateError{Index: i, Observer: obs, Err: err}
			if s.policy != CollectErrors {
				return updateErr
			}
			result = multierror.Append(result, updateErr)
		}
	}
	return result.ErrorOrNil()
}

// Observers 返回当前注册表的副本
func (s *Subject) Observers() []Observer {
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	return observers
}

// Len 返回已注册的观察者数量（重复注册分别计数）
func (s *Subject) Len() int {
	return len(s.observers)
}

// FuncObserver 将普通函数适配为 Observer。
// 函数值不可比较，所以总是通过指针注册和移除。
type FuncObserver struct {
	fn func() error
}

// NewFuncObserver 创建一个函数观察者
func NewFuncObserver(fn func() error) *FuncObserver {
	return &FuncObserver{fn: fn}
}

// Update 实现了 Observer 接口
func (f *FuncObserver) Update() error {
	return f.fn()
}
