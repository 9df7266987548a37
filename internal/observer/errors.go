// internal/observer/errors.go
package observer

import (
	"errors"
	"fmt"
)

var (
	// ErrObserverNotFound 表示要移除的观察者没有注册在主题上
	ErrObserverNotFound = errors.New("observer not found")

	// ErrObserverUpdateFailed 表示某个观察者在通知过程中返回了错误
	ErrObserverUpdateFailed = errors.New("observer update failed")
)

// UpdateError 记录通知过程中失败的观察者及其位置
type UpdateError struct {
	Index    int
	Observer Observer
	Err      error
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("%s: observer #%d (%T): %v", ErrObserverUpdateFailed, e.Index, e.Observer, e.Err)
}

func (e *UpdateError) Unwrap() error {
	return e.Err
}

// Is 让 errors.Is(err, ErrObserverUpdateFailed) 对所有 UpdateError 成立
func (e *UpdateError) Is(target error) bool {
	return target == ErrObserverUpdateFailed
}
