// internal/observer/id.go
package observer

import (
	"github.com/Slade66/reactive-sheet/internal/report"
	"github.com/google/uuid"
)

// idNamespace 是观察者 ID 的命名空间
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/Slade66/reactive-sheet/observer"))

// observerID 由类型和名称推导出固定的 ID，进程重启后保持不变，
// 因此同一个观察者在 Redis 中始终对应同一个状态键。
func observerID(kind report.Kind, name string) uuid.UUID {
	return uuid.NewSHA1(idNamespace, []byte(string(kind)+"/"+name))
}
