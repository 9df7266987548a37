// internal/observer/interfaces.go
package observer

// Observer 观察者接口
type Observer interface {
	// Update 在被观察的状态发生变化后由主题调用。
	// 实现应当从数据源重新计算，而不是累加增量，因此重复调用是安全的。
	Update() error
}

// Observable 被观察者（主题）接口
type Observable interface {
	AddObserver(o Observer)
	RemoveObserver(o Observer) error
	NotifyObservers() error
}

// ValueSource 是观察者持有的数据源句柄，只读，不拥有数据源
type ValueSource interface {
	Values() []float64
}

// Putter 将一个对象写入对象存储
type Putter interface {
	PutObject(key string, body []byte) error
}
