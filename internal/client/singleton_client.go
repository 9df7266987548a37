// internal/client/singleton_client.go
package client

import (
	"net/http"
	"sync"
	"time"
)

var (
	instance *http.Client
	once     sync.Once
)

// GetClient 返回 http.Client 的单例。
// 第一次调用时初始化，所有拉取远程数据的请求共用同一个连接池。
func GetClient() *http.Client {
	once.Do(func() {
		instance = &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	})
	return instance
}
