// pkg/feed/fetcher.go
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/Slade66/reactive-sheet/internal/client"
)

// maxBodySize 限制远程数据的大小，避免把超大响应读进内存
const maxBodySize = 8 << 20

// Fetch 发送 GET 请求，读取一个由数字组成的 JSON 数组
func Fetch(ctx context.Context, url string) ([]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("无法创建请求: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.GetClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("无法获取数据: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("服务器返回了非预期的状态码: %s", resp.Status)
	}

	var values []float64
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&values); err != nil {
		return nil, fmt.Errorf("无效的数据格式: %w", err)
	}
	if values == nil {
		values = []float64{}
	}
	return values, nil
}

// ParseList 解析逗号分隔的数字列表，例如 "1,2,3.5"，空字符串得到空序列
func ParseList(s string) ([]float64, error) {
	values := make([]float64, 0)
	s = strings.TrimSpace(s)
	if s == "" {
		return values, nil
	}

	for i, field := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("第 %d 个数值 %q 无效: %w", i+1, field, err)
		}
		values = append(values, v)
	}
	return values, nil
}
