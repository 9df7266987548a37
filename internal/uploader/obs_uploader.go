// internal/uploader/obs_uploader.go
package uploader

import (
	"bytes"
	"fmt"

	"github.com/huaweicloud/huaweicloud-sdk-go-obs/obs"
)

// ObsUploader 结构体封装了 OBS 客户端和配置
type ObsUploader struct {
	client *obs.ObsClient
	bucket string
}

// NewObsUploader 根据官方文档创建一个新的 OBS 上传器实例
func NewObsUploader(endpoint, ak, sk, bucket string) (*ObsUploader, error) {
	client, err := obs.New(ak, sk, endpoint)
	if err != nil {
		return nil, fmt.Errorf("无法创建 OBS 客户端: %w", err)
	}

	return &ObsUploader{
		client: client,
		bucket: bucket,
	}, nil
}

// PutObject 将内存中的数据写入 OBS，同名对象会被覆盖
func (u *ObsUploader) PutObject(key string, body []byte) error {
	input := &obs.PutObjectInput{}
	input.Bucket = u.bucket
	input.Key = key
	input.ContentType = "application/json"
	input.Body = bytes.NewReader(body)

	_, err := u.client.PutObject(input)
	if err != nil {
		// 尝试解析 OBS 返回的详细错误信息
		if obsError, ok := err.(obs.ObsError); ok {
			return fmt.Errorf("上传失败，OBS错误码: %s, 错误信息: %s", obsError.Code, obsError.Message)
		}
		return fmt.Errorf("上传对象到 OBS 失败: %w", err)
	}
	return nil
}

// Close 关闭客户端连接
func (u *ObsUploader) Close() {
	if u.client != nil {
		u.client.Close()
	}
}
