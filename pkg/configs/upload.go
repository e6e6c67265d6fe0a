package configs

import (
	"slices"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultUploadMaxSizeMiB      = 50 // 单文件大小上限（MiB）
	DefaultDownloadExpirySeconds = 60 // 预签名下载链接有效期（秒）

	// DefaultPublicBaseURL 对外链接的基础地址，view/download URL 由它派生.
	DefaultPublicBaseURL = "http://localhost:8080"
)

// defaultAllowedAudioTypes 允许上传的音频 MIME 类型.
var defaultAllowedAudioTypes = []string{
	"audio/mpeg",
	"audio/mp3",
	"audio/wav",
	"audio/x-wav",
	"audio/flac",
	"audio/x-flac",
	"audio/mp4",
	"audio/x-m4a",
	"audio/aac",
	"audio/ogg",
	"audio/webm",
}

// UploadConfig 上传策略配置：类型白名单、大小上限与链接派生参数.
type UploadConfig struct {
	AllowedTypes          []string `mapstructure:"allowed_types"`
	MaxSizeMiB            int64    `mapstructure:"max_size_mib"            rule:"min=1"`
	PublicBaseURL         string   `mapstructure:"public_base_url"         rule:"url"`
	DownloadExpirySeconds int      `mapstructure:"download_expiry_seconds" rule:"min=1,max=604800"`
}

// MaxSizeBytes 返回单文件大小上限（字节）.
func (c *UploadConfig) MaxSizeBytes() int64 {
	return c.MaxSizeMiB << 20
}

// DownloadExpiry 返回预签名下载链接的有效期.
func (c *UploadConfig) DownloadExpiry() time.Duration {
	return time.Duration(c.DownloadExpirySeconds) * time.Second
}

// TypeAllowed 判断 MIME 类型是否在白名单内.
func (c *UploadConfig) TypeAllowed(contentType string) bool {
	return slices.Contains(c.AllowedTypes, contentType)
}

// setDefaults 设置上传策略的默认值.
func (c *UploadConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("upload.allowed_types", defaultAllowedAudioTypes)
	v.SetDefault("upload.max_size_mib", DefaultUploadMaxSizeMiB)
	v.SetDefault("upload.public_base_url", DefaultPublicBaseURL)
	v.SetDefault("upload.download_expiry_seconds", DefaultDownloadExpirySeconds)
}
