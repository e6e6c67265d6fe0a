// Package model 定义数据库模型.
package model

import (
	"time"

	"gorm.io/gorm"
)

// TrackRecord 音频文件记录.
type TrackRecord struct {
	// ULID，创建时生成
	ID string `gorm:"primaryKey;size:26" json:"id"`
	// 对象键（S3 key），由原始文件名规范化而来
	ObjectKey   string `gorm:"size:1024;index" json:"object_key"`
	FileName    string `gorm:"size:512;index"  json:"file_name"`
	ContentType string `gorm:"size:255;index"  json:"content_type"`
	Size        int64  `gorm:"index"           json:"size"`
	ETag        string `gorm:"size:64"         json:"etag"`
	Bucket      string `gorm:"size:255"        json:"bucket"`
	// 稳定的浏览与下载链接，入库时物化
	ViewURL     string `gorm:"size:2048" json:"view_url"`
	DownloadURL string `gorm:"size:2048" json:"download_url"`
	// 内嵌封面，无封面时为空
	CoverImageURL  string `gorm:"size:2048" json:"cover_image_url,omitempty"`
	CoverObjectKey string `gorm:"size:1024" json:"cover_object_key,omitempty"`
	// 从标签提取的元数据，缺失时为空
	Year     int    `json:"year,omitempty"`
	Language string `gorm:"size:64" json:"language,omitempty"`
	// 上传时间，列表按此倒序
	UploadedAt time.Time `gorm:"index" json:"uploaded_at"`
	// 软删除与审计
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName 指定表名.
func (TrackRecord) TableName() string {
	return "track_records"
}
