package queue

import "time"

// EventHeader 定义所有事件的通用头部元数据.
// 建议在发布消息时填充 TraceID、OccurredAt、Producer 等，便于追踪链路与审计.
type EventHeader struct {
	// Topic 冗余记录消息主题，便于离线处理或转储后定位来源主题.
	Topic string `json:"topic"`
	// TraceID 分布式追踪/关联 ID，可来自中间件或业务生成.
	TraceID string `json:"trace_id,omitempty"`
	// Producer 生产者服务名或节点标识.
	Producer string `json:"producer,omitempty"`
	// OccurredAt 事件发生时间（UTC，RFC3339）.
	OccurredAt time.Time `json:"occurred_at"`
	// Version 事件负载版本，便于向后兼容演进.
	Version string `json:"version,omitempty"`
}

// Message 是统一的消息封装，Header + Payload.
// T 即不同主题对应的负载结构体.
type Message[T any] struct {
	Header  EventHeader `json:"header"`
	Payload T           `json:"payload"`
}

// ObjectRef 标识对象存储中的对象.
type ObjectRef struct {
	Bucket      string `json:"bucket"`
	ObjectKey   string `json:"object_key"`
	ETag        string `json:"etag,omitempty"`
	Size        int64  `json:"size,omitempty"`
	ContentType string `json:"content_type,omitempty"`
}

// TrackStoredPayload 音频对象已写入存储且记录已落库.
type TrackStoredPayload struct {
	Object   ObjectRef `json:"object"`
	RecordID string    `json:"record_id"`
	FileName string    `json:"file_name,omitempty"`
	CoverKey string    `json:"cover_key,omitempty"`
	Year     int       `json:"year,omitempty"`
	Language string    `json:"language,omitempty"`
}

// TrackDeletedPayload 音频对象与记录被删除.
type TrackDeletedPayload struct {
	Object   ObjectRef `json:"object"`
	RecordID string    `json:"record_id"`
	CoverKey string    `json:"cover_key,omitempty"`
}

// ReconcileReportPayload 对账扫描报告.
type ReconcileReportPayload struct {
	ScannedObjects  int      `json:"scanned_objects"`
	OrphanedObjects []string `json:"orphaned_objects,omitempty"` // 无记录指向的对象键
	DanglingRecords []string `json:"dangling_records,omitempty"` // 对象缺失的记录 ID
	RemovedObjects  int      `json:"removed_objects"`
	Error           string   `json:"error,omitempty"`
}
