package queue

import "github.com/ThreeDotsLabs/watermill/message"

// -------------------------- 基于业务封装 events --------------------------

// PublishTrackStored 发布 tv.track.stored 事件。
// 用于音频对象写入存储并且记录落库后，通知下游流程（如转码、索引等）。
// 可通过可选项 opts 注入 TraceID、Producer 等头部信息。
func PublishTrackStored(pub message.Publisher, payload TrackStoredPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicTrackStored, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicTrackStored, msg)
}

// ParseTrackStored 将 Watermill 消息解析为强类型 Envelope（TrackStoredPayload）。
func ParseTrackStored(msg *message.Message) (Message[TrackStoredPayload], error) {
	return ParseWatermillMessage[TrackStoredPayload](msg)
}

// PublishTrackDeleted 发布 tv.track.deleted 事件。
func PublishTrackDeleted(pub message.Publisher, payload TrackDeletedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicTrackDeleted, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicTrackDeleted, msg)
}

// ParseTrackDeleted 将 Watermill 消息解析为强类型 Envelope（TrackDeletedPayload）。
func ParseTrackDeleted(msg *message.Message) (Message[TrackDeletedPayload], error) {
	return ParseWatermillMessage[TrackDeletedPayload](msg)
}
