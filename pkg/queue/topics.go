// Package queue 定义消息主题常量与分组，供发布/订阅使用.
package queue

// 主题命名规范：tv.<域>.<动作>[.<状态>]，尽量稳定且向后兼容.
// 域：track(音频对象)、cover(封面)、reconcile(对账)
// 动作：stored/deleted/started/finished/failed

const (
	// 音频对象领域.
	TopicTrackStored  = "tv.track.stored"  // 音频与元数据均已落库
	TopicTrackDeleted = "tv.track.deleted" // 音频对象与记录被删除

	// 封面领域.
	TopicCoverStored  = "tv.cover.stored"  // 内嵌封面已写入对象存储
	TopicCoverDeleted = "tv.cover.deleted" // 封面对象被删除

	// 对账领域.
	TopicReconcileStarted  = "tv.reconcile.started"  // 对账扫描开始
	TopicReconcileFinished = "tv.reconcile.finished" // 对账扫描完成（含报告）
	TopicReconcileFailed   = "tv.reconcile.failed"   // 对账扫描失败
)

// 主题分组，用于批量订阅或权限控制.
var (
	// 音频对象相关主题集合.
	TrackTopics = []string{
		TopicTrackStored, TopicTrackDeleted,
		TopicCoverStored, TopicCoverDeleted,
	}

	// 对账相关主题集合.
	ReconcileTopics = []string{
		TopicReconcileStarted, TopicReconcileFinished, TopicReconcileFailed,
	}
)
