// Package jobs 负责注册与实现业务定时任务（基于 scheduler）。
package jobs

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"

	ctxPkg "github.com/yeisme/tunevault/pkg/context"
	"github.com/yeisme/tunevault/pkg/internal/model"
	"github.com/yeisme/tunevault/pkg/internal/service"
	"github.com/yeisme/tunevault/pkg/internal/storage"
	"github.com/yeisme/tunevault/pkg/log"
	"github.com/yeisme/tunevault/pkg/queue"
	"github.com/yeisme/tunevault/pkg/scheduler"
)

// RegisterCronJobs 配置业务定时任务：
//   - 每天 03:20 执行存储对账：清理无记录指向的孤儿对象，上报对象缺失的记录
//   - 每小时整点预热文件列表缓存
func RegisterCronJobs(sched *scheduler.Scheduler, mgr *storage.Manager) error {
	if sched == nil {
		return fmt.Errorf("scheduler is nil")
	}

	if mgr == nil {
		return fmt.Errorf("storage manager is nil")
	}

	// 将 storage manager 注入到 context，便于 service 使用
	baseCtx := ctxPkg.WithStorageManager(context.Background(), mgr)

	_ = sched.AddCron(JobStorageReconcile, CronStorageReconcile, func(ctx context.Context) {
		runStorageReconcile(ctx, mgr)
	}, baseCtx)

	_ = sched.AddCron(JobListCacheWarm, CronListCacheWarm, func(ctx context.Context) {
		runListCacheWarm(ctx)
	}, baseCtx)

	return nil
}

// runStorageReconcile 扫描存储桶对账：对象与记录互相校验.
// 无记录指向的对象按孤儿回收，对象缺失的记录仅上报不删除.
func runStorageReconcile(ctx context.Context, mgr *storage.Manager) {
	l := log.Logger().With().Str("job", JobStorageReconcile).Logger()

	s3c := mgr.GetS3Client()
	dbc := mgr.GetDBClient()

	if s3c == nil || s3c.Client == nil || dbc == nil || dbc.DB == nil {
		l.Error().Msg("storage clients not initialized")
		return
	}

	publishReport := func(topic string, report queue.ReconcileReportPayload) {
		mqc := mgr.GetMQClient()
		if mqc == nil {
			return
		}

		msg, err := queue.NewWatermillMessage(topic, report)
		if err != nil {
			l.Warn().Err(err).Msg("encode reconcile report failed")
			return
		}

		if err := mqc.Publish(ctx, topic, msg); err != nil {
			l.Warn().Err(err).Str("topic", topic).Msg("publish reconcile report failed")
		}
	}

	publishReport(queue.TopicReconcileStarted, queue.ReconcileReportPayload{})

	// 记录侧：收集所有仍然有效的对象键（含封面）
	var records []model.TrackRecord
	if err := dbc.WithContext(ctx).
		Select("id", "object_key", "cover_object_key").
		Find(&records).Error; err != nil {
		l.Error().Err(err).Msg("list track records failed")
		publishReport(queue.TopicReconcileFailed, queue.ReconcileReportPayload{Error: err.Error()})

		return
	}

	known := make(map[string]string, len(records)*2)
	for _, r := range records {
		known[r.ObjectKey] = r.ID
		if r.CoverObjectKey != "" {
			known[r.CoverObjectKey] = r.ID
		}
	}

	bucket := s3c.GetConfig().Bucket
	report := queue.ReconcileReportPayload{}
	seen := make(map[string]bool, len(known))

	for obj := range s3c.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			l.Error().Err(obj.Err).Msg("list objects failed")
			report.Error = obj.Err.Error()
			publishReport(queue.TopicReconcileFailed, report)

			return
		}

		report.ScannedObjects++
		seen[obj.Key] = true

		if _, ok := known[obj.Key]; ok {
			continue
		}

		report.OrphanedObjects = append(report.OrphanedObjects, obj.Key)

		if err := s3c.RemoveObject(ctx, bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
			l.Warn().Err(err).Str("object_key", obj.Key).Msg("remove orphan object failed")
			continue
		}

		report.RemovedObjects++
	}

	// 对象缺失的记录仅上报，由运维决定处置
	for _, r := range records {
		if !seen[r.ObjectKey] {
			report.DanglingRecords = append(report.DanglingRecords, r.ID)
		}
	}

	l.Info().
		Int("scanned", report.ScannedObjects).
		Int("orphans", len(report.OrphanedObjects)).
		Int("removed", report.RemovedObjects).
		Int("dangling", len(report.DanglingRecords)).
		Msg("storage reconcile done")

	publishReport(queue.TopicReconcileFinished, report)
}

// runListCacheWarm 预热文件列表缓存，降低高峰期首个请求的延迟.
func runListCacheWarm(ctx context.Context) {
	l := log.Logger().With().Str("job", JobListCacheWarm).Logger()

	svc := service.NewTrackService(ctx)

	resp, err := svc.ListTracks(ctx)
	if err != nil {
		l.Error().Err(err).Msg("warm track list cache failed")
		return
	}

	l.Debug().Int("total", resp.Total).Msg("track list cache warmed")
}
