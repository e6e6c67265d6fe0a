package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"

	"github.com/yeisme/tunevault/pkg/internal/model"
	"github.com/yeisme/tunevault/pkg/internal/types"
	tlog "github.com/yeisme/tunevault/pkg/log"
	"github.com/yeisme/tunevault/pkg/queue"
)

// DeleteTrack 删除记录及其对应的存储对象（含封面）.
// 顺序：先回收对象再删除记录，对象删除失败时保留记录以便重试.
func (ts *TrackService) DeleteTrack(ctx context.Context, id string) (*types.DeleteTrackResponse, error) {
	var record model.TrackRecord
	if err := ts.dbClient.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrackNotFound
		}

		return nil, fmt.Errorf("lookup track %s: %w", id, err)
	}

	if err := ts.s3Client.RemoveObject(ctx, ts.bucket(), record.ObjectKey,
		minio.RemoveObjectOptions{}); err != nil {
		return nil, fmt.Errorf("remove object %s: %w", record.ObjectKey, err)
	}

	// 封面键从存储的链接反推，兼容历史记录缺失 CoverObjectKey 的情况
	coverKey := record.CoverObjectKey
	if coverKey == "" {
		coverKey = coverKeyFromURL(record.CoverImageURL)
	}

	if coverKey != "" {
		if err := ts.s3Client.RemoveObject(ctx, ts.bucket(), coverKey,
			minio.RemoveObjectOptions{}); err != nil {
			return nil, fmt.Errorf("remove cover %s: %w", coverKey, err)
		}
	}

	if err := ts.dbClient.WithContext(ctx).Delete(&record).Error; err != nil {
		return nil, fmt.Errorf("delete record %s: %w", id, err)
	}

	ts.publishTrackDeleted(&record, coverKey)
	ts.invalidateListCache(ctx)

	return &types.DeleteTrackResponse{
		Message: "track deleted",
		ID:      id,
	}, nil
}

// publishTrackDeleted 尽力发布删除事件.
func (ts *TrackService) publishTrackDeleted(record *model.TrackRecord, coverKey string) {
	if ts.mqClient == nil {
		return
	}

	payload := queue.TrackDeletedPayload{
		Object: queue.ObjectRef{
			Bucket:    record.Bucket,
			ObjectKey: record.ObjectKey,
			ETag:      record.ETag,
			Size:      record.Size,
		},
		RecordID: record.ID,
		CoverKey: coverKey,
	}

	if err := queue.PublishTrackDeleted(ts.mqClient.Publisher(), payload); err != nil {
		tlog.Logger().Warn().Err(err).Str("record_id", record.ID).Msg("publish track deleted event failed")
	}
}
