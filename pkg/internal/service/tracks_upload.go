package service

import (
	"bytes"
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"golang.org/x/sync/errgroup"

	"github.com/yeisme/tunevault/pkg/internal/metadata"
	"github.com/yeisme/tunevault/pkg/internal/model"
	"github.com/yeisme/tunevault/pkg/internal/types"
	tlog "github.com/yeisme/tunevault/pkg/log"
	"github.com/yeisme/tunevault/pkg/metrics"
	"github.com/yeisme/tunevault/pkg/queue"
)

// DefaultUploadConcurrency 批量上传的并发上限.
const DefaultUploadConcurrency = 4

// UploadInput 单个待上传文件，Reader 需支持 Seek 以便元数据探测后重新上传.
type UploadInput struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.ReadSeeker
}

// UploadTracks 批量上传音频文件并物化记录.
// 文件之间互相隔离：单个文件失败不影响其余文件，失败明细随响应返回.
func (ts *TrackService) UploadTracks(ctx context.Context, inputs []UploadInput) (*types.UploadTracksResponse, error) {
	var (
		mu       sync.Mutex
		records  = make([]model.TrackRecord, 0, len(inputs))
		failures = make([]types.UploadTrackFailure, 0)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultUploadConcurrency)

	for _, in := range inputs {
		g.Go(func() error {
			record, err := ts.uploadOne(gctx, in)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				metrics.TrackUploads.WithLabelValues("failure").Inc()
				tlog.Logger().Error().Err(err).Str("file", in.FileName).Msg("upload track failed")
				failures = append(failures, types.UploadTrackFailure{
					FileName: in.FileName,
					Error:    err.Error(),
				})

				// 隔离失败，不取消同批其他文件
				return nil
			}

			metrics.TrackUploads.WithLabelValues("success").Inc()
			metrics.TrackUploadBytes.Add(float64(record.Size))
			records = append(records, *record)

			return nil
		})
	}

	_ = g.Wait()

	if len(records) > 0 {
		ts.invalidateListCache(ctx)
	}

	if len(inputs) > 0 && len(records) == 0 {
		return nil, fmt.Errorf("all %d files failed to upload", len(inputs))
	}

	return &types.UploadTracksResponse{
		Message:  "upload completed",
		Files:    records,
		Failures: failures,
		Total:    len(inputs),
		Failed:   len(failures),
	}, nil
}

// uploadOne 处理单个文件：探测元数据、写入对象、物化链接并落库.
// 任一步失败时清理已写入的对象，保证存储与记录一致.
func (ts *TrackService) uploadOne(ctx context.Context, in UploadInput) (*model.TrackRecord, error) {
	now := time.Now().UTC()
	objectKey := sanitizeObjectKey(in.FileName)

	meta := ts.probeMetadata(in)

	// 上传主对象，inline 便于 /view 在浏览器内直接播放
	etag, err := ts.uploadObject(ctx, objectKey, in.Reader, in.Size, minio.PutObjectOptions{
		ContentType:        in.ContentType,
		ContentDisposition: fmt.Sprintf("inline; filename=%q", objectKey),
	})
	if err != nil {
		return nil, fmt.Errorf("store object %s: %w", objectKey, err)
	}

	// 上传内嵌封面（若有）
	coverKey, coverURL := "", ""
	if meta.Picture != nil {
		coverKey = buildCoverKey(objectKey, meta.Language, meta.Year, now, meta.Picture.Ext)

		_, err = ts.uploadObject(ctx, coverKey, bytes.NewReader(meta.Picture.Data),
			int64(len(meta.Picture.Data)), minio.PutObjectOptions{
				ContentType:        meta.Picture.MIMEType,
				ContentDisposition: fmt.Sprintf("inline; filename=%q", coverKey),
			})
		if err != nil {
			ts.removeObject(ctx, objectKey)
			return nil, fmt.Errorf("store cover %s: %w", coverKey, err)
		}

		coverURL = publicURL(ts.upload.PublicBaseURL, RouteCoverView, coverKey)
	}

	record := model.TrackRecord{
		ID:             newTrackID(now),
		ObjectKey:      objectKey,
		FileName:       in.FileName,
		ContentType:    in.ContentType,
		Size:           in.Size,
		ETag:           etag,
		Bucket:         ts.bucket(),
		ViewURL:        publicURL(ts.upload.PublicBaseURL, RouteView, objectKey),
		DownloadURL:    publicURL(ts.upload.PublicBaseURL, RouteDownload, objectKey),
		CoverImageURL:  coverURL,
		CoverObjectKey: coverKey,
		Year:           meta.Year,
		Language:       meta.Language,
		UploadedAt:     now,
	}

	if err := ts.dbClient.WithContext(ctx).Create(&record).Error; err != nil {
		// 落库失败时回收已写入的对象，避免产生孤儿
		ts.removeObject(ctx, objectKey)

		if coverKey != "" {
			ts.removeObject(ctx, coverKey)
		}

		return nil, fmt.Errorf("persist record for %s: %w", objectKey, err)
	}

	ts.publishTrackStored(&record)

	return &record, nil
}

// probeMetadata 尽力探测音频元数据，失败时返回空结果而非中断上传.
func (ts *TrackService) probeMetadata(in UploadInput) *metadata.TrackMeta {
	meta, err := metadata.Probe(in.Reader)

	// 重置读取位置供后续上传使用
	if _, serr := in.Reader.Seek(0, io.SeekStart); serr != nil {
		tlog.Logger().Warn().Err(serr).Str("file", in.FileName).Msg("seek after metadata probe failed")
	}

	switch {
	case err != nil:
		metrics.CoverExtractions.WithLabelValues("failure").Inc()
		tlog.Logger().Debug().Err(err).Str("file", in.FileName).Msg("metadata probe failed")

		return &metadata.TrackMeta{}
	case meta.Picture == nil:
		metrics.CoverExtractions.WithLabelValues("none").Inc()
	default:
		metrics.CoverExtractions.WithLabelValues("success").Inc()
	}

	return meta
}

// uploadObject 写入对象并顺带计算 MD5.
func (ts *TrackService) uploadObject(ctx context.Context, objectKey string,
	reader io.Reader, size int64, opts minio.PutObjectOptions,
) (string, error) {
	hasher := md5.New()
	teeReader := io.TeeReader(reader, hasher)

	info, err := ts.s3Client.PutObject(ctx, ts.bucket(), objectKey, teeReader, size, opts)
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	etag := info.ETag
	if etag == "" {
		etag = fmt.Sprintf("%x", hasher.Sum(nil))
	}

	return etag, nil
}

// removeObject 补偿删除，仅记录日志不向上传播.
func (ts *TrackService) removeObject(ctx context.Context, objectKey string) {
	if err := ts.s3Client.RemoveObject(ctx, ts.bucket(), objectKey, minio.RemoveObjectOptions{}); err != nil {
		tlog.Logger().Warn().Err(err).Str("object_key", objectKey).Msg("compensating object removal failed")
	}
}

// publishTrackStored 尽力发布事件，MQ 未启用或失败时仅记录日志.
func (ts *TrackService) publishTrackStored(record *model.TrackRecord) {
	if ts.mqClient == nil {
		return
	}

	payload := queue.TrackStoredPayload{
		Object: queue.ObjectRef{
			Bucket:      record.Bucket,
			ObjectKey:   record.ObjectKey,
			ETag:        record.ETag,
			Size:        record.Size,
			ContentType: record.ContentType,
		},
		RecordID: record.ID,
		FileName: record.FileName,
		CoverKey: record.CoverObjectKey,
		Year:     record.Year,
		Language: record.Language,
	}

	if err := queue.PublishTrackStored(ts.mqClient.Publisher(), payload); err != nil {
		tlog.Logger().Warn().Err(err).Str("record_id", record.ID).Msg("publish track stored event failed")
	}
}
