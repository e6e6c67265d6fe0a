package service

import (
	"context"
	"fmt"
	"time"

	"github.com/yeisme/tunevault/pkg/cache"
	"github.com/yeisme/tunevault/pkg/internal/model"
	"github.com/yeisme/tunevault/pkg/internal/types"
	tlog "github.com/yeisme/tunevault/pkg/log"
)

const (
	// trackListCacheKey 文件列表的缓存键.
	trackListCacheKey = "tracks:list"
	// trackListCacheTTL 列表缓存有效期，上传/删除时主动失效.
	trackListCacheTTL = 30 * time.Second
)

// ListTracks 返回全部文件记录，按上传时间倒序.
func (ts *TrackService) ListTracks(ctx context.Context) (*types.ListTracksResponse, error) {
	query := func() (*types.ListTracksResponse, error) {
		var records []model.TrackRecord
		if err := ts.dbClient.WithContext(ctx).
			Order("uploaded_at DESC").
			Find(&records).Error; err != nil {
			return nil, fmt.Errorf("list track records: %w", err)
		}

		return &types.ListTracksResponse{
			Files: records,
			Total: len(records),
		}, nil
	}

	if ts.cache == nil {
		return query()
	}

	return cache.GetOrSet(ctx, ts.cache, trackListCacheKey, query, trackListCacheTTL)
}

// invalidateListCache 写操作后清除列表缓存.
func (ts *TrackService) invalidateListCache(ctx context.Context) {
	if ts.cache == nil {
		return
	}

	if err := ts.cache.Delete(ctx, trackListCacheKey); err != nil {
		tlog.Logger().Warn().Err(err).Msg("invalidate track list cache failed")
	}
}
