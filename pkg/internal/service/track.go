// Package service 实现音频文件的业务逻辑：上传、列表、链接派生与删除.
package service

import (
	"context"
	"errors"

	"github.com/yeisme/tunevault/pkg/cache"
	"github.com/yeisme/tunevault/pkg/configs"
	ctxPkg "github.com/yeisme/tunevault/pkg/context"
	"github.com/yeisme/tunevault/pkg/internal/storage/db"
	"github.com/yeisme/tunevault/pkg/internal/storage/mq"
	"github.com/yeisme/tunevault/pkg/internal/storage/s3"
	tlog "github.com/yeisme/tunevault/pkg/log"
)

// ErrTrackNotFound 指定的记录不存在.
var ErrTrackNotFound = errors.New("track not found")

type TrackService struct {
	s3Client *s3.Client
	dbClient *db.Client
	mqClient *mq.Client
	cache    *cache.Cache
	upload   configs.UploadConfig
}

func NewTrackService(c context.Context) *TrackService {
	s3c := ctxPkg.GetS3Client(c)
	dbc := ctxPkg.GetDBClient(c)
	mqc := ctxPkg.GetMQClient(c)

	// 为了安全起见，应该直接 panic 而不是返回 nil，依赖此服务就不需要再检查
	if s3c == nil || s3c.Client == nil || dbc == nil || dbc.DB == nil {
		tlog.Logger().Fatal().Msg("storage clients not initialized")
	}

	var appCache *cache.Cache
	if kvc := ctxPkg.GetKVClient(c); kvc != nil {
		appCache = cache.NewCache(kvc.KVStore)
	}

	return &TrackService{
		s3Client: s3c,
		dbClient: dbc,
		mqClient: mqc,
		cache:    appCache,
		upload:   configs.GetConfig().Upload,
	}
}
