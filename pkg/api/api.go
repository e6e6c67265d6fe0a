// Package api 定义 HTTP 服务的接口注册入口.
package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/tunevault/pkg/cache"
	"github.com/yeisme/tunevault/pkg/internal/router"
	"github.com/yeisme/tunevault/pkg/internal/storage"
	"github.com/yeisme/tunevault/pkg/middleware"
)

// schedulerCacheTTL 调度器任务查询的响应缓存有效期.
const schedulerCacheTTL = 5 * time.Second

// RegisterRoutes 注册全部业务路由到传入的 gin 引擎.
// KV 可用时为调度器查询路由附加响应缓存.
func RegisterRoutes(e *gin.Engine, mgr *storage.Manager) *gin.Engine {
	var opts []router.Option

	if kvc := mgr.GetKVClient(); kvc != nil && kvc.KVStore != nil {
		cfg := middleware.DefaultCacheConfig(cache.NewCache(kvc.KVStore))
		cfg.TTL = schedulerCacheTTL

		opts = append(opts, router.WithSchedulerCache(middleware.CacheMiddleware(cfg)))
	}

	return router.RegisterAll(e, opts...)
}
