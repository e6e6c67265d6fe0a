// Package router 管理路由配置，用于设置HTTP服务的路由.
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterAll 注册全部业务路由到传入的 gin 引擎.
// 上传/列表/链接路由位于根路径，与浏览器端直接交互.
func RegisterAll(e *gin.Engine, opts ...Option) *gin.Engine {
	o := applyOptions(opts)

	root := e.Group("/")
	RegisterTrackRoutes(root)
	RegisterHealthCheckRoute(root)
	RegisterSchedulerRoutes(root, o.schedulerCache...)

	return e
}

// Option 路由注册选项.
type Option func(*options)

type options struct {
	schedulerCache []gin.HandlerFunc
}

// WithSchedulerCache 为调度器查询路由附加缓存中间件.
func WithSchedulerCache(mw ...gin.HandlerFunc) Option {
	return func(o *options) {
		o.schedulerCache = mw
	}
}

func applyOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	return o
}
