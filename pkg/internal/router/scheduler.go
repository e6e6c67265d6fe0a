package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/tunevault/pkg/internal/handle"
)

// RegisterSchedulerRoutes 注册调度器相关路由.
// cacheMW 仅作用于任务查询路由，查询结果允许短暂陈旧.
func RegisterSchedulerRoutes(g *gin.RouterGroup, cacheMW ...gin.HandlerFunc) {
	jobsHandlers := append(append([]gin.HandlerFunc{}, cacheMW...), handle.SchedulerJobs)
	g.GET("/scheduler/jobs", jobsHandlers...)

	g.POST("/scheduler/jobs/stop", handle.SchedulerStopJobs)

	g.DELETE("/scheduler/jobs/:id", handle.SchedulerRemoveJob)

	g.GET("/scheduler/queue/waiting", handle.SchedulerQueueWaiting)
}
