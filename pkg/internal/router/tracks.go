package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/tunevault/pkg/internal/handle"
)

// RegisterTrackRoutes 注册音频文件相关路由.
//
//	POST   /upload              -> 批量上传
//	GET    /files               -> 文件列表
//	GET    /view/:key           -> 302 至存储端内联播放地址
//	GET    /viewCoverImage/:key -> 302 至封面图地址
//	GET    /download/:key       -> 302 至预签名附件下载地址
//	DELETE /files/:id           -> 删除记录与对象
func RegisterTrackRoutes(g *gin.RouterGroup) {
	g.POST("/upload", handle.UploadTracks)

	filesRoutes := g.Group("/files")
	{
		filesRoutes.GET("", handle.ListTracks)
		filesRoutes.DELETE("/:id", handle.DeleteTrack)
	}

	g.GET("/view/:key", handle.ViewTrack)
	g.GET("/viewCoverImage/:key", handle.ViewCoverImage)
	g.GET("/download/:key", handle.DownloadTrack)
}
