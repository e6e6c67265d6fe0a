package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/tunevault/pkg/internal/service"
	"github.com/yeisme/tunevault/pkg/log"
)

// ViewTrack 302 重定向到音频对象的存储端地址，浏览器内联播放.
// 不校验对象存在性，缺失对象由存储端返回错误.
func ViewTrack(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing object key"})
		return
	}

	svc := service.NewTrackService(c.Request.Context())
	c.Redirect(http.StatusFound, svc.ViewURL(key))
}

// ViewCoverImage 302 重定向到封面对象的存储端地址.
func ViewCoverImage(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing object key"})
		return
	}

	svc := service.NewTrackService(c.Request.Context())
	c.Redirect(http.StatusFound, svc.CoverViewURL(key))
}

// DownloadTrack 302 重定向到短期预签名下载地址，强制附件下载.
func DownloadTrack(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing object key"})
		return
	}

	svc := service.NewTrackService(c.Request.Context())

	url, err := svc.DownloadURL(c.Request.Context(), key)
	if err != nil {
		log.Logger().Error().Err(err).Str("key", key).Msg("failed to presign download url")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.Redirect(http.StatusFound, url)
}
